// Package config loads reorder's user configuration.
//
// Settings come from, in increasing priority: built-in defaults, a TOML
// file ($XDG_CONFIG_HOME/reorder/config.toml, or the file named by
// REORDER_CONFIG), and REORDER_* environment variables such as
// REORDER_LOG_LEVEL.
package config

import (
	stderrors "errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/matzehuels/reorder/pkg/errors"
)

// appName names the config directory and env prefix.
const appName = "reorder"

// Config holds application configuration.
type Config struct {
	Log   LogConfig
	Scene SceneConfig
	TUI   TUIConfig
	Keys  KeysConfig
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level string
}

// SceneConfig selects the board used when no --scene flag is given.
type SceneConfig struct {
	Path      string
	Droppable string
}

// TUIConfig holds presentation settings for the interactive list.
type TUIConfig struct {
	Height int
}

// KeysConfig lists the keys bound to each action in the interactive list.
type KeysConfig struct {
	Forward  []string
	Backward []string
	Lift     []string
	Cancel   []string
	Quit     []string
}

// Load reads configuration from path (or the default location when empty)
// and the environment. A missing config file is not an error.
func Load(path string) (Config, error) {
	v := newViper()
	v.SetConfigType("toml")

	if path == "" {
		path = os.Getenv("REORDER_CONFIG")
	}
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.AddConfigPath(configDir())
		v.SetConfigName("config")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !stderrors.As(err, &notFound) && !stderrors.Is(err, fs.ErrNotExist) {
			return Config{}, errors.Wrap(errors.ErrCodeInvalidInput, err, "read config")
		}
	}
	return decode(v)
}

// Default returns the built-in configuration with environment overrides
// applied. No file is read.
func Default() Config {
	c, err := decode(newViper())
	if err != nil {
		panic("config: invalid defaults: " + err.Error())
	}
	return c
}

func newViper() *viper.Viper {
	v := viper.New()

	v.SetDefault("log.level", "info")
	v.SetDefault("scene.path", "")
	v.SetDefault("scene.droppable", "")
	v.SetDefault("tui.height", 15)
	v.SetDefault("keys.forward", []string{"down", "j"})
	v.SetDefault("keys.backward", []string{"up", "k"})
	v.SetDefault("keys.lift", []string{"space", " ", "enter"})
	v.SetDefault("keys.cancel", []string{"esc"})
	v.SetDefault("keys.quit", []string{"q", "ctrl+c"})

	v.SetEnvPrefix(strings.ToUpper(appName))
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

func decode(v *viper.Viper) (Config, error) {
	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, errors.Wrap(errors.ErrCodeInvalidInput, err, "decode config")
	}
	if c.TUI.Height < 3 {
		c.TUI.Height = 3
	}
	return c, nil
}

// configDir returns the config directory using XDG standard (~/.config/reorder/).
func configDir() string {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, appName)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return filepath.Join(home, ".config", appName)
}
