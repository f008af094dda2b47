// Package cli implements the reorder command-line interface.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/reorder/internal/config"
	"github.com/matzehuels/reorder/pkg/buildinfo"
	"github.com/matzehuels/reorder/pkg/core/dnd"
	"github.com/matzehuels/reorder/pkg/core/jump"
	"github.com/matzehuels/reorder/pkg/errors"
	"github.com/matzehuels/reorder/pkg/scene"
	"github.com/matzehuels/reorder/pkg/session"
)

// =============================================================================
// Constants
// =============================================================================

// appName is the application name used for display.
const appName = "reorder"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
	Config config.Config

	out io.Writer
}

// New creates a new CLI instance with a default logger and configuration.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(w, level),
		Config: config.Default(),
		out:    os.Stdout,
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// SetOutput redirects command output. Log output is unaffected.
func (c *CLI) SetOutput(w io.Writer) {
	c.out = w
}

// LoadConfig reads the config file at path (or the default location when
// empty) and applies its log level.
func (c *CLI) LoadConfig(path string) error {
	cfg, err := config.Load(path)
	if err != nil {
		return err
	}
	c.Config = cfg

	level, err := log.ParseLevel(cfg.Log.Level)
	if err != nil {
		return errors.Wrap(errors.ErrCodeInvalidInput, err, "config log.level")
	}
	c.SetLogLevel(level)
	return nil
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   appName,
		Short: "Reorder moves list items one slot at a time from the keyboard",
		Long: `Reorder is a CLI for keyboard drag-and-drop reordering. It lays out a board
of lists, lifts an item and jumps it forward or backward one slot at a time,
reporting where the item would land and which siblings make room for it.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			return nil
		},
	}

	root.SetVersionTemplate(buildinfo.Template())

	// Register all subcommands
	root.AddCommand(c.jumpCommand())
	root.AddCommand(c.membersCommand())
	root.AddCommand(c.dotCommand())
	root.AddCommand(c.tuiCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Board Helpers
// =============================================================================

// loadBoard reads the board at path, falling back to the configured board
// and then the built-in sample.
func (c *CLI) loadBoard(ctx context.Context, path string) (*scene.Scene, error) {
	logger := loggerFromContext(ctx)
	if path == "" {
		path = c.Config.Scene.Path
	}
	if path == "" {
		logger.Debug("Using built-in board")
		return scene.Default(), nil
	}
	s, err := scene.Load(path)
	if err != nil {
		return nil, err
	}
	logger.Debug("Loaded board", "path", path, "droppables", len(s.Droppables))
	return s, nil
}

// newJumper creates a jumper that logs through ctx's logger.
func newJumper(ctx context.Context) *jump.Jumper {
	return jump.New(loggerFromContext(ctx))
}

// liftItem lays out board and lifts id.
func liftItem(ctx context.Context, board *scene.Scene, id string) (*session.Session, dnd.Snapshot, error) {
	snapshot, err := board.Snapshot()
	if err != nil {
		return nil, dnd.Snapshot{}, err
	}
	s, err := session.Lift(ctx, newJumper(ctx), snapshot, dnd.DraggableID(id))
	if err != nil {
		return nil, dnd.Snapshot{}, err
	}
	return s, snapshot, nil
}

// parseMoves turns a move script such as "ffb" into jump directions,
// true meaning forward.
func parseMoves(moves string) ([]bool, error) {
	if err := errors.ValidateMoves(moves); err != nil {
		return nil, err
	}
	var dirs []bool
	for _, r := range strings.ToLower(moves) {
		switch r {
		case 'f':
			dirs = append(dirs, true)
		case 'b':
			dirs = append(dirs, false)
		}
	}
	return dirs, nil
}

// direction names a jump direction for display.
func direction(forward bool) string {
	if forward {
		return "forward"
	}
	return "backward"
}

// itemIDs completes draggable ids from the built-in or configured board.
func (c *CLI) itemIDs(cmd *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
	board, err := c.loadBoard(cmd.Context(), boardFlag(cmd))
	if err != nil {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	var ids []string
	for _, d := range board.Droppables {
		for _, it := range d.Items {
			ids = append(ids, fmt.Sprintf("%s\t%s", it.ID, board.Label(dnd.DraggableID(it.ID))))
		}
	}
	return ids, cobra.ShellCompDirectiveNoFileComp
}

func boardFlag(cmd *cobra.Command) string {
	if f := cmd.Flags().Lookup("scene"); f != nil {
		return f.Value.String()
	}
	return ""
}
