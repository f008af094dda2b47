package cli

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"

	"github.com/matzehuels/reorder/internal/config"
)

// keyMap binds the interactive list's actions.
type keyMap struct {
	Forward  key.Binding
	Backward key.Binding
	Lift     key.Binding
	Cancel   key.Binding
	NextList key.Binding
	Quit     key.Binding
}

// newKeyMap builds bindings from the configured keys.
func newKeyMap(cfg config.KeysConfig) keyMap {
	return keyMap{
		Forward:  binding(cfg.Forward, "move down/right"),
		Backward: binding(cfg.Backward, "move up/left"),
		Lift:     binding(cfg.Lift, "lift/drop"),
		Cancel:   binding(cfg.Cancel, "cancel"),
		NextList: binding([]string{"tab"}, "next list"),
		Quit:     binding(cfg.Quit, "quit"),
	}
}

func binding(keys []string, desc string) key.Binding {
	return key.NewBinding(key.WithKeys(keys...), key.WithHelp(helpKeys(keys), desc))
}

// helpKeys renders keys for the footer, e.g. "↓/j".
func helpKeys(keys []string) string {
	var parts []string
	for _, k := range keys {
		switch k {
		case " ":
			continue
		case "up":
			k = "↑"
		case "down":
			k = "↓"
		case "left":
			k = "←"
		case "right":
			k = "→"
		case "enter":
			k = "⏎"
		}
		parts = append(parts, k)
	}
	return strings.Join(parts, "/")
}

// shortHelp lists the bindings shown in the footer for the current mode.
func (k keyMap) shortHelp(lifted bool) []key.Binding {
	if lifted {
		return []key.Binding{k.Forward, k.Backward, k.Lift, k.Cancel}
	}
	return []key.Binding{k.Forward, k.Backward, k.Lift, k.NextList, k.Quit}
}
