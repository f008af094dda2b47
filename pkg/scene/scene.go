// Package scene loads declarative board files and turns them into the
// dimension snapshots the drag-and-drop core consumes.
//
// A board is a TOML document listing droppables, their axis and their items
// in display order:
//
//	title = "Sprint"
//
//	[[droppable]]
//	id = "todo"
//	axis = "vertical"
//	cross = 40
//	gap = 1
//
//	  [[droppable.item]]
//	  id = "write-docs"
//	  label = "Write the docs"
//	  size = 3
//	  margin = { bottom = 1 }
//
// Items are laid out one after another along the droppable's axis starting
// at (x, y). size is the extent along the axis, cross the extent across it
// (defaulting to the droppable's cross).
package scene

import (
	_ "embed"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/reorder/pkg/core/dnd"
	"github.com/matzehuels/reorder/pkg/core/geom"
	"github.com/matzehuels/reorder/pkg/errors"
)

//go:embed default.toml
var defaultBoard []byte

// Scene is a parsed board file.
type Scene struct {
	Title      string      `toml:"title"`
	Droppables []Droppable `toml:"droppable"`
}

// Droppable is a container in a board file.
type Droppable struct {
	ID    string  `toml:"id"`
	Axis  string  `toml:"axis"`
	X     float64 `toml:"x"`
	Y     float64 `toml:"y"`
	Cross float64 `toml:"cross"`
	Gap   float64 `toml:"gap"`
	Items []Item  `toml:"item"`
}

// Item is a draggable in a board file.
type Item struct {
	ID     string       `toml:"id"`
	Label  string       `toml:"label"`
	Size   float64      `toml:"size"`
	Cross  float64      `toml:"cross"`
	Margin geom.Spacing `toml:"margin"`
}

// Parse decodes and validates a board.
func Parse(data []byte) (*Scene, error) {
	var s Scene
	if _, err := toml.Decode(string(data), &s); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidScene, err, "decode board")
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// Load reads and parses a board file.
func Load(path string) (*Scene, error) {
	if err := errors.ValidatePath(path); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "board %s", path)
	}
	if err != nil {
		return nil, err
	}
	return Parse(data)
}

// Default returns the built-in sample board.
func Default() *Scene {
	s, err := Parse(defaultBoard)
	if err != nil {
		panic("scene: invalid built-in board: " + err.Error())
	}
	return s
}

// Validate checks ids, axes, sizes and spacing. Negative gaps or margins
// would let items overlap, so they are rejected.
func (s *Scene) Validate() error {
	if len(s.Droppables) == 0 {
		return errors.New(errors.ErrCodeInvalidScene, "board has no droppables")
	}

	droppableIDs := make(map[string]bool)
	itemIDs := make(map[string]bool)
	for _, d := range s.Droppables {
		if err := errors.ValidateID("droppable", d.ID); err != nil {
			return err
		}
		if droppableIDs[d.ID] {
			return errors.New(errors.ErrCodeInvalidScene, "duplicate droppable id %q", d.ID)
		}
		droppableIDs[d.ID] = true

		if _, err := d.axis(); err != nil {
			return err
		}
		if d.Gap < 0 {
			return errors.New(errors.ErrCodeInvalidScene, "droppable %q has a negative gap", d.ID)
		}

		for _, it := range d.Items {
			if err := errors.ValidateID("item", it.ID); err != nil {
				return err
			}
			if itemIDs[it.ID] {
				return errors.New(errors.ErrCodeInvalidScene, "duplicate item id %q", it.ID)
			}
			itemIDs[it.ID] = true

			if m := it.Margin; m.Top < 0 || m.Right < 0 || m.Bottom < 0 || m.Left < 0 {
				return errors.New(errors.ErrCodeInvalidScene, "item %q has a negative margin", it.ID)
			}
			if it.Size <= 0 {
				return errors.New(errors.ErrCodeInvalidScene, "item %q must have a positive size", it.ID)
			}
			if it.Cross < 0 || (it.Cross == 0 && d.Cross <= 0) {
				return errors.New(errors.ErrCodeInvalidScene, "item %q needs a positive cross size (set it on the item or droppable)", it.ID)
			}
		}
	}
	return nil
}

func (d Droppable) axis() (geom.Axis, error) {
	if d.Axis == "" {
		return geom.Vertical, nil
	}
	a, err := geom.AxisFor(geom.Direction(d.Axis))
	if err != nil {
		return geom.Axis{}, errors.Wrap(errors.ErrCodeInvalidScene, err, "droppable %q", d.ID)
	}
	return a, nil
}

// Droppable returns the droppable with id, or nil.
func (s *Scene) Droppable(id string) *Droppable {
	for i := range s.Droppables {
		if s.Droppables[i].ID == id {
			return &s.Droppables[i]
		}
	}
	return nil
}

// ApplyOrder rearranges a droppable's items to match order, which must be a
// permutation of the droppable's item ids. Laying the board out again after
// a drop gives the dimensions of the new arrangement.
func (s *Scene) ApplyOrder(droppableID string, order []dnd.DraggableID) error {
	d := s.Droppable(droppableID)
	if d == nil {
		return errors.New(errors.ErrCodeNotFound, "droppable %q not found", droppableID)
	}
	if len(order) != len(d.Items) {
		return errors.New(errors.ErrCodeInvalidInput,
			"order has %d items, droppable %q has %d", len(order), droppableID, len(d.Items))
	}

	byID := make(map[string]Item, len(d.Items))
	for _, it := range d.Items {
		byID[it.ID] = it
	}
	items := make([]Item, 0, len(order))
	for _, id := range order {
		it, ok := byID[string(id)]
		if !ok {
			return errors.New(errors.ErrCodeInvalidInput, "item %q is not in droppable %q", id, droppableID)
		}
		delete(byID, string(id))
		items = append(items, it)
	}
	d.Items = items
	return nil
}

// Label returns the display label of an item, falling back to its id.
func (s *Scene) Label(id dnd.DraggableID) string {
	for _, d := range s.Droppables {
		for _, it := range d.Items {
			if it.ID == string(id) {
				if it.Label != "" {
					return it.Label
				}
				return it.ID
			}
		}
	}
	return string(id)
}
