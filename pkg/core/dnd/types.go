package dnd

import "github.com/matzehuels/reorder/pkg/core/geom"

// DraggableID identifies a draggable item.
type DraggableID string

// DroppableID identifies a droppable container.
type DroppableID string

// Box holds a rectangle with and without its margins.
// WithMargin is used for spacing math, WithoutMargin for alignment.
type Box struct {
	WithMargin    geom.Rect `json:"with_margin"`
	WithoutMargin geom.Rect `json:"without_margin"`
}

// NewBox builds a Box from a margin-excluded rectangle and its margins.
func NewBox(rect geom.Rect, margin geom.Spacing) Box {
	return Box{WithMargin: rect.Expand(margin), WithoutMargin: rect}
}

// DraggableDimension is an item's identity plus its page-space box.
type DraggableDimension struct {
	ID          DraggableID `json:"id"`
	DroppableID DroppableID `json:"droppable_id"`
	Page        Box         `json:"page"`
}

// DroppableDimension is a container's identity and layout axis.
type DroppableDimension struct {
	ID   DroppableID `json:"id"`
	Axis geom.Axis   `json:"-"`
	Page Box         `json:"page"`
}

// DraggableMap indexes draggable dimensions by id.
type DraggableMap map[DraggableID]*DraggableDimension

// DroppableMap indexes droppable dimensions by id.
type DroppableMap map[DroppableID]*DroppableDimension

// DraggableLocation is a zero-based position inside a droppable.
type DraggableLocation struct {
	DroppableID DroppableID `json:"droppable_id"`
	Index       int         `json:"index"`
}

// DragMovement describes the items displaced by a drag.
type DragMovement struct {
	// Draggables lists displaced items in the order they were displaced.
	Draggables []DraggableID `json:"draggables"`

	// Amount is the shift every displaced item experiences. It is non-zero
	// only along the droppable's axis line.
	Amount geom.Position `json:"amount"`

	// IsBeyondStartPosition is true when the destination index is past the
	// dragged item's home index.
	IsBeyondStartPosition bool `json:"is_beyond_start_position"`
}

// DragImpact is the current effect of an in-progress drag.
type DragImpact struct {
	Movement    DragMovement       `json:"movement"`
	Destination *DraggableLocation `json:"destination,omitempty"`
	Direction   geom.Direction     `json:"direction"`
}

// NoImpact is the impact of a drag with no active target.
func NoImpact() DragImpact {
	return DragImpact{Movement: DragMovement{Draggables: []DraggableID{}}}
}

// NewImpact returns the resting impact of draggable sitting at index in
// droppable: nothing displaced and the destination at home.
func NewImpact(droppable *DroppableDimension, draggable *DraggableDimension, index int) DragImpact {
	axis := droppable.Axis
	return DragImpact{
		Movement: DragMovement{
			Draggables: []DraggableID{},
			Amount:     geom.Patch(axis.Line, axis.Size(draggable.Page.WithMargin)),
		},
		Destination: &DraggableLocation{DroppableID: droppable.ID, Index: index},
		Direction:   axis.Direction,
	}
}

// Clone returns a deep copy of the impact.
func (i DragImpact) Clone() DragImpact {
	out := i
	out.Movement.Draggables = append([]DraggableID{}, i.Movement.Draggables...)
	if i.Destination != nil {
		d := *i.Destination
		out.Destination = &d
	}
	return out
}

// IsDisplaced reports whether id is currently shifted by the drag.
func (i DragImpact) IsDisplaced(id DraggableID) bool {
	for _, d := range i.Movement.Draggables {
		if d == id {
			return true
		}
	}
	return false
}

// Snapshot bundles the dimension maps a host captured when the drag began.
type Snapshot struct {
	Draggables DraggableMap
	Droppables DroppableMap
}
