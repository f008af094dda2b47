package dnd

import (
	"testing"

	"github.com/matzehuels/reorder/pkg/core/geom"
)

func TestNewBox(t *testing.T) {
	box := NewBox(geom.NewRect(10, 10, 20, 20), geom.Spacing{Top: 2, Bottom: 4})
	if box.WithoutMargin.Height() != 20 {
		t.Errorf("WithoutMargin height = %v", box.WithoutMargin.Height())
	}
	if box.WithMargin.Height() != 26 {
		t.Errorf("WithMargin height = %v, want 26", box.WithMargin.Height())
	}
}

func TestNewImpact(t *testing.T) {
	list := &DroppableDimension{ID: "list", Axis: geom.Vertical}
	item := &DraggableDimension{
		ID:          "a",
		DroppableID: "list",
		Page:        NewBox(geom.NewRect(0, 0, 100, 20), geom.Spacing{Bottom: 5}),
	}

	impact := NewImpact(list, item, 2)

	if impact.Destination == nil || *impact.Destination != (DraggableLocation{DroppableID: "list", Index: 2}) {
		t.Errorf("Destination = %+v", impact.Destination)
	}
	if impact.Movement.Amount != (geom.Position{Y: 25}) {
		t.Errorf("Amount = %v, want {0 25}", impact.Movement.Amount)
	}
	if len(impact.Movement.Draggables) != 0 || impact.Movement.IsBeyondStartPosition {
		t.Errorf("resting impact should have no movement: %+v", impact.Movement)
	}
	if impact.Direction != geom.DirectionVertical {
		t.Errorf("Direction = %v", impact.Direction)
	}
}

func TestImpactCloneIsDeep(t *testing.T) {
	orig := DragImpact{
		Movement:    DragMovement{Draggables: []DraggableID{"a", "b"}},
		Destination: &DraggableLocation{DroppableID: "list", Index: 1},
	}
	c := orig.Clone()
	c.Movement.Draggables[0] = "z"
	c.Destination.Index = 9

	if orig.Movement.Draggables[0] != "a" || orig.Destination.Index != 1 {
		t.Error("Clone should not share state with the original")
	}
}

func TestIsDisplaced(t *testing.T) {
	impact := DragImpact{Movement: DragMovement{Draggables: []DraggableID{"b"}}}
	if !impact.IsDisplaced("b") || impact.IsDisplaced("a") {
		t.Error("IsDisplaced mismatch")
	}
	if NoImpact().Destination != nil {
		t.Error("NoImpact should have no destination")
	}
}
