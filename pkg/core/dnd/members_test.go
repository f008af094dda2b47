package dnd

import (
	"context"
	"runtime"
	"slices"
	"testing"

	"github.com/matzehuels/reorder/pkg/core/geom"
)

func verticalList(t *testing.T) (*DroppableDimension, DraggableMap) {
	t.Helper()
	list := &DroppableDimension{ID: "list", Axis: geom.Vertical}
	draggables := DraggableMap{
		// Inserted out of order on purpose.
		"c": {ID: "c", DroppableID: "list", Page: NewBox(geom.NewRect(0, 40, 100, 20), geom.Spacing{})},
		"a": {ID: "a", DroppableID: "list", Page: NewBox(geom.NewRect(0, 0, 100, 20), geom.Spacing{})},
		"b": {ID: "b", DroppableID: "list", Page: NewBox(geom.NewRect(0, 20, 100, 20), geom.Spacing{})},
		"x": {ID: "x", DroppableID: "other", Page: NewBox(geom.NewRect(0, 10, 100, 20), geom.Spacing{})},
	}
	return list, draggables
}

func TestMembersOrdersAlongAxis(t *testing.T) {
	list, draggables := verticalList(t)

	got := MemberIDs(Members(context.Background(), list, draggables))
	want := []DraggableID{"a", "b", "c"}
	if !slices.Equal(got, want) {
		t.Errorf("Members() = %v, want %v", got, want)
	}
}

func TestMembersHorizontal(t *testing.T) {
	row := &DroppableDimension{ID: "row", Axis: geom.Horizontal}
	draggables := DraggableMap{
		"r": {ID: "r", DroppableID: "row", Page: NewBox(geom.NewRect(60, 0, 30, 10), geom.Spacing{})},
		"l": {ID: "l", DroppableID: "row", Page: NewBox(geom.NewRect(0, 0, 30, 10), geom.Spacing{})},
		"m": {ID: "m", DroppableID: "row", Page: NewBox(geom.NewRect(30, 0, 30, 10), geom.Spacing{})},
	}

	got := MemberIDs(Members(context.Background(), row, draggables))
	want := []DraggableID{"l", "m", "r"}
	if !slices.Equal(got, want) {
		t.Errorf("Members() = %v, want %v", got, want)
	}
}

func TestMembersTieBreaksByID(t *testing.T) {
	list := &DroppableDimension{ID: "list", Axis: geom.Vertical}
	same := NewBox(geom.NewRect(0, 0, 10, 10), geom.Spacing{})
	draggables := DraggableMap{
		"z": {ID: "z", DroppableID: "list", Page: same},
		"y": {ID: "y", DroppableID: "list", Page: same},
	}

	got := MemberIDs(Members(context.Background(), list, draggables))
	if !slices.Equal(got, []DraggableID{"y", "z"}) {
		t.Errorf("Members() = %v", got)
	}
}

func TestMembersIsMemoizedOnIdentity(t *testing.T) {
	ctx := context.Background()
	list, draggables := verticalList(t)

	first := Members(ctx, list, draggables)
	second := Members(ctx, list, draggables)
	if len(first) == 0 || &first[0] != &second[0] {
		t.Error("same snapshot should return the remembered slice")
	}

	// A new map with the same content is a new snapshot.
	copied := DraggableMap{}
	for k, v := range draggables {
		copied[k] = v
	}
	third := Members(ctx, list, copied)
	if &first[0] == &third[0] {
		t.Error("a different snapshot should be recomputed")
	}
	if !slices.Equal(MemberIDs(first), MemberIDs(third)) {
		t.Error("recomputed members should have the same order")
	}
}

func TestMembersRecomputesForNewSnapshot(t *testing.T) {
	ctx := context.Background()
	list := &DroppableDimension{ID: "list", Axis: geom.Vertical}

	measure := func() DraggableMap {
		return DraggableMap{
			"a": {ID: "a", DroppableID: "list", Page: NewBox(geom.NewRect(0, 0, 10, 10), geom.Spacing{})},
			"b": {ID: "b", DroppableID: "list", Page: NewBox(geom.NewRect(0, 10, 10, 10), geom.Spacing{})},
		}
	}

	// Fresh maps of the same size, with the previous one collected between
	// calls, must never be served the previous snapshot's members.
	for i := range 200 {
		draggables := measure()
		got := Members(ctx, list, draggables)
		if len(got) != 2 || got[0] != draggables["a"] || got[1] != draggables["b"] {
			t.Fatalf("iteration %d: Members() returned dimensions from an earlier snapshot", i)
		}
		runtime.GC()
	}
}

func TestMembersRecomputesForNewDroppable(t *testing.T) {
	ctx := context.Background()
	list, draggables := verticalList(t)

	first := Members(ctx, list, draggables)
	remeasured := &DroppableDimension{ID: list.ID, Axis: list.Axis}
	second := Members(ctx, remeasured, draggables)
	if &first[0] == &second[0] {
		t.Error("a new droppable should be recomputed")
	}
	if !slices.Equal(MemberIDs(first), MemberIDs(second)) {
		t.Errorf("Members() = %v, want %v", MemberIDs(second), MemberIDs(first))
	}
}

func TestMembersInPlaceReplacementIsNotDetected(t *testing.T) {
	ctx := context.Background()
	list, draggables := verticalList(t)

	first := Members(ctx, list, draggables)
	draggables["a"] = &DraggableDimension{ID: "a", DroppableID: "list", Page: NewBox(geom.NewRect(0, 100, 100, 20), geom.Spacing{})}

	// Same map, same size: the remembered slice is returned. Hosts must
	// publish a new map instead of mutating the old one.
	if second := Members(ctx, list, draggables); &first[0] != &second[0] {
		t.Error("in-place mutation unexpectedly recomputed")
	}
}

func TestMembersNilDroppable(t *testing.T) {
	if got := Members(context.Background(), nil, DraggableMap{}); got != nil {
		t.Errorf("Members(nil) = %v, want nil", got)
	}
}
