package dnd

import (
	"cmp"
	"context"
	"reflect"
	"slices"
	"unsafe"

	"github.com/matzehuels/reorder/pkg/cache"
)

// membersKey holds the map header as an unsafe.Pointer rather than an
// address integer, so the remembered map stays reachable and its address
// cannot be reused by a later snapshot while the entry is cached.
type membersKey struct {
	droppable  *DroppableDimension
	draggables unsafe.Pointer
	size       int
}

var membersMemo cache.One[membersKey, []*DraggableDimension]

// Members returns the draggables inside droppable in display order: sorted
// by the centre of their margin-excluded box along the droppable's axis
// line, ties broken by id.
//
// The result is remembered for the identity of droppable and draggables.
// Hosts replace snapshots rather than mutating them: a new map or a new
// droppable always recomputes, but replacing an entry of a map in place is
// not detected. The returned slice is shared and must not be modified.
func Members(ctx context.Context, droppable *DroppableDimension, draggables DraggableMap) []*DraggableDimension {
	if droppable == nil {
		return nil
	}
	key := membersKey{
		droppable:  droppable,
		draggables: reflect.ValueOf(draggables).UnsafePointer(),
		size:       len(draggables),
	}
	return membersMemo.Get(ctx, "members", key, func() []*DraggableDimension {
		return orderedMembers(droppable, draggables)
	})
}

func orderedMembers(droppable *DroppableDimension, draggables DraggableMap) []*DraggableDimension {
	line := droppable.Axis.Line
	out := make([]*DraggableDimension, 0, len(draggables))
	for _, d := range draggables {
		if d != nil && d.DroppableID == droppable.ID {
			out = append(out, d)
		}
	}
	slices.SortFunc(out, func(a, b *DraggableDimension) int {
		return cmp.Or(
			cmp.Compare(a.Page.WithoutMargin.Center().Get(line), b.Page.WithoutMargin.Center().Get(line)),
			cmp.Compare(a.ID, b.ID),
		)
	})
	return out
}

// MemberIDs returns the ids of members in order.
func MemberIDs(members []*DraggableDimension) []DraggableID {
	ids := make([]DraggableID, len(members))
	for i, m := range members {
		ids[i] = m.ID
	}
	return ids
}
