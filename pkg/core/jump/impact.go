package jump

import (
	"github.com/matzehuels/reorder/pkg/core/dnd"
	"github.com/matzehuels/reorder/pkg/core/geom"
)

type impactArgs struct {
	previous      dnd.DragImpact
	droppable     *dnd.DroppableDimension
	dragged       *dnd.DraggableDimension
	destination   *dnd.DraggableDimension
	startIndex    int
	proposedIndex int
	towardStart   bool
}

// recomputeImpact derives the impact after an accepted jump.
//
// Moving back toward home un-displaces the most recently displaced item.
// Moving away displaces the item now at the proposed index. Either way the
// list changes by exactly one id and the previous slice is left untouched.
func recomputeImpact(args impactArgs) dnd.DragImpact {
	prev := args.previous.Movement.Draggables

	var moved []dnd.DraggableID
	if args.towardStart {
		moved = make([]dnd.DraggableID, 0, len(prev))
		if len(prev) > 0 {
			moved = append(moved, prev[:len(prev)-1]...)
		}
	} else {
		moved = make([]dnd.DraggableID, 0, len(prev)+1)
		moved = append(moved, prev...)
		moved = append(moved, args.destination.ID)
	}

	axis := args.droppable.Axis
	return dnd.DragImpact{
		Movement: dnd.DragMovement{
			Draggables:            moved,
			Amount:                geom.Patch(axis.Line, axis.Size(args.dragged.Page.WithMargin)),
			IsBeyondStartPosition: args.proposedIndex > args.startIndex,
		},
		Destination: &dnd.DraggableLocation{
			DroppableID: args.droppable.ID,
			Index:       args.proposedIndex,
		},
		Direction: axis.Direction,
	}
}
