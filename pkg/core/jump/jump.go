package jump

import (
	"context"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/reorder/pkg/cache"
	"github.com/matzehuels/reorder/pkg/core/dnd"
	"github.com/matzehuels/reorder/pkg/errors"
	"github.com/matzehuels/reorder/pkg/observability"
)

// Args is the input to a single jump.
type Args struct {
	IsMovingForward bool
	DraggableID     dnd.DraggableID
	Impact          dnd.DragImpact
	Draggables      dnd.DraggableMap
	Droppables      dnd.DroppableMap
}

// Jumper computes keyboard jumps. It remembers the last index lookup so
// that repeated jumps over the same snapshot skip the linear scan.
//
// A Jumper is safe for concurrent use, but jumps within one drag must be
// issued in order since each depends on the previous impact.
type Jumper struct {
	logger *log.Logger
	index  cache.One[indexKey, int]
}

// New creates a Jumper that reports diagnostics to logger.
// A nil logger falls back to log.Default().
func New(logger *log.Logger) *Jumper {
	if logger == nil {
		logger = log.Default()
	}
	return &Jumper{logger: logger}
}

// Jump moves the dragged item one slot forward or backward inside its
// current destination droppable.
func (j *Jumper) Jump(ctx context.Context, args Args) Result {
	location := args.Impact.Destination
	if location == nil {
		return j.reject(ctx, errors.New(errors.ErrCodeMissingDestination,
			"cannot move %s when there is no previous destination", args.DraggableID))
	}

	droppable := args.Droppables[location.DroppableID]
	if droppable == nil {
		return j.reject(ctx, errors.New(errors.ErrCodeInconsistentState,
			"destination droppable %q is not in the dimension snapshot", location.DroppableID))
	}
	dragged := args.Draggables[args.DraggableID]
	if dragged == nil {
		return j.reject(ctx, errors.New(errors.ErrCodeInconsistentState,
			"draggable %q is not in the dimension snapshot", args.DraggableID))
	}

	members := dnd.Members(ctx, droppable, args.Draggables)
	startIndex := j.resolveIndex(ctx, members, dragged)
	if startIndex == -1 {
		return j.reject(ctx, errors.New(errors.ErrCodeInconsistentState,
			"could not find draggable %q inside droppable %q", dragged.ID, droppable.ID))
	}

	proposedIndex, err := proposeIndex(location.Index, len(members), args.IsMovingForward)
	if err != nil {
		return j.reject(ctx, err)
	}

	destination := members[proposedIndex]
	towardStart := isMovingTowardStart(args.IsMovingForward, proposedIndex, startIndex)
	edge := selectEdge(towardStart, args.IsMovingForward)

	center := projectCenter(dragged, destination, edge, droppable.Axis)
	impact := recomputeImpact(impactArgs{
		previous:      args.Impact,
		droppable:     droppable,
		dragged:       dragged,
		destination:   destination,
		startIndex:    startIndex,
		proposedIndex: proposedIndex,
		towardStart:   towardStart,
	})

	j.logger.Debugf("Jump %s: %d → %d in %s (edge %s, displaced %d)",
		dragged.ID, location.Index, proposedIndex, droppable.ID, edge, len(impact.Movement.Draggables))
	observability.Jump().OnJumpAccepted(ctx, string(droppable.ID), location.Index, proposedIndex)

	return accepted(center, impact)
}

// reject builds a Rejected result. Out-of-range moves are routine and stay
// silent; everything else is caller misuse and gets logged.
func (j *Jumper) reject(ctx context.Context, reason error) Result {
	code := errors.GetCode(reason)
	if code != errors.ErrCodeOutOfRange {
		j.logger.Error(errors.UserMessage(reason), "code", code)
	}
	observability.Jump().OnJumpRejected(ctx, string(code))
	return rejected(reason)
}
