// Package jump computes keyboard "jump to next/previous position" moves for
// drag-and-drop list reordering.
//
// While an item is held in a drag, a discrete forward or backward command
// moves it one slot within its current droppable. [Jumper.Jump] resolves the
// item's home index, validates the proposed index, picks the rectangle edge
// to align, projects the new centre and derives the next [dnd.DragImpact].
//
// # Outcomes
//
// Every call ends in exactly one of two outcomes:
//
//   - [Accepted]: the new centre and impact are returned.
//   - [Rejected]: nothing changes. [Result.Reason] carries a coded error.
//
// Rejections with [errors.ErrCodeMissingDestination] or
// [errors.ErrCodeInconsistentState] indicate caller misuse and are logged at
// error level. [errors.ErrCodeOutOfRange] is the routine boundary case (the
// item is already first or last) and is not logged.
//
// # Ordering
//
// Jumps are incremental: each call must receive the impact produced by the
// previous accepted call. Hosts process commands strictly in order; see
// package session.
//
// # Example
//
//	j := jump.New(logger)
//	res := j.Jump(ctx, jump.Args{
//	    IsMovingForward: true,
//	    DraggableID:     "a",
//	    Impact:          impact,
//	    Draggables:      draggables,
//	    Droppables:      droppables,
//	})
//	if res.IsAccepted() {
//	    impact = res.Impact
//	}
package jump
