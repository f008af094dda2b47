// Package session hosts keyboard drags.
//
// A [Session] owns the dimension snapshot captured when an item is lifted
// and threads every accepted jump's impact into the next one. Commands are
// serialized, so a host can call [Session.Move] from any goroutine and still
// get the strict ordering the jump algorithm depends on.
//
// # Usage
//
//	s, err := session.Lift(ctx, jumper, snapshot, "card-3")
//	if err != nil {
//	    return err
//	}
//	s.Move(ctx, true)  // one slot forward
//	s.Move(ctx, true)
//	s.Move(ctx, false) // back one
//	result, err := s.Drop(ctx)
//	// result.Order is the droppable's new member order
package session

import (
	"context"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/matzehuels/reorder/pkg/core/dnd"
	"github.com/matzehuels/reorder/pkg/core/geom"
	"github.com/matzehuels/reorder/pkg/core/jump"
	"github.com/matzehuels/reorder/pkg/errors"
	"github.com/matzehuels/reorder/pkg/observability"
)

// Session is an in-progress keyboard drag.
type Session struct {
	ID          string
	DraggableID dnd.DraggableID
	Source      dnd.DraggableLocation
	CreatedAt   time.Time

	mu       sync.Mutex
	jumper   *jump.Jumper
	snapshot dnd.Snapshot
	members  []*dnd.DraggableDimension
	impact   dnd.DragImpact
	center   geom.Position
	finished bool
}

// DropResult describes how a drag ended.
type DropResult struct {
	DraggableID dnd.DraggableID        `json:"draggable_id"`
	Source      dnd.DraggableLocation  `json:"source"`
	Destination *dnd.DraggableLocation `json:"destination,omitempty"`
	Order       []dnd.DraggableID      `json:"order"`
	Cancelled   bool                   `json:"cancelled"`
}

// Lift starts a drag of draggableID. The item rests at its home index with
// nothing displaced.
func Lift(ctx context.Context, jumper *jump.Jumper, snapshot dnd.Snapshot, draggableID dnd.DraggableID) (*Session, error) {
	dragged := snapshot.Draggables[draggableID]
	if dragged == nil {
		return nil, errors.New(errors.ErrCodeNotFound, "draggable %q not found", draggableID)
	}
	droppable := snapshot.Droppables[dragged.DroppableID]
	if droppable == nil {
		return nil, errors.New(errors.ErrCodeInconsistentState,
			"draggable %q belongs to unknown droppable %q", draggableID, dragged.DroppableID)
	}

	members := dnd.Members(ctx, droppable, snapshot.Draggables)
	home := slices.Index(members, dragged)
	if home == -1 {
		return nil, errors.New(errors.ErrCodeInconsistentState,
			"draggable %q missing from droppable %q", draggableID, droppable.ID)
	}

	s := &Session{
		ID:          uuid.NewString(),
		DraggableID: draggableID,
		Source:      dnd.DraggableLocation{DroppableID: droppable.ID, Index: home},
		CreatedAt:   time.Now(),
		jumper:      jumper,
		snapshot:    snapshot,
		members:     members,
		impact:      dnd.NewImpact(droppable, dragged, home),
		center:      dragged.Page.WithoutMargin.Center(),
	}
	observability.Session().OnLift(ctx, s.ID, string(draggableID))
	return s, nil
}

// Move issues one jump command. An accepted result becomes the session's
// current state; a rejected one leaves it unchanged.
func (s *Session) Move(ctx context.Context, forward bool) jump.Result {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.finished {
		return jump.Result{
			Outcome: jump.Rejected,
			Reason:  errors.New(errors.ErrCodeDragNotActive, "session %s has already ended", s.ID),
		}
	}

	res := s.jumper.Jump(ctx, jump.Args{
		IsMovingForward: forward,
		DraggableID:     s.DraggableID,
		Impact:          s.impact,
		Draggables:      s.snapshot.Draggables,
		Droppables:      s.snapshot.Droppables,
	})
	if res.IsAccepted() {
		s.impact = res.Impact
		s.center = res.Center
	}
	return res
}

// Impact returns a copy of the current impact.
func (s *Session) Impact() dnd.DragImpact {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.impact.Clone()
}

// Center returns where the dragged item currently sits.
func (s *Session) Center() geom.Position {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.center
}

// Members returns the droppable's member ids in their order at lift time.
func (s *Session) Members() []dnd.DraggableID {
	return dnd.MemberIDs(s.members)
}

// Active reports whether the drag is still in progress.
func (s *Session) Active() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return !s.finished
}

// Drop ends the drag at the current destination.
func (s *Session) Drop(ctx context.Context) (DropResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.finished {
		return DropResult{}, errors.New(errors.ErrCodeDragNotActive, "session %s has already ended", s.ID)
	}
	s.finished = true

	ids := dnd.MemberIDs(s.members)
	res := DropResult{DraggableID: s.DraggableID, Source: s.Source, Order: ids}
	if dest := s.impact.Destination; dest != nil {
		d := *dest
		res.Destination = &d
		res.Order = Reorder(ids, s.Source.Index, d.Index)
		observability.Session().OnDrop(ctx, s.ID, s.Source.Index, d.Index)
	}
	return res, nil
}

// Cancel ends the drag and returns the item to its home slot.
func (s *Session) Cancel(ctx context.Context) (DropResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.finished {
		return DropResult{}, errors.New(errors.ErrCodeDragNotActive, "session %s has already ended", s.ID)
	}
	s.finished = true

	src := s.Source
	observability.Session().OnCancel(ctx, s.ID)
	return DropResult{
		DraggableID: s.DraggableID,
		Source:      s.Source,
		Destination: &src,
		Order:       dnd.MemberIDs(s.members),
		Cancelled:   true,
	}, nil
}

// Reorder returns a copy of items with the element at from moved to to.
// Out-of-range indexes return an unchanged copy.
func Reorder[T any](items []T, from, to int) []T {
	out := slices.Clone(items)
	if from < 0 || from >= len(out) || to < 0 || to >= len(out) || from == to {
		return out
	}
	item := out[from]
	out = slices.Delete(out, from, from+1)
	return slices.Insert(out, to, item)
}
