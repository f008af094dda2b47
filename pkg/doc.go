// Package pkg provides the libraries behind reorder, a keyboard
// drag-and-drop reordering engine for lists.
//
// # Overview
//
// A drag lifts one item out of a list (a droppable) and moves it one slot at
// a time with the keyboard. Every move answers two questions: where the held
// item should now be drawn, and which siblings have shifted to make room.
// The pkg directory is organized into these areas:
//
//  1. [core] - Domain logic (geometry, dimensions, the jump algorithm)
//  2. [session] - Drag lifecycle (lift, move, drop, cancel)
//  3. [scene] - Declarative TOML boards laid out into dimension snapshots
//  4. [render] - Diagnostic output (Graphviz diagrams)
//
// # Architecture
//
// The typical data flow through reorder:
//
//	TOML board
//	     ↓
//	[scene] package (lay out items into page boxes)
//	     ↓
//	[session] package (lift an item, thread impacts between moves)
//	     ↓
//	[core/jump] package (one slot forward or backward)
//	     ↓
//	new center + impact, then the dropped order
//
// # Quick Start
//
//	board := scene.Default()
//	snapshot, _ := board.Snapshot()
//
//	s, _ := session.Lift(ctx, jump.New(nil), snapshot, "bump")
//	s.Move(ctx, false) // one slot toward the start
//	result, _ := s.Drop(ctx)
//	fmt.Println(result.Order)
//
// # Main Packages
//
// [core/geom] - Positions, rectangles, axes and the edge-to-edge move that
// places a box flush against another.
//
// [core/dnd] - Draggable and droppable dimensions, drag impacts and the
// memoized member ordering of a droppable.
//
// [core/jump] - The jump algorithm: resolve the held item's home index,
// check bounds, pick the alignment edge, project the new center and
// recompute which siblings are displaced.
//
// [cache] - Single-entry memoization used for member ordering and index
// lookups.
//
// [observability] - Hooks for jump outcomes, drag lifecycle and memo hits.
//
// [errors] - Structured error codes, including the jump rejection reasons.
//
// [render/dot] - Graphviz rendering of a droppable's drag state.
//
// [buildinfo] - Version information set at build time.
package pkg
