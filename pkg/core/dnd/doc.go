// Package dnd defines the drag-and-drop data model shared by the keyboard
// jump core and its hosts.
//
// Dimensions are read-only snapshots owned by the host drag session:
// [DraggableDimension] for items and [DroppableDimension] for the containers
// that stack them along an axis. [DragImpact] is the displacement snapshot
// produced fresh on every jump and never modified in place.
//
// [Members] answers the membership query: the draggables inside a droppable
// in display order. It remembers its last answer, keyed by the identity of
// the droppable and of the draggable map, so a host that keeps handing in
// the same snapshot during a drag gets the same slice back without a sort.
package dnd
