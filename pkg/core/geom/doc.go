// Package geom provides the vector and rectangle primitives used by the
// drag-and-drop core.
//
// # Positions
//
// [Position] is an immutable 2D vector in page coordinates. The helpers
// [Add], [Subtract] and [Absolute] return new values and never
// modify their inputs. [Patch] builds a vector with only one [Line]
// populated, which is how single-axis shifts are expressed:
//
//	shift := geom.Patch(geom.LineY, 40) // {X: 0, Y: 40}
//
// # Axes
//
// An [Axis] describes the direction a droppable stacks its members in. The
// two package values [Vertical] and [Horizontal] are the only axes in use;
// [AxisFor] maps a [Direction] tag back to its axis.
//
// # Edge alignment
//
// [MoveToEdge] returns the centre a source rectangle must move to so that
// one of its edges coincides with an edge of a destination rectangle along
// an axis. It is the alignment primitive the keyboard jump relies on.
package geom
