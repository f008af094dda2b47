// Package render provides diagnostic renderings of drag state.
//
// The [dot] subpackage draws a droppable's members as a Graphviz chain with
// the held item, the displaced siblings and the destination slot marked. It
// is used by the CLI's dot command and never feeds back into the jump
// computation.
package render
