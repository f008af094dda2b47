package jump

import "github.com/matzehuels/reorder/pkg/core/geom"

// isMovingTowardStart distinguishes returning toward the home slot from
// advancing past it.
func isMovingTowardStart(isMovingForward bool, proposedIndex, startIndex int) bool {
	return (isMovingForward && proposedIndex <= startIndex) ||
		(!isMovingForward && proposedIndex >= startIndex)
}

// selectEdge picks the edge both rectangles align on.
//
//	toward start | forward | edge
//	false        | true    | end
//	false        | false   | start
//	true         | true    | start
//	true         | false   | end
func selectEdge(towardStart, isMovingForward bool) geom.Edge {
	if towardStart == isMovingForward {
		return geom.EdgeStart
	}
	return geom.EdgeEnd
}
