package jump

import (
	"github.com/matzehuels/reorder/pkg/core/dnd"
	"github.com/matzehuels/reorder/pkg/core/geom"
)

// projectCenter returns the centre the dragged item moves to so that its
// chosen edge sits on the same edge of destination.
func projectCenter(dragged, destination *dnd.DraggableDimension, edge geom.Edge, axis geom.Axis) geom.Position {
	return geom.MoveToEdge(geom.EdgeArgs{
		Source:          dragged.Page.WithoutMargin,
		SourceEdge:      edge,
		Destination:     destination.Page.WithoutMargin,
		DestinationEdge: edge,
		Axis:            axis,
	})
}
