package geom

// EdgeArgs describes an edge alignment request.
type EdgeArgs struct {
	Source          Rect
	SourceEdge      Edge
	Destination     Rect
	DestinationEdge Edge
	Axis            Axis
}

// MoveToEdge returns the centre Source must move to so that SourceEdge lands
// on DestinationEdge along the axis line. Across the axis the two
// rectangles share their leading edge.
//
// The source keeps its size: the returned centre sits half the source's
// extent away from the destination edge, inward for EdgeStart and backward
// for EdgeEnd.
func MoveToEdge(args EdgeArgs) Position {
	axis := args.Axis
	corner := func(r Rect, e Edge) Position {
		return Patch(axis.Line, axis.Edge(r, e), axis.CrossStart(r))
	}

	destinationCorner := corner(args.Destination, args.DestinationEdge)
	centerDiff := Absolute(Subtract(args.Source.Center(), corner(args.Source, args.SourceEdge)))

	sign := 1.0
	if args.SourceEdge == EdgeEnd {
		sign = -1.0
	}
	signed := Patch(axis.Line, sign*centerDiff.Get(axis.Line), centerDiff.Get(axis.CrossLine))

	return Add(destinationCorner, signed)
}
