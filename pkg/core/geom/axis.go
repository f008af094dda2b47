package geom

import "fmt"

// Line is one of the two page dimensions.
type Line int

const (
	LineX Line = iota
	LineY
)

func (l Line) String() string {
	if l == LineX {
		return "x"
	}
	return "y"
}

// Direction tags the axis a droppable stacks its members along.
type Direction string

const (
	DirectionVertical   Direction = "vertical"
	DirectionHorizontal Direction = "horizontal"
)

// Edge selects the leading (start) or trailing (end) edge of a rectangle
// along an axis.
type Edge int

const (
	EdgeStart Edge = iota
	EdgeEnd
)

func (e Edge) String() string {
	if e == EdgeStart {
		return "start"
	}
	return "end"
}

// Axis describes a layout direction.
//
// For the vertical axis the line is y, the start edge is the top and the
// size is the height. The cross axis is x, starting at the left.
type Axis struct {
	Line      Line
	CrossLine Line
	Direction Direction
}

var (
	// Vertical stacks members top to bottom.
	Vertical = Axis{Line: LineY, CrossLine: LineX, Direction: DirectionVertical}

	// Horizontal stacks members left to right.
	Horizontal = Axis{Line: LineX, CrossLine: LineY, Direction: DirectionHorizontal}
)

// AxisFor returns the axis tagged with d.
func AxisFor(d Direction) (Axis, error) {
	switch d {
	case DirectionVertical:
		return Vertical, nil
	case DirectionHorizontal:
		return Horizontal, nil
	default:
		return Axis{}, fmt.Errorf("unknown axis direction %q", d)
	}
}

// Start returns the leading edge coordinate of r along the axis.
func (a Axis) Start(r Rect) float64 {
	if a.Line == LineX {
		return r.Left
	}
	return r.Top
}

// End returns the trailing edge coordinate of r along the axis.
func (a Axis) End(r Rect) float64 {
	if a.Line == LineX {
		return r.Right
	}
	return r.Bottom
}

// Edge returns Start or End of r depending on e.
func (a Axis) Edge(r Rect, e Edge) float64 {
	if e == EdgeStart {
		return a.Start(r)
	}
	return a.End(r)
}

// CrossStart returns the leading edge coordinate of r on the cross axis.
func (a Axis) CrossStart(r Rect) float64 {
	if a.CrossLine == LineX {
		return r.Left
	}
	return r.Top
}

// Size returns the extent of r along the axis.
func (a Axis) Size(r Rect) float64 {
	if a.Line == LineX {
		return r.Width()
	}
	return r.Height()
}

