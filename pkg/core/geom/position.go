package geom

import "math"

// Position is a 2D vector in page coordinates.
type Position struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Get returns the component of p along line.
func (p Position) Get(line Line) float64 {
	if line == LineX {
		return p.X
	}
	return p.Y
}

// Add returns a + b.
func Add(a, b Position) Position {
	return Position{X: a.X + b.X, Y: a.Y + b.Y}
}

// Subtract returns a - b.
func Subtract(a, b Position) Position {
	return Position{X: a.X - b.X, Y: a.Y - b.Y}
}

// Absolute returns p with both components made non-negative.
func Absolute(p Position) Position {
	return Position{X: math.Abs(p.X), Y: math.Abs(p.Y)}
}

// Patch returns a vector with value on line. The other component is
// otherValue[0] when given, zero otherwise.
func Patch(line Line, value float64, otherValue ...float64) Position {
	other := 0.0
	if len(otherValue) > 0 {
		other = otherValue[0]
	}
	if line == LineX {
		return Position{X: value, Y: other}
	}
	return Position{X: other, Y: value}
}
