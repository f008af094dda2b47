package geom

// Rect is an axis-aligned rectangle in page coordinates.
type Rect struct {
	Top    float64 `json:"top" toml:"top"`
	Right  float64 `json:"right" toml:"right"`
	Bottom float64 `json:"bottom" toml:"bottom"`
	Left   float64 `json:"left" toml:"left"`
}

// NewRect creates a rectangle from its top-left corner and size.
func NewRect(x, y, width, height float64) Rect {
	return Rect{Top: y, Right: x + width, Bottom: y + height, Left: x}
}

// Width returns the horizontal extent.
func (r Rect) Width() float64 { return r.Right - r.Left }

// Height returns the vertical extent.
func (r Rect) Height() float64 { return r.Bottom - r.Top }

// Center returns the midpoint.
func (r Rect) Center() Position {
	return Position{X: (r.Left + r.Right) / 2, Y: (r.Top + r.Bottom) / 2}
}

// Spacing holds per-side margins.
type Spacing struct {
	Top    float64 `json:"top" toml:"top"`
	Right  float64 `json:"right" toml:"right"`
	Bottom float64 `json:"bottom" toml:"bottom"`
	Left   float64 `json:"left" toml:"left"`
}

// Expand returns r grown outward by s.
func (r Rect) Expand(s Spacing) Rect {
	return Rect{
		Top:    r.Top - s.Top,
		Right:  r.Right + s.Right,
		Bottom: r.Bottom + s.Bottom,
		Left:   r.Left - s.Left,
	}
}

// Start returns the leading margin along axis.
func (s Spacing) Start(a Axis) float64 {
	if a.Line == LineX {
		return s.Left
	}
	return s.Top
}

// End returns the trailing margin along axis.
func (s Spacing) End(a Axis) float64 {
	if a.Line == LineX {
		return s.Right
	}
	return s.Bottom
}
