package geom

import "math"

// Size represents a width/height pair.
type Size struct {
	Width, Height float64
}

// Mul returns the size scaled by s.
func (s Size) Mul(scale float64) Size {
	return Size{Width: s.Width * scale, Height: s.Height * scale}
}

// Div returns the size divided by scale.
func (s Size) Div(scale float64) Size {
	return Size{Width: s.Width / scale, Height: s.Height / scale}
}

// Neg negates both dimensions.
func (s Size) Neg() Size {
	return Size{Width: -s.Width, Height: -s.Height}
}

// IsInfinite reports whether either dimension is as large as the extent of
// [Infinite] (or is a true floating point infinity).
func (s Size) IsInfinite() bool {
	return isInfiniteExtent(s.Width) || isInfiniteExtent(s.Height)
}

func isInfiniteExtent(v float64) bool {
	return math.IsInf(v, 0) || math.Abs(v) >= infiniteExtent
}

// CenteredIn returns a rectangle of this size centered inside r.
// Unless absolute is set the result is relative to r's own origin.
func (s Size) CenteredIn(r Rect, absolute bool) Rect {
	centered := NewRect((r.Width()-s.Width)/2, (r.Height()-s.Height)/2, s.Width, s.Height)
	if absolute {
		return centered.AddPoint(r.Origin)
	}
	return centered
}
