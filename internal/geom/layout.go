package geom

import "github.com/grindlemire/geomotion/internal/debug"

// LayoutOption configures a placement computed by Layout.
type LayoutOption func(*layoutConfig)

type layoutConfig struct {
	above, below    *Rect
	leftOf, rightOf *Rect
	margins         Edges
}

// Above places the result directly above ref, separated by the bottom margin.
func Above(ref Rect) LayoutOption {
	return func(c *layoutConfig) {
		c.above = &ref
	}
}

// Below places the result directly below ref, separated by the top margin.
func Below(ref Rect) LayoutOption {
	return func(c *layoutConfig) {
		c.below = &ref
	}
}

// LeftOf places the result directly left of ref, separated by the right margin.
func LeftOf(ref Rect) LayoutOption {
	return func(c *layoutConfig) {
		c.leftOf = &ref
	}
}

// RightOf places the result directly right of ref, separated by the left margin.
func RightOf(ref Rect) LayoutOption {
	return func(c *layoutConfig) {
		c.rightOf = &ref
	}
}

// WithMargins sets the margins in CSS order: top, right, bottom, left.
// Missing values are 0; extra values are ignored.
func WithMargins(margins ...float64) LayoutOption {
	return func(c *layoutConfig) {
		var m [4]float64
		copy(m[:], margins)
		c.margins = EdgeTRBL(m[0], m[1], m[2], m[3])
	}
}

// Layout returns a rectangle the size of rect positioned relative to the
// reference rectangles given in opts. The result starts at the origin; each
// directive then sets one coordinate, applied in the order above, below,
// left of, right of. When two directives target the same axis the later one
// wins. With no options rect is returned unchanged.
func Layout(rect Rect, opts ...LayoutOption) Rect {
	if len(opts) == 0 {
		debug.Warn("Layout: no options provided for %s", rect)
		return rect
	}

	var c layoutConfig
	for _, opt := range opts {
		opt(&c)
	}

	result := Rect{Size: rect.Size}
	m := c.margins

	if c.above != nil {
		result.SetY(c.above.Up(result.Height() + m.Bottom).Y())
	}
	if c.below != nil {
		result.SetY(c.below.Below(m.Top).Y())
	}
	if c.leftOf != nil {
		result.SetX(c.leftOf.Left(result.Width() + m.Right).X())
	}
	if c.rightOf != nil {
		result.SetX(c.rightOf.Beside(m.Left).X())
	}

	return result
}
