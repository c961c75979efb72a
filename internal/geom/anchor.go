package geom

import "fmt"

// Anchor names a point derived from a rectangle's geometry.
type Anchor uint8

const (
	AnchorCenter       Anchor = iota // Middle of the rectangle
	AnchorTopLeft                    // Origin corner
	AnchorTopCenter                  // Middle of the top edge
	AnchorTopRight                   // Top-right corner
	AnchorCenterRight                // Middle of the right edge
	AnchorBottomRight                // Bottom-right corner
	AnchorBottomCenter               // Middle of the bottom edge
	AnchorBottomLeft                 // Bottom-left corner
	AnchorCenterLeft                 // Middle of the left edge
)

// String returns the anchor's name.
func (a Anchor) String() string {
	switch a {
	case AnchorCenter:
		return "Center"
	case AnchorTopLeft:
		return "TopLeft"
	case AnchorTopCenter:
		return "TopCenter"
	case AnchorTopRight:
		return "TopRight"
	case AnchorCenterRight:
		return "CenterRight"
	case AnchorBottomRight:
		return "BottomRight"
	case AnchorBottomCenter:
		return "BottomCenter"
	case AnchorBottomLeft:
		return "BottomLeft"
	case AnchorCenterLeft:
		return "CenterLeft"
	default:
		return fmt.Sprintf("Anchor(%d)", uint8(a))
	}
}

// factors returns the fraction of width and height at which the anchor sits.
func (a Anchor) factors() (fx, fy float64) {
	switch a {
	case AnchorTopLeft:
		return 0, 0
	case AnchorTopCenter:
		return 0.5, 0
	case AnchorTopRight:
		return 1, 0
	case AnchorCenterRight:
		return 1, 0.5
	case AnchorBottomRight:
		return 1, 1
	case AnchorBottomCenter:
		return 0.5, 1
	case AnchorBottomLeft:
		return 0, 1
	case AnchorCenterLeft:
		return 0, 0.5
	default:
		return 0.5, 0.5
	}
}

// AnchorPoint returns the location of a on r. The point is relative to r's
// own origin unless absolute is set, in which case it is in r's containing
// coordinate space.
func (r Rect) AnchorPoint(a Anchor, absolute bool) Point {
	var base Point
	if absolute {
		base = Point{X: r.MinX(), Y: r.MinY()}
	}
	fx, fy := a.factors()
	return base.Add(Point{X: r.Width() * fx, Y: r.Height() * fy})
}

// Center returns the midpoint of r.
func (r Rect) Center(absolute bool) Point { return r.AnchorPoint(AnchorCenter, absolute) }

// TopLeft returns the top-left corner of r.
func (r Rect) TopLeft(absolute bool) Point { return r.AnchorPoint(AnchorTopLeft, absolute) }

// TopCenter returns the middle of r's top edge.
func (r Rect) TopCenter(absolute bool) Point { return r.AnchorPoint(AnchorTopCenter, absolute) }

// TopRight returns the top-right corner of r.
func (r Rect) TopRight(absolute bool) Point { return r.AnchorPoint(AnchorTopRight, absolute) }

// CenterRight returns the middle of r's right edge.
func (r Rect) CenterRight(absolute bool) Point { return r.AnchorPoint(AnchorCenterRight, absolute) }

// BottomRight returns the bottom-right corner of r.
func (r Rect) BottomRight(absolute bool) Point { return r.AnchorPoint(AnchorBottomRight, absolute) }

// BottomCenter returns the middle of r's bottom edge.
func (r Rect) BottomCenter(absolute bool) Point { return r.AnchorPoint(AnchorBottomCenter, absolute) }

// BottomLeft returns the bottom-left corner of r.
func (r Rect) BottomLeft(absolute bool) Point { return r.AnchorPoint(AnchorBottomLeft, absolute) }

// CenterLeft returns the middle of r's left edge.
func (r Rect) CenterLeft(absolute bool) Point { return r.AnchorPoint(AnchorCenterLeft, absolute) }
