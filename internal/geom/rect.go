package geom

import (
	"fmt"
	"math"
)

// infiniteExtent is the width and height of the Infinite rectangle. Its
// origin sits at -infiniteExtent/2 so that MaxX and MaxY stay finite.
const infiniteExtent = math.MaxFloat64

// equalTolerance is the relative tolerance used by Equal.
const equalTolerance = 1e-9

// Rect represents an axis-aligned rectangle with floating point coordinates.
// Origin is the top-left corner when Size is non-negative. Width and Height
// may be negative; bounds accessors read the standardized rectangle.
type Rect struct {
	Origin Point
	Size   Size
}

// NewRect creates a new Rect with the given position and dimensions.
func NewRect(x, y, width, height float64) Rect {
	return Rect{Origin: Point{X: x, Y: y}, Size: Size{Width: width, Height: height}}
}

// Empty returns the zero rectangle.
func Empty() Rect {
	return Rect{}
}

// Null returns the rectangle that stands for "no rectangle". It is not equal
// to any real rectangle and contains nothing.
func Null() Rect {
	return Rect{Origin: Point{X: math.Inf(1), Y: math.Inf(1)}}
}

// Infinite returns a rectangle containing every sensible finite point.
// The bounds are large but finite: with true infinities the origin and the
// far edge cannot both be represented.
func Infinite() Rect {
	return NewRect(-infiniteExtent/2, -infiniteExtent/2, infiniteExtent, infiniteExtent)
}

// Standardize returns the equivalent rectangle with non-negative width and height.
func (r Rect) Standardize() Rect {
	if r.Size.Width < 0 {
		r.Origin.X += r.Size.Width
		r.Size.Width = -r.Size.Width
	}
	if r.Size.Height < 0 {
		r.Origin.Y += r.Size.Height
		r.Size.Height = -r.Size.Height
	}
	return r
}

// IsNull reports whether r is the Null rectangle.
func (r Rect) IsNull() bool {
	return math.IsInf(r.Origin.X, 1) || math.IsInf(r.Origin.Y, 1)
}

// IsEmpty reports whether r is Null or has zero width or height.
func (r Rect) IsEmpty() bool {
	return r.IsNull() || r.Size.Width == 0 || r.Size.Height == 0
}

// IsInfinite reports whether r's size is infinite or r equals Infinite.
func (r Rect) IsInfinite() bool {
	return r.Size.IsInfinite() || r.Equal(Infinite())
}

// Union returns the smallest rectangle that contains both rectangles.
// A Null operand is ignored.
func (r Rect) Union(other Rect) Rect {
	if r.IsNull() {
		return other
	}
	if other.IsNull() {
		return r
	}
	a, b := r.Standardize(), other.Standardize()
	x := min(a.Origin.X, b.Origin.X)
	y := min(a.Origin.Y, b.Origin.Y)
	right := max(a.MaxX(), b.MaxX())
	bottom := max(a.MaxY(), b.MaxY())
	return NewRect(x, y, right-x, bottom-y)
}

// Intersection returns the overlap of two rectangles.
// Rectangles that do not overlap yield Null; rectangles that share only an
// edge yield a zero-area rectangle on that edge.
func (r Rect) Intersection(other Rect) Rect {
	if r.IsNull() || other.IsNull() {
		return Null()
	}
	a, b := r.Standardize(), other.Standardize()
	x := max(a.Origin.X, b.Origin.X)
	y := max(a.Origin.Y, b.Origin.Y)
	right := min(a.MaxX(), b.MaxX())
	bottom := min(a.MaxY(), b.MaxY())
	if right < x || bottom < y {
		return Null()
	}
	return NewRect(x, y, right-x, bottom-y)
}

// Intersects returns true if the two rectangles overlap.
// Touching edges do not count as overlapping.
func (r Rect) Intersects(other Rect) bool {
	return !r.Intersection(other).IsEmpty()
}

// ContainsPoint returns true if p is inside the rectangle.
// Points on the left and top edges are inside; points on the right and bottom edges are outside.
func (r Rect) ContainsPoint(p Point) bool {
	if r.IsNull() {
		return false
	}
	s := r.Standardize()
	return p.X >= s.MinX() && p.X < s.MaxX() && p.Y >= s.MinY() && p.Y < s.MaxY()
}

// ContainsRect returns true if the other rectangle is fully contained within
// this rectangle, that is when their union is r itself.
func (r Rect) ContainsRect(other Rect) bool {
	if r.IsNull() || other.IsNull() {
		return false
	}
	return r.Union(other).Equal(r)
}

// Inset returns a new Rect inset by the given Edges.
// Positive values shrink the rectangle; negative values expand it.
func (r Rect) Inset(edges Edges) Rect {
	return NewRect(
		r.Origin.X+edges.Left,
		r.Origin.Y+edges.Top,
		r.Size.Width-edges.Horizontal(),
		r.Size.Height-edges.Vertical(),
	)
}

// insetXY moves the left and right edges in by dx and the top and bottom
// edges in by dy. A negative resulting size yields Null.
func (r Rect) insetXY(dx, dy float64) Rect {
	if r.IsNull() {
		return r
	}
	s := r.Standardize()
	s.Origin.X += dx
	s.Origin.Y += dy
	s.Size.Width -= 2 * dx
	s.Size.Height -= 2 * dy
	if s.Size.Width < 0 || s.Size.Height < 0 {
		return Null()
	}
	return s
}

// OffsetXY returns a new Rect moved by (dx, dy).
func (r Rect) OffsetXY(dx, dy float64) Rect {
	return Rect{Origin: Point{X: r.Origin.X + dx, Y: r.Origin.Y + dy}, Size: r.Size}
}

// Offset returns a new Rect moved by the vector p.
func (r Rect) Offset(p Point) Rect {
	return r.OffsetXY(p.X, p.Y)
}

// Equal reports whether v is a rectangle covering the same region as r,
// within a small relative tolerance. Values other than Rect or *Rect are
// never equal.
func (r Rect) Equal(v any) bool {
	var other Rect
	switch o := v.(type) {
	case Rect:
		other = o
	case *Rect:
		if o == nil {
			return false
		}
		other = *o
	default:
		return false
	}

	if r.IsNull() || other.IsNull() {
		return r.IsNull() && other.IsNull()
	}
	a, b := r.Standardize(), other.Standardize()
	return approxEqual(a.Origin.X, b.Origin.X) && approxEqual(a.Origin.Y, b.Origin.Y) &&
		approxEqual(a.Size.Width, b.Size.Width) && approxEqual(a.Size.Height, b.Size.Height)
}

func approxEqual(a, b float64) bool {
	if a == b {
		return true
	}
	scale := max(1, math.Abs(a), math.Abs(b))
	return math.Abs(a-b) <= equalTolerance*scale
}

// String renders the rectangle as Rect([x, y], [width, height]).
func (r Rect) String() string {
	return fmt.Sprintf("Rect([%g, %g], [%g, %g])", r.Origin.X, r.Origin.Y, r.Size.Width, r.Size.Height)
}
