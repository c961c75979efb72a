// geom.go re-exports geometry types from internal/geom.
// Any changes to internal/geom types must be mirrored here.
package geomotion

import "github.com/grindlemire/geomotion/internal/geom"

// Point represents an (X, Y) coordinate.
type Point = geom.Point

// Size represents a width/height pair.
type Size = geom.Size

// Offset is a horizontal/vertical displacement.
type Offset = geom.Offset

// Edges represents spacing on four sides (top, right, bottom, left).
type Edges = geom.Edges

// Rect represents an axis-aligned rectangle.
type Rect = geom.Rect

// Anchor names a point derived from a rectangle's geometry.
type Anchor = geom.Anchor

const (
	AnchorCenter       = geom.AnchorCenter
	AnchorTopLeft      = geom.AnchorTopLeft
	AnchorTopCenter    = geom.AnchorTopCenter
	AnchorTopRight     = geom.AnchorTopRight
	AnchorCenterRight  = geom.AnchorCenterRight
	AnchorBottomRight  = geom.AnchorBottomRight
	AnchorBottomCenter = geom.AnchorBottomCenter
	AnchorBottomLeft   = geom.AnchorBottomLeft
	AnchorCenterLeft   = geom.AnchorCenterLeft
)

// MakeOption configures a rectangle built by Make.
type MakeOption = geom.MakeOption

// LayoutOption configures a placement computed by Layout.
type LayoutOption = geom.LayoutOption

// OperandError reports an operator and the value it rejected.
type OperandError = geom.OperandError

// ErrUnsupportedOperand is returned when an operator receives a value of a
// type it does not handle.
var ErrUnsupportedOperand = geom.ErrUnsupportedOperand

// NewRect creates a new Rect with the given position and dimensions.
func NewRect(x, y, width, height float64) Rect {
	return geom.NewRect(x, y, width, height)
}

// Empty returns the zero rectangle.
func Empty() Rect { return geom.Empty() }

// Null returns the rectangle that stands for "no rectangle".
func Null() Rect { return geom.Null() }

// Infinite returns a rectangle containing every sensible finite point.
func Infinite() Rect { return geom.Infinite() }

// Make builds a Rect from options.
func Make(opts ...MakeOption) Rect { return geom.Make(opts...) }

// WithOrigin sets the origin. It takes priority over WithX and WithY.
func WithOrigin(p Point) MakeOption { return geom.WithOrigin(p) }

// WithSize sets the size. It takes priority over WithWidth and WithHeight.
func WithSize(s Size) MakeOption { return geom.WithSize(s) }

// WithX sets the x-coordinate.
func WithX(x float64) MakeOption { return geom.WithX(x) }

// WithY sets the y-coordinate.
func WithY(y float64) MakeOption { return geom.WithY(y) }

// WithWidth sets the width.
func WithWidth(width float64) MakeOption { return geom.WithWidth(width) }

// WithHeight sets the height.
func WithHeight(height float64) MakeOption { return geom.WithHeight(height) }

// Layout positions a rectangle the size of rect relative to reference rectangles.
func Layout(rect Rect, opts ...LayoutOption) Rect { return geom.Layout(rect, opts...) }

// Above places the result directly above ref.
func Above(ref Rect) LayoutOption { return geom.Above(ref) }

// Below places the result directly below ref.
func Below(ref Rect) LayoutOption { return geom.Below(ref) }

// LeftOf places the result directly left of ref.
func LeftOf(ref Rect) LayoutOption { return geom.LeftOf(ref) }

// RightOf places the result directly right of ref.
func RightOf(ref Rect) LayoutOption { return geom.RightOf(ref) }

// WithMargins sets the layout margins in CSS order: top, right, bottom, left.
func WithMargins(margins ...float64) LayoutOption { return geom.WithMargins(margins...) }

// EdgeAll creates Edges with the same value on all sides.
func EdgeAll(n float64) Edges { return geom.EdgeAll(n) }

// EdgeSymmetric creates Edges with vertical (top/bottom) and horizontal (left/right) values.
func EdgeSymmetric(v, h float64) Edges { return geom.EdgeSymmetric(v, h) }

// EdgeTRBL creates Edges following CSS order: Top, Right, Bottom, Left.
func EdgeTRBL(t, r, b, l float64) Edges { return geom.EdgeTRBL(t, r, b, l) }
