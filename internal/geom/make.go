package geom

// MakeOption configures a rectangle built by Make.
type MakeOption func(*makeConfig)

type makeConfig struct {
	origin        *Point
	size          *Size
	x, y          float64
	width, height float64
}

// WithOrigin sets the origin. It takes priority over WithX and WithY.
func WithOrigin(p Point) MakeOption {
	return func(c *makeConfig) {
		c.origin = &p
	}
}

// WithSize sets the size. It takes priority over WithWidth and WithHeight.
func WithSize(s Size) MakeOption {
	return func(c *makeConfig) {
		c.size = &s
	}
}

// WithX sets the x-coordinate.
func WithX(x float64) MakeOption {
	return func(c *makeConfig) {
		c.x = x
	}
}

// WithY sets the y-coordinate.
func WithY(y float64) MakeOption {
	return func(c *makeConfig) {
		c.y = y
	}
}

// WithWidth sets the width.
func WithWidth(width float64) MakeOption {
	return func(c *makeConfig) {
		c.width = width
	}
}

// WithHeight sets the height.
func WithHeight(height float64) MakeOption {
	return func(c *makeConfig) {
		c.height = height
	}
}

// Make builds a Rect from options. Unset fields are zero, so Make() equals Empty().
func Make(opts ...MakeOption) Rect {
	var c makeConfig
	for _, opt := range opts {
		opt(&c)
	}

	r := NewRect(c.x, c.y, c.width, c.height)
	if c.origin != nil {
		r.Origin = *c.origin
	}
	if c.size != nil {
		r.Size = *c.size
	}
	return r
}
