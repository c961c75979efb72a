package geom

// MinX returns the x-coordinate of the left edge.
func (r Rect) MinX() float64 {
	s := r.Standardize()
	return s.Origin.X
}

// MidX returns the x-coordinate of the horizontal center.
func (r Rect) MidX() float64 {
	s := r.Standardize()
	return s.Origin.X + s.Size.Width/2
}

// MaxX returns the x-coordinate of the right edge.
func (r Rect) MaxX() float64 {
	s := r.Standardize()
	return s.Origin.X + s.Size.Width
}

// MinY returns the y-coordinate of the top edge.
func (r Rect) MinY() float64 {
	s := r.Standardize()
	return s.Origin.Y
}

// MidY returns the y-coordinate of the vertical center.
func (r Rect) MidY() float64 {
	s := r.Standardize()
	return s.Origin.Y + s.Size.Height/2
}

// MaxY returns the y-coordinate of the bottom edge.
func (r Rect) MaxY() float64 {
	s := r.Standardize()
	return s.Origin.Y + s.Size.Height
}

// X returns the left edge. Same as MinX.
func (r Rect) X() float64 { return r.MinX() }

// Y returns the top edge. Same as MinY.
func (r Rect) Y() float64 { return r.MinY() }

// Width returns the absolute width.
func (r Rect) Width() float64 { return r.Standardize().Size.Width }

// Height returns the absolute height.
func (r Rect) Height() float64 { return r.Standardize().Size.Height }

// WithX returns a copy of r with its x-coordinate replaced.
func (r Rect) WithX(x float64) Rect {
	return Rect{Origin: Point{X: x, Y: r.Y()}, Size: r.Size}
}

// WithY returns a copy of r with its y-coordinate replaced.
func (r Rect) WithY(y float64) Rect {
	return Rect{Origin: Point{X: r.X(), Y: y}, Size: r.Size}
}

// WithWidth returns a copy of r with its width replaced.
func (r Rect) WithWidth(width float64) Rect {
	return Rect{Origin: r.Origin, Size: Size{Width: width, Height: r.Height()}}
}

// WithHeight returns a copy of r with its height replaced.
func (r Rect) WithHeight(height float64) Rect {
	return Rect{Origin: r.Origin, Size: Size{Width: r.Width(), Height: height}}
}

// SetX sets the origin's x-coordinate in place.
func (r *Rect) SetX(x float64) { r.Origin.X = x }

// SetY sets the origin's y-coordinate in place.
func (r *Rect) SetY(y float64) { r.Origin.Y = y }

// SetWidth sets the width in place.
func (r *Rect) SetWidth(width float64) { r.Size.Width = width }

// SetHeight sets the height in place.
func (r *Rect) SetHeight(height float64) { r.Size.Height = height }
