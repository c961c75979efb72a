package geom

// Left returns r moved left by dist.
func (r Rect) Left(dist float64) Rect {
	return Rect{Origin: Point{X: r.X() - dist, Y: r.Y()}, Size: r.Size}
}

// Right returns r moved right by dist.
func (r Rect) Right(dist float64) Rect {
	return Rect{Origin: Point{X: r.X() + dist, Y: r.Y()}, Size: r.Size}
}

// Up returns r moved up by dist.
func (r Rect) Up(dist float64) Rect {
	return Rect{Origin: Point{X: r.X(), Y: r.Y() - dist}, Size: r.Size}
}

// Down returns r moved down by dist.
func (r Rect) Down(dist float64) Rect {
	return Rect{Origin: Point{X: r.X(), Y: r.Y() + dist}, Size: r.Size}
}

// Wider returns r with dist added to its width. The result is not clamped.
func (r Rect) Wider(dist float64) Rect {
	return Rect{Origin: r.Origin, Size: Size{Width: r.Width() + dist, Height: r.Height()}}
}

// Thinner returns r with dist subtracted from its width. The result is not clamped.
func (r Rect) Thinner(dist float64) Rect {
	return Rect{Origin: r.Origin, Size: Size{Width: r.Width() - dist, Height: r.Height()}}
}

// Taller returns r with dist added to its height.
func (r Rect) Taller(dist float64) Rect {
	return Rect{Origin: r.Origin, Size: Size{Width: r.Width(), Height: r.Height() + dist}}
}

// Shorter returns r with dist subtracted from its height.
func (r Rect) Shorter(dist float64) Rect {
	return Rect{Origin: r.Origin, Size: Size{Width: r.Width(), Height: r.Height() - dist}}
}

// Above returns a rectangle of the same size directly above r, separated by margin.
func (r Rect) Above(margin float64) Rect {
	return r.AboveWithHeight(margin, r.Height())
}

// AboveWithHeight is like Above but the new rectangle has the given height.
func (r Rect) AboveWithHeight(margin, height float64) Rect {
	return NewRect(r.X(), r.Y()-height-margin, r.Width(), height)
}

// Below returns a rectangle of the same size directly below r, separated by margin.
func (r Rect) Below(margin float64) Rect {
	return Rect{Origin: Point{X: r.X(), Y: r.Y() + r.Height() + margin}, Size: r.Size}
}

// Before returns a rectangle of the same size directly left of r, separated by margin.
func (r Rect) Before(margin float64) Rect {
	return r.BeforeWithWidth(margin, r.Width())
}

// BeforeWithWidth is like Before but the new rectangle has the given width.
func (r Rect) BeforeWithWidth(margin, width float64) Rect {
	return NewRect(r.X()-width-margin, r.Y(), width, r.Height())
}

// Beside returns a rectangle of the same size directly right of r, separated by margin.
func (r Rect) Beside(margin float64) Rect {
	return r.BesideWithWidth(margin, r.Width())
}

// BesideWithWidth is like Beside but the new rectangle has the given width.
func (r Rect) BesideWithWidth(margin, width float64) Rect {
	return NewRect(r.X()+r.Width()+margin, r.Y(), width, r.Height())
}
