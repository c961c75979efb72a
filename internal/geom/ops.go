package geom

import "math"

// AddRect returns the union of r and other.
func (r Rect) AddRect(other Rect) Rect {
	return r.Union(other)
}

// AddSize grows r's width and height by s, keeping its origin.
func (r Rect) AddSize(s Size) Rect {
	return NewRect(r.X(), r.Y(), r.Width()+s.Width, r.Height()+s.Height)
}

// AddPoint translates r by p.
func (r Rect) AddPoint(p Point) Rect {
	return r.OffsetXY(p.X, p.Y)
}

// AddOffset translates r by o.
func (r Rect) AddOffset(o Offset) Rect {
	return r.OffsetXY(o.Horizontal, o.Vertical)
}

// AddEdges insets r by e.
func (r Rect) AddEdges(e Edges) Rect {
	return r.Inset(e)
}

// SubRect is r + (-other).
func (r Rect) SubRect(other Rect) Rect { return r.AddRect(other.Neg()) }

// SubSize is r + (-s).
func (r Rect) SubSize(s Size) Rect { return r.AddSize(s.Neg()) }

// SubPoint is r + (-p).
func (r Rect) SubPoint(p Point) Rect { return r.AddPoint(p.Neg()) }

// SubOffset is r + (-o).
func (r Rect) SubOffset(o Offset) Rect { return r.AddOffset(o.Neg()) }

// SubEdges is r + (-e), which outsets r.
func (r Rect) SubEdges(e Edges) Rect { return r.AddEdges(e.Neg()) }

// Plus dispatches on the type of v: Rect (union), Size (grow), Point or
// Offset (translate), Edges (inset). Pointers to those types are accepted.
// Any other value returns an *OperandError.
func (r Rect) Plus(v any) (Rect, error) {
	switch o := deref(v).(type) {
	case Rect:
		return r.AddRect(o), nil
	case Size:
		return r.AddSize(o), nil
	case Point:
		return r.AddPoint(o), nil
	case Offset:
		return r.AddOffset(o), nil
	case Edges:
		return r.AddEdges(o), nil
	}
	return r, unsupported("+", v)
}

// Minus is Plus applied to the negation of v.
func (r Rect) Minus(v any) (Rect, error) {
	switch o := deref(v).(type) {
	case Rect:
		return r.SubRect(o), nil
	case Size:
		return r.SubSize(o), nil
	case Point:
		return r.SubPoint(o), nil
	case Offset:
		return r.SubOffset(o), nil
	case Edges:
		return r.SubEdges(o), nil
	}
	return r, unsupported("-", v)
}

func deref(v any) any {
	switch p := v.(type) {
	case *Rect:
		if p != nil {
			return *p
		}
	case *Size:
		if p != nil {
			return *p
		}
	case *Point:
		if p != nil {
			return *p
		}
	case *Offset:
		if p != nil {
			return *p
		}
	case *Edges:
		if p != nil {
			return *p
		}
	}
	return v
}

// Neg negates origin and size component-wise.
func (r Rect) Neg() Rect {
	return Rect{Origin: r.Origin.Neg(), Size: r.Size.Neg()}
}

// Mul scales r's size by scale. The origin is unchanged.
func (r Rect) Mul(scale float64) Rect {
	return Rect{Origin: r.Origin, Size: r.Size.Mul(scale)}
}

// Div divides r's size by scale. The origin is unchanged.
func (r Rect) Div(scale float64) Rect {
	return Rect{Origin: r.Origin, Size: r.Size.Div(scale)}
}

// Times is Mul for a scale of any Go numeric type.
func (r Rect) Times(v any) (Rect, error) {
	scale, ok := toFloat(v)
	if !ok {
		return r, unsupported("*", v)
	}
	return r.Mul(scale), nil
}

// DividedBy is Div for a scale of any Go numeric type.
func (r Rect) DividedBy(v any) (Rect, error) {
	scale, ok := toFloat(v)
	if !ok {
		return r, unsupported("/", v)
	}
	return r.Div(scale), nil
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	}
	return 0, false
}

// Grow expands r outward by s.Width on the left and right and s.Height on
// the top and bottom.
func (r Rect) Grow(s Size) Rect {
	return r.insetXY(-s.Width, -s.Height)
}

// GrowBy is Grow with the same amount on both axes.
func (r Rect) GrowBy(n float64) Rect {
	return r.Grow(Size{Width: n, Height: n})
}

// Shrink moves r's edges inward by s.Width and s.Height. Shrinking past zero
// size yields Null.
func (r Rect) Shrink(s Size) Rect {
	return r.insetXY(s.Width, s.Height)
}

// ShrinkBy is Shrink with the same amount on both axes.
func (r Rect) ShrinkBy(n float64) Rect {
	return r.Shrink(Size{Width: n, Height: n})
}

// Contains dispatches to ContainsPoint or ContainsRect based on the type
// of v. Any other value returns an *OperandError.
func (r Rect) Contains(v any) (bool, error) {
	switch o := deref(v).(type) {
	case Point:
		return r.ContainsPoint(o), nil
	case Rect:
		return r.ContainsRect(o), nil
	}
	return false, unsupported("contains", v)
}

// Round rounds the position and dimensions to the nearest integer,
// halves away from zero.
func (r Rect) Round() Rect {
	return NewRect(math.Round(r.X()), math.Round(r.Y()), math.Round(r.Width()), math.Round(r.Height()))
}
