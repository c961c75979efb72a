package geom

import "testing"

func TestRect_WithBuilders(t *testing.T) {
	r := NewRect(10, 20, 30, 40)

	type tc struct {
		got      Rect
		expected Rect
	}

	tests := map[string]tc{
		"WithX":      {got: r.WithX(99), expected: NewRect(99, 20, 30, 40)},
		"WithY":      {got: r.WithY(99), expected: NewRect(10, 99, 30, 40)},
		"WithWidth":  {got: r.WithWidth(99), expected: NewRect(10, 20, 99, 40)},
		"WithHeight": {got: r.WithHeight(99), expected: NewRect(10, 20, 30, 99)},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if tt.got != tt.expected {
				t.Errorf("%s = %v, want %v", name, tt.got, tt.expected)
			}
		})
	}

	if r != NewRect(10, 20, 30, 40) {
		t.Errorf("receiver changed to %v", r)
	}
}

func TestRect_Setters(t *testing.T) {
	r := NewRect(10, 20, 30, 40)
	r.SetX(1)
	r.SetY(2)
	r.SetWidth(3)
	r.SetHeight(4)

	if want := NewRect(1, 2, 3, 4); r != want {
		t.Errorf("after setters rect = %v, want %v", r, want)
	}
}

func TestRect_Move(t *testing.T) {
	r := NewRect(10, 20, 30, 40)

	type tc struct {
		got      Rect
		expected Rect
	}

	tests := map[string]tc{
		"left":        {got: r.Left(5), expected: NewRect(5, 20, 30, 40)},
		"right":       {got: r.Right(5), expected: NewRect(15, 20, 30, 40)},
		"up":          {got: r.Up(5), expected: NewRect(10, 15, 30, 40)},
		"down":        {got: r.Down(5), expected: NewRect(10, 25, 30, 40)},
		"zero":        {got: r.Left(0), expected: r},
		"wider":       {got: r.Wider(5), expected: NewRect(10, 20, 35, 40)},
		"thinner":     {got: r.Thinner(5), expected: NewRect(10, 20, 25, 40)},
		"taller":      {got: r.Taller(5), expected: NewRect(10, 20, 30, 45)},
		"shorter":     {got: r.Shorter(5), expected: NewRect(10, 20, 30, 35)},
		"not clamped": {got: r.Thinner(50), expected: NewRect(10, 20, -20, 40)},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if tt.got != tt.expected {
				t.Errorf("got %v, want %v", tt.got, tt.expected)
			}
		})
	}
}

func TestRect_Adjacent(t *testing.T) {
	r := NewRect(100, 100, 50, 20)

	type tc struct {
		got      Rect
		expected Rect
	}

	tests := map[string]tc{
		"above":             {got: r.Above(0), expected: NewRect(100, 80, 50, 20)},
		"above with margin": {got: r.Above(5), expected: NewRect(100, 75, 50, 20)},
		"above with height": {got: r.AboveWithHeight(5, 10), expected: NewRect(100, 85, 50, 10)},
		"below":             {got: r.Below(0), expected: NewRect(100, 120, 50, 20)},
		"below with margin": {got: r.Below(5), expected: NewRect(100, 125, 50, 20)},
		"before":            {got: r.Before(5), expected: NewRect(45, 100, 50, 20)},
		"before with width": {got: r.BeforeWithWidth(5, 10), expected: NewRect(85, 100, 10, 20)},
		"beside":            {got: r.Beside(5), expected: NewRect(155, 100, 50, 20)},
		"beside with width": {got: r.BesideWithWidth(5, 10), expected: NewRect(155, 100, 10, 20)},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if tt.got != tt.expected {
				t.Errorf("got %v, want %v", tt.got, tt.expected)
			}
		})
	}
}
