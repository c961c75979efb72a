package geom

import (
	"bytes"
	"testing"

	"github.com/grindlemire/geomotion/internal/debug"
	"github.com/stretchr/testify/assert"
)

func TestLayout(t *testing.T) {
	ref := NewRect(100, 100, 50, 20)
	other := NewRect(0, 300, 10, 10)
	rect := NewRect(7, 7, 30, 10)

	type tc struct {
		opts     []LayoutOption
		expected Rect
	}

	tests := map[string]tc{
		"above with bottom margin": {
			opts:     []LayoutOption{Above(ref), WithMargins(0, 0, 5, 0)},
			expected: NewRect(0, 85, 30, 10),
		},
		"below with top margin": {
			opts:     []LayoutOption{Below(ref), WithMargins(5)},
			expected: NewRect(0, 125, 30, 10),
		},
		"left of with right margin": {
			opts:     []LayoutOption{LeftOf(ref), WithMargins(0, 3)},
			expected: NewRect(67, 0, 30, 10),
		},
		"right of with left margin": {
			opts:     []LayoutOption{RightOf(ref), WithMargins(0, 0, 0, 4)},
			expected: NewRect(154, 0, 30, 10),
		},
		"above and left of": {
			opts:     []LayoutOption{Above(ref), LeftOf(ref), WithMargins(1, 2, 3, 4)},
			expected: NewRect(68, 87, 30, 10),
		},
		"below wins over above": {
			opts:     []LayoutOption{Above(ref), Below(other), WithMargins(0, 0, 5, 0)},
			expected: NewRect(0, 310, 30, 10),
		},
		"below wins regardless of option order": {
			opts:     []LayoutOption{Below(other), Above(ref)},
			expected: NewRect(0, 310, 30, 10),
		},
		"right of wins over left of": {
			opts:     []LayoutOption{RightOf(other), LeftOf(ref)},
			expected: NewRect(10, 0, 30, 10),
		},
		"margins only resets origin": {
			opts:     []LayoutOption{WithMargins(1, 2, 3, 4)},
			expected: NewRect(0, 0, 30, 10),
		},
		"extra margins ignored": {
			opts:     []LayoutOption{Below(ref), WithMargins(1, 2, 3, 4, 5, 6)},
			expected: NewRect(0, 121, 30, 10),
		},
		"no margins": {
			opts:     []LayoutOption{Below(ref)},
			expected: NewRect(0, 120, 30, 10),
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := Layout(rect, tt.opts...); got != tt.expected {
				t.Errorf("Layout() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestLayout_NoOptions(t *testing.T) {
	var buf bytes.Buffer
	debug.SetOutput(&buf)
	defer debug.SetOutput(nil)

	rect := NewRect(7, 8, 9, 10)
	got := Layout(rect)

	assert.Equal(t, rect, got)
	assert.Contains(t, buf.String(), "no options provided")
	assert.Contains(t, buf.String(), "Rect([7, 8], [9, 10])")
}
