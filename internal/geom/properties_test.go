package geom

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

var sampleRects = map[string]Rect{
	"origin square":  NewRect(0, 0, 10, 10),
	"offset wide":    NewRect(10, 30, 100, 20),
	"negative pos":   NewRect(-40, -15.5, 12.25, 80),
	"fractional":     NewRect(0.3, 7.7, 19.49, 10.5),
	"large":          NewRect(1e6, -2e6, 3e5, 4e5),
	"thin but valid": NewRect(5, 5, 10, 400),
}

func TestProperties_AboveMaxY(t *testing.T) {
	for name, r := range sampleRects {
		for _, m := range []float64{0, 1, 7.5, 100} {
			above := r.Above(m)
			assert.InDelta(t, r.MinY(), above.MaxY()+m, 1e-6, "%s margin %g", name, m)
		}
	}
}

func TestProperties_RoundIdempotent(t *testing.T) {
	for name, r := range sampleRects {
		once := r.Round()
		assert.Equal(t, once, once.Round(), name)
	}
}

func TestProperties_CenterRelativeToOrigin(t *testing.T) {
	for name, r := range sampleRects {
		assert.Equal(t, r.Center(true), r.Center(false).Add(r.Origin), name)
	}
}

func TestProperties_GrowShrinkRoundTrip(t *testing.T) {
	for name, r := range sampleRects {
		assert.True(t, r.GrowBy(5).ShrinkBy(5).Equal(r), name)
	}
}

func TestProperties_Sentinels(t *testing.T) {
	points := []Point{{0, 0}, {-1e12, 1e12}, {3.5, -7}, {1e300, -1e300}}
	for _, p := range points {
		assert.False(t, Null().ContainsPoint(p), "Null contains %+v", p)
		assert.True(t, Infinite().ContainsPoint(p), "Infinite misses %+v", p)
	}
	for name, r := range sampleRects {
		assert.True(t, Infinite().ContainsRect(r), name)
		assert.False(t, Null().ContainsRect(r), name)
	}
}

func TestProperties_UnionContainsOperands(t *testing.T) {
	for nameA, a := range sampleRects {
		for nameB, b := range sampleRects {
			u := a.Union(b)
			assert.True(t, u.ContainsRect(a), "%s ∪ %s misses %s", nameA, nameB, nameA)
			assert.True(t, u.ContainsRect(b), "%s ∪ %s misses %s", nameA, nameB, nameB)
		}
	}
}

func TestProperties_ScaleRoundTrip(t *testing.T) {
	for name, r := range sampleRects {
		assert.True(t, r.Mul(2).Div(2).Equal(r), name)
		assert.True(t, r.Mul(3).Div(3).Equal(r), name)
	}
}

func TestProperties_MakeMatchesNewRect(t *testing.T) {
	assert.Equal(t, Empty(), Make())
	got := Make(WithX(10), WithY(30), WithWidth(100), WithHeight(20))
	assert.Equal(t, Point{X: 10, Y: 30}, got.Origin)
	assert.Equal(t, Size{Width: 100, Height: 20}, got.Size)
}
