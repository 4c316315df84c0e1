package hex

import (
	"math"
	"testing"
)

func TestLayoutRoundTrip(t *testing.T) {
	layout := NewLayout(40)
	for _, c := range Grid(6) {
		if got := layout.FromPoint(layout.ToPoint(c)); got != c {
			t.Errorf("FromPoint(ToPoint(%v)) = %v", c, got)
		}
	}
}

func TestLayoutToPoint(t *testing.T) {
	layout := NewLayout(10)

	p := layout.ToPoint(FromAxial(1, 0))
	if math.Abs(p.X-10*sqrt3) > 1e-9 || p.Y != 0 {
		t.Errorf("ToPoint(1,0) = %+v, want (%.3f, 0)", p, 10*sqrt3)
	}

	p = layout.ToPoint(FromAxial(0, 2))
	if math.Abs(p.X-20*sqrt3/2) > 1e-9 || math.Abs(p.Y-30) > 1e-9 {
		t.Errorf("ToPoint(0,2) = %+v", p)
	}
}

func TestLayoutFromPointNearCentre(t *testing.T) {
	layout := NewLayout(40)
	c := FromAxial(-2, 3)
	centre := layout.ToPoint(c)
	jitter := []Point{{5, 5}, {-10, 3}, {0, -12}, {15, 0}}
	for _, j := range jitter {
		if got := layout.FromPoint(centre.Add(j)); got != c {
			t.Errorf("FromPoint(centre+%+v) = %v, want %v", j, got, c)
		}
	}
}

func TestNewLayoutDefaultSize(t *testing.T) {
	if got := NewLayout(0).Size; got != DefaultCellSize {
		t.Errorf("NewLayout(0).Size = %v, want %v", got, DefaultCellSize)
	}
}

func TestCornersAtCellSize(t *testing.T) {
	layout := NewLayout(20)
	c := FromAxial(1, 1)
	centre := layout.ToPoint(c)
	for i, p := range layout.Corners(c) {
		if d := p.Sub(centre).Length(); math.Abs(d-20) > 1e-9 {
			t.Errorf("corner %d at distance %.4f, want 20", i, d)
		}
	}
}
