package hex

import "math"

// DefaultCellSize is the centre-to-corner distance used when none is configured.
const DefaultCellSize = 40.0

const sqrt3 = 1.7320508075688772935274463415059

// Point is a position on the continuous 2D plane.
type Point struct {
	X, Y float64
}

// Add returns p+o.
func (p Point) Add(o Point) Point { return Point{X: p.X + o.X, Y: p.Y + o.Y} }

// Sub returns p-o.
func (p Point) Sub(o Point) Point { return Point{X: p.X - o.X, Y: p.Y - o.Y} }

// Scale returns p multiplied by f.
func (p Point) Scale(f float64) Point { return Point{X: p.X * f, Y: p.Y * f} }

// Length returns the euclidean length of p.
func (p Point) Length() float64 { return math.Hypot(p.X, p.Y) }

// Layout converts between cells and plane coordinates for pointy-top hexagons.
// Grid logic never goes through a Layout; it exists for visibility geometry.
type Layout struct {
	Size float64
}

// NewLayout returns a layout with the given cell size, falling back to
// DefaultCellSize for non-positive values.
func NewLayout(size float64) Layout {
	if size <= 0 {
		size = DefaultCellSize
	}
	return Layout{Size: size}
}

// ToPoint returns the centre of c.
func (l Layout) ToPoint(c Cell) Point {
	q, r := float64(c.q), float64(c.r)
	return Point{
		X: l.Size * (sqrt3*q + sqrt3/2*r),
		Y: l.Size * (3.0 / 2.0 * r),
	}
}

// FromPoint returns the cell containing p.
func (l Layout) FromPoint(p Point) Cell {
	q := (sqrt3/3*p.X - 1.0/3*p.Y) / l.Size
	r := (2.0 / 3 * p.Y) / l.Size
	return cubeRound(q, r, -q-r)
}

// Corners returns the outline of c, starting at the upper-left corner and
// going clockwise.
func (l Layout) Corners(c Cell) [6]Point {
	centre := l.ToPoint(c)
	halfWidth := sqrt3 * l.Size / 2
	half := l.Size
	quarter := l.Size / 2
	return [6]Point{
		centre.Add(Point{X: -halfWidth, Y: -quarter}),
		centre.Add(Point{X: 0, Y: -half}),
		centre.Add(Point{X: halfWidth, Y: -quarter}),
		centre.Add(Point{X: halfWidth, Y: quarter}),
		centre.Add(Point{X: 0, Y: half}),
		centre.Add(Point{X: -halfWidth, Y: quarter}),
	}
}

func cubeRound(q, r, s float64) Cell {
	rq := math.Round(q)
	rr := math.Round(r)
	rs := math.Round(s)

	dq := math.Abs(rq - q)
	dr := math.Abs(rr - r)
	ds := math.Abs(rs - s)

	if dq > dr && dq > ds {
		rq = -rr - rs
	} else if dr > ds {
		rr = -rq - rs
	} else {
		rs = -rq - rr
	}
	return Cell{q: int(rq), r: int(rr), s: int(rs)}
}
