// Package hex provides cube/axial hexagon coordinates and their geometry.
//
// Coordinates follow the cube system (q, r, s) with the constraint q+r+s = 0.
// Axial input (q, r) derives s. See https://www.redblobgames.com/grids/hexagons/.
package hex

import (
	"errors"
	"fmt"
)

// ErrInvalidCube is returned when cube coordinates do not sum to zero.
var ErrInvalidCube = errors.New("cube coordinates must satisfy q+r+s=0")

// Cell is a position on the hex grid. Cells are comparable and safe to use
// as map keys.
type Cell struct {
	q, r, s int
}

// Zero returns the origin cell.
func Zero() Cell {
	return Cell{}
}

// FromAxial creates a cell from axial coordinates, deriving s = -q-r.
func FromAxial(q, r int) Cell {
	return Cell{q: q, r: r, s: -q - r}
}

// FromCube creates a cell from cube coordinates.
func FromCube(q, r, s int) (Cell, error) {
	if q+r+s != 0 {
		return Cell{}, fmt.Errorf("cell (%d,%d,%d): %w", q, r, s, ErrInvalidCube)
	}
	return Cell{q: q, r: r, s: s}, nil
}

// Q returns the q coordinate.
func (c Cell) Q() int { return c.q }

// R returns the r coordinate.
func (c Cell) R() int { return c.r }

// S returns the s coordinate.
func (c Cell) S() int { return c.s }

// String returns the cube coordinates as "(q,r,s)".
func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d,%d)", c.q, c.r, c.s)
}

// Distance returns the number of steps between two cells.
func Distance(a, b Cell) int {
	return (abs(a.q-b.q) + abs(a.r-b.r) + abs(a.s-b.s)) / 2
}

// DistanceTo is the method form of Distance.
func (c Cell) DistanceTo(other Cell) int {
	return Distance(c, other)
}

// IsNeighbour reports whether a and b are adjacent.
func IsNeighbour(a, b Cell) bool {
	return Distance(a, b) == 1
}

// Neighbour returns the adjacent cell in the given direction.
func (c Cell) Neighbour(d Direction) Cell {
	off := d.offset()
	return Cell{q: c.q + off.q, r: c.r + off.r, s: c.s + off.s}
}

// Neighbours returns all six adjacent cells in Directions order.
func (c Cell) Neighbours() [6]Cell {
	var result [6]Cell
	for i, d := range Directions {
		result[i] = c.Neighbour(d)
	}
	return result
}

// MoveQ moves the cell n steps along q with r held fixed.
func (c Cell) MoveQ(n int) Cell {
	return Cell{q: c.q + n, r: c.r, s: c.s - n}
}

// MoveR moves the cell n steps along r with q held fixed.
func (c Cell) MoveR(n int) Cell {
	return Cell{q: c.q, r: c.r + n, s: c.s - n}
}

// MoveS moves the cell n steps with s held fixed.
func (c Cell) MoveS(n int) Cell {
	return Cell{q: c.q - n, r: c.r + n, s: c.s}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
