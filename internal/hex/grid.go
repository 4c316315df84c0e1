package hex

// Grid returns every cell within radius steps of the origin, ordered by q
// then r. A negative radius yields an empty grid.
func Grid(radius int) []Cell {
	if radius < 0 {
		return nil
	}
	cells := make([]Cell, 0, 3*radius*(radius+1)+1)
	for q := -radius; q <= radius; q++ {
		for r := -radius; r <= radius; r++ {
			c := FromAxial(q, r)
			if Distance(c, Zero()) > radius {
				continue
			}
			cells = append(cells, c)
		}
	}
	return cells
}
