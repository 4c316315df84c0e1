package hex

// Direction names one of the six neighbours of a cell.
type Direction int

const (
	East Direction = iota
	NorthEast
	NorthWest
	West
	SouthWest
	SouthEast
)

// Directions lists every direction in the order used for successor
// generation. Pathfinding depends on this order being stable.
var Directions = [6]Direction{East, NorthEast, NorthWest, West, SouthWest, SouthEast}

var directionOffsets = [6]Cell{
	{q: 1, r: 0, s: -1},
	{q: 1, r: -1, s: 0},
	{q: 0, r: -1, s: 1},
	{q: -1, r: 0, s: 1},
	{q: -1, r: 1, s: 0},
	{q: 0, r: 1, s: -1},
}

func (d Direction) offset() Cell {
	return directionOffsets[((int(d)%6)+6)%6]
}

// String returns a human-readable direction name.
func (d Direction) String() string {
	switch d {
	case East:
		return "east"
	case NorthEast:
		return "north_east"
	case NorthWest:
		return "north_west"
	case West:
		return "west"
	case SouthWest:
		return "south_west"
	case SouthEast:
		return "south_east"
	default:
		return "unknown"
	}
}
