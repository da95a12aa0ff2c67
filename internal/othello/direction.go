package othello

type Direction int

const (
	North Direction = iota
	NorthEast
	East
	SouthEast
	South
	SouthWest
	West
	NorthWest
)

// Directions holds the eight compass directions.
var Directions = [...]Direction{North, NorthEast, East, SouthEast, South, SouthWest, West, NorthWest}

// unit vectors as (row, col) deltas; rows grow southwards.
var deltas = [...][2]int{
	North:     {-1, 0},
	NorthEast: {-1, 1},
	East:      {0, 1},
	SouthEast: {1, 1},
	South:     {1, 0},
	SouthWest: {1, -1},
	West:      {0, -1},
	NorthWest: {-1, -1},
}

func (d Direction) String() string {
	switch d {
	case North:
		return "N"
	case NorthEast:
		return "NE"
	case East:
		return "E"
	case SouthEast:
		return "SE"
	case South:
		return "S"
	case SouthWest:
		return "SW"
	case West:
		return "W"
	case NorthWest:
		return "NW"
	default:
		return "?"
	}
}

// Neighbor returns the coordinate one step from c in direction d.
// ok is false when the step leaves the board or d is not a compass direction.
func Neighbor(c Coord, d Direction) (Coord, bool) {
	if d < North || d > NorthWest {
		return Coord{}, false
	}

	next := Coord{Row: c.Row + deltas[d][0], Col: c.Col + deltas[d][1]}
	if !next.InRange() {
		return Coord{}, false
	}

	return next, true
}
