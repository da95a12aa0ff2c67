package othello

import (
	"fmt"

	"github.com/rocketscienceinc/othello-backend/internal/apperror"
)

// Size is the number of rows and columns of the board.
const Size = 8

type SquareStatus int

const (
	Vacant SquareStatus = iota
	White
	Black
)

const (
	statusVacant = "vacant"
	statusWhite  = "white"
	statusBlack  = "black"
)

func (s SquareStatus) String() string {
	switch s {
	case Vacant:
		return statusVacant
	case White:
		return statusWhite
	case Black:
		return statusBlack
	default:
		return fmt.Sprintf("SquareStatus(%d)", int(s))
	}
}

func (s SquareStatus) MarshalText() ([]byte, error) {
	switch s {
	case Vacant, White, Black:
		return []byte(s.String()), nil
	default:
		return nil, fmt.Errorf("unknown square status %d", int(s))
	}
}

func (s *SquareStatus) UnmarshalText(text []byte) error {
	switch string(text) {
	case statusVacant:
		*s = Vacant
	case statusWhite:
		*s = White
	case statusBlack:
		*s = Black
	default:
		return fmt.Errorf("unknown square status %q", text)
	}

	return nil
}

// Coord is a 1-based (row, column) position on the board.
type Coord struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

func (c Coord) InRange() bool {
	return c.Row >= 1 && c.Row <= Size && c.Col >= 1 && c.Col <= Size
}

func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

// Board maps every coordinate of the 8x8 grid to a square status.
// It is a value: Set and the capture operations return a modified copy and
// never touch the receiver.
type Board [Size][Size]SquareStatus

// NewBoard returns the opening position.
func NewBoard() Board {
	var b Board
	b[3][3], b[4][4] = White, White
	b[3][4], b[4][3] = Black, Black

	return b
}

func (b Board) StatusAt(c Coord) (SquareStatus, error) {
	if !c.InRange() {
		return Vacant, fmt.Errorf("%w: %s", apperror.ErrOutOfRange, c)
	}

	return b.at(c), nil
}

func (b Board) Set(c Coord, status SquareStatus) (Board, error) {
	if !c.InRange() {
		return b, fmt.Errorf("%w: %s", apperror.ErrOutOfRange, c)
	}

	return b.with(c, status), nil
}

// Count returns how many squares hold the given status.
func (b Board) Count(status SquareStatus) int {
	n := 0
	for _, row := range b {
		for _, square := range row {
			if square == status {
				n++
			}
		}
	}

	return n
}

// Coords lists every coordinate of the grid in row-major order.
func Coords() []Coord {
	coords := make([]Coord, 0, Size*Size)
	for row := 1; row <= Size; row++ {
		for col := 1; col <= Size; col++ {
			coords = append(coords, Coord{Row: row, Col: col})
		}
	}

	return coords
}

// at and with assume c is in range.
func (b Board) at(c Coord) SquareStatus {
	return b[c.Row-1][c.Col-1]
}

func (b Board) with(c Coord, status SquareStatus) Board {
	b[c.Row-1][c.Col-1] = status
	return b
}
