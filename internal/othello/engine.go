package othello

import (
	"fmt"

	"github.com/rocketscienceinc/othello-backend/internal/apperror"
)

// PossibleCaptureStatus - returns the disc color placed by side.
func PossibleCaptureStatus(side Side) (SquareStatus, error) {
	switch side {
	case WhiteSide:
		return White, nil
	case BlackSide:
		return Black, nil
	default:
		return Vacant, fmt.Errorf("%w: %d", apperror.ErrInvalidSide, int(side))
	}
}

// ExistsCaptureAnchor walks from c in direction d across opposing squares and
// reports whether the walk ends on a square holding target.
func ExistsCaptureAnchor(board Board, c Coord, d Direction, target SquareStatus) bool {
	current := c
	for range Size - 1 {
		next, ok := Neighbor(current, d)
		if !ok {
			return false
		}

		switch board.at(next) {
		case Vacant:
			return false
		case target:
			return true
		}

		current = next
	}

	return false
}

// CanCaptureInDirection reports whether placing target at c would flip at
// least one square in direction d.
func CanCaptureInDirection(board Board, c Coord, d Direction, target SquareStatus) bool {
	next, ok := Neighbor(c, d)
	if !ok {
		return false
	}

	if status := board.at(next); status == Vacant || status == target {
		return false
	}

	return ExistsCaptureAnchor(board, next, d, target)
}

// CanPlace - checks if side may place a disc at c.
func CanPlace(board Board, c Coord, side Side) bool {
	status, err := board.StatusAt(c)
	if err != nil || status != Vacant {
		return false
	}

	target, err := PossibleCaptureStatus(side)
	if err != nil {
		return false
	}

	for _, d := range Directions {
		if CanCaptureInDirection(board, c, d, target) {
			return true
		}
	}

	return false
}

// AvailableCoords returns every coordinate where side may place a disc, in
// row-major order. An empty result means side has to skip.
func AvailableCoords(board Board, side Side) []Coord {
	available := make([]Coord, 0)
	for _, c := range Coords() {
		if CanPlace(board, c, side) {
			available = append(available, c)
		}
	}

	return available
}

// ApplyCapture flips the capture line starting next to c in direction d.
// The board is returned unchanged when there is nothing to flip.
func ApplyCapture(board Board, c Coord, d Direction, target SquareStatus) Board {
	current := c
	for range Size - 1 {
		if !CanCaptureInDirection(board, current, d, target) {
			break
		}

		next, _ := Neighbor(current, d)
		board = board.with(next, target)
		current = next
	}

	return board
}

// PlaceDisc - puts side's disc at c and flips every captured line.
// An illegal placement returns the board unchanged.
func PlaceDisc(board Board, c Coord, side Side) Board {
	if !CanPlace(board, c, side) {
		return board
	}

	// CanPlace already rejected invalid sides.
	target, _ := PossibleCaptureStatus(side)

	placed := board.with(c, target)
	for _, d := range Directions {
		placed = ApplyCapture(placed, c, d, target)
	}

	return placed
}
