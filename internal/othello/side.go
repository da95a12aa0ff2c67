package othello

import (
	"fmt"

	"github.com/rocketscienceinc/othello-backend/internal/apperror"
)

// Side is one of the two players. The zero value means no side.
type Side int

const (
	WhiteSide Side = iota + 1
	BlackSide
)

const (
	sideWhite = "white"
	sideBlack = "black"
)

func (s Side) Valid() bool {
	return s == WhiteSide || s == BlackSide
}

// Opponent returns the side that moves after s.
func (s Side) Opponent() Side {
	if s == WhiteSide {
		return BlackSide
	}
	return WhiteSide
}

func (s Side) String() string {
	switch s {
	case WhiteSide:
		return sideWhite
	case BlackSide:
		return sideBlack
	case 0:
		return "none"
	default:
		return fmt.Sprintf("Side(%d)", int(s))
	}
}

func (s Side) MarshalText() ([]byte, error) {
	if !s.Valid() {
		return nil, fmt.Errorf("%w: %d", apperror.ErrInvalidSide, int(s))
	}

	return []byte(s.String()), nil
}

func (s *Side) UnmarshalText(text []byte) error {
	side, err := ParseSide(string(text))
	if err != nil {
		return err
	}

	*s = side

	return nil
}

// ParseSide - converts "white" or "black" into a Side.
func ParseSide(name string) (Side, error) {
	switch name {
	case sideWhite:
		return WhiteSide, nil
	case sideBlack:
		return BlackSide, nil
	default:
		return 0, fmt.Errorf("%w: %q", apperror.ErrInvalidSide, name)
	}
}
