package entity

import (
	"fmt"
	"slices"

	"github.com/rocketscienceinc/othello-backend/internal/apperror"
	"github.com/rocketscienceinc/othello-backend/internal/othello"
)

// HistoryEntry is a snapshot of the session taken after an action.
// PlacedSide is zero and Coord is nil for the initial entry and for skips.
type HistoryEntry struct {
	Board      othello.Board  `json:"board"`
	Turn       othello.Side   `json:"turn"`
	PlacedSide othello.Side   `json:"placed_side,omitempty"`
	Coord      *othello.Coord `json:"coord,omitempty"`
	Skip       bool           `json:"skip"`
}

// Game is a single play session. It is not safe for concurrent mutation.
type Game struct {
	ID      string         `json:"id"`
	Board   othello.Board  `json:"board"`
	Turn    othello.Side   `json:"turn"`
	History []HistoryEntry `json:"history"`
}

func NewGame(id string, firstSide othello.Side) *Game {
	game := &Game{
		ID:    id,
		Board: othello.NewBoard(),
		Turn:  firstSide,
	}
	game.addHistory(0, nil, false)

	return game
}

func (that *Game) CurrentBoard() othello.Board {
	return that.Board
}

func (that *Game) CurrentSide() othello.Side {
	return that.Turn
}

func (that *Game) CanPlace(c othello.Coord) bool {
	return othello.CanPlace(that.Board, c, that.Turn)
}

func (that *Game) AvailableCoords() []othello.Coord {
	return othello.AvailableCoords(that.Board, that.Turn)
}

// ShouldSkip reports whether the side to move has no legal placement.
func (that *Game) ShouldSkip() bool {
	return len(that.AvailableCoords()) == 0
}

// PlaceDisc places the current side's disc at c and passes the turn.
// An illegal placement leaves the game untouched and returns false.
func (that *Game) PlaceDisc(c othello.Coord) bool {
	if !that.CanPlace(c) {
		return false
	}

	that.Board = othello.PlaceDisc(that.Board, c, that.Turn)
	placedSide := that.Turn
	that.Turn = that.Turn.Opponent()
	that.addHistory(placedSide, &c, false)

	return true
}

// Skip passes the turn without checking that the current side has no move.
func (that *Game) Skip() {
	that.Turn = that.Turn.Opponent()
	that.addHistory(0, nil, true)
}

// RevertTo restores the state recorded in History[n] and drops every later entry.
func (that *Game) RevertTo(n int) error {
	if n < 0 || n >= len(that.History) {
		return fmt.Errorf("%w: %d of %d", apperror.ErrInvalidHistoryIndex, n, len(that.History))
	}

	entry := that.History[n]
	that.Board = entry.Board
	that.Turn = entry.Turn
	that.History = slices.Clip(that.History[:n+1])

	return nil
}

// Score returns the number of white and black discs on the board.
func (that *Game) Score() (white, black int) {
	return that.Board.Count(othello.White), that.Board.Count(othello.Black)
}

// DetermineResult reports whether neither side can place a disc and, if so,
// which side holds more discs. A draw yields a zero winner.
func (that *Game) DetermineResult() (winner othello.Side, finished bool) {
	if len(othello.AvailableCoords(that.Board, othello.WhiteSide)) > 0 ||
		len(othello.AvailableCoords(that.Board, othello.BlackSide)) > 0 {
		return 0, false
	}

	white, black := that.Score()
	switch {
	case white > black:
		return othello.WhiteSide, true
	case black > white:
		return othello.BlackSide, true
	default:
		return 0, true
	}
}

// Clone returns a deep copy of the game.
func (that *Game) Clone() *Game {
	clone := *that
	clone.History = make([]HistoryEntry, len(that.History))
	for i, entry := range that.History {
		if entry.Coord != nil {
			c := *entry.Coord
			entry.Coord = &c
		}
		clone.History[i] = entry
	}

	return &clone
}

func (that *Game) addHistory(placedSide othello.Side, c *othello.Coord, skip bool) {
	that.History = append(that.History, HistoryEntry{
		Board:      that.Board,
		Turn:       that.Turn,
		PlacedSide: placedSide,
		Coord:      c,
		Skip:       skip,
	})
}
