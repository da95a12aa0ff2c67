package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"github.com/rocketscienceinc/othello-backend/internal/apperror"
	"github.com/rocketscienceinc/othello-backend/internal/entity"
	"github.com/rocketscienceinc/othello-backend/internal/othello"
)

type gameRepo interface {
	CreateOrUpdate(ctx context.Context, game *entity.Game) error
	GetByID(ctx context.Context, id string) (*entity.Game, error)
	DeleteByID(ctx context.Context, id string) error
}

// GameManager keeps play sessions and runs at most one mutation per session at a time.
type GameManager struct {
	logger   *slog.Logger
	gameRepo gameRepo

	locksMutex sync.Mutex
	locks      map[string]*sync.Mutex
}

func NewGameManager(logger *slog.Logger, gameRepo gameRepo) *GameManager {
	return &GameManager{
		logger:   logger.With("component", "game_manager"),
		gameRepo: gameRepo,
		locks:    make(map[string]*sync.Mutex),
	}
}

// CreateGame - starts a new session with firstSide to move.
func (that *GameManager) CreateGame(ctx context.Context, firstSide othello.Side) (*entity.Game, error) {
	if !firstSide.Valid() {
		return nil, fmt.Errorf("failed create game: %w: %d", apperror.ErrInvalidSide, int(firstSide))
	}

	game := entity.NewGame(uuid.NewString(), firstSide)
	if err := that.gameRepo.CreateOrUpdate(ctx, game); err != nil {
		return nil, fmt.Errorf("failed to create game: %w", err)
	}

	that.logger.Info("game created", "gameID", game.ID, "firstSide", firstSide.String())

	return game, nil
}

func (that *GameManager) GetGame(ctx context.Context, id string) (*entity.Game, error) {
	game, err := that.gameRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed get game by id: %w", err)
	}

	return game, nil
}

func (that *GameManager) AvailableCoords(ctx context.Context, id string) ([]othello.Coord, error) {
	game, err := that.GetGame(ctx, id)
	if err != nil {
		return nil, err
	}

	return game.AvailableCoords(), nil
}

// PlaceDisc - places the current side's disc. An illegal square is ignored and
// the unchanged game is returned.
func (that *GameManager) PlaceDisc(ctx context.Context, id string, c othello.Coord) (*entity.Game, error) {
	log := that.logger.With("method", "PlaceDisc", "gameID", id)

	return that.mutate(ctx, id, func(game *entity.Game) (bool, error) {
		side := game.CurrentSide()
		if !game.PlaceDisc(c) {
			log.Debug("ignored illegal placement", "side", side.String(), "coord", c.String())
			return false, nil
		}

		log.Debug("disc placed", "side", side.String(), "coord", c.String())

		return true, nil
	})
}

// Skip - passes the turn. It does not check whether the side had a move.
func (that *GameManager) Skip(ctx context.Context, id string) (*entity.Game, error) {
	log := that.logger.With("method", "Skip", "gameID", id)

	return that.mutate(ctx, id, func(game *entity.Game) (bool, error) {
		if !game.ShouldSkip() {
			log.Warn("skipping while moves are available", "side", game.CurrentSide().String())
		}

		game.Skip()
		log.Debug("turn skipped", "next", game.CurrentSide().String())

		return true, nil
	})
}

func (that *GameManager) RevertTo(ctx context.Context, id string, n int) (*entity.Game, error) {
	log := that.logger.With("method", "RevertTo", "gameID", id)

	return that.mutate(ctx, id, func(game *entity.Game) (bool, error) {
		if err := game.RevertTo(n); err != nil {
			return false, err
		}

		log.Debug("game reverted", "index", n, "history", len(game.History))

		return true, nil
	})
}

// EndGame - drops the session.
func (that *GameManager) EndGame(ctx context.Context, id string) error {
	lock := that.lockFor(id)
	lock.Lock()
	defer lock.Unlock()

	if err := that.gameRepo.DeleteByID(ctx, id); err != nil {
		return fmt.Errorf("failed delete game: %w", err)
	}

	that.locksMutex.Lock()
	delete(that.locks, id)
	that.locksMutex.Unlock()

	that.logger.Info("game ended", "gameID", id)

	return nil
}

// mutate loads the game, applies change and stores the result when change
// reports a modification.
func (that *GameManager) mutate(ctx context.Context, id string, change func(game *entity.Game) (bool, error)) (*entity.Game, error) {
	lock := that.lockFor(id)
	lock.Lock()
	defer lock.Unlock()

	game, err := that.gameRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed get game by id: %w", err)
	}

	changed, err := change(game)
	if err != nil {
		return nil, fmt.Errorf("failed update game: %w", err)
	}

	if !changed {
		return game, nil
	}

	if err = that.gameRepo.CreateOrUpdate(ctx, game); err != nil {
		that.logger.Error("could not store game", "gameID", id, "error", err)
		return nil, fmt.Errorf("failed update game: %w", err)
	}

	return game, nil
}

func (that *GameManager) lockFor(id string) *sync.Mutex {
	that.locksMutex.Lock()
	defer that.locksMutex.Unlock()

	lock, ok := that.locks[id]
	if !ok {
		lock = &sync.Mutex{}
		that.locks[id] = lock
	}

	return lock
}
