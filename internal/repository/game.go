package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/rocketscienceinc/othello-backend/internal/entity"
)

var ErrGameNotFound = errors.New("game not found")

type GameRepository interface {
	CreateOrUpdate(ctx context.Context, game *entity.Game) error
	GetByID(ctx context.Context, id string) (*entity.Game, error)
	DeleteByID(ctx context.Context, id string) error
}

// memoryGame keeps JSON snapshots so callers never share state with the store.
type memoryGame struct {
	mutex sync.RWMutex
	games map[string][]byte
}

func NewGameRepository() GameRepository {
	return &memoryGame{
		games: make(map[string][]byte),
	}
}

func (that *memoryGame) CreateOrUpdate(ctx context.Context, game *entity.Game) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("failed to set game: %w", err)
	}

	gameJSON, err := json.Marshal(game)
	if err != nil {
		return fmt.Errorf("could not marshal game: %w", err)
	}

	that.mutex.Lock()
	that.games[gameKey(game.ID)] = gameJSON
	that.mutex.Unlock()

	return nil
}

func (that *memoryGame) GetByID(ctx context.Context, id string) (*entity.Game, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("failed to get game: %w", err)
	}

	that.mutex.RLock()
	response, ok := that.games[gameKey(id)]
	that.mutex.RUnlock()

	if !ok {
		return nil, ErrGameNotFound
	}

	var existingGame entity.Game
	if err := json.Unmarshal(response, &existingGame); err != nil {
		return nil, fmt.Errorf("failed to unmarshal game: %w", err)
	}

	return &existingGame, nil
}

func (that *memoryGame) DeleteByID(ctx context.Context, id string) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("failed to delete game: %w", err)
	}

	key := gameKey(id)

	that.mutex.Lock()
	defer that.mutex.Unlock()

	if _, ok := that.games[key]; !ok {
		return ErrGameNotFound
	}
	delete(that.games, key)

	return nil
}

func gameKey(id string) string {
	return "game:" + id
}
