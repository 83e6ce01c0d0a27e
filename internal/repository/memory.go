package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
)

type memoryGame struct {
	mu       sync.Mutex
	snapshot []byte
}

// NewMemoryGameRepository - in-process snapshot store used when resume is
// disabled, so the rest of the app never branches on whether redis is
// around. The snapshot is stored marshalled, matching the redis
// repository, so callers never share state with the stored copy.
func NewMemoryGameRepository() GameRepository {
	return &memoryGame{}
}

func (that *memoryGame) Save(_ context.Context, game *entity.Game) error {
	gameJSON, err := json.Marshal(game)
	if err != nil {
		return fmt.Errorf("could not marshal game: %w", err)
	}

	that.mu.Lock()
	defer that.mu.Unlock()
	that.snapshot = gameJSON

	return nil
}

func (that *memoryGame) Load(_ context.Context) (*entity.Game, error) {
	that.mu.Lock()
	defer that.mu.Unlock()

	if that.snapshot == nil {
		return nil, ErrGameNotFound
	}

	var game entity.Game
	if err := json.Unmarshal(that.snapshot, &game); err != nil {
		return nil, fmt.Errorf("failed to unmarshal game: %w", err)
	}

	return &game, nil
}

func (that *memoryGame) Delete(_ context.Context) error {
	that.mu.Lock()
	defer that.mu.Unlock()
	that.snapshot = nil

	return nil
}
