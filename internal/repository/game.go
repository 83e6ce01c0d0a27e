package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
)

var ErrGameNotFound = errors.New("game not found")

// snapshotKey is fixed: a console session has at most one game in flight,
// so the store holds a single slot.
const snapshotKey = "game:snapshot"

// GameRepository keeps the snapshot of the in-progress game so an
// interrupted session can be resumed. Save overwrites the slot, Load
// returns ErrGameNotFound when the slot is empty, and Delete is
// idempotent.
type GameRepository interface {
	Save(ctx context.Context, game *entity.Game) error
	Load(ctx context.Context) (*entity.Game, error)
	Delete(ctx context.Context) error
}

type dbGame struct {
	client *redis.Client
	ttl    time.Duration
}

// NewGameRepository - redis-backed snapshot store. The TTL bounds how long
// an abandoned game survives before redis drops it on its own.
func NewGameRepository(client *redis.Client, ttl time.Duration) GameRepository {
	return &dbGame{
		client: client,
		ttl:    ttl,
	}
}

func (that *dbGame) Save(ctx context.Context, game *entity.Game) error {
	gameJSON, err := json.Marshal(game)
	if err != nil {
		return fmt.Errorf("could not marshal game: %w", err)
	}

	if err = that.client.Set(ctx, snapshotKey, gameJSON, that.ttl).Err(); err != nil {
		return fmt.Errorf("failed to set game snapshot: %w", err)
	}

	return nil
}

func (that *dbGame) Load(ctx context.Context) (*entity.Game, error) {
	response, err := that.client.Get(ctx, snapshotKey).Result()

	if errors.Is(err, redis.Nil) {
		return nil, ErrGameNotFound
	}

	if err != nil {
		return nil, fmt.Errorf("failed to get game snapshot: %w", err)
	}

	var game entity.Game
	if err = json.Unmarshal([]byte(response), &game); err != nil {
		return nil, fmt.Errorf("failed to unmarshal game: %w", err)
	}

	return &game, nil
}

func (that *dbGame) Delete(ctx context.Context) error {
	if err := that.client.Del(ctx, snapshotKey).Err(); err != nil {
		return fmt.Errorf("failed to delete game snapshot: %w", err)
	}

	return nil
}
