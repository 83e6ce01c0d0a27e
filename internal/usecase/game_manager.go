package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
	"github.com/rocketscienceinc/tictactoe-console/internal/repository"
)

type gameRepo interface {
	Save(ctx context.Context, game *entity.Game) error
	Load(ctx context.Context) (*entity.Game, error)
	Delete(ctx context.Context) error
}

type gameController interface {
	MakeTurn(game *entity.Game, mark string, row, col int) error
}

// GameManager owns the game lifecycle: it hands out the game to play,
// routes moves to the engine and keeps the snapshot store in sync so an
// interrupted game can be picked up again.
type GameManager struct {
	logger     *slog.Logger
	gameRepo   gameRepo
	controller gameController

	firstMark string
	players   []*entity.Player
}

func NewGameManager(logger *slog.Logger, gameRepo gameRepo, controller gameController, firstMark string, players ...*entity.Player) *GameManager {
	return &GameManager{
		logger:     logger.With("component", "game_manager"),
		gameRepo:   gameRepo,
		controller: controller,

		firstMark: firstMark,
		players:   players,
	}
}

// StartOrResume - returns the saved in-progress game when one exists,
// otherwise a fresh game. The second result reports whether the game was
// resumed.
func (that *GameManager) StartOrResume(ctx context.Context) (*entity.Game, bool, error) {
	game, err := that.gameRepo.Load(ctx)
	if err == nil && game.IsOngoing() {
		that.logger.Info("resuming saved game", "game_id", game.ID, "moves", game.Moves)
		return game, true, nil
	}

	if err != nil && !errors.Is(err, repository.ErrGameNotFound) {
		return nil, false, fmt.Errorf("failed to load game snapshot: %w", err)
	}

	game = entity.NewGame(uuid.NewString(), that.firstMark, that.players...)
	that.logger.Info("starting new game", "game_id", game.ID, "first_mark", game.Turn)

	return game, false, nil
}

// ApplyTurn - plays the current player's mark at (row, col). An accepted
// move is snapshotted; a terminal move drops the snapshot instead, so only
// games still in progress can be resumed.
func (that *GameManager) ApplyTurn(ctx context.Context, game *entity.Game, row, col int) error {
	if err := that.controller.MakeTurn(game, game.Turn, row, col); err != nil {
		return fmt.Errorf("failed to make turn: %w", err)
	}

	if game.IsFinished() {
		if err := that.gameRepo.Delete(ctx); err != nil {
			// the game itself is fine, only the cleanup failed
			that.logger.Error("could not delete game snapshot", "game_id", game.ID, "error", err)
		}
		return nil
	}

	if err := that.gameRepo.Save(ctx, game); err != nil {
		that.logger.Error("could not save game snapshot", "game_id", game.ID, "error", err)
	}

	return nil
}
