package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/rocketscienceinc/tictactoe-console/internal/config"
	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
	"github.com/rocketscienceinc/tictactoe-console/internal/repository"
	"github.com/rocketscienceinc/tictactoe-console/internal/repository/storage"
	"github.com/rocketscienceinc/tictactoe-console/internal/tictactoe"
	"github.com/rocketscienceinc/tictactoe-console/internal/usecase"
	"github.com/rocketscienceinc/tictactoe-console/transport/console"
)

var ErrInvalidFirstMark = errors.New("first-mark must be X or O")

// RunApp - runs the application.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigs
		log.Info("received signal, shutting down", "signal", sig)
		cancel()
	}()

	if conf.FirstMark != entity.PlayerX && conf.FirstMark != entity.PlayerO {
		return fmt.Errorf("%w: %q", ErrInvalidFirstMark, conf.FirstMark)
	}

	gameController, err := tictactoe.NewGameController(tictactoe.Rules(conf.Rules))
	if err != nil {
		return fmt.Errorf("could not build game controller: %w", err)
	}

	gameRepo := repository.NewMemoryGameRepository()
	if conf.Resume.Enabled {
		redisStorage, err := storage.New(ctx, conf.Resume.GetRedisAddr())
		if err != nil {
			return fmt.Errorf("could not connect to redis storage: %w", err)
		}

		defer func() {
			if err = redisStorage.Close(); err != nil {
				log.Error("could not close redis storage", "error", err)
			}
		}()

		gameRepo = repository.NewGameRepository(redisStorage.Connection, conf.Resume.SnapshotTTL)
	}

	players := []*entity.Player{
		{Name: conf.PlayerX, Mark: entity.PlayerX},
		{Name: conf.PlayerO, Mark: entity.PlayerO},
	}

	gameManager := usecase.NewGameManager(logger, gameRepo, gameController, conf.FirstMark, players...)

	log.Info("starting console game", "rules", conf.Rules, "resume", conf.Resume.Enabled)
	consoleServer := console.New(logger, gameManager, os.Stdin, os.Stdout)

	return consoleServer.Run(ctx)
}
