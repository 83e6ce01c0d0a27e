package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
)

var errQuit = errors.New("player quit")

type gameManager interface {
	StartOrResume(ctx context.Context) (*entity.Game, bool, error)
	ApplyTurn(ctx context.Context, game *entity.Game, row, col int) error
}

// Server drives a game over a line-based console: it prompts the current
// player for a row and a column, hands the move to the game manager and
// redraws the board. Reader and writer are injected so the loop can be
// scripted in tests.
type Server struct {
	logger  *slog.Logger
	manager gameManager

	in  *bufio.Scanner
	out io.Writer
}

func New(logger *slog.Logger, manager gameManager, in io.Reader, out io.Writer) *Server {
	return &Server{
		logger:  logger.With("component", "console"),
		manager: manager,

		in:  bufio.NewScanner(in),
		out: out,
	}
}

// Run - plays one game to completion. Returns nil when the player quits;
// a quit mid-game keeps the snapshot so the game can be resumed.
func (that *Server) Run(ctx context.Context) error {
	game, resumed, err := that.manager.StartOrResume(ctx)
	if err != nil {
		return fmt.Errorf("failed to start game: %w", err)
	}

	that.printf("Welcome to %dx%d Tic-Tac-Toe!\n", entity.BoardSize, entity.BoardSize)
	that.printf("Press 'q' at any prompt to quit.\n")
	if resumed {
		that.printf("Resuming your saved game.\n")
	}
	that.printf("\n%s\n", renderBoard(game))

	for game.IsOngoing() {
		if ctx.Err() != nil {
			that.printf("Game interrupted.\n")
			return nil
		}

		row, col, err := that.promptMove(game)
		if errors.Is(err, errQuit) {
			that.printf("Quitting the game...\n")
			return nil
		}
		if err != nil {
			return err
		}

		if err = that.manager.ApplyTurn(ctx, game, row, col); err != nil {
			that.logger.Debug("move rejected", "game_id", game.ID, "row", row, "col", col, "error", err)
			that.printf("Invalid move! Try again.\n")
			continue
		}

		that.printf("\n%s\n", renderBoard(game))
	}

	that.printf("%s\n", resultBanner(game))
	that.logger.Info("game over", "game_id", game.ID, "winner", game.Winner, "moves", game.Moves)

	return nil
}

// promptMove - asks the current player for a row and then a column.
func (that *Server) promptMove(game *entity.Game) (int, int, error) {
	player := game.CurrentPlayer()

	row, err := that.promptIndex(fmt.Sprintf("Player %s - %s, enter row (0-%d) or 'q' to quit: ", player.Name, player.Mark, entity.BoardSize-1))
	if err != nil {
		return 0, 0, err
	}

	col, err := that.promptIndex(fmt.Sprintf("Player %s - %s, enter column (0-%d) or 'q' to quit: ", player.Name, player.Mark, entity.BoardSize-1))
	if err != nil {
		return 0, 0, err
	}

	return row, col, nil
}

// promptIndex - re-prompts until the player types an index in range or
// quits. A closed input stream counts as a quit.
func (that *Server) promptIndex(prompt string) (int, error) {
	for {
		that.printf("%s", prompt)

		if !that.in.Scan() {
			if err := that.in.Err(); err != nil {
				return 0, fmt.Errorf("failed to read input: %w", err)
			}
			return 0, errQuit
		}

		input := strings.TrimSpace(that.in.Text())
		if strings.EqualFold(input, "q") {
			return 0, errQuit
		}

		index, err := strconv.Atoi(input)
		if err != nil || index < 0 || index >= entity.BoardSize {
			that.printf("Invalid input! Please enter a number from 0 to %d.\n", entity.BoardSize-1)
			continue
		}

		return index, nil
	}
}

func (that *Server) printf(format string, args ...any) {
	fmt.Fprintf(that.out, format, args...)
}
