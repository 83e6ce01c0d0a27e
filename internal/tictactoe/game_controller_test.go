package tictactoe

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
)

const (
	x = entity.PlayerX
	o = entity.PlayerO
	e = entity.EmptyCell
)

func newClassicController(t *testing.T) *GameController {
	t.Helper()

	controller, err := NewGameController(RulesClassic)
	require.NoError(t, err)

	return controller
}

// playMoves - applies a sequence of (row, col) moves, alternating marks
// starting from the game's current turn.
func playMoves(t *testing.T, controller *GameController, game *entity.Game, moves [][2]int) {
	t.Helper()

	for i, move := range moves {
		err := controller.MakeTurn(game, game.Turn, move[0], move[1])
		require.NoErrorf(t, err, "move %d (%v) failed", i, move)
	}
}

func TestNewGameController(t *testing.T) {
	t.Run("Classic rules have rows, columns and diagonals", func(t *testing.T) {
		controller := newClassicController(t)

		// 4 rows + 4 columns + 2 diagonals
		require.Len(t, controller.winLines, 10)
		for _, line := range controller.winLines {
			assert.Len(t, line, entity.BoardSize)
		}
	})

	t.Run("Extended rules add 2x2 squares and the corners", func(t *testing.T) {
		controller, err := NewGameController(RulesExtended)
		require.NoError(t, err)

		// classic 10 + nine 2x2 squares + corners
		require.Len(t, controller.winLines, 20)
	})

	t.Run("Unknown rule set is rejected", func(t *testing.T) {
		_, err := NewGameController(Rules("diagonal-only"))

		require.ErrorIs(t, err, ErrUnknownRules)
	})
}

func TestGameController_CheckWinner(t *testing.T) {
	controller := newClassicController(t)

	tests := []struct {
		name   string
		board  [entity.CellCount]string
		winner string
		line   []int
	}{
		{
			name: "row 0 X wins",
			board: [entity.CellCount]string{
				x, x, x, x,
				o, o, o, e,
				e, e, e, e,
				e, e, e, e,
			},
			winner: x,
			line:   []int{0, 1, 2, 3},
		},
		{
			name: "column 2 O wins",
			board: [entity.CellCount]string{
				x, e, o, x,
				e, x, o, e,
				e, e, o, x,
				e, e, o, e,
			},
			winner: o,
			line:   []int{2, 6, 10, 14},
		},
		{
			name: "main diagonal X wins",
			board: [entity.CellCount]string{
				x, o, e, e,
				o, x, e, e,
				e, o, x, e,
				o, e, e, x,
			},
			winner: x,
			line:   []int{0, 5, 10, 15},
		},
		{
			name: "anti-diagonal O wins",
			board: [entity.CellCount]string{
				x, e, x, o,
				e, x, o, e,
				x, o, e, e,
				o, e, e, e,
			},
			winner: o,
			line:   []int{3, 6, 9, 12},
		},
		{
			name: "full board with no line is a tie",
			board: [entity.CellCount]string{
				x, o, x, o,
				o, x, o, x,
				o, x, o, x,
				x, o, x, o,
			},
			winner: entity.PlayerTie,
		},
		{
			name: "open board has no result yet",
			board: [entity.CellCount]string{
				x, o, x, e,
				e, o, e, e,
				e, e, x, e,
				e, e, e, o,
			},
			winner: e,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			winner, line := controller.checkWinner(tc.board)

			assert.Equal(t, tc.winner, winner)
			assert.Equal(t, tc.line, line)
		})
	}
}

func TestGameController_CheckWinner_ExtendedRules(t *testing.T) {
	squareBoard := [entity.CellCount]string{
		e, e, e, e,
		o, x, x, e,
		o, x, x, e,
		o, e, e, e,
	}
	cornersBoard := [entity.CellCount]string{
		x, o, o, x,
		e, o, e, e,
		e, e, e, e,
		x, e, e, x,
	}

	t.Run("2x2 square wins under extended rules", func(t *testing.T) {
		controller, err := NewGameController(RulesExtended)
		require.NoError(t, err)

		winner, line := controller.checkWinner(squareBoard)

		assert.Equal(t, x, winner)
		assert.Equal(t, []int{5, 6, 9, 10}, line)
	})

	t.Run("Four corners win under extended rules", func(t *testing.T) {
		controller, err := NewGameController(RulesExtended)
		require.NoError(t, err)

		winner, line := controller.checkWinner(cornersBoard)

		assert.Equal(t, x, winner)
		assert.Equal(t, []int{0, 3, 12, 15}, line)
	})

	t.Run("Neither board wins under classic rules", func(t *testing.T) {
		controller := newClassicController(t)

		winner, _ := controller.checkWinner(squareBoard)
		assert.Equal(t, e, winner)

		winner, _ = controller.checkWinner(cornersBoard)
		assert.Equal(t, e, winner)
	})
}

func TestGameController_MakeTurn(t *testing.T) {
	t.Run("Successful turn flips the mark and counts the move", func(t *testing.T) {
		// Given: a new game with X to move
		controller := newClassicController(t)
		game := entity.NewGame("123", x)

		// When: X plays (1, 2)
		err := controller.MakeTurn(game, x, 1, 2)

		// Then: the cell holds X, the move is counted, and it's O's turn
		require.NoError(t, err)
		assert.Equal(t, x, game.Cell(1, 2))
		assert.Equal(t, 1, game.Moves)
		assert.Equal(t, o, game.Turn)
		assert.Equal(t, entity.StatusOngoing, game.Status)
	})

	t.Run("Occupied cell is rejected and the board is unchanged", func(t *testing.T) {
		// Given: a game where X already took (0, 0)
		controller := newClassicController(t)
		game := entity.NewGame("123", x)
		require.NoError(t, controller.MakeTurn(game, x, 0, 0))
		before := *game

		// When: O plays the same cell
		err := controller.MakeTurn(game, o, 0, 0)

		// Then: the move is rejected and nothing changed
		require.ErrorIs(t, err, apperror.ErrCellOccupied)
		assert.Equal(t, before, *game)
	})

	t.Run("Out-of-range indices are rejected", func(t *testing.T) {
		controller := newClassicController(t)
		game := entity.NewGame("123", x)

		for _, move := range [][2]int{{-1, 0}, {0, -1}, {entity.BoardSize, 0}, {0, entity.BoardSize}, {7, 7}} {
			err := controller.MakeTurn(game, x, move[0], move[1])
			require.ErrorIsf(t, err, apperror.ErrInvalidCell, "move %v", move)
		}

		assert.Equal(t, 0, game.Moves)
	})

	t.Run("Playing out of turn is rejected", func(t *testing.T) {
		controller := newClassicController(t)
		game := entity.NewGame("123", x)

		err := controller.MakeTurn(game, o, 0, 0)

		require.ErrorIs(t, err, apperror.ErrNotYourTurn)
		assert.Equal(t, e, game.Cell(0, 0))
	})

	t.Run("Finished game accepts no more moves", func(t *testing.T) {
		controller := newClassicController(t)
		game := entity.NewGame("123", x)
		game.Status = entity.StatusFinished

		err := controller.MakeTurn(game, x, 0, 0)

		require.ErrorIs(t, err, apperror.ErrGameFinished)
	})

	t.Run("Completing a row wins the game", func(t *testing.T) {
		// Given: X holds row 0 except (0, 3), O answered in row 1
		controller := newClassicController(t)
		game := entity.NewGame("123", x)
		playMoves(t, controller, game, [][2]int{
			{0, 0}, {1, 0},
			{0, 1}, {1, 1},
			{0, 2}, {1, 2},
		})

		// When: X completes the row
		err := controller.MakeTurn(game, x, 0, 3)

		// Then: X wins, the winning line is recorded, and the turn is cleared
		require.NoError(t, err)
		assert.Equal(t, entity.StatusFinished, game.Status)
		assert.Equal(t, x, game.Winner)
		assert.Equal(t, []int{0, 1, 2, 3}, game.WinnerLine)
		assert.Equal(t, e, game.Turn)
		assert.Equal(t, 7, game.Moves)
	})

	t.Run("Filling the last cell with no line is a tie", func(t *testing.T) {
		// Given: a board one move away from a lineless full grid
		controller := newClassicController(t)
		game := entity.NewGame("123", o)
		game.Board = [entity.CellCount]string{
			x, o, x, o,
			o, x, o, x,
			o, x, o, x,
			x, o, x, e,
		}
		game.Moves = 15

		// When: O fills the final cell
		err := controller.MakeTurn(game, o, 3, 3)

		// Then: the game ends in a tie
		require.NoError(t, err)
		assert.Equal(t, entity.StatusFinished, game.Status)
		assert.Equal(t, entity.PlayerTie, game.Winner)
		assert.Empty(t, game.WinnerLine)
		assert.Equal(t, e, game.Turn)
		assert.Equal(t, 16, game.Moves)
	})
}

func TestGameController_FullGame(t *testing.T) {
	// X takes column 1 while O scatters; X should win on the 7th move.
	controller := newClassicController(t)
	game := entity.NewGame("123", x)

	playMoves(t, controller, game, [][2]int{
		{0, 1}, {0, 0},
		{1, 1}, {2, 0},
		{2, 1}, {3, 0},
	})
	require.True(t, game.IsOngoing())

	require.NoError(t, controller.MakeTurn(game, x, 3, 1))

	assert.True(t, game.IsFinished())
	assert.Equal(t, x, game.Winner)
	assert.Equal(t, []int{1, 5, 9, 13}, game.WinnerLine)
}
