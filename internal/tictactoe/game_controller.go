package tictactoe

import (
	"errors"
	"fmt"

	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
)

var ErrUnknownRules = errors.New("unknown rule set")

// Rules selects which lines count as a win.
type Rules string

const (
	// RulesClassic wins on rows, columns and the two diagonals.
	RulesClassic Rules = "classic"
	// RulesExtended additionally wins on any 2x2 square and the four corners.
	RulesExtended Rules = "extended"
)

type GameController struct {
	winLines [][]int
}

func NewGameController(rules Rules) (*GameController, error) {
	lines, err := winningLines(rules)
	if err != nil {
		return nil, err
	}

	return &GameController{winLines: lines}, nil
}

// MakeTurn - places the mark at (row, col) and re-evaluates the game.
// On success the move counter grows and the turn passes to the other
// mark unless the move ended the game. A rejected move leaves the game
// untouched.
func (that *GameController) MakeTurn(game *entity.Game, mark string, row, col int) error {
	if game.IsFinished() {
		return apperror.ErrGameFinished
	}

	if err := validateMove(game, mark, row, col); err != nil {
		return fmt.Errorf("invalid turn: %w", err)
	}

	game.Board[row*entity.BoardSize+col] = mark
	game.Moves++
	that.updateGameStatus(game, mark)

	return nil
}

// validateMove - checks if the move is valid.
func validateMove(game *entity.Game, mark string, row, col int) error {
	if row < 0 || row >= entity.BoardSize || col < 0 || col >= entity.BoardSize {
		return fmt.Errorf("%w: row %d, col %d", apperror.ErrInvalidCell, row, col)
	}

	if game.Turn != mark {
		return apperror.ErrNotYourTurn
	}

	if game.Cell(row, col) != entity.EmptyCell {
		return apperror.ErrCellOccupied
	}

	return nil
}

// updateGameStatus - settles the outcome after a move.
func (that *GameController) updateGameStatus(game *entity.Game, mark string) {
	winner, line := that.checkWinner(game.Board)

	switch winner {
	case entity.PlayerX, entity.PlayerO:
		game.Winner = winner
		game.WinnerLine = line
		game.Status = entity.StatusFinished
		game.Turn = entity.EmptyCell
	case entity.PlayerTie:
		game.Winner = entity.PlayerTie
		game.Status = entity.StatusFinished
		game.Turn = entity.EmptyCell
	default:
		game.Turn = toggleMark(mark)
	}
}

// checkWinner - scans every line of the active rule set; a line wins when
// all of its cells hold the same non-empty mark. Returns the winning mark
// and line, PlayerTie on a full board, or an empty mark while the game is
// still open.
func (that *GameController) checkWinner(board [entity.CellCount]string) (string, []int) {
	for _, line := range that.winLines {
		mark := board[line[0]]
		if mark == entity.EmptyCell {
			continue
		}

		won := true
		for _, cell := range line[1:] {
			if board[cell] != mark {
				won = false
				break
			}
		}

		if won {
			return mark, line
		}
	}

	if hasFreeCell(board) {
		return entity.EmptyCell, nil
	}

	return entity.PlayerTie, nil
}

func hasFreeCell(board [entity.CellCount]string) bool {
	for _, cell := range board {
		if cell == entity.EmptyCell {
			return true
		}
	}
	return false
}

func toggleMark(mark string) string {
	if mark == entity.PlayerX {
		return entity.PlayerO
	}
	return entity.PlayerX
}
