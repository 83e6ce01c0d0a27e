package tictactoe

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
)

// winningLines - generates the win lines for the configured rule set. The
// board is big enough that hand-listing combos would be error-prone, so
// rows, columns and diagonals are derived from BoardSize.
func winningLines(rules Rules) ([][]int, error) {
	size := entity.BoardSize

	lines := make([][]int, 0, 2*size+2)

	for row := 0; row < size; row++ {
		line := make([]int, 0, size)
		for col := 0; col < size; col++ {
			line = append(line, row*size+col)
		}
		lines = append(lines, line)
	}

	for col := 0; col < size; col++ {
		line := make([]int, 0, size)
		for row := 0; row < size; row++ {
			line = append(line, row*size+col)
		}
		lines = append(lines, line)
	}

	diagonal := make([]int, 0, size)
	antiDiagonal := make([]int, 0, size)
	for row := 0; row < size; row++ {
		diagonal = append(diagonal, row*size+row)
		antiDiagonal = append(antiDiagonal, row*size+(size-1-row))
	}
	lines = append(lines, diagonal, antiDiagonal)

	switch rules {
	case RulesClassic:
		return lines, nil
	case RulesExtended:
		return append(lines, extendedLines(size)...), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownRules, rules)
	}
}

// extendedLines - every 2x2 square plus the four corners.
func extendedLines(size int) [][]int {
	lines := make([][]int, 0, (size-1)*(size-1)+1)

	for row := 0; row < size-1; row++ {
		for col := 0; col < size-1; col++ {
			cell := row*size + col
			lines = append(lines, []int{cell, cell + 1, cell + size, cell + size + 1})
		}
	}

	corners := []int{0, size - 1, (size - 1) * size, size*size - 1}

	return append(lines, corners)
}
