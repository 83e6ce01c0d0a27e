package console

import (
	"fmt"
	"strings"

	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
)

// renderBoard - draws the grid with row and column indices:
//
//	    0   1   2   3
//	  -----------------
//	0 | X |   | O |   |
//	  -----------------
//	...
func renderBoard(game *entity.Game) string {
	var b strings.Builder

	separator := "  " + strings.Repeat("----", entity.BoardSize) + "-"

	b.WriteString("   ")
	for col := 0; col < entity.BoardSize; col++ {
		if col > 0 {
			b.WriteString("   ")
		}
		fmt.Fprintf(&b, "%d", col)
	}
	b.WriteString("\n")
	b.WriteString(separator)
	b.WriteString("\n")

	for row := 0; row < entity.BoardSize; row++ {
		cells := make([]string, 0, entity.BoardSize)
		for col := 0; col < entity.BoardSize; col++ {
			mark := game.Cell(row, col)
			if mark == entity.EmptyCell {
				mark = " "
			}
			cells = append(cells, mark)
		}

		fmt.Fprintf(&b, "%d | %s |\n", row, strings.Join(cells, " | "))
		b.WriteString(separator)
		b.WriteString("\n")
	}

	if game.IsOngoing() {
		if player := game.CurrentPlayer(); player != nil {
			fmt.Fprintf(&b, "Player %s - %s, it's your turn.", player.Name, player.Mark)
		}
	}

	return strings.TrimRight(b.String(), "\n")
}

// resultBanner - the closing line of a finished game.
func resultBanner(game *entity.Game) string {
	if game.IsTie() {
		return "It's a tie!"
	}

	if player := game.PlayerByMark(game.Winner); player != nil {
		return fmt.Sprintf("Player %s - %s wins!", player.Name, player.Mark)
	}

	return fmt.Sprintf("Player %s wins!", game.Winner)
}
