package entity

const (
	// BoardSize is the side length of the grid; the board is always square.
	BoardSize = 4
	CellCount = BoardSize * BoardSize
)

const (
	StatusFinished = "finished"
	StatusOngoing  = "ongoing"

	PlayerX   = "X"
	PlayerO   = "O"
	PlayerTie = "-"

	EmptyCell = ""
)

type Game struct {
	ID         string            `json:"id"`
	Board      [CellCount]string `json:"board"`
	Turn       string            `json:"player_turn,omitempty"`
	Moves      int               `json:"moves"`
	Winner     string            `json:"winner,omitempty"`
	WinnerLine []int             `json:"winner_line,omitempty"`
	Status     string            `json:"status"`
	Players    []*Player         `json:"players,omitempty"`
}

func NewGame(id, firstMark string, players ...*Player) *Game {
	return &Game{
		ID:      id,
		Turn:    firstMark,
		Status:  StatusOngoing,
		Players: players,
	}
}

// Cell - returns the mark at (row, col). Callers are expected to pass
// indices in [0, BoardSize).
func (that *Game) Cell(row, col int) string {
	return that.Board[row*BoardSize+col]
}

func (that *Game) IsFinished() bool {
	return that.Status == StatusFinished
}

func (that *Game) IsOngoing() bool {
	return that.Status == StatusOngoing
}

func (that *Game) IsTie() bool {
	return that.Winner == PlayerTie
}

// CurrentPlayer - returns the player whose mark matches the turn, or nil
// when the game is finished or the mark has no registered player.
func (that *Game) CurrentPlayer() *Player {
	return that.PlayerByMark(that.Turn)
}

func (that *Game) PlayerByMark(mark string) *Player {
	if mark == EmptyCell {
		return nil
	}

	for _, player := range that.Players {
		if player.Mark == mark {
			return player
		}
	}

	return nil
}
