package tictactoe

import (
	"github.com/rocketscienceinc/tictactoe-cli/internal/view"
)

const title = "Tic Tac Toe"

// View - the lines a renderer paints. The cursor overlay is shown only on an ongoing human turn.
func (that *Game) View() []string {
	lines := []string{title}

	if that.gameOver {
		lines = append(lines, view.BoardLines(that.board, nil)...)
		lines = append(lines, "Game over")

		if that.winner != nil {
			lines = append(lines, that.winner.Name()+" wins!")
		} else {
			lines = append(lines, "It's a draw!")
		}

		return append(lines, "press any key to exit.")
	}

	current := that.CurrentPlayer()
	if current.IsHuman() {
		lines = append(lines, view.BoardLines(that.board, that.cursor.Overlay())...)
		return append(lines, current.Name()+", it is your turn")
	}

	lines = append(lines, view.BoardLines(that.board, nil)...)

	return append(lines, "Hmm...")
}
