package player

import (
	"github.com/rocketscienceinc/tictactoe-cli/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-cli/internal/dependencies/random"
	"github.com/rocketscienceinc/tictactoe-cli/internal/entity"
)

// Strategy chooses the computer's next cell.
type Strategy interface {
	ChoosePosition(board *entity.Board) (entity.Position, error)
}

// RandomStrategy picks uniformly among the empty cells.
type RandomStrategy struct {
	random random.Random
}

func NewRandomStrategy(rnd random.Random) *RandomStrategy {
	return &RandomStrategy{random: rnd}
}

func (that *RandomStrategy) ChoosePosition(board *entity.Board) (entity.Position, error) {
	availableCells := board.EmptyCells()
	if len(availableCells) == 0 {
		return entity.Position{}, apperror.ErrNoAvailableMoves
	}

	return availableCells[that.random.Intn(len(availableCells))], nil
}
