package player

import (
	"time"

	"github.com/rocketscienceinc/tictactoe-cli/internal/entity"
)

// Player takes turns. SubmitTurn proposes exactly one move through done, either before it
// returns (human) or later from the scheduler (computer). The returned func cancels a pending proposal.
type Player interface {
	Token() string
	Name() string
	IsHuman() bool

	SubmitTurn(board *entity.Board, cursor *entity.Cursor, done func(entity.Position)) (cancel func())
}

// Scheduler runs task once after delay and returns a func that stops it.
type Scheduler interface {
	AfterFunc(delay time.Duration, task func()) (stop func() bool)
}

type identity struct {
	token string
	name  string
}

func (that identity) Token() string {
	return that.token
}

func (that identity) Name() string {
	return that.name
}
