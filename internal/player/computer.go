package player

import (
	"fmt"
	"time"

	"github.com/rocketscienceinc/tictactoe-cli/internal/dependencies/random"
	"github.com/rocketscienceinc/tictactoe-cli/internal/entity"
)

const DefaultThinkDelay = 700 * time.Millisecond

// ThinkTime is the simulated thinking delay: Delay plus a uniform share of Jitter.
type ThinkTime struct {
	Delay  time.Duration
	Jitter time.Duration
	Random random.Random
}

func (that ThinkTime) next() time.Duration {
	if that.Jitter <= 0 || that.Random == nil {
		return that.Delay
	}

	steps := int(that.Jitter / time.Millisecond)
	if steps <= 0 {
		return that.Delay
	}

	return that.Delay + time.Duration(that.Random.Intn(steps))*time.Millisecond
}

type Computer struct {
	identity

	strategy  Strategy
	scheduler Scheduler
	think     ThinkTime
}

func NewComputer(token, name string, strategy Strategy, scheduler Scheduler, think ThinkTime) *Computer {
	if name == "" {
		name = "CPU " + token
	}

	return &Computer{
		identity:  identity{token: token, name: name},
		strategy:  strategy,
		scheduler: scheduler,
		think:     think,
	}
}

func (that *Computer) IsHuman() bool {
	return false
}

// SubmitTurn - picks a cell now and proposes it once the thinking delay expires.
// The game never starts a computer turn on a full board, so a failing strategy is a bug.
func (that *Computer) SubmitTurn(board *entity.Board, _ *entity.Cursor, done func(entity.Position)) func() {
	position, err := that.strategy.ChoosePosition(board)
	if err != nil {
		panic(fmt.Errorf("computer %s could not choose a move: %w", that.token, err))
	}

	stop := that.scheduler.AfterFunc(that.think.next(), func() {
		done(position)
	})

	return func() {
		stop()
	}
}
