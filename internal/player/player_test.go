package player

import (
	"testing"
	"time"

	"github.com/rocketscienceinc/tictactoe-cli/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-cli/internal/dependencies/mocks"
	"github.com/rocketscienceinc/tictactoe-cli/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHuman_SubmitTurn(t *testing.T) {
	// Given: a human player and a cursor moved to x=2, y=1
	human := NewHuman("O", "")
	cursor := entity.NewCursor(entity.DefaultBoardSize)
	cursor.ApplyMove(entity.Right)

	var proposed []entity.Position

	// When: submitting a turn
	human.SubmitTurn(entity.NewBoard(entity.DefaultBoardSize), cursor, func(p entity.Position) {
		proposed = append(proposed, p)
	})

	// Then: the cursor position is proposed before SubmitTurn returns
	assert.Equal(t, []entity.Position{{X: 2, Y: 1}}, proposed)
	assert.True(t, human.IsHuman())
	assert.Equal(t, "Player O", human.Name())
	assert.Equal(t, "O", human.Token())
}

func TestRandomStrategy_ChoosePosition(t *testing.T) {
	t.Run("Picks among empty cells", func(t *testing.T) {
		// Given: a board with the top row taken
		board := entity.NewBoard(entity.DefaultBoardSize)
		for x := 0; x < 3; x++ {
			require.NoError(t, board.Place("X", x, 0))
		}

		rnd := mocks.NewMockRandom()
		rnd.QueueIntn(4)
		strategy := NewRandomStrategy(rnd)

		// When: choosing a position
		position, err := strategy.ChoosePosition(board)

		// Then: the fifth empty cell in row-major order is chosen out of six
		require.NoError(t, err)
		assert.Equal(t, entity.Position{X: 1, Y: 2}, position)
		assert.Equal(t, []int{6}, rnd.Bounds)
	})

	t.Run("Error on full board", func(t *testing.T) {
		board := entity.NewBoard(1)
		require.NoError(t, board.Place("X", 0, 0))

		_, err := NewRandomStrategy(mocks.NewMockRandom()).ChoosePosition(board)

		require.ErrorIs(t, err, apperror.ErrNoAvailableMoves)
	})
}

func TestComputer_SubmitTurn(t *testing.T) {
	t.Run("Proposes after the thinking delay", func(t *testing.T) {
		// Given: a computer player on a manual scheduler
		scheduler := mocks.NewManualScheduler()
		rnd := mocks.NewMockRandom()
		rnd.QueueIntn(0)
		computer := NewComputer("X", "", NewRandomStrategy(rnd), scheduler, ThinkTime{Delay: DefaultThinkDelay})

		var proposed []entity.Position

		// When: submitting a turn
		computer.SubmitTurn(entity.NewBoard(entity.DefaultBoardSize), nil, func(p entity.Position) {
			proposed = append(proposed, p)
		})

		// Then: nothing is proposed until the timer fires
		assert.Empty(t, proposed)
		assert.Equal(t, 1, scheduler.Pending())
		assert.Equal(t, []time.Duration{DefaultThinkDelay}, scheduler.Delays())

		require.True(t, scheduler.FireNext())
		assert.Equal(t, []entity.Position{{X: 0, Y: 0}}, proposed)
		assert.False(t, computer.IsHuman())
		assert.Equal(t, "CPU X", computer.Name())
	})

	t.Run("Cancel stops the pending proposal", func(t *testing.T) {
		scheduler := mocks.NewManualScheduler()
		computer := NewComputer("X", "Deep Thought", NewRandomStrategy(mocks.NewMockRandom()), scheduler, ThinkTime{})

		called := false
		cancel := computer.SubmitTurn(entity.NewBoard(entity.DefaultBoardSize), nil, func(entity.Position) {
			called = true
		})

		cancel()

		assert.False(t, scheduler.FireNext())
		assert.False(t, called)
		assert.Equal(t, "Deep Thought", computer.Name())
	})

	t.Run("Jitter extends the delay", func(t *testing.T) {
		scheduler := mocks.NewManualScheduler()
		rnd := mocks.NewMockRandom()
		rnd.QueueIntn(250)
		think := ThinkTime{Delay: 500 * time.Millisecond, Jitter: 400 * time.Millisecond, Random: rnd}
		computer := NewComputer("X", "", NewRandomStrategy(mocks.NewMockRandom()), scheduler, think)

		computer.SubmitTurn(entity.NewBoard(entity.DefaultBoardSize), nil, func(entity.Position) {})

		assert.Equal(t, []time.Duration{750 * time.Millisecond}, scheduler.Delays())
		assert.Equal(t, []int{400}, rnd.Bounds)
	})

	t.Run("Panics on a full board", func(t *testing.T) {
		board := entity.NewBoard(1)
		require.NoError(t, board.Place("O", 0, 0))
		computer := NewComputer("X", "", NewRandomStrategy(mocks.NewMockRandom()), mocks.NewManualScheduler(), ThinkTime{})

		assert.Panics(t, func() {
			computer.SubmitTurn(board, nil, func(entity.Position) {})
		})
	})
}
