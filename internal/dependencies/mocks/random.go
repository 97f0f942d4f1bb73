package mocks

import "github.com/rocketscienceinc/tictactoe-cli/internal/dependencies/random"

// MockRandom returns queued Intn results, then 0.
type MockRandom struct {
	IntnResults []int
	intnIndex   int

	// Bounds records the n passed to every Intn call.
	Bounds []int
}

var _ random.Random = (*MockRandom)(nil)

func NewMockRandom() *MockRandom {
	return &MockRandom{}
}

func (that *MockRandom) Intn(n int) int {
	that.Bounds = append(that.Bounds, n)

	if that.intnIndex >= len(that.IntnResults) {
		return 0
	}

	result := that.IntnResults[that.intnIndex]
	that.intnIndex++

	return result
}

func (that *MockRandom) QueueIntn(values ...int) {
	that.IntnResults = append(that.IntnResults, values...)
}
