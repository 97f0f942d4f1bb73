package loop

import (
	"context"
	"testing"
	"time"

	"github.com/rocketscienceinc/tictactoe-cli/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const waitFor = 2 * time.Second

func runLoop(ctx context.Context, t *testing.T, loop *Loop) <-chan error {
	t.Helper()

	result := make(chan error, 1)
	go func() {
		result <- loop.Run(ctx)
	}()

	t.Cleanup(loop.Stop)

	return result
}

func TestLoop_Post(t *testing.T) {
	t.Run("Runs tasks in order", func(t *testing.T) {
		// Given: a running loop
		loop := New(testutil.NopLogger())
		result := runLoop(context.Background(), t, loop)

		// When: tasks are posted and the last one stops the loop
		var order []int
		for i := 0; i < 5; i++ {
			i := i
			require.True(t, loop.Post(func() { order = append(order, i) }))
		}
		require.True(t, loop.Post(loop.Stop))

		// Then: every task ran in posting order
		select {
		case err := <-result:
			require.NoError(t, err)
		case <-time.After(waitFor):
			t.Fatal("loop did not stop")
		}
		assert.Equal(t, []int{0, 1, 2, 3, 4}, order)
	})

	t.Run("Rejects tasks after stop", func(t *testing.T) {
		loop := New(testutil.NopLogger())

		loop.Stop()
		loop.Stop()

		assert.False(t, loop.Post(func() {}))
		assert.NoError(t, loop.Run(context.Background()))
	})
}

func TestLoop_AfterFunc(t *testing.T) {
	t.Run("Runs the task on the loop", func(t *testing.T) {
		// Given: a running loop
		loop := New(testutil.NopLogger())
		result := runLoop(context.Background(), t, loop)

		// When: a task is scheduled with a short delay
		fired := false
		loop.AfterFunc(10*time.Millisecond, func() {
			fired = true
			loop.Stop()
		})

		// Then: it runs and stops the loop
		select {
		case err := <-result:
			require.NoError(t, err)
		case <-time.After(waitFor):
			t.Fatal("timer task did not run")
		}
		assert.True(t, fired)
	})

	t.Run("Stopped timer never runs", func(t *testing.T) {
		loop := New(testutil.NopLogger())
		result := runLoop(context.Background(), t, loop)

		fired := false
		stop := loop.AfterFunc(50*time.Millisecond, func() { fired = true })
		assert.True(t, stop())
		assert.False(t, stop())

		time.Sleep(100 * time.Millisecond)
		require.True(t, loop.Post(loop.Stop))

		select {
		case <-result:
		case <-time.After(waitFor):
			t.Fatal("loop did not stop")
		}
		assert.False(t, fired)
	})
}

func TestLoop_Run(t *testing.T) {
	// Given: a loop bound to a cancellable context
	ctx, cancel := context.WithCancel(context.Background())
	loop := New(testutil.NopLogger())
	result := runLoop(ctx, t, loop)

	// When: the context is cancelled
	cancel()

	// Then: Run returns the context error and the loop is stopped
	select {
	case err := <-result:
		require.ErrorIs(t, err, context.Canceled)
	case <-time.After(waitFor):
		t.Fatal("loop ignored cancellation")
	}

	select {
	case <-loop.Done():
	default:
		t.Fatal("loop not marked done")
	}
	assert.False(t, loop.Post(func() {}))
}
