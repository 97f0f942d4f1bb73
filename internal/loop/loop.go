// Package loop runs every game mutation on a single goroutine.
package loop

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

const taskBuffer = 64

// Loop executes posted tasks one at a time in the order they were posted.
type Loop struct {
	logger *slog.Logger

	tasks chan func()
	done  chan struct{}
	once  sync.Once
}

func New(logger *slog.Logger) *Loop {
	return &Loop{
		logger: logger.With("component", "loop"),
		tasks:  make(chan func(), taskBuffer),
		done:   make(chan struct{}),
	}
}

// Post - queues task for the loop goroutine. Safe for concurrent use; returns false once the loop is stopped.
func (that *Loop) Post(task func()) bool {
	select {
	case <-that.done:
		return false
	default:
	}

	select {
	case that.tasks <- task:
		return true
	case <-that.done:
		return false
	}
}

// AfterFunc - posts task to the loop once delay has elapsed. The returned func stops the timer
// and reports whether it was still pending.
func (that *Loop) AfterFunc(delay time.Duration, task func()) func() bool {
	timer := time.AfterFunc(delay, func() {
		if !that.Post(task) {
			that.logger.Debug("timer fired after stop")
		}
	})

	return timer.Stop
}

// Run - executes tasks until Stop is called or ctx is done.
func (that *Loop) Run(ctx context.Context) error {
	that.logger.Debug("loop started")

	for {
		select {
		case <-ctx.Done():
			that.Stop()
			return ctx.Err()
		case <-that.done:
			that.logger.Debug("loop stopped")
			return nil
		case task := <-that.tasks:
			task()
		}
	}
}

// Stop - ends Run. Tasks still queued are dropped.
func (that *Loop) Stop() {
	that.once.Do(func() {
		close(that.done)
	})
}

// Done - closed once the loop is stopped.
func (that *Loop) Done() <-chan struct{} {
	return that.done
}
