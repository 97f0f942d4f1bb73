package mocks

import "time"

// ManualScheduler keeps deferred tasks until the test fires them.
type ManualScheduler struct {
	tasks []*scheduledTask
}

type scheduledTask struct {
	delay   time.Duration
	task    func()
	stopped bool
	fired   bool
}

func NewManualScheduler() *ManualScheduler {
	return &ManualScheduler{}
}

func (that *ManualScheduler) AfterFunc(delay time.Duration, task func()) func() bool {
	scheduled := &scheduledTask{delay: delay, task: task}
	that.tasks = append(that.tasks, scheduled)

	return func() bool {
		if scheduled.stopped || scheduled.fired {
			return false
		}
		scheduled.stopped = true

		return true
	}
}

// Pending - number of tasks neither fired nor stopped.
func (that *ManualScheduler) Pending() int {
	pending := 0
	for _, scheduled := range that.tasks {
		if !scheduled.stopped && !scheduled.fired {
			pending++
		}
	}

	return pending
}

// Delays - delays of every task scheduled so far.
func (that *ManualScheduler) Delays() []time.Duration {
	delays := make([]time.Duration, 0, len(that.tasks))
	for _, scheduled := range that.tasks {
		delays = append(delays, scheduled.delay)
	}

	return delays
}

// FireNext - runs the oldest pending task and reports whether there was one.
func (that *ManualScheduler) FireNext() bool {
	for _, scheduled := range that.tasks {
		if scheduled.stopped || scheduled.fired {
			continue
		}

		scheduled.fired = true
		scheduled.task()

		return true
	}

	return false
}

// FireStopped - runs the oldest stopped task anyway, like a timer that expired while being stopped.
func (that *ManualScheduler) FireStopped() bool {
	for _, scheduled := range that.tasks {
		if scheduled.stopped && !scheduled.fired {
			scheduled.fired = true
			scheduled.task()

			return true
		}
	}

	return false
}
