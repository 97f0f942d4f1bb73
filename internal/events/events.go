// Package events is the synchronous event bus between the game and the terminal.
package events

import "github.com/rocketscienceinc/tictactoe-cli/internal/entity"

type Kind string

const (
	// input
	KindMove          Kind = "input:move"
	KindConfirm       Kind = "input:confirm"
	KindKeypress      Kind = "input:keypress"
	KindExitRequested Kind = "input:exit"

	// output
	KindRedraw    Kind = "game:redraw"
	KindTurnBegan Kind = "game:begin-turn"
	KindTurnEnded Kind = "game:end-turn"
	KindExit      Kind = "exit"
)

// Event carries the payload of its kind; unused fields stay zero.
type Event struct {
	Kind  Kind
	Delta entity.Delta
	Key   string
	Token string
}

type Handler func(Event)

// Bus delivers every event to the handlers of its kind in subscription order.
// An event emitted by a handler is queued until the current event has reached all its handlers.
// It is not safe for concurrent use; callers emit from a single goroutine.
type Bus struct {
	handlers map[Kind][]Handler

	queue    []Event
	emitting bool
}

func NewBus() *Bus {
	return &Bus{
		handlers: make(map[Kind][]Handler),
	}
}

func (that *Bus) Subscribe(kind Kind, handler Handler) {
	that.handlers[kind] = append(that.handlers[kind], handler)
}

// Emit - delivers event, and everything it causes, before returning.
func (that *Bus) Emit(event Event) {
	that.queue = append(that.queue, event)
	if that.emitting {
		return
	}

	that.emitting = true
	defer func() {
		that.emitting = false
		that.queue = nil
	}()

	for len(that.queue) > 0 {
		next := that.queue[0]
		that.queue = that.queue[1:]

		// handlers subscribed while emitting start with the next event
		for _, handler := range that.handlers[next.Kind] {
			handler(next)
		}
	}
}

func (that *Bus) Move(delta entity.Delta) {
	that.Emit(Event{Kind: KindMove, Delta: delta})
}

func (that *Bus) OnMove(handler func(delta entity.Delta)) {
	that.Subscribe(KindMove, func(event Event) {
		handler(event.Delta)
	})
}

func (that *Bus) Confirm() {
	that.Emit(Event{Kind: KindConfirm})
}

func (that *Bus) OnConfirm(handler func()) {
	that.Subscribe(KindConfirm, func(Event) {
		handler()
	})
}

func (that *Bus) Keypress(name string) {
	that.Emit(Event{Kind: KindKeypress, Key: name})
}

func (that *Bus) OnKeypress(handler func(name string)) {
	that.Subscribe(KindKeypress, func(event Event) {
		handler(event.Key)
	})
}

func (that *Bus) RequestExit() {
	that.Emit(Event{Kind: KindExitRequested})
}

func (that *Bus) OnExitRequested(handler func()) {
	that.Subscribe(KindExitRequested, func(Event) {
		handler()
	})
}

func (that *Bus) Redraw() {
	that.Emit(Event{Kind: KindRedraw})
}

func (that *Bus) OnRedraw(handler func()) {
	that.Subscribe(KindRedraw, func(Event) {
		handler()
	})
}

func (that *Bus) BeginTurn(token string) {
	that.Emit(Event{Kind: KindTurnBegan, Token: token})
}

func (that *Bus) OnTurnBegan(handler func(token string)) {
	that.Subscribe(KindTurnBegan, func(event Event) {
		handler(event.Token)
	})
}

func (that *Bus) EndTurn() {
	that.Emit(Event{Kind: KindTurnEnded})
}

func (that *Bus) OnTurnEnded(handler func()) {
	that.Subscribe(KindTurnEnded, func(Event) {
		handler()
	})
}

func (that *Bus) Exit() {
	that.Emit(Event{Kind: KindExit})
}

func (that *Bus) OnExit(handler func()) {
	that.Subscribe(KindExit, func(Event) {
		handler()
	})
}
