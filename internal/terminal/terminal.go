// Package terminal adapts a tcell screen to the game: it paints view lines and turns raw
// keypresses into bus events.
package terminal

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
	"github.com/rocketscienceinc/tictactoe-cli/internal/entity"
	"github.com/rocketscienceinc/tictactoe-cli/internal/events"
)

// Poster hands work to the goroutine that owns the game.
type Poster interface {
	Post(task func()) bool
}

type Terminal struct {
	logger *slog.Logger
	screen tcell.Screen
	style  tcell.Style
}

// New - initialises screen and takes ownership of it until Close.
func New(logger *slog.Logger, screen tcell.Screen) (*Terminal, error) {
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("failed to init screen: %w", err)
	}

	screen.HideCursor()
	screen.Clear()

	return &Terminal{
		logger: logger.With("component", "terminal"),
		screen: screen,
		style:  tcell.StyleDefault,
	}, nil
}

// Draw - replaces the screen contents with lines, one per row.
func (that *Terminal) Draw(lines []string) {
	that.screen.Clear()

	for y, line := range lines {
		x := 0
		for _, r := range line {
			that.screen.SetContent(x, y, r, nil, that.style)
			x += runewidth.RuneWidth(r)
		}
	}

	that.screen.Show()
}

// Listen - reads screen events until Close. Every key is posted as one task that emits the generic
// keypress first and the specific input event after it.
func (that *Terminal) Listen(poster Poster, bus *events.Bus) {
	for {
		switch ev := that.screen.PollEvent().(type) {
		case nil:
			that.logger.Debug("screen closed, listener done")
			return
		case *tcell.EventResize:
			that.screen.Sync()
			poster.Post(bus.Redraw)
		case *tcell.EventKey:
			that.forwardKey(poster, bus, ev)
		}
	}
}

func (that *Terminal) forwardKey(poster Poster, bus *events.Bus, ev *tcell.EventKey) {
	name := keyName(ev)
	that.logger.Debug("key pressed", "key", name)

	task := func() {
		bus.Keypress(name)

		switch ev.Key() {
		case tcell.KeyUp:
			bus.Move(entity.Up)
		case tcell.KeyDown:
			bus.Move(entity.Down)
		case tcell.KeyLeft:
			bus.Move(entity.Left)
		case tcell.KeyRight:
			bus.Move(entity.Right)
		case tcell.KeyEnter:
			bus.Confirm()
		case tcell.KeyEscape, tcell.KeyCtrlC:
			bus.RequestExit()
		}
	}

	if !poster.Post(task) {
		that.logger.Debug("key dropped", "key", name)
	}
}

func keyName(ev *tcell.EventKey) string {
	switch ev.Key() {
	case tcell.KeyUp:
		return "up"
	case tcell.KeyDown:
		return "down"
	case tcell.KeyLeft:
		return "left"
	case tcell.KeyRight:
		return "right"
	case tcell.KeyEnter:
		return "enter"
	case tcell.KeyRune:
		return string(ev.Rune())
	default:
		return strings.ToLower(ev.Name())
	}
}

// Close - restores the terminal. Listen returns afterwards.
func (that *Terminal) Close() {
	that.screen.Fini()
}
