package terminal

import (
	"fmt"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rocketscienceinc/tictactoe-cli/internal/entity"
	"github.com/rocketscienceinc/tictactoe-cli/internal/events"
	"github.com/rocketscienceinc/tictactoe-cli/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const waitFor = 2 * time.Second

type chanPoster chan func()

func (that chanPoster) Post(task func()) bool {
	that <- task
	return true
}

type fixture struct {
	screen   tcell.SimulationScreen
	term     *Terminal
	bus      *events.Bus
	tasks    chanPoster
	recorded []string
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	screen := tcell.NewSimulationScreen("UTF-8")
	term, err := New(testutil.NopLogger(), screen)
	require.NoError(t, err)
	screen.SetSize(40, 12)

	f := &fixture{
		screen: screen,
		term:   term,
		bus:    events.NewBus(),
		tasks:  make(chanPoster, 16),
	}

	f.bus.OnKeypress(func(name string) { f.recorded = append(f.recorded, "keypress:"+name) })
	f.bus.OnMove(func(delta entity.Delta) { f.recorded = append(f.recorded, fmt.Sprintf("move:%d,%d", delta.X, delta.Y)) })
	f.bus.OnConfirm(func() { f.recorded = append(f.recorded, "confirm") })
	f.bus.OnExitRequested(func() { f.recorded = append(f.recorded, "exit-requested") })

	done := make(chan struct{})
	go func() {
		defer close(done)
		term.Listen(f.tasks, f.bus)
	}()

	t.Cleanup(func() {
		term.Close()
		select {
		case <-done:
		case <-time.After(waitFor):
			t.Error("listener did not stop")
		}
	})

	return f
}

// press injects a key and runs posted tasks until want events were recorded.
func (that *fixture) press(t *testing.T, key tcell.Key, r rune, want int) []string {
	t.Helper()

	that.recorded = nil
	that.screen.InjectKey(key, r, tcell.ModNone)

	deadline := time.After(waitFor)
	for len(that.recorded) < want {
		select {
		case task := <-that.tasks:
			task()
		case <-deadline:
			t.Fatalf("got %v, want %d events", that.recorded, want)
		}
	}

	return that.recorded
}

func TestTerminal_Listen(t *testing.T) {
	f := newFixture(t)

	cases := []struct {
		name string
		key  tcell.Key
		r    rune
		want []string
	}{
		{name: "Arrow up", key: tcell.KeyUp, want: []string{"keypress:up", "move:0,-1"}},
		{name: "Arrow down", key: tcell.KeyDown, want: []string{"keypress:down", "move:0,1"}},
		{name: "Arrow left", key: tcell.KeyLeft, want: []string{"keypress:left", "move:-1,0"}},
		{name: "Arrow right", key: tcell.KeyRight, want: []string{"keypress:right", "move:1,0"}},
		{name: "Enter confirms", key: tcell.KeyEnter, want: []string{"keypress:enter", "confirm"}},
		{name: "Escape exits", key: tcell.KeyEscape, want: []string{"keypress:esc", "exit-requested"}},
		{name: "Rune is only a keypress", key: tcell.KeyRune, r: 'q', want: []string{"keypress:q"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, f.press(t, tc.key, tc.r, len(tc.want)))
		})
	}
}

func TestTerminal_CtrlCExits(t *testing.T) {
	f := newFixture(t)

	recorded := f.press(t, tcell.KeyCtrlC, 0, 2)

	require.Len(t, recorded, 2)
	assert.Contains(t, recorded[0], "keypress:")
	assert.Equal(t, "exit-requested", recorded[1])
}

func TestTerminal_Draw(t *testing.T) {
	// Given: an initialised simulation screen
	screen := tcell.NewSimulationScreen("UTF-8")
	term, err := New(testutil.NopLogger(), screen)
	require.NoError(t, err)
	defer term.Close()
	screen.SetSize(20, 5)

	// When: two frames are drawn
	term.Draw([]string{"xxxxxxxx", "yyyy"})
	term.Draw([]string{" X | O ", "==="})

	// Then: only the last frame is visible
	cells, width, _ := screen.GetContents()
	row := func(y, n int) string {
		var line []rune
		for x := 0; x < n; x++ {
			runes := cells[y*width+x].Runes
			if len(runes) == 0 {
				line = append(line, ' ')
				continue
			}
			line = append(line, runes[0])
		}

		return string(line)
	}

	assert.Equal(t, " X | O  ", row(0, 8))
	assert.Equal(t, "=== ", row(1, 4))
}
