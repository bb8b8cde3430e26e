// Package teatest drives bubbletea models synchronously in tests.
//
// Instead of starting a tea.Program (goroutines, a real terminal), a
// Harness feeds messages straight into Update and resolves the returned
// commands inline, so model state after every keystroke is deterministic
// and inspectable through View.
//
// Commands are classified by their function symbol before they run:
// ticker and cursor-blink commands are dropped without executing, while
// everything else (message factories, store queries, long computations)
// gets a generous window to produce its message.
package teatest

import (
	"fmt"
	"reflect"
	"runtime"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// maxResolveDepth bounds command resolution so a model that keeps
// returning commands cannot hang a test.
const maxResolveDepth = 100

// awaitTimeout is how long a non-timer command may take to produce its
// message. Monte Carlo runs and store queries finish well inside it.
const awaitTimeout = 3 * time.Second

// Harness owns a model under test and keeps it current as messages flow.
type Harness struct {
	t     *testing.T
	model tea.Model

	// quit is set once tea.QuitMsg has been seen. The real runtime
	// intercepts that message before the model does, so the harness
	// records it explicitly.
	quit bool
}

// NewHarness wraps model and runs its Init command to completion.
func NewHarness(t *testing.T, model tea.Model) *Harness {
	t.Helper()
	h := &Harness{t: t, model: model}
	h.resolve(model.Init(), 0)
	return h
}

// Model returns the current model, for type assertions in tests.
func (h *Harness) Model() tea.Model { return h.model }

// View renders the current model.
func (h *Harness) View() string { return h.model.View() }

// Quit reports whether the model has asked the runtime to stop.
func (h *Harness) Quit() bool { return h.quit }

// Send feeds one message through Update and resolves what comes back.
func (h *Harness) Send(msg tea.Msg) {
	h.t.Helper()
	if h.quit {
		return
	}
	next, cmd := h.model.Update(msg)
	h.model = next
	h.resolve(cmd, 0)
}

// Press sends a single named key: "enter", "esc", "up", "down",
// "backspace", "ctrl+c", or any character sequence sent rune by rune.
func (h *Harness) Press(key string) {
	h.t.Helper()
	switch key {
	case "enter":
		h.Send(tea.KeyMsg{Type: tea.KeyEnter})
	case "esc":
		h.Send(tea.KeyMsg{Type: tea.KeyEsc})
	case "up":
		h.Send(tea.KeyMsg{Type: tea.KeyUp})
	case "down":
		h.Send(tea.KeyMsg{Type: tea.KeyDown})
	case "backspace":
		h.Send(tea.KeyMsg{Type: tea.KeyBackspace})
	case "ctrl+c":
		h.Send(tea.KeyMsg{Type: tea.KeyCtrlC})
	default:
		h.Type(key)
	}
}

// Type sends a string one rune at a time.
func (h *Harness) Type(s string) {
	h.t.Helper()
	for _, r := range s {
		h.Send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
}

// resolve executes a command, feeds its message back through Update, and
// keeps going until the chain runs dry or the depth limit is hit.
func (h *Harness) resolve(cmd tea.Cmd, depth int) {
	h.t.Helper()
	if cmd == nil {
		return
	}
	if depth >= maxResolveDepth {
		h.t.Logf("teatest: command chain cut off after %d steps", maxResolveDepth)
		return
	}
	if isTimerCmd(cmd) {
		return
	}

	msg := await(cmd)
	if msg == nil || isBlink(msg) {
		return
	}

	if batch, ok := msg.(tea.BatchMsg); ok {
		for _, sub := range batch {
			if sub != nil {
				h.resolve(sub, depth+1)
			}
		}
		return
	}

	if _, ok := msg.(tea.QuitMsg); ok {
		h.quit = true
		next, _ := h.model.Update(msg)
		h.model = next
		return
	}

	next, nextCmd := h.model.Update(msg)
	h.model = next
	h.resolve(nextCmd, depth+1)
}

// await runs cmd against a deadline. A command that misses it resolves
// to nil and its message is lost, which the depth log above surfaces.
func await(cmd tea.Cmd) tea.Msg {
	out := make(chan tea.Msg, 1)
	go func() { out <- cmd() }()
	select {
	case msg := <-out:
		return msg
	case <-time.After(awaitTimeout):
		return nil
	}
}

// isTimerCmd spots commands built by tea.Tick and tea.Every, plus the
// cursor blink command from bubbles, without running them. Executing one
// would park the resolver on a timer for no test-visible gain.
func isTimerCmd(cmd tea.Cmd) bool {
	fn := runtime.FuncForPC(reflect.ValueOf(cmd).Pointer())
	if fn == nil {
		return false
	}
	name := strings.ToLower(fn.Name())
	return strings.Contains(name, "bubbletea.tick") ||
		strings.Contains(name, "bubbletea.every") ||
		strings.Contains(name, "blink")
}

// isBlink catches cursor blink messages that arrive inside batches.
// Their types are unexported, so the check goes by name.
func isBlink(msg tea.Msg) bool {
	name := fmt.Sprintf("%T", msg)
	return strings.Contains(strings.ToLower(name), "blink")
}
