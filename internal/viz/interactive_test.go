package viz

import (
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/san-kum/jointviz/internal/config"
	"github.com/san-kum/jointviz/internal/dist"
)

func press(t *testing.T, m tea.Model, keys ...string) tea.Model {
	t.Helper()
	for _, k := range keys {
		var msg tea.KeyMsg
		switch k {
		case "enter":
			msg = tea.KeyMsg{Type: tea.KeyEnter}
		case "esc":
			msg = tea.KeyMsg{Type: tea.KeyEsc}
		case "backspace":
			msg = tea.KeyMsg{Type: tea.KeyBackspace}
		default:
			msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
		}
		m, _ = m.Update(msg)
	}
	return m
}

func TestInteractive_DefaultFlow(t *testing.T) {
	var m tea.Model = NewInteractiveApp(config.DefaultConfig())

	// X: Normal(0, 1), Y: Uniform(0, 1), both prefilled.
	m = press(t, m, "enter", "enter", "enter")
	if got := m.(model); got.state != stateFamily || got.axis != 1 {
		t.Fatalf("expected Y family prompt, got state %d axis %d", got.state, got.axis)
	}
	m = press(t, m, "enter", "enter", "enter")

	got := m.(model)
	if got.state != stateSurface {
		t.Fatalf("expected surface view, got state %d (err %v)", got.state, got.err)
	}
	if got.surface.X.Family() != dist.Normal || got.surface.Y.Family() != dist.Uniform {
		t.Errorf("surface of %v and %v", got.surface.X, got.surface.Y)
	}
	if !strings.Contains(m.View(), "Joint Distribution of Normal and Uniform") {
		t.Error("surface view missing title")
	}

	rotX := got.camera.RotX
	m = press(t, m, "x", "+")
	if m.(model).camera.RotX <= rotX {
		t.Error("x should tilt the camera")
	}
}

func TestInteractive_RejectsInvalidParameters(t *testing.T) {
	var m tea.Model = NewInteractiveApp(config.DefaultConfig())

	// Normal with stddev 0.
	m = press(t, m, "1", "enter", "backspace", "0", "enter")
	got := m.(model)
	if got.state != stateParams {
		t.Fatalf("expected to stay on the parameter prompt, got state %d", got.state)
	}
	if !errors.Is(got.err, dist.ErrInvalidParameter) {
		t.Errorf("expected ErrInvalidParameter, got %v", got.err)
	}
	if !strings.Contains(m.View(), "stddev") {
		t.Error("error should be shown inline")
	}

	// Fix it and move on.
	m = press(t, m, "backspace", "2", "enter")
	if got := m.(model); got.state != stateFamily || got.axis != 1 || got.err != nil {
		t.Errorf("expected Y family prompt after fix, got state %d axis %d err %v", got.state, got.axis, got.err)
	}
}

func TestInteractive_TinyTerminal(t *testing.T) {
	var m tea.Model = NewInteractiveApp(config.DefaultConfig())
	m = press(t, m, "enter", "enter", "enter", "enter", "enter", "enter")
	m, _ = m.Update(tea.WindowSizeMsg{Width: 3, Height: 2})

	got := m.(model)
	if got.width < minWidth || got.height < minHeight {
		t.Errorf("surface size %dx%d below the %dx%d floor", got.width, got.height, minWidth, minHeight)
	}
	if !strings.Contains(m.View(), "Joint Distribution") {
		t.Error("expected the surface view to render")
	}

	if c := NewCanvas(-4, -1); c.Width != 0 || c.Height != 0 {
		t.Errorf("NewCanvas(-4, -1) = %dx%d, want 0x0", c.Width, c.Height)
	}
}

func TestInteractive_SelectByNumber(t *testing.T) {
	var m tea.Model = NewInteractiveApp(config.DefaultConfig())
	m = press(t, m, "3")
	got := m.(model)
	if got.families[0] != dist.Gamma || got.state != stateParams {
		t.Fatalf("expected Gamma parameters, got %v state %d", got.families[0], got.state)
	}
	if len(got.fields[0]) != 2 {
		t.Errorf("gamma needs 2 fields, got %d", len(got.fields[0]))
	}
}
