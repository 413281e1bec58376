package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/geometry-rush/internal/config"
)

func newTestSession() SessionModel {
	return NewSessionModel(config.DefaultRushConfig(), testRuntime(), quietOptions(nil))
}

func sendSession(t *testing.T, m SessionModel, msg tea.Msg) (SessionModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	model, ok := next.(SessionModel)
	if !ok {
		t.Fatalf("Update returned %T, expected SessionModel", next)
	}
	return model, cmd
}

func TestMenuNavigation(t *testing.T) {
	m := NewMenuModel(testRuntime(), 0)

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m = next.(MenuModel)
	next, cmd := m.Update(keyEnter)
	m = next.(MenuModel)

	if m.Selected() != MenuScores {
		t.Errorf("got %v, expected %v", m.Selected(), MenuScores)
	}
	if cmd == nil {
		t.Error("selection should close the menu")
	}
}

func TestMenuCursorClamped(t *testing.T) {
	m := NewMenuModel(testRuntime(), 0)
	for range 10 {
		next, _ := m.Update(tea.KeyMsg{Type: tea.KeyUp})
		m = next.(MenuModel)
	}
	if m.cursor != 0 {
		t.Errorf("got cursor %d, expected 0", m.cursor)
	}
	for range 10 {
		next, _ := m.Update(tea.KeyMsg{Type: tea.KeyDown})
		m = next.(MenuModel)
	}
	if m.cursor != len(menuItems)-1 {
		t.Errorf("got cursor %d, expected %d", m.cursor, len(menuItems)-1)
	}
}

func TestMenuShowsBest(t *testing.T) {
	m := NewMenuModel(testRuntime(), 321)
	if !strings.Contains(m.View(), "321m") {
		t.Error("menu should show the best run")
	}
}

func TestSessionPlayAndBack(t *testing.T) {
	m := newTestSession()

	m, cmd := sendSession(t, m, keyEnter)
	if m.active != screenGame || m.game == nil {
		t.Fatal("Play should open the game")
	}
	if cmd == nil {
		t.Error("game should start ticking")
	}

	// Back from the idle title screen returns to the menu without quitting.
	m, cmd = sendSession(t, m, keyEsc)
	if m.active != screenMenu {
		t.Errorf("got screen %d, expected menu", m.active)
	}
	if m.quitting || cmd != nil {
		t.Error("back should not quit the session")
	}
}

func TestSessionScoresWithoutStore(t *testing.T) {
	m := newTestSession()

	m, _ = sendSession(t, m, keyTab)
	if m.active != screenScores {
		t.Fatal("tab should open the scoreboard")
	}
	if !strings.Contains(m.View(), "unavailable") {
		t.Error("scoreboard should explain that scores are unavailable")
	}

	m, _ = sendSession(t, m, keyEsc)
	if m.active != screenMenu {
		t.Error("esc should return to the menu")
	}
}

func TestSessionQuitFromGame(t *testing.T) {
	m := newTestSession()
	m, _ = sendSession(t, m, keyEnter)

	m, cmd := sendSession(t, m, runeKey('q'))
	if !m.quitting || cmd == nil {
		t.Error("q should quit the session")
	}
	if m.View() != "" {
		t.Error("quitting session should render nothing")
	}
}

func TestSessionIgnoresStaleTicks(t *testing.T) {
	m := newTestSession()
	m, cmd := sendSession(t, m, TickMsg{})
	if m.active != screenMenu || cmd != nil {
		t.Error("ticks outside a game should be ignored")
	}
}

func TestSessionDropsTicksOfPreviousGame(t *testing.T) {
	m := newTestSession()
	m, _ = sendSession(t, m, keyEnter)
	m, _ = sendSession(t, m, keyEsc)
	m, _ = sendSession(t, m, keyEnter)
	if m.active != screenGame || m.game.gen != 2 {
		t.Fatalf("expected the second game, got screen %d", m.active)
	}

	m, cmd := sendSession(t, m, TickMsg{Gen: 1})
	if cmd != nil {
		t.Error("a tick of the first game must not start a second tick loop")
	}

	m, cmd = sendSession(t, m, TickMsg{Gen: 2})
	if cmd == nil {
		t.Error("the current game should keep ticking")
	}
	if m.game.game.Simulation().Frame() != 0 {
		t.Error("an idle game should not advance frames")
	}
}
