package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/geometry-rush/internal/config"
	"github.com/vovakirdan/geometry-rush/internal/core"
	"github.com/vovakirdan/geometry-rush/internal/games/rush"
)

type sessionScreen int

const (
	screenMenu sessionScreen = iota
	screenGame
	screenScores
)

// SessionModel manages the full session flow: menu -> game or scores -> menu.
// It is the top-level model for SSH sessions and the interactive CLI.
type SessionModel struct {
	rushCfg  config.RushConfig
	runtime  core.RuntimeConfig
	opts     Options
	active   sessionScreen
	menu     MenuModel
	game     *Model
	board    *ScoreboardModel
	best     int
	games    int
	quitting bool
}

// NewSessionModel creates a new session model. Every run started from
// the menu gets a fresh game built from rushCfg.
func NewSessionModel(rushCfg config.RushConfig, runtime core.RuntimeConfig, opts Options) SessionModel {
	if opts.Logger == nil {
		opts.Logger = log.Default()
	}
	return SessionModel{
		rushCfg: rushCfg,
		runtime: runtime,
		opts:    opts,
		menu:    NewMenuModel(runtime, 0),
	}
}

// Init initializes the session.
func (m SessionModel) Init() tea.Cmd {
	return loadBestCmd(m.opts.Store)
}

// Update handles messages for the session.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.runtime.ScreenW = msg.Width
		m.runtime.ScreenH = msg.Height
	case bestScoreMsg:
		if msg.err == nil {
			m.best = max(m.best, msg.best)
			m.menu.best = m.best
		}
	case runSavedMsg:
		if msg.err == nil {
			m.best = max(m.best, msg.best)
		}
	}

	switch m.active {
	case screenGame:
		return m.updateGame(msg)
	case screenScores:
		return m.updateScores(msg)
	default:
		return m.updateMenu(msg)
	}
}

// updateMenu handles updates when in menu mode.
func (m SessionModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	newMenu, cmd := m.menu.Update(msg)
	if menuModel, ok := newMenu.(MenuModel); ok {
		m.menu = menuModel
	}

	// The menu quits its own program on selection; inside a session that
	// command is replaced by the next screen's.
	switch m.menu.Selected() {
	case MenuQuit:
		m.quitting = true
		return m, tea.Quit

	case MenuPlay:
		return m.startGame()

	case MenuScores:
		board := NewScoreboardModel(m.opts.Store, m.opts.Player, m.runtime.ScreenW, m.runtime.ScreenH)
		m.board = &board
		m.active = screenScores
		return m, board.Init()
	}

	return m, cmd
}

// startGame builds a fresh game model and starts its tick loop.
func (m SessionModel) startGame() (tea.Model, tea.Cmd) {
	gm, err := NewModel(rush.New(m.rushCfg), m.runtime, m.opts)
	if err != nil {
		m.opts.Logger.Error("could not start game", "error", err)
		return m.toMenu(), nil
	}
	m.games++
	gm.embedded = true
	gm.gen = m.games
	gm.best = m.best
	m.game = &gm
	m.active = screenGame
	m.opts.Logger.Info("run started", "player", m.opts.Player, "seed", gm.game.Seed())
	return m, gm.Init()
}

// updateGame handles updates when in game mode.
func (m SessionModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.game.Update(msg)
	if gameModel, ok := newModel.(Model); ok {
		m.game = &gameModel
	}

	if m.game.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}
	if m.game.BackToMenu() {
		m.best = max(m.best, m.game.best)
		return m.toMenu(), nil
	}

	return m, cmd
}

// updateScores handles updates when the scoreboard is open.
func (m SessionModel) updateScores(msg tea.Msg) (tea.Model, tea.Cmd) {
	newBoard, cmd := m.board.Update(msg)
	if board, ok := newBoard.(ScoreboardModel); ok {
		m.board = &board
	}

	if m.board.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}
	if m.board.IsGoingBack() {
		return m.toMenu(), nil
	}

	return m, cmd
}

// toMenu drops the active screen and shows a fresh menu.
func (m SessionModel) toMenu() SessionModel {
	m.game = nil
	m.board = nil
	m.active = screenMenu
	m.menu = NewMenuModel(m.runtime, m.best)
	return m
}

// View renders the current view.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}

	switch m.active {
	case screenGame:
		return m.game.View()
	case screenScores:
		return m.board.View()
	default:
		return m.menu.View()
	}
}

// RunSession runs the interactive menu flow in the local terminal.
func RunSession(rushCfg config.RushConfig, runtime core.RuntimeConfig, opts Options) error {
	p := tea.NewProgram(
		NewSessionModel(rushCfg, runtime, opts),
		tea.WithAltScreen(),
	)
	_, err := p.Run()
	return err
}
