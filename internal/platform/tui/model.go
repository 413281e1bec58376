package tui

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/geometry-rush/internal/core"
	"github.com/vovakirdan/geometry-rush/internal/games/rush"
	"github.com/vovakirdan/geometry-rush/internal/storage"
)

// storeTimeout bounds a single database round trip made from the UI.
const storeTimeout = 5 * time.Second

// Options configures a game Model beyond the runtime config.
type Options struct {
	Store      *storage.Store // nil disables persistence
	Logger     *log.Logger    // nil uses the default charm logger
	Player     string         // recorded with every saved run
	Difficulty string         // preset name recorded with every saved run
}

// runSavedMsg reports the outcome of persisting a finished run.
type runSavedMsg struct {
	id   int64
	best int
	err  error
}

// bestScoreMsg carries the best stored score.
type bestScoreMsg struct {
	best int
	err  error
}

// Model is the Bubble Tea model that hosts a Geometry Rush game.
type Model struct {
	game       *rush.Game
	screen     *core.Screen
	opts       Options
	config     core.RuntimeConfig
	keys       GameKeyMap
	help       help.Model
	inputFrame core.InputFrame
	gameState  core.GameState
	best       int
	paused     bool
	faults     int
	gen        int  // tick generation, see TickMsg
	embedded   bool // running inside a SessionModel; Back returns to the menu
	quitting   bool
	backToMenu bool
}

// NewModel creates a Bubble Tea model for the given game and resets it.
func NewModel(game *rush.Game, cfg core.RuntimeConfig, opts Options) (Model, error) {
	if opts.Logger == nil {
		opts.Logger = log.Default()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}
	if err := game.Reset(cfg); err != nil {
		return Model{}, fmt.Errorf("tui: %w", err)
	}
	cfg.Seed = game.Seed()

	h := help.New()
	h.Width = cfg.ScreenW

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, playfieldHeight(cfg.ScreenH)),
		opts:       opts,
		config:     cfg,
		keys:       DefaultGameKeyMap(),
		help:       h,
		inputFrame: core.NewInputFrame(),
		gameState:  game.State(),
	}, nil
}

// playfieldHeight reserves the bottom row for the help bar when there is room.
func playfieldHeight(screenH int) int {
	if screenH > 1 {
		return screenH - 1
	}
	return screenH
}

// Init starts the tick loop and loads the best score.
func (m Model) Init() tea.Cmd {
	return tea.Batch(tickCmd(m.config.TickRate, m.gen), loadBestCmd(m.opts.Store))
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		if msg.Gen != m.gen {
			return m, nil
		}
		return m.handleTick()

	case runSavedMsg:
		if msg.err != nil {
			m.opts.Logger.Error("could not save run", "error", msg.err)
			return m, nil
		}
		m.opts.Logger.Debug("run saved", "id", msg.id, "best", msg.best)
		m.best = max(m.best, msg.best)
		return m, nil

	case bestScoreMsg:
		if msg.err != nil {
			m.opts.Logger.Warn("could not load best score", "error", msg.err)
			return m, nil
		}
		m.best = max(m.best, msg.best)
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Screenshot) {
		m.saveScreenshot()
		return m, nil
	}

	switch action := m.keys.MapKey(msg); action {
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit

	case core.ActionPause:
		if m.gameState.Started && !m.gameState.GameOver {
			m.paused = !m.paused
		}

	case core.ActionBack:
		// Leaving mid-run would discard it silently.
		if m.gameState.Started && !m.gameState.GameOver && !m.paused {
			return m, nil
		}
		m.backToMenu = true
		if !m.embedded {
			return m, tea.Quit
		}

	case core.ActionNone:

	default:
		if !m.paused {
			m.inputFrame.Set(action)
		}
	}

	return m, nil
}

// handleResize processes window resize events. The world has a fixed
// logical size, so the run continues at the new scale.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, playfieldHeight(msg.Height))
	m.help.Width = msg.Width
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	next := tickCmd(m.config.TickRate, m.gen)
	if m.paused {
		m.inputFrame.Clear()
		return m, next
	}

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State
	m.inputFrame.Clear()

	if result.Err != nil {
		m.faults++
		if m.faults == 1 {
			m.opts.Logger.Error("simulation fault", "error", result.Err)
		}
	}

	if result.Has(core.EventGameOver) {
		m.opts.Logger.Info("run over", "score", result.State.Score, "seed", m.game.Seed())
		return m, tea.Batch(next, m.saveRunCmd())
	}

	return m, next
}

// saveRunCmd persists the finished run in the background.
func (m Model) saveRunCmd() tea.Cmd {
	store := m.opts.Store
	if store == nil {
		return nil
	}
	sim := m.game.Simulation()
	run := storage.Run{
		Player:     m.opts.Player,
		Score:      sim.Score(),
		Distance:   sim.Distance(),
		Frames:     sim.Frame(),
		Seed:       m.game.Seed(),
		Difficulty: m.opts.Difficulty,
	}

	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), storeTimeout)
		defer cancel()

		id, err := store.SaveRun(ctx, run)
		if err != nil {
			return runSavedMsg{err: err}
		}
		best, err := store.BestScore(ctx)
		return runSavedMsg{id: id, best: best, err: err}
	}
}

// loadBestCmd reads the best stored score.
func loadBestCmd(store *storage.Store) tea.Cmd {
	if store == nil {
		return nil
	}
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), storeTimeout)
		defer cancel()
		best, err := store.BestScore(ctx)
		return bestScoreMsg{best: best, err: err}
	}
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		m.opts.Logger.Warn("screenshot skipped", "error", err)
		return
	}
	dir := filepath.Join(home, ".arcade", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.opts.Logger.Warn("screenshot skipped", "error", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.opts.Logger.Warn("screenshot failed", "error", err)
		return
	}
	m.opts.Logger.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	if m.paused {
		drawPaused(m.screen)
	}

	out := RenderScreen(m.screen)
	if m.config.ScreenH > 1 {
		out += "\n" + m.statusLine()
	}
	return out
}

// statusLine renders the help bar with the best score.
func (m Model) statusLine() string {
	style := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	line := m.help.View(m.keys)
	if m.best > 0 {
		line = fmt.Sprintf("best %dm • %s", m.best, line)
	}
	return style.Render(line)
}

// drawPaused overlays the pause box.
func drawPaused(s *core.Screen) {
	const (
		title = "PAUSED"
		hint  = "Press P to resume"
	)
	boxW := len(hint) + 4
	boxH := 5
	x := (s.Width() - boxW) / 2
	y := (s.Height() - boxH) / 2

	s.FillRect(x, y, x+boxW, y+boxH, ' ', core.ColorDefault)
	s.DrawBox(x, y, boxW, boxH, core.ColorHUD)
	s.DrawText(x+(boxW-len(title))/2, y+1, title, core.ColorGlow)
	s.DrawText(x+2, y+3, hint, core.ColorHUD)
}

// IsQuitting returns true if user requested to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// Paused reports whether the host has paused the run.
func (m Model) Paused() bool {
	return m.paused
}

// Run starts the Bubble Tea program for a single game.
func Run(game *rush.Game, cfg core.RuntimeConfig, opts Options) error {
	model, err := NewModel(game, cfg, opts)
	if err != nil {
		return err
	}

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err = p.Run()
	return err
}
