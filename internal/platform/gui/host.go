// Package gui hosts the runner in a desktop window using Ebitengine.
// The simulation's logical world maps 1:1 onto the ebiten screen and the
// window scales it.
package gui

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/geometry-rush/internal/core"
	"github.com/vovakirdan/geometry-rush/internal/games/rush"
	"github.com/vovakirdan/geometry-rush/internal/storage"
)

// storeTimeout bounds a single database round trip.
const storeTimeout = 5 * time.Second

// Options configures the window host.
type Options struct {
	Store      *storage.Store // nil disables persistence
	Logger     *log.Logger    // nil uses the default charm logger
	Player     string
	Difficulty string
	Scale      float64 // window size relative to the world; 0 means 1
}

// Host implements ebiten.Game around a rush.Game.
type Host struct {
	game    *rush.Game
	opts    Options
	painter *painter
	input   core.InputFrame
	paused  bool
	best    int
	faults  int
	width   int
	height  int
	saved   chan int // best scores reported by background saves
}

// NewHost resets the game and prepares it for ebiten.
func NewHost(game *rush.Game, cfg core.RuntimeConfig, opts Options) (*Host, error) {
	if opts.Logger == nil {
		opts.Logger = log.Default()
	}
	if err := game.Reset(cfg); err != nil {
		return nil, fmt.Errorf("gui: %w", err)
	}

	h := &Host{
		game:    game,
		opts:    opts,
		painter: newPainter(),
		input:   core.NewInputFrame(),
		saved:   make(chan int, 4),
	}
	snap := game.Simulation().Snapshot()
	h.width, h.height = int(snap.Width), int(snap.Height)
	if opts.Store != nil {
		ctx, cancel := context.WithTimeout(context.Background(), storeTimeout)
		defer cancel()
		best, err := opts.Store.BestScore(ctx)
		if err != nil {
			opts.Logger.Warn("could not load best score", "error", err)
		}
		h.best = best
	}
	return h, nil
}

// pollInput collapses keyboard, mouse and touch onto actions.
func pollInput(frame *core.InputFrame) {
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) ||
		inpututil.IsKeyJustPressed(ebiten.KeyArrowUp) ||
		inpututil.IsKeyJustPressed(ebiten.KeyW) ||
		inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) ||
		len(inpututil.AppendJustPressedTouchIDs(nil)) > 0 {
		frame.Set(core.ActionJump)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		frame.Set(core.ActionConfirm)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		frame.Set(core.ActionRestart)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		frame.Set(core.ActionPause)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		frame.Set(core.ActionQuit)
	}
}

// Update advances one frame. Returning ebiten.Termination closes the window.
func (h *Host) Update() error {
	h.input.Clear()
	pollInput(&h.input)
	return h.step(h.input)
}

// step applies one frame of input. Split from Update for tests.
func (h *Host) step(in core.InputFrame) error {
	h.drainSaved()

	if in.Has(core.ActionQuit) {
		return ebiten.Termination
	}

	state := h.game.State()
	if in.Has(core.ActionPause) && state.Started && !state.GameOver {
		h.paused = !h.paused
	}
	if h.paused {
		return nil
	}

	result := h.game.Step(in)
	if result.Err != nil {
		h.faults++
		if h.faults == 1 {
			h.opts.Logger.Error("simulation fault", "error", result.Err)
		}
	}
	if result.Has(core.EventGameOver) {
		h.opts.Logger.Info("run over", "score", result.State.Score, "seed", h.game.Seed())
		h.saveRun()
	}
	return nil
}

// saveRun persists the finished run without blocking the frame.
func (h *Host) saveRun() {
	store := h.opts.Store
	if store == nil {
		return
	}
	sim := h.game.Simulation()
	run := storage.Run{
		Player:     h.opts.Player,
		Score:      sim.Score(),
		Distance:   sim.Distance(),
		Frames:     sim.Frame(),
		Seed:       h.game.Seed(),
		Difficulty: h.opts.Difficulty,
	}
	h.best = max(h.best, run.Score)

	logger := h.opts.Logger
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), storeTimeout)
		defer cancel()

		if _, err := store.SaveRun(ctx, run); err != nil {
			logger.Error("could not save run", "error", err)
			return
		}
		best, err := store.BestScore(ctx)
		if err != nil {
			logger.Warn("could not load best score", "error", err)
			return
		}
		select {
		case h.saved <- best:
		default:
		}
	}()
}

// drainSaved applies best scores reported by finished saves.
func (h *Host) drainSaved() {
	for {
		select {
		case best := <-h.saved:
			h.best = max(h.best, best)
		default:
			return
		}
	}
}

// Draw paints the current snapshot.
func (h *Host) Draw(screen *ebiten.Image) {
	h.painter.draw(screen, h.game.Simulation().Snapshot(), h.best, h.paused)
}

// Layout keeps the logical world size regardless of the window size.
func (h *Host) Layout(_, _ int) (int, int) {
	return h.width, h.height
}

// Run opens a window and plays until it is closed.
func Run(game *rush.Game, cfg core.RuntimeConfig, opts Options) error {
	h, err := NewHost(game, cfg, opts)
	if err != nil {
		return err
	}

	w, hgt := h.Layout(0, 0)
	scale := opts.Scale
	if scale <= 0 {
		scale = 1
	}
	ebiten.SetWindowSize(int(float64(w)*scale), int(float64(hgt)*scale))
	ebiten.SetWindowTitle(game.Title())
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	if cfg.TickRate > 0 {
		ebiten.SetTPS(cfg.TickRate)
	}

	if err := ebiten.RunGame(h); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("gui: %w", err)
	}
	return nil
}
