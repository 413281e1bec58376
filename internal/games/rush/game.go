package rush

import (
	"errors"
	"math/rand"
	"time"

	"github.com/vovakirdan/geometry-rush/internal/config"
	"github.com/vovakirdan/geometry-rush/internal/core"
)

// ErrNotReset is reported by Step when the game has no simulation yet.
var ErrNotReset = errors.New("rush: Step called before Reset")

// particleSeedSalt separates the particle stream from the obstacle stream.
const particleSeedSalt = 0x5eed

// Game adapts a Simulation to the frame-stepped host loop.
type Game struct {
	cfg     config.RushConfig
	runtime core.RuntimeConfig
	sim     *Simulation
}

// New creates a Geometry Rush game with the given configuration.
// Call Reset before the first Step.
func New(cfg config.RushConfig) *Game {
	return &Game{cfg: cfg}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "rush"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Geometry Rush"
}

// Reset builds a fresh idle simulation. A zero seed picks one from the clock.
func (g *Game) Reset(runtime core.RuntimeConfig) error {
	seed := runtime.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	runtime.Seed = seed
	g.runtime = runtime

	sim, err := NewSimulation(g.cfg, g.cfg.World.Width, g.cfg.World.Height,
		rand.New(rand.NewSource(seed)),
		rand.New(rand.NewSource(seed^particleSeedSalt)))
	if err != nil {
		return err
	}
	g.sim = sim
	return nil
}

// Step applies the frame's input and advances the simulation by one frame.
// Reset must succeed first; otherwise Step does nothing and reports ErrNotReset.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.sim == nil {
		return core.StepResult{Err: ErrNotReset}
	}

	switch g.sim.State() {
	case StateIdle:
		if in.Has(core.ActionConfirm) || in.Has(core.ActionJump) {
			g.sim.Start()
		}
	case StateRunning:
		if in.Has(core.ActionJump) {
			g.sim.Jump()
		}
	case StateOver:
		if in.Has(core.ActionRestart) || in.Has(core.ActionConfirm) {
			g.sim.Restart()
		}
	}

	err := g.sim.Update()
	return core.StepResult{
		State:  g.State(),
		Events: g.sim.Events(),
		Err:    err,
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.sim == nil {
		return core.GameState{}
	}
	st := g.sim.State()
	return core.GameState{
		Score:    g.sim.Score(),
		Started:  st != StateIdle,
		GameOver: st == StateOver,
	}
}

// Seed returns the seed of the current simulation.
func (g *Game) Seed() int64 {
	return g.runtime.Seed
}

// Simulation exposes the underlying simulation to hosts that paint snapshots directly.
func (g *Game) Simulation() *Simulation {
	return g.sim
}
