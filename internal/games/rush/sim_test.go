package rush

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/geometry-rush/internal/config"
	"github.com/vovakirdan/geometry-rush/internal/core"
)

func TestNewSimulationRejectsBadBounds(t *testing.T) {
	cfg := config.DefaultRushConfig()
	rng := &seqRand{}
	bounds := [][2]float64{
		{0, 450},
		{800, 0},
		{-800, 450},
		{math.Inf(1), 450},
		{800, math.NaN()},
	}
	for _, b := range bounds {
		_, err := NewSimulation(cfg, b[0], b[1], rng, rng)
		assert.ErrorIs(t, err, ErrInvalidBounds, "bounds %v", b)
	}
}

func TestNewSimulationRejectsInvalidConfig(t *testing.T) {
	cfg := config.DefaultRushConfig()
	cfg.Obstacles.Kinds = nil
	_, err := NewSimulation(cfg, 800, 450, &seqRand{}, &seqRand{})
	assert.ErrorIs(t, err, config.ErrInvalidConfig)

	_, err = NewSimulation(config.DefaultRushConfig(), 800, 450, nil, &seqRand{})
	assert.Error(t, err)

	cfg = config.DefaultRushConfig()
	cfg.Actor.Gravity = math.NaN()
	_, err = NewSimulation(cfg, 800, 450, &seqRand{}, &seqRand{})
	assert.ErrorIs(t, err, config.ErrInvalidConfig)
}

func TestSimulationInitialState(t *testing.T) {
	sim := newTestSim(t, config.DefaultRushConfig())
	snap := sim.Snapshot()

	assert.Equal(t, StateIdle, snap.State)
	assert.Equal(t, 405.0, snap.Ground)
	assert.Equal(t, 160.0, snap.Actor.Bounds.X)
	assert.Equal(t, 360.0, snap.Actor.Bounds.Y)
	assert.Equal(t, 5.0, snap.Speed)
	assert.Zero(t, snap.Distance)
}

func TestUpdateIdleIsNoop(t *testing.T) {
	sim := newTestSim(t, config.DefaultRushConfig())
	for i := 0; i < 10; i++ {
		require.NoError(t, sim.Update())
	}
	assert.Equal(t, 0, sim.Frame())
	assert.Equal(t, 360.0, sim.Actor().Y)
	assert.False(t, sim.Jump(), "jump rejected while idle")
}

func TestStartTransitions(t *testing.T) {
	sim := newTestSim(t, config.DefaultRushConfig())
	assert.True(t, sim.Start())
	assert.Equal(t, StateRunning, sim.State())
	assert.False(t, sim.Start(), "start only from idle")
}

func TestWorldScalarsAdvance(t *testing.T) {
	sim := newTestSim(t, config.DefaultRushConfig(), kindIndex(t, "orange"))
	sim.Start()
	for i := 0; i < 10; i++ {
		require.NoError(t, sim.Update())
	}
	snap := sim.Snapshot()
	assert.InDelta(t, 5.0, snap.Distance, 1e-9)
	assert.InDelta(t, 25.0, snap.BackgroundOffset, 1e-9)
	assert.InDelta(t, 10.0, snap.CloudOffset, 1e-9)
	assert.Equal(t, 5, snap.Score())
}

func TestSpeedRampsWithDistance(t *testing.T) {
	cfg := lowHurdleConfig()
	cfg.Obstacles.Kinds[0].Height = 1 // never reached: actor rests above it with tolerance
	sim := newTestSim(t, cfg)
	sim.Start()

	for sim.Distance() < 500 {
		require.NoError(t, sim.Update())
		require.Equal(t, StateRunning, sim.State())
		assert.Equal(t, 5.0, sim.Speed())
	}
	require.NoError(t, sim.Update())
	assert.Equal(t, 5.5, sim.Speed())
}

// Running with no input into an orange must end at a reproducible frame.
func TestRunEndsOnFirstObstacle(t *testing.T) {
	sim := newTestSim(t, config.DefaultRushConfig(), kindIndex(t, "orange"))
	sim.Start()

	var events []core.Event
	for i := 0; i < 500 && sim.State() == StateRunning; i++ {
		require.NoError(t, sim.Update())
		events = append(events, sim.Events()...)
	}

	require.Equal(t, StateOver, sim.State())
	assert.Equal(t, 202, sim.Frame())
	assert.InDelta(t, 101.0, sim.Distance(), 1e-9)

	require.Len(t, events, 1)
	assert.Equal(t, core.EventGameOver, events[0].Type)
	assert.InDelta(t, 101.0, events[0].Distance, 1e-9)

	snap := sim.Snapshot()
	assert.GreaterOrEqual(t, len(snap.Particles), 15, "crash burst")
}

func TestOverIsFrozen(t *testing.T) {
	sim := newTestSim(t, config.DefaultRushConfig(), kindIndex(t, "orange"))
	sim.Start()
	for sim.State() == StateRunning {
		require.NoError(t, sim.Update())
	}
	before := sim.Snapshot()

	for i := 0; i < 50; i++ {
		require.NoError(t, sim.Update())
	}
	assert.False(t, sim.Jump())
	assert.False(t, sim.Start())
	assert.Equal(t, before, sim.Snapshot())
}

// A jump issued the frame an obstacle reaches the actor clears a low hurdle.
func TestJumpAtEntryClearsLowObstacle(t *testing.T) {
	sim := newTestSim(t, lowHurdleConfig())
	sim.Start()

	actorRight := sim.Actor().Bounds().Right()
	jumped := map[int]bool{} // spawn order -> jumped
	cleared := 0

	for i := 0; i < 900; i++ {
		require.NoError(t, sim.Update())
		require.Equal(t, StateRunning, sim.State(), "crashed on frame %d", sim.Frame())

		for idx, o := range sim.Obstacles() {
			id := sim.stream.Spawned() - len(sim.Obstacles()) + idx
			if o.X <= actorRight && !jumped[id] {
				require.True(t, sim.Jump(), "actor grounded when hurdle arrives")
				jumped[id] = true
			}
			if o.X+o.Kind.Width < sim.Actor().X && jumped[id] && !jumped[-id-1] {
				jumped[-id-1] = true
				cleared++
			}
		}
	}
	assert.GreaterOrEqual(t, cleared, 5)
}

func TestJumpEmitsEventAndPuff(t *testing.T) {
	sim := newTestSim(t, config.DefaultRushConfig(), kindIndex(t, "orange"))
	sim.Start()
	for !sim.Actor().Grounded {
		require.NoError(t, sim.Update())
	}
	sim.Events()
	before := len(sim.Snapshot().Particles)

	require.True(t, sim.Jump())
	assert.Equal(t, -16.0, sim.Actor().VY)
	assert.False(t, sim.Jump(), "no air jumps")

	events := sim.Events()
	require.Len(t, events, 1)
	assert.Equal(t, core.EventJump, events[0].Type)
	assert.Equal(t, before+5, len(sim.Snapshot().Particles))
	assert.Nil(t, sim.Events(), "queue drained")
}

func TestResetAfterOver(t *testing.T) {
	sim := newTestSim(t, config.DefaultRushConfig(), kindIndex(t, "orange"))
	sim.Start()
	for sim.State() == StateRunning {
		require.NoError(t, sim.Update())
	}

	sim.Reset()
	snap := sim.Snapshot()
	assert.Equal(t, StateIdle, snap.State)
	assert.Equal(t, 160.0, snap.Actor.Bounds.X)
	assert.Equal(t, 360.0, snap.Actor.Bounds.Y)
	assert.Zero(t, snap.Actor.Angle)
	assert.Zero(t, sim.Actor().VY)
	assert.Empty(t, snap.Obstacles)
	assert.Empty(t, snap.Particles)
	assert.Empty(t, snap.Actor.Trail)
	assert.Zero(t, snap.Distance)
	assert.Equal(t, 80.0, snap.SpawnInterval)
	assert.Equal(t, 0, snap.Frame)
}

func TestRestartReplaysSameRun(t *testing.T) {
	sim := newTestSim(t, config.DefaultRushConfig(), kindIndex(t, "orange"))
	sim.Start()
	for sim.State() == StateRunning {
		require.NoError(t, sim.Update())
	}
	first := sim.Frame()

	sim.Restart()
	require.Equal(t, StateRunning, sim.State())
	for sim.State() == StateRunning {
		require.NoError(t, sim.Update())
	}
	assert.Equal(t, first, sim.Frame())
}

func TestCorruptCatalogSurfacesError(t *testing.T) {
	sim := newTestSim(t, config.DefaultRushConfig())
	sim.stream.catalog[0].Shape = Shape(99)
	sim.Start()

	var err error
	for i := 0; i < 100 && err == nil; i++ {
		err = sim.Update()
	}
	require.ErrorIs(t, err, ErrUnknownShape)
	assert.Equal(t, StateRunning, sim.State(), "a fault is not a crash")
	assert.Equal(t, 80, sim.Frame())
}

func TestSimulationDeterminism(t *testing.T) {
	run := func() Snapshot {
		sim, err := NewSimulation(config.DefaultRushConfig(), 800, 450,
			rand.New(rand.NewSource(7)), rand.New(rand.NewSource(8)))
		require.NoError(t, err)
		sim.Start()
		for i := 0; i < 1500 && sim.State() == StateRunning; i++ {
			if i%45 == 0 {
				sim.Jump()
			}
			require.NoError(t, sim.Update())
		}
		return sim.Snapshot()
	}
	assert.Equal(t, run(), run())
}

func TestParticlesDoNotAffectObstacles(t *testing.T) {
	withFX := config.DefaultRushConfig()
	noFX := config.DefaultRushConfig()
	noFX.Particles.Trail = false
	noFX.Particles.JumpPuffs = false

	frames := func(cfg config.RushConfig) int {
		sim := newTestSim(t, cfg, kindIndex(t, "apple"))
		sim.Start()
		for sim.State() == StateRunning {
			require.NoError(t, sim.Update())
		}
		return sim.Frame()
	}
	assert.Equal(t, frames(withFX), frames(noFX))
}
