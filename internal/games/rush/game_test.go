package rush

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/geometry-rush/internal/config"
	"github.com/vovakirdan/geometry-rush/internal/core"
)

func newTestGame(t *testing.T, seed int64) *Game {
	t.Helper()
	g := New(config.DefaultRushConfig())
	rc := core.DefaultConfig()
	rc.Seed = seed
	require.NoError(t, g.Reset(rc))
	return g
}

func input(actions ...core.Action) core.InputFrame {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Set(a)
	}
	return in
}

func TestGameIdentity(t *testing.T) {
	g := New(config.DefaultRushConfig())
	assert.Equal(t, "rush", g.ID())
	assert.Equal(t, "Geometry Rush", g.Title())
}

func TestGameStepBeforeReset(t *testing.T) {
	g := New(config.DefaultRushConfig())

	result := g.Step(input(core.ActionJump))
	assert.ErrorIs(t, result.Err, ErrNotReset)
	assert.Equal(t, core.GameState{}, g.State())

	dst := core.NewScreen(20, 5)
	assert.NotPanics(t, func() { g.Render(dst) })

	// A failed Reset leaves the game unusable in the same way.
	bad := config.DefaultRushConfig()
	bad.World.Height = 0
	g = New(bad)
	require.Error(t, g.Reset(core.DefaultConfig()))
	assert.ErrorIs(t, g.Step(input(core.ActionConfirm)).Err, ErrNotReset)
}

func TestGameResetRejectsInvalidConfig(t *testing.T) {
	cfg := config.DefaultRushConfig()
	cfg.World.Width = 0
	g := New(cfg)
	assert.Error(t, g.Reset(core.DefaultConfig()))
}

func TestGameStepStartsOnJump(t *testing.T) {
	g := newTestGame(t, 42)

	res := g.Step(input())
	assert.False(t, res.State.Started, "waits for input")

	res = g.Step(input(core.ActionJump))
	assert.True(t, res.State.Started)
	assert.False(t, res.State.GameOver)
	assert.Equal(t, 1, g.Simulation().Frame(), "the starting frame is simulated")
}

func TestGameStepPlaysToGameOverAndRestarts(t *testing.T) {
	g := newTestGame(t, 42)
	g.Step(input(core.ActionConfirm))

	var over core.StepResult
	for i := 0; i < 5000; i++ {
		over = g.Step(input())
		require.NoError(t, over.Err)
		if over.State.GameOver {
			break
		}
	}
	require.True(t, over.State.GameOver, "idle runner must crash eventually")
	assert.True(t, over.Has(core.EventGameOver))
	assert.Equal(t, g.Simulation().Score(), over.State.Score)

	// Jump does not restart
	res := g.Step(input(core.ActionJump))
	assert.True(t, res.State.GameOver)

	res = g.Step(input(core.ActionRestart))
	assert.False(t, res.State.GameOver)
	assert.True(t, res.State.Started)
	assert.Equal(t, 1, g.Simulation().Frame())
}

func TestGameStepJumpEvent(t *testing.T) {
	g := newTestGame(t, 1)
	g.Step(input(core.ActionConfirm))
	for !g.Simulation().Actor().Grounded {
		g.Step(input())
	}
	res := g.Step(input(core.ActionJump))
	assert.True(t, res.Has(core.EventJump))
	assert.False(t, res.Has(core.EventGameOver))
}

func TestGameDeterminism(t *testing.T) {
	play := func() (int, int) {
		g := newTestGame(t, 12345)
		g.Step(input(core.ActionConfirm))
		for i := 0; i < 3000; i++ {
			in := input()
			if i%37 == 0 {
				in.Set(core.ActionJump)
			}
			if g.Step(in).State.GameOver {
				break
			}
		}
		return g.State().Score, g.Simulation().Frame()
	}

	s1, f1 := play()
	s2, f2 := play()
	assert.Equal(t, s1, s2)
	assert.Equal(t, f1, f2)
}

func TestRenderTitleAndHUD(t *testing.T) {
	g := newTestGame(t, 3)
	dst := core.NewScreen(80, 24)
	g.Render(dst)

	out := dst.String()
	assert.Contains(t, out, "GEOMETRY RUSH")
	assert.Contains(t, out, "Distance: 0m")
	assert.Contains(t, out, "Speed: 5.0x")

	// Ground occupies the rows from 0.9 of the height down.
	v := newViewport(g.Simulation().Snapshot(), dst)
	groundRow := dst.Row(v.row(405))
	assert.Equal(t, strings.Repeat(string(GrassChar), 80), groundRow)
}

func TestRenderActorAndObstacles(t *testing.T) {
	sim := newTestSim(t, config.DefaultRushConfig(), kindIndex(t, "spike"), kindIndex(t, "watermelon"))
	sim.Start()
	for i := 0; i < 170; i++ {
		require.NoError(t, sim.Update())
	}
	require.Len(t, sim.Obstacles(), 2)

	dst := core.NewScreen(80, 24)
	snap := sim.Snapshot()
	RenderSnapshot(snap, dst)

	// Actor at world x 160..190 maps to columns 16..19.
	row := newViewport(snap, dst).row(380)
	assert.Equal(t, 20, row)
	assert.Equal(t, string(ActorChar), string([]rune(dst.Row(row))[17]))
	assert.Equal(t, core.ColorActor, dst.GetCell(17, row).Color)

	out := dst.String()
	assert.Contains(t, out, string(SpikeChar))
	assert.NotContains(t, out, "GAME OVER")
}

func TestRenderGameOver(t *testing.T) {
	sim := newTestSim(t, config.DefaultRushConfig(), kindIndex(t, "orange"))
	sim.Start()
	for sim.State() == StateRunning {
		require.NoError(t, sim.Update())
	}
	dst := core.NewScreen(80, 24)
	RenderSnapshot(sim.Snapshot(), dst)
	assert.Contains(t, dst.String(), "GAME OVER")
	assert.Contains(t, dst.String(), "Distance: 101m")
}

func TestRenderTinyScreen(t *testing.T) {
	g := newTestGame(t, 3)
	assert.NotPanics(t, func() {
		g.Render(core.NewScreen(0, 0))
		g.Render(core.NewScreen(3, 2))
	})
}
