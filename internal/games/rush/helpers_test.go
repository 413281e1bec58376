package rush

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/geometry-rush/internal/config"
)

// seqRand replays fixed sequences. Intn results are reduced modulo n.
type seqRand struct {
	ints   []int
	floats []float64
	i, f   int
}

func (r *seqRand) Intn(n int) int {
	if len(r.ints) == 0 {
		return 0
	}
	v := r.ints[r.i%len(r.ints)]
	r.i++
	return v % n
}

func (r *seqRand) Float64() float64 {
	if len(r.floats) == 0 {
		return 0
	}
	v := r.floats[r.f%len(r.floats)]
	r.f++
	return v
}

// kindIndex returns the catalog index of the named default kind.
func kindIndex(t *testing.T, name string) int {
	t.Helper()
	for i, k := range config.DefaultRushConfig().Obstacles.Kinds {
		if k.Name == name {
			return i
		}
	}
	t.Fatalf("no kind %q in default catalog", name)
	return -1
}

// lowHurdleConfig has a single obstacle low enough to clear with a late jump.
func lowHurdleConfig() config.RushConfig {
	cfg := config.DefaultRushConfig()
	cfg.Obstacles.Kinds = []config.KindConfig{
		{Name: "hurdle", Width: 40, Height: 15, Color: "#ffffff", Shape: config.ShapeRect},
	}
	return cfg
}

func newTestSim(t *testing.T, cfg config.RushConfig, obstacleKinds ...int) *Simulation {
	t.Helper()
	sim, err := NewSimulation(cfg, 800, 450, &seqRand{ints: obstacleKinds}, &seqRand{floats: []float64{0.5}})
	require.NoError(t, err)
	return sim
}
