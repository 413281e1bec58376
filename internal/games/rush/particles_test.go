package rush

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/geometry-rush/internal/core"
)

func TestSpawnBurst(t *testing.T) {
	p := NewParticlePool(&seqRand{ints: []int{0, 3}, floats: []float64{0.5, 0.25, 0.9}})
	p.SpawnBurst(100, 200, core.ColorActor, 15)

	parts := p.Particles()
	require.Len(t, parts, 15)
	for i, pt := range parts {
		assert.Equal(t, 100.0, pt.X)
		assert.Equal(t, 200.0, pt.Y)
		speed := math.Hypot(pt.VX, pt.VY)
		assert.GreaterOrEqual(t, speed, 3.0-1e-9, "particle %d", i)
		assert.LessOrEqual(t, speed, 10.0+1e-9, "particle %d", i)
		assert.GreaterOrEqual(t, pt.Life, 30.0)
		assert.LessOrEqual(t, pt.Life, 50.0)
		assert.Equal(t, 50.0, pt.MaxLife)
		assert.Equal(t, 0.3, pt.Gravity)
		assert.Equal(t, 0.98, pt.Friction)
	}

	// Directions walk around the circle: the first particle heads right.
	assert.Greater(t, parts[0].VX, 0.0)
	assert.InDelta(t, 0.0, parts[0].VY, 1e-9)

	// Palette pick 0 keeps the base color, others mix in the accent palette.
	assert.Equal(t, core.ColorActor, parts[0].Color)
	assert.Equal(t, burstPalette[2], parts[1].Color)
}

func TestParticleAdvance(t *testing.T) {
	p := NewParticlePool(&seqRand{floats: []float64{0}})
	p.SpawnBurst(0, 0, core.ColorActor, 1)
	pt := p.Particles()[0]
	require.Equal(t, 30.0, pt.Life, "zero draws give the shortest life")
	require.Equal(t, 3.0, pt.VX)

	p.Advance()
	got := p.Particles()[0]
	assert.Equal(t, 3.0, got.X)
	assert.InDelta(t, 3*0.98, got.VX, 1e-9)
	assert.InDelta(t, 0.3*0.98, got.VY, 1e-9)
	assert.Equal(t, 29.0, got.Life)
	assert.InDelta(t, 29.0/50.0, got.Alpha, 1e-9)

	for i := 0; i < 28; i++ {
		p.Advance()
	}
	assert.Equal(t, 1, p.Len())
	p.Advance()
	assert.Equal(t, 0, p.Len(), "evicted the frame life reaches zero")
}

func TestSpawnJumpPuff(t *testing.T) {
	p := NewParticlePool(&seqRand{floats: []float64{0.5}})
	p.SpawnJumpPuff(160, 375)

	require.Equal(t, 5, p.Len())
	for _, pt := range p.Particles() {
		assert.Equal(t, 175.0, pt.X)
		assert.Equal(t, 400.0, pt.Y)
		assert.Equal(t, 0.0, pt.VX)
		assert.Equal(t, -1.5, pt.VY)
		assert.Equal(t, 30.0, pt.MaxLife)
		assert.Equal(t, ParticleCircle, pt.Kind)
		assert.Equal(t, core.ColorGlow, pt.Color)
	}
}

func TestSpawnTrailPuffIsGated(t *testing.T) {
	p := NewParticlePool(&seqRand{floats: []float64{0.7}})
	assert.False(t, p.SpawnTrailPuff(0, 0))
	assert.Equal(t, 0, p.Len())

	p = NewParticlePool(&seqRand{floats: []float64{0.71}})
	assert.True(t, p.SpawnTrailPuff(0, 0))
	require.Equal(t, 1, p.Len())
	pt := p.Particles()[0]
	assert.Equal(t, 0.0, pt.Gravity)
	assert.Equal(t, 0.6, pt.Alpha)
	assert.Equal(t, 25.0, pt.MaxLife)
}

func TestParticleClear(t *testing.T) {
	p := NewParticlePool(&seqRand{floats: []float64{0.9}})
	p.SpawnBurst(0, 0, core.ColorActor, 15)
	p.SpawnJumpPuff(0, 0)
	require.Equal(t, 20, p.Len())

	p.Clear()
	assert.Equal(t, 0, p.Len())
	assert.Empty(t, p.Particles())
}
