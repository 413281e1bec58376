package rush

import (
	"math"

	"github.com/vovakirdan/geometry-rush/internal/core"
)

// ParticleKind selects how a particle is painted.
type ParticleKind int

const (
	ParticleCircle ParticleKind = iota
	ParticleSquare
)

// Particle is a short-lived cosmetic entity. Gameplay never reads particles.
type Particle struct {
	X, Y     float64
	VX, VY   float64
	Size     float64
	Gravity  float64
	Friction float64
	Life     float64 // frames left
	MaxLife  float64
	Alpha    float64 // Life / MaxLife after each advance
	Kind     ParticleKind
	Color    core.Color
}

// burstPalette holds the colors mixed into a crash burst after its base color.
var burstPalette = []core.Color{"#ff8e8e", "#ffaa6b", "#4ecdc4", "#45b7d1", "#f39c12"}

// puffSpec is the parameter set of one spawner.
type puffSpec struct {
	speedMin, speedMax float64
	sizeMin, sizeMax   float64
	lifeMin, lifeMax   float64
	maxLife            float64
	gravity, friction  float64
}

var (
	burstSpec = puffSpec{speedMin: 3, speedMax: 10, sizeMin: 2, sizeMax: 8, lifeMin: 30, lifeMax: 50, maxLife: 50, gravity: 0.3, friction: 0.98}
	jumpSpec  = puffSpec{sizeMin: 1, sizeMax: 4, lifeMin: 20, lifeMax: 30, maxLife: 30, gravity: 0.1, friction: 0.95}
	trailSpec = puffSpec{sizeMin: 1, sizeMax: 3, lifeMin: 15, lifeMax: 25, maxLife: 25, gravity: 0, friction: 0.99}
)

const (
	jumpPuffCount   = 5
	jumpPuffSpread  = 30  // horizontal jitter, one actor width
	jumpPuffDrop    = 25  // vertical offset toward the actor's feet
	trailPuffGate   = 0.7 // a puff is emitted when a draw exceeds this
	trailPuffSpread = 20
	trailPuffAlpha  = 0.6
)

// ParticlePool owns all live particles.
type ParticlePool struct {
	rng       RandSource
	particles []Particle
}

// NewParticlePool creates an empty pool drawing from rng.
func NewParticlePool(rng RandSource) *ParticlePool {
	return &ParticlePool{
		rng:       rng,
		particles: make([]Particle, 0, 64),
	}
}

func (p *ParticlePool) between(lo, hi float64) float64 {
	return lo + p.rng.Float64()*(hi-lo)
}

// SpawnBurst emits count particles evenly spread around a full circle.
func (p *ParticlePool) SpawnBurst(x, y float64, color core.Color, count int) {
	for i := range count {
		angle := fullTurn * float64(i) / float64(count)
		speed := p.between(burstSpec.speedMin, burstSpec.speedMax)
		size := p.between(burstSpec.sizeMin, burstSpec.sizeMax)

		c := color
		if pick := p.rng.Intn(len(burstPalette) + 1); pick > 0 {
			c = burstPalette[pick-1]
		}
		kind := ParticleSquare
		if p.rng.Float64() > 0.5 {
			kind = ParticleCircle
		}

		p.particles = append(p.particles, Particle{
			X:        x,
			Y:        y,
			VX:       math.Cos(angle) * speed,
			VY:       math.Sin(angle) * speed,
			Size:     size,
			Gravity:  burstSpec.gravity,
			Friction: burstSpec.friction,
			Life:     p.between(burstSpec.lifeMin, burstSpec.lifeMax),
			MaxLife:  burstSpec.maxLife,
			Alpha:    1,
			Kind:     kind,
			Color:    c,
		})
	}
}

// SpawnJumpPuff emits a few particles kicked up from under the actor at (x, y).
func (p *ParticlePool) SpawnJumpPuff(x, y float64) {
	for range jumpPuffCount {
		p.particles = append(p.particles, Particle{
			X:        x + p.rng.Float64()*jumpPuffSpread,
			Y:        y + jumpPuffDrop,
			VX:       (p.rng.Float64() - 0.5) * 4,
			VY:       -p.rng.Float64() * 3,
			Size:     p.between(jumpSpec.sizeMin, jumpSpec.sizeMax),
			Gravity:  jumpSpec.gravity,
			Friction: jumpSpec.friction,
			Life:     p.between(jumpSpec.lifeMin, jumpSpec.lifeMax),
			MaxLife:  jumpSpec.maxLife,
			Alpha:    1,
			Kind:     ParticleCircle,
			Color:    core.ColorGlow,
		})
	}
}

// SpawnTrailPuff occasionally emits one faint particle near (x, y).
// It reports whether a particle was emitted.
func (p *ParticlePool) SpawnTrailPuff(x, y float64) bool {
	if p.rng.Float64() <= trailPuffGate {
		return false
	}
	p.particles = append(p.particles, Particle{
		X:        x + p.rng.Float64()*trailPuffSpread,
		Y:        y + p.rng.Float64()*trailPuffSpread,
		VX:       (p.rng.Float64() - 0.5) * 2,
		VY:       (p.rng.Float64() - 0.5) * 2,
		Size:     p.between(trailSpec.sizeMin, trailSpec.sizeMax),
		Gravity:  trailSpec.gravity,
		Friction: trailSpec.friction,
		Life:     p.between(trailSpec.lifeMin, trailSpec.lifeMax),
		MaxLife:  trailSpec.maxLife,
		Alpha:    trailPuffAlpha,
		Kind:     ParticleCircle,
		Color:    core.ColorGlow,
	})
	return true
}

// Advance integrates every particle one frame and evicts the expired ones.
func (p *ParticlePool) Advance() {
	alive := p.particles[:0]
	for _, pt := range p.particles {
		pt.X += pt.VX
		pt.Y += pt.VY
		pt.VY += pt.Gravity
		pt.VX *= pt.Friction
		pt.VY *= pt.Friction

		pt.Life--
		pt.Alpha = pt.Life / pt.MaxLife
		if pt.Life > 0 {
			alive = append(alive, pt)
		}
	}
	clear(p.particles[len(alive):])
	p.particles = alive
}

// Clear removes every particle.
func (p *ParticlePool) Clear() {
	clear(p.particles)
	p.particles = p.particles[:0]
}

// Particles returns the live particles. The slice is owned by the pool.
func (p *ParticlePool) Particles() []Particle {
	return p.particles
}

// Len returns the number of live particles.
func (p *ParticlePool) Len() int {
	return len(p.particles)
}
