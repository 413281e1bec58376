package rush

import (
	"math"

	"github.com/vovakirdan/geometry-rush/internal/core"
)

// ActorPose is the paintable state of the actor.
type ActorPose struct {
	Bounds   core.Rect
	Angle    float64
	Grounded bool
	Trail    []core.Vec
}

// Snapshot is a read-only copy of everything a painter needs for one frame.
// It shares no memory with the simulation.
type Snapshot struct {
	State            State
	Frame            int
	Width            float64
	Height           float64
	Ground           float64
	Speed            float64
	Distance         float64
	BackgroundOffset float64
	CloudOffset      float64
	SpawnInterval    float64
	Actor            ActorPose
	Obstacles        []Obstacle
	Particles        []Particle
}

// Score returns the whole distance units travelled.
func (s Snapshot) Score() int {
	return int(math.Floor(s.Distance))
}

// Snapshot copies the current world state.
func (s *Simulation) Snapshot() Snapshot {
	obstacles := make([]Obstacle, len(s.stream.Obstacles()))
	copy(obstacles, s.stream.Obstacles())
	particles := make([]Particle, len(s.particles.Particles()))
	copy(particles, s.particles.Particles())

	return Snapshot{
		State:            s.state,
		Frame:            s.frame,
		Width:            s.width,
		Height:           s.height,
		Ground:           s.ground,
		Speed:            s.speed,
		Distance:         s.distance,
		BackgroundOffset: s.bgOffset,
		CloudOffset:      s.cloudOffset,
		SpawnInterval:    s.stream.SpawnInterval(),
		Actor: ActorPose{
			Bounds:   s.actor.Bounds(),
			Angle:    s.actor.Angle,
			Grounded: s.actor.Grounded,
			Trail:    s.actor.Trail(),
		},
		Obstacles: obstacles,
		Particles: particles,
	}
}
