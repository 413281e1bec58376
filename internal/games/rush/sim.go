// Package rush implements Geometry Rush, an endless runner where a cube jumps
// over fruit and spikes scrolling in from the right.
//
// The Simulation is a deterministic frame-stepped core: hosts feed it commands,
// call Update once per frame, and paint read-only snapshots.
package rush

import (
	"errors"
	"fmt"
	"math"

	"github.com/vovakirdan/geometry-rush/internal/config"
	"github.com/vovakirdan/geometry-rush/internal/core"
)

// ErrInvalidBounds reports a world size that is not positive and finite.
var ErrInvalidBounds = errors.New("rush: invalid world bounds")

// State is the phase of a run.
type State int

const (
	StateIdle    State = iota // waiting for Start, nothing moves
	StateRunning              // frames advance
	StateOver                 // frozen after a crash until Reset or Restart
)

// String returns a human-readable name for the state.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateRunning:
		return "running"
	case StateOver:
		return "over"
	default:
		return "unknown"
	}
}

// Simulation owns the world of one run: the actor, the obstacle stream,
// the particle pool and the world scalars.
type Simulation struct {
	cfg    config.RushConfig
	width  float64
	height float64
	ground float64
	startX float64
	startY float64

	ramp      *config.SpeedRamp
	actor     *Actor
	stream    *ObstacleStream
	particles *ParticlePool

	state       State
	frame       int
	speed       float64
	distance    float64
	bgOffset    float64
	cloudOffset float64
	events      []core.Event
}

// NewSimulation creates an idle simulation for a world of the given size.
// obstacleRNG picks obstacle kinds; particleRNG drives cosmetic effects only,
// so effects never change the obstacle sequence.
func NewSimulation(cfg config.RushConfig, width, height float64, obstacleRNG, particleRNG RandSource) (*Simulation, error) {
	if !validExtent(width) || !validExtent(height) {
		return nil, fmt.Errorf("%w: %vx%v", ErrInvalidBounds, width, height)
	}
	if obstacleRNG == nil || particleRNG == nil {
		return nil, errors.New("rush: nil random source")
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("rush: %w", err)
	}
	catalog, err := CatalogFromConfig(cfg.Obstacles.Kinds)
	if err != nil {
		return nil, err
	}

	s := &Simulation{
		cfg:    cfg,
		width:  width,
		height: height,
		ground: height * cfg.World.GroundRatio,
		startX: width * cfg.World.ActorXRatio,
		startY: height * cfg.World.ActorYRatio,
		ramp:   config.NewSpeedRamp(cfg.Difficulty),
	}
	s.actor = NewActor(cfg.Actor, s.startX, s.startY)
	s.stream = NewObstacleStream(catalog, cfg.Obstacles, width, s.ground, obstacleRNG)
	s.particles = NewParticlePool(particleRNG)
	s.Reset()
	return s, nil
}

func validExtent(v float64) bool {
	return v > 0 && !math.IsInf(v, 0) && !math.IsNaN(v)
}

// Reset restores the world to its initial idle state.
func (s *Simulation) Reset() {
	s.actor.Reset(s.startX, s.startY)
	s.stream.Reset()
	s.particles.Clear()
	s.state = StateIdle
	s.frame = 0
	s.speed = s.ramp.Base()
	s.distance = 0
	s.bgOffset = 0
	s.cloudOffset = 0
	s.events = s.events[:0]
}

// Start begins the run. It only has an effect while idle.
func (s *Simulation) Start() bool {
	if s.state != StateIdle {
		return false
	}
	s.state = StateRunning
	return true
}

// Restart resets the world and starts a new run immediately.
func (s *Simulation) Restart() {
	s.Reset()
	s.Start()
}

// Jump forwards a jump to the actor while running.
// Rejected jumps are dropped, never buffered.
func (s *Simulation) Jump() bool {
	if s.state != StateRunning || !s.actor.Jump() {
		return false
	}
	if s.cfg.Particles.JumpPuffs {
		s.particles.SpawnJumpPuff(s.actor.X, s.actor.Y)
	}
	s.emit(core.EventJump)
	return true
}

// Update advances the world by one frame. It does nothing unless running.
// A non-nil error reports a corrupt obstacle catalog; the state is left as is.
func (s *Simulation) Update() error {
	if s.state != StateRunning {
		return nil
	}
	s.frame++

	s.speed = s.ramp.Speed(s.distance)
	s.distance += s.speed * s.cfg.World.DistanceRate
	s.bgOffset += s.speed * s.cfg.World.BackgroundRate
	s.cloudOffset += s.speed * s.cfg.World.CloudRate

	s.actor.Advance(s.ground)
	s.stream.Advance(s.speed)

	if s.cfg.Particles.Trail {
		s.particles.SpawnTrailPuff(s.actor.X, s.actor.Y)
	}
	s.particles.Advance()

	bounds := s.actor.Bounds()
	for _, o := range s.stream.Obstacles() {
		hit, err := Collides(bounds, o, s.cfg.Collision.Tolerance)
		if err != nil {
			return fmt.Errorf("rush: frame %d: %w", s.frame, err)
		}
		if hit {
			s.crash()
			return nil
		}
	}
	return nil
}

// crash freezes the run and bursts particles from the actor's center.
func (s *Simulation) crash() {
	s.state = StateOver
	c := s.actor.Center()
	s.particles.SpawnBurst(c.X, c.Y, core.Color(s.cfg.Actor.Color), s.cfg.Particles.BurstCount)
	s.emit(core.EventGameOver)
}

func (s *Simulation) emit(t core.EventType) {
	s.events = append(s.events, core.Event{Type: t, Distance: s.distance})
}

// Events returns the events queued since the previous call and clears the queue.
func (s *Simulation) Events() []core.Event {
	if len(s.events) == 0 {
		return nil
	}
	out := make([]core.Event, len(s.events))
	copy(out, s.events)
	s.events = s.events[:0]
	return out
}

// State returns the current phase.
func (s *Simulation) State() State {
	return s.state
}

// Distance returns the cumulative distance of the run.
func (s *Simulation) Distance() float64 {
	return s.distance
}

// Speed returns the scroll speed used by the latest frame.
func (s *Simulation) Speed() float64 {
	return s.speed
}

// Score returns the whole distance units travelled.
func (s *Simulation) Score() int {
	return int(math.Floor(s.distance))
}

// Frame returns the number of frames advanced since the last reset.
func (s *Simulation) Frame() int {
	return s.frame
}

// Ground returns the ground level.
func (s *Simulation) Ground() float64 {
	return s.ground
}

// Actor exposes the actor for inspection. Callers must not mutate it.
func (s *Simulation) Actor() *Actor {
	return s.actor
}

// Obstacles returns the active obstacles. The slice is owned by the simulation.
func (s *Simulation) Obstacles() []Obstacle {
	return s.stream.Obstacles()
}
