package rush

import (
	"fmt"

	"github.com/vovakirdan/geometry-rush/internal/config"
	"github.com/vovakirdan/geometry-rush/internal/core"
)

// RandSource is the randomness the simulation draws from.
// *math/rand.Rand satisfies it.
type RandSource interface {
	Intn(n int) int
	Float64() float64
}

// Kind is one entry of the obstacle catalog.
type Kind struct {
	Name   string
	Width  float64
	Height float64
	Color  core.Color
	Shape  Shape
}

// Obstacle is an active obstacle scrolling toward the actor.
type Obstacle struct {
	Kind Kind
	X    float64 // left edge
	Y    float64 // top edge, ground level minus height
}

// Bounds returns the obstacle's bounding box.
func (o Obstacle) Bounds() core.Rect {
	return core.NewRect(o.X, o.Y, o.Kind.Width, o.Kind.Height)
}

// CatalogFromConfig converts configured kinds into a catalog.
func CatalogFromConfig(kinds []config.KindConfig) ([]Kind, error) {
	if len(kinds) == 0 {
		return nil, fmt.Errorf("rush: empty obstacle catalog")
	}
	catalog := make([]Kind, 0, len(kinds))
	for _, k := range kinds {
		shape, err := ParseShape(k.Shape)
		if err != nil {
			return nil, fmt.Errorf("rush: kind %q: %w", k.Name, err)
		}
		catalog = append(catalog, Kind{
			Name:   k.Name,
			Width:  k.Width,
			Height: k.Height,
			Color:  core.Color(k.Color),
			Shape:  shape,
		})
	}
	return catalog, nil
}

// ObstacleStream spawns obstacles on a shrinking timer and scrolls them left.
type ObstacleStream struct {
	catalog   []Kind
	rng       RandSource
	spawnX    float64 // right edge of the world
	ground    float64
	cfg       config.ObstacleConfig
	interval  float64 // current spawn threshold in frames
	countdown int     // frames since the last spawn
	obstacles []Obstacle
	spawned   int
}

// NewObstacleStream creates a stream spawning at spawnX and resting obstacles on ground.
func NewObstacleStream(catalog []Kind, cfg config.ObstacleConfig, spawnX, ground float64, rng RandSource) *ObstacleStream {
	s := &ObstacleStream{
		catalog:   catalog,
		rng:       rng,
		spawnX:    spawnX,
		ground:    ground,
		cfg:       cfg,
		obstacles: make([]Obstacle, 0, 8),
	}
	s.Reset()
	return s
}

// Reset clears all obstacles and restores the initial spawn timing.
func (s *ObstacleStream) Reset() {
	s.obstacles = s.obstacles[:0]
	s.countdown = 0
	s.interval = s.cfg.SpawnInterval
	s.spawned = 0
}

// Advance ticks the spawn timer and moves every obstacle left by speed.
// A freshly spawned obstacle moves in the same call.
func (s *ObstacleStream) Advance(speed float64) {
	s.countdown++
	if float64(s.countdown) >= s.interval {
		s.spawn()
		s.countdown = 0
		s.interval = max(s.cfg.MinSpawnInterval, s.interval-s.cfg.SpawnDecrement)
	}

	// Move and drop obstacles that left the world
	kept := s.obstacles[:0]
	for _, o := range s.obstacles {
		o.X -= speed
		if o.X+o.Kind.Width >= 0 {
			kept = append(kept, o)
		}
	}
	s.obstacles = kept
}

// spawn appends one uniformly chosen kind at the right edge.
func (s *ObstacleStream) spawn() {
	kind := s.catalog[s.rng.Intn(len(s.catalog))]
	s.obstacles = append(s.obstacles, Obstacle{
		Kind: kind,
		X:    s.spawnX,
		Y:    s.ground - kind.Height,
	})
	s.spawned++
}

// Obstacles returns the active obstacles in spawn order.
// The slice is owned by the stream and valid until the next Advance.
func (s *ObstacleStream) Obstacles() []Obstacle {
	return s.obstacles
}

// SpawnInterval returns the current spawn threshold in frames.
func (s *ObstacleStream) SpawnInterval() float64 {
	return s.interval
}

// Spawned returns how many obstacles were spawned since the last reset.
func (s *ObstacleStream) Spawned() int {
	return s.spawned
}
