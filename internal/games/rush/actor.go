package rush

import (
	"math"

	"github.com/vovakirdan/geometry-rush/internal/config"
	"github.com/vovakirdan/geometry-rush/internal/core"
)

const (
	fullTurn    = 2 * math.Pi
	quarterTurn = math.Pi / 2
)

// Actor is the player-controlled cube. Its x never changes during a run;
// the world scrolls past it.
type Actor struct {
	X, Y     float64
	VY       float64 // vertical velocity, positive is down
	Angle    float64 // radians in [0, 2π)
	Grounded bool

	cfg   config.ActorConfig
	trail *core.Ring[core.Vec]
}

// NewActor creates an actor at rest at (x, y).
func NewActor(cfg config.ActorConfig, x, y float64) *Actor {
	a := &Actor{
		cfg:   cfg,
		trail: core.NewRing[core.Vec](cfg.TrailLength),
	}
	a.Reset(x, y)
	return a
}

// Reset puts the actor back at rest at (x, y) and clears its trail.
func (a *Actor) Reset(x, y float64) {
	a.X = x
	a.Y = y
	a.VY = 0
	a.Angle = 0
	a.Grounded = false
	a.trail.Clear()
}

// Advance integrates one frame against the given ground level.
func (a *Actor) Advance(groundLevel float64) {
	a.trail.Push(core.Vec{X: a.X, Y: a.Y})

	// Semi-implicit Euler: velocity first, then position
	a.VY += a.cfg.Gravity
	a.Y += a.VY

	if a.Y+a.cfg.Height >= groundLevel {
		a.Y = groundLevel - a.cfg.Height
		a.VY = 0
		a.Grounded = true
	} else {
		a.Grounded = false
	}

	if a.Grounded {
		// Ease toward the nearest quarter turn
		target := math.Round(a.Angle/quarterTurn) * quarterTurn
		a.Angle += (target - a.Angle) * a.cfg.RotationEase
	} else {
		a.Angle += a.cfg.RotationSpeed
	}
	a.Angle = wrapAngle(a.Angle)
}

// Jump applies the jump impulse when the actor stands on the ground.
// It reports whether the jump was taken; airborne jumps are ignored.
func (a *Actor) Jump() bool {
	if !a.Grounded {
		return false
	}
	a.VY = a.cfg.JumpImpulse
	a.Grounded = false
	return true
}

// Bounds returns the actor's bounding box.
func (a *Actor) Bounds() core.Rect {
	return core.NewRect(a.X, a.Y, a.cfg.Width, a.cfg.Height)
}

// Center returns the center of the actor's bounding box.
func (a *Actor) Center() core.Vec {
	return a.Bounds().Center()
}

// Size returns the actor's width and height.
func (a *Actor) Size() (w, h float64) {
	return a.cfg.Width, a.cfg.Height
}

// Trail returns recent positions, oldest first.
func (a *Actor) Trail() []core.Vec {
	return a.trail.Items()
}

// wrapAngle maps an angle into [0, 2π).
func wrapAngle(angle float64) float64 {
	angle = math.Mod(angle, fullTurn)
	if angle < 0 {
		angle += fullTurn
	}
	return angle
}
