package rush

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/geometry-rush/internal/config"
)

const testGround = 405.0

func newTestActor() *Actor {
	return NewActor(config.DefaultRushConfig().Actor, 160, 360)
}

func TestActorGravityAccumulates(t *testing.T) {
	a := newTestActor()
	prev := a.VY
	for i := 0; i < 5; i++ {
		a.Advance(testGround)
		require.False(t, a.Grounded, "frame %d", i+1)
		assert.InDelta(t, prev+0.8, a.VY, 1e-9, "frame %d", i+1)
		prev = a.VY
	}
}

func TestActorLandsExactlyOnGround(t *testing.T) {
	a := newTestActor()
	frames := 0
	for !a.Grounded {
		a.Advance(testGround)
		frames++
		require.Less(t, frames, 100, "actor never landed")
	}

	assert.Equal(t, 6, frames)
	assert.Equal(t, testGround, a.Y+30)
	assert.Equal(t, 0.0, a.VY)

	// Stays put while grounded
	a.Advance(testGround)
	assert.True(t, a.Grounded)
	assert.Equal(t, 375.0, a.Y)
}

func TestActorJump(t *testing.T) {
	a := newTestActor()
	assert.False(t, a.Jump(), "jump while airborne must be ignored")
	assert.Equal(t, 0.0, a.VY)

	for !a.Grounded {
		a.Advance(testGround)
	}
	require.True(t, a.Jump())
	assert.False(t, a.Grounded)
	assert.Equal(t, -16.0, a.VY)

	assert.False(t, a.Jump(), "no double jump")
	assert.Equal(t, -16.0, a.VY)

	a.Advance(testGround)
	assert.InDelta(t, -15.2, a.VY, 1e-9)
	assert.InDelta(t, 375-15.2, a.Y, 1e-9)
}

func TestActorRotation(t *testing.T) {
	a := newTestActor()
	a.Advance(testGround)
	assert.InDelta(t, 0.15, a.Angle, 1e-9, "airborne frames spin")

	// Ease toward the nearest quarter turn once grounded.
	a.Angle = 1.3
	a.Grounded = true
	a.Y = testGround - 30
	a.Advance(testGround)
	want := 1.3 + (math.Pi/2-1.3)*0.2
	assert.InDelta(t, want, a.Angle, 1e-9)

	for i := 0; i < 200; i++ {
		a.Advance(testGround)
	}
	assert.InDelta(t, math.Pi/2, a.Angle, 1e-6, "settles without overshoot")
}

func TestActorAngleWraps(t *testing.T) {
	a := newTestActor()
	for i := 0; i < 300; i++ {
		a.Angle = wrapAngle(a.Angle + 0.15)
		require.GreaterOrEqual(t, a.Angle, 0.0)
		require.Less(t, a.Angle, 2*math.Pi)
	}
	assert.InDelta(t, 0.0, wrapAngle(2*math.Pi), 1e-12)
}

func TestActorAngleStaysInRangeAcrossJumps(t *testing.T) {
	a := newTestActor()
	grounded, jumps, wraps := 0, 0, 0
	prev := a.Angle

	for i := 0; i < 5000; i++ {
		if a.Grounded {
			grounded++
			// Vary the landing pause so easing ends at different angles.
			if grounded > 2+i%5 && a.Jump() {
				jumps++
				grounded = 0
			}
		}
		a.Advance(testGround)

		require.GreaterOrEqual(t, a.Angle, 0.0, "frame %d", i)
		require.Less(t, a.Angle, 2*math.Pi, "frame %d", i)
		if prev-a.Angle > math.Pi {
			wraps++
		}
		prev = a.Angle
	}

	assert.Greater(t, jumps, 50)
	assert.Greater(t, wraps, 0, "rotation should cross a full turn")
}

func TestActorTrailBounded(t *testing.T) {
	a := newTestActor()
	for i := 0; i < 20; i++ {
		a.Advance(testGround)
	}
	trail := a.Trail()
	assert.Len(t, trail, 8)
	// Newest entry is the position before the latest frame.
	assert.Equal(t, 375.0, trail[len(trail)-1].Y)
}

func TestActorReset(t *testing.T) {
	a := newTestActor()
	for i := 0; i < 10; i++ {
		a.Advance(testGround)
	}
	a.Jump()
	a.Advance(testGround)

	a.Reset(160, 360)
	assert.Equal(t, 160.0, a.X)
	assert.Equal(t, 360.0, a.Y)
	assert.Equal(t, 0.0, a.VY)
	assert.Equal(t, 0.0, a.Angle)
	assert.False(t, a.Grounded)
	assert.Empty(t, a.Trail())
}
