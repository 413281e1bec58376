package config

import "math"

// SpeedRamp calculates the scroll speed from the distance travelled.
// Speed grows in whole steps: one step per StepDistance units.
type SpeedRamp struct {
	cfg DifficultyConfig
}

// NewSpeedRamp creates a new speed ramp.
func NewSpeedRamp(cfg DifficultyConfig) *SpeedRamp {
	return &SpeedRamp{cfg: cfg}
}

// IsEnabled returns whether speed progression is active.
func (r *SpeedRamp) IsEnabled() bool {
	return r.cfg.Enabled && r.cfg.StepDistance > 0
}

// Base returns the speed at distance zero.
func (r *SpeedRamp) Base() float64 {
	return r.cfg.BaseSpeed
}

// Level returns the number of completed steps at the given distance.
func (r *SpeedRamp) Level(distance float64) int {
	if !r.IsEnabled() || distance <= 0 {
		return 0
	}
	return int(math.Floor(distance / r.cfg.StepDistance))
}

// Speed returns the scroll speed for the given distance.
func (r *SpeedRamp) Speed(distance float64) float64 {
	return r.cfg.BaseSpeed + float64(r.Level(distance))*r.cfg.SpeedStep
}
