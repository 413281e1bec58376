package config

import (
	_ "embed"
)

//go:embed defaults/rush.yaml
var defaultRushYAML []byte

// DefaultRushConfig returns the default runner configuration.
// Kept in sync with defaults/rush.yaml.
func DefaultRushConfig() RushConfig {
	return RushConfig{
		World: WorldConfig{
			Width:          800,
			Height:         450,
			GroundRatio:    0.9,
			ActorXRatio:    0.2,
			ActorYRatio:    0.8,
			DistanceRate:   0.1,
			BackgroundRate: 0.5,
			CloudRate:      0.2,
		},
		Actor: ActorConfig{
			Width:         30,
			Height:        30,
			Gravity:       0.8,
			JumpImpulse:   -16,
			RotationSpeed: 0.15,
			RotationEase:  0.2,
			TrailLength:   8,
			Color:         "#ff6b6b",
		},
		Obstacles: ObstacleConfig{
			SpawnInterval:    80,
			SpawnDecrement:   0.5,
			MinSpawnInterval: 50,
			Kinds: []KindConfig{
				{Name: "banana", Width: 25, Height: 45, Color: "#fff332", Shape: ShapeRect},
				{Name: "orange", Width: 35, Height: 35, Color: "#ff8c00", Shape: ShapeRect},
				{Name: "apple", Width: 30, Height: 35, Color: "#ff4444", Shape: ShapeRect},
				{Name: "pineapple", Width: 28, Height: 50, Color: "#ffb347", Shape: ShapeRect},
				{Name: "watermelon", Width: 40, Height: 25, Color: "#00ff7f", Shape: ShapeRect},
				{Name: "spike", Width: 30, Height: 30, Color: "#9b59b6", Shape: ShapeTriangle},
			},
		},
		Particles: ParticleConfig{
			Trail:      true,
			JumpPuffs:  true,
			BurstCount: 15,
		},
		Collision: CollisionConfig{
			Tolerance: 2,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			BaseSpeed:    5,
			SpeedStep:    0.5,
			StepDistance: 500,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML.
func GetDefaultYAML() []byte {
	return defaultRushYAML
}
