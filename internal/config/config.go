// Package config provides YAML-based configuration loading and difficulty
// management for the runner.
package config

// RushConfig contains all tunables of the runner simulation.
type RushConfig struct {
	World      WorldConfig      `yaml:"world"`
	Actor      ActorConfig      `yaml:"actor"`
	Obstacles  ObstacleConfig   `yaml:"obstacles"`
	Particles  ParticleConfig   `yaml:"particles"`
	Collision  CollisionConfig  `yaml:"collision"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// WorldConfig defines the logical world and its derived anchor points.
// Positions are expressed as fractions of the world size.
type WorldConfig struct {
	Width          float64 `yaml:"width"`
	Height         float64 `yaml:"height"`
	GroundRatio    float64 `yaml:"ground_ratio"`    // ground level = height * ratio
	ActorXRatio    float64 `yaml:"actor_x_ratio"`   // actor x = width * ratio
	ActorYRatio    float64 `yaml:"actor_y_ratio"`   // actor spawn y = height * ratio
	DistanceRate   float64 `yaml:"distance_rate"`   // distance gained per unit of speed
	BackgroundRate float64 `yaml:"background_rate"` // parallax factor for the ground pattern
	CloudRate      float64 `yaml:"cloud_rate"`      // parallax factor for clouds
}

// ActorConfig defines the controlled cube.
type ActorConfig struct {
	Width         float64 `yaml:"width"`
	Height        float64 `yaml:"height"`
	Gravity       float64 `yaml:"gravity"`
	JumpImpulse   float64 `yaml:"jump_impulse"`
	RotationSpeed float64 `yaml:"rotation_speed"` // radians per airborne frame
	RotationEase  float64 `yaml:"rotation_ease"`  // fraction of remaining angle per grounded frame
	TrailLength   int     `yaml:"trail_length"`
	Color         string  `yaml:"color"`
}

// ObstacleConfig defines spawn timing and the obstacle catalog.
type ObstacleConfig struct {
	SpawnInterval    float64      `yaml:"spawn_interval"`     // frames between spawns at start
	SpawnDecrement   float64      `yaml:"spawn_decrement"`    // interval reduction per spawn
	MinSpawnInterval float64      `yaml:"min_spawn_interval"` // floor of the interval
	Kinds            []KindConfig `yaml:"kinds"`
}

// KindConfig is one catalog entry.
type KindConfig struct {
	Name   string  `yaml:"name"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Color  string  `yaml:"color"`
	Shape  string  `yaml:"shape"` // "rect" or "triangle"
}

// Shape names accepted in KindConfig.Shape.
const (
	ShapeRect     = "rect"
	ShapeTriangle = "triangle"
)

// ParticleConfig defines cosmetic effect switches.
type ParticleConfig struct {
	Trail      bool `yaml:"trail"`       // spawn trail puffs while running
	JumpPuffs  bool `yaml:"jump_puffs"`  // spawn puffs on accepted jumps
	BurstCount int  `yaml:"burst_count"` // particles in the crash burst
}

// CollisionConfig defines collision forgiveness.
type CollisionConfig struct {
	Tolerance float64 `yaml:"tolerance"` // inward margin applied to the actor's bounds
}

// DifficultyConfig defines the scroll speed ramp.
type DifficultyConfig struct {
	Enabled      bool    `yaml:"enabled"`
	BaseSpeed    float64 `yaml:"base_speed"`
	SpeedStep    float64 `yaml:"speed_step"`    // speed added per completed step
	StepDistance float64 `yaml:"step_distance"` // distance units per step
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}
