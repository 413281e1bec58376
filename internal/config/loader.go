package config

import (
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

const configFile = "rush.yaml"

// Load loads the runner configuration.
// Search order: customPath -> ~/.arcade/configs/rush.yaml -> ./configs/rush.yaml -> embedded default.
// Files are decoded on top of the defaults, so a partial file only overrides the keys it sets.
func Load(customPath string) (RushConfig, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return RushConfig{}, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := Parse(data)
		if err != nil {
			return RushConfig{}, fmt.Errorf("config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath(configFile); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := Parse(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", configFile)); err == nil {
		if cfg, err := Parse(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := Parse(defaultRushYAML)
	if err != nil {
		return DefaultRushConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// Parse decodes YAML over the default configuration and validates the result.
func Parse(data []byte) (RushConfig, error) {
	cfg := DefaultRushConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return RushConfig{}, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return RushConfig{}, err
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arcade", "configs", filename)
}

// Validate checks that the configuration describes a playable world.
func (c RushConfig) Validate() error {
	if err := c.checkFinite(); err != nil {
		return err
	}

	w := c.World
	if w.Width <= 0 || w.Height <= 0 {
		return fmt.Errorf("%w: world size %.0fx%.0f must be positive", ErrInvalidConfig, w.Width, w.Height)
	}
	if w.GroundRatio <= 0 || w.GroundRatio > 1 {
		return fmt.Errorf("%w: ground_ratio %.2f out of (0, 1]", ErrInvalidConfig, w.GroundRatio)
	}
	if w.ActorXRatio < 0 || w.ActorXRatio >= 1 || w.ActorYRatio < 0 || w.ActorYRatio > 1 {
		return fmt.Errorf("%w: actor anchor ratios out of range", ErrInvalidConfig)
	}
	if w.DistanceRate < 0 || w.BackgroundRate < 0 || w.CloudRate < 0 {
		return fmt.Errorf("%w: world rates must not be negative", ErrInvalidConfig)
	}

	a := c.Actor
	if a.Width <= 0 || a.Height <= 0 {
		return fmt.Errorf("%w: actor size must be positive", ErrInvalidConfig)
	}
	if a.Gravity <= 0 {
		return fmt.Errorf("%w: gravity %.2f must be positive", ErrInvalidConfig, a.Gravity)
	}
	if a.JumpImpulse >= 0 {
		return fmt.Errorf("%w: jump_impulse %.2f must be negative (upward)", ErrInvalidConfig, a.JumpImpulse)
	}
	if a.RotationEase < 0 || a.RotationEase > 1 {
		return fmt.Errorf("%w: rotation_ease %.2f out of [0, 1]", ErrInvalidConfig, a.RotationEase)
	}
	if a.TrailLength < 0 {
		return fmt.Errorf("%w: trail_length must not be negative", ErrInvalidConfig)
	}

	o := c.Obstacles
	if o.MinSpawnInterval < 1 {
		return fmt.Errorf("%w: min_spawn_interval %.1f must be at least 1", ErrInvalidConfig, o.MinSpawnInterval)
	}
	if o.SpawnInterval < o.MinSpawnInterval {
		return fmt.Errorf("%w: spawn_interval %.1f below min_spawn_interval %.1f",
			ErrInvalidConfig, o.SpawnInterval, o.MinSpawnInterval)
	}
	if o.SpawnDecrement < 0 {
		return fmt.Errorf("%w: spawn_decrement must not be negative", ErrInvalidConfig)
	}
	if len(o.Kinds) == 0 {
		return fmt.Errorf("%w: obstacle catalog is empty", ErrInvalidConfig)
	}
	for i, k := range o.Kinds {
		if k.Width <= 0 || k.Height <= 0 {
			return fmt.Errorf("%w: obstacle kind %d (%s) size must be positive", ErrInvalidConfig, i, k.Name)
		}
		switch k.Shape {
		case ShapeRect, ShapeTriangle:
		default:
			return fmt.Errorf("%w: obstacle kind %d (%s) has unknown shape %q", ErrInvalidConfig, i, k.Name, k.Shape)
		}
	}

	if c.Particles.BurstCount < 0 {
		return fmt.Errorf("%w: burst_count must not be negative", ErrInvalidConfig)
	}
	if c.Collision.Tolerance < 0 || 2*c.Collision.Tolerance >= a.Width || 2*c.Collision.Tolerance >= a.Height {
		return fmt.Errorf("%w: tolerance %.1f must be non-negative and smaller than half the actor", ErrInvalidConfig, c.Collision.Tolerance)
	}

	d := c.Difficulty
	if d.BaseSpeed <= 0 {
		return fmt.Errorf("%w: base_speed %.2f must be positive", ErrInvalidConfig, d.BaseSpeed)
	}
	if d.SpeedStep < 0 {
		return fmt.Errorf("%w: speed_step must not be negative", ErrInvalidConfig)
	}
	if d.Enabled && d.StepDistance <= 0 {
		return fmt.Errorf("%w: step_distance must be positive when the ramp is enabled", ErrInvalidConfig)
	}
	return nil
}

// checkFinite rejects NaN and infinite values, which slip past ordered comparisons.
func (c RushConfig) checkFinite() error {
	fields := []struct {
		name string
		v    float64
	}{
		{"world.width", c.World.Width},
		{"world.height", c.World.Height},
		{"world.ground_ratio", c.World.GroundRatio},
		{"world.actor_x_ratio", c.World.ActorXRatio},
		{"world.actor_y_ratio", c.World.ActorYRatio},
		{"world.distance_rate", c.World.DistanceRate},
		{"world.background_rate", c.World.BackgroundRate},
		{"world.cloud_rate", c.World.CloudRate},
		{"actor.width", c.Actor.Width},
		{"actor.height", c.Actor.Height},
		{"actor.gravity", c.Actor.Gravity},
		{"actor.jump_impulse", c.Actor.JumpImpulse},
		{"actor.rotation_speed", c.Actor.RotationSpeed},
		{"actor.rotation_ease", c.Actor.RotationEase},
		{"obstacles.spawn_interval", c.Obstacles.SpawnInterval},
		{"obstacles.spawn_decrement", c.Obstacles.SpawnDecrement},
		{"obstacles.min_spawn_interval", c.Obstacles.MinSpawnInterval},
		{"collision.tolerance", c.Collision.Tolerance},
		{"difficulty.base_speed", c.Difficulty.BaseSpeed},
		{"difficulty.speed_step", c.Difficulty.SpeedStep},
		{"difficulty.step_distance", c.Difficulty.StepDistance},
	}
	for _, f := range fields {
		if math.IsNaN(f.v) || math.IsInf(f.v, 0) {
			return fmt.Errorf("%w: %s must be a finite number", ErrInvalidConfig, f.name)
		}
	}
	for i, k := range c.Obstacles.Kinds {
		if math.IsNaN(k.Width) || math.IsInf(k.Width, 0) || math.IsNaN(k.Height) || math.IsInf(k.Height, 0) {
			return fmt.Errorf("%w: obstacle kind %d (%s) size must be a finite number", ErrInvalidConfig, i, k.Name)
		}
	}
	return nil
}

// ParsePreset converts a preset name into a DifficultyPreset.
// The empty string maps to normal.
func ParsePreset(name string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(strings.ToLower(strings.TrimSpace(name))); p {
	case "":
		return DifficultyNormal, nil
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	default:
		return "", fmt.Errorf("unknown difficulty %q (easy, normal, hard, fixed)", name)
	}
}

// ApplyPreset modifies the config based on a difficulty preset.
func ApplyPreset(cfg *RushConfig, preset DifficultyPreset) {
	if IsFixedPreset(preset) {
		cfg.Difficulty.Enabled = false
		cfg.Obstacles.SpawnDecrement = 0
		return
	}
	cfg.Difficulty.Enabled = true

	// Adjust gameplay based on difficulty
	switch preset {
	case DifficultyEasy:
		cfg.Difficulty.BaseSpeed = 4
		cfg.Obstacles.SpawnInterval = 95
		cfg.Obstacles.MinSpawnInterval = 60
		cfg.Collision.Tolerance = 4
	case DifficultyHard:
		cfg.Difficulty.BaseSpeed = 6
		cfg.Obstacles.SpawnInterval = 70
		cfg.Obstacles.MinSpawnInterval = 40
		cfg.Collision.Tolerance = 1
	}
}
