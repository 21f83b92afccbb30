// Package config provides YAML-based game configuration loading and
// difficulty management for brickbreaker.
package config

import (
	"errors"
	"fmt"
)

// GameConfig contains all tunable parameters of the game.
type GameConfig struct {
	Arena      ArenaConfig      `yaml:"arena"`
	Ball       BallConfig       `yaml:"ball"`
	Paddle     PaddleConfig     `yaml:"paddle"`
	Bricks     BricksConfig     `yaml:"bricks"`
	Gameplay   GameplayConfig   `yaml:"gameplay"`
	Controls   ControlsConfig   `yaml:"controls"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// ArenaConfig defines the play area in arena units.
type ArenaConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// BallConfig defines the ball size and serve.
type BallConfig struct {
	Radius            float64 `yaml:"radius"`
	StartOffsetBottom float64 `yaml:"start_offset_bottom"` // Distance of the start position from the floor
	VelocityX         float64 `yaml:"velocity_x"`
	VelocityY         float64 `yaml:"velocity_y"`
}

// PaddleConfig defines the paddle.
type PaddleConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Speed  float64 `yaml:"speed"` // Units per tick while a direction is held
}

// BricksConfig defines the brick grid layout and its cosmetic hue band.
type BricksConfig struct {
	Rows       int     `yaml:"rows"`
	Columns    int     `yaml:"columns"`
	Width      float64 `yaml:"width"`
	Height     float64 `yaml:"height"`
	Padding    float64 `yaml:"padding"`
	OffsetTop  float64 `yaml:"offset_top"`
	OffsetLeft float64 `yaml:"offset_left"`
	HueMin     float64 `yaml:"hue_min"` // Degrees, inclusive
	HueMax     float64 `yaml:"hue_max"` // Degrees, exclusive
	Saturation float64 `yaml:"saturation"`
	Lightness  float64 `yaml:"lightness"`
}

// GameplayConfig defines rules that shape difficulty within a session.
type GameplayConfig struct {
	BounceSpeedup float64 `yaml:"bounce_speedup"` // Velocity multiplier on each paddle hit (1 = none)
	MaxBallSpeed  float64 `yaml:"max_ball_speed"` // Per-axis cap, 0 = uncapped
}

// ControlsConfig tunes keyboard handling on terminals that report no key release.
type ControlsConfig struct {
	HoldInitialMS int `yaml:"hold_initial_ms"`
	HoldRepeatMS  int `yaml:"hold_repeat_ms"`
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over time.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Score/ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier float64 `yaml:"speed_multiplier"` // Multiplier added to paddle speed at max difficulty
}

// TotalBricks returns the number of bricks in a full grid.
func (c GameConfig) TotalBricks() int {
	return c.Bricks.Rows * c.Bricks.Columns
}

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

// Validate checks that the configuration describes a playable game.
func (c GameConfig) Validate() error {
	switch {
	case c.Arena.Width <= 0 || c.Arena.Height <= 0:
		return fmt.Errorf("%w: arena must have positive size, got %vx%v", ErrInvalidConfig, c.Arena.Width, c.Arena.Height)
	case c.Ball.Radius <= 0:
		return fmt.Errorf("%w: ball radius must be positive, got %v", ErrInvalidConfig, c.Ball.Radius)
	case c.Paddle.Width <= 0 || c.Paddle.Height <= 0:
		return fmt.Errorf("%w: paddle must have positive size", ErrInvalidConfig)
	case c.Paddle.Width > c.Arena.Width:
		return fmt.Errorf("%w: paddle width %v exceeds arena width %v", ErrInvalidConfig, c.Paddle.Width, c.Arena.Width)
	case c.Bricks.Rows <= 0 || c.Bricks.Columns <= 0:
		return fmt.Errorf("%w: brick grid must have rows and columns", ErrInvalidConfig)
	case c.Bricks.Width <= 0 || c.Bricks.Height <= 0:
		return fmt.Errorf("%w: bricks must have positive size", ErrInvalidConfig)
	case c.Bricks.HueMin > c.Bricks.HueMax:
		return fmt.Errorf("%w: hue_min %v is above hue_max %v", ErrInvalidConfig, c.Bricks.HueMin, c.Bricks.HueMax)
	case c.Bricks.Saturation < 0 || c.Bricks.Saturation > 1:
		return fmt.Errorf("%w: saturation must be within [0, 1], got %v", ErrInvalidConfig, c.Bricks.Saturation)
	case c.Bricks.Lightness < 0 || c.Bricks.Lightness > 1:
		return fmt.Errorf("%w: lightness must be within [0, 1], got %v", ErrInvalidConfig, c.Bricks.Lightness)
	case c.Gameplay.BounceSpeedup < 1:
		return fmt.Errorf("%w: bounce_speedup must be >= 1, got %v", ErrInvalidConfig, c.Gameplay.BounceSpeedup)
	case c.Gameplay.MaxBallSpeed < 0:
		return fmt.Errorf("%w: max_ball_speed must not be negative", ErrInvalidConfig)
	case c.Controls.HoldInitialMS <= 0 || c.Controls.HoldRepeatMS <= 0:
		return fmt.Errorf("%w: hold_initial_ms and hold_repeat_ms must be positive", ErrInvalidConfig)
	}
	return nil
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset converts a CLI value to a preset. The empty string is valid and
// means "use the config as loaded".
func ParsePreset(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(s); p {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	default:
		return "", fmt.Errorf("unknown difficulty %q (want easy, normal, hard or fixed)", s)
	}
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}
