package config

import (
	_ "embed"
)

//go:embed defaults/brickbreaker.yaml
var defaultYAML []byte

// Default returns the built-in configuration. It mirrors the embedded YAML
// and is used when that cannot be parsed.
func Default() GameConfig {
	return GameConfig{
		Arena: ArenaConfig{
			Width:  480,
			Height: 320,
		},
		Ball: BallConfig{
			Radius:            10,
			StartOffsetBottom: 30,
			VelocityX:         4,
			VelocityY:         -4,
		},
		Paddle: PaddleConfig{
			Width:  75,
			Height: 10,
			Speed:  7,
		},
		Bricks: BricksConfig{
			Rows:       3,
			Columns:    5,
			Width:      75,
			Height:     20,
			Padding:    10,
			OffsetTop:  30,
			OffsetLeft: 30,
			HueMin:     200,
			HueMax:     240,
			Saturation: 0.7,
			Lightness:  0.5,
		},
		Gameplay: GameplayConfig{
			BounceSpeedup: 1.0,
			MaxBallSpeed:  0,
		},
		Controls: ControlsConfig{
			HoldInitialMS: 300,
			HoldRepeatMS:  120,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 15,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier: 0.5,
			},
		},
	}
}

// DefaultYAML returns the embedded default YAML document.
func DefaultYAML() []byte {
	return defaultYAML
}
