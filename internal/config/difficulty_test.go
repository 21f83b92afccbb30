package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDifficultyLevelByScore(t *testing.T) {
	d := NewDifficultyManager(DifficultyConfig{
		Enabled:     true,
		Progression: ProgressionConfig{Type: "score", MaxAt: 10},
		Scaling:     ScalingConfig{SpeedMultiplier: 0.5},
	})

	assert.Equal(t, 0.0, d.Level(0, 0))
	assert.InDelta(t, 0.5, d.Level(5, 0), 1e-9)
	assert.Equal(t, 1.0, d.Level(10, 0))
	assert.Equal(t, 1.0, d.Level(99, 0), "level is capped")

	assert.Equal(t, 7.0, d.Speed(7, 0, 0))
	assert.InDelta(t, 10.5, d.Speed(7, 10, 0), 1e-9)
}

func TestDifficultyLevelByTime(t *testing.T) {
	d := NewDifficultyManager(DifficultyConfig{
		Enabled:      true,
		InitialLevel: 0.5,
		Progression:  ProgressionConfig{Type: "time", MaxAt: 100},
	})

	assert.Equal(t, 0.5, d.Level(1000, 0), "score is ignored for time progression")
	assert.InDelta(t, 0.75, d.Level(0, 50), 1e-9)
}

func TestDifficultyDisabled(t *testing.T) {
	d := NewDifficultyManager(DifficultyConfig{
		Enabled:     false,
		Progression: ProgressionConfig{Type: "score", MaxAt: 10},
		Scaling:     ScalingConfig{SpeedMultiplier: 1},
	})

	assert.False(t, d.IsEnabled())
	assert.Equal(t, 7.0, d.Speed(7, 10, 1000))
}

func TestDifficultyInitialLevelClamped(t *testing.T) {
	d := NewDifficultyManager(DifficultyConfig{
		Enabled:      true,
		InitialLevel: 3,
		Progression:  ProgressionConfig{Type: "score", MaxAt: 10},
	})

	assert.Equal(t, 1.0, d.Level(0, 0))
}
