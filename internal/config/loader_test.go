package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmbeddedDefaultMatchesDefault(t *testing.T) {
	cfg, err := Parse(DefaultYAML())
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestDefaultLayout(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())

	assert.Equal(t, 480.0, cfg.Arena.Width)
	assert.Equal(t, 320.0, cfg.Arena.Height)
	assert.Equal(t, 75.0, cfg.Paddle.Width)
	assert.Equal(t, 15, cfg.TotalBricks())
}

func TestLoadCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")
	doc := "paddle:\n  width: 90\nbricks:\n  rows: 4\n"
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 90.0, cfg.Paddle.Width)
	assert.Equal(t, 4, cfg.Bricks.Rows)
	// Unset fields keep defaults
	assert.Equal(t, 5, cfg.Bricks.Columns)
	assert.Equal(t, 10.0, cfg.Ball.Radius)
}

func TestLoadCustomPathErrors(t *testing.T) {
	dir := t.TempDir()

	_, err := Load(filepath.Join(dir, "missing.yaml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)

	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("ball: [unclosed"), 0o600))
	_, err = Load(bad)
	require.Error(t, err)

	invalid := filepath.Join(dir, "invalid.yaml")
	require.NoError(t, os.WriteFile(invalid, []byte("ball:\n  radius: 0\n"), 0o600))
	_, err = Load(invalid)
	require.ErrorIs(t, err, ErrInvalidConfig)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*GameConfig)
	}{
		{"zero arena", func(c *GameConfig) { c.Arena.Width = 0 }},
		{"zero radius", func(c *GameConfig) { c.Ball.Radius = 0 }},
		{"paddle wider than arena", func(c *GameConfig) { c.Paddle.Width = 500 }},
		{"no rows", func(c *GameConfig) { c.Bricks.Rows = 0 }},
		{"inverted hue band", func(c *GameConfig) { c.Bricks.HueMin = 250 }},
		{"slowing bounce", func(c *GameConfig) { c.Gameplay.BounceSpeedup = 0.9 }},
		{"negative cap", func(c *GameConfig) { c.Gameplay.MaxBallSpeed = -1 }},
		{"saturation above one", func(c *GameConfig) { c.Bricks.Saturation = 1.5 }},
		{"negative lightness", func(c *GameConfig) { c.Bricks.Lightness = -0.1 }},
		{"zero hold", func(c *GameConfig) { c.Controls.HoldInitialMS = 0 }},
		{"negative repeat", func(c *GameConfig) { c.Controls.HoldRepeatMS = -5 }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			tc.mutate(&cfg)
			assert.ErrorIs(t, cfg.Validate(), ErrInvalidConfig)
		})
	}
}

func TestApplyPreset(t *testing.T) {
	cfg := Default()
	ApplyPreset(&cfg, DifficultyHard)
	assert.True(t, cfg.Difficulty.Enabled)
	assert.Equal(t, 0.7, cfg.Difficulty.InitialLevel)
	assert.Equal(t, 60.0, cfg.Paddle.Width)
	assert.Greater(t, cfg.Gameplay.BounceSpeedup, 1.0)
	require.NoError(t, cfg.Validate())

	cfg = Default()
	ApplyPreset(&cfg, DifficultyFixed)
	assert.False(t, cfg.Difficulty.Enabled)

	cfg = Default()
	ApplyPreset(&cfg, "")
	assert.Equal(t, Default(), cfg)
}

func TestParsePreset(t *testing.T) {
	for _, s := range []string{"", "easy", "normal", "hard", "fixed"} {
		p, err := ParsePreset(s)
		require.NoError(t, err)
		assert.Equal(t, DifficultyPreset(s), p)
	}

	_, err := ParsePreset("nightmare")
	assert.Error(t, err)
}

func TestMarshalRoundTrip(t *testing.T) {
	cfg := Default()
	cfg.Paddle.Speed = 9

	data, err := Marshal(cfg)
	require.NoError(t, err)
	assert.Contains(t, string(data), "speed: 9")

	back, err := Parse(data)
	require.NoError(t, err)
	assert.Equal(t, cfg, back)
}
