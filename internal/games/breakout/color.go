package breakout

import (
	"fmt"
	"math/rand/v2"

	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/vovakirdan/brickbreaker/internal/config"
	"github.com/vovakirdan/brickbreaker/internal/core"
)

// Fixed colors, taken from the classic canvas version of the game.
const (
	BallColor        core.Color = "#00a8ff"
	PaddleColorLeft  core.Color = "#0095dd"
	PaddleColorRight core.Color = "#00a8ff"
	OverlayColor     core.Color = "#000000b3" // black at 70% opacity
	TextColor        core.Color = "#ffffff"
)

// Palette hands out brick colors with a uniformly random hue inside a fixed band.
type Palette struct {
	rng        *rand.Rand
	hueMin     float64
	hueMax     float64
	saturation float64
	lightness  float64
}

// NewPalette creates a palette for the configured hue band.
func NewPalette(cfg config.BricksConfig, rng *rand.Rand) *Palette {
	return &Palette{
		rng:        rng,
		hueMin:     cfg.HueMin,
		hueMax:     cfg.HueMax,
		saturation: cfg.Saturation,
		lightness:  cfg.Lightness,
	}
}

// Next returns a new random color in the band.
func (p *Palette) Next() core.Color {
	hue := p.hueMin + p.rng.Float64()*(p.hueMax-p.hueMin)
	return core.Color(colorful.Hsl(hue, p.saturation, p.lightness).Hex())
}

// HueOf returns the hue in degrees of a "#rrggbb" color.
// The 8-bit channels make the result accurate to about one degree.
func HueOf(c core.Color) (float64, error) {
	col, err := colorful.Hex(string(c))
	if err != nil {
		return 0, fmt.Errorf("breakout: bad color %q: %w", c, err)
	}
	h, _, _ := col.Hsl()
	return h, nil
}
