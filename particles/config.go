package particles

import (
	"errors"
	"image"
)

// Config holds the read-only settings shared by every particle in a field.
// It is validated once when the field is built; particles never mutate it.
type Config struct {
	SizeMin int // smallest particle size in pixels
	SizeMax int // largest particle size in pixels

	AlphaMin float64 // alpha range, clamped into [0, 1]
	AlphaMax float64

	Speed     float64 // base movement speed
	Direction float64 // movement direction in degrees, 0 = straight down
	XVariance float64 // per-axis velocity spread, 0 disables
	YVariance float64

	Drift    float64 // lateral oscillation magnitude, 0 disables
	Rotation float64 // rotation rate in degrees per tick, 0 disables
	Parallax float64 // size-proportional speed boost, 0 disables

	AlphaVariance float64 // per-particle fade step spread
	AlphaSpeed    float64 // alpha animation rate, 0 freezes alpha

	Rotate  bool // spin sprites around their own center
	Twinkle bool // twinkle (fast reset, slow decay) instead of fade

	Colors []string      // candidate fill colors, CSS-style hex
	Shapes []string      // candidate shapes; a leading "image" entry switches to Images
	Images []image.Image // sprite images used with the "image" sentinel

	Composite string // canvas-style compositing mode name
}

// DefaultConfig returns a gently falling snow preset.
func DefaultConfig() Config {
	return Config{
		SizeMin:       3,
		SizeMax:       9,
		AlphaMin:      0.25,
		AlphaMax:      0.95,
		Speed:         3,
		Direction:     0,
		XVariance:     2,
		YVariance:     1,
		Drift:         2,
		Rotation:      1,
		Parallax:      1,
		AlphaVariance: 4,
		AlphaSpeed:    2,
		Rotate:        true,
		Colors:        []string{"#ffffff", "#dbe9ff", "#9fc5ff"},
		Shapes:        []string{ShapeCircle, ShapeStar},
		Composite:     "source-over",
	}
}

// validate normalizes inverted ranges in place and rejects configs the
// sampler could not draw from.
func (c *Config) validate() error {
	if c.SizeMin > c.SizeMax {
		c.SizeMin, c.SizeMax = c.SizeMax, c.SizeMin
	}
	if c.SizeMin < 1 {
		c.SizeMin = 1
	}
	if c.SizeMax < 1 {
		c.SizeMax = 1
	}
	c.AlphaMin = clamp(c.AlphaMin, 0, 1)
	c.AlphaMax = clamp(c.AlphaMax, 0, 1)
	if c.AlphaMin > c.AlphaMax {
		c.AlphaMin, c.AlphaMax = c.AlphaMax, c.AlphaMin
	}
	if len(c.Shapes) == 0 {
		return errors.New("particles: config needs at least one shape")
	}
	if c.Shapes[0] == ShapeImage {
		if len(c.Images) == 0 {
			return errors.New(`particles: "image" shape set without images`)
		}
	} else if len(c.Colors) == 0 {
		return errors.New("particles: config needs at least one color")
	}
	if c.Composite == "" {
		c.Composite = "source-over"
	}
	return nil
}
