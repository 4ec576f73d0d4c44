package config

import (
	"errors"
	"fmt"

	"github.com/Faultbox/midgard-math/pkg/math"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid config")

// Validate checks value ranges and enumerations.
func (c *Config) Validate() error {
	if c.Viewport.Width <= 0 || c.Viewport.Height <= 0 {
		return fmt.Errorf("%w: viewport %dx%d", ErrInvalid, c.Viewport.Width, c.Viewport.Height)
	}
	if _, err := math.ParseEulerOrder(c.Math.EulerOrder); err != nil {
		return fmt.Errorf("%w: math.euler_order: %v", ErrInvalid, err)
	}
	switch c.Output.Format {
	case "png", "webp":
	default:
		return fmt.Errorf("%w: output.format %q (want png or webp)", ErrInvalid, c.Output.Format)
	}
	if c.Output.ImageSize <= 0 {
		return fmt.Errorf("%w: output.image_size %d", ErrInvalid, c.Output.ImageSize)
	}
	if c.Output.Supersample < 1 || c.Output.Supersample > 4 {
		return fmt.Errorf("%w: output.supersample %d not in 1..4", ErrInvalid, c.Output.Supersample)
	}
	if c.Culling.ShadowCasters && c.LightDirection().Length() == 0 {
		return fmt.Errorf("%w: culling.light_direction is zero", ErrInvalid)
	}
	return nil
}

// EulerOrder returns the configured order. Call Validate first; an invalid
// name yields the default order.
func (c *Config) EulerOrder() math.EulerOrder {
	o, err := math.ParseEulerOrder(c.Math.EulerOrder)
	if err != nil {
		return math.DefaultEulerOrder
	}
	return o
}

// LightDirection returns the culling light direction as a vector.
func (c *Config) LightDirection() math.Vec3 {
	d := c.Culling.LightDirection
	return math.Vec3{X: d[0], Y: d[1], Z: d[2]}
}

// AspectRatio returns viewport width over height.
func (c *Config) AspectRatio() float64 {
	return float64(c.Viewport.Width) / float64(c.Viewport.Height)
}
