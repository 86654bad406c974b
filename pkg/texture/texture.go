// Package texture maps surface coordinates to reflectance/emission colors.
package texture

import "github.com/brackenwood/tracer/pkg/core"

// Texture maps a (u,v) surface coordinate and world-space point to a color.
// Implementations must be safe for concurrent use by many rendering
// workers; none may mutate internal state during Evaluate.
type Texture interface {
	Evaluate(u, v float64, p core.Vec3) core.Vec3
}

// Constant always returns the same color, regardless of (u,v,p).
type Constant struct {
	Color core.Vec3
}

// NewConstant creates a constant-color texture.
func NewConstant(color core.Vec3) *Constant {
	return &Constant{Color: color}
}

func (c *Constant) Evaluate(u, v float64, p core.Vec3) core.Vec3 {
	return c.Color
}
