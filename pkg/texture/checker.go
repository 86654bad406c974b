package texture

import (
	"math"

	"github.com/brackenwood/tracer/pkg/core"
)

// Checker alternates between two inner textures by the sign of
// sin(10x)*sin(10y)*sin(10z).
type Checker struct {
	Odd  Texture
	Even Texture
}

// NewChecker creates a checker texture from two sub-textures.
func NewChecker(odd, even Texture) *Checker {
	return &Checker{Odd: odd, Even: even}
}

// NewCheckerColors is a convenience constructor wrapping two flat colors.
func NewCheckerColors(odd, even core.Vec3) *Checker {
	return NewChecker(NewConstant(odd), NewConstant(even))
}

func (c *Checker) Evaluate(u, v float64, p core.Vec3) core.Vec3 {
	sines := math.Sin(10*p.X) * math.Sin(10*p.Y) * math.Sin(10*p.Z)
	if sines < 0 {
		return c.Odd.Evaluate(u, v, p)
	}
	return c.Even.Evaluate(u, v, p)
}
