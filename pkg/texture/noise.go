package texture

import (
	"math"

	"github.com/brackenwood/tracer/pkg/core"
)

// Noise returns white scaled by turbulence-modulated sine, per §4.4:
// ½·(1 + sin(scale·p_axis + k·turb(p, 7))).
type Noise struct {
	Perlin *Perlin
	Scale  float64
}

// NewNoise creates a noise texture driven by perlin at the given frequency scale.
func NewNoise(perlin *Perlin, scale float64) *Noise {
	return &Noise{Perlin: perlin, Scale: scale}
}

const turbulenceOctaves = 7
const turbulenceK = 10.0

func (n *Noise) Evaluate(u, v float64, p core.Vec3) core.Vec3 {
	turb := n.Perlin.Turb(p, turbulenceOctaves)
	s := 0.5 * (1 + math.Sin(n.Scale*p.Z+turbulenceK*turb))
	return core.NewVec3(1, 1, 1).Multiply(s)
}
