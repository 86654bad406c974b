package material

import (
	"github.com/brackenwood/tracer/pkg/core"
	"github.com/brackenwood/tracer/pkg/texture"
)

// DiffuseLight emits its texture's value and never scatters.
type DiffuseLight struct {
	Emission texture.Texture
}

// NewDiffuseLight creates a DiffuseLight material emitting the given texture.
func NewDiffuseLight(emission texture.Texture) *DiffuseLight {
	return &DiffuseLight{Emission: emission}
}

func (d *DiffuseLight) Scatter(rayIn core.Ray, hit HitRecord, sampler core.Sampler) (ScatterResult, bool) {
	return ScatterResult{}, false
}

func (d *DiffuseLight) Emit(u, v float64, p core.Vec3) core.Vec3 {
	return d.Emission.Evaluate(u, v, p)
}
