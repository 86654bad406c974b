package material

import (
	"github.com/brackenwood/tracer/pkg/core"
	"github.com/brackenwood/tracer/pkg/texture"
)

// Isotropic scatters uniformly in all directions, used only inside
// ConstantMedium to model a participating medium.
type Isotropic struct {
	Albedo texture.Texture
}

// NewIsotropic creates an Isotropic material from an albedo texture.
func NewIsotropic(albedo texture.Texture) *Isotropic {
	return &Isotropic{Albedo: albedo}
}

// Scatter leaves the hit point unchanged and picks a direction uniform in
// the unit sphere.
func (i *Isotropic) Scatter(rayIn core.Ray, hit HitRecord, sampler core.Sampler) (ScatterResult, bool) {
	scattered := core.NewRayAtTime(hit.Point, core.RandomInUnitSphere(sampler), rayIn.Time)
	attenuation := i.Albedo.Evaluate(hit.U, hit.V, hit.Point)
	return ScatterResult{Scattered: scattered, Attenuation: attenuation}, true
}

func (i *Isotropic) Emit(u, v float64, p core.Vec3) core.Vec3 {
	return core.Vec3{}
}
