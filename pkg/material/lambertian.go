package material

import (
	"github.com/brackenwood/tracer/pkg/core"
	"github.com/brackenwood/tracer/pkg/texture"
)

// Lambertian is a perfectly diffuse material; scatter always succeeds.
type Lambertian struct {
	Albedo texture.Texture
}

// NewLambertian creates a Lambertian material from an albedo texture.
func NewLambertian(albedo texture.Texture) *Lambertian {
	return &Lambertian{Albedo: albedo}
}

// Scatter targets p + n + ξ with ξ uniform in the unit sphere (§4.3).
func (l *Lambertian) Scatter(rayIn core.Ray, hit HitRecord, sampler core.Sampler) (ScatterResult, bool) {
	direction := hit.Normal.Add(core.RandomInUnitSphere(sampler))
	scattered := core.NewRayAtTime(hit.Point, direction, rayIn.Time)
	attenuation := l.Albedo.Evaluate(hit.U, hit.V, hit.Point)
	return ScatterResult{Scattered: scattered, Attenuation: attenuation}, true
}

func (l *Lambertian) Emit(u, v float64, p core.Vec3) core.Vec3 {
	return core.Vec3{}
}
