package material

import "github.com/brackenwood/tracer/pkg/core"

// Metal is a specular reflector with optional fuzz.
type Metal struct {
	Albedo core.Vec3
	Fuzz   float64 // clamped to [0,1] at construction
}

// NewMetal creates a Metal material, clamping fuzz to [0,1].
func NewMetal(albedo core.Vec3, fuzz float64) *Metal {
	if fuzz > 1.0 {
		fuzz = 1.0
	}
	if fuzz < 0.0 {
		fuzz = 0.0
	}
	return &Metal{Albedo: albedo, Fuzz: fuzz}
}

// reflectVector reflects v about normal n: r = v - 2*dot(v,n)*n.
func reflectVector(v, n core.Vec3) core.Vec3 {
	return v.Subtract(n.Multiply(2 * v.Dot(n)))
}

// Scatter reflects the ray about the normal, perturbed by fuzz*ξ, accepting
// only reflections above the surface (§4.3).
func (m *Metal) Scatter(rayIn core.Ray, hit HitRecord, sampler core.Sampler) (ScatterResult, bool) {
	reflected := reflectVector(rayIn.Direction.Normalize(), hit.Normal)
	if m.Fuzz > 0 {
		reflected = reflected.Add(core.RandomInUnitSphere(sampler).Multiply(m.Fuzz))
	}
	scattered := core.NewRayAtTime(hit.Point, reflected, rayIn.Time)
	if scattered.Direction.Dot(hit.Normal) <= 0 {
		return ScatterResult{}, false
	}
	return ScatterResult{Scattered: scattered, Attenuation: m.Albedo}, true
}

func (m *Metal) Emit(u, v float64, p core.Vec3) core.Vec3 {
	return core.Vec3{}
}
