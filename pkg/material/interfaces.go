// Package material implements the scatter/emit contract (§4.3) for the
// path tracer's shading models: Lambertian, Metal, Dielectric,
// DiffuseLight, and Isotropic.
package material

import "github.com/brackenwood/tracer/pkg/core"

// Material exposes scatter(ray_in, hit) -> Option<(ray_out, attenuation)>
// and emit(u, v, p) -> Vector3. Non-emissive materials emit zero.
type Material interface {
	Scatter(rayIn core.Ray, hit HitRecord, sampler core.Sampler) (ScatterResult, bool)
	Emit(u, v float64, p core.Vec3) core.Vec3
}

// ScatterResult is the outcome of a successful scatter: a new ray and the
// attenuation to apply to its returned radiance.
type ScatterResult struct {
	Scattered   core.Ray
	Attenuation core.Vec3
}

// HitRecord is produced per successful intersection. It borrows the
// material for the duration of a single sample trace; it never owns it.
type HitRecord struct {
	T         float64
	U, V      float64
	Point     core.Vec3
	Normal    core.Vec3 // unit normal; its orientation is chosen by the shape (see SetFaceNormal)
	FrontFace bool
	Material  Material
}

// SetFaceNormal orients Normal against the ray direction and records
// whether the hit was on the front (outward-facing) side.
func (h *HitRecord) SetFaceNormal(ray core.Ray, outwardNormal core.Vec3) {
	h.FrontFace = ray.Direction.Dot(outwardNormal) < 0
	if h.FrontFace {
		h.Normal = outwardNormal
	} else {
		h.Normal = outwardNormal.Negate()
	}
}
