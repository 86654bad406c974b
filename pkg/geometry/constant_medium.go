package geometry

import (
	"math"
	"math/rand"

	"github.com/brackenwood/tracer/pkg/core"
	"github.com/brackenwood/tracer/pkg/material"
	"github.com/brackenwood/tracer/pkg/texture"
)

// ConstantMedium models a homogeneous participating medium filling
// Boundary: rays that enter sample an exponentially-distributed free
// path and scatter isotropically if they would do so before exiting
// (§4.2).
type ConstantMedium struct {
	Boundary Shape
	Density  float64
	PhaseFn  material.Material // always an Isotropic material
}

// NewConstantMedium creates a ConstantMedium filling boundary with the
// given density, scattering with an Isotropic phase function over albedo.
func NewConstantMedium(boundary Shape, density float64, albedo texture.Texture) *ConstantMedium {
	return &ConstantMedium{Boundary: boundary, Density: density, PhaseFn: material.NewIsotropic(albedo)}
}

func (m *ConstantMedium) Hit(ray core.Ray, tMin, tMax float64, hit *material.HitRecord) bool {
	var rec1, rec2 material.HitRecord

	if !m.Boundary.Hit(ray, -core.Inf, core.Inf, &rec1) {
		return false
	}
	if !m.Boundary.Hit(ray, rec1.T+0.0001, core.Inf, &rec2) {
		return false
	}

	if rec1.T < tMin {
		rec1.T = tMin
	}
	if rec2.T > tMax {
		rec2.T = tMax
	}
	if rec1.T >= rec2.T {
		return false
	}
	if rec1.T < 0 {
		rec1.T = 0
	}

	rayLength := ray.Direction.Length()
	distanceInsideBoundary := (rec2.T - rec1.T) * rayLength
	hitDistance := -math.Log(openUnitFloat()) / m.Density

	if hitDistance > distanceInsideBoundary {
		return false
	}

	hit.T = rec1.T + hitDistance/rayLength
	hit.Point = ray.At(hit.T)
	hit.Normal = core.NewVec3(1, 0, 0) // arbitrary; isotropic scattering ignores it
	hit.FrontFace = true
	hit.Material = m.PhaseFn
	return true
}

func (m *ConstantMedium) BoundingBox() core.AABB {
	return m.Boundary.BoundingBox()
}

// openUnitFloat draws from math/rand's global, concurrency-safe source
// (analogous to the original's thread_rng() call inside Hit, since the
// Shape interface carries no per-call sampler), retrying on the measure-
// zero event of an exact 0 to keep the free-path log() finite.
func openUnitFloat() float64 {
	for {
		if u := rand.Float64(); u > 0 {
			return u
		}
	}
}
