package material

import (
	"math"

	"github.com/brackenwood/tracer/pkg/core"
)

// Dielectric is a transparent material (e.g. glass, water) that both
// reflects and refracts; attenuation is always pure white.
type Dielectric struct {
	RefractiveIndex float64
}

// NewDielectric creates a Dielectric material with the given index of refraction.
func NewDielectric(refractiveIndex float64) *Dielectric {
	return &Dielectric{RefractiveIndex: refractiveIndex}
}

// refractVector refracts unit vector v about normal n with ratio ni/nt,
// assuming total internal reflection has already been ruled out.
func refractVector(v, n core.Vec3, niOverNt float64) core.Vec3 {
	cosTheta := math.Min(-v.Dot(n), 1.0)
	rOutPerp := v.Add(n.Multiply(cosTheta)).Multiply(niOverNt)
	rOutParallel := n.Multiply(-math.Sqrt(math.Abs(1.0 - rOutPerp.LengthSquared())))
	return rOutPerp.Add(rOutParallel)
}

// Reflectance approximates Fresnel reflectance via Schlick's polynomial:
// r0 = ((1-n)/(1+n))^2, reflectance = r0 + (1-r0)*(1-cosTheta)^5.
func Reflectance(cosTheta, refIdx float64) float64 {
	r0 := (1 - refIdx) / (1 + refIdx)
	r0 = r0 * r0
	return r0 + (1-r0)*math.Pow(1-cosTheta, 5)
}

// Scatter attempts refraction; falls back to reflection on total internal
// reflection or when a Schlick draw selects it (§4.3).
func (d *Dielectric) Scatter(rayIn core.Ray, hit HitRecord, sampler core.Sampler) (ScatterResult, bool) {
	attenuation := core.NewVec3(1, 1, 1)

	var refractionRatio float64
	if hit.FrontFace {
		refractionRatio = 1.0 / d.RefractiveIndex
	} else {
		refractionRatio = d.RefractiveIndex
	}

	unitDirection := rayIn.Direction.Normalize()
	cosTheta := math.Min(-unitDirection.Dot(hit.Normal), 1.0)
	sinTheta := math.Sqrt(1.0 - cosTheta*cosTheta)

	cannotRefract := refractionRatio*sinTheta > 1.0

	var direction core.Vec3
	if cannotRefract || Reflectance(cosTheta, refractionRatio) > sampler.Get1D() {
		direction = reflectVector(unitDirection, hit.Normal)
	} else {
		direction = refractVector(unitDirection, hit.Normal, refractionRatio)
	}

	scattered := core.NewRayAtTime(hit.Point, direction, rayIn.Time)
	return ScatterResult{Scattered: scattered, Attenuation: attenuation}, true
}

func (d *Dielectric) Emit(u, v float64, p core.Vec3) core.Vec3 {
	return core.Vec3{}
}
