package material

import (
	"math"
	"testing"

	"github.com/brackenwood/tracer/pkg/core"
	"github.com/brackenwood/tracer/pkg/texture"
)

func TestLambertianEnergyConservation(t *testing.T) {
	l := NewLambertian(texture.NewConstant(core.NewVec3(0.8, 0.3, 0.1)))
	hit := HitRecord{Point: core.NewVec3(0, 0, 0), Normal: core.NewVec3(0, 1, 0), U: 0.5, V: 0.5}
	sampler := core.NewRandSampler(1)

	result, ok := l.Scatter(core.NewRay(core.Vec3{}, core.NewVec3(0, -1, 0)), hit, sampler)
	if !ok {
		t.Fatalf("Lambertian scatter should always succeed")
	}
	if result.Attenuation.MaxComponent() > 1.0001 {
		t.Errorf("attenuation exceeds 1: %v", result.Attenuation)
	}
}

func TestMetalEnergyConservation(t *testing.T) {
	m := NewMetal(core.NewVec3(0.9, 0.9, 0.9), 0)
	hit := HitRecord{Point: core.Vec3{}, Normal: core.NewVec3(0, 1, 0)}
	sampler := core.NewRandSampler(2)

	result, ok := m.Scatter(core.NewRay(core.Vec3{}, core.NewVec3(0, -1, 0)), hit, sampler)
	if !ok {
		t.Fatalf("expected reflection above the surface")
	}
	if result.Attenuation.MaxComponent() > 1.0001 {
		t.Errorf("attenuation exceeds 1: %v", result.Attenuation)
	}
}

func TestMetalFuzzClamped(t *testing.T) {
	m := NewMetal(core.NewVec3(1, 1, 1), 5.0)
	if m.Fuzz != 1.0 {
		t.Errorf("fuzz not clamped: got %v", m.Fuzz)
	}
	m2 := NewMetal(core.NewVec3(1, 1, 1), -3.0)
	if m2.Fuzz != 0.0 {
		t.Errorf("fuzz not clamped: got %v", m2.Fuzz)
	}
}

func TestMetalAbsorbsBelowSurface(t *testing.T) {
	m := NewMetal(core.NewVec3(1, 1, 1), 0)
	hit := HitRecord{Point: core.Vec3{}, Normal: core.NewVec3(0, 1, 0)}
	// Incoming ray grazing such that reflection goes below the surface.
	rayIn := core.NewRay(core.Vec3{}, core.NewVec3(1, 0.001, 0))
	sampler := core.NewRandSampler(3)
	_, ok := m.Scatter(rayIn, hit, sampler)
	if ok {
		t.Errorf("expected absorption for near-grazing reflection below surface")
	}
}

func TestDielectricReciprocity(t *testing.T) {
	// Perpendicular incidence: cosTheta = 1, reflectance should equal
	// ((1-n)/(1+n))^2 exactly (§8 property 8).
	refIdx := 1.5
	got := Reflectance(1.0, refIdx)
	r0 := (1 - refIdx) / (1 + refIdx)
	want := r0 * r0
	if math.Abs(got-want) > 1e-12 {
		t.Errorf("Reflectance(1, %v) = %v, want %v", refIdx, got, want)
	}
}

func TestDiffuseLightDoesNotScatter(t *testing.T) {
	l := NewDiffuseLight(texture.NewConstant(core.NewVec3(4, 4, 4)))
	_, ok := l.Scatter(core.Ray{}, HitRecord{}, core.NewRandSampler(4))
	if ok {
		t.Errorf("DiffuseLight must never scatter")
	}
	emitted := l.Emit(0, 0, core.Vec3{})
	if !emitted.Equals(core.NewVec3(4, 4, 4)) {
		t.Errorf("Emit: got %v", emitted)
	}
}

func TestIsotropicScattersFromHitPoint(t *testing.T) {
	iso := NewIsotropic(texture.NewConstant(core.NewVec3(0.5, 0.5, 0.5)))
	hit := HitRecord{Point: core.NewVec3(1, 2, 3)}
	result, ok := iso.Scatter(core.Ray{}, hit, core.NewRandSampler(5))
	if !ok {
		t.Fatalf("Isotropic scatter should always succeed")
	}
	if !result.Scattered.Origin.Equals(hit.Point) {
		t.Errorf("scattered ray should originate at hit point")
	}
}

func TestNonEmissiveMaterialsEmitZero(t *testing.T) {
	materials := []Material{
		NewLambertian(texture.NewConstant(core.NewVec3(1, 1, 1))),
		NewMetal(core.NewVec3(1, 1, 1), 0),
		NewDielectric(1.5),
		NewIsotropic(texture.NewConstant(core.NewVec3(1, 1, 1))),
	}
	for _, m := range materials {
		if got := m.Emit(0, 0, core.Vec3{}); !got.Equals(core.Vec3{}) {
			t.Errorf("%T.Emit: got %v, want zero", m, got)
		}
	}
}
