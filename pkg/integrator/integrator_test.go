package integrator

import (
	"testing"

	"github.com/brackenwood/tracer/pkg/core"
	"github.com/brackenwood/tracer/pkg/geometry"
	"github.com/brackenwood/tracer/pkg/material"
	"github.com/brackenwood/tracer/pkg/texture"
)

// missShape always misses; stands in for an empty scene.
type missShape struct{}

func (missShape) Hit(ray core.Ray, tMin, tMax float64, hit *material.HitRecord) bool {
	return false
}
func (missShape) BoundingBox() core.AABB { return core.AABB{} }

func TestRadianceBlackBackgroundOnMiss(t *testing.T) {
	config := core.DefaultSamplingConfig(1, 1, 1)
	config.Background = core.BackgroundBlack
	it := New(missShape{}, config)

	ray := core.NewRay(core.Vec3{}, core.NewVec3(0, 0, 1))
	got := it.Radiance(ray, core.NewRandSampler(1))
	if !got.Equals(core.Vec3{}) {
		t.Errorf("expected black on miss, got %v", got)
	}
}

func TestRadianceSkyGradientBetweenRedAndBlue(t *testing.T) {
	config := core.DefaultSamplingConfig(1, 1, 1)
	config.Background = core.BackgroundSkyGradient
	it := New(missShape{}, config)

	ray := core.NewRay(core.Vec3{}, core.NewVec3(0, 0, 1))
	got := it.Radiance(ray, core.NewRandSampler(1))
	if !(got.Y > got.X && got.Y < got.Z || got.Y < got.X && got.Y > got.Z) {
		t.Errorf("expected green channel strictly between red and blue, got %v", got)
	}
}

func TestRadianceNonBlackOnLambertianHit(t *testing.T) {
	sphere := geometry.NewSphere(core.NewVec3(0, 0, -1), 0.5,
		material.NewLambertian(texture.NewConstant(core.NewVec3(0.5, 0.5, 0.5))))
	config := core.DefaultSamplingConfig(2, 2, 100)
	// The scene has no emitter, so the sky is its only light source.
	config.Background = core.BackgroundSkyGradient
	it := New(sphere, config)

	ray := core.NewRay(core.Vec3{}, core.NewVec3(0, 0, -1))
	sum := core.Vec3{}
	sampler := core.NewRandSampler(7)
	for i := 0; i < config.SamplesPerPixel; i++ {
		sum = sum.Add(it.Radiance(ray, sampler))
	}
	if sum.Equals(core.Vec3{}) {
		t.Errorf("expected non-black accumulation hitting a sky-lit sphere")
	}
}

func TestResolvePixelQuantizes(t *testing.T) {
	r, g, b := ResolvePixel(core.NewVec3(0, 0, 0), 1)
	if r != 0 || g != 0 || b != 0 {
		t.Errorf("black pixel: got (%d,%d,%d)", r, g, b)
	}

	r, g, b = ResolvePixel(core.NewVec3(1, 1, 1), 1)
	if r != 255 || g != 255 || b != 255 {
		t.Errorf("white pixel: got (%d,%d,%d)", r, g, b)
	}
}
