package geometry

import (
	"math"
	"testing"

	"github.com/brackenwood/tracer/pkg/core"
	"github.com/brackenwood/tracer/pkg/material"
	"github.com/brackenwood/tracer/pkg/texture"
)

func TestAARectHit(t *testing.T) {
	r := NewAARect(PlaneXY, -1, 1, -1, 1, 0, testLambertian())
	ray := core.NewRay(core.NewVec3(0, 0, -5), core.NewVec3(0, 0, 1))

	var hit material.HitRecord
	if !r.Hit(ray, 0.001, core.Inf, &hit) {
		t.Fatalf("expected hit")
	}
	if math.Abs(hit.T-5) > 1e-9 {
		t.Errorf("T: got %v, want 5", hit.T)
	}
	if math.Abs(hit.U-0.5) > 1e-9 || math.Abs(hit.V-0.5) > 1e-9 {
		t.Errorf("UV: got (%v,%v), want (0.5,0.5)", hit.U, hit.V)
	}
}

func TestAARectMissOutsideBounds(t *testing.T) {
	r := NewAARect(PlaneXY, -1, 1, -1, 1, 0, testLambertian())
	ray := core.NewRay(core.NewVec3(5, 5, -5), core.NewVec3(0, 0, 1))
	var hit material.HitRecord
	if r.Hit(ray, 0.001, core.Inf, &hit) {
		t.Errorf("expected miss outside rect bounds")
	}
}

func TestCubeHitsSixFaces(t *testing.T) {
	cube := NewCube(core.NewVec3(-1, -1, -1), core.NewVec3(1, 1, 1), testLambertian())
	dirs := []core.Vec3{
		core.NewVec3(1, 0, 0), core.NewVec3(-1, 0, 0),
		core.NewVec3(0, 1, 0), core.NewVec3(0, -1, 0),
		core.NewVec3(0, 0, 1), core.NewVec3(0, 0, -1),
	}
	for _, d := range dirs {
		origin := d.Multiply(-5)
		ray := core.NewRay(origin, d)
		var hit material.HitRecord
		if !cube.Hit(ray, 0.001, core.Inf, &hit) {
			t.Errorf("expected hit from direction %v", d)
		}
		if hit.Normal.Dot(d) >= 0 {
			t.Errorf("face normal should oppose incoming ray for direction %v, got normal %v", d, hit.Normal)
		}
	}
}

func TestRotateYPreservesHit(t *testing.T) {
	s := NewSphere(core.NewVec3(2, 0, 0), 0.5, testLambertian())
	rotated := NewRotate(s, AxisY, math.Pi/2)

	// Rotating the sphere 90 degrees about Y moves it from +X to roughly -Z.
	ray := core.NewRay(core.NewVec3(0, 0, -5), core.NewVec3(0, 0, 1))
	var hit material.HitRecord
	if !rotated.Hit(ray, 0.001, core.Inf, &hit) {
		t.Fatalf("expected hit after rotation")
	}
}

func TestConstantMediumScattersInsideBoundary(t *testing.T) {
	boundary := NewSphere(core.NewVec3(0, 0, 0), 5, testLambertian())
	medium := NewConstantMedium(boundary, 1.0, texture.NewConstant(core.NewVec3(0.5, 0.5, 0.5)))

	ray := core.NewRay(core.NewVec3(-10, 0, 0), core.NewVec3(1, 0, 0))
	hits := 0
	for i := 0; i < 20; i++ {
		var hit material.HitRecord
		if medium.Hit(ray, 0.001, core.Inf, &hit) {
			hits++
			if hit.Material == nil {
				t.Errorf("expected a phase-function material on scatter")
			}
		}
	}
	if hits == 0 {
		t.Errorf("expected at least some scatters with density 1.0 through a thick medium")
	}
}
