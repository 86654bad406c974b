package geometry

import (
	"math"
	"math/rand"
	"testing"

	"github.com/brackenwood/tracer/pkg/core"
	"github.com/brackenwood/tracer/pkg/material"
)

func spheresAlongX(n int) []Shape {
	shapes := make([]Shape, n)
	for i := 0; i < n; i++ {
		shapes[i] = NewSphere(core.NewVec3(float64(i)*3, 0, 0), 1.0, testLambertian())
	}
	return shapes
}

func TestBVHEquivalenceToFlatList(t *testing.T) {
	shapes := spheresAlongX(2)
	bvh, err := NewBVH(shapes)
	if err != nil {
		t.Fatalf("NewBVH: %v", err)
	}
	list, err := NewList(shapes)
	if err != nil {
		t.Fatalf("NewList: %v", err)
	}

	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 1000; i++ {
		ray := core.NewRay(
			core.NewVec3(rng.Float64()*10-2, rng.Float64()*4-2, rng.Float64()*4-2),
			core.NewVec3(1, rng.Float64()*0.2-0.1, rng.Float64()*0.2-0.1),
		)

		var hitBVH, hitList material.HitRecord
		gotBVH := bvh.Hit(ray, 0.001, core.Inf, &hitBVH)
		gotList := list.Hit(ray, 0.001, core.Inf, &hitList)

		if gotBVH != gotList {
			t.Fatalf("ray %d: BVH hit=%v, list hit=%v", i, gotBVH, gotList)
		}
		if gotBVH && math.Abs(hitBVH.T-hitList.T) > 1e-9 {
			t.Errorf("ray %d: BVH t=%v, list t=%v", i, hitBVH.T, hitList.T)
		}
	}
}

func TestBVHMissOnEmptyBox(t *testing.T) {
	bvh, err := NewBVH(spheresAlongX(3))
	if err != nil {
		t.Fatalf("NewBVH: %v", err)
	}
	ray := core.NewRay(core.NewVec3(0, 100, 0), core.NewVec3(1, 0, 0))
	var hit material.HitRecord
	if bvh.Hit(ray, 0.001, core.Inf, &hit) {
		t.Errorf("expected miss far from all spheres")
	}
}

func TestNewBVHRejectsEmptyList(t *testing.T) {
	if _, err := NewBVH(nil); err == nil {
		t.Errorf("expected error building BVH from empty list")
	}
}

func TestBVHBoundingBoxContainsChildren(t *testing.T) {
	shapes := spheresAlongX(4)
	bvh, err := NewBVH(shapes)
	if err != nil {
		t.Fatalf("NewBVH: %v", err)
	}
	box := bvh.BoundingBox()
	for _, s := range shapes {
		sb := s.BoundingBox()
		if box.Min.X > sb.Min.X || box.Max.X < sb.Max.X {
			t.Errorf("BVH box %v does not contain shape box %v", box, sb)
		}
	}
}
