package geometry

import (
	"math"

	"github.com/brackenwood/tracer/pkg/core"
	"github.com/brackenwood/tracer/pkg/material"
)

// MovingSphere is a sphere whose center interpolates linearly between c0
// (at t0) and c1 (at t1), producing motion blur over the shutter interval.
type MovingSphere struct {
	Center0, Center1 core.Vec3
	Time0, Time1     float64
	Radius           float64
	Material         material.Material
}

// NewMovingSphere creates a MovingSphere.
func NewMovingSphere(c0, c1 core.Vec3, t0, t1, radius float64, mat material.Material) *MovingSphere {
	return &MovingSphere{Center0: c0, Center1: c1, Time0: t0, Time1: t1, Radius: radius, Material: mat}
}

// CenterAt returns center(t) = c0 + ((t-t0)/(t1-t0))*(c1-c0).
func (s *MovingSphere) CenterAt(t float64) core.Vec3 {
	frac := (t - s.Time0) / (s.Time1 - s.Time0)
	return s.Center0.Add(s.Center1.Subtract(s.Center0).Multiply(frac))
}

func (s *MovingSphere) Hit(ray core.Ray, tMin, tMax float64, hit *material.HitRecord) bool {
	center := s.CenterAt(ray.Time)
	oc := ray.Origin.Subtract(center)
	a := ray.Direction.Dot(ray.Direction)
	halfB := oc.Dot(ray.Direction)
	c := oc.Dot(oc) - s.Radius*s.Radius
	discriminant := halfB*halfB - a*c
	if discriminant < 0 {
		return false
	}
	sqrtD := math.Sqrt(discriminant)

	root := (-halfB - sqrtD) / a
	if root <= tMin || root >= tMax {
		root = (-halfB + sqrtD) / a
		if root <= tMin || root >= tMax {
			return false
		}
	}

	hit.T = root
	hit.Point = ray.At(root)
	outwardNormal := hit.Point.Subtract(center).Multiply(1.0 / s.Radius)
	hit.SetFaceNormal(ray, outwardNormal)
	hit.U, hit.V = sphereUV(outwardNormal)
	hit.Material = s.Material
	return true
}

// BoundingBox is the surrounding box of the sphere's bounding boxes at
// t0 and t1. The Open Question in the source material (using center(t0)
// twice) is resolved here per the spec's correction: center(t1) is used
// for the second box.
func (s *MovingSphere) BoundingBox() core.AABB {
	r := core.NewVec3(s.Radius, s.Radius, s.Radius)
	box0 := core.NewAABB(s.CenterAt(s.Time0).Subtract(r), s.CenterAt(s.Time0).Add(r))
	box1 := core.NewAABB(s.CenterAt(s.Time1).Subtract(r), s.CenterAt(s.Time1).Add(r))
	return box0.Union(box1)
}
