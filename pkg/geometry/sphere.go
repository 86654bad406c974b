package geometry

import (
	"math"

	"github.com/brackenwood/tracer/pkg/core"
	"github.com/brackenwood/tracer/pkg/material"
)

// Sphere is a stationary sphere with a center, radius, and material.
type Sphere struct {
	Center   core.Vec3
	Radius   float64
	Material material.Material
}

// NewSphere creates a Sphere.
func NewSphere(center core.Vec3, radius float64, mat material.Material) *Sphere {
	return &Sphere{Center: center, Radius: radius, Material: mat}
}

// sphereUV computes (u,v) from a unit outward normal, per §4.2:
// φ = atan2(n_z, n_x), θ = asin(n_y), u = 1 - (φ+π)/(2π), v = (θ+π/2)/π.
func sphereUV(n core.Vec3) (u, v float64) {
	phi := math.Atan2(n.Z, n.X)
	theta := math.Asin(n.Y)
	u = 1 - (phi+math.Pi)/(2*math.Pi)
	v = (theta + math.Pi/2) / math.Pi
	return u, v
}

// Hit solves |o + t*d - c|^2 = r^2, accepting the first root in
// (tMin, tMax), trying -√Δ before +√Δ.
func (s *Sphere) Hit(ray core.Ray, tMin, tMax float64, hit *material.HitRecord) bool {
	oc := ray.Origin.Subtract(s.Center)
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
	outwardNormal := hit.Point.Subtract(s.Center).Multiply(1.0 / s.Radius)
	hit.SetFaceNormal(ray, outwardNormal)
	hit.U, hit.V = sphereUV(outwardNormal)
	hit.Material = s.Material
	return true
}

// BoundingBox returns the sphere's axis-aligned bounding box.
func (s *Sphere) BoundingBox() core.AABB {
	r := core.NewVec3(s.Radius, s.Radius, s.Radius)
	return core.NewAABB(s.Center.Subtract(r), s.Center.Add(r))
}
