package geometry

import (
	"github.com/brackenwood/tracer/pkg/core"
	"github.com/brackenwood/tracer/pkg/material"
)

// Plane names the axis pair an AARect spans.
type Plane int

const (
	PlaneXY Plane = iota
	PlaneYZ
	PlaneZX
)

// axes returns (k, a, b): the fixed axis and the two spanned axes, in
// the order (0=X, 1=Y, 2=Z).
func (p Plane) axes() (k, a, b int) {
	switch p {
	case PlaneXY:
		return 2, 0, 1
	case PlaneYZ:
		return 0, 1, 2
	default: // PlaneZX
		return 1, 2, 0
	}
}

// AARect is an axis-aligned rectangle at coordinate k on the third axis,
// spanning [a0,a1]x[b0,b1] on the other two.
type AARect struct {
	Plane          Plane
	A0, A1, B0, B1 float64
	K              float64
	Material       material.Material
}

// NewAARect creates an axis-aligned rectangle.
func NewAARect(plane Plane, a0, a1, b0, b1, k float64, mat material.Material) *AARect {
	return &AARect{Plane: plane, A0: a0, A1: a1, B0: b0, B1: b1, K: k, Material: mat}
}

func (r *AARect) Hit(ray core.Ray, tMin, tMax float64, hit *material.HitRecord) bool {
	k, ka, kb := r.Plane.axes()
	origin := core.Axis(ray.Origin, k)
	dir := core.Axis(ray.Direction, k)

	t := (r.K - origin) / dir
	if t <= tMin || t >= tMax {
		return false
	}

	a := core.Axis(ray.Origin, ka) + t*core.Axis(ray.Direction, ka)
	b := core.Axis(ray.Origin, kb) + t*core.Axis(ray.Direction, kb)
	if a < r.A0 || a > r.A1 || b < r.B0 || b > r.B1 {
		return false
	}

	hit.U = (a - r.A0) / (r.A1 - r.A0)
	hit.V = (b - r.B0) / (r.B1 - r.B0)
	hit.T = t
	hit.Point = ray.At(t)

	var normal core.Vec3
	switch k {
	case 0:
		normal = core.NewVec3(1, 0, 0)
	case 1:
		normal = core.NewVec3(0, 1, 0)
	default:
		normal = core.NewVec3(0, 0, 1)
	}
	// The normal stays +1 on the K axis whichever side is hit, so that
	// FlipNormals can turn a rect's facing (as Cube and the Cornell box do).
	hit.Normal = normal
	hit.FrontFace = ray.Direction.Dot(normal) < 0
	hit.Material = r.Material
	return true
}

// BoundingBox extends ±0.0001 on the K axis to stay non-degenerate.
func (r *AARect) BoundingBox() core.AABB {
	k, ka, kb := r.Plane.axes()
	var min, max [3]float64
	min[k], max[k] = r.K-0.0001, r.K+0.0001
	min[ka], max[ka] = r.A0, r.A1
	min[kb], max[kb] = r.B0, r.B1
	return core.NewAABB(
		core.NewVec3(min[0], min[1], min[2]),
		core.NewVec3(max[0], max[1], max[2]),
	)
}
