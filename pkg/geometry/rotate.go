package geometry

import (
	"math"

	"github.com/brackenwood/tracer/pkg/core"
	"github.com/brackenwood/tracer/pkg/material"
)

// Axis names a single coordinate axis.
type Axis int

const (
	AxisX Axis = iota
	AxisY
	AxisZ
)

// rotateVec rotates v about axis by the angle whose sine/cosine are given.
func rotateVec(v core.Vec3, axis Axis, sinT, cosT float64) core.Vec3 {
	switch axis {
	case AxisX:
		return core.NewVec3(
			v.X,
			cosT*v.Y-sinT*v.Z,
			sinT*v.Y+cosT*v.Z,
		)
	case AxisY:
		return core.NewVec3(
			cosT*v.X+sinT*v.Z,
			v.Y,
			-sinT*v.X+cosT*v.Z,
		)
	default: // AxisZ
		return core.NewVec3(
			cosT*v.X-sinT*v.Y,
			sinT*v.X+cosT*v.Y,
			v.Z,
		)
	}
}

// Rotate rotates Inner by Angle radians about Axis. Construction
// precomputes (sin, cos) and the enclosing world-space bounding box of
// the eight rotated corners of Inner's box, since an un-rotated box
// would be too loose (or too tight) for BVH sorting (§4.2).
type Rotate struct {
	Inner   Shape
	Axis    Axis
	SinT    float64
	CosT    float64
	bbox    core.AABB
	hasBBox bool
}

// NewRotate wraps a shape, rotating it by angle (radians) about axis.
func NewRotate(inner Shape, axis Axis, angle float64) *Rotate {
	r := &Rotate{Inner: inner, Axis: axis, SinT: math.Sin(angle), CosT: math.Cos(angle)}
	r.precomputeBoundingBox()
	return r
}

func (r *Rotate) precomputeBoundingBox() {
	inner := r.Inner.BoundingBox()
	corners := make([]core.Vec3, 0, 8)

	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			for k := 0; k < 2; k++ {
				x := lerpCorner(inner.Min.X, inner.Max.X, i)
				y := lerpCorner(inner.Min.Y, inner.Max.Y, j)
				z := lerpCorner(inner.Min.Z, inner.Max.Z, k)
				corners = append(corners, rotateVec(core.NewVec3(x, y, z), r.Axis, r.SinT, r.CosT))
			}
		}
	}
	r.bbox = core.NewAABBFromPoints(corners...)
	r.hasBBox = true
}

func lerpCorner(lo, hi float64, bit int) float64 {
	if bit == 0 {
		return lo
	}
	return hi
}

func (r *Rotate) Hit(ray core.Ray, tMin, tMax float64, hit *material.HitRecord) bool {
	// Rotate the incoming ray into the inner (unrotated) frame by -angle.
	origin := rotateVec(ray.Origin, r.Axis, -r.SinT, r.CosT)
	direction := rotateVec(ray.Direction, r.Axis, -r.SinT, r.CosT)
	rotatedRay := core.NewRayAtTime(origin, direction, ray.Time)

	if !r.Inner.Hit(rotatedRay, tMin, tMax, hit) {
		return false
	}

	// Rotate the hit point and normal back into world space by +angle.
	hit.Point = rotateVec(hit.Point, r.Axis, r.SinT, r.CosT)
	hit.Normal = rotateVec(hit.Normal, r.Axis, r.SinT, r.CosT)
	return true
}

func (r *Rotate) BoundingBox() core.AABB {
	return r.bbox
}
