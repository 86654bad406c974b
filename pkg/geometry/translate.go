package geometry

import (
	"github.com/brackenwood/tracer/pkg/core"
	"github.com/brackenwood/tracer/pkg/material"
)

// Translate subtracts Offset from the ray origin before delegating to
// Inner, then adds Offset back to the returned hit point and bounding box.
type Translate struct {
	Inner  Shape
	Offset core.Vec3
}

// NewTranslate wraps a shape, displacing it by offset.
func NewTranslate(inner Shape, offset core.Vec3) *Translate {
	return &Translate{Inner: inner, Offset: offset}
}

func (t *Translate) Hit(ray core.Ray, tMin, tMax float64, hit *material.HitRecord) bool {
	movedRay := core.NewRayAtTime(ray.Origin.Subtract(t.Offset), ray.Direction, ray.Time)
	if !t.Inner.Hit(movedRay, tMin, tMax, hit) {
		return false
	}
	hit.Point = hit.Point.Add(t.Offset)
	return true
}

func (t *Translate) BoundingBox() core.AABB {
	box := t.Inner.BoundingBox()
	return core.NewAABB(box.Min.Add(t.Offset), box.Max.Add(t.Offset))
}
