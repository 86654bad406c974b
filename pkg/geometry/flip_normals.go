package geometry

import (
	"github.com/brackenwood/tracer/pkg/core"
	"github.com/brackenwood/tracer/pkg/material"
)

// FlipNormals delegates Hit to an inner shape and negates the resulting
// normal. Two nested FlipNormals cancel out (§8 property 4).
type FlipNormals struct {
	Inner Shape
}

// NewFlipNormals wraps a shape, inverting its normal on every hit.
func NewFlipNormals(inner Shape) *FlipNormals {
	return &FlipNormals{Inner: inner}
}

func (f *FlipNormals) Hit(ray core.Ray, tMin, tMax float64, hit *material.HitRecord) bool {
	if !f.Inner.Hit(ray, tMin, tMax, hit) {
		return false
	}
	hit.Normal = hit.Normal.Negate()
	hit.FrontFace = !hit.FrontFace
	return true
}

func (f *FlipNormals) BoundingBox() core.AABB {
	return f.Inner.BoundingBox()
}
