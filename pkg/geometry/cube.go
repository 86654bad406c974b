package geometry

import (
	"github.com/brackenwood/tracer/pkg/core"
	"github.com/brackenwood/tracer/pkg/material"
)

// Cube is the union of six AARects forming a box from pMin to pMax; the
// three inward-facing rects are wrapped in FlipNormals (§4.2).
type Cube struct {
	list *List
	bbox core.AABB
}

// NewCube creates an axis-aligned box between pMin and pMax.
func NewCube(pMin, pMax core.Vec3, mat material.Material) *Cube {
	sides := []Shape{
		NewAARect(PlaneZX, pMin.Z, pMax.Z, pMin.X, pMax.X, pMax.Y, mat), // top (+y)
		NewFlipNormals(NewAARect(PlaneZX, pMin.Z, pMax.Z, pMin.X, pMax.X, pMin.Y, mat)), // bottom (-y)
		NewAARect(PlaneXY, pMin.X, pMax.X, pMin.Y, pMax.Y, pMax.Z, mat), // front (+z)
		NewFlipNormals(NewAARect(PlaneXY, pMin.X, pMax.X, pMin.Y, pMax.Y, pMin.Z, mat)), // back (-z)
		NewAARect(PlaneYZ, pMin.Y, pMax.Y, pMin.Z, pMax.Z, pMax.X, mat), // right (+x)
		NewFlipNormals(NewAARect(PlaneYZ, pMin.Y, pMax.Y, pMin.Z, pMax.Z, pMin.X, mat)), // left (-x)
	}
	list, err := NewList(sides)
	if err != nil {
		// Six well-formed AARects always have valid bounding boxes; this
		// can only happen if pMin/pMax are themselves malformed.
		panic(err)
	}
	return &Cube{list: list, bbox: core.NewAABB(pMin, pMax)}
}

func (c *Cube) Hit(ray core.Ray, tMin, tMax float64, hit *material.HitRecord) bool {
	return c.list.Hit(ray, tMin, tMax, hit)
}

func (c *Cube) BoundingBox() core.AABB {
	return c.bbox
}
