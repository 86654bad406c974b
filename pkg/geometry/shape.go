// Package geometry implements the primitive (Hitable) family: spheres,
// axis-aligned rectangles, cubes, constant-density media, and the
// structural wrappers (translate, rotate, flip-normals, list, BVH) that
// compose them into a scene tree.
package geometry

import (
	"github.com/brackenwood/tracer/pkg/core"
	"github.com/brackenwood/tracer/pkg/material"
)

// Shape is ray/primitive intersection plus bounding box, the single
// capability every node of the primitive tree implements (§9 Design
// Notes: "interface-dispatch... is an equally valid alternative").
// Hit writes into hit rather than allocating, so the hot recursive path
// through List/BVH never allocates per test.
type Shape interface {
	Hit(ray core.Ray, tMin, tMax float64, hit *material.HitRecord) bool
	BoundingBox() core.AABB
}
