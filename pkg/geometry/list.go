package geometry

import (
	"fmt"

	"github.com/brackenwood/tracer/pkg/core"
	"github.com/brackenwood/tracer/pkg/material"
)

// List is a linear aggregation of shapes, hit-tested by brute-force
// linear scan keeping the closest intersection.
type List struct {
	Shapes []Shape
	bbox   core.AABB
}

// NewList creates a List, computing the surrounding box of every member.
// Returns an error if any member has no valid bounding box (§7: scene
// construction errors are fatal and surfaced at build time).
func NewList(shapes []Shape) (*List, error) {
	if len(shapes) == 0 {
		return &List{Shapes: shapes}, nil
	}
	box := shapes[0].BoundingBox()
	if !box.IsValid() {
		return nil, fmt.Errorf("geometry: list member %d has an invalid bounding box", 0)
	}
	for i := 1; i < len(shapes); i++ {
		b := shapes[i].BoundingBox()
		if !b.IsValid() {
			return nil, fmt.Errorf("geometry: list member %d has an invalid bounding box", i)
		}
		box = box.Union(b)
	}
	return &List{Shapes: shapes, bbox: box}, nil
}

func (l *List) Hit(ray core.Ray, tMin, tMax float64, hit *material.HitRecord) bool {
	var temp material.HitRecord
	hitAnything := false
	closest := tMax

	for _, s := range l.Shapes {
		if s.Hit(ray, tMin, closest, &temp) {
			hitAnything = true
			closest = temp.T
			*hit = temp
		}
	}
	return hitAnything
}

func (l *List) BoundingBox() core.AABB {
	return l.bbox
}
