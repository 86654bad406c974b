package geometry

import (
	"fmt"
	"sort"

	"github.com/brackenwood/tracer/pkg/core"
	"github.com/brackenwood/tracer/pkg/material"
)

// BVH is a binary bounding-volume hierarchy over a set of shapes,
// accelerating ray/scene intersection from O(N) to O(log N) expected
// (§4.6). A BVH node is itself a Shape, so it composes uniformly with
// the rest of the primitive tree.
type BVH struct {
	bbox  core.AABB
	left  Shape
	right Shape
	leaf  Shape // non-nil only for leaves
}

// NewBVH builds a BVH over shapes. Construction fails fatally if any
// shape lacks a valid bounding box, or if shapes is empty (§7).
func NewBVH(shapes []Shape) (*BVH, error) {
	if len(shapes) == 0 {
		return nil, fmt.Errorf("geometry: cannot build a BVH from an empty shape list")
	}
	working := make([]Shape, len(shapes))
	copy(working, shapes)
	return buildBVH(working)
}

func buildBVH(shapes []Shape) (*BVH, error) {
	for _, s := range shapes {
		if !s.BoundingBox().IsValid() {
			return nil, fmt.Errorf("geometry: shape %T has an invalid bounding box", s)
		}
	}

	if len(shapes) == 1 {
		return &BVH{bbox: shapes[0].BoundingBox(), leaf: shapes[0]}, nil
	}

	axis := widestCentroidAxis(shapes)
	sort.Slice(shapes, func(i, j int) bool {
		return centroidKey(shapes[i], axis) < centroidKey(shapes[j], axis)
	})

	mid := len(shapes) / 2
	left, err := buildBVH(shapes[:mid])
	if err != nil {
		return nil, err
	}
	right, err := buildBVH(shapes[mid:])
	if err != nil {
		return nil, err
	}

	return &BVH{bbox: left.BoundingBox().Union(right.BoundingBox()), left: left, right: right}, nil
}

// widestCentroidAxis picks the axis of largest centroid extent across
// shapes, tie-breaking toward the lower index (§4.6 step 1).
func widestCentroidAxis(shapes []Shape) int {
	min := core.NewVec3(core.Inf, core.Inf, core.Inf)
	max := core.NewVec3(-core.Inf, -core.Inf, -core.Inf)
	for _, s := range shapes {
		c := s.BoundingBox().Center()
		min = min.Min(c)
		max = max.Max(c)
	}
	extent := max.Subtract(min)
	if extent.X >= extent.Y && extent.X >= extent.Z {
		return 0
	}
	if extent.Y >= extent.Z {
		return 1
	}
	return 2
}

// centroidKey is min+max of a shape's box along axis: twice the centroid,
// which sorts in the same order as the centroid itself.
func centroidKey(s Shape, axis int) float64 {
	box := s.BoundingBox()
	return core.Axis(box.Min, axis) + core.Axis(box.Max, axis)
}

// Hit returns a miss immediately if the node's box is missed. Leaves
// delegate to their primitive. Interior nodes probe the left child with
// tMax, tighten tMax to the left hit's t if any, then probe the right
// child; the closer of the two wins, with "prefer left" on an exact tie
// (§9 Open Question b).
func (b *BVH) Hit(ray core.Ray, tMin, tMax float64, hit *material.HitRecord) bool {
	if !b.bbox.Hit(ray, tMin, tMax) {
		return false
	}
	if b.leaf != nil {
		return b.leaf.Hit(ray, tMin, tMax, hit)
	}

	var leftRec material.HitRecord
	hitLeft := b.left.Hit(ray, tMin, tMax, &leftRec)

	rightTMax := tMax
	if hitLeft {
		rightTMax = leftRec.T
	}
	var rightRec material.HitRecord
	hitRight := b.right.Hit(ray, tMin, rightTMax, &rightRec)

	switch {
	case hitRight:
		*hit = rightRec
		return true
	case hitLeft:
		*hit = leftRec
		return true
	default:
		return false
	}
}

func (b *BVH) BoundingBox() core.AABB {
	return b.bbox
}
