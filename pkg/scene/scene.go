// Package scene provides the programmatic scene-construction API (§6):
// builders for each primitive and material variant, assembled into trees
// rooted at a BVH.
package scene

import (
	"fmt"

	"github.com/brackenwood/tracer/pkg/camera"
	"github.com/brackenwood/tracer/pkg/core"
	"github.com/brackenwood/tracer/pkg/geometry"
	"github.com/brackenwood/tracer/pkg/material"
)

// Scene bundles the camera, the primitive tree, and the sampling
// configuration the renderer needs. It is built once, immutable during
// rendering, and discarded after the image is emitted (§3 Lifecycle).
type Scene struct {
	Camera *camera.Camera
	Shapes []geometry.Shape
	Root   geometry.Shape // BVH root, or the empty-scene sentinel
	Config core.SamplingConfig
}

// Build constructs the BVH root from Shapes. An empty shape list is a
// valid (if degenerate) scene: the root becomes a shape that always
// misses, since §7 only requires BVH construction itself to reject an
// empty list, not the engine as a whole.
func (s *Scene) Build() error {
	if len(s.Shapes) == 0 {
		s.Root = emptyShape{}
		return nil
	}
	bvh, err := geometry.NewBVH(s.Shapes)
	if err != nil {
		return fmt.Errorf("scene: build BVH: %w", err)
	}
	s.Root = bvh
	return nil
}

// emptyShape never hits anything; it bounds an empty scene's primitive
// tree without requiring a dedicated nil-check on every traced ray.
type emptyShape struct{}

func (emptyShape) Hit(ray core.Ray, tMin, tMax float64, hit *material.HitRecord) bool {
	return false
}
func (emptyShape) BoundingBox() core.AABB { return core.AABB{} }
