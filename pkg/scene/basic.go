package scene

import (
	"github.com/brackenwood/tracer/pkg/camera"
	"github.com/brackenwood/tracer/pkg/core"
	"github.com/brackenwood/tracer/pkg/geometry"
	"github.com/brackenwood/tracer/pkg/material"
	"github.com/brackenwood/tracer/pkg/texture"
)

// NewEmptyScene builds the empty world used by end-to-end scenarios S1/S2:
// no primitives, a camera looking down +z, and a caller-chosen background.
func NewEmptyScene(width, height, samplesPerPixel int, background core.BackgroundMode) (*Scene, error) {
	config := core.DefaultSamplingConfig(width, height, samplesPerPixel)
	config.Background = background

	cam := camera.New(camera.Config{
		LookFrom:      core.NewVec3(0, 0, 0),
		LookAt:        core.NewVec3(0, 0, 1),
		Up:            core.NewVec3(0, 1, 0),
		VFov:          40,
		AspectRatio:   float64(width) / float64(height),
		FocusDistance: 1.0,
	})

	s := &Scene{Camera: cam, Shapes: nil, Config: config}
	if err := s.Build(); err != nil {
		return nil, err
	}
	return s, nil
}

// NewSingleSphereScene builds S3: a single Lambertian sphere at (0,0,-1)
// with radius 0.5, camera at the origin looking down -z.
func NewSingleSphereScene(width, height, samplesPerPixel int, background core.BackgroundMode) (*Scene, error) {
	config := core.DefaultSamplingConfig(width, height, samplesPerPixel)
	config.Background = background

	cam := camera.New(camera.Config{
		LookFrom:      core.NewVec3(0, 0, 0),
		LookAt:        core.NewVec3(0, 0, -1),
		Up:            core.NewVec3(0, 1, 0),
		VFov:          90,
		AspectRatio:   float64(width) / float64(height),
		FocusDistance: 1.0,
	})

	sphereMat := material.NewLambertian(texture.NewConstant(core.NewVec3(0.5, 0.5, 0.5)))
	shapes := []geometry.Shape{geometry.NewSphere(core.NewVec3(0, 0, -1), 0.5, sphereMat)}

	s := &Scene{Camera: cam, Shapes: shapes, Config: config}
	if err := s.Build(); err != nil {
		return nil, err
	}
	return s, nil
}
