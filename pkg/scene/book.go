package scene

import (
	"math/rand"

	"github.com/brackenwood/tracer/pkg/camera"
	"github.com/brackenwood/tracer/pkg/core"
	"github.com/brackenwood/tracer/pkg/geometry"
	"github.com/brackenwood/tracer/pkg/material"
	"github.com/brackenwood/tracer/pkg/texture"
)

// NewBookScene builds the canonical "random scene": a checkered ground
// plane, a field of small spheres (diffuse/metal/glass by weighted
// draw), and three large feature spheres, grounded on
// original_source's random_scene().
func NewBookScene(width, height, samplesPerPixel int, seed int64) (*Scene, error) {
	config := core.DefaultSamplingConfig(width, height, samplesPerPixel)
	config.Background = core.BackgroundSkyGradient

	cam := camera.New(camera.Config{
		LookFrom:      core.NewVec3(13, 2, 3),
		LookAt:        core.NewVec3(0, 0, 0),
		Up:            core.NewVec3(0, 1, 0),
		VFov:          20,
		AspectRatio:   float64(width) / float64(height),
		Aperture:      0.1,
		FocusDistance: 10.0,
		Time0:         0.0,
		Time1:         1.0,
	})

	rng := rand.New(rand.NewSource(seed))
	origin := core.NewVec3(4, 0.2, 0)

	checker := texture.NewCheckerColors(core.NewVec3(0.2, 0.3, 0.1), core.NewVec3(0.9, 0.9, 0.9))
	shapes := []geometry.Shape{
		geometry.NewSphere(core.NewVec3(0, -1000, 0), 1000, material.NewLambertian(checker)),
	}

	for a := -10; a < 10; a++ {
		for b := -10; b < 10; b++ {
			chooseMaterial := rng.Float64()
			center := core.NewVec3(float64(a)+0.9*rng.Float64(), 0.2, float64(b)+0.9*rng.Float64())
			if center.Subtract(origin).Length() <= 0.9 {
				continue
			}

			switch {
			case chooseMaterial < 0.8:
				albedo := core.NewVec3(rng.Float64()*rng.Float64(), rng.Float64()*rng.Float64(), rng.Float64()*rng.Float64())
				center1 := center.Add(core.NewVec3(0, 0.5*rng.Float64(), 0))
				shapes = append(shapes, geometry.NewMovingSphere(center, center1, 0, 1, 0.2, material.NewLambertian(texture.NewConstant(albedo))))
			case chooseMaterial < 0.95:
				albedo := core.NewVec3(0.5*(1+rng.Float64()), 0.5*(1+rng.Float64()), 0.5*(1+rng.Float64()))
				fuzz := 0.5 * rng.Float64()
				shapes = append(shapes, geometry.NewSphere(center, 0.2, material.NewMetal(albedo, fuzz)))
			default:
				shapes = append(shapes, geometry.NewSphere(center, 0.2, material.NewDielectric(1.5)))
			}
		}
	}

	shapes = append(shapes,
		geometry.NewSphere(core.NewVec3(0, 1, 0), 1.0, material.NewDielectric(1.5)),
		geometry.NewSphere(core.NewVec3(-4, 1, 0), 1.0, material.NewLambertian(texture.NewConstant(core.NewVec3(0.4, 0.2, 0.1)))),
		geometry.NewSphere(core.NewVec3(4, 1, 0), 1.0, material.NewMetal(core.NewVec3(0.7, 0.6, 0.5), 0.0)),
	)

	s := &Scene{Camera: cam, Shapes: shapes, Config: config}
	if err := s.Build(); err != nil {
		return nil, err
	}
	return s, nil
}
