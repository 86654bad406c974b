package scene

import (
	"github.com/brackenwood/tracer/pkg/camera"
	"github.com/brackenwood/tracer/pkg/core"
	"github.com/brackenwood/tracer/pkg/geometry"
	"github.com/brackenwood/tracer/pkg/material"
	"github.com/brackenwood/tracer/pkg/texture"
)

// defaultLookCamera builds the camera shared by the textured-sphere
// scenes: a fixed viewpoint looking at the origin from (13,2,3).
func defaultLookCamera(width, height int) *camera.Camera {
	return camera.New(camera.Config{
		LookFrom:      core.NewVec3(13, 2, 3),
		LookAt:        core.NewVec3(0, 0, 0),
		Up:            core.NewVec3(0, 1, 0),
		VFov:          20,
		AspectRatio:   float64(width) / float64(height),
		FocusDistance: 10.0,
	})
}

// NewTwoSpheresScene stacks two large checker-textured spheres, grounded
// on original_source's two_spheres().
func NewTwoSpheresScene(width, height, samplesPerPixel int) (*Scene, error) {
	config := core.DefaultSamplingConfig(width, height, samplesPerPixel)
	config.Background = core.BackgroundSkyGradient

	checker := texture.NewCheckerColors(core.NewVec3(0.2, 0.3, 0.1), core.NewVec3(0.9, 0.9, 0.9))
	shapes := []geometry.Shape{
		geometry.NewSphere(core.NewVec3(0, -10, 0), 10, material.NewLambertian(checker)),
		geometry.NewSphere(core.NewVec3(0, 10, 0), 10, material.NewLambertian(checker)),
	}

	s := &Scene{Camera: defaultLookCamera(width, height), Shapes: shapes, Config: config}
	if err := s.Build(); err != nil {
		return nil, err
	}
	return s, nil
}

// NewPerlinSpheresScene textures a ground plane and a floating sphere
// with Perlin noise at scale 4, grounded on two_perlin_spheres().
func NewPerlinSpheresScene(width, height, samplesPerPixel int, seed int64) (*Scene, error) {
	config := core.DefaultSamplingConfig(width, height, samplesPerPixel)
	config.Background = core.BackgroundSkyGradient

	noise := texture.NewNoise(texture.NewPerlin(seed), 4.0)
	shapes := []geometry.Shape{
		geometry.NewSphere(core.NewVec3(0, -1000, 0), 1000, material.NewLambertian(noise)),
		geometry.NewSphere(core.NewVec3(0, 2, 0), 2, material.NewLambertian(noise)),
	}

	s := &Scene{Camera: defaultLookCamera(width, height), Shapes: shapes, Config: config}
	if err := s.Build(); err != nil {
		return nil, err
	}
	return s, nil
}

// NewEarthScene wraps a single sphere in an externally-decoded image
// texture, grounded on earth(). Image decoding is an external
// collaborator (§1); the caller supplies already-decoded RGB8 bytes.
func NewEarthScene(width, height, samplesPerPixel int, pixels []byte, nx, ny int) (*Scene, error) {
	config := core.DefaultSamplingConfig(width, height, samplesPerPixel)
	config.Background = core.BackgroundSkyGradient

	earthTexture := texture.NewImage(pixels, nx, ny)
	shapes := []geometry.Shape{
		geometry.NewSphere(core.NewVec3(0, 0, 0), 2, material.NewLambertian(earthTexture)),
	}

	s := &Scene{Camera: defaultLookCamera(width, height), Shapes: shapes, Config: config}
	if err := s.Build(); err != nil {
		return nil, err
	}
	return s, nil
}

// NewSimpleLightScene lights a pair of Perlin-noise spheres with a
// glowing sphere and a rectangular area light, grounded on
// simple_light(); background is forced black so the lights are the only
// source, matching the original.
func NewSimpleLightScene(width, height, samplesPerPixel int, seed int64) (*Scene, error) {
	config := core.DefaultSamplingConfig(width, height, samplesPerPixel)
	config.Background = core.BackgroundBlack

	noise := texture.NewNoise(texture.NewPerlin(seed), 4.0)
	lightTex := texture.NewConstant(core.NewVec3(4, 4, 4))
	shapes := []geometry.Shape{
		geometry.NewSphere(core.NewVec3(0, -1000, 0), 1000, material.NewLambertian(noise)),
		geometry.NewSphere(core.NewVec3(0, 2, 0), 2, material.NewLambertian(noise)),
		geometry.NewSphere(core.NewVec3(0, 7, 0), 2, material.NewDiffuseLight(lightTex)),
		geometry.NewAARect(geometry.PlaneXY, 3, 5, 1, 3, -2, material.NewDiffuseLight(lightTex)),
	}

	cam := camera.New(camera.Config{
		LookFrom:      core.NewVec3(23, 3, 6),
		LookAt:        core.NewVec3(0, 2, 0),
		Up:            core.NewVec3(0, 1, 0),
		VFov:          20,
		AspectRatio:   float64(width) / float64(height),
		FocusDistance: 10.0,
	})

	s := &Scene{Camera: cam, Shapes: shapes, Config: config}
	if err := s.Build(); err != nil {
		return nil, err
	}
	return s, nil
}
