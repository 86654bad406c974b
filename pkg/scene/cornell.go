package scene

import (
	"github.com/brackenwood/tracer/pkg/camera"
	"github.com/brackenwood/tracer/pkg/core"
	"github.com/brackenwood/tracer/pkg/geometry"
	"github.com/brackenwood/tracer/pkg/material"
	"github.com/brackenwood/tracer/pkg/texture"
)

// NewCornellBoxScene builds the reference Cornell box of end-to-end
// scenario S6: five white/red/green walls, a rectangular ceiling light,
// and two translated cubes, grounded on original_source's
// cornell_box() with its exact geometry.
func NewCornellBoxScene(width, height, samplesPerPixel int) (*Scene, error) {
	config := core.DefaultSamplingConfig(width, height, samplesPerPixel)
	config.Background = core.BackgroundBlack

	red := material.NewLambertian(texture.NewConstant(core.NewVec3(0.65, 0.05, 0.05)))
	white := material.NewLambertian(texture.NewConstant(core.NewVec3(0.73, 0.73, 0.73)))
	green := material.NewLambertian(texture.NewConstant(core.NewVec3(0.12, 0.45, 0.15)))
	light := material.NewDiffuseLight(texture.NewConstant(core.NewVec3(15, 15, 15)))

	shapes := []geometry.Shape{
		geometry.NewFlipNormals(geometry.NewAARect(geometry.PlaneYZ, 0, 555, 0, 555, 555, green)),
		geometry.NewAARect(geometry.PlaneYZ, 0, 555, 0, 555, 0, red),
		geometry.NewAARect(geometry.PlaneZX, 227, 332, 213, 343, 554, light),
		geometry.NewFlipNormals(geometry.NewAARect(geometry.PlaneZX, 0, 555, 0, 555, 555, white)),
		geometry.NewAARect(geometry.PlaneZX, 0, 555, 0, 555, 0, white),
		geometry.NewFlipNormals(geometry.NewAARect(geometry.PlaneXY, 0, 555, 0, 555, 555, white)),
		geometry.NewTranslate(
			geometry.NewCube(core.NewVec3(0, 0, 0), core.NewVec3(165, 165, 165), white),
			core.NewVec3(130, 0, 65),
		),
		geometry.NewTranslate(
			geometry.NewCube(core.NewVec3(0, 0, 0), core.NewVec3(165, 330, 165), white),
			core.NewVec3(265, 0, 295),
		),
	}

	cam := camera.New(camera.Config{
		LookFrom:      core.NewVec3(278, 278, -800),
		LookAt:        core.NewVec3(278, 278, 0),
		Up:            core.NewVec3(0, 1, 0),
		VFov:          40,
		AspectRatio:   float64(width) / float64(height),
		FocusDistance: 10.0,
	})

	s := &Scene{Camera: cam, Shapes: shapes, Config: config}
	if err := s.Build(); err != nil {
		return nil, err
	}
	return s, nil
}
