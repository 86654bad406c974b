// Package config loads the YAML render configuration described in §6:
// image dimensions, sampling parameters, and camera placement.
package config

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/brackenwood/tracer/pkg/camera"
	"github.com/brackenwood/tracer/pkg/core"
)

// CameraParams is the YAML-facing form of camera.Config: plain float
// slices instead of core.Vec3, so it round-trips through yaml.v3 without
// custom marshalling.
type CameraParams struct {
	LookFrom      [3]float64 `yaml:"look_from"`
	LookAt        [3]float64 `yaml:"look_at"`
	Up            [3]float64 `yaml:"up"`
	VFov          float64    `yaml:"vfov"`
	Aperture      float64    `yaml:"aperture"`
	FocusDistance float64    `yaml:"focus_distance"`
	Time0         float64    `yaml:"time0"`
	Time1         float64    `yaml:"time1"`
}

// RenderConfig is the root YAML document (§6): image size, sampling
// budget, camera placement, and background mode.
type RenderConfig struct {
	Width           int          `yaml:"width"`
	Height          int          `yaml:"height"`
	SamplesPerPixel int          `yaml:"samples_per_pixel"`
	MaxDepth        int          `yaml:"max_depth"`
	Bias            float64      `yaml:"bias"`
	Background      string       `yaml:"background_mode"` // "black" | "sky_gradient"
	Camera          CameraParams `yaml:"camera_params"`
}

// Default returns the built-in defaults from §6: max_depth=50,
// bias=0.001, a black background, and a camera looking down -z.
func Default(width, height, samplesPerPixel int) RenderConfig {
	return RenderConfig{
		Width:           width,
		Height:          height,
		SamplesPerPixel: samplesPerPixel,
		MaxDepth:        50,
		Bias:            0.001,
		Background:      "black",
		Camera: CameraParams{
			LookFrom:      [3]float64{0, 0, 0},
			LookAt:        [3]float64{0, 0, -1},
			Up:            [3]float64{0, 1, 0},
			VFov:          90,
			Aperture:      0,
			FocusDistance: 0,
		},
	}
}

// Load reads and parses a RenderConfig from a YAML document.
func Load(r io.Reader) (RenderConfig, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return RenderConfig{}, fmt.Errorf("config: read: %w", err)
	}
	var cfg RenderConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return RenderConfig{}, fmt.Errorf("config: parse yaml: %w", err)
	}
	return cfg, nil
}

// LoadFile reads a RenderConfig from a YAML file at path.
func LoadFile(path string) (RenderConfig, error) {
	f, err := os.Open(path)
	if err != nil {
		return RenderConfig{}, fmt.Errorf("config: open %s: %w", path, err)
	}
	defer f.Close()
	return Load(f)
}

// BackgroundMode translates the YAML background_mode string to its
// core.BackgroundMode enum value, defaulting to black on an unknown or
// empty string.
func (c RenderConfig) BackgroundMode() core.BackgroundMode {
	if c.Background == "sky_gradient" {
		return core.BackgroundSkyGradient
	}
	return core.BackgroundBlack
}

// SamplingConfig translates the YAML document to a core.SamplingConfig,
// filling in the §6 defaults for any zero-valued field.
func (c RenderConfig) SamplingConfig() core.SamplingConfig {
	maxDepth := c.MaxDepth
	if maxDepth == 0 {
		maxDepth = 50
	}
	bias := c.Bias
	if bias == 0 {
		bias = 0.001
	}
	return core.SamplingConfig{
		Width:           c.Width,
		Height:          c.Height,
		SamplesPerPixel: c.SamplesPerPixel,
		MaxDepth:        maxDepth,
		Bias:            bias,
		Background:      c.BackgroundMode(),
	}
}

// CameraConfig translates the YAML camera_params block to a
// camera.Config ready for camera.New.
func (c RenderConfig) CameraConfig() camera.Config {
	p := c.Camera
	return camera.Config{
		LookFrom:      core.NewVec3(p.LookFrom[0], p.LookFrom[1], p.LookFrom[2]),
		LookAt:        core.NewVec3(p.LookAt[0], p.LookAt[1], p.LookAt[2]),
		Up:            core.NewVec3(p.Up[0], p.Up[1], p.Up[2]),
		VFov:          p.VFov,
		AspectRatio:   float64(c.Width) / float64(c.Height),
		Aperture:      p.Aperture,
		FocusDistance: p.FocusDistance,
		Time0:         p.Time0,
		Time1:         p.Time1,
	}
}
