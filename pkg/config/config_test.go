package config

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brackenwood/tracer/pkg/core"
)

func TestDefaultMatchesSpecDefaults(t *testing.T) {
	cfg := Default(100, 50, 10)
	assert.Equal(t, 50, cfg.MaxDepth)
	assert.Equal(t, 0.001, cfg.Bias)
	assert.Equal(t, "black", cfg.Background)
}

func TestLoadParsesYAML(t *testing.T) {
	doc := `
width: 400
height: 200
samples_per_pixel: 100
max_depth: 50
bias: 0.001
background_mode: sky_gradient
camera_params:
  look_from: [13, 2, 3]
  look_at: [0, 0, 0]
  up: [0, 1, 0]
  vfov: 20
  aperture: 0.1
  focus_distance: 10
`
	cfg, err := Load(strings.NewReader(doc))
	require.NoError(t, err)
	assert.Equal(t, 400, cfg.Width)
	assert.Equal(t, 200, cfg.Height)
	assert.Equal(t, core.BackgroundSkyGradient, cfg.BackgroundMode())
	assert.Equal(t, [3]float64{13, 2, 3}, cfg.Camera.LookFrom)
}

func TestSamplingConfigFillsDefaultsForZeroFields(t *testing.T) {
	cfg, err := Load(strings.NewReader("width: 10\nheight: 10\nsamples_per_pixel: 1\n"))
	require.NoError(t, err)

	sc := cfg.SamplingConfig()
	assert.Equal(t, 50, sc.MaxDepth)
	assert.Equal(t, 0.001, sc.Bias)
	assert.Equal(t, core.BackgroundBlack, sc.Background)
}

func TestCameraConfigTranslatesVectors(t *testing.T) {
	cfg := Default(200, 100, 10)
	camCfg := cfg.CameraConfig()
	assert.Equal(t, core.NewVec3(0, 0, 0), camCfg.LookFrom)
	assert.Equal(t, core.NewVec3(0, 0, -1), camCfg.LookAt)
	assert.Equal(t, 2.0, camCfg.AspectRatio)
}

func TestLoadFileMissingReturnsError(t *testing.T) {
	_, err := LoadFile("/nonexistent/path/to/config.yaml")
	require.Error(t, err)
}
