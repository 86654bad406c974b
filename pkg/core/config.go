package core

// BackgroundMode selects how rays that miss every primitive are shaded.
type BackgroundMode int

const (
	// BackgroundBlack returns (0,0,0) on a miss.
	BackgroundBlack BackgroundMode = iota
	// BackgroundSkyGradient returns a vertical blue-sky gradient on a miss.
	BackgroundSkyGradient
)

// SamplingConfig holds the per-render integrator configuration (§6).
type SamplingConfig struct {
	Width           int
	Height          int
	SamplesPerPixel int
	MaxDepth        int
	Bias            float64 // t_min applied to every primary and scattered ray
	Background      BackgroundMode
}

// DefaultSamplingConfig returns the built-in defaults from §6:
// max_depth=50, bias=0.001.
func DefaultSamplingConfig(width, height, samplesPerPixel int) SamplingConfig {
	return SamplingConfig{
		Width:           width,
		Height:          height,
		SamplesPerPixel: samplesPerPixel,
		MaxDepth:        50,
		Bias:            0.001,
		Background:      BackgroundBlack,
	}
}
