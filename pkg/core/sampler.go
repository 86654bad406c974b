package core

import "math/rand"

// Sampler is a thread-local source of independent uniform samples; every
// rendering worker owns one. The exception is geometry.ConstantMedium,
// whose Hit has no Sampler parameter and reads the global math/rand
// source instead, so that source is shared across workers.
type Sampler interface {
	// Get1D returns a uniform float in [0, 1).
	Get1D() float64
	// Get2D returns a pair of independent uniform floats in [0, 1).
	Get2D() (float64, float64)
	// IntN returns a uniform integer in [0, n).
	IntN(n int) int
}

// RandSampler is a Sampler backed by a *rand.Rand. It is not safe for
// concurrent use; each rendering worker constructs its own.
type RandSampler struct {
	rng *rand.Rand
}

// NewRandSampler creates a sampler seeded deterministically from seed.
func NewRandSampler(seed int64) *RandSampler {
	return &RandSampler{rng: rand.New(rand.NewSource(seed))}
}

func (s *RandSampler) Get1D() float64 {
	return s.rng.Float64()
}

func (s *RandSampler) Get2D() (float64, float64) {
	return s.rng.Float64(), s.rng.Float64()
}

func (s *RandSampler) IntN(n int) int {
	return s.rng.Intn(n)
}

// RandomInUnitSphere draws a point uniformly inside the unit ball via
// rejection sampling: draw in [-1,1]^3 until the squared length is < 1.
func RandomInUnitSphere(s Sampler) Vec3 {
	for {
		x, y := s.Get2D()
		z := s.Get1D()
		p := NewVec3(2*x-1, 2*y-1, 2*z-1)
		if p.LengthSquared() < 1 {
			return p
		}
	}
}

// RandomInUnitDisk draws a point uniformly inside the unit disk (z=0) via
// rejection sampling, used for defocus-blur lens sampling.
func RandomInUnitDisk(s Sampler) Vec3 {
	for {
		x, y := s.Get2D()
		p := NewVec3(2*x-1, 2*y-1, 0)
		if p.LengthSquared() < 1 {
			return p
		}
	}
}
