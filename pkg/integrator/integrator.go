// Package integrator implements the recursive Monte-Carlo radiance
// estimator that closes the light-transport integral (§4.8).
package integrator

import (
	"math"

	"github.com/brackenwood/tracer/pkg/core"
	"github.com/brackenwood/tracer/pkg/geometry"
	"github.com/brackenwood/tracer/pkg/material"
)

// Integrator evaluates radiance along a ray against a root shape
// (typically a BVH), terminating at MaxDepth scatters.
type Integrator struct {
	Root       geometry.Shape
	MaxDepth   int
	Bias       float64
	Background core.BackgroundMode
}

// New creates an Integrator from a scene root and sampling config.
func New(root geometry.Shape, config core.SamplingConfig) *Integrator {
	return &Integrator{
		Root:       root,
		MaxDepth:   config.MaxDepth,
		Bias:       config.Bias,
		Background: config.Background,
	}
}

// Radiance traces ray starting at depth 0. depth < MaxDepth admits a
// further scatter; at MaxDepth only emission is returned (§4.8, §5
// "Recursion depth").
func (it *Integrator) Radiance(ray core.Ray, sampler core.Sampler) core.Vec3 {
	return it.radiance(ray, 0, sampler)
}

func (it *Integrator) radiance(ray core.Ray, depth int, sampler core.Sampler) core.Vec3 {
	var hit material.HitRecord
	if !it.Root.Hit(ray, it.Bias, core.Inf, &hit) {
		return it.backgroundColor(ray)
	}

	emitted := hit.Material.Emit(hit.U, hit.V, hit.Point)

	if depth >= it.MaxDepth {
		return emitted
	}

	result, scattered := hit.Material.Scatter(ray, hit, sampler)
	if !scattered {
		return emitted
	}

	incoming := it.radiance(result.Scattered, depth+1, sampler)
	return emitted.Add(result.Attenuation.MultiplyVec(incoming))
}

// backgroundColor returns (0,0,0) for BackgroundBlack, or a procedural
// blue-sky gradient (1-t)*(1,1,1) + t*(0.5,0.7,1.0) with t =
// 0.5*(d_y+1) for BackgroundSkyGradient (§4.8).
func (it *Integrator) backgroundColor(ray core.Ray) core.Vec3 {
	if it.Background == core.BackgroundBlack {
		return core.Vec3{}
	}
	unitDir := ray.Direction.Normalize()
	t := 0.5 * (unitDir.Y + 1.0)
	white := core.NewVec3(1, 1, 1)
	blue := core.NewVec3(0.5, 0.7, 1.0)
	return white.Multiply(1 - t).Add(blue.Multiply(t))
}

// clampColor applies the post-accumulation tone curve: divide by N,
// component-wise square root (γ=2), clamp to [0,1] (§4.8).
func clampColor(sum core.Vec3, samples int) core.Vec3 {
	avg := sum.Multiply(1.0 / float64(samples))
	return avg.Sqrt().Clamp(0, 1)
}

// ToByte maps a [0,1] channel value to 8-bit by floor(255.99*c).
func ToByte(c float64) byte {
	return byte(math.Floor(255.99 * c))
}

// ResolvePixel averages sum over samples, applies the tone curve, and
// quantizes to 8-bit RGB (§4.8).
func ResolvePixel(sum core.Vec3, samples int) (r, g, b byte) {
	toned := clampColor(sum, samples)
	return ToByte(toned.X), ToByte(toned.Y), ToByte(toned.Z)
}
