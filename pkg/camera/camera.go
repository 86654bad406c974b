// Package camera generates primary rays with depth-of-field and motion blur.
package camera

import (
	"math"

	"github.com/brackenwood/tracer/pkg/core"
)

// Config holds the construction parameters for a Camera (§4.7).
type Config struct {
	LookFrom      core.Vec3
	LookAt        core.Vec3
	Up            core.Vec3
	VFov          float64 // vertical field of view, in degrees
	AspectRatio   float64
	Aperture      float64
	FocusDistance float64 // if zero, computed as |LookFrom - LookAt|
	Time0, Time1  float64 // shutter interval
}

// Camera is an immutable record holding origin, lower-left corner,
// horizontal/vertical spans, basis (u,v,w), lens radius, and shutter.
type Camera struct {
	Origin          core.Vec3
	LowerLeftCorner core.Vec3
	Horizontal      core.Vec3
	Vertical        core.Vec3
	U, V, W         core.Vec3
	LensRadius      float64
	Time0, Time1    float64
}

// New constructs a Camera from cfg.
func New(cfg Config) *Camera {
	focusDistance := cfg.FocusDistance
	if focusDistance == 0 {
		focusDistance = cfg.LookFrom.Subtract(cfg.LookAt).Length()
	}

	theta := cfg.VFov * math.Pi / 180
	halfHeight := math.Tan(theta / 2)
	halfWidth := cfg.AspectRatio * halfHeight

	w := cfg.LookFrom.Subtract(cfg.LookAt).Normalize()
	u := cfg.Up.Cross(w).Normalize()
	v := w.Cross(u)

	origin := cfg.LookFrom
	lowerLeft := origin.
		Subtract(u.Multiply(halfWidth * focusDistance)).
		Subtract(v.Multiply(halfHeight * focusDistance)).
		Subtract(w.Multiply(focusDistance))

	return &Camera{
		Origin:          origin,
		LowerLeftCorner: lowerLeft,
		Horizontal:      u.Multiply(2 * halfWidth * focusDistance),
		Vertical:        v.Multiply(2 * halfHeight * focusDistance),
		U:               u,
		V:               v,
		W:               w,
		LensRadius:      cfg.Aperture / 2,
		Time0:           cfg.Time0,
		Time1:           cfg.Time1,
	}
}

// GetRay produces a primary ray through screen coordinates (s,t) in
// [0,1]x[0,1], jittering the origin over the lens disk for depth of
// field and drawing a shutter time for motion blur (§4.7).
func (c *Camera) GetRay(s, t float64, sampler core.Sampler) core.Ray {
	rd := core.RandomInUnitDisk(sampler).Multiply(c.LensRadius)
	offset := c.U.Multiply(rd.X).Add(c.V.Multiply(rd.Y))

	origin := c.Origin.Add(offset)
	direction := c.LowerLeftCorner.
		Add(c.Horizontal.Multiply(s)).
		Add(c.Vertical.Multiply(t)).
		Subtract(origin)

	time := c.Time0
	if c.Time1 > c.Time0 {
		time = c.Time0 + sampler.Get1D()*(c.Time1-c.Time0)
	}
	return core.NewRayAtTime(origin, direction, time)
}
