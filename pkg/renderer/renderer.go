// Package renderer drives the parallel pixel-sampling integrator and
// assembles its output into a raster image (§4.9, §5).
package renderer

import (
	"runtime"
	"sync"

	"github.com/brackenwood/tracer/pkg/core"
	"github.com/brackenwood/tracer/pkg/integrator"
	"github.com/brackenwood/tracer/pkg/scene"
)

// Image is a row-major 8-bit RGB raster; Pixels[y] holds row y, with
// y=0 at the top of the frame.
type Image struct {
	Width, Height int
	Pixels        [][]byte // Pixels[y] is a Width*3-byte row: R,G,B,...
}

// Renderer parallelises the integrator over image rows, one work unit
// per row (§5 "Scheduling").
type Renderer struct {
	Scene      *scene.Scene
	NumWorkers int
	Logger     core.Logger
}

// New creates a Renderer. numWorkers <= 0 defaults to runtime.NumCPU().
func New(s *scene.Scene, numWorkers int, logger core.Logger) *Renderer {
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}
	if logger == nil {
		logger = core.NopLogger{}
	}
	return &Renderer{Scene: s, NumWorkers: numWorkers, Logger: logger}
}

// rowTask is one unit of work: render image row y.
type rowTask struct {
	y int
}

// rowResult carries a completed row back to the collector, keyed by y so
// results can be reassembled regardless of completion order.
type rowResult struct {
	y      int
	pixels []byte
}

// Render runs the integrator over every pixel, NumWorkers rows at a
// time, and returns the assembled image. Each worker owns its own
// Sampler; the one RNG shared across workers is the global math/rand
// source that geometry.ConstantMedium draws its free paths from.
func (r *Renderer) Render() *Image {
	width, height := r.Scene.Config.Width, r.Scene.Config.Height
	it := integrator.New(r.Scene.Root, r.Scene.Config)

	tasks := make(chan rowTask, height)
	results := make(chan rowResult, height)

	var wg sync.WaitGroup
	for w := 0; w < r.NumWorkers; w++ {
		wg.Add(1)
		go func(workerID int) {
			defer wg.Done()
			sampler := core.NewRandSampler(int64(workerID) + 1)
			for task := range tasks {
				results <- rowResult{y: task.y, pixels: r.renderRow(it, task.y, sampler)}
			}
		}(w)
	}

	for y := 0; y < height; y++ {
		tasks <- rowTask{y: y}
	}
	close(tasks)

	go func() {
		wg.Wait()
		close(results)
	}()

	image := &Image{Width: width, Height: height, Pixels: make([][]byte, height)}
	done := 0
	for res := range results {
		image.Pixels[res.y] = res.pixels
		done++
		if done%64 == 0 || done == height {
			r.Logger.Printf("rendered %d/%d rows", done, height)
		}
	}
	return image
}

// renderRow traces SamplesPerPixel rays per pixel across row y and
// resolves them to 8-bit RGB (§4.8).
func (r *Renderer) renderRow(it *integrator.Integrator, y int, sampler core.Sampler) []byte {
	width, height := r.Scene.Config.Width, r.Scene.Config.Height
	samples := r.Scene.Config.SamplesPerPixel
	row := make([]byte, 3*width)

	// y is the output row (0 = top of the image); the camera's screen
	// space has v=0 at the bottom, so it corresponds to camera row
	// height-1-y (§4.8: "image y descends from H-1 to 0").
	cameraRow := height - 1 - y

	for x := 0; x < width; x++ {
		sum := core.Vec3{}
		for s := 0; s < samples; s++ {
			du, dv := sampler.Get2D()
			u := (float64(x) + du) / float64(width)
			v := (float64(cameraRow) + dv) / float64(height)
			ray := r.Scene.Camera.GetRay(u, v, sampler)
			sum = sum.Add(it.Radiance(ray, sampler))
		}
		rB, gB, bB := integrator.ResolvePixel(sum, samples)
		row[3*x], row[3*x+1], row[3*x+2] = rB, gB, bB
	}
	return row
}
