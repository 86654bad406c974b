// Command raytracer renders a named scene to a PPM image. It is a thin
// frontend over pkg/scene, pkg/renderer, and pkg/config: scene selection
// and image I/O are out of scope for the engine's own correctness (§1),
// but a working driver is required to produce an image end to end.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"

	"github.com/brackenwood/tracer/pkg/config"
	"github.com/brackenwood/tracer/pkg/core"
	"github.com/brackenwood/tracer/pkg/renderer"
	"github.com/brackenwood/tracer/pkg/scene"
	"github.com/brackenwood/tracer/pkg/texture"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "raytracer:", err)
		os.Exit(1)
	}
}

func run() error {
	var (
		configPath  = flag.String("config", "", "path to a YAML render configuration; overrides width/height/samples flags")
		sceneName   = flag.String("scene", "book", "scene to render: empty, single_sphere, book, two_spheres, perlin, earth, simple_light, cornell_box")
		texturePath = flag.String("texture", "", "path to a PNG/JPEG/BMP image; required for -scene earth")
		width       = flag.Int("width", 400, "image width in pixels")
		height      = flag.Int("height", 225, "image height in pixels")
		samples     = flag.Int("samples", 100, "samples per pixel")
		workers     = flag.Int("workers", 0, "render worker count; 0 selects runtime.NumCPU()")
		seed        = flag.Int64("seed", 1, "scene construction RNG seed")
		outPath     = flag.String("out", "", "output PPM path; empty writes to stdout")
	)
	flag.Parse()

	cfg := config.Default(*width, *height, *samples)
	if *configPath != "" {
		loaded, err := config.LoadFile(*configPath)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		cfg = loaded
	}

	s, err := buildScene(*sceneName, cfg, *seed, *texturePath)
	if err != nil {
		return fmt.Errorf("build scene %q: %w", *sceneName, err)
	}

	logger := core.NewDefaultLogger()
	r := renderer.New(s, *workers, logger)
	img := r.Render()

	out := os.Stdout
	if *outPath != "" {
		f, err := os.Create(*outPath)
		if err != nil {
			return fmt.Errorf("create output file: %w", err)
		}
		defer f.Close()
		out = f
	}

	bw := bufio.NewWriter(out)
	if err := renderer.WritePPM(bw, img); err != nil {
		return fmt.Errorf("write PPM: %w", err)
	}
	return bw.Flush()
}

func buildScene(name string, cfg config.RenderConfig, seed int64, texturePath string) (*scene.Scene, error) {
	w, h, spp := cfg.Width, cfg.Height, cfg.SamplesPerPixel
	switch name {
	case "empty":
		return scene.NewEmptyScene(w, h, spp, cfg.BackgroundMode())
	case "single_sphere":
		return scene.NewSingleSphereScene(w, h, spp, cfg.BackgroundMode())
	case "book":
		return scene.NewBookScene(w, h, spp, seed)
	case "two_spheres":
		return scene.NewTwoSpheresScene(w, h, spp)
	case "perlin":
		return scene.NewPerlinSpheresScene(w, h, spp, seed)
	case "earth":
		if texturePath == "" {
			return nil, fmt.Errorf("-texture is required for -scene earth")
		}
		img, err := loadTexture(texturePath)
		if err != nil {
			return nil, fmt.Errorf("load earth texture: %w", err)
		}
		return scene.NewEarthScene(w, h, spp, img.Pixels, img.Width, img.Height)
	case "simple_light":
		return scene.NewSimpleLightScene(w, h, spp, seed)
	case "cornell_box":
		return scene.NewCornellBoxScene(w, h, spp)
	default:
		return nil, fmt.Errorf("unknown scene %q", name)
	}
}

// loadTexture decodes a PNG/JPEG/BMP file at path into an RGB8 buffer
// suitable for scene.NewEarthScene.
func loadTexture(path string) (*texture.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return texture.Decode(f)
}
