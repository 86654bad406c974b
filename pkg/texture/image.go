package texture

import (
	"bytes"
	"fmt"
	"image"
	_ "image/jpeg" // register JPEG decoder
	_ "image/png"  // register PNG decoder
	"io"
	"math"

	"golang.org/x/image/bmp"

	"github.com/brackenwood/tracer/pkg/core"
)

// Image samples an 8-bit RGB pixel buffer, row-major with a top-left
// origin, per §3/§4.4. Pixel bytes are out-of-band data produced by
// decoding a PNG/JPEG/BMP file; this type never performs I/O itself.
type Image struct {
	Pixels []byte // row-major RGB8, len == 3*Width*Height
	Width  int
	Height int
}

// NewImage wraps a decoded RGB8 pixel buffer as a texture.
func NewImage(pixels []byte, width, height int) *Image {
	return &Image{Pixels: pixels, Width: width, Height: height}
}

// Evaluate samples at (i, j) = (clamp(floor(u*nx), 0, nx-1),
// clamp(floor((1-v)*ny), 0, ny-1)), converting byte RGB to [0,1], per §4.4.
func (img *Image) Evaluate(u, v float64, p core.Vec3) core.Vec3 {
	if img.Width <= 0 || img.Height <= 0 {
		return core.NewVec3(0, 1, 1) // debug cyan: no pixel data
	}

	u = clamp01(u)
	v = 1.0 - clamp01(v)

	i := int(u * float64(img.Width))
	j := int(v * float64(img.Height))
	i = clampInt(i, 0, img.Width-1)
	j = clampInt(j, 0, img.Height-1)

	const colorScale = 1.0 / 255.0
	offset := 3 * (j*img.Width + i)
	r := float64(img.Pixels[offset]) * colorScale
	g := float64(img.Pixels[offset+1]) * colorScale
	b := float64(img.Pixels[offset+2]) * colorScale
	return core.NewVec3(r, g, b)
}

func clamp01(x float64) float64 {
	return math.Max(0, math.Min(1, x))
}

func clampInt(x, lo, hi int) int {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}

// Decode reads a PNG, JPEG, or BMP image and returns it as a row-major
// RGB8 buffer suitable for NewImage. This is the external-collaborator
// image-decoding path §1 calls out of scope for the engine's correctness,
// but a concrete implementation belongs somewhere a CLI can call it from.
func Decode(r io.Reader) (*Image, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("texture: read image: %w", err)
	}

	img, format, err := image.Decode(bytes.NewReader(raw))
	if err != nil {
		// image/png, image/jpeg and golang.org/x/image/bmp all register
		// with image.Decode on import; this explicit bmp.Decode retry is
		// reached only for data that image.Decode's header sniffing rejects.
		if bmpImg, bmpErr := bmp.Decode(bytes.NewReader(raw)); bmpErr == nil {
			img, format, err = bmpImg, "bmp", nil
		}
	}
	if err != nil {
		return nil, fmt.Errorf("texture: decode image: %w", err)
	}
	_ = format

	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	pixels := make([]byte, 3*w*h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			r32, g32, b32, _ := img.At(bounds.Min.X+x, bounds.Min.Y+y).RGBA()
			offset := 3 * (y*w + x)
			pixels[offset] = byte(r32 >> 8)
			pixels[offset+1] = byte(g32 >> 8)
			pixels[offset+2] = byte(b32 >> 8)
		}
	}
	return NewImage(pixels, w, h), nil
}
