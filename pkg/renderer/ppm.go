package renderer

import (
	"bufio"
	"fmt"
	"io"
)

// WritePPM emits img as ASCII PPM (P3): header "P3\n<W> <H>\n255\n", then
// one "R G B" line per pixel in row-major order, top row first (§6).
func WritePPM(w io.Writer, img *Image) error {
	bw := bufio.NewWriter(w)

	if _, err := fmt.Fprintf(bw, "P3\n%d %d\n255\n", img.Width, img.Height); err != nil {
		return fmt.Errorf("renderer: write PPM header: %w", err)
	}

	for y := 0; y < img.Height; y++ {
		row := img.Pixels[y]
		for x := 0; x < img.Width; x++ {
			if _, err := fmt.Fprintf(bw, "%d %d %d\n", row[3*x], row[3*x+1], row[3*x+2]); err != nil {
				return fmt.Errorf("renderer: write PPM pixel (%d,%d): %w", x, y, err)
			}
		}
	}
	return bw.Flush()
}
