// screenshot.go - integer-scaled PNG screenshots of the decoded frame.
// stdlib image/png alone has no scaling primitive, so this reaches for
// x/image/draw for the nearest-neighbor upscale.

package main

import (
	"fmt"
	"image"
	"image/png"
	"os"

	"golang.org/x/image/draw"

	"github.com/voidwire/invaders-core"
)

// SaveScreenshot scales f by an integer factor and writes it as a PNG
// to path. scale must be >= 1.
func SaveScreenshot(f *invaders.Frame, path string, scale int) error {
	if scale < 1 {
		scale = 1
	}
	src := image.NewRGBA(image.Rect(0, 0, invaders.FrameWidth, invaders.FrameHeight))
	copy(src.Pix, f.Pixels)

	dstW := invaders.FrameWidth * scale
	dstH := invaders.FrameHeight * scale
	dst := image.NewRGBA(image.Rect(0, 0, dstW, dstH))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Over, nil)

	out, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("screenshot: %w", err)
	}
	defer out.Close()

	if err := png.Encode(out, dst); err != nil {
		return fmt.Errorf("screenshot: encoding %s: %w", path, err)
	}
	return nil
}
