// video_decoder.go - decodes the rotated 1-bit video buffer into a
// colorized raster frame

package invaders

import "hash/fnv"

const (
	// FrameWidth and FrameHeight are the decoded display's dimensions
	// after the cabinet's 90-degree counter-clockwise rotation.
	FrameWidth  = 224
	FrameHeight = 256

	videoColumns   = FrameWidth     // 224 screen columns, one per vram column
	bytesPerColumn = FrameHeight / 8 // 32 bytes stack vertically within a column
)

// RGBA is a single 8-bit-per-channel, opaque-or-transparent pixel. The
// core hands these back as a flat byte slice (4 bytes/pixel) so a
// collaborator can hand it straight to any texture-upload call that
// wants raw RGBA.
type RGBA struct{ R, G, B, A byte }

var (
	colorBlack = RGBA{0, 0, 0, 0}
	colorRed   = RGBA{0xFF, 0x10, 0x50, 0xFF} // UFO band
	colorGreen = RGBA{0x0F, 0xDF, 0x1F, 0xFF} // player/shields/lives band
	colorWhite = RGBA{0xE8, 0xEC, 0xFF, 0xFF} // everything else lit
)

// zoneColor returns the color-gel zone for displayed pixel (x, yScreen),
// per the Taito cabinet's physical color-gel overlay table.
func zoneColor(x, yScreen int) RGBA {
	switch {
	case yScreen > 32 && yScreen < 64:
		return colorRed
	case yScreen > 195 && yScreen < 239:
		return colorGreen
	case yScreen > 240 && x < 127:
		return colorGreen
	case yScreen > 240:
		return colorWhite
	default:
		return colorWhite
	}
}

// Frame is a decoded 224x256 raster, row-major, 4 bytes per pixel.
type Frame struct {
	Pixels []byte // len == FrameWidth*FrameHeight*4
}

// NewFrame allocates a zeroed (fully transparent) frame buffer.
func NewFrame() *Frame {
	return &Frame{Pixels: make([]byte, FrameWidth*FrameHeight*4)}
}

func (f *Frame) set(x, y int, c RGBA) {
	i := (y*FrameWidth + x) * 4
	f.Pixels[i] = c.R
	f.Pixels[i+1] = c.G
	f.Pixels[i+2] = c.B
	f.Pixels[i+3] = c.A
}

// Decode unpacks a 7168-byte video-RAM snapshot (column-major, byte 0 =
// column 0 rows 0-7 in memory order, bit 0 = the lowest-memory-order
// row of its group) into dst, applying the 90-degree rotation and the
// Taito color-gel zones. Zero bytes are skipped — an all-dark byte can
// never change the shared black background the destination frame is
// assumed to start from.
func Decode(vram []byte, dst *Frame) {
	for col := 0; col < videoColumns; col++ {
		for byteRow := 0; byteRow < bytesPerColumn; byteRow++ {
			b := vram[col*bytesPerColumn+byteRow]
			if b == 0 {
				continue
			}
			for bit := 0; bit < 8; bit++ {
				if b&(1<<uint(bit)) == 0 {
					continue
				}
				yScreen := 255 - (byteRow*8 + bit)
				dst.set(col, yScreen, zoneColor(col, yScreen))
			}
		}
	}
}

// DecodeFresh allocates and decodes a new frame in one call, clearing
// to fully transparent black first so skipped zero bytes read as
// background.
func DecodeFresh(vram []byte) *Frame {
	f := NewFrame()
	Decode(vram, f)
	return f
}

// Hash returns an FNV-1a hash of the decoded pixel buffer, used for
// golden-frame comparisons instead of committing binary image fixtures
// to the repository.
func (f *Frame) Hash() uint64 {
	h := fnv.New64a()
	h.Write(f.Pixels)
	return h.Sum64()
}
