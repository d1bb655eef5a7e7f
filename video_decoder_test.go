package invaders

import "testing"

func TestZoneColorBoundaries(t *testing.T) {
	cases := []struct {
		x, y int
		want RGBA
	}{
		{10, 50, colorRed},     // inside (32,64)
		{10, 32, colorWhite},   // boundary excluded
		{10, 64, colorWhite},   // boundary excluded
		{10, 200, colorGreen},  // inside (195,239)
		{10, 250, colorGreen},  // y>240 and x<127
		{200, 250, colorWhite}, // y>240 and x>=127
	}
	for _, c := range cases {
		if got := zoneColor(c.x, c.y); got != c.want {
			t.Fatalf("zoneColor(%d,%d) = %+v, want %+v", c.x, c.y, got, c.want)
		}
	}
}

func TestDecodeSingleBitRotation(t *testing.T) {
	vram := make([]byte, vramLength)
	// Column 0, byte_row 0, bit 0: memory-order row 0 of column 0.
	vram[0] = 0x01
	f := DecodeFresh(vram)
	// y_screen = 255 - (0*8+0) = 255, x = col = 0.
	i := (255*FrameWidth + 0) * 4
	if f.Pixels[i+3] == 0 {
		t.Fatalf("expected lit pixel at (0,255) after decoding vram[0] bit 0")
	}
	want := zoneColor(0, 255)
	if f.Pixels[i] != want.R || f.Pixels[i+1] != want.G || f.Pixels[i+2] != want.B {
		t.Fatalf("decoded pixel color mismatch: got (%d,%d,%d), want %+v", f.Pixels[i], f.Pixels[i+1], f.Pixels[i+2], want)
	}
}

func TestDecodeLastColumnInBounds(t *testing.T) {
	vram := make([]byte, vramLength)
	// Last column (223), last byte in that column, top bit: must not
	// panic and must land within frame bounds.
	vram[(FrameWidth-1)*bytesPerColumn+(bytesPerColumn-1)] = 0x80
	f := DecodeFresh(vram)
	yScreen := 255 - ((bytesPerColumn-1)*8 + 7)
	i := (yScreen*FrameWidth + (FrameWidth - 1)) * 4
	if f.Pixels[i+3] == 0 {
		t.Fatalf("expected lit pixel in the last column")
	}
}

func TestDecodeSkipsZeroBytes(t *testing.T) {
	vram := make([]byte, vramLength)
	f := NewFrame()
	Decode(vram, f)
	for _, b := range f.Pixels {
		if b != 0 {
			t.Fatalf("an all-zero vram must decode to a fully transparent frame")
		}
	}
}

func TestFrameHashStable(t *testing.T) {
	vram := make([]byte, vramLength)
	vram[5] = 0xFF
	f1 := DecodeFresh(vram)
	f2 := DecodeFresh(vram)
	if f1.Hash() != f2.Hash() {
		t.Fatalf("identical vram snapshots must hash identically")
	}
	vram[5] = 0x00
	f3 := DecodeFresh(vram)
	if f1.Hash() == f3.Hash() {
		t.Fatalf("differing vram snapshots must not collide")
	}
}
