package texture

import (
	"image/color"
	"testing"
)

// buildTGA assembles a minimal TGA file with the given type, bpp and
// BGR(A) pixel data in file order.
func buildTGA(imageType byte, width, height, bpp int, pixels []byte) []byte {
	header := make([]byte, 18)
	header[2] = imageType
	header[12] = byte(width)
	header[13] = byte(width >> 8)
	header[14] = byte(height)
	header[15] = byte(height >> 8)
	header[16] = byte(bpp)
	header[17] = 0x20 // top-to-bottom
	return append(header, pixels...)
}

func TestDecodeTGAUncompressed(t *testing.T) {
	// 2x1, 24bpp: red then blue (stored BGR).
	data := buildTGA(TGATypeUncompressed, 2, 1, 24, []byte{
		0, 0, 255, // red
		255, 0, 0, // blue
	})

	img, err := DecodeTGA(data)
	if err != nil {
		t.Fatalf("DecodeTGA failed: %v", err)
	}

	rgba := ImageToRGBA(img)
	if got := rgba.RGBAAt(0, 0); got != (color.RGBA{R: 255, A: 255}) {
		t.Errorf("pixel (0,0) = %v, want red", got)
	}
	if got := rgba.RGBAAt(1, 0); got != (color.RGBA{B: 255, A: 255}) {
		t.Errorf("pixel (1,0) = %v, want blue", got)
	}
}

func TestDecodeTGARLE(t *testing.T) {
	// 4x1, 32bpp: one RLE packet repeating green 4 times.
	data := buildTGA(TGATypeRLE, 4, 1, 32, []byte{
		0x83,             // RLE packet, count 4
		0, 255, 0, 255,   // BGRA green
	})

	img, err := DecodeTGA(data)
	if err != nil {
		t.Fatalf("DecodeTGA failed: %v", err)
	}

	rgba := ImageToRGBA(img)
	for x := 0; x < 4; x++ {
		if got := rgba.RGBAAt(x, 0); got != (color.RGBA{G: 255, A: 255}) {
			t.Errorf("pixel (%d,0) = %v, want green", x, got)
		}
	}
}

func TestDecodeTGARejectsUnsupported(t *testing.T) {
	tests := []struct {
		name string
		data []byte
	}{
		{"too short", []byte{1, 2, 3}},
		{"color mapped", func() []byte {
			d := buildTGA(TGATypeUncompressed, 1, 1, 24, []byte{0, 0, 0})
			d[1] = 1
			return d
		}()},
		{"grayscale type", buildTGA(3, 1, 1, 24, []byte{0, 0, 0})},
		{"16bpp", buildTGA(TGATypeUncompressed, 1, 1, 16, []byte{0, 0})},
		{"truncated pixels", buildTGA(TGATypeUncompressed, 4, 4, 24, []byte{0, 0, 0})},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := DecodeTGA(tt.data); err == nil {
				t.Error("expected decode error")
			}
		})
	}
}

func TestCheckerboard(t *testing.T) {
	img := Checkerboard(64, 8)

	if img.Bounds().Dx() != 64 || img.Bounds().Dy() != 64 {
		t.Fatalf("bounds = %v, want 64x64", img.Bounds())
	}

	// Adjacent cells must differ.
	a := img.RGBAAt(0, 0)
	b := img.RGBAAt(8, 0)
	if a == b {
		t.Error("adjacent checker cells have the same color")
	}
	// Diagonal cells must match.
	c := img.RGBAAt(8, 8)
	if a != c {
		t.Error("diagonal checker cells differ")
	}
}
