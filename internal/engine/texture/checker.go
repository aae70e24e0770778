package texture

import (
	"image"
	"image/color"
)

// Checkerboard builds a size x size RGBA checkerboard with cells x
// cells squares, the built-in fallback texture when no file is given.
func Checkerboard(size, cells int) *image.RGBA {
	if size <= 0 {
		size = 256
	}
	if cells <= 0 {
		cells = 8
	}

	light := color.RGBA{R: 230, G: 225, B: 210, A: 255}
	dark := color.RGBA{R: 120, G: 60, B: 40, A: 255}

	img := image.NewRGBA(image.Rect(0, 0, size, size))
	cell := size / cells
	if cell < 1 {
		cell = 1
	}
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			if (x/cell+y/cell)%2 == 0 {
				img.SetRGBA(x, y, light)
			} else {
				img.SetRGBA(x, y, dark)
			}
		}
	}
	return img
}
