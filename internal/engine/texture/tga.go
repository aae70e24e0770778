// Package texture provides image decoding and texture source utilities.
package texture

import (
	"fmt"
	"image"
	"image/color"
)

// TGA image type constants.
const (
	TGATypeUncompressed = 2  // Uncompressed true-color
	TGATypeRLE          = 10 // RLE compressed true-color
)

// DecodeTGA decodes a TGA image file. Supports uncompressed true-color
// (type 2) and RLE compressed (type 10) files at 24 or 32 bits per
// pixel.
func DecodeTGA(data []byte) (image.Image, error) {
	if len(data) < 18 {
		return nil, fmt.Errorf("TGA data too short")
	}

	idLength := int(data[0])
	colorMapType := data[1]
	imageType := data[2]
	width := int(data[12]) | int(data[13])<<8
	height := int(data[14]) | int(data[15])<<8
	bpp := int(data[16])
	descriptor := data[17]

	if colorMapType != 0 {
		return nil, fmt.Errorf("color-mapped TGA not supported")
	}
	if imageType != TGATypeUncompressed && imageType != TGATypeRLE {
		return nil, fmt.Errorf("unsupported TGA type %d (only uncompressed/RLE true-color supported)", imageType)
	}
	if bpp != 24 && bpp != 32 {
		return nil, fmt.Errorf("unsupported TGA bit depth %d (only 24/32 supported)", bpp)
	}

	offset := 18 + idLength
	if offset > len(data) {
		return nil, fmt.Errorf("TGA data truncated")
	}
	pixelData := data[offset:]

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	bytesPerPixel := bpp / 8

	// Bit 5 of the descriptor flags top-to-bottom row order.
	topToBottom := (descriptor & 0x20) != 0

	if imageType == TGATypeUncompressed {
		expectedSize := width * height * bytesPerPixel
		if len(pixelData) < expectedSize {
			return nil, fmt.Errorf("TGA pixel data truncated")
		}

		for y := 0; y < height; y++ {
			destY := y
			if !topToBottom {
				destY = height - 1 - y
			}
			for x := 0; x < width; x++ {
				i := (y*width + x) * bytesPerPixel
				b := pixelData[i]
				g := pixelData[i+1]
				r := pixelData[i+2]
				a := uint8(255)
				if bytesPerPixel == 4 {
					a = pixelData[i+3]
				}
				img.SetRGBA(x, destY, color.RGBA{R: r, G: g, B: b, A: a})
			}
		}
		return img, nil
	}

	if err := decodeTGARLE(img, pixelData, width, height, bytesPerPixel, topToBottom); err != nil {
		return nil, err
	}
	return img, nil
}

// decodeTGARLE decodes RLE-compressed TGA pixel data into an image.
func decodeTGARLE(img *image.RGBA, pixelData []byte, width, height, bytesPerPixel int, topToBottom bool) error {
	pixelCount := width * height
	pixelIdx := 0
	dataIdx := 0

	setPixel := func(c color.RGBA) {
		x := pixelIdx % width
		y := pixelIdx / width
		destY := y
		if !topToBottom {
			destY = height - 1 - y
		}
		img.SetRGBA(x, destY, c)
		pixelIdx++
	}

	for pixelIdx < pixelCount && dataIdx < len(pixelData) {
		packet := pixelData[dataIdx]
		dataIdx++
		count := int(packet&0x7F) + 1

		if packet&0x80 != 0 {
			// RLE packet: one pixel value repeated.
			if dataIdx+bytesPerPixel > len(pixelData) {
				break
			}
			b := pixelData[dataIdx]
			g := pixelData[dataIdx+1]
			r := pixelData[dataIdx+2]
			a := uint8(255)
			if bytesPerPixel == 4 {
				a = pixelData[dataIdx+3]
			}
			dataIdx += bytesPerPixel

			c := color.RGBA{R: r, G: g, B: b, A: a}
			for i := 0; i < count && pixelIdx < pixelCount; i++ {
				setPixel(c)
			}
		} else {
			// Raw packet: count literal pixels.
			for i := 0; i < count && pixelIdx < pixelCount; i++ {
				if dataIdx+bytesPerPixel > len(pixelData) {
					return nil
				}
				b := pixelData[dataIdx]
				g := pixelData[dataIdx+1]
				r := pixelData[dataIdx+2]
				a := uint8(255)
				if bytesPerPixel == 4 {
					a = pixelData[dataIdx+3]
				}
				dataIdx += bytesPerPixel

				setPixel(color.RGBA{R: r, G: g, B: b, A: a})
			}
		}
	}

	return nil
}

// ImageToRGBA converts any image.Image to *image.RGBA.
func ImageToRGBA(img image.Image) *image.RGBA {
	if rgba, ok := img.(*image.RGBA); ok {
		return rgba
	}

	bounds := img.Bounds()
	rgba := image.NewRGBA(bounds)
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			c := img.At(x, y)
			r16, g16, b16, a16 := c.RGBA()
			rgba.SetRGBA(x, y, color.RGBA{
				R: uint8(r16 >> 8),
				G: uint8(g16 >> 8),
				B: uint8(b16 >> 8),
				A: uint8(a16 >> 8),
			})
		}
	}
	return rgba
}
