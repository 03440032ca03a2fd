package swatch

import (
	"image"
	"image/png"
	"io"

	"github.com/bodgit/palconv/palette"
)

// Render returns p drawn as a swatch. The palette is normalized to sixteen
// colors first so the image palette always matches the block order.
func Render(p palette.Palette) *image.Paletted {
	p = palette.Normalize(p)

	m := image.NewPaletted(image.Rect(0, 0, pixelX, pixelY), p.Convert())
	for by := 0; by < blockY; by++ {
		for bx := 0; bx < blockX; bx++ {
			i := uint8(by*blockX + bx)
			for y := 0; y < blockHeight; y++ {
				for x := 0; x < blockWidth; x++ {
					m.SetColorIndex(bx*blockWidth+x, by*blockHeight+y, i)
				}
			}
		}
	}
	return m
}

// Encode writes p to w as a PNG swatch
func Encode(w io.Writer, p palette.Palette) error {
	return png.Encode(w, Render(p))
}
