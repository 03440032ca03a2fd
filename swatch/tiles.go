package swatch

import (
	"image"
	"io"

	"github.com/bodgit/palconv/cram"
	"github.com/bodgit/palconv/palette"
)

type encoder struct {
	w   io.Writer
	buf [tileBytes]byte
}

// Pack one 8 by 8 tile, two pixels per byte with the left pixel in the high
// nibble
func (e *encoder) packTile(m *image.Paletted, tx, ty int) []byte {
	origin := image.Pt(tx*tileWidth, ty*tileHeight)
	for i := range e.buf {
		p := origin.Add(image.Pt(i<<1%tileWidth, i<<1/tileWidth))
		hi, lo := m.ColorIndexAt(p.X, p.Y), m.ColorIndexAt(p.X+1, p.Y)
		e.buf[i] = hi&0x0f<<4 | lo&0x0f
	}
	return e.buf[:]
}

func (e *encoder) encode(m *image.Paletted) error {
	for ty := 0; ty < tileY; ty++ {
		for tx := 0; tx < tileX; tx++ {
			if _, err := e.w.Write(e.packTile(m, tx, ty)); err != nil {
				return err
			}
		}
	}

	_, err := e.w.Write(cram.Marshal(palette.FromColorPalette(m.Palette)))
	return err
}

// EncodeTiles writes p to w as Genesis tile data, the swatch pixels as 4-bit
// indices tile by tile followed by the palette in color RAM format. The
// output is always TileSize bytes.
func EncodeTiles(w io.Writer, p palette.Palette) error {
	e := encoder{w: w}

	return e.encode(Render(p))
}
