package swatch

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/bodgit/palconv/cram"
	"github.com/bodgit/palconv/palette"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testPalette = palette.Parse("6d6d6d 000000 ffffff ffb66d b66d00 6d4900 ffff00 ffb600 ff0000 006dff 00ffff 00b6db 00ff6d 00b66d b6b6ff 6d6db6")

func TestRender(t *testing.T) {
	m := Render(testPalette)
	assert.Equal(t, image.Rect(0, 0, 128, 32), m.Bounds())
	assert.Len(t, m.Palette, palette.Size)

	assert.Equal(t, uint8(0), m.ColorIndexAt(0, 0))
	assert.Equal(t, uint8(1), m.ColorIndexAt(16, 0))
	assert.Equal(t, uint8(7), m.ColorIndexAt(127, 15))
	assert.Equal(t, uint8(8), m.ColorIndexAt(0, 16))
	assert.Equal(t, uint8(15), m.ColorIndexAt(127, 31))
	assert.Equal(t, palette.Color{R: 0xff, G: 0xb6, B: 0x6d}, m.At(48, 0))

	// Short palettes are padded with black
	m = Render(palette.Palette{{R: 0xff}})
	assert.Len(t, m.Palette, palette.Size)
	assert.Equal(t, palette.Black, m.At(127, 31))
}

func TestEncodeDecode(t *testing.T) {
	b := new(bytes.Buffer)
	require.NoError(t, Encode(b, testPalette))

	p, err := Decode(bytes.NewReader(b.Bytes()))
	require.NoError(t, err)
	assert.Equal(t, testPalette, p)

	b.Reset()
	require.NoError(t, png.Encode(b, image.NewRGBA(image.Rect(0, 0, 10, 10))))
	_, err = Decode(b)
	assert.Equal(t, errWrongSize, err)

	_, err = Decode(bytes.NewReader([]byte("not a png")))
	assert.Error(t, err)
}

func TestEncodeTiles(t *testing.T) {
	b := new(bytes.Buffer)
	require.NoError(t, EncodeTiles(b, testPalette))
	require.Equal(t, TileSize, b.Len())

	tiles := b.Bytes()
	// The first two tiles are both block 0
	assert.Equal(t, bytes.Repeat([]byte{0x00}, tileBytes*2), tiles[:tileBytes*2])
	// The third tile is block 1
	assert.Equal(t, bytes.Repeat([]byte{0x11}, tileBytes), tiles[tileBytes*2:tileBytes*3])
	// The last tile is block 15
	assert.Equal(t, bytes.Repeat([]byte{0xff}, tileBytes), tiles[TileSize-32-tileBytes:TileSize-32])

	assert.Equal(t, cram.Marshal(testPalette), tiles[TileSize-32:])
}

func TestExtractPaletted(t *testing.T) {
	p := color.Palette{
		color.RGBA{0xff, 0x00, 0x00, 0xff},
		color.RGBA{0x00, 0xff, 0x00, 0xff},
		color.RGBA{0x00, 0x00, 0xff, 0xff},
		color.RGBA{0xff, 0xff, 0xff, 0xff},
	}
	m := image.NewPaletted(image.Rect(0, 0, 4, 4), p)
	for x := 0; x < 4; x++ {
		m.SetColorIndex(x, 0, 2)
		m.SetColorIndex(x, 1, 2)
		m.SetColorIndex(x, 2, 1)
	}
	m.SetColorIndex(0, 3, 1)

	// Index 0 fills the rest, index 3 is unused
	assert.Equal(t, palette.Palette{
		{B: 0xff},
		{G: 0xff},
		{R: 0xff},
	}, Extract(m))

	assert.Equal(t, testPalette, Extract(Render(testPalette)))
}

func TestExtractQuantize(t *testing.T) {
	m := image.NewRGBA(image.Rect(0, 0, 8, 8))
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			m.Set(x, y, color.RGBA{0x12, 0x34, 0x56, 0xff})
		}
	}

	p := Extract(m)
	require.NotEmpty(t, p)
	assert.Equal(t, palette.Color{R: 0x12, G: 0x34, B: 0x56}, p[0])

	assert.Nil(t, Extract(image.NewRGBA(image.Rect(0, 0, 0, 0))))
}
