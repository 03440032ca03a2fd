package cram

import (
	"testing"

	"github.com/bodgit/palconv/palette"
	"github.com/stretchr/testify/assert"
)

const (
	exampleBGR32 = "666 000 EEE 6AE 06A 046 0EE 0AE 00E E60 EE0 CA0 6E0 6A0 EAA A66"
	exampleRGB32 = "666 000 EEE EA6 A60 640 EE0 EA0 E00 06E 0EE 0AC 0E6 0A6 AAE 66A"
)

func TestOrderString(t *testing.T) {
	assert.Equal(t, "BGR32", BGR.String())
	assert.Equal(t, "RGB32", RGB.String())
	assert.Equal(t, "Order(5)", Order(5).String())
}

func TestDecodeShort(t *testing.T) {
	assert.Equal(t, "ffb66d", DecodeShort([3]uint8{0x6, 0xa, 0xe}, BGR).String())
	assert.Equal(t, "6db6ff", DecodeShort([3]uint8{0x6, 0xa, 0xe}, RGB).String())

	// The least significant bit of each digit is discarded
	for n := uint8(0); n < 16; n += 2 {
		assert.Equal(t, DecodeShort([3]uint8{n, n, n}, RGB), DecodeShort([3]uint8{n + 1, n + 1, n + 1}, RGB))
	}
	assert.Equal(t, "ffffff", DecodeShort([3]uint8{0xf, 0xf, 0xf}, RGB).String())
	assert.Equal(t, "494949", DecodeShort([3]uint8{0x5, 0x5, 0x5}, RGB).String())
}

func TestEncodeShort(t *testing.T) {
	c := palette.Color{R: 0xff, G: 0xb6, B: 0x6d}
	assert.Equal(t, [3]uint8{0x6, 0xa, 0xe}, EncodeShort(c, BGR))
	assert.Equal(t, [3]uint8{0xe, 0xa, 0x6}, EncodeShort(c, RGB))

	for _, o := range []Order{BGR, RGB} {
		for n := uint8(0); n < 16; n += 2 {
			d := [3]uint8{n, n, n}
			assert.Equal(t, d, EncodeShort(DecodeShort(d, o), o))
		}
	}
}

func TestParseShort(t *testing.T) {
	assert.Empty(t, ParseShort("", BGR))
	assert.Equal(t, palette.Parse(exampleRGB), ParseShort(exampleBGR32, BGR))
	assert.Equal(t, palette.Parse(exampleRGB), ParseShort(exampleRGB32, RGB))
	assert.Equal(t, "ffffff", palette.Format(ParseShort("EE eee 0000 XYZ", BGR)))
}

func TestFormatShort(t *testing.T) {
	assert.Equal(t, "", FormatShort(nil, RGB))
	assert.Equal(t, exampleBGR32, FormatShort(palette.Parse(exampleRGB), BGR))
	assert.Equal(t, exampleRGB32, FormatShort(palette.Parse(exampleRGB), RGB))
}

func TestSwap(t *testing.T) {
	assert.Equal(t, "", Swap(""))
	assert.Equal(t, exampleRGB32, Swap(exampleBGR32))
	assert.Equal(t, exampleBGR32, Swap(exampleRGB32))
	assert.Equal(t, "cBa 321", Swap("aBc 12 123 xyz"))
	// No quantization takes place
	assert.Equal(t, "F01", Swap("10F"))
}

func TestSwapMatchesCodec(t *testing.T) {
	bgr := FormatShort(palette.Parse(exampleRGB), BGR)
	assert.Equal(t, ParseShort(bgr, BGR), ParseShort(Swap(bgr), RGB))
}
