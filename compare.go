package palconv

import (
	"github.com/bodgit/palconv/palette"
	colorful "github.com/lucasb-eyer/go-colorful"
)

// Delta describes how far one palette entry moved during a conversion
type Delta struct {
	Index     int
	Original  palette.Color
	Converted palette.Color
	// Distance is the CIEDE2000 color difference, 0 for identical colors
	Distance float64
}

func toColorful(c palette.Color) colorful.Color {
	return colorful.Color{
		R: float64(c.R) / 255,
		G: float64(c.G) / 255,
		B: float64(c.B) / 255,
	}
}

// Compare pairs up the entries of two palettes. The result is as long as the
// longer palette with any missing entry treated as black.
func Compare(original, converted palette.Palette) []Delta {
	n := len(original)
	if len(converted) > n {
		n = len(converted)
	}

	d := make([]Delta, n)
	for i := range d {
		d[i].Index = i
		if i < len(original) {
			d[i].Original = original[i]
		}
		if i < len(converted) {
			d[i].Converted = converted[i]
		}
		d[i].Distance = toColorful(d[i].Original).DistanceCIEDE2000(toColorful(d[i].Converted))
	}
	return d
}

// RoundTrip returns the colors of buf after encoding them in the scheme to
// and decoding them again, showing what the target hardware can represent.
func (c *Converter) RoundTrip(from, to Scheme, buf EncodedBuffer) (palette.Palette, palette.Palette, error) {
	original, err := c.Palette(from, buf)
	if err != nil {
		return nil, nil, err
	}

	out, err := Encode(to, original)
	if err != nil {
		return nil, nil, err
	}

	converted, err := Decode(to, out)
	if err != nil {
		return nil, nil, err
	}
	c.logger.Printf("Round trip %s via %s\n", from, to)
	return original, converted, nil
}
