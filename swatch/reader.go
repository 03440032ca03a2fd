package swatch

import (
	"errors"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"sort"

	"github.com/bodgit/palconv/palette"
	"github.com/ericpauley/go-quantize/quantize"
)

var errWrongSize = errors.New("swatch: image is wrong size")

type colorCount struct {
	color palette.Color
	count int
}

type byFrequency []colorCount

func (p byFrequency) Len() int {
	return len(p)
}

func (p byFrequency) Swap(i, j int) {
	p[i], p[j] = p[j], p[i]
}

func (p byFrequency) Less(i, j int) bool {
	return p[i].count > p[j].count
}

// Count how often each palette entry is used, in palette order
func countColors(m *image.Paletted) byFrequency {
	counts := make([]int, len(m.Palette))
	b := m.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if i := int(m.ColorIndexAt(x, y)); i < len(counts) {
				counts[i]++
			}
		}
	}

	seen := make(map[palette.Color]int)
	var f byFrequency
	for i, n := range counts {
		if n == 0 {
			continue
		}
		c := palette.Model.Convert(m.Palette[i]).(palette.Color)
		if j, ok := seen[c]; ok {
			f[j].count += n
			continue
		}
		seen[c] = len(f)
		f = append(f, colorCount{c, n})
	}
	return f
}

// Extract returns up to sixteen colors representing m, the most frequently
// used first. Paletted images with no more than sixteen colors keep their
// exact colors, anything else is reduced with a median cut quantizer.
func Extract(m image.Image) palette.Palette {
	b := m.Bounds()
	if b.Empty() {
		return nil
	}

	pm, _ := m.(*image.Paletted)
	if pm == nil || len(pm.Palette) > palette.Size {
		q := quantize.MedianCutQuantizer{}
		pm = image.NewPaletted(b, q.Quantize(make(color.Palette, 0, palette.Size), m))
		draw.Draw(pm, b, m, b.Min, draw.Src)
	}

	f := countColors(pm)
	sort.Stable(f)

	p := make(palette.Palette, 0, len(f))
	for _, c := range f {
		p = append(p, c.color)
	}
	if len(p) > palette.Size {
		p = p[:palette.Size]
	}
	return p
}

// Decode reads a PNG swatch from r and returns the color of each block
func Decode(r io.Reader) (palette.Palette, error) {
	m, err := png.Decode(r)
	if err != nil {
		return nil, err
	}

	b := m.Bounds()
	if b.Dx() != pixelX || b.Dy() != pixelY {
		return nil, errWrongSize
	}

	p := make(palette.Palette, palette.Size)
	for i := range p {
		x := b.Min.X + i%blockX*blockWidth
		y := b.Min.Y + i/blockX*blockHeight
		p[i] = palette.Model.Convert(m.At(x, y)).(palette.Color)
	}
	return p, nil
}
