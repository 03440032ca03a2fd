/*
Package palette implements the canonical colour and palette types shared by all
of the hardware codecs.

A Color is a 24-bit RGB triple and a Palette is an ordered list of them. The
hardware handled by this module addresses palettes of exactly Size entries so
Normalize is used to pad or truncate a parsed list before it is written out.
*/
package palette

import (
	"errors"
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// Size is the number of entries in a hardware palette
const Size = 16

// ErrSize is returned by operations that require exactly Size colors
var ErrSize = errors.New("palette: need exactly 16 colors")

// Color is an 8 bits per channel RGB color. It implements the color.Color
// interface and is always fully opaque.
type Color struct {
	R, G, B uint8
}

// Black is the color used for padding
var Black = Color{}

// RGBA implements color.Color
func (c Color) RGBA() (r, g, b, a uint32) {
	r = uint32(c.R)
	r |= r << 8
	g = uint32(c.G)
	g |= g << 8
	b = uint32(c.B)
	b |= b << 8
	a = 0xffff
	return
}

// String returns the color as six lowercase hex digits, "rrggbb"
func (c Color) String() string {
	return fmt.Sprintf("%02x%02x%02x", c.R, c.G, c.B)
}

// Model converts any color.Color to a Color, discarding alpha
var Model = color.ModelFunc(func(c color.Color) color.Color {
	if rgb, ok := c.(Color); ok {
		return rgb
	}
	r, g, b, _ := c.RGBA()
	return Color{uint8(r >> 8), uint8(g >> 8), uint8(b >> 8)}
})

// Palette is an ordered list of colors
type Palette []Color

// Normalize returns a copy of p that is exactly Size colors long. Short
// palettes are padded with black, long ones are truncated.
func Normalize(p Palette) Palette {
	n := make(Palette, Size)
	copy(n, p)
	return n
}

// Rearrange returns a copy of p with entries 2 & 4, 3 & 5, 10 & 12, and 11 &
// 13 swapped. This corrects the palette layout used by some arcade boards and
// is its own inverse.
func Rearrange(p Palette) (Palette, error) {
	if len(p) != Size {
		return nil, ErrSize
	}
	n := append(p[:0:0], p...)
	for _, s := range [][2]int{{2, 4}, {3, 5}, {10, 12}, {11, 13}} {
		n[s[0]], n[s[1]] = n[s[1]], n[s[0]]
	}
	return n, nil
}

// Convert returns p as a color.Palette
func (p Palette) Convert() color.Palette {
	cp := make(color.Palette, len(p))
	for i, c := range p {
		cp[i] = c
	}
	return cp
}

// FromColorPalette converts each color in cp using Model
func FromColorPalette(cp color.Palette) Palette {
	p := make(Palette, len(cp))
	for i, c := range cp {
		p[i] = Model.Convert(c).(Color)
	}
	return p
}

func isHex(s string) bool {
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9', r >= 'a' && r <= 'f', r >= 'A' && r <= 'F':
		default:
			return false
		}
	}
	return true
}

// IsHex reports whether s is exactly n hex digits
func IsHex(s string, n int) bool {
	return len(s) == n && isHex(s)
}

// ParseColor parses six hex digits, in either case, as a Color
func ParseColor(s string) (Color, error) {
	if !IsHex(s, 6) {
		return Color{}, fmt.Errorf("palette: invalid color %q", s)
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return Color{}, err
	}
	return Color{uint8(v >> 16), uint8(v >> 8), uint8(v)}, nil
}

// Parse parses RGB24 text. If the text contains a newline then each non-blank
// line must hold exactly one color, otherwise colors are separated by any
// whitespace. Anything that is not six hex digits is skipped so empty input
// yields an empty palette.
func Parse(s string) Palette {
	s = strings.TrimSpace(s)

	var tokens []string
	if strings.Contains(s, "\n") {
		for _, line := range strings.Split(s, "\n") {
			if line = strings.TrimSpace(line); line != "" {
				tokens = append(tokens, line)
			}
		}
	} else {
		tokens = strings.Fields(s)
	}

	p := make(Palette, 0, len(tokens))
	for _, t := range tokens {
		c, err := ParseColor(t)
		if err != nil {
			continue
		}
		p = append(p, c)
	}
	return p
}

// Format returns p as RGB24 text, one color per line
func Format(p Palette) string {
	s := make([]string, len(p))
	for i, c := range p {
		s[i] = c.String()
	}
	return strings.Join(s, "\n")
}
