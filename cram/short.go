package cram

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/bodgit/palconv/palette"
)

// Order is the digit order of a 3 hex digit shorthand color
type Order int

const (
	// BGR is blue, green then red, matching the layout of a CRAM word
	BGR Order = iota
	// RGB is red, green then blue
	RGB
)

func (o Order) String() string {
	switch o {
	case BGR:
		return "BGR32"
	case RGB:
		return "RGB32"
	}
	return fmt.Sprintf("Order(%d)", int(o))
}

const shortDigits = 3

// DecodeShort returns the color held in three 4-bit digits given in the
// order o. Each digit loses its least significant bit before being scaled so
// odd digits decode the same as the even digit below them.
func DecodeShort(d [shortDigits]uint8, o Order) palette.Color {
	if o == BGR {
		d[0], d[2] = d[2], d[0]
	}
	return palette.Color{
		R: Expand(d[0] & 0xf >> 1),
		G: Expand(d[1] & 0xf >> 1),
		B: Expand(d[2] & 0xf >> 1),
	}
}

// EncodeShort returns c as three 4-bit digits in the order o. Digits are
// always even.
func EncodeShort(c palette.Color, o Order) [shortDigits]uint8 {
	d := [shortDigits]uint8{Reduce(c.R) << 1, Reduce(c.G) << 1, Reduce(c.B) << 1}
	if o == BGR {
		d[0], d[2] = d[2], d[0]
	}
	return d
}

func parseShort(s string) ([shortDigits]uint8, bool) {
	var d [shortDigits]uint8
	if !palette.IsHex(s, shortDigits) {
		return d, false
	}
	for i := range d {
		v, err := strconv.ParseUint(s[i:i+1], 16, 8)
		if err != nil {
			return d, false
		}
		d[i] = uint8(v)
	}
	return d, true
}

// ParseShort parses whitespace-separated 3 hex digit colors in the order o.
// Malformed tokens are skipped.
func ParseShort(s string, o Order) palette.Palette {
	tokens := strings.Fields(s)
	p := make(palette.Palette, 0, len(tokens))
	for _, t := range tokens {
		d, ok := parseShort(t)
		if !ok {
			continue
		}
		p = append(p, DecodeShort(d, o))
	}
	return p
}

// FormatShort returns p as space-separated 3 hex digit colors in the order o
func FormatShort(p palette.Palette, o Order) string {
	s := make([]string, len(p))
	for i, c := range p {
		d := EncodeShort(c, o)
		s[i] = fmt.Sprintf("%X%X%X", d[0], d[1], d[2])
	}
	return strings.Join(s, " ")
}

// Swap converts between BGR and RGB shorthand by exchanging the first and
// last digit of each token. No other conversion takes place so the digits,
// including their case, are kept as written. Malformed tokens are dropped.
func Swap(s string) string {
	tokens := strings.Fields(s)
	out := make([]string, 0, len(tokens))
	for _, t := range tokens {
		if !palette.IsHex(t, shortDigits) {
			continue
		}
		out = append(out, string([]byte{t[2], t[1], t[0]}))
	}
	return strings.Join(out, " ")
}
