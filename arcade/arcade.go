/*
Package arcade implements the 4 bits per channel palette encodings used by
Capcom arcade boards of the mid 1980s.

Two layouts are supported. The interleaved layout stores each color as a pair
of bytes, "Fr gb", where the high nibble of the first byte holds flags and the
remaining three nibbles hold red, green and blue. The split layout stores the
palette as two separate byte streams; one "RG" byte per color holding red and
green, and one "B0" byte per color where only the high nibble, blue, is used.
*/
package arcade

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/bodgit/palconv/palette"
)

const (
	// Flags is written to the upper nibble of the first byte of each
	// interleaved pair
	Flags = 0xf

	scale = 0xff / 0xf
)

func upperNibble(b byte) byte {
	return b >> 4
}

func lowerNibble(b byte) byte {
	return b & 0x0f
}

// Expand scales a 4-bit value to 8 bits
func Expand(n uint8) uint8 {
	return n & 0x0f * scale
}

// Reduce scales an 8-bit value to the nearest 4-bit value
func Reduce(v uint8) uint8 {
	return uint8((uint(v) + scale/2) / scale)
}

func parseByte(s string) (byte, bool) {
	if !palette.IsHex(s, 2) {
		return 0, false
	}
	v, err := strconv.ParseUint(s, 16, 8)
	if err != nil {
		return 0, false
	}
	return byte(v), true
}

func formatBytes(b []byte) string {
	s := make([]string, len(b))
	for i, v := range b {
		s[i] = fmt.Sprintf("%02X", v)
	}
	return strings.Join(s, " ")
}

// DecodePair returns the color held in an interleaved byte pair. The flag
// nibble is ignored.
func DecodePair(b1, b2 byte) palette.Color {
	return palette.Color{
		R: Expand(lowerNibble(b1)),
		G: Expand(upperNibble(b2)),
		B: Expand(lowerNibble(b2)),
	}
}

// EncodePair returns c as an interleaved byte pair with the flag nibble set
func EncodePair(c palette.Color) (byte, byte) {
	return Flags<<4 | Reduce(c.R), Reduce(c.G)<<4 | Reduce(c.B)
}

// Parse parses whitespace-separated hex bytes as interleaved pairs. A pair
// where either byte is malformed is skipped, as is any trailing odd byte.
func Parse(s string) palette.Palette {
	tokens := strings.Fields(s)
	p := make(palette.Palette, 0, len(tokens)>>1)
	for i := 0; i+1 < len(tokens); i += 2 {
		b1, ok1 := parseByte(tokens[i])
		b2, ok2 := parseByte(tokens[i+1])
		if !ok1 || !ok2 {
			continue
		}
		p = append(p, DecodePair(b1, b2))
	}
	return p
}

// Format returns p as space-separated interleaved byte pairs, "F1 11 F0 6B"
func Format(p palette.Palette) string {
	b := make([]byte, 0, len(p)<<1)
	for _, c := range p {
		b1, b2 := EncodePair(c)
		b = append(b, b1, b2)
	}
	return formatBytes(b)
}

// duplicate forms an 8-bit value by repeating a single hex digit, so 0xa
// becomes 0xaa
func duplicate(n uint8) uint8 {
	return n&0x0f<<4 | n&0x0f
}

// DecodeSplit returns the color held in an RG byte and its companion B byte.
// The lower nibble of the B byte is ignored.
func DecodeSplit(rg, b byte) palette.Color {
	return palette.Color{
		R: duplicate(upperNibble(rg)),
		G: duplicate(lowerNibble(rg)),
		B: duplicate(upperNibble(b)),
	}
}

// EncodeSplit returns c as an RG byte and a B byte. Each channel keeps only
// its leading hex digit; no rounding takes place.
func EncodeSplit(c palette.Color) (byte, byte) {
	return c.R&0xf0 | c.G>>4, c.B & 0xf0
}

// ParseSplit parses the two whitespace-separated streams of the split layout.
// The streams are read in step until both are exhausted; a missing byte in
// either stream reads as zero. An entry is skipped if its RG byte is
// malformed, whereas a malformed B byte is treated as zero.
func ParseSplit(rgs, bs string) palette.Palette {
	rgTokens, bTokens := strings.Fields(rgs), strings.Fields(bs)

	n := len(rgTokens)
	if len(bTokens) > n {
		n = len(bTokens)
	}

	p := make(palette.Palette, 0, n)
	for i := 0; i < n; i++ {
		var rg, b byte
		ok := true
		if i < len(rgTokens) {
			rg, ok = parseByte(rgTokens[i])
		}
		if !ok {
			continue
		}
		if i < len(bTokens) {
			b, _ = parseByte(bTokens[i])
		}
		p = append(p, DecodeSplit(rg, b))
	}
	return p
}

// FormatSplit returns p as the RG and B streams of the split layout
func FormatSplit(p palette.Palette) (string, string) {
	rg := make([]byte, len(p))
	b := make([]byte, len(p))
	for i, c := range p {
		rg[i], b[i] = EncodeSplit(c)
	}
	return formatBytes(rg), formatBytes(b)
}
