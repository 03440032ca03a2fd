/*
Package cram implements the Sega Genesis / Mega Drive color RAM palette
encoding along with the 3 hex digit BGR and RGB shorthands commonly used to
write CRAM values by hand.

Each CRAM entry is a big-endian 16-bit word with 3 bits per channel, packed as
0000BBB0GGG0RRR0. The 3-bit levels are scaled to 8 bits with 255/7 so the only
representable channel values are 0, 36, 73, 109, 146, 182, 219 and 255.
*/
package cram

import (
	"encoding/binary"
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode"

	"github.com/bodgit/palconv/palette"
)

const (
	redShift   = 1
	greenShift = 5
	blueShift  = 9
	mask       = 0x7

	// WordSize is the number of bytes per CRAM entry
	WordSize = 2
)

const step = 255.0 / 7

var levels = [8]uint8{0x00, 0x24, 0x49, 0x6d, 0x92, 0xb6, 0xdb, 0xff}

// Expand scales a 3-bit value to 8 bits
func Expand(n uint8) uint8 {
	return levels[n&mask]
}

// Reduce scales an 8-bit value to the nearest 3-bit value
func Reduce(v uint8) uint8 {
	return uint8(math.Min(mask, math.Round(float64(v)/step)))
}

// Decode returns the color held in a CRAM word. Unused bits are ignored.
func Decode(w uint16) palette.Color {
	return palette.Color{
		R: Expand(uint8(w >> redShift & mask)),
		G: Expand(uint8(w >> greenShift & mask)),
		B: Expand(uint8(w >> blueShift & mask)),
	}
}

// Encode returns c as a CRAM word
func Encode(c palette.Color) uint16 {
	return uint16(Reduce(c.B))<<blueShift | uint16(Reduce(c.G))<<greenShift | uint16(Reduce(c.R))<<redShift
}

func stripSpace(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
}

// Parse parses CRAM words written as hex bytes, most significant byte first.
// All whitespace is ignored so "0666", "06 66" and "066 6" are equivalent. A
// word containing anything other than hex digits is skipped, as is any
// trailing incomplete word.
func Parse(s string) palette.Palette {
	s = stripSpace(s)

	const digits = WordSize << 1

	p := make(palette.Palette, 0, len(s)/digits)
	for i := 0; i+digits <= len(s); i += digits {
		word := s[i : i+digits]
		if !palette.IsHex(word, digits) {
			continue
		}
		v, err := strconv.ParseUint(word, 16, 16)
		if err != nil {
			continue
		}
		p = append(p, Decode(uint16(v)))
	}
	return p
}

// Format returns p as space-separated hex bytes, "06 66 00 00"
func Format(p palette.Palette) string {
	b := Marshal(p)
	s := make([]string, len(b))
	for i, v := range b {
		s[i] = fmt.Sprintf("%02X", v)
	}
	return strings.Join(s, " ")
}

// Marshal returns p as raw CRAM words, most significant byte first, as they
// would be copied into VDP color RAM
func Marshal(p palette.Palette) []byte {
	b := make([]byte, len(p)*WordSize)
	for i, c := range p {
		binary.BigEndian.PutUint16(b[i*WordSize:], Encode(c))
	}
	return b
}

// Unmarshal decodes raw CRAM words. Any trailing odd byte is ignored.
func Unmarshal(b []byte) palette.Palette {
	p := make(palette.Palette, 0, len(b)/WordSize)
	for i := 0; i+WordSize <= len(b); i += WordSize {
		p = append(p, Decode(binary.BigEndian.Uint16(b[i:])))
	}
	return p
}
