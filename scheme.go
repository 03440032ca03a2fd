package palconv

import (
	"errors"
	"fmt"
	"strings"

	"github.com/bodgit/palconv/arcade"
	"github.com/bodgit/palconv/cram"
	"github.com/bodgit/palconv/palette"
)

// Scheme identifies one of the supported palette encodings
type Scheme int

const (
	// RGB24 is six hex digits per color, "rrggbb"
	RGB24 Scheme = iota
	// Arcade is interleaved 4 bits per channel byte pairs, "Fr gb"
	Arcade
	// ArcadeSplit is 4 bits per channel split into an RG byte stream and a
	// B byte stream
	ArcadeSplit
	// CRAM is Genesis color RAM words, 3 bits per channel
	CRAM
	// BGR32 is three hex digits per color in blue, green, red order
	BGR32
	// RGB32 is three hex digits per color in red, green, blue order
	RGB32
)

var schemeNames = []string{
	RGB24:       "rgb24",
	Arcade:      "arcade",
	ArcadeSplit: "arcade-split",
	CRAM:        "cram",
	BGR32:       "bgr32",
	RGB32:       "rgb32",
}

var schemeAliases = map[string]Scheme{
	"rgb":     RGB24,
	"ghouls":  Arcade,
	"goblins": ArcadeSplit,
	"genesis": CRAM,
}

// ErrScheme is returned for an unrecognised scheme
var ErrScheme = errors.New("palconv: unknown scheme")

func (s Scheme) String() string {
	if s >= 0 && int(s) < len(schemeNames) {
		return schemeNames[s]
	}
	return fmt.Sprintf("Scheme(%d)", int(s))
}

// Schemes returns every supported scheme
func Schemes() []Scheme {
	s := make([]Scheme, len(schemeNames))
	for i := range s {
		s[i] = Scheme(i)
	}
	return s
}

// ParseScheme returns the scheme with the given name, ignoring case
func ParseScheme(name string) (Scheme, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for i, n := range schemeNames {
		if n == name {
			return Scheme(i), nil
		}
	}
	if s, ok := schemeAliases[name]; ok {
		return s, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrScheme, name)
}

// EncodedBuffer is a palette in the textual form of one scheme. Aux holds the
// B byte stream for ArcadeSplit and is empty otherwise.
type EncodedBuffer struct {
	Data string
	Aux  string
}

// Decode parses buf according to s. Malformed tokens are skipped so the
// returned palette may be empty; no padding or truncation takes place.
func Decode(s Scheme, buf EncodedBuffer) (palette.Palette, error) {
	switch s {
	case RGB24:
		return palette.Parse(buf.Data), nil
	case Arcade:
		return arcade.Parse(buf.Data), nil
	case ArcadeSplit:
		return arcade.ParseSplit(buf.Data, buf.Aux), nil
	case CRAM:
		return cram.Parse(buf.Data), nil
	case BGR32:
		return cram.ParseShort(buf.Data, cram.BGR), nil
	case RGB32:
		return cram.ParseShort(buf.Data, cram.RGB), nil
	}
	return nil, fmt.Errorf("%w: %v", ErrScheme, s)
}

// Encode formats p according to s
func Encode(s Scheme, p palette.Palette) (EncodedBuffer, error) {
	switch s {
	case RGB24:
		return EncodedBuffer{Data: palette.Format(p)}, nil
	case Arcade:
		return EncodedBuffer{Data: arcade.Format(p)}, nil
	case ArcadeSplit:
		rg, b := arcade.FormatSplit(p)
		return EncodedBuffer{Data: rg, Aux: b}, nil
	case CRAM:
		return EncodedBuffer{Data: cram.Format(p)}, nil
	case BGR32:
		return EncodedBuffer{Data: cram.FormatShort(p, cram.BGR)}, nil
	case RGB32:
		return EncodedBuffer{Data: cram.FormatShort(p, cram.RGB)}, nil
	}
	return EncodedBuffer{}, fmt.Errorf("%w: %v", ErrScheme, s)
}

// EncodeAll formats p in every scheme
func EncodeAll(p palette.Palette) map[Scheme]EncodedBuffer {
	m := make(map[Scheme]EncodedBuffer, len(schemeNames))
	for _, s := range Schemes() {
		m[s], _ = Encode(s, p)
	}
	return m
}

func isShorthand(s Scheme) bool {
	return s == BGR32 || s == RGB32
}
