/*
Package palconv is a library for converting retro video hardware palettes
between their native encodings and the Tile Layer Pro palette file format.

The codecs themselves live in the arcade, cram and tpl packages and are pure
functions; a Converter wraps them with logging, input validation and the file
handling needed by the palconv command.
*/
package palconv

import (
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/bodgit/palconv/cram"
	"github.com/bodgit/palconv/palette"
)

// ErrNoColors is returned when an operation finds no valid colors at all in
// its input
var ErrNoColors = errors.New("palconv: no valid palette data, enter valid palette data first")

// Options controls conversion behaviour
type Options struct {
	// NormalizeToSixteen pads or truncates the result of a conversion to
	// exactly sixteen colors. Exports and rearrangement always do this.
	NormalizeToSixteen bool
}

// Converter converts palettes between schemes
type Converter struct {
	logger  *log.Logger
	options Options
}

// New returns a Converter that logs to logger
func New(logger *log.Logger, options Options) *Converter {
	return &Converter{
		logger:  logger,
		options: options,
	}
}

func (c *Converter) logPalette(s Scheme, p palette.Palette) {
	for i, col := range p {
		c.logger.Printf("%s: color %d -> #%s\n", s, i, col)
	}
}

// Parse decodes buf according to s. ErrNoColors is returned if nothing in
// buf is valid.
func (c *Converter) Parse(s Scheme, buf EncodedBuffer) (palette.Palette, error) {
	p, err := Decode(s, buf)
	if err != nil {
		return nil, err
	}
	if len(p) == 0 {
		return nil, ErrNoColors
	}
	c.logPalette(s, p)
	return p, nil
}

// Palette decodes buf according to s and applies the NormalizeToSixteen
// option
func (c *Converter) Palette(s Scheme, buf EncodedBuffer) (palette.Palette, error) {
	p, err := c.Parse(s, buf)
	if err != nil {
		return nil, err
	}
	if c.options.NormalizeToSixteen {
		p = palette.Normalize(p)
	}
	return p, nil
}

// Convert decodes buf from one scheme and encodes it in another. Converting
// between BGR32 and RGB32 only reorders the digits.
func (c *Converter) Convert(from, to Scheme, buf EncodedBuffer) (EncodedBuffer, error) {
	if isShorthand(from) && isShorthand(to) && from != to {
		return c.swap(buf)
	}

	p, err := c.Palette(from, buf)
	if err != nil {
		return EncodedBuffer{}, err
	}

	out, err := Encode(to, p)
	if err != nil {
		return EncodedBuffer{}, err
	}
	c.logger.Printf("Converted %d colors from %s to %s\n", len(p), from, to)
	return out, nil
}

func (c *Converter) swap(buf EncodedBuffer) (EncodedBuffer, error) {
	tokens := strings.Fields(cram.Swap(buf.Data))
	if len(tokens) == 0 {
		return EncodedBuffer{}, ErrNoColors
	}
	if c.options.NormalizeToSixteen {
		for len(tokens) < palette.Size {
			tokens = append(tokens, "000")
		}
		tokens = tokens[:palette.Size]
	}
	c.logger.Printf("Swapped %d colors\n", len(tokens))
	return EncodedBuffer{Data: strings.Join(tokens, " ")}, nil
}

// Rearrange applies palette.Rearrange to buf, padding it to sixteen colors
// first, and returns the result in the same scheme
func (c *Converter) Rearrange(s Scheme, buf EncodedBuffer) (EncodedBuffer, error) {
	p, err := c.Parse(s, buf)
	if err != nil {
		return EncodedBuffer{}, err
	}

	r, err := palette.Rearrange(palette.Normalize(p))
	if err != nil {
		return EncodedBuffer{}, err
	}
	c.logPalette(s, r)

	out, err := Encode(s, r)
	if err != nil {
		return EncodedBuffer{}, fmt.Errorf("rearrange: %w", err)
	}
	return out, nil
}
