/*
Package tpl implements the binary palette file format used by the Tile Layer
Pro tile editor.

The file is a four byte header, the ASCII string "TPL" followed by a NUL,
and then sixteen 3 byte entries of red, green and blue. There is no
compression so a file is always 52 bytes; readers ignore anything after that.
*/
package tpl

import (
	"bytes"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/bodgit/palconv/palette"
)

const (
	// Extension is the expected filename extension
	Extension = ".tpl"

	// Version is written to the first line of the text listing
	Version = "TPL v1.0"

	headerSize = 4
	entrySize  = 3

	// Size is the exact size in bytes of an encoded file
	Size = headerSize + palette.Size*entrySize
)

var magic = [headerSize]byte{'T', 'P', 'L', 0x00}

// A FormatError reports that the input is not a valid TPL file
type FormatError string

func (e FormatError) Error() string { return "tpl: invalid format: " + string(e) }

var (
	// ErrBadMagic is returned when the header does not match
	ErrBadMagic = FormatError("bad magic")
	// ErrNotEnough is returned when the input is shorter than Size
	ErrNotEnough = FormatError("not enough palette data")
)

// Palette is a complete TPL palette. It implements the
// encoding.BinaryMarshaler and encoding.BinaryUnmarshaler interfaces.
type Palette [palette.Size]palette.Color

// New returns a TPL palette from p. Missing colors are black and any beyond
// the first sixteen are ignored.
func New(p palette.Palette) *Palette {
	t := new(Palette)
	copy(t[:], p)
	return t
}

// Colors returns the palette as a palette.Palette
func (t *Palette) Colors() palette.Palette {
	return append(palette.Palette(nil), t[:]...)
}

// MarshalBinary encodes the palette into binary form and returns the result
func (t *Palette) MarshalBinary() ([]byte, error) {
	b := make([]byte, 0, Size)
	b = append(b, magic[:]...)
	for _, c := range t {
		b = append(b, c.R, c.G, c.B)
	}
	return b, nil
}

// UnmarshalBinary decodes the palette from binary form
func (t *Palette) UnmarshalBinary(b []byte) error {
	if len(b) < headerSize || !bytes.Equal(b[:headerSize], magic[:]) {
		return ErrBadMagic
	}
	if len(b) < Size {
		return ErrNotEnough
	}
	for i := range t {
		e := b[headerSize+i*entrySize:]
		t[i] = palette.Color{R: e[0], G: e[1], B: e[2]}
	}
	return nil
}

// Marshal returns p encoded as a TPL file
func Marshal(p palette.Palette) []byte {
	b, _ := New(p).MarshalBinary()
	return b
}

// Unmarshal decodes a TPL file and returns the sixteen colors
func Unmarshal(b []byte) (palette.Palette, error) {
	t := new(Palette)
	if err := t.UnmarshalBinary(b); err != nil {
		return nil, err
	}
	return t.Colors(), nil
}

func readFull(r io.Reader, b []byte) error {
	_, err := io.ReadFull(r, b)
	if err == io.EOF {
		err = io.ErrUnexpectedEOF
	}
	return err
}

// Decode reads a TPL file from r. Exactly Size bytes are consumed on
// success.
func Decode(r io.Reader) (palette.Palette, error) {
	var b [Size]byte
	if err := readFull(r, b[:headerSize]); err != nil {
		if err != io.ErrUnexpectedEOF {
			return nil, err
		}
		return nil, ErrBadMagic
	}
	if !bytes.Equal(b[:headerSize], magic[:]) {
		return nil, ErrBadMagic
	}
	if err := readFull(r, b[headerSize:]); err != nil {
		if err != io.ErrUnexpectedEOF {
			return nil, err
		}
		return nil, ErrNotEnough
	}
	return Unmarshal(b[:])
}

// Encode writes p to w as a TPL file
func Encode(w io.Writer, p palette.Palette) error {
	_, err := w.Write(Marshal(p))
	return err
}

// WriteText writes the human readable listing of p shown alongside a TPL
// export; the version, the palette size and then "index red green blue" in
// decimal for each color.
func WriteText(w io.Writer, p palette.Palette) error {
	if _, err := fmt.Fprintf(w, "%s\n%d\n", Version, palette.Size); err != nil {
		return err
	}
	for i, c := range p {
		if _, err := fmt.Fprintf(w, "%d %d %d %d\n", i, c.R, c.G, c.B); err != nil {
			return err
		}
	}
	return nil
}

// Filename returns the default filename for a palette exported at t,
// "palette_<milliseconds since the epoch>.tpl"
func Filename(t time.Time) string {
	return fmt.Sprintf("palette_%d%s", t.UnixNano()/int64(time.Millisecond), Extension)
}

// ValidFilename reports whether name has the TPL extension, ignoring case
func ValidFilename(name string) bool {
	return strings.HasSuffix(strings.ToLower(name), Extension)
}
