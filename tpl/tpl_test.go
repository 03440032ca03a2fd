package tpl

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/bodgit/palconv/palette"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ramp() palette.Palette {
	p := make(palette.Palette, palette.Size)
	for i := range p {
		v := uint8(i * 17)
		p[i] = palette.Color{R: v, G: 0xff - v, B: uint8(i)}
	}
	return p
}

func TestMarshal(t *testing.T) {
	b := Marshal(ramp())
	require.Len(t, b, Size)
	assert.Equal(t, []byte{0x54, 0x50, 0x4c, 0x00}, b[:4])
	assert.Equal(t, []byte{0x00, 0xff, 0x00, 0x11, 0xee, 0x01}, b[4:10])
	assert.Equal(t, []byte{0xff, 0x00, 0x0f}, b[49:])
}

func TestMarshalSize(t *testing.T) {
	empty := Marshal(nil)
	require.Len(t, empty, Size)
	assert.Equal(t, make([]byte, Size-4), empty[4:])

	short := Marshal(palette.Palette{{R: 1, G: 2, B: 3}})
	require.Len(t, short, Size)
	assert.Equal(t, []byte{1, 2, 3, 0, 0, 0}, short[4:10])

	long := Marshal(append(ramp(), palette.Color{R: 0xaa, G: 0xbb, B: 0xcc}))
	assert.Equal(t, Marshal(ramp()), long)
}

func TestRoundTrip(t *testing.T) {
	p, err := Unmarshal(Marshal(ramp()))
	require.NoError(t, err)
	assert.Equal(t, ramp(), p)

	var tp Palette
	b, err := New(ramp()).MarshalBinary()
	require.NoError(t, err)
	require.NoError(t, tp.UnmarshalBinary(b))
	assert.Equal(t, ramp(), tp.Colors())
}

func TestUnmarshalErrors(t *testing.T) {
	valid := Marshal(ramp())

	tables := []struct {
		name  string
		input []byte
		err   error
	}{
		{"empty", nil, ErrBadMagic},
		{"short header", []byte("TP"), ErrBadMagic},
		{"wrong magic", append([]byte("ABCD"), valid[4:]...), ErrBadMagic},
		{"no terminator", append([]byte("TPLX"), valid[4:]...), ErrBadMagic},
		{"header only", valid[:4], ErrNotEnough},
		{"truncated", valid[:Size-1], ErrNotEnough},
	}

	for _, table := range tables {
		t.Run(table.name, func(t *testing.T) {
			p, err := Unmarshal(table.input)
			assert.Nil(t, p)
			assert.Equal(t, table.err, err)

			p, err = Decode(bytes.NewReader(table.input))
			assert.Nil(t, p)
			assert.Equal(t, table.err, err)

			var fe FormatError
			assert.True(t, errors.As(err, &fe))
		})
	}
}

func TestTrailingBytesIgnored(t *testing.T) {
	b := append(Marshal(ramp()), 0xde, 0xad, 0xbe, 0xef)

	p, err := Unmarshal(b)
	require.NoError(t, err)
	assert.Equal(t, ramp(), p)

	r := bytes.NewReader(b)
	p, err = Decode(r)
	require.NoError(t, err)
	assert.Equal(t, ramp(), p)
	assert.Equal(t, 4, r.Len())
}

type errReader struct{}

var errRead = errors.New("read failed")

func (errReader) Read([]byte) (int, error) { return 0, errRead }

func TestDecodeReadError(t *testing.T) {
	_, err := Decode(errReader{})
	assert.Equal(t, errRead, err)
}

func TestEncode(t *testing.T) {
	var b bytes.Buffer
	require.NoError(t, Encode(&b, ramp()))
	assert.Equal(t, Marshal(ramp()), b.Bytes())
}

func TestFormatError(t *testing.T) {
	assert.Equal(t, "tpl: invalid format: bad magic", ErrBadMagic.Error())
}

func TestWriteText(t *testing.T) {
	var b strings.Builder
	require.NoError(t, WriteText(&b, palette.Palette{{R: 0x6d, G: 0x6d, B: 0x6d}, {R: 0x00, G: 0x66, B: 0xbb}}))
	assert.Equal(t, "TPL v1.0\n16\n0 109 109 109\n1 0 102 187\n", b.String())
}

func TestFilename(t *testing.T) {
	assert.Equal(t, "palette_1700000000123.tpl", Filename(time.Unix(1700000000, 123456789)))
	assert.True(t, ValidFilename(Filename(time.Now())))
}

func TestValidFilename(t *testing.T) {
	for _, name := range []string{"a.tpl", "A.TPL", "dir/x.Tpl", ".tpl"} {
		assert.True(t, ValidFilename(name), name)
	}
	for _, name := range []string{"", "a.tp", "a.tpl.bak", "atpl", "a.pal"} {
		assert.False(t, ValidFilename(name), name)
	}
}
