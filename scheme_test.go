package palconv

import (
	"errors"
	"testing"

	"github.com/bodgit/palconv/palette"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseScheme(t *testing.T) {
	tables := []struct {
		name   string
		scheme Scheme
	}{
		{"rgb24", RGB24},
		{"RGB", RGB24},
		{"arcade", Arcade},
		{"ghouls", Arcade},
		{" Goblins ", ArcadeSplit},
		{"arcade-split", ArcadeSplit},
		{"genesis", CRAM},
		{"CRAM", CRAM},
		{"bgr32", BGR32},
		{"rgb32", RGB32},
	}

	for _, table := range tables {
		s, err := ParseScheme(table.name)
		require.NoError(t, err, table.name)
		assert.Equal(t, table.scheme, s, table.name)
	}

	_, err := ParseScheme("nes")
	assert.True(t, errors.Is(err, ErrScheme))
}

func TestSchemeString(t *testing.T) {
	for _, s := range Schemes() {
		p, err := ParseScheme(s.String())
		require.NoError(t, err)
		assert.Equal(t, s, p)
	}
	assert.Equal(t, "Scheme(42)", Scheme(42).String())
}

func TestEncodeAll(t *testing.T) {
	p := palette.Parse(Examples[RGB24].Data)

	m := EncodeAll(p)
	assert.Len(t, m, len(Schemes()))
	for _, s := range []Scheme{CRAM, BGR32, RGB32} {
		assert.Equal(t, Examples[s], m[s], s.String())
	}
	assert.NotEmpty(t, m[ArcadeSplit].Aux)

	_, err := Decode(Scheme(-1), EncodedBuffer{})
	assert.True(t, errors.Is(err, ErrScheme))
}
