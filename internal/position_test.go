package internal

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParsePosition(t *testing.T) {
	tests := map[string]Position{
		"A1":    {Row: 0, Col: 0},
		"B12":   {Row: 11, Col: 1},
		"Z25":   {Row: 24, Col: 25},
		"AA1":   {Row: 0, Col: 26},
		"AB27":  {Row: 26, Col: 27},
		"XFD1":  {Row: 0, Col: 16383},
		"XFD16384": {Row: 16383, Col: 16383},
	}
	for in, want := range tests {
		t.Run(in, func(t *testing.T) {
			got, err := ParsePosition(in)
			assert.NoError(t, err)
			assert.Equal(t, want, got)
		})
	}
}

func TestParsePosition_invalidSyntax(t *testing.T) {
	for _, in := range []string{"", "1A", "a1", "A", "1", "A0", "A01", "A-1", "A1B2"} {
		t.Run(in, func(t *testing.T) {
			_, err := ParsePosition(in)
			assert.ErrorIs(t, err, ErrInvalidPosition)
		})
	}
}

func TestParsePosition_outOfRangeStillParses(t *testing.T) {
	// XFE is one column past the last valid column; it parses successfully
	// but decodes to an out-of-range Position (S7).
	pos, err := ParsePosition("XFE1")
	assert.NoError(t, err)
	assert.False(t, pos.IsValid())
	assert.Equal(t, 16384, pos.Col)
}

func TestPosition_String(t *testing.T) {
	tests := map[Position]string{
		{Row: 0, Col: 0}:      "A1",
		{Row: 11, Col: 1}:     "B12",
		{Row: 0, Col: 26}:     "AA1",
		{Row: 26, Col: 27}:    "AB27",
		{Row: 0, Col: 16383}:  "XFD1",
	}
	for pos, want := range tests {
		assert.Equal(t, want, pos.String())
	}
}

func TestPosition_roundTrip(t *testing.T) {
	for _, s := range []string{"A1", "Z1", "AA1", "AZ99", "XFD16384"} {
		pos, err := ParsePosition(s)
		assert.NoError(t, err)
		assert.Equal(t, s, pos.String())
	}
}

func TestPosition_IsValid(t *testing.T) {
	assert.True(t, Position{Row: 0, Col: 0}.IsValid())
	assert.True(t, Position{Row: 16383, Col: 16383}.IsValid())
	assert.False(t, Position{Row: 16384, Col: 0}.IsValid())
	assert.False(t, Position{Row: 0, Col: 16384}.IsValid())
	assert.False(t, Position{Row: -1, Col: 0}.IsValid())
	assert.False(t, NoPosition.IsValid())
}

func TestParsePosition_errorIsWrapped(t *testing.T) {
	_, err := ParsePosition("not a position")
	var target error = ErrInvalidPosition
	assert.True(t, errors.Is(err, target))
}
