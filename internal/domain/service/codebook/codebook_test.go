package codebook_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"bankocr/internal/domain/entity"
	"bankocr/internal/domain/service/codebook"
	"bankocr/internal/domain/value"
)

func TestCodebookDigit(t *testing.T) {
	rq := require.New(t)

	cb := codebook.Standard()
	rq.Equal(10, cb.Len())

	testCases := []struct {
		name  string
		glyph value.GlyphKey
		digit byte
	}{
		{name: "Zero", glyph: " _ | ||_|", digit: '0'},
		{name: "One", glyph: "     |  |", digit: '1'},
		{name: "Two", glyph: " _  _||_ ", digit: '2'},
		{name: "Three", glyph: " _  _| _|", digit: '3'},
		{name: "Four", glyph: "   |_|  |", digit: '4'},
		{name: "Five", glyph: " _ |_  _|", digit: '5'},
		{name: "Six", glyph: " _ |_ |_|", digit: '6'},
		{name: "Seven", glyph: " _   |  |", digit: '7'},
		{name: "Eight", glyph: " _ |_||_|", digit: '8'},
		{name: "Nine", glyph: " _ |_| _|", digit: '9'},
		{name: "Blank", glyph: "         ", digit: entity.IllegibleDigit},
		{name: "Broken eight", glyph: " _ |_|| |", digit: entity.IllegibleDigit},
		{name: "Short key", glyph: " _ ", digit: entity.IllegibleDigit},
		{name: "Empty key", glyph: "", digit: entity.IllegibleDigit},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(*testing.T) {
			rq.Equal(tc.digit, cb.Digit(tc.glyph))
		})
	}
}

func TestCodebookGlyphIsInverse(t *testing.T) {
	rq := require.New(t)

	cb := codebook.Standard()

	for d := byte('0'); d <= '9'; d++ {
		glyph, ok := cb.Glyph(d)
		rq.True(ok, "digit %c", d)
		rq.Len(glyph.String(), value.GlyphSize)
		rq.Equal(d, cb.Digit(glyph))
	}

	_, ok := cb.Glyph(entity.IllegibleDigit)
	rq.False(ok)
}

func TestNewCopiesTable(t *testing.T) {
	rq := require.New(t)

	table := map[value.GlyphKey]byte{"     |  |": '1'}
	cb := codebook.New(table)

	table["     |  |"] = '7'
	table[" _   |  |"] = '7'

	rq.Equal(byte('1'), cb.Digit("     |  |"))
	rq.Equal(byte(entity.IllegibleDigit), cb.Digit(" _   |  |"))
}
