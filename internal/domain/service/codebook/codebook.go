package codebook

import (
	"bankocr/internal/domain/entity"
	"bankocr/internal/domain/value"
)

// Таблица глифов. Ключ склеен из трёх строк цифры.
//
//nolint:gochecknoglobals
var standardGlyphs = map[value.GlyphKey]byte{
	" _ | ||_|": '0',
	"     |  |": '1',
	" _  _||_ ": '2',
	" _  _| _|": '3',
	"   |_|  |": '4',
	" _ |_  _|": '5',
	" _ |_ |_|": '6',
	" _   |  |": '7',
	" _ |_||_|": '8',
	" _ |_| _|": '9',
}

//nolint:gochecknoglobals
var standard = New(standardGlyphs)

// Codebook хранит неизменяемое отображение глиф <-> цифра в обе стороны.
type Codebook struct {
	digits map[value.GlyphKey]byte
	glyphs map[byte]value.GlyphKey
}

// New копирует таблицу, так что дальнейшие изменения исходной карты
// на кодовую книгу не влияют.
func New(table map[value.GlyphKey]byte) *Codebook {
	cb := &Codebook{
		digits: make(map[value.GlyphKey]byte, len(table)),
		glyphs: make(map[byte]value.GlyphKey, len(table)),
	}

	for glyph, digit := range table {
		cb.digits[glyph] = digit
		cb.glyphs[digit] = glyph
	}

	return cb
}

// Standard возвращает общую кодовую книгу из 10 цифр.
func Standard() *Codebook {
	return standard
}

// Digit возвращает цифру для глифа или '?', если глиф неизвестен.
func (c *Codebook) Digit(key value.GlyphKey) byte {
	if d, ok := c.digits[key]; ok {
		return d
	}
	return entity.IllegibleDigit
}

// Glyph ищет глиф по цифре.
func (c *Codebook) Glyph(digit byte) (value.GlyphKey, bool) {
	g, ok := c.glyphs[digit]
	return g, ok
}

func (c *Codebook) Len() int {
	return len(c.digits)
}
