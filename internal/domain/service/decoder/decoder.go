package decoder

import (
	"fmt"
	"strings"

	"bankocr/internal/domain"
	"bankocr/internal/domain/entity"
	"bankocr/internal/domain/value"
	"bankocr/pkg/errcodes"
	"bankocr/pkg/lox"
)

type Codebook interface {
	Digit(key value.GlyphKey) byte
}

// Decoder переводит блок глифов в номер счёта.
type Decoder struct {
	codebook Codebook
}

func New(codebook Codebook) *Decoder {
	return &Decoder{codebook: codebook}
}

// Decode режет блок на 9 глифов и ищет каждый в кодовой книге.
// Неизвестный глиф даёт '?', это не ошибка.
func (d *Decoder) Decode(block value.GlyphBlock) (entity.Account, error) {
	if block == "" {
		return entity.Account{}, domain.NewError(errcodes.EmptyInput, "glyph block must be provided")
	}

	if len(block) != value.BlockLength {
		return entity.Account{}, domain.NewError(
			errcodes.InvalidBlockLength,
			fmt.Sprintf("glyph block length is %d, expected %d", len(block), value.BlockLength),
		)
	}

	var number strings.Builder

	number.Grow(value.DigitsPerAccount)
	glyphs := make([]value.GlyphKey, 0, value.DigitsPerAccount)

	for x := range value.DigitsPerAccount {
		glyph := glyphAt(block, x)
		glyphs = append(glyphs, glyph)
		number.WriteByte(d.codebook.Digit(glyph))
	}

	return entity.Account{
		Number: number.String(),
		Glyphs: glyphs,
	}, nil
}

// DecodeAll останавливается на первом некорректном блоке.
func (d *Decoder) DecodeAll(blocks []value.GlyphBlock) ([]entity.Account, error) {
	return lox.MapErr(blocks, func(block value.GlyphBlock, i int) (entity.Account, error) {
		account, err := d.Decode(block)
		if err != nil {
			return entity.Account{}, fmt.Errorf("entry %d: %w", i+1, err)
		}
		return account, nil
	})
}

// glyphAt собирает x-й глиф из трёх строк блока: смещения x*3, x*3+27, x*3+54.
func glyphAt(block value.GlyphBlock, x int) value.GlyphKey {
	s := string(block)
	offset := x * value.GlyphWidth

	var key strings.Builder

	key.Grow(value.GlyphSize)

	for row := range value.GlyphHeight {
		start := offset + row*value.RowWidth
		key.WriteString(s[start : start+value.GlyphWidth])
	}

	return value.GlyphKey(key.String())
}
