package grid

import (
	"fmt"
	"strings"

	"bankocr/internal/domain"
	"bankocr/internal/domain/value"
	"bankocr/pkg/errcodes"
)

// Запись в файле: три строки глифов и пустой разделитель.
const linesPerEntry = value.GlyphHeight + 1

type glyphTable interface {
	Glyph(digit byte) (value.GlyphKey, bool)
}

// Parse собирает строки сетки в блоки по 81 символу, по одному на номер.
// Строки не обрезаются: пробелы в конце значимы. Если вход закончился сразу
// после трёх строк записи, конец входа считается разделителем.
func Parse(lines []string) ([]value.GlyphBlock, error) {
	blocks := make([]value.GlyphBlock, 0, len(lines)/linesPerEntry+1)

	var rows [value.GlyphHeight]string

	entry, row := 1, 0

	for i, line := range lines {
		lineNo := i + 1
		row++

		if row < linesPerEntry {
			if len(line) != value.RowWidth {
				return nil, domain.NewGridError(
					errcodes.MalformedRow,
					fmt.Sprintf("line length is %d, expected %d", len(line), value.RowWidth),
					entry, row, lineNo,
				)
			}

			rows[row-1] = line

			continue
		}

		if line != "" {
			return nil, domain.NewGridError(
				errcodes.MalformedSeparator,
				fmt.Sprintf("expected blank separator row, got %q", line),
				entry, row, lineNo,
			)
		}

		blocks = append(blocks, join(rows))
		entry++
		row = 0
	}

	switch row {
	case 0:
	case value.GlyphHeight:
		blocks = append(blocks, join(rows))
	default:
		return nil, domain.NewGridError(
			errcodes.MalformedRow,
			"line length is 0, entry is truncated",
			entry, row+1, len(lines)+1,
		)
	}

	return blocks, nil
}

func join(rows [value.GlyphHeight]string) value.GlyphBlock {
	return value.GlyphBlock(strings.Join(rows[:], ""))
}

// Render рисует номера глифами: по три строки и разделитель на номер.
func Render(cb glyphTable, numbers ...string) ([]string, error) {
	lines := make([]string, 0, len(numbers)*linesPerEntry)

	for i, number := range numbers {
		if len(number) != value.DigitsPerAccount {
			return nil, domain.NewError(
				errcodes.InvalidNumber,
				fmt.Sprintf("entry %d: number %q has %d digits, expected %d", i+1, number, len(number), value.DigitsPerAccount),
			)
		}

		var rows [value.GlyphHeight]strings.Builder

		for pos := range len(number) {
			glyph, ok := cb.Glyph(number[pos])
			if !ok {
				return nil, domain.NewError(
					errcodes.InvalidNumber,
					fmt.Sprintf("entry %d: number %q has no glyph for %q", i+1, number, number[pos]),
				)
			}

			top, middle, bottom := glyph.Segments()
			rows[0].WriteString(top)
			rows[1].WriteString(middle)
			rows[2].WriteString(bottom)
		}

		for r := range rows {
			lines = append(lines, rows[r].String())
		}

		lines = append(lines, "")
	}

	return lines, nil
}
