package repair

import (
	"cmp"
	"slices"
	"strings"

	"github.com/samber/lo"

	"bankocr/internal/domain/entity"
	"bankocr/internal/domain/service/checksum"
	"bankocr/internal/domain/value"
)

const (
	blankTop = "   "
	barTop   = " _ "
)

type Codebook interface {
	Digit(key value.GlyphKey) byte
}

// Engine исправляет номер, меняя у одной цифры ровно один сегмент.
type Engine struct {
	codebook      Codebook
	validate      func(number string) bool
	topBarRemoval bool
}

func New(codebook Codebook) *Engine {
	return &Engine{
		codebook: codebook,
		validate: checksum.Valid,
	}
}

// WithTopBarRemoval разрешает снимать верхнюю черту (7 -> 1).
// По умолчанию верхняя черта только добавляется.
func (e *Engine) WithTopBarRemoval(enabled bool) *Engine {
	e.topBarRemoval = enabled
	return e
}

// RepairDigit перебирает глифы, отличающиеся от исходного одним сегментом,
// и оставляет те, что распознаются как цифра. Результат отсортирован
// по цифре, затем по глифу.
func (e *Engine) RepairDigit(glyph value.GlyphKey) []entity.RepairCandidate {
	if len(glyph) != value.GlyphSize {
		return nil
	}

	top, middle, bottom := glyph.Segments()

	variants := make([]value.GlyphKey, 0, 1+2*value.GlyphWidth)

	if flipped, ok := e.flipTop(top); ok {
		variants = append(variants, value.GlyphKeyFromSegments(flipped, middle, bottom))
	}

	for _, m := range toggles(middle) {
		variants = append(variants, value.GlyphKeyFromSegments(top, m, bottom))
	}

	for _, b := range toggles(bottom) {
		variants = append(variants, value.GlyphKeyFromSegments(top, middle, b))
	}

	candidates := make([]entity.RepairCandidate, 0, len(variants))

	for _, v := range variants {
		digit := e.codebook.Digit(v)
		if digit == entity.IllegibleDigit {
			continue
		}

		candidates = append(candidates, entity.RepairCandidate{Digit: digit, Glyph: v})
	}

	candidates = lo.Uniq(candidates)

	slices.SortFunc(candidates, func(a, b entity.RepairCandidate) int {
		return cmp.Or(cmp.Compare(a.Digit, b.Digit), strings.Compare(string(a.Glyph), string(b.Glyph)))
	})

	return candidates
}

// Repair подбирает исправления для нечитаемого номера или номера с неверной
// контрольной суммой. У нечитаемого перебираются только позиции с '?',
// у ошибочного все девять позиций.
func (e *Engine) Repair(status entity.AccountStatus) entity.Repair {
	if status.IsValid() {
		return entity.Repair{Status: status, Outcome: entity.RepairUnchanged}
	}

	number := status.Account.Number
	glyphs := status.Account.Glyphs

	var found []string

	for pos := range len(number) {
		if !status.IsLegible && number[pos] != entity.IllegibleDigit {
			continue
		}

		if pos >= len(glyphs) {
			break
		}

		for _, c := range e.RepairDigit(glyphs[pos]) {
			candidate := number[:pos] + string(c.Digit) + number[pos+1:]
			if e.validate(candidate) {
				found = append(found, candidate)
			}
		}
	}

	found = lo.Uniq(found)
	slices.Sort(found)

	outcome := entity.RepairAmbiguous

	switch len(found) {
	case 0:
		outcome = entity.RepairUnrepairable
	case 1:
		outcome = entity.RepairRepaired
	}

	return entity.Repair{
		Status:     status,
		Outcome:    outcome,
		Candidates: found,
	}
}

// RepairString возвращает строку для файла исправленных номеров.
func (e *Engine) RepairString(status entity.AccountStatus) string {
	return e.Repair(status).String()
}

func (e *Engine) flipTop(top string) (string, bool) {
	switch {
	case top == blankTop:
		return barTop, true
	case top == barTop && e.topBarRemoval:
		return blankTop, true
	default:
		return "", false
	}
}

// toggles даёт три варианта тройки: края меняются ' ' <-> '|', центр ' ' <-> '_'.
func toggles(segment string) [value.GlyphWidth]string {
	s := []byte(segment)

	var out [value.GlyphWidth]string

	for i := range s {
		v := slices.Clone(s)

		switch {
		case i == 1 && v[i] == '_':
			v[i] = ' '
		case i == 1:
			v[i] = '_'
		case v[i] == '|':
			v[i] = ' '
		default:
			v[i] = '|'
		}

		out[i] = string(v)
	}

	return out
}
