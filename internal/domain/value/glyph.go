package value

// Геометрия сетки: 9 цифр по 3x3 символа.
const (
	GlyphWidth       = 3
	GlyphHeight      = 3
	GlyphSize        = GlyphWidth * GlyphHeight
	DigitsPerAccount = 9
	RowWidth         = GlyphWidth * DigitsPerAccount
	BlockLength      = RowWidth * GlyphHeight
)

// GlyphKey хранит одну цифру как 9 символов: три тройки сверху вниз.
type GlyphKey string

func (k GlyphKey) String() string {
	return string(k)
}

// Segments разбивает ключ на три тройки. Ключ должен быть длиной GlyphSize.
func (k GlyphKey) Segments() (top, middle, bottom string) {
	s := string(k)
	return s[0:GlyphWidth], s[GlyphWidth : 2*GlyphWidth], s[2*GlyphWidth : GlyphSize]
}

// GlyphKeyFromSegments собирает ключ из трёх троек.
func GlyphKeyFromSegments(top, middle, bottom string) GlyphKey {
	return GlyphKey(top + middle + bottom)
}

// GlyphBlock хранит одну запись сетки: три строки по 27 символов подряд.
type GlyphBlock string

func (b GlyphBlock) String() string {
	return string(b)
}
