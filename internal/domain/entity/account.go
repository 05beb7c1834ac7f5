package entity

import (
	"strings"

	"bankocr/internal/domain/value"
)

// IllegibleDigit ставится на место глифа, которого нет в кодовой книге.
const IllegibleDigit = '?'

// Account хранит распознанный номер счёта и исходные глифы каждой цифры.
// Глифы нужны для исправления ошибок.
type Account struct {
	Number string
	Glyphs []value.GlyphKey
}

func (a Account) IsLegible() bool {
	return !strings.ContainsRune(a.Number, IllegibleDigit)
}

// AccountStatus фиксирует читаемость и контрольную сумму номера.
// String даёт строку для файла результатов.
type AccountStatus struct {
	Account         Account
	IsLegible       bool
	IsValidChecksum bool
}

func (s AccountStatus) String() string {
	switch {
	case !s.IsLegible:
		return s.Account.Number + " ILL"
	case !s.IsValidChecksum:
		return s.Account.Number + " ERR"
	default:
		return s.Account.Number
	}
}

// IsValid: номер читаем и сходится по контрольной сумме.
func (s AccountStatus) IsValid() bool {
	return s.IsLegible && s.IsValidChecksum
}
