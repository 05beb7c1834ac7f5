package logx

import (
	"bytes"
	"regexp"
)

const (
	accountNumberLen  = 9
	accountVisibleLen = 3
)

type SensitiveDataMaskerInterface interface {
	Mask(input []byte) []byte
}

//nolint:gochecknoglobals
var accountNumberPattern = regexp.MustCompile(`[0-9?]+`)

// SensitiveDataMasker hides account numbers in log output: every run of
// exactly nine digits (or '?') keeps only its last three characters.
type SensitiveDataMasker struct{}

func NewSensitiveDataMasker() SensitiveDataMasker {
	return SensitiveDataMasker{}
}

func (s SensitiveDataMasker) Mask(input []byte) []byte {
	return accountNumberPattern.ReplaceAllFunc(input, func(match []byte) []byte {
		if len(match) != accountNumberLen {
			return match
		}

		masked := bytes.Repeat([]byte("*"), accountNumberLen-accountVisibleLen)

		return append(masked, match[accountNumberLen-accountVisibleLen:]...)
	})
}
