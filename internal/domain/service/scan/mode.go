package scan

import (
	"fmt"

	"bankocr/internal/domain"
	"bankocr/pkg/errcodes"
)

// Mode задаёт обработку каждого номера пакета.
type Mode string

const (
	ModeDecode   Mode = "decode"
	ModeValidate Mode = "validate"
	ModeRepair   Mode = "repair"
)

func (m Mode) String() string {
	return string(m)
}

func ParseMode(s string) (Mode, error) {
	switch m := Mode(s); m {
	case ModeDecode, ModeValidate, ModeRepair:
		return m, nil
	default:
		return "", domain.NewError(errcodes.ValidationError, fmt.Sprintf("unknown mode %q", s))
	}
}
