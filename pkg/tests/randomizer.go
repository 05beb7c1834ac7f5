package tests

import (
	"math/rand"
	"strings"
	"time"
)

const (
	accountDigits   = 9
	checksumModulus = 11
)

type Randomizer struct {
	Bool func() bool
	// Digit возвращает символ '0'..'9'.
	Digit func() byte
	// AccountNumber возвращает 9 случайных цифр без учёта контрольной суммы.
	AccountNumber func() string
	// ValidAccountNumber возвращает номер, проходящий проверку по модулю 11.
	ValidAccountNumber func() string
}

func NewRandomizer() Randomizer {
	random := rand.New(rand.NewSource(time.Now().UnixNano())) //nolint:gosec // for tests

	digit := func() byte { return byte('0' + random.Intn(10)) } //nolint:mnd // skip

	number := func() string {
		var b strings.Builder
		for range accountDigits {
			b.WriteByte(digit())
		}
		return b.String()
	}

	return Randomizer{
		Bool:          func() bool { return random.Intn(2) == 0 }, //nolint:mnd // skip
		Digit:         digit,
		AccountNumber: number,
		ValidAccountNumber: func() string {
			for {
				n := []byte(number())

				// Последняя цифра идёт с весом 1, поэтому её можно подобрать.
				sum := 0
				for p := 1; p < accountDigits; p++ {
					sum += int(n[accountDigits-1-p]-'0') * (p + 1)
				}

				last := (checksumModulus - sum%checksumModulus) % checksumModulus
				if last == 10 { //nolint:mnd // skip
					continue
				}

				n[accountDigits-1] = byte('0' + last)

				return string(n)
			}
		},
	}
}
