package checksum

import (
	"bankocr/internal/domain/entity"
)

const modulus = 11

// Valid проверяет контрольную сумму номера: цифры берутся справа налево,
// p-я цифра (с нуля) умножается на p+1, сумма должна делиться на 11.
//
// Номер с '?' или другим нецифровым символом не проходит проверку.
func Valid(number string) bool {
	if number == "" {
		return false
	}

	sum := 0

	for p := range len(number) {
		c := number[len(number)-1-p]
		if c < '0' || c > '9' {
			return false
		}

		sum += int(c-'0') * (p + 1)
	}

	return sum%modulus == 0
}

// Status собирает статус распознанного номера.
func Status(account entity.Account) entity.AccountStatus {
	return entity.AccountStatus{
		Account:         account,
		IsLegible:       account.IsLegible(),
		IsValidChecksum: Valid(account.Number),
	}
}
