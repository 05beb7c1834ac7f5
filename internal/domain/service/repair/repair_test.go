package repair_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"bankocr/internal/domain/entity"
	"bankocr/internal/domain/service/checksum"
	"bankocr/internal/domain/service/codebook"
	"bankocr/internal/domain/service/decoder"
	"bankocr/internal/domain/service/repair"
	"bankocr/internal/domain/value"
	"bankocr/pkg/lox"
)

func digits(candidates []entity.RepairCandidate) string {
	return string(lox.Map(candidates, func(c entity.RepairCandidate) byte { return c.Digit }))
}

func TestRepairDigit(t *testing.T) {
	rq := require.New(t)

	testCases := []struct {
		name          string
		glyph         value.GlyphKey
		topBarRemoval bool
		digits        string
	}{
		{name: "Four or one", glyph: "    _|  |", digits: "14"},
		{name: "Three or five", glyph: " _  _  _|", digits: "35"},
		{name: "Nine only, top bar kept", glyph: " _ |_|  |", digits: "9"},
		{name: "Four or nine, top bar removed", glyph: " _ |_|  |", topBarRemoval: true, digits: "49"},
		{name: "Two via top bar", glyph: "    _||_ ", digits: "2"},
		{name: "Eight", glyph: " _ |_|| |", digits: "8"},
		{name: "Eight to zero, six or nine", glyph: " _ |_||_|", digits: "069"},
		{name: "One to seven", glyph: "     |  |", digits: "7"},
		{name: "Seven has no neighbours", glyph: " _   |  |", digits: ""},
		{name: "Seven to one, top bar removed", glyph: " _   |  |", topBarRemoval: true, digits: "1"},
		{name: "Blank", glyph: "         ", digits: ""},
		{name: "Wrong length", glyph: " _ ", digits: ""},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(*testing.T) {
			engine := repair.New(codebook.Standard()).WithTopBarRemoval(tc.topBarRemoval)

			candidates := engine.RepairDigit(tc.glyph)
			rq.Equal(tc.digits, digits(candidates))

			for _, c := range candidates {
				rq.Equal(c.Digit, codebook.Standard().Digit(c.Glyph))
				rq.NotEqual(tc.glyph, c.Glyph)
			}
		})
	}
}

func TestRepairDigitCandidateGlyphs(t *testing.T) {
	rq := require.New(t)

	candidates := repair.New(codebook.Standard()).RepairDigit("    _|  |")
	rq.Equal([]entity.RepairCandidate{
		{Digit: '1', Glyph: "     |  |"},
		{Digit: '4', Glyph: "   |_|  |"},
	}, candidates)
}

func TestRepair(t *testing.T) {
	rq := require.New(t)

	dec := decoder.New(codebook.Standard())

	testCases := []struct {
		name          string
		block         value.GlyphBlock
		topBarRemoval bool
		outcome       entity.RepairOutcome
		expected      string
	}{
		{
			name:     "Valid account is unchanged",
			block:    "    _  _     _  _  _  _  _   | _| _||_||_ |_   ||_||_|  ||_  _|  | _||_|  ||_| _|",
			outcome:  entity.RepairUnchanged,
			expected: "123456789",
		},
		{
			name:     "Corrupted seven repairs uniquely",
			block:    " _                           |  |  |  |  |  |  |  |  |     |  |  |  |  |  |  |  |",
			outcome:  entity.RepairRepaired,
			expected: "711111111",
		},
		{
			name:     "Illegible first digit",
			block:    "    _  _     _  _  _  _  _  _| _| _||_||_ |_   ||_||_|  ||_  _|  | _||_|  ||_| _|",
			outcome:  entity.RepairRepaired,
			expected: "123456789",
		},
		{
			name:     "Illegible last digit",
			block:    "    _  _  _  _  _  _     _ |_||_|| ||_||_   |  |  ||_   | _||_||_||_|  |  |  |  |",
			outcome:  entity.RepairRepaired,
			expected: "490867715",
		},
		{
			name:     "All ones",
			block:    "                             |  |  |  |  |  |  |  |  |  |  |  |  |  |  |  |  |  |",
			outcome:  entity.RepairRepaired,
			expected: "711111111",
		},
		{
			name:     "All twos and zeros",
			block:    " _  _  _  _  _  _  _  _  _  _|| || || || || || || || ||_ |_||_||_||_||_||_||_||_|",
			outcome:  entity.RepairRepaired,
			expected: "200800000",
		},
		{
			name:     "All threes",
			block:    " _  _  _  _  _  _  _  _  _  _| _| _| _| _| _| _| _| _| _| _| _| _| _| _| _| _| _|",
			outcome:  entity.RepairRepaired,
			expected: "333393333",
		},
		{
			name:     "All eights",
			block:    " _  _  _  _  _  _  _  _  _ |_||_||_||_||_||_||_||_||_||_||_||_||_||_||_||_||_||_|",
			outcome:  entity.RepairAmbiguous,
			expected: "888888888 AMB ['888886888', '888888880', '888888988']",
		},
		{
			name:     "All fives",
			block:    " _  _  _  _  _  _  _  _  _ |_ |_ |_ |_ |_ |_ |_ |_ |_  _| _| _| _| _| _| _| _| _|",
			outcome:  entity.RepairAmbiguous,
			expected: "555555555 AMB ['555655555', '559555555']",
		},
		{
			name:     "All sixes",
			block:    " _  _  _  _  _  _  _  _  _ |_ |_ |_ |_ |_ |_ |_ |_ |_ |_||_||_||_||_||_||_||_||_|",
			outcome:  entity.RepairAmbiguous,
			expected: "666666666 AMB ['666566666', '686666666']",
		},
		{
			name:     "All nines sorted",
			block:    " _  _  _  _  _  _  _  _  _ |_||_||_||_||_||_||_||_||_| _| _| _| _| _| _| _| _| _|",
			outcome:  entity.RepairAmbiguous,
			expected: "999999999 AMB ['899999999', '993999999', '999959999']",
		},
		{
			name:     "Mixed digits",
			block:    "    _  _  _  _  _  _     _ |_||_|| || ||_   |  |  ||_   | _||_||_||_|  |  |  | _|",
			outcome:  entity.RepairAmbiguous,
			expected: "490067715 AMB ['490067719', '490867715']",
		},
		{
			name:          "Mixed digits, top bar removed",
			block:         "    _  _  _  _  _  _     _ |_||_|| || ||_   |  |  ||_   | _||_||_||_|  |  |  | _|",
			topBarRemoval: true,
			outcome:       entity.RepairAmbiguous,
			expected:      "490067715 AMB ['490067115', '490067719', '490867715']",
		},
		{
			name:     "All sevens cannot be repaired",
			block:    " _  _  _  _  _  _  _  _  _   |  |  |  |  |  |  |  |  |  |  |  |  |  |  |  |  |  |",
			outcome:  entity.RepairUnrepairable,
			expected: "777777777 ERR",
		},
		{
			name:          "All sevens, top bar removed",
			block:         " _  _  _  _  _  _  _  _  _   |  |  |  |  |  |  |  |  |  |  |  |  |  |  |  |  |  |",
			topBarRemoval: true,
			outcome:       entity.RepairRepaired,
			expected:      "777777177",
		},
		{
			name:     "Two illegible digits cannot be repaired",
			block:    "       _     _  _  _  _  _  _|    _||_||_ |_   ||_||_|  |    _|  | _||_|  ||_| _|",
			outcome:  entity.RepairUnrepairable,
			expected: "??3456789 ILL",
		},
		{
			name:     "Blank digit cannot be repaired",
			block:    " _  _  _  _     _  _  _  _ |_||_||_||_|   |_||_||_||_||_||_||_||_|   |_||_||_||_|",
			outcome:  entity.RepairUnrepairable,
			expected: "8888?8888 ILL",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(*testing.T) {
			account, err := dec.Decode(tc.block)
			rq.NoError(err)

			engine := repair.New(codebook.Standard()).WithTopBarRemoval(tc.topBarRemoval)

			result := engine.Repair(checksum.Status(account))
			rq.Equal(tc.outcome, result.Outcome)
			rq.Equal(tc.expected, result.String())
			rq.Equal(tc.expected, engine.RepairString(checksum.Status(account)))

			for _, c := range result.Candidates {
				rq.True(checksum.Valid(c), c)
			}
		})
	}
}

func TestRepairIsIdempotentForValidAccounts(t *testing.T) {
	rq := require.New(t)

	engine := repair.New(codebook.Standard())

	for _, number := range []string{"123456789", "345882865", "000000302", "711111111"} {
		status := checksum.Status(entity.Account{Number: number})
		rq.True(status.IsValid())

		result := engine.Repair(status)
		rq.Equal(entity.RepairUnchanged, result.Outcome)
		rq.Equal(number, result.String())
		rq.Empty(result.Candidates)
	}
}
