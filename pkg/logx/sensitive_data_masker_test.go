package logx_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"bankocr/pkg/logx"
)

func TestSensitiveDataMaskerMask(t *testing.T) {
	rq := require.New(t)

	masker := logx.NewSensitiveDataMasker()

	testCases := []struct {
		name   string
		input  []byte
		output []byte
	}{
		{
			name:   "Valid number",
			input:  []byte("123456789"),
			output: []byte("******789"),
		},
		{
			name:   "Illegible number",
			input:  []byte("49086??15 ILL"),
			output: []byte("******?15 ILL"),
		},
		{
			name:   "Ambiguous result",
			input:  []byte("888888888 AMB ['888886888', '888888880', '888888988']"),
			output: []byte("******888 AMB ['******888', '******880', '******988']"),
		},
		{
			name:   "Adjacent numbers",
			input:  []byte("123456789 987654321"),
			output: []byte("******789 ******321"),
		},
		{
			name:   "Other numbers untouched",
			input:  []byte("entry 12 of 1234567890"),
			output: []byte("entry 12 of 1234567890"),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(*testing.T) {
			output := masker.Mask(tc.input)

			rq.Equal(tc.output, output, "%s vs %s", tc.output, output)
		})
	}
}

func TestNopSensitiveDataMaskerMask(t *testing.T) {
	rq := require.New(t)

	input := []byte("123456789")
	rq.Equal(input, logx.NewNopSensitiveDataMasker().Mask(input))
}

func TestParseLevel(t *testing.T) {
	rq := require.New(t)

	level, err := logx.ParseLevel("DEBUG")
	rq.NoError(err)
	rq.Equal("DEBUG", level.String())

	level, err = logx.ParseLevel(" warn ")
	rq.NoError(err)
	rq.Equal("WARN", level.String())

	_, err = logx.ParseLevel("loud")
	rq.Error(err)
}
