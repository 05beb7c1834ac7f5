package logx_test

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"

	"bankocr/pkg/logx"
)

func TestMaskingWriter(t *testing.T) {
	rq := require.New(t)

	var buf bytes.Buffer

	log := logx.New(logx.NewMaskingWriter(&buf, logx.NewSensitiveDataMasker()), slog.LevelInfo, true)
	log.Info("account processed", logx.FieldResult, "345882865 ERR")

	rq.Contains(buf.String(), "******865 ERR")
	rq.NotContains(buf.String(), "345882865")
}

func TestMaskingWriterNop(t *testing.T) {
	rq := require.New(t)

	var buf bytes.Buffer

	w := logx.NewMaskingWriter(&buf, logx.NewNopSensitiveDataMasker())
	n, err := w.Write([]byte("345882865"))
	rq.NoError(err)
	rq.Equal(9, n)
	rq.Equal("345882865", buf.String())
}
