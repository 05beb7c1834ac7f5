package application

import (
	"io"
	"log/slog"

	"bankocr/internal/config"
	"bankocr/pkg/logx"
)

// NewLogger строит логгер по настройкам. При MaskAccounts номера счетов
// в выводе заменяются маской.
func NewLogger(w io.Writer, cfg config.Log) (*slog.Logger, error) {
	level, err := logx.ParseLevel(cfg.Level)
	if err != nil {
		return nil, err
	}

	var masker logx.SensitiveDataMaskerInterface = logx.NewNopSensitiveDataMasker()
	if cfg.MaskAccounts {
		masker = logx.NewSensitiveDataMasker()
	}

	return logx.New(logx.NewMaskingWriter(w, masker), level, cfg.NoColor), nil
}
