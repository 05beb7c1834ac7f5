package logx

import "io"

// MaskingWriter passes every write through a masker before forwarding it.
// slog handlers write one record per call, so a record is never split.
type MaskingWriter struct {
	w      io.Writer
	masker SensitiveDataMaskerInterface
}

func NewMaskingWriter(w io.Writer, masker SensitiveDataMaskerInterface) *MaskingWriter {
	return &MaskingWriter{w: w, masker: masker}
}

func (m *MaskingWriter) Write(p []byte) (int, error) {
	if _, err := m.w.Write(m.masker.Mask(p)); err != nil {
		return 0, err
	}

	return len(p), nil
}
