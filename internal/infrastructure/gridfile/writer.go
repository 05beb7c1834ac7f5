package gridfile

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/afero"
)

const (
	dirPerm  os.FileMode = 0o755
	filePerm os.FileMode = 0o644
)

// Writer пишет строковые результаты, по одной строке на номер.
type Writer struct {
	fs afero.Fs
}

func NewWriter(fs afero.Fs) *Writer {
	return &Writer{fs: fs}
}

// WriteLines пишет строки во временный файл рядом с path и переименовывает
// его, так что читатель не увидит файл наполовину.
func (w *Writer) WriteLines(path string, lines []string) error {
	if err := w.fs.MkdirAll(filepath.Dir(path), dirPerm); err != nil {
		return fmt.Errorf("fs.MkdirAll: %w", err)
	}

	tmp := path + ".tmp"

	f, err := w.fs.OpenFile(tmp, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, filePerm)
	if err != nil {
		return fmt.Errorf("fs.OpenFile: %w", err)
	}

	if err := WriteLines(f, lines); err != nil {
		_ = f.Close()
		_ = w.fs.Remove(tmp)
		return err
	}

	if err := f.Close(); err != nil {
		_ = w.fs.Remove(tmp)
		return fmt.Errorf("f.Close: %w", err)
	}

	if err := w.fs.Rename(tmp, path); err != nil {
		return fmt.Errorf("fs.Rename: %w", err)
	}

	return nil
}

// WriteLines пишет строки в поток, завершая каждую "\n".
func WriteLines(out io.Writer, lines []string) error {
	bw := bufio.NewWriter(out)

	for _, line := range lines {
		if _, err := bw.WriteString(line + "\n"); err != nil {
			return fmt.Errorf("bw.WriteString: %w", err)
		}
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("bw.Flush: %w", err)
	}

	return nil
}
