package gridfile

import (
	"bufio"
	"fmt"
	"io"

	"github.com/spf13/afero"

	"bankocr/internal/domain"
	"bankocr/internal/domain/service/grid"
	"bankocr/internal/domain/value"
	"bankocr/pkg/errcodes"
)

const maxLineSize = 1 << 20

// Reader читает файлы сетки с файловой системы.
type Reader struct {
	fs afero.Fs
}

func NewReader(fs afero.Fs) *Reader {
	return &Reader{fs: fs}
}

// ReadBlocks читает файл и разбирает его на блоки глифов.
func (r *Reader) ReadBlocks(path string) ([]value.GlyphBlock, error) {
	if path == "" {
		return nil, domain.NewError(errcodes.EmptyInput, "file path must be provided")
	}

	f, err := r.fs.Open(path)
	if err != nil {
		return nil, fmt.Errorf("fs.Open: %w", err)
	}
	defer f.Close()

	return ParseBlocks(f)
}

// ParseBlocks разбирает сетку из произвольного потока, например stdin.
func ParseBlocks(rd io.Reader) ([]value.GlyphBlock, error) {
	lines, err := ReadLines(rd)
	if err != nil {
		return nil, err
	}

	return grid.Parse(lines)
}

// ReadLines делит поток на строки. Окончания "\r\n" и "\n" равнозначны,
// остальные пробелы сохраняются.
func ReadLines(rd io.Reader) ([]string, error) {
	scanner := bufio.NewScanner(rd)
	scanner.Buffer(make([]byte, 0, bufio.MaxScanTokenSize), maxLineSize)

	var lines []string

	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scanner.Scan: %w", err)
	}

	return lines, nil
}
