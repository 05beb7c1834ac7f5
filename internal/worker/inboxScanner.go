package worker

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/spf13/afero"

	"bankocr/internal/domain/service/scan"
	"bankocr/internal/domain/value"
	"bankocr/internal/infrastructure/gridfile"
	"bankocr/internal/infrastructure/metrics"
	"bankocr/pkg/contextx"
	"bankocr/pkg/logx"
)

var logger = contextx.LoggerFromContextOrDefault //nolint:gochecknoglobals

const (
	defaultInterval = 5 * time.Second
	inboxExt        = ".txt"
	outputExt       = ".out"
	failedSuffix    = ".failed"
	dirPerm         = 0o755
)

type Processor interface {
	Process(ctx context.Context, mode scan.Mode, blocks []value.GlyphBlock) ([]string, error)
}

type BlockReader interface {
	ReadBlocks(path string) ([]value.GlyphBlock, error)
}

type LineWriter interface {
	WriteLines(path string, lines []string) error
}

type FileRecorder interface {
	FileProcessed(result string)
}

type nopFileRecorder struct{}

func (nopFileRecorder) FileProcessed(string) {}

// InboxScanner периодически забирает файлы сетки из входящей папки,
// пишет результат в выходную и переносит исходник в папку обработанных.
type InboxScanner struct {
	fs        afero.Fs
	processor Processor
	reader    BlockReader
	writer    LineWriter
	recorder  FileRecorder

	inboxDir     string
	outputDir    string
	processedDir string
	mode         scan.Mode
	interval     time.Duration

	// Готов после первого полного прохода по папке.
	ready atomic.Bool

	// Control fields
	mu         sync.Mutex
	cancelFunc context.CancelFunc
	isRunning  bool
	wg         sync.WaitGroup
}

func NewInboxScanner(
	fs afero.Fs,
	processor Processor,
	inboxDir, outputDir, processedDir string,
) *InboxScanner {
	return &InboxScanner{
		fs:           fs,
		processor:    processor,
		reader:       gridfile.NewReader(fs),
		writer:       gridfile.NewWriter(fs),
		recorder:     nopFileRecorder{},
		inboxDir:     inboxDir,
		outputDir:    outputDir,
		processedDir: processedDir,
		mode:         scan.ModeRepair,
		interval:     defaultInterval,
	}
}

func (w *InboxScanner) WithMode(mode scan.Mode) *InboxScanner {
	w.mode = mode
	return w
}

func (w *InboxScanner) WithInterval(interval time.Duration) *InboxScanner {
	if interval > 0 {
		w.interval = interval
	}
	return w
}

func (w *InboxScanner) WithRecorder(recorder FileRecorder) *InboxScanner {
	if recorder != nil {
		w.recorder = recorder
	}
	return w
}

func (w *InboxScanner) Start(ctx context.Context) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.isRunning {
		return errors.New("scanner is already running")
	}

	scanCtx, cancel := context.WithCancel(ctx)
	w.cancelFunc = cancel
	w.isRunning = true

	w.wg.Add(1)
	go func() {
		defer w.wg.Done()
		defer func() {
			w.mu.Lock()
			w.isRunning = false
			w.cancelFunc = nil
			w.mu.Unlock()
		}()

		if err := w.Run(scanCtx); err != nil && !errors.Is(err, context.Canceled) {
			logger(ctx).Error("inbox scanner stopped with error", logx.Error(err))
		}
	}()

	return nil
}

func (w *InboxScanner) Stop() {
	w.mu.Lock()

	if !w.isRunning {
		w.mu.Unlock()
		return
	}

	if w.cancelFunc != nil {
		w.cancelFunc()
	}
	w.mu.Unlock()

	w.wg.Wait()
}

// IsRunning возвращает текущий статус
func (w *InboxScanner) IsRunning() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.isRunning
}

func (w *InboxScanner) Ready() bool {
	return w.ready.Load()
}

// Run обрабатывает папку сразу и затем раз в interval до отмены контекста.
func (w *InboxScanner) Run(ctx context.Context) error {
	logger(ctx).Info("inbox scanner started",
		slog.String("inbox", w.inboxDir),
		logx.Stringer(logx.FieldMode, w.mode),
		slog.Duration("interval", w.interval),
	)

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		_, err := w.ScanOnce(ctx)

		switch {
		case err == nil:
			w.ready.Store(true)
		case ctx.Err() == nil:
			logger(ctx).Error("inbox scan failed", logx.Error(err))
		}

		select {
		case <-ctx.Done():
			logger(ctx).Info("inbox scanner stopped")
			return ctx.Err()
		case <-ticker.C:
		}
	}
}

// ScanOnce обрабатывает все файлы, лежащие в папке сейчас, и возвращает
// число успешно обработанных. Ошибка одного файла не прерывает проход.
func (w *InboxScanner) ScanOnce(ctx context.Context) (int, error) {
	names, err := w.inboxFiles()
	if err != nil {
		return 0, err
	}

	var processed int

	for _, name := range names {
		if err := ctx.Err(); err != nil {
			return processed, err
		}

		if err := w.processFile(ctx, name); err != nil {
			if ctx.Err() != nil {
				return processed, ctx.Err()
			}
			continue
		}

		processed++
	}

	if processed > 0 {
		logger(ctx).Info("scan cycle completed", "files", processed)
	}

	return processed, nil
}

func (w *InboxScanner) inboxFiles() ([]string, error) {
	entries, err := afero.ReadDir(w.fs, w.inboxDir)
	if err != nil {
		return nil, fmt.Errorf("afero.ReadDir: %w", err)
	}

	names := make([]string, 0, len(entries))

	for _, e := range entries {
		if e.IsDir() || filepath.Ext(e.Name()) != inboxExt {
			continue
		}

		names = append(names, e.Name())
	}

	return names, nil
}

func (w *InboxScanner) processFile(ctx context.Context, name string) error {
	traceID := contextx.NewTraceID()
	ctx = contextx.WithTraceID(ctx, traceID)
	ctx = contextx.WithLogger(ctx, logger(ctx).With(
		logx.Stringer(logx.FieldTraceID, traceID),
		slog.String(logx.FieldFile, name),
	))

	start := time.Now()
	source := filepath.Join(w.inboxDir, name)

	lines, err := w.processBlocks(ctx, source)
	if err != nil {
		if ctx.Err() != nil {
			return err
		}

		logger(ctx).Error("grid file rejected", logx.Error(err))
		w.recorder.FileProcessed(metrics.FileFailed)

		if moveErr := w.move(source, name+failedSuffix); moveErr != nil {
			logger(ctx).Error("failed to move rejected file", logx.Error(moveErr))
		}

		return err
	}

	output := filepath.Join(w.outputDir, strings.TrimSuffix(name, inboxExt)+outputExt)

	if err := w.writer.WriteLines(output, lines); err != nil {
		logger(ctx).Error("failed to write output", logx.Error(err))
		w.recorder.FileProcessed(metrics.FileFailed)
		return err
	}

	if err := w.move(source, name); err != nil {
		logger(ctx).Error("failed to move processed file", logx.Error(err))
		return err
	}

	w.recorder.FileProcessed(metrics.FileProcessed)

	for i, line := range lines {
		logger(ctx).Debug("account processed", slog.Int(logx.FieldEntry, i+1), slog.String(logx.FieldResult, line))
	}

	logger(ctx).Info("grid file processed",
		slog.Int(logx.FieldAccounts, len(lines)),
		slog.String(logx.FieldOutput, output),
		slog.Int64(logx.FieldDurationMs, time.Since(start).Milliseconds()),
	)

	return nil
}

func (w *InboxScanner) processBlocks(ctx context.Context, path string) ([]string, error) {
	blocks, err := w.reader.ReadBlocks(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	lines, err := w.processor.Process(ctx, w.mode, blocks)
	if err != nil {
		return nil, fmt.Errorf("process %s: %w", path, err)
	}

	return lines, nil
}

func (w *InboxScanner) move(source, name string) error {
	if err := w.fs.MkdirAll(w.processedDir, dirPerm); err != nil {
		return fmt.Errorf("fs.MkdirAll: %w", err)
	}

	if err := w.fs.Rename(source, filepath.Join(w.processedDir, name)); err != nil {
		return fmt.Errorf("fs.Rename: %w", err)
	}

	return nil
}
