package application

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/spf13/afero"
	"golang.org/x/sync/errgroup"

	"bankocr/internal/config"
	"bankocr/internal/domain/service/codebook"
	"bankocr/internal/domain/service/decoder"
	"bankocr/internal/domain/service/repair"
	"bankocr/internal/domain/service/scan"
	inframetrics "bankocr/internal/infrastructure/metrics"
	"bankocr/internal/server"
	"bankocr/internal/worker"
	"bankocr/pkg/application/modules"
	"bankocr/pkg/contextx"
	"bankocr/pkg/logx"
	"bankocr/pkg/metrics"
	"bankocr/pkg/probe"
)

const httpServerReadHeaderTimeout = 5 * time.Second

var logger = contextx.LoggerFromContextOrDefault //nolint:gochecknoglobals

// NewScanService собирает сервис пакетной обработки по настройкам сканера.
func NewScanService(cfg config.Scanner, recorder scan.Recorder) *scan.Service {
	cb := codebook.Standard()

	return scan.New(
		decoder.New(cb),
		repair.New(cb).WithTopBarRemoval(cfg.TopBarRemoval),
	).
		WithWorkers(cfg.Workers).
		WithRecorder(recorder).
		WithCacheTTL(cfg.CacheTTL)
}

// Run запускает демон: сканер входящей папки и служебный HTTP-сервер.
// Возвращается после отмены ctx или при ошибке одного из модулей.
func Run(ctx context.Context, fs afero.Fs, cfg config.Config) error {
	mode, err := scan.ParseMode(cfg.Scanner.Mode)
	if err != nil {
		return fmt.Errorf("scan.ParseMode: %w", err)
	}

	// 1. Metrics
	registry := metrics.NewRegistry()
	recorder := inframetrics.NewRecorder(registry)

	// 2. Services
	svc := NewScanService(cfg.Scanner, recorder)

	// 3. Worker
	scanner := worker.NewInboxScanner(
		fs,
		svc,
		cfg.Scanner.InboxDir,
		cfg.Scanner.OutputDir,
		cfg.Scanner.ProcessedDir,
	).
		WithMode(mode).
		WithInterval(cfg.Scanner.Interval).
		WithRecorder(recorder)

	// 4. Ops server
	opsServer := server.NewServer(
		probe.New(probe.Options{Name: cfg.App.Name, Version: cfg.App.Version}),
		scanner.Ready,
		metrics.Handler(registry),
	)

	g, ctx := errgroup.WithContext(ctx)

	httpServer := &http.Server{
		//nolint:exhaustruct
		Addr:              cfg.Ops.ListenAddress,
		Handler:           opsServer.Router(),
		ReadHeaderTimeout: httpServerReadHeaderTimeout,
		BaseContext: func(net.Listener) context.Context {
			return ctx
		},
	}

	modules.HTTPServer{ShutdownTimeout: cfg.Ops.ShutdownTimeout}.Run(ctx, g, httpServer)
	modules.BackgroundWorker{Name: "inbox-scanner"}.Run(ctx, g, scanner)

	logger(ctx).Info("application started",
		slog.String(logx.FieldAppName, cfg.App.Name),
		slog.String(logx.FieldAppVersion, cfg.App.Version),
		logx.Stringer(logx.FieldMode, mode),
		slog.Int(logx.FieldWorkers, svc.Workers()),
	)

	if err := g.Wait(); err != nil {
		return fmt.Errorf("g.Wait: %w", err)
	}

	logger(ctx).Info("application stopped")

	return nil
}
