package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/afero"

	"bankocr/internal/cli"
	"bankocr/pkg/logx"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	slog.SetDefault(logx.New(os.Stderr, slog.LevelInfo, false))

	if err := cli.NewRootCommand(afero.NewOsFs()).ExecuteContext(ctx); err != nil {
		slog.Error("bankocr failed", logx.Error(err))
		cancel()
		os.Exit(1) //nolint:gocritic
	}
}
