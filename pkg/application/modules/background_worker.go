package modules

import (
	"context"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"
)

type Worker interface {
	Start(ctx context.Context) error
	Stop()
}

// BackgroundWorker модуль, запускающий воркер и останавливающий его
// по отмене контекста.
type BackgroundWorker struct {
	Name string
}

func (b BackgroundWorker) Run(
	ctx context.Context,
	g *errgroup.Group,
	worker Worker,
) {
	g.Go(func() error {
		if err := worker.Start(ctx); err != nil {
			return fmt.Errorf("%s.Start: %w", b.Name, err)
		}

		logger(ctx).Info("worker started", slog.String("name", b.Name))

		<-ctx.Done()

		worker.Stop()

		logger(ctx).Info("worker stopped", slog.String("name", b.Name))

		return nil
	})
}
