package cli

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"bankocr/internal/application"
	"bankocr/internal/domain/service/scan"
	"bankocr/internal/domain/value"
	"bankocr/internal/infrastructure/gridfile"
	"bankocr/pkg/contextx"
	"bankocr/pkg/logx"
)

var logger = contextx.LoggerFromContextOrDefault //nolint:gochecknoglobals

type processMode struct {
	mode  scan.Mode
	short string
}

//nolint:gochecknoglobals
var (
	modeDecode   = processMode{mode: scan.ModeDecode, short: "Print the decoded number of every entry ('?' marks an unknown glyph)"}
	modeValidate = processMode{mode: scan.ModeValidate, short: "Print every number with ILL or ERR when it is illegible or fails the checksum"}
	modeRepair   = processMode{mode: scan.ModeRepair, short: "Print every number, repairing a single misread segment where possible"}
)

func newProcessCommand(opts *options, pm processMode) *cobra.Command {
	return &cobra.Command{
		Use:   pm.mode.String() + " [file]",
		Short: pm.short,
		Long: pm.short + `.

The grid is read from the file, or from stdin when the file is omitted or "-".`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := stdinPath
			if len(args) == 1 {
				path = args[0]
			}

			return opts.process(cmd, pm.mode, path)
		},
	}
}

func (o *options) process(cmd *cobra.Command, mode scan.Mode, path string) error {
	ctx := cmd.Context()

	blocks, err := o.readBlocks(cmd, path)
	if err != nil {
		return err
	}

	svc := application.NewScanService(o.cfg.Scanner, nil)

	lines, err := svc.Process(ctx, mode, blocks)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}

	logger(ctx).Debug("grid processed",
		slog.String(logx.FieldFile, path),
		logx.Stringer(logx.FieldMode, mode),
		slog.Int(logx.FieldAccounts, len(lines)),
		slog.Int(logx.FieldWorkers, svc.Workers()),
	)

	return o.writeLines(cmd, lines)
}

func (o *options) readBlocks(cmd *cobra.Command, path string) ([]value.GlyphBlock, error) {
	if path == stdinPath {
		blocks, err := gridfile.ParseBlocks(cmd.InOrStdin())
		if err != nil {
			return nil, fmt.Errorf("stdin: %w", err)
		}
		return blocks, nil
	}

	blocks, err := gridfile.NewReader(o.fs).ReadBlocks(path)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return blocks, nil
}

func (o *options) gridWriter() *gridfile.Writer {
	return gridfile.NewWriter(o.fs)
}
