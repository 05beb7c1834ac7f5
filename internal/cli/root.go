package cli

import (
	"fmt"
	"log/slog"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"bankocr/internal/application"
	"bankocr/internal/config"
	"bankocr/internal/infrastructure/gridfile"
	"bankocr/pkg/contextx"
)

const stdinPath = "-"

type options struct {
	fs  afero.Fs
	cfg config.Config

	debug        bool
	output       string
	workers      int
	legacyTopBar bool
}

// NewRootCommand собирает дерево команд. fs используется для чтения входных
// файлов и записи результатов.
func NewRootCommand(fs afero.Fs) *cobra.Command {
	opts := &options{fs: fs}

	cmd := &cobra.Command{
		Use:   "bankocr",
		Short: "Decode, validate and repair scanned account numbers",
		Long: `bankocr reads glyph grids produced by the document scanner: three 27-character
rows of ' ', '_' and '|' per account number, followed by a blank line.

Examples:
  bankocr decode scan.txt
  bankocr validate -o scan.out scan.txt
  bankocr repair --legacy-top-bar < scan.txt
  bankocr render 345882865 490067715
  bankocr watch`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: opts.preRun,
	}

	flags := cmd.PersistentFlags()
	flags.BoolVar(&opts.debug, "debug", false, "Enable debug logging")
	flags.StringVarP(&opts.output, "output", "o", "", "Write results to a file instead of stdout")
	flags.IntVar(&opts.workers, "workers", 0, "Parallel workers (0 uses SCANNER_WORKERS or the CPU count)")
	flags.BoolVar(&opts.legacyTopBar, "legacy-top-bar", false, "Also try removing the top bar when repairing (7 -> 1)")

	cmd.AddCommand(
		newProcessCommand(opts, modeDecode),
		newProcessCommand(opts, modeValidate),
		newProcessCommand(opts, modeRepair),
		newRenderCommand(opts),
		newWatchCommand(opts),
	)

	return cmd
}

func (o *options) preRun(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("config.Load: %w", err)
	}

	if o.debug {
		cfg.Log.Level = slog.LevelDebug.String()
	}

	if cmd.Flags().Changed("workers") {
		cfg.Scanner.Workers = o.workers
	}

	if cmd.Flags().Changed("legacy-top-bar") {
		cfg.Scanner.TopBarRemoval = o.legacyTopBar
	}

	log, err := application.NewLogger(cmd.ErrOrStderr(), cfg.Log)
	if err != nil {
		return fmt.Errorf("application.NewLogger: %w", err)
	}

	o.cfg = cfg
	cmd.SetContext(contextx.WithLogger(cmd.Context(), log))

	return nil
}

// writeLines пишет результат в файл из --output или в stdout команды.
func (o *options) writeLines(cmd *cobra.Command, lines []string) error {
	if o.output != "" {
		return o.gridWriter().WriteLines(o.output, lines)
	}

	return gridfile.WriteLines(cmd.OutOrStdout(), lines)
}
