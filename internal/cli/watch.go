package cli

import (
	"github.com/spf13/cobra"

	"bankocr/internal/application"
)

func newWatchCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "watch",
		Short: "Process grid files dropped into the inbox directory until interrupted",
		Long: `watch polls SCANNER_INBOX_DIR every SCANNER_INTERVAL for *.txt grid files.
Each file is processed in SCANNER_MODE, the result is written to
SCANNER_OUTPUT_DIR/<name>.out and the source is moved to SCANNER_PROCESSED_DIR
(with a .failed suffix when the grid is malformed).

The ops server on OPS_LISTEN_ADDRESS serves /healthz, /ready and /metrics.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return application.Run(cmd.Context(), opts.fs, opts.cfg)
		},
	}
}
