package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"bankocr/internal/domain/service/codebook"
	"bankocr/internal/domain/service/grid"
)

func newRenderCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "render <number>...",
		Short: "Draw 9-digit account numbers as a glyph grid",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			lines, err := grid.Render(codebook.Standard(), args...)
			if err != nil {
				return fmt.Errorf("grid.Render: %w", err)
			}

			return opts.writeLines(cmd, lines)
		},
	}
}
