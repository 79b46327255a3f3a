package commands

import (
	"github.com/spf13/cobra"

	"github.com/leapstack-labs/hebtok/internal/cli/output"
	"github.com/leapstack-labs/hebtok/pkg/hebrew"
)

// BadFinalOptions holds options for the badfinal command.
type BadFinalOptions struct {
	All          bool // Report every finding, not just the first
	KeepHashtags bool // Scan inside #hashtags too
}

// NewBadFinalCommand creates the badfinal command.
func NewBadFinalCommand() *cobra.Command {
	opts := &BadFinalOptions{}
	cmd := &cobra.Command{
		Use:   "badfinal [file...]",
		Short: "Detect misplaced final letters",
		Long: `Scan for a final-form letter directly followed by another letter,
which usually means two words or lines were fused during extraction.
Useful as a corpus health check before tokenizing.`,
		Example: `  # Report the first bad final per file
  hebtok badfinal corpus.txt

  # Report every occurrence
  hebtok badfinal --all corpus.txt`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmdCtx, err := NewCommandContext(cmd)
			if err != nil {
				return err
			}

			inputs, err := readInputs(cmd, args, cmdCtx.Cfg.Jobs)
			if err != nil {
				return err
			}

			results := make([]output.FileStrings, len(inputs))
			for i, in := range inputs {
				var pairs []string
				if opts.All {
					pairs = hebrew.FindAllBadFinals(in.Text, hebrew.BadFinalOptions{
						KeepHashtags: opts.KeepHashtags,
					})
				} else if pair, ok := hebrew.FindBadFinal(in.Text); ok {
					pairs = []string{pair}
				}
				results[i] = output.FileStrings{File: in.Name, Strings: pairs}
			}
			return cmdCtx.Renderer.RenderStrings(results)
		},
	}

	cmd.Flags().BoolVar(&opts.All, "all", false, "Report every bad final, not just the first")
	cmd.Flags().BoolVar(&opts.KeepHashtags, "keep-hashtags", false, "Scan inside #hashtags")

	return cmd
}
