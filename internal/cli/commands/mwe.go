package commands

import (
	"github.com/spf13/cobra"

	"github.com/leapstack-labs/hebtok/internal/cli/output"
)

// NewMWECommand creates the mwe command.
func NewMWECommand() *cobra.Command {
	return &cobra.Command{
		Use:   "mwe [file...]",
		Short: "List multi-word-expression candidates",
		Long: `Extract multi-word-expression candidates: two or more valid words
joined by single spaces, or by hyphens up to the configured cap.`,
		Example: `  # List MWE candidates
  hebtok mwe corpus.txt

  # Only expressions that are alone in their clause
  hebtok mwe --strict clause corpus.txt`,
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
				results[i] = output.FileStrings{
					File:    in.Name,
					Strings: cmdCtx.Tokenizer.MWEs(in.Text),
				}
			}
			return cmdCtx.Renderer.RenderStrings(results)
		},
	}
}
