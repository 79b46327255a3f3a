package commands

import (
	"github.com/spf13/cobra"

	"github.com/leapstack-labs/hebtok/internal/cli/output"
)

// NewWordsCommand creates the words command.
func NewWordsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "words [file...]",
		Short: "List every valid Hebrew word",
		Long: `Extract every valid Hebrew word from the input, including the
constituents of multi-word expressions, one word per line.`,
		Example: `  # List words from a file
  hebtok words corpus.txt

  # Count distinct words
  hebtok words corpus.txt | sort | uniq -c`,
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
					Strings: cmdCtx.Tokenizer.Words(in.Text),
				}
			}
			return cmdCtx.Renderer.RenderStrings(results)
		},
	}
}
