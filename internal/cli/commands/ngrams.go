package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/leapstack-labs/hebtok/internal/cli/output"
)

// NewNgramsCommand creates the ngrams command.
func NewNgramsCommand() *cobra.Command {
	var n int
	cmd := &cobra.Command{
		Use:   "ngrams [file...]",
		Short: "List word n-grams over multi-word expressions",
		Long: `Slide a window of n words over every multi-word expression in the
input and print each n-gram, space-joined, one per line.`,
		Example: `  # Bigrams (the default)
  hebtok ngrams corpus.txt

  # Trigrams
  hebtok ngrams -n 3 corpus.txt`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if n < 1 {
				return fmt.Errorf("invalid n-gram size %d", n)
			}
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
					Strings: cmdCtx.Tokenizer.MWENgramStrings(in.Text, n),
				}
			}
			return cmdCtx.Renderer.RenderStrings(results)
		},
	}

	cmd.Flags().IntVarP(&n, "size", "n", 2, "N-gram size in words")

	return cmd
}
