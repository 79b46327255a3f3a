package commands

import (
	"github.com/spf13/cobra"

	"github.com/leapstack-labs/hebtok/internal/cli/output"
)

// NewTokenizeCommand creates the tokenize command.
func NewTokenizeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "tokenize [file...]",
		Short: "Extract words and multi-word expressions",
		Long: `Tokenize Hebrew text into validated words and multi-word-expression
candidates. Reads the given files, or stdin when none are given.`,
		Example: `  # Tokenize a file
  hebtok tokenize corpus.txt

  # Tokenize from stdin as JSON
  echo "שלום עולם" | hebtok tokenize -o json

  # Keep only expressions that are alone in their sentence
  hebtok tokenize --strict sentence corpus.txt`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmdCtx, err := NewCommandContext(cmd)
			if err != nil {
				return err
			}

			inputs, err := readInputs(cmd, args, cmdCtx.Cfg.Jobs)
			if err != nil {
				return err
			}

			results := make([]output.FileTokens, len(inputs))
			for i, in := range inputs {
				results[i] = output.FileTokens{
					File:   in.Name,
					Tokens: cmdCtx.Tokenizer.Tokenize(in.Text),
				}
				cmdCtx.Logger.Debug("tokenized input",
					"file", in.Name, "tokens", len(results[i].Tokens))
			}
			return cmdCtx.Renderer.RenderTokens(results)
		},
	}
}
