package commands

import (
	"github.com/spf13/cobra"

	"github.com/leapstack-labs/hebtok/pkg/hebrew"
)

// SanitizeOptions holds options for the sanitize command.
type SanitizeOptions struct {
	KeepDiacritics bool
}

// NewSanitizeCommand creates the sanitize command.
func NewSanitizeCommand() *cobra.Command {
	opts := &SanitizeOptions{}
	cmd := &cobra.Command{
		Use:   "sanitize [file...]",
		Short: "Normalize Hebrew text",
		Long: `Run only the normalization pipeline: strip diacritics, rewrite pasek
and sof-pasuk as word and sentence separators, and fold typographic
punctuation to ASCII. The text is otherwise left intact.`,
		Example: `  # Normalize a biblical text for tokenization
  hebtok sanitize --bible-makaf genesis.txt

  # Keep nikud, normalize everything else
  hebtok sanitize --keep-diacritics poem.txt`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmdCtx, err := NewCommandContext(cmd)
			if err != nil {
				return err
			}

			inputs, err := readInputs(cmd, args, cmdCtx.Cfg.Jobs)
			if err != nil {
				return err
			}

			for _, in := range inputs {
				cleaned := hebrew.SanitizeWith(in.Text, hebrew.SanitizeOptions{
					KeepDiacritics: opts.KeepDiacritics,
					BibleMakaf:     cmdCtx.Cfg.BibleMakaf,
				})
				cmdCtx.Renderer.Printf("%s", cleaned)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&opts.KeepDiacritics, "keep-diacritics", false, "Leave nikud and teamim in place")

	return cmd
}
