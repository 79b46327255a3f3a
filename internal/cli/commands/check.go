package commands

import (
	"errors"

	"github.com/spf13/cobra"
)

// errNotValid signals a failed check without an error message; the
// result has already been rendered.
var errNotValid = errors.New("input is not a valid word or expression")

// NewCheckCommand creates the check command.
func NewCheckCommand() *cobra.Command {
	var mweOnly, wordOnly bool
	cmd := &cobra.Command{
		Use:   "check <text>...",
		Short: "Check whether text is a valid word or expression",
		Long: `Check each argument for being exactly one valid Hebrew word or one
multi-word expression. Prints ok/fail per argument and exits non-zero
when any check fails.`,
		Example: `  hebtok check שלום
  hebtok check --mwe "שלום עולם"
  hebtok check שלום שלוםם && echo all valid`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmdCtx, err := NewCommandContext(cmd)
			if err != nil {
				return err
			}
			tok := cmdCtx.Tokenizer
			r := cmdCtx.Renderer
			styles := r.Styles()

			allValid := true
			for _, arg := range args {
				var valid bool
				switch {
				case wordOnly:
					valid = tok.IsWord(arg)
				case mweOnly:
					valid = tok.IsMWE(arg)
				default:
					valid = tok.IsWordOrMWE(arg)
				}
				if valid {
					r.Printf("%s\t%s\n", styles.Success.Render("ok"), arg)
				} else {
					r.Printf("%s\t%s\n", styles.Error.Render("fail"), arg)
					allValid = false
				}
			}
			if !allValid {
				cmd.SilenceErrors = true
				return errNotValid
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&wordOnly, "word", false, "Require a single word")
	cmd.Flags().BoolVar(&mweOnly, "mwe", false, "Require a multi-word expression")
	cmd.MarkFlagsMutuallyExclusive("word", "mwe")

	return cmd
}
