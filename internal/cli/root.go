// Package cli provides the command-line interface for hebtok.
package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/leapstack-labs/hebtok/internal/cli/commands"
	"github.com/leapstack-labs/hebtok/internal/cli/config"
	"github.com/leapstack-labs/hebtok/internal/cli/output"
)

var (
	cfgFile string
	cfg     *config.Config
)

// Version information (set at build time).
var (
	Version   = "0.1.0"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

// configKey is used to store config in context.
type configKey struct{}

// rendererKey is used to store renderer in context.
type rendererKey struct{}

// NewRootCmd creates and returns the root command.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "hebtok",
		Short: "Hebtok - Hebrew tokenizer for dirty texts",
		Long: `Hebtok extracts valid Hebrew words and multi-word expressions from
dirty texts: social media, subtitles, forums and web crawls.

It validates candidate words against Hebrew orthography (final-letter
placement, repetition caps), joins words into multi-word-expression
candidates, and normalizes typographic and biblical punctuation.`,
		Version: Version,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Name() == "help" || cmd.Name() == "completion" || cmd.Name() == "__complete" {
				return nil
			}

			var err error
			cfg, err = config.LoadConfig(cfgFile, cmd.Root().PersistentFlags())
			if err != nil {
				return err
			}

			ctx := context.WithValue(cmd.Context(), configKey{}, cfg)

			mode := output.Mode(cfg.OutputFormat)
			renderer := output.NewRenderer(cmd.OutOrStdout(), cmd.ErrOrStderr(), mode)
			ctx = context.WithValue(ctx, rendererKey{}, renderer)

			logger := slog.New(slog.DiscardHandler)
			if cfg.Verbose {
				logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{
					Level: slog.LevelDebug,
				}))
			}
			ctx = context.WithValue(ctx, config.LoggerKey(), logger)
			cmd.SetContext(ctx)

			if cfg.Verbose {
				if configFile := config.GetConfigFileUsed(); configFile != "" {
					logger.Debug("using config file", "path", configFile)
				}
			}

			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.SetVersionTemplate(`{{.Name}} {{.Version}}
Hebrew tokenizer
`)

	// Global persistent flags, mirroring the config keys.
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: ./hebtok.yaml)")
	rootCmd.PersistentFlags().Int("max-char-repetition", 2, "Max same-letter run length in a word (0 for unlimited)")
	rootCmd.PersistentFlags().Int("max-end-of-word-char-repetition", 2, "Max same-letter run length at the end of a word (0 for unlimited)")
	rootCmd.PersistentFlags().Bool("allow-mmm", true, "Permit a triple mem under the default repetition cap")
	rootCmd.PersistentFlags().Int("max-one-two-char-word-len", 7, "Max length of words built from at most two distinct letters (0 for unlimited)")
	rootCmd.PersistentFlags().Int("max-mwe-hyphens", 1, "Max hyphens in a multi-word expression (0 forbids them, negative for unlimited)")
	rootCmd.PersistentFlags().Bool("allow-line-opening-hyphens", true, "Ignore a conversational dash at the start of a line")
	rootCmd.PersistentFlags().String("strict", "none", "Require MWEs to be alone in their scope (none|clause|sentence|line)")
	rootCmd.PersistentFlags().Bool("sanitize", true, "Normalize diacritics and punctuation before tokenizing")
	rootCmd.PersistentFlags().Bool("bible-makaf", false, "Treat makaf as a word separator (biblical texts)")
	rootCmd.PersistentFlags().IntP("jobs", "j", config.DefaultJobs, "Number of files to process concurrently")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Verbose output")
	rootCmd.PersistentFlags().StringP("output", "o", "", "Output format (auto|text|table|json)")

	_ = rootCmd.RegisterFlagCompletionFunc("output", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return []string{"auto", "text", "table", "json"}, cobra.ShellCompDirectiveNoFileComp
	})
	_ = rootCmd.RegisterFlagCompletionFunc("strict", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return []string{"none", "clause", "sentence", "line"}, cobra.ShellCompDirectiveNoFileComp
	})

	rootCmd.AddCommand(commands.NewVersionCommand(Version))
	rootCmd.AddCommand(commands.NewTokenizeCommand())
	rootCmd.AddCommand(commands.NewWordsCommand())
	rootCmd.AddCommand(commands.NewMWECommand())
	rootCmd.AddCommand(commands.NewNgramsCommand())
	rootCmd.AddCommand(commands.NewBadFinalCommand())
	rootCmd.AddCommand(commands.NewSanitizeCommand())
	rootCmd.AddCommand(commands.NewCheckCommand())

	return rootCmd
}

// Execute runs the root command.
func Execute() error {
	rootCmd := NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return err
	}
	return nil
}

// GetConfig retrieves the config from the command context.
func GetConfig(ctx context.Context) *config.Config {
	if c, ok := ctx.Value(configKey{}).(*config.Config); ok {
		return c
	}
	return &config.Config{}
}

// GetRenderer retrieves the renderer from the command context.
func GetRenderer(ctx context.Context) *output.Renderer {
	if r, ok := ctx.Value(rendererKey{}).(*output.Renderer); ok {
		return r
	}
	return output.NewRenderer(os.Stdout, os.Stderr, output.ModeAuto)
}
