// Package commands implements the hebtok subcommands.
package commands

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/leapstack-labs/hebtok/internal/cli/config"
	"github.com/leapstack-labs/hebtok/internal/cli/output"
	"github.com/leapstack-labs/hebtok/pkg/tokenizer"
)

// CommandContext holds common dependencies for CLI commands.
type CommandContext struct {
	Cfg       *config.Config
	Logger    *slog.Logger
	Tokenizer *tokenizer.Tokenizer
	Renderer  *output.Renderer
}

// NewCommandContext creates a CommandContext with a configured tokenizer
// and renderer.
func NewCommandContext(cmd *cobra.Command) (*CommandContext, error) {
	cfg := getConfig()
	logger := config.GetLogger(cmd.Context())

	tok, err := cfg.NewTokenizer()
	if err != nil {
		return nil, err
	}

	mode := output.Mode(cfg.OutputFormat)
	r := output.NewRenderer(cmd.OutOrStdout(), cmd.ErrOrStderr(), mode)

	return &CommandContext{
		Cfg:       cfg,
		Logger:    logger,
		Tokenizer: tok,
		Renderer:  r,
	}, nil
}

// getConfig returns the current configuration, falling back to defaults
// when no config has been loaded (e.g. a command run in isolation).
func getConfig() *config.Config {
	if cfg := config.GetCurrentConfig(); cfg != nil {
		return cfg
	}
	return &config.Config{
		MaxCharRepetition:          2,
		MaxEndOfWordCharRepetition: 2,
		AllowMMM:                   true,
		MaxOneTwoCharWordLen:       7,
		MaxMWEHyphens:              1,
		AllowLineOpeningHyphens:    true,
		Strict:                     "none",
		Sanitize:                   true,
		OutputFormat:               config.DefaultOutput,
		Jobs:                       config.DefaultJobs,
	}
}

// input is one named text to process. Name is empty for stdin.
type input struct {
	Name string
	Text string
}

// readInputs reads every file argument, or stdin when there are none.
// Files are read concurrently, capped at the configured job count, and
// results keep argument order.
func readInputs(cmd *cobra.Command, args []string, jobs int) ([]input, error) {
	if len(args) == 0 {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return nil, fmt.Errorf("failed to read stdin: %w", err)
		}
		return []input{{Text: string(data)}}, nil
	}

	if jobs < 1 {
		jobs = 1
	}
	inputs := make([]input, len(args))
	var g errgroup.Group
	g.SetLimit(jobs)
	for i, path := range args {
		g.Go(func() error {
			data, err := os.ReadFile(path)
			if err != nil {
				return fmt.Errorf("failed to read %s: %w", path, err)
			}
			inputs[i] = input{Name: path, Text: string(data)}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return inputs, nil
}
