// Package config provides configuration management for the hebtok CLI.
//
// Configuration merges, in increasing precedence: built-in defaults, a
// hebtok.yaml project file, HEBTOK_-prefixed environment variables, and
// explicitly set CLI flags.
package config

import "github.com/leapstack-labs/hebtok/pkg/tokenizer"

// Default configuration values.
const (
	DefaultOutput = "auto"
	DefaultJobs   = 4
)

// Config holds all CLI configuration options. Limit-valued settings are
// plain integers here; zero or negative means unbounded, except for
// MaxMWEHyphens where 0 forbids hyphenated expressions entirely and
// only a negative value lifts the cap.
type Config struct {
	MaxCharRepetition          int    `koanf:"max_char_repetition"`
	MaxEndOfWordCharRepetition int    `koanf:"max_end_of_word_char_repetition"`
	AllowMMM                   bool   `koanf:"allow_mmm"`
	MaxOneTwoCharWordLen       int    `koanf:"max_one_two_char_word_len"`
	MaxMWEHyphens              int    `koanf:"max_mwe_hyphens"`
	AllowLineOpeningHyphens    bool   `koanf:"allow_line_opening_hyphens"`
	Strict                     string `koanf:"strict"`
	Sanitize                   bool   `koanf:"sanitize"`
	BibleMakaf                 bool   `koanf:"bible_makaf"`
	Verbose                    bool   `koanf:"verbose"`
	OutputFormat               string `koanf:"output"`
	Jobs                       int    `koanf:"jobs"`
}

// TokenizerOptions converts the CLI configuration into engine options.
func (c *Config) TokenizerOptions() (tokenizer.Options, error) {
	scope, err := tokenizer.ParseScope(c.Strict)
	if err != nil {
		return tokenizer.Options{}, err
	}
	return tokenizer.Options{
		MaxCharRepetition:          tokenizer.LimitFromInt(c.MaxCharRepetition),
		MaxEndOfWordCharRepetition: tokenizer.LimitFromInt(c.MaxEndOfWordCharRepetition),
		AllowMMM:                   c.AllowMMM,
		MaxOneTwoCharWordLen:       tokenizer.LimitFromInt(c.MaxOneTwoCharWordLen),
		MaxMWEHyphens:              mweHyphenLimit(c.MaxMWEHyphens),
		AllowLineOpeningHyphens:    c.AllowLineOpeningHyphens,
		StrictScope:                scope,
		Sanitize:                   c.Sanitize,
		BibleMakaf:                 c.BibleMakaf,
	}, nil
}

// mweHyphenLimit maps the hyphen cap setting. Unlike the other limits,
// 0 is a meaningful cap (no hyphenated expressions, e.g. for biblical
// texts), so only negative values mean unbounded.
func mweHyphenLimit(n int) tokenizer.Limit {
	if n < 0 {
		return tokenizer.Unbounded()
	}
	return tokenizer.Max(n)
}

// NewTokenizer builds a tokenizer from the CLI configuration.
func (c *Config) NewTokenizer() (*tokenizer.Tokenizer, error) {
	opts, err := c.TokenizerOptions()
	if err != nil {
		return nil, err
	}
	return tokenizer.New(opts)
}
