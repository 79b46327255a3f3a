package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/hebtok/pkg/tokenizer"
)

func writeConfigFile(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, "hebtok.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadConfigDefaults(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Cleanup(ResetConfig)

	cfg, err := LoadConfig("", nil)
	require.NoError(t, err)

	assert.Equal(t, 2, cfg.MaxCharRepetition)
	assert.Equal(t, 2, cfg.MaxEndOfWordCharRepetition)
	assert.True(t, cfg.AllowMMM)
	assert.Equal(t, 7, cfg.MaxOneTwoCharWordLen)
	assert.Equal(t, 1, cfg.MaxMWEHyphens)
	assert.True(t, cfg.AllowLineOpeningHyphens)
	assert.Equal(t, "none", cfg.Strict)
	assert.True(t, cfg.Sanitize)
	assert.False(t, cfg.BibleMakaf)
	assert.Equal(t, DefaultOutput, cfg.OutputFormat)
	assert.Equal(t, DefaultJobs, cfg.Jobs)
	assert.Empty(t, GetConfigFileUsed())
}

func TestLoadConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := writeConfigFile(t, dir, "max_mwe_hyphens: 3\nstrict: line\nallow_mmm: false\n")
	t.Cleanup(ResetConfig)

	cfg, err := LoadConfig(path, nil)
	require.NoError(t, err)

	assert.Equal(t, 3, cfg.MaxMWEHyphens)
	assert.Equal(t, "line", cfg.Strict)
	assert.False(t, cfg.AllowMMM)
	// Unset keys keep their defaults.
	assert.Equal(t, 2, cfg.MaxCharRepetition)
	assert.Equal(t, path, GetConfigFileUsed())
}

func TestLoadConfigFindsFileInCwd(t *testing.T) {
	dir := t.TempDir()
	writeConfigFile(t, dir, "jobs: 9\n")
	t.Chdir(dir)
	t.Cleanup(ResetConfig)

	cfg, err := LoadConfig("", nil)
	require.NoError(t, err)
	assert.Equal(t, 9, cfg.Jobs)
}

func TestLoadConfigFindsFileUpward(t *testing.T) {
	dir := t.TempDir()
	writeConfigFile(t, dir, "strict: sentence\n")
	nested := filepath.Join(dir, "a", "b")
	require.NoError(t, os.MkdirAll(nested, 0o755))
	t.Chdir(nested)
	t.Cleanup(ResetConfig)

	cfg, err := LoadConfig("", nil)
	require.NoError(t, err)
	assert.Equal(t, "sentence", cfg.Strict)
}

func TestLoadConfigEnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	path := writeConfigFile(t, dir, "max_mwe_hyphens: 3\n")
	t.Setenv("HEBTOK_MAX_MWE_HYPHENS", "5")
	t.Cleanup(ResetConfig)

	cfg, err := LoadConfig(path, nil)
	require.NoError(t, err)
	assert.Equal(t, 5, cfg.MaxMWEHyphens)
}

func TestLoadConfigFlagsOverrideEnv(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("HEBTOK_MAX_MWE_HYPHENS", "5")
	t.Cleanup(ResetConfig)

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.Int("max-mwe-hyphens", 1, "")
	flags.String("strict", "none", "")
	require.NoError(t, flags.Set("max-mwe-hyphens", "2"))

	cfg, err := LoadConfig("", flags)
	require.NoError(t, err)
	assert.Equal(t, 2, cfg.MaxMWEHyphens)
	// Flags left at their default are not applied.
	assert.Equal(t, "none", cfg.Strict)
}

func TestLoadConfigRejectsUnknownScope(t *testing.T) {
	dir := t.TempDir()
	path := writeConfigFile(t, dir, "strict: paragraph\n")
	t.Cleanup(ResetConfig)

	_, err := LoadConfig(path, nil)
	assert.Error(t, err)
}

func TestTokenizerOptionsMapping(t *testing.T) {
	cfg := &Config{
		MaxCharRepetition:          2,
		MaxEndOfWordCharRepetition: 0, // unbounded
		AllowMMM:                   true,
		MaxOneTwoCharWordLen:       7,
		MaxMWEHyphens:              -1, // unbounded
		AllowLineOpeningHyphens:    true,
		Strict:                     "clause",
		Sanitize:                   true,
	}

	opts, err := cfg.TokenizerOptions()
	require.NoError(t, err)
	assert.Equal(t, tokenizer.Max(2), opts.MaxCharRepetition)
	assert.Equal(t, tokenizer.Unbounded(), opts.MaxEndOfWordCharRepetition)
	assert.Equal(t, tokenizer.Unbounded(), opts.MaxMWEHyphens)
	assert.Equal(t, tokenizer.ScopeClause, opts.StrictScope)
	assert.True(t, opts.Sanitize)
}

func TestZeroMWEHyphensForbidsHyphenation(t *testing.T) {
	// 0 is a real cap here, not shorthand for unbounded: it disables
	// hyphen-joined expressions entirely, as used for biblical texts.
	cfg := &Config{MaxCharRepetition: 2, MaxMWEHyphens: 0, Strict: "none"}

	opts, err := cfg.TokenizerOptions()
	require.NoError(t, err)
	assert.Equal(t, tokenizer.Max(0), opts.MaxMWEHyphens)

	tok, err := cfg.NewTokenizer()
	require.NoError(t, err)
	assert.Equal(t, []string{"שלום", "עולם"}, tok.Words("שלום-עולם"))
}

func TestNewTokenizerRejectsContradictoryCaps(t *testing.T) {
	cfg := &Config{
		MaxCharRepetition:          2,
		MaxEndOfWordCharRepetition: 3,
	}
	_, err := cfg.NewTokenizer()
	assert.Error(t, err)
}
