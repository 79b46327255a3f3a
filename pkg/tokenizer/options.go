package tokenizer

import "fmt"

// Scope selects the strict-mode exclusivity level.
type Scope int

const (
	// ScopeNone disables the exclusivity check.
	ScopeNone Scope = iota
	// ScopeClause requires an MWE to be the only Hebrew content in its clause.
	ScopeClause
	// ScopeSentence requires an MWE to be the only Hebrew content in its sentence.
	ScopeSentence
	// ScopeLine requires an MWE to be the only Hebrew content in its line.
	ScopeLine
)

// String returns the lowercase name of the scope level.
func (s Scope) String() string {
	switch s {
	case ScopeNone:
		return "none"
	case ScopeClause:
		return "clause"
	case ScopeSentence:
		return "sentence"
	case ScopeLine:
		return "line"
	}
	return fmt.Sprintf("Scope(%d)", int(s))
}

// ParseScope parses a scope name as used in config files and CLI flags.
// The empty string parses as ScopeNone.
func ParseScope(s string) (Scope, error) {
	switch s {
	case "", "none":
		return ScopeNone, nil
	case "clause":
		return ScopeClause, nil
	case "sentence":
		return ScopeSentence, nil
	case "line":
		return ScopeLine, nil
	}
	return ScopeNone, fmt.Errorf("unknown strict scope %q (want none, clause, sentence or line)", s)
}

// Options configure a Tokenizer. The zero value is not useful; start from
// DefaultOptions and override fields as needed.
type Options struct {
	// MaxCharRepetition caps the length of any same-letter run in a word.
	MaxCharRepetition Limit

	// MaxEndOfWordCharRepetition additionally caps the trailing run.
	// When both limits are bounded it must not exceed MaxCharRepetition.
	MaxEndOfWordCharRepetition Limit

	// AllowMMM permits a run of exactly three mem when MaxCharRepetition
	// is 2, for the common legitimate words (מממן, מממש, מממשלת).
	AllowMMM bool

	// MaxOneTwoCharWordLen caps the total length of words with at most
	// two distinct letters (slang like חיחיחיחיחי).
	MaxOneTwoCharWordLen Limit

	// MaxMWEHyphens caps the hyphen count of a hyphen-joined MWE.
	// Max(0) disables hyphen joining entirely.
	MaxMWEHyphens Limit

	// AllowLineOpeningHyphens neutralizes the conversational/enumeration
	// dash at the start of a line so it is not treated as a separator.
	AllowLineOpeningHyphens bool

	// StrictScope enables the exclusivity check at the given level.
	StrictScope Scope

	// Sanitize runs the normalization pipeline on input text. Disable it
	// only for text that is already normalized.
	Sanitize bool

	// BibleMakaf treats makaf as a taam (replaced by a space) during
	// sanitization, for biblical texts.
	BibleMakaf bool
}

// DefaultOptions returns the field-tested default configuration.
func DefaultOptions() Options {
	return Options{
		MaxCharRepetition:          Max(2),
		MaxEndOfWordCharRepetition: Max(2),
		AllowMMM:                   true,
		MaxOneTwoCharWordLen:       Max(7),
		MaxMWEHyphens:              Max(1),
		AllowLineOpeningHyphens:    true,
		StrictScope:                ScopeNone,
		Sanitize:                   true,
	}
}

// InvalidOptionsError reports a configuration that can never take effect.
type InvalidOptionsError struct {
	Message string
}

func (e *InvalidOptionsError) Error() string {
	return "invalid tokenizer options: " + e.Message
}

func (o Options) validate() error {
	rep, end := o.MaxCharRepetition, o.MaxEndOfWordCharRepetition
	if rep.Bounded() && end.Bounded() && end.Value() > rep.Value() {
		return &InvalidOptionsError{Message: fmt.Sprintf(
			"max end-of-word char repetition %d cannot exceed max char repetition %d",
			end.Value(), rep.Value())}
	}
	return nil
}
