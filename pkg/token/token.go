// Package token defines the output token types for Hebrew text
// tokenization: a token kind, its literal text, and its source span.
package token

import (
	"encoding/json"
	"fmt"
)

// Kind classifies an emitted token.
type Kind int

const (
	// Word is a single validated Hebrew word.
	Word Kind = iota
	// MWE is a multi-word-expression candidate: two or more validated
	// words joined by hyphens or single spaces.
	MWE
)

// String returns a human-readable representation of the token kind.
func (k Kind) String() string {
	switch k {
	case Word:
		return "WORD"
	case MWE:
		return "MWE"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// MarshalJSON encodes the kind as its string name.
func (k Kind) MarshalJSON() ([]byte, error) {
	return json.Marshal(k.String())
}

// UnmarshalJSON decodes a kind from its string name.
func (k *Kind) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	switch s {
	case "WORD":
		*k = Word
	case "MWE":
		*k = MWE
	default:
		return fmt.Errorf("unknown token kind %q", s)
	}
	return nil
}

// Token is a single emitted token.
type Token struct {
	Kind    Kind   `json:"kind"`
	Literal string `json:"literal"`
	Span    Span   `json:"span"`
}

func (t Token) String() string {
	return fmt.Sprintf("%s %q @%d:%d", t.Kind, t.Literal, t.Span.Start.Line, t.Span.Start.Column)
}
