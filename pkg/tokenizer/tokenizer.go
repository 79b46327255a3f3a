// Package tokenizer extracts valid Hebrew words and multi-word-expression
// candidates from dirty texts: social media, subtitles and web crawls.
//
// Well-formedness rules (final-letter placement, repetition caps, low
// diversity caps) reject slang typing artifacts; hyphen and space joining
// assembles MWE candidates; an optional strict mode enforces that an MWE
// is the only Hebrew content in its clause, sentence or line.
package tokenizer

import (
	"github.com/leapstack-labs/hebtok/pkg/hebrew"
	"github.com/leapstack-labs/hebtok/pkg/token"
)

// Tokenizer is a configured, immutable tokenization engine. It keeps no
// state between calls and is safe for concurrent use.
type Tokenizer struct {
	opts Options
}

// New builds a Tokenizer, rejecting configurations that can never take
// effect (a bounded end-of-word repetition cap above the general cap).
func New(opts Options) (*Tokenizer, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}
	return &Tokenizer{opts: opts}, nil
}

// NewDefault builds a Tokenizer with DefaultOptions.
func NewDefault() *Tokenizer {
	t, err := New(DefaultOptions())
	if err != nil {
		panic(err) // defaults are always valid
	}
	return t
}

// Options returns the configuration the Tokenizer was built with.
func (t *Tokenizer) Options() Options {
	return t.opts
}

// Tokenize extracts the ordered token stream from text. Rejected
// candidates are silently dropped; malformed or non-Hebrew input yields
// an empty stream, never an error.
func (t *Tokenizer) Tokenize(text string) []token.Token {
	in := t.prepare(text)
	tree := segmentScopes(in)

	var out []token.Token
	for li := range tree.lines {
		line := &tree.lines[li]
		for _, cand := range t.assembleLine(in, line) {
			if cand.mwe && t.opts.StrictScope != ScopeNone &&
				!exclusive(tree, t.opts.StrictScope, cand.span) {
				cand.mwe = false
			}
			if cand.mwe {
				out = append(out, t.newToken(in, tree, token.MWE, cand.span))
				continue
			}
			for _, w := range cand.words {
				out = append(out, t.newToken(in, tree, token.Word, w))
			}
		}
	}
	return out
}

// Words returns every valid word in text, including the constituents of
// multi-word expressions, in source order.
func (t *Tokenizer) Words(text string) []string {
	in := t.prepare(text)
	tree := segmentScopes(in)

	var words []string
	for li := range tree.lines {
		line := &tree.lines[li]
		for _, run := range line.runs {
			if cleanBounds(in, line.span, run) && t.validWord(run.graphemes) {
				words = append(words, string(in[run.span.start:run.span.end]))
			}
		}
	}
	return words
}

// HasWord reports whether text contains at least one valid word.
func (t *Tokenizer) HasWord(text string) bool {
	return len(t.Words(text)) > 0
}

// IsWord reports whether text is exactly one valid word.
func (t *Tokenizer) IsWord(text string) bool {
	in := t.prepare(text)
	runs := scanLetterRuns(in, 0, len(in))
	if len(runs) != 1 || runs[0].span.start != 0 || runs[0].span.end != len(in) {
		return false
	}
	return t.validWord(runs[0].graphemes)
}

// IsMWE reports whether text is exactly one multi-word expression.
func (t *Tokenizer) IsMWE(text string) bool {
	in := t.prepare(text)
	tree := segmentScopes(in)
	if len(tree.lines) != 1 {
		return false
	}
	cands := t.assembleLine(in, &tree.lines[0])
	return len(cands) == 1 && cands[0].mwe &&
		cands[0].span.start == 0 && cands[0].span.end == len(in)
}

// IsWordOrMWE reports whether text is exactly one word or one MWE.
func (t *Tokenizer) IsWordOrMWE(text string) bool {
	return t.IsWord(text) || t.IsMWE(text)
}

// MWEs returns the multi-word-expression candidates in text, honoring
// the configured strict scope.
func (t *Tokenizer) MWEs(text string) []string {
	var out []string
	for _, tok := range t.Tokenize(text) {
		if tok.Kind == token.MWE {
			out = append(out, tok.Literal)
		}
	}
	return out
}

// prepare normalizes text and applies the line-opening hyphen rule,
// returning the rune sequence all spans refer to.
func (t *Tokenizer) prepare(text string) []rune {
	if t.opts.Sanitize {
		text = hebrew.SanitizeWith(text, hebrew.SanitizeOptions{BibleMakaf: t.opts.BibleMakaf})
	}
	in := []rune(text)
	if t.opts.AllowLineOpeningHyphens {
		neutralizeLineOpeningHyphens(in)
	}
	return in
}

func (t *Tokenizer) newToken(in []rune, tree *scopeTree, kind token.Kind, s span) token.Token {
	return token.Token{
		Kind:    kind,
		Literal: string(in[s.start:s.end]),
		Span: token.Span{
			Start: tree.position(s.start),
			End:   tree.position(s.end),
		},
	}
}

// position converts a rune offset to a line/column position.
func (t *scopeTree) position(off int) token.Position {
	for li := range t.lines {
		line := &t.lines[li]
		if off >= line.span.start && off <= line.span.end {
			return token.Position{
				Line:   line.num,
				Column: off - line.span.start + 1,
				Offset: off,
			}
		}
	}
	return token.Position{Offset: off}
}
