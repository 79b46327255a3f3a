package tokenizer

import (
	"unicode"

	"github.com/leapstack-labs/hebtok/pkg/hebrew"
)

// grapheme is one validation unit: a Hebrew letter plus an optional
// attached geresh (e.g. 'צ counts as a single grapheme).
type grapheme struct {
	letter rune
	geresh bool
}

// span is a half-open rune-offset range into the normalized input.
type span struct {
	start, end int
}

func (s span) contains(off int) bool {
	return off >= s.start && off < s.end
}

func (s span) overlaps(o span) bool {
	return s.start < o.end && o.start < s.end
}

func (s span) within(o span) bool {
	return s.start >= o.start && s.end <= o.end
}

// letterRun is a maximal run of Hebrew letters (with attached gereshim)
// within the input.
type letterRun struct {
	span      span
	graphemes []grapheme
}

// scanLetterRuns extracts all letter runs from in[lo:hi], with spans in
// absolute offsets. A geresh directly after ג, ז, צ or ץ is folded into
// the preceding grapheme and does not end the run.
func scanLetterRuns(in []rune, lo, hi int) []letterRun {
	var runs []letterRun
	i := lo
	for i < hi {
		if !hebrew.IsLetter(in[i]) {
			i++
			continue
		}
		run := letterRun{span: span{start: i}}
		for i < hi && hebrew.IsLetter(in[i]) {
			g := grapheme{letter: in[i]}
			i++
			if i < hi && in[i] == hebrew.Geresh && hebrew.AllowsGeresh(g.letter) {
				g.geresh = true
				i++
			}
			run.graphemes = append(run.graphemes, g)
		}
		run.span.end = i
		runs = append(runs, run)
	}
	return runs
}

// isWordChar reports whether r would fuse with an adjacent Hebrew word:
// any letter or digit, or the underscore.
func isWordChar(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}

// cleanBounds reports whether a letter run is cleanly delimited in the
// line, so that it can stand as a word candidate. Runs fused to digits,
// Latin letters, trailing apostrophes, or punctuation that glues them to
// further Hebrew text are not candidates.
func cleanBounds(in []rune, line span, run letterRun) bool {
	if run.span.start > line.start {
		p := in[run.span.start-1]
		if isWordChar(p) {
			return false
		}
		// A quote or other mark squeezed between Hebrew letters does not
		// separate words (e.g. the ל of צה"ל).
		if !unicode.IsSpace(p) && p != '-' &&
			run.span.start-1 > line.start && hebrew.IsLetter(in[run.span.start-2]) {
			return false
		}
	}
	if run.span.end < line.end {
		q := in[run.span.end]
		if isWordChar(q) || q == hebrew.Geresh {
			return false
		}
		if q == '-' {
			// A trailing dash is only a joiner when Hebrew follows.
			if run.span.end+1 >= line.end || !hebrew.IsLetter(in[run.span.end+1]) {
				return false
			}
		} else if !unicode.IsSpace(q) &&
			run.span.end+1 < line.end && hebrew.IsLetter(in[run.span.end+1]) {
			return false
		}
	}
	return true
}
