package tokenizer

import "unicode"

// scopeTree is the line → sentence → clause hierarchy of one input, with
// the Hebrew-letter-run spans recorded per line. It is built once per
// tokenization and queried read-only by the strict-mode check.
type scopeTree struct {
	lines []lineScope
}

type lineScope struct {
	num       int // 1-based source line number
	span      span
	sentences []sentenceScope
	runs      []letterRun
}

type sentenceScope struct {
	span    span
	clauses []span
}

// segmentScopes partitions the normalized input into lines, sentences
// and clauses, recording every letter run per line. Empty lines are
// counted but recorded as no scope; every recorded span is non-empty.
func segmentScopes(in []rune) *scopeTree {
	tree := &scopeTree{}
	start, num := 0, 0
	for i := 0; i <= len(in); i++ {
		atBreak := i == len(in) || in[i] == '\n' || in[i] == '\r'
		if !atBreak {
			continue
		}
		num++
		if start < i {
			line := span{start: start, end: i}
			tree.lines = append(tree.lines, lineScope{
				num:       num,
				span:      line,
				sentences: segmentSentences(in, line),
				runs:      scanLetterRuns(in, line.start, line.end),
			})
		}
		// Swallow \r\n as a single break.
		if i+1 < len(in) && in[i] == '\r' && in[i+1] == '\n' {
			i++
		}
		start = i + 1
	}
	return tree
}

func isSentenceSep(r rune) bool {
	return r == '.' || r == '?' || r == '!'
}

// segmentSentences splits a line on runs of sentence-terminal
// punctuation; each terminal run belongs to the preceding sentence.
func segmentSentences(in []rune, line span) []sentenceScope {
	var sentences []sentenceScope
	start := line.start
	i := line.start
	for i < line.end {
		if !isSentenceSep(in[i]) {
			i++
			continue
		}
		for i < line.end && isSentenceSep(in[i]) {
			i++
		}
		sentences = appendSentence(sentences, in, span{start: start, end: i})
		start = i
	}
	return appendSentence(sentences, in, span{start: start, end: line.end})
}

func appendSentence(sentences []sentenceScope, in []rune, s span) []sentenceScope {
	if s.start >= s.end {
		return sentences
	}
	return append(sentences, sentenceScope{span: s, clauses: segmentClauses(in, s)})
}

// clauseSepLen returns the length of a clause separator starting at i, or
// 0 when there is none. Separators are: a tab; terminal or closing
// punctuation followed by whitespace; whitespace followed by opening
// punctuation; and a dash between spaces.
func clauseSepLen(in []rune, i, end int) int {
	r := in[i]
	if r == '\t' {
		return 1
	}
	if i+1 < end {
		switch r {
		case '.', '?', '!', ':', ';', ',', ')', '"':
			if unicode.IsSpace(in[i+1]) {
				return 2
			}
		}
		if unicode.IsSpace(r) && (in[i+1] == '(' || in[i+1] == '"') {
			return 2
		}
		if i+2 < end && unicode.IsSpace(r) && in[i+1] == '-' && unicode.IsSpace(in[i+2]) {
			return 3
		}
	}
	return 0
}

// segmentClauses splits a sentence on clause separators. A sentence
// without separators is itself a single clause.
func segmentClauses(in []rune, sentence span) []span {
	var clauses []span
	start := sentence.start
	i := sentence.start
	for i < sentence.end {
		n := clauseSepLen(in, i, sentence.end)
		if n == 0 {
			i++
			continue
		}
		if start < i {
			clauses = append(clauses, span{start: start, end: i})
		}
		i += n
		start = i
	}
	if start < sentence.end {
		clauses = append(clauses, span{start: start, end: sentence.end})
	}
	return clauses
}

// enclosing resolves the scope span at the given level containing the
// rune offset. The boolean is false when no scope contains it.
func (t *scopeTree) enclosing(level Scope, off int) (span, bool) {
	for li := range t.lines {
		line := &t.lines[li]
		if !line.span.contains(off) {
			continue
		}
		if level == ScopeLine {
			return line.span, true
		}
		for si := range line.sentences {
			sent := &line.sentences[si]
			if !sent.span.contains(off) {
				continue
			}
			if level == ScopeSentence {
				return sent.span, true
			}
			for _, cl := range sent.clauses {
				if cl.contains(off) {
					return cl, true
				}
			}
		}
		return span{}, false
	}
	return span{}, false
}

// runsOverlapping returns the letter-run spans overlapping s.
func (t *scopeTree) runsOverlapping(s span) []span {
	var spans []span
	for li := range t.lines {
		line := &t.lines[li]
		if !line.span.overlaps(s) {
			continue
		}
		for _, run := range line.runs {
			if run.span.overlaps(s) {
				spans = append(spans, run.span)
			}
		}
	}
	return spans
}
