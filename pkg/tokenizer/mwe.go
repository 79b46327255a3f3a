package tokenizer

// candidate is an assembled token candidate: either a single word or a
// multi-word expression with its constituent word spans.
type candidate struct {
	span    span
	words   []span
	hyphens int
	mwe     bool
}

type linkKind int

const (
	linkNone linkKind = iota
	linkSpace
	linkHyphen
)

// assembleLine produces the token candidates of one line: validated
// words, hyphen chains, and space groups, in source order.
func (t *Tokenizer) assembleLine(in []rune, line *lineScope) []candidate {
	var words []span
	for _, run := range line.runs {
		if cleanBounds(in, line.span, run) && t.validWord(run.graphemes) {
			words = append(words, run.span)
		}
	}
	if len(words) == 0 {
		return nil
	}

	// Classify the gap between each pair of adjacent words. Only a lone
	// hyphen or a single space joins; anything else separates.
	links := make([]linkKind, len(words)-1)
	for k := 0; k+1 < len(words); k++ {
		gap := in[words[k].end:words[k+1].start]
		switch {
		case len(gap) == 1 && gap[0] == '-':
			links[k] = linkHyphen
		case len(gap) == 1 && gap[0] == ' ':
			links[k] = linkSpace
		}
	}

	inChain := make([]bool, len(words))
	var cands []candidate

	// Hyphen chains first; they bind tighter than space grouping.
	for i := 0; i < len(words); i++ {
		if i+1 >= len(words) || links[i] != linkHyphen {
			continue
		}
		j := i
		for j+1 < len(words) && links[j] == linkHyphen {
			j++
		}
		for k := i; k <= j; k++ {
			inChain[k] = true
		}
		chain := span{start: words[i].start, end: words[j].end}
		hyphens := j - i
		joined := t.opts.MaxMWEHyphens.Allows(hyphens) &&
			!hyphenBefore(in, line.span, words[i]) &&
			!hyphenAfter(in, line.span, words[j])
		cands = append(cands, candidate{
			span:    chain,
			words:   words[i : j+1],
			hyphens: hyphens,
			mwe:     joined,
		})
		i = j
	}

	// Space groups among the remaining words.
	for i := 0; i < len(words); i++ {
		if inChain[i] {
			continue
		}
		j := i
		for j+1 < len(words) && !inChain[j+1] && links[j] == linkSpace {
			j++
		}
		first, last := i, j
		// A dash touching either end disqualifies the edge word from the
		// group (it belongs to broken hyphenation, not the expression).
		for first <= last && hyphenBefore(in, line.span, words[first]) {
			cands = append(cands, candidate{span: words[first], words: words[first : first+1]})
			first++
		}
		var trailing []candidate
		for last >= first && hyphenAfter(in, line.span, words[last]) {
			trailing = append([]candidate{{span: words[last], words: words[last : last+1]}}, trailing...)
			last--
		}
		if last-first+1 >= 2 {
			cands = append(cands, candidate{
				span:  span{start: words[first].start, end: words[last].end},
				words: words[first : last+1],
				mwe:   true,
			})
		} else {
			for k := first; k <= last; k++ {
				cands = append(cands, candidate{span: words[k], words: words[k : k+1]})
			}
		}
		cands = append(cands, trailing...)
		i = j
	}

	sortCandidates(cands)
	return cands
}

func hyphenBefore(in []rune, line span, w span) bool {
	return w.start > line.start && in[w.start-1] == '-'
}

func hyphenAfter(in []rune, line span, w span) bool {
	return w.end < line.end && in[w.end] == '-'
}

// sortCandidates orders candidates by start offset. Assembly appends
// chains and space groups in separate passes, so a line mixing both can
// come out of source order.
func sortCandidates(cands []candidate) {
	for i := 1; i < len(cands); i++ {
		for j := i; j > 0 && cands[j].span.start < cands[j-1].span.start; j-- {
			cands[j], cands[j-1] = cands[j-1], cands[j]
		}
	}
}

// neutralizeLineOpeningHyphens blanks the conversational/enumeration
// dash (one or two, after optional indentation) at the start of each
// line when it directly precedes a word, so it is not read as an MWE
// joiner. Operates in place; spans are unaffected.
func neutralizeLineOpeningHyphens(in []rune) {
	atLineStart := true
	for i := 0; i < len(in); i++ {
		r := in[i]
		if r == '\n' || r == '\r' {
			atLineStart = true
			continue
		}
		if !atLineStart {
			continue
		}
		if isHorizSpaceRune(r) || r == '\t' {
			continue
		}
		atLineStart = false
		if r != '-' {
			continue
		}
		j := i
		for j < len(in) && in[j] == '-' && j-i < 2 {
			j++
		}
		if j < len(in) && isWordChar(in[j]) {
			for k := i; k < j; k++ {
				in[k] = ' '
			}
		}
	}
}

func isHorizSpaceRune(r rune) bool {
	return r == ' ' || r == ' '
}
