package tokenizer

import "github.com/leapstack-labs/hebtok/pkg/hebrew"

// validWord decides whether a grapheme sequence is a well-formed Hebrew
// word under the configured rules. Rules are checked in order and
// short-circuit; rejection is the normal negative outcome.
func (t *Tokenizer) validWord(gs []grapheme) bool {
	if !validCharset(gs) {
		return false
	}
	if len(gs) < 2 {
		return false
	}
	if !t.validRepetition(gs) {
		return false
	}
	return t.validDiversity(gs)
}

// validCharset enforces final-letter placement. A final form may only
// end the word, except ף which is permitted anywhere. A base letter with
// a final counterpart may not end the word, except geresh-marked Tsadi.
func validCharset(gs []grapheme) bool {
	for i, g := range gs {
		last := i == len(gs)-1
		if hebrew.IsFinalForm(g.letter) && !last && g.letter != 'ף' {
			return false
		}
		if last && hebrew.HasFinalForm(g.letter) && !(g.letter == 'צ' && g.geresh) {
			return false
		}
	}
	return true
}

// validRepetition caps same-grapheme run lengths. The named carve-out
// permits a run of exactly three mem under the default cap of 2; the
// trailing run is additionally capped without any carve-out.
func (t *Tokenizer) validRepetition(gs []grapheme) bool {
	rep := t.opts.MaxCharRepetition
	endRep := t.opts.MaxEndOfWordCharRepetition
	i := 0
	for i < len(gs) {
		j := i
		for j < len(gs) && gs[j] == gs[i] {
			j++
		}
		n := j - i
		if !rep.Allows(n) {
			mmm := t.opts.AllowMMM && rep.Bounded() && rep.Value() == 2 &&
				n == 3 && gs[i] == grapheme{letter: 'מ'}
			if !mmm {
				return false
			}
		}
		if j == len(gs) && !endRep.Allows(n) {
			return false
		}
		i = j
	}
	return true
}

// validDiversity caps the length of words built from at most two
// distinct graphemes, a common form of slang writing.
func (t *Tokenizer) validDiversity(gs []grapheme) bool {
	if !t.opts.MaxOneTwoCharWordLen.Bounded() {
		return true
	}
	distinct := make(map[grapheme]struct{}, 4)
	for _, g := range gs {
		distinct[g] = struct{}{}
		if len(distinct) > 2 {
			return true
		}
	}
	return t.opts.MaxOneTwoCharWordLen.Allows(len(gs))
}
