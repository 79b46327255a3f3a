package tokenizer

import "strings"

// MWEWords returns the constituent word lists of each MWE in text.
func (t *Tokenizer) MWEWords(text string) [][]string {
	mwes := t.MWEs(text)
	out := make([][]string, 0, len(mwes))
	for _, m := range mwes {
		out = append(out, splitMWE(m))
	}
	return out
}

// MWEWordsFlat returns the constituent words of every MWE in text as a
// single flat list.
func (t *Tokenizer) MWEWordsFlat(text string) []string {
	var out []string
	for _, words := range t.MWEWords(text) {
		out = append(out, words...)
	}
	return out
}

// MWENgrams returns every word n-gram over the MWEs of text. MWEs
// shorter than n words contribute nothing.
func (t *Tokenizer) MWENgrams(text string, n int) [][]string {
	if n < 1 {
		return nil
	}
	var out [][]string
	for _, words := range t.MWEWords(text) {
		for i := 0; i+n <= len(words); i++ {
			out = append(out, words[i:i+n])
		}
	}
	return out
}

// MWENgramStrings returns MWENgrams with each n-gram joined by a space.
func (t *Tokenizer) MWENgramStrings(text string, n int) []string {
	grams := t.MWENgrams(text, n)
	out := make([]string, 0, len(grams))
	for _, g := range grams {
		out = append(out, strings.Join(g, " "))
	}
	return out
}

// MWEBigrams returns every word bigram over the MWEs of text.
func (t *Tokenizer) MWEBigrams(text string) [][]string {
	return t.MWENgrams(text, 2)
}

// splitMWE splits an MWE literal on its separators (space or hyphen).
func splitMWE(m string) []string {
	return strings.FieldsFunc(m, func(r rune) bool {
		return r == ' ' || r == '-'
	})
}
