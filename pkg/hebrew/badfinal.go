package hebrew

import (
	"strings"
	"unicode"
)

// DefaultBadFinalExceptions are known letter sequences that look like a
// misplaced final form but are legitimate fused spellings. They are only
// skipped during detection; the tokenizer itself still rejects them.
var DefaultBadFinalExceptions = []string{"לםרבה", "אנשיםות", "יוםיום", "סוףסוף"}

// BadFinalOptions control bad-final detection.
type BadFinalOptions struct {
	// KeepDiacritics skips the diacritics stripping pass.
	KeepDiacritics bool

	// KeepHashtags scans inside #hashtags instead of skipping them.
	KeepHashtags bool

	// Exceptions overrides DefaultBadFinalExceptions when non-nil.
	Exceptions []string
}

// FindBadFinal returns the first occurrence of a final-form letter
// directly followed by another letter, which usually indicates badly
// fused words or lines. The second return is false when none is found.
func FindBadFinal(text string) (string, bool) {
	all := findBadFinals(text, BadFinalOptions{}, true)
	if len(all) == 0 {
		return "", false
	}
	return all[0], true
}

// FindAllBadFinals returns every bad-final pair in the text.
func FindAllBadFinals(text string, opts BadFinalOptions) []string {
	return findBadFinals(text, opts, false)
}

func findBadFinals(text string, opts BadFinalOptions, firstOnly bool) []string {
	if !opts.KeepDiacritics {
		text = RemoveDiacritics(text)
	}
	if !opts.KeepHashtags {
		text = stripHashtags(text)
	}
	exceptions := opts.Exceptions
	if exceptions == nil {
		exceptions = DefaultBadFinalExceptions
	}
	for _, x := range exceptions {
		text = strings.ReplaceAll(text, x, "")
	}

	var found []string
	in := []rune(text)
	for i := 0; i+1 < len(in); i++ {
		if IsFinalForm(in[i]) && IsLetter(in[i+1]) && !IsFinalForm(in[i+1]) {
			found = append(found, string(in[i:i+2]))
			if firstOnly {
				return found
			}
		}
	}
	return found
}

// stripHashtags removes #hashtag sequences. Makaf, geresh and gershayim
// are accepted inside a hashtag even before punctuation normalization.
func stripHashtags(text string) string {
	in := []rune(text)
	var b strings.Builder
	b.Grow(len(text))
	for i := 0; i < len(in); i++ {
		if in[i] != '#' {
			b.WriteRune(in[i])
			continue
		}
		j := i + 1
		for j < len(in) && isHashtagRune(in[j]) {
			j++
		}
		if j == i+1 {
			b.WriteRune(in[i])
			continue
		}
		i = j - 1
	}
	return b.String()
}

func isHashtagRune(r rune) bool {
	switch r {
	case '\'', '"', '-', '_', makaf, '׳', '״':
		return true
	}
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}
