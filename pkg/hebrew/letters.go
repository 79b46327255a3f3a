// Package hebrew provides the Hebrew alphabet tables, character
// classification, and text normalization used by the tokenizer.
package hebrew

import "strings"

// Geresh is the ASCII apostrophe that marks loanword sounds after
// normalization (e.g. 'צ, 'ג, 'ז).
const Geresh = '\''

// FinalForms are the five word-final glyph forms.
const FinalForms = "ךםןףץ"

// FinalBases are the base counterparts of FinalForms, in the same order.
const FinalBases = "כמנפצ"

// GereshLetters are the letters a geresh may attach to.
const GereshLetters = "גזצץ"

var (
	toFinal    = map[rune]rune{'כ': 'ך', 'מ': 'ם', 'נ': 'ן', 'פ': 'ף', 'צ': 'ץ'}
	toNonFinal = map[rune]rune{'ך': 'כ', 'ם': 'מ', 'ן': 'נ', 'ף': 'פ', 'ץ': 'צ'}
)

// IsLetter reports whether r is a Hebrew letter (base or final form).
func IsLetter(r rune) bool {
	return r >= 'א' && r <= 'ת'
}

// IsFinalForm reports whether r is one of the five final forms.
func IsFinalForm(r rune) bool {
	_, ok := toNonFinal[r]
	return ok
}

// HasFinalForm reports whether r is a base letter with a distinct final form.
func HasFinalForm(r rune) bool {
	_, ok := toFinal[r]
	return ok
}

// AllowsGeresh reports whether a geresh may attach to r.
func AllowsGeresh(r rune) bool {
	return strings.ContainsRune(GereshLetters, r)
}

// ToFinal maps base letters to their final forms, leaving all other
// runes unchanged.
func ToFinal(s string) string {
	return strings.Map(func(r rune) rune {
		if f, ok := toFinal[r]; ok {
			return f
		}
		return r
	}, s)
}

// ToNonFinal maps final forms to their base letters, leaving all other
// runes unchanged.
func ToNonFinal(s string) string {
	return strings.Map(func(r rune) rune {
		if b, ok := toNonFinal[r]; ok {
			return b
		}
		return r
	}, s)
}
