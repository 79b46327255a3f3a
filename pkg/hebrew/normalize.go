package hebrew

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
)

const (
	makaf    = '־'
	pasek    = '׀'
	sofPasuk = '׃'
)

// diacritics covers all nikud and teamim except makaf, pasek, sof-pasuk
// and nun-hafukha, which carry word- or sentence-level meaning.
var diacritics = &unicode.RangeTable{
	R16: []unicode.Range16{
		{Lo: 0x0591, Hi: 0x05bd, Stride: 1},
		{Lo: 0x05bf, Hi: 0x05bf, Stride: 1},
		{Lo: 0x05c1, Hi: 0x05c2, Stride: 1},
		{Lo: 0x05c4, Hi: 0x05c5, Stride: 1},
		{Lo: 0x05c7, Hi: 0x05c7, Stride: 1},
	},
}

var stripDiacritics = runes.Remove(runes.In(diacritics))

// asciiFold maps Hebrew punctuation and common typographic characters to
// their ASCII equivalents. Hebrew letters are never touched.
var asciiFold = map[rune]string{
	makaf:    "-",
	'׳': "'",  // geresh
	'״': "\"", // gershayim
	'‘': "'", '’': "'", '‚': "'", '‛': "'",
	'“': "\"", '”': "\"", '„': "\"", '‟': "\"",
	'‐': "-", '‑': "-", '‒': "-", '–': "-",
	'—': "-", '―': "-", '−': "-",
	'…': "...",
	' ': " ", ' ': " ", ' ': " ", ' ': " ",
	' ': " ", ' ': " ",
	'«': "\"", '»': "\"",
	'‹': "'", '›': "'",
}

// SanitizeOptions control the normalization pipeline.
type SanitizeOptions struct {
	// KeepDiacritics leaves nikud and teamim in place.
	KeepDiacritics bool

	// BibleMakaf treats makaf as a taam rather than hyphenation and
	// replaces it with a space (for biblical texts).
	BibleMakaf bool
}

// RemoveDiacritics strips all nikud and teamim from text.
func RemoveDiacritics(text string) string {
	out, _, _ := transform.String(stripDiacritics, text)
	return out
}

// Sanitize normalizes text with default options: diacritics are removed,
// pasek and sof-pasuk become word and sentence separators, and non-ASCII
// punctuation is folded to ASCII equivalents.
func Sanitize(text string) string {
	return SanitizeWith(text, SanitizeOptions{})
}

// SanitizeWith normalizes text for tokenization.
func SanitizeWith(text string, opts SanitizeOptions) string {
	if !opts.KeepDiacritics {
		text = RemoveDiacritics(text)
	}
	if opts.BibleMakaf {
		text = strings.ReplaceAll(text, string(makaf), " ")
	}
	text = replacePasukMarks(text)

	var b strings.Builder
	b.Grow(len(text))
	for _, r := range text {
		if repl, ok := asciiFold[r]; ok {
			b.WriteString(repl)
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// isHorizSpace reports whether r is horizontal whitespace: a space
// character that is not a tab or a line/page break.
func isHorizSpace(r rune) bool {
	switch r {
	case '\t', '\n', '\r', '\f', '\v':
		return false
	}
	return unicode.IsSpace(r)
}

// replacePasukMarks rewrites pasek (with surrounding horizontal space) as
// a single space between words, and sof-pasuk as an end of sentence.
func replacePasukMarks(text string) string {
	in := []rune(text)
	var b strings.Builder
	b.Grow(len(text))
	for i := 0; i < len(in); i++ {
		r := in[i]
		if r != pasek && r != sofPasuk {
			if isHorizSpace(r) {
				// Look ahead: horizontal space followed by a pasuk mark is
				// absorbed into the mark's replacement.
				j := i
				for j < len(in) && isHorizSpace(in[j]) {
					j++
				}
				if j < len(in) && (in[j] == pasek || in[j] == sofPasuk) {
					i = j - 1
					continue
				}
			}
			b.WriteRune(r)
			continue
		}
		for i+1 < len(in) && isHorizSpace(in[i+1]) {
			i++
		}
		if r == pasek {
			b.WriteString(" ")
		} else {
			b.WriteString(". ")
		}
	}
	return b.String()
}
