package tokenizer_test

import (
	"strings"
	"testing"

	"github.com/leapstack-labs/hebtok/pkg/token"
	"github.com/leapstack-labs/hebtok/pkg/tokenizer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func literals(toks []token.Token) []string {
	out := make([]string, len(toks))
	for i, tk := range toks {
		out[i] = tk.Literal
	}
	return out
}

func kinds(toks []token.Token) []token.Kind {
	out := make([]token.Kind, len(toks))
	for i, tk := range toks {
		out[i] = tk.Kind
	}
	return out
}

func TestTokenizeBasic(t *testing.T) {
	tok := newDefault(t)

	toks := tok.Tokenize("שלום עולם, בדיקה")
	require.Len(t, toks, 2)
	assert.Equal(t, []string{"שלום עולם", "בדיקה"}, literals(toks))
	assert.Equal(t, []token.Kind{token.MWE, token.Word}, kinds(toks))
}

func TestTokenizeEmptyAndNonHebrew(t *testing.T) {
	tok := newDefault(t)

	assert.Empty(t, tok.Tokenize(""))
	assert.Empty(t, tok.Tokenize("hello world 123"))
	assert.Empty(t, tok.Tokenize("!?.,-"))
}

func TestTokenizeHyphenMWE(t *testing.T) {
	tok := newDefault(t)

	toks := tok.Tokenize("שלום-עולם")
	require.Len(t, toks, 1)
	assert.Equal(t, token.MWE, toks[0].Kind)
	assert.Equal(t, "שלום-עולם", toks[0].Literal)
}

func TestTokenizeHyphenCap(t *testing.T) {
	tok := newDefault(t)

	// Three hyphens exceed the default cap of one, so the chain
	// bursts into plain words.
	toks := tok.Tokenize("אב-גד-הו-זח")
	require.Len(t, toks, 4)
	assert.Equal(t, []string{"אב", "גד", "הו", "זח"}, literals(toks))
	for _, tk := range toks {
		assert.Equal(t, token.Word, tk.Kind)
	}

	unbounded := newWith(t, func(o *tokenizer.Options) {
		o.MaxMWEHyphens = tokenizer.Unbounded()
	})
	toks = unbounded.Tokenize("אב-גד-הו-זח")
	require.Len(t, toks, 1)
	assert.Equal(t, token.MWE, toks[0].Kind)
	assert.Equal(t, "אב-גד-הו-זח", toks[0].Literal)
}

func TestTokenizeSpaceMWE(t *testing.T) {
	tok := newDefault(t)

	toks := tok.Tokenize("אמר: \"שלום עולם\" בסוף")
	require.Len(t, toks, 3)
	assert.Equal(t, []string{"אמר", "שלום עולם", "בסוף"}, literals(toks))
	assert.Equal(t, []token.Kind{token.Word, token.MWE, token.Word}, kinds(toks))
}

func TestTokenizeQuotesBreakGrouping(t *testing.T) {
	tok := newDefault(t)

	// The quotes sit between the quoted pair and its neighbors, so
	// those gaps are not a single space and no wider expression forms.
	// The neighbors still stand as words on their own.
	toks := tok.Tokenize("אמר \"שלום עולם\" לכולם")
	require.Len(t, toks, 3)
	assert.Equal(t, []string{"אמר", "שלום עולם", "לכולם"}, literals(toks))
	assert.Equal(t, []token.Kind{token.Word, token.MWE, token.Word}, kinds(toks))
}

func TestTokenizeMixedLinksStaySeparate(t *testing.T) {
	tok := newDefault(t)

	// A hyphen chain does not merge with a space neighbor.
	toks := tok.Tokenize("אב גד-הו")
	require.Len(t, toks, 2)
	assert.Equal(t, []string{"אב", "גד-הו"}, literals(toks))
	assert.Equal(t, []token.Kind{token.Word, token.MWE}, kinds(toks))
}

func TestTokenizeOverlongChainNeighborsStaySingle(t *testing.T) {
	tok := newDefault(t)

	// The burst chain also blocks its space neighbor from grouping.
	toks := tok.Tokenize("שלום עולם-אב-גד")
	require.Len(t, toks, 4)
	assert.Equal(t, []string{"שלום", "עולם", "אב", "גד"}, literals(toks))
	for _, tk := range toks {
		assert.Equal(t, token.Word, tk.Kind)
	}
}

func TestTokenizeLineOpeningHyphens(t *testing.T) {
	allow := newDefault(t)

	toks := allow.Tokenize("-שלום-עולם")
	require.Len(t, toks, 1)
	assert.Equal(t, token.MWE, toks[0].Kind)
	assert.Equal(t, "שלום-עולם", toks[0].Literal)

	deny := newWith(t, func(o *tokenizer.Options) {
		o.AllowLineOpeningHyphens = false
	})
	toks = deny.Tokenize("-שלום-עולם")
	require.Len(t, toks, 2)
	assert.Equal(t, []string{"שלום", "עולם"}, literals(toks))
}

func TestTokenizeShortFragmentsDropped(t *testing.T) {
	tok := newDefault(t)

	assert.Empty(t, tok.Tokenize("א-ב-ג-ד"))
	assert.Empty(t, tok.Tokenize("א ב ג"))
}

func TestTokenizeMultiline(t *testing.T) {
	tok := newDefault(t)

	toks := tok.Tokenize("שלום עולם\nבדיקה אחת")
	require.Len(t, toks, 2)
	assert.Equal(t, []string{"שלום עולם", "בדיקה אחת"}, literals(toks))
	assert.Equal(t, 1, toks[0].Span.Start.Line)
	assert.Equal(t, 2, toks[1].Span.Start.Line)
}

func TestTokenizeBlankLinesKeepNumbering(t *testing.T) {
	tok := newDefault(t)

	toks := tok.Tokenize("שלום\n\nעולם")
	require.Len(t, toks, 2)
	assert.Equal(t, 1, toks[0].Span.Start.Line)
	assert.Equal(t, 3, toks[1].Span.Start.Line)
}

func TestTokenizePositions(t *testing.T) {
	tok := newDefault(t)

	toks := tok.Tokenize("123 שלום")
	require.Len(t, toks, 1)
	assert.Equal(t, 1, toks[0].Span.Start.Line)
	assert.Equal(t, 5, toks[0].Span.Start.Column)
	assert.Equal(t, 4, toks[0].Span.Start.Offset)
	assert.Equal(t, 8, toks[0].Span.End.Offset)
}

func TestTokenizeAbbreviationsRejected(t *testing.T) {
	tok := newDefault(t)

	assert.Empty(t, tok.Tokenize("וכו'"), "trailing apostrophe")
	assert.Empty(t, tok.Tokenize("צה\"ל"), "inner quote mark")
	assert.Empty(t, tok.Tokenize("שלום123"), "digit suffix")
	assert.Empty(t, tok.Tokenize("123שלום"), "digit prefix")
}

func TestWordsIncludesMWEConstituents(t *testing.T) {
	tok := newDefault(t)

	words := tok.Words("שלום-עולם בדיקה")
	assert.Equal(t, []string{"שלום", "עולם", "בדיקה"}, words)
}

func TestHasWord(t *testing.T) {
	tok := newDefault(t)

	assert.True(t, tok.HasWord("123 שלום 456"))
	assert.False(t, tok.HasWord("123 456"))
	assert.False(t, tok.HasWord(""))
}

func TestIsMWE(t *testing.T) {
	tok := newDefault(t)

	assert.True(t, tok.IsMWE("שלום עולם"))
	assert.True(t, tok.IsMWE("שלום-עולם"))
	assert.False(t, tok.IsMWE("שלום"))
	assert.False(t, tok.IsMWE("שלום עולם."), "trailing punctuation")
	assert.False(t, tok.IsMWE("אב-גד-הו-זח"), "over the hyphen cap")
	assert.False(t, tok.IsMWE(""))

	assert.True(t, tok.IsWordOrMWE("שלום"))
	assert.True(t, tok.IsWordOrMWE("שלום עולם"))
	assert.False(t, tok.IsWordOrMWE("שלום עולם."))
}

func TestMWEs(t *testing.T) {
	tok := newDefault(t)

	mwes := tok.MWEs("שלום עולם. בית-ספר גדול")
	assert.Equal(t, []string{"שלום עולם", "בית-ספר"}, mwes)
}

func TestTokenizeIdempotent(t *testing.T) {
	tok := newDefault(t)

	inputs := []string{
		"שלום עולם, בדיקה אחת-שתיים",
		"אב-גד-הו-זח וגם שלושה",
		"-שלום-עולם\nבית ספר",
	}
	for _, in := range inputs {
		first := tok.Tokenize(in)
		joined := strings.Join(literals(first), "\n")
		second := tok.Tokenize(joined)
		assert.Equal(t, literals(first), literals(second), "input %q", in)
		assert.Equal(t, kinds(first), kinds(second), "input %q", in)
	}
}
