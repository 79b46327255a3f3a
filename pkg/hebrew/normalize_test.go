package hebrew_test

import (
	"testing"

	"github.com/leapstack-labs/hebtok/pkg/hebrew"
	"github.com/stretchr/testify/assert"
)

func TestRemoveDiacritics(t *testing.T) {
	assert.Equal(t, "בראשית", hebrew.RemoveDiacritics("בְּרֵאשִׁ֖ית"))
	assert.Equal(t, "ברא אלהים", hebrew.RemoveDiacritics("בָּרָ֣א אֱלֹהִ֑ים"))
	assert.Equal(t, "שלום", hebrew.RemoveDiacritics("שלום"))
	assert.Equal(t, "", hebrew.RemoveDiacritics(""))
}

func TestRemoveDiacriticsKeepsStructuralMarks(t *testing.T) {
	// Makaf, pasek and sof-pasuk are not diacritics.
	assert.Equal(t, "על־פני", hebrew.RemoveDiacritics("עַל־פְּנֵ֣י"))
	assert.Equal(t, "אור ׀ טוב", hebrew.RemoveDiacritics("א֥וֹר ׀ ט֑וֹב"))
	assert.Equal(t, "הארץ׃", hebrew.RemoveDiacritics("הָאָֽרֶץ׃"))
}

func TestSanitizeMakaf(t *testing.T) {
	assert.Equal(t, "על-פני", hebrew.Sanitize("על־פני"))
	assert.Equal(t, "על פני",
		hebrew.SanitizeWith("על־פני", hebrew.SanitizeOptions{BibleMakaf: true}))
}

func TestSanitizePasek(t *testing.T) {
	assert.Equal(t, "שלום עולם", hebrew.Sanitize("שלום ׀ עולם"))
	assert.Equal(t, "שלום עולם", hebrew.Sanitize("שלום׀עולם"))
}

func TestSanitizeSofPasuk(t *testing.T) {
	assert.Equal(t, "הארץ. ", hebrew.Sanitize("הארץ׃"))
	assert.Equal(t, "הארץ. והארץ", hebrew.Sanitize("הארץ׃ והארץ"))
	assert.Equal(t, "הארץ. והארץ", hebrew.Sanitize("הארץ ׃ והארץ"))
}

func TestSanitizePunctuationFolding(t *testing.T) {
	assert.Equal(t, "צ'יפס", hebrew.Sanitize("צ׳יפס"))
	assert.Equal(t, "צה\"ל", hebrew.Sanitize("צה״ל"))
	assert.Equal(t, "\"שלום\"", hebrew.Sanitize("“שלום”"))
	assert.Equal(t, "אב-גד", hebrew.Sanitize("אב–גד"))
	assert.Equal(t, "או...", hebrew.Sanitize("או…"))
	assert.Equal(t, "אב גד", hebrew.Sanitize("אב גד"))
}

func TestSanitizeKeepDiacritics(t *testing.T) {
	got := hebrew.SanitizeWith("בְּרֵאשִׁית", hebrew.SanitizeOptions{KeepDiacritics: true})
	assert.Equal(t, "בְּרֵאשִׁית", got)
}

func TestSanitizeVerse(t *testing.T) {
	in := "וַיַּבְדֵּ֗ל בֵּ֤ין הָאוֹר֙ וּבֵ֣ין הַחֹ֑שֶׁךְ׃"
	assert.Equal(t, "ויבדל בין האור ובין החשך. ", hebrew.Sanitize(in))
}

func TestSanitizePlainTextUnchanged(t *testing.T) {
	in := "שלום עולם, בדיקה אחת. (שתיים)"
	assert.Equal(t, in, hebrew.Sanitize(in))
}
