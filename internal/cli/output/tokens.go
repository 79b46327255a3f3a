package output

import (
	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/leapstack-labs/hebtok/pkg/token"
)

// FileTokens is the tokenization result of one input.
type FileTokens struct {
	File   string        `json:"file,omitempty"`
	Tokens []token.Token `json:"tokens"`
}

// FileStrings is a plain string-list result of one input (words, MWEs,
// n-grams, bad finals).
type FileStrings struct {
	File    string   `json:"file,omitempty"`
	Strings []string `json:"strings"`
}

// RenderTokens writes tokenization results in the effective mode.
func (r *Renderer) RenderTokens(results []FileTokens) error {
	switch r.EffectiveMode() {
	case ModeJSON:
		return r.JSON(results)
	case ModeTable:
		r.renderTokenTable(results)
		return nil
	}
	for _, res := range results {
		if res.File != "" {
			r.Println(r.styles.Header2.Render(res.File))
		}
		for _, tk := range res.Tokens {
			r.Printf("%s\t%s\n", r.styles.Kind.Render(tk.Kind.String()), tk.Literal)
		}
	}
	return nil
}

func (r *Renderer) renderTokenTable(results []FileTokens) {
	t := table.NewWriter()
	t.SetOutputMirror(r.out)
	t.SetStyle(table.StyleLight)
	multi := len(results) > 1
	if multi {
		t.AppendHeader(table.Row{"File", "Kind", "Literal", "Line", "Column"})
	} else {
		t.AppendHeader(table.Row{"Kind", "Literal", "Line", "Column"})
	}
	for _, res := range results {
		for _, tk := range res.Tokens {
			if multi {
				t.AppendRow(table.Row{res.File, tk.Kind, tk.Literal, tk.Span.Start.Line, tk.Span.Start.Column})
			} else {
				t.AppendRow(table.Row{tk.Kind, tk.Literal, tk.Span.Start.Line, tk.Span.Start.Column})
			}
		}
	}
	t.Render()
}

// RenderStrings writes string-list results in the effective mode. In
// text and table modes each string goes on its own line; header lines
// separate files when more than one input was given.
func (r *Renderer) RenderStrings(results []FileStrings) error {
	if r.EffectiveMode() == ModeJSON {
		return r.JSON(results)
	}
	multi := len(results) > 1
	for _, res := range results {
		if multi && res.File != "" {
			r.Println(r.styles.Header2.Render(res.File))
		}
		for _, s := range res.Strings {
			r.Println(s)
		}
	}
	return nil
}
