// Package render provides the shared rendering layer used by every citation
// style: a lockstep plain-text/HTML entry builder plus text, date, and
// identifier helpers.
//
// Each formatter appends one logical citation element at a time (authors,
// date, title, container, locator, identifier) as a sequence of spans. The
// builder renders both output forms from that single sequence, so the text
// and HTML renderings cannot drift apart.
package render

import (
	"html"
	"strings"

	"github.com/aicoder2009/opencitation/citation"
)

// SpanKind distinguishes how a span is rendered in the HTML output.
type SpanKind int

// The span kinds.
const (
	KindPlain SpanKind = iota
	KindItalic
	KindLink
)

// Span is one run of text within a citation element.
type Span struct {
	Kind SpanKind
	Text string
}

// Text returns a plain span.
func Text(s string) Span { return Span{Kind: KindPlain, Text: s} }

// Italic returns a span italicized in the HTML output.
func Italic(s string) Span { return Span{Kind: KindItalic, Text: s} }

// Link returns a span hyperlinked in the HTML output. The plain output
// carries the URL verbatim.
func Link(url string) Span { return Span{Kind: KindLink, Text: url} }

// Entry accumulates the elements of a single citation. Spans passed to one
// Add call concatenate into one element; elements are joined with single
// spaces. Both output forms are rendered from the span sequence in
// Formatted, so markup never has to be re-parsed.
type Entry struct {
	elements [][]Span
}

// Add appends one citation element built from the given spans. Elements
// whose spans are all empty are dropped.
func (e *Entry) Add(spans ...Span) {
	kept := make([]Span, 0, len(spans))
	for _, s := range spans {
		if s.Text != "" {
			kept = append(kept, s)
		}
	}
	if len(kept) == 0 {
		return
	}
	e.elements = append(e.elements, kept)
}

// AddText appends a single plain element.
func (e *Entry) AddText(s string) {
	e.Add(Text(s))
}

// Empty reports whether no elements have been added.
func (e *Entry) Empty() bool {
	return len(e.elements) == 0
}

// Terminate fixes the terminal punctuation of the structurally last span:
// a trailing comma or semicolon is replaced by p, and a span ending without
// punctuation gains p. Spans already ending in terminal punctuation are left
// alone. Punctuation landing after an italic or link span goes into a new
// plain span, keeping it outside the markup.
func (e *Entry) Terminate(p string) {
	if len(e.elements) == 0 {
		return
	}
	elem := e.elements[len(e.elements)-1]
	last := &elem[len(elem)-1]
	switch {
	case strings.HasSuffix(last.Text, ",") || strings.HasSuffix(last.Text, ";"):
		last.Text = last.Text[:len(last.Text)-1]
	case strings.HasSuffix(last.Text, ".") || strings.HasSuffix(last.Text, "?") || strings.HasSuffix(last.Text, "!"):
		return
	}
	if last.Kind == KindPlain {
		last.Text += p
		return
	}
	e.elements[len(e.elements)-1] = append(elem, Text(p))
}

// Formatted renders the accumulated span elements into the final citation
// pair, escaping and tagging the HTML form.
func (e *Entry) Formatted() citation.Formatted {
	parts := make([]string, 0, len(e.elements))
	htmlParts := make([]string, 0, len(e.elements))
	for _, spans := range e.elements {
		var text, htmlText strings.Builder
		for _, s := range spans {
			if s.Text == "" {
				continue
			}
			text.WriteString(s.Text)
			switch s.Kind {
			case KindItalic:
				htmlText.WriteString("<em>")
				htmlText.WriteString(html.EscapeString(s.Text))
				htmlText.WriteString("</em>")
			case KindLink:
				escaped := html.EscapeString(s.Text)
				htmlText.WriteString(`<a href="` + escaped + `">` + escaped + `</a>`)
			default:
				htmlText.WriteString(html.EscapeString(s.Text))
			}
		}
		parts = append(parts, text.String())
		htmlParts = append(htmlParts, htmlText.String())
	}
	return citation.Formatted{
		Text: strings.Join(parts, " "),
		HTML: strings.Join(htmlParts, " "),
	}
}

// EscapeHTML escapes &, <, >, " and ' for interpolation into HTML, with the
// ampersand handled first so entities are never double-escaped.
func EscapeHTML(s string) string {
	return html.EscapeString(s)
}
