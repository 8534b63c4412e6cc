package engine_test

import (
	"strings"
	"testing"

	"github.com/aicoder2009/opencitation/citation"
	"github.com/aicoder2009/opencitation/engine"
)

func testBook(title string, year int) *citation.Book {
	book := &citation.Book{}
	book.Title = title
	book.Authors = []citation.Author{{FirstName: "Jane", LastName: "Doe"}}
	book.PublicationDate = &citation.Date{Year: year}
	return book
}

func TestFormat_DispatchesByStyleName(t *testing.T) {
	book := testBook("The Great Gatsby", 1925)

	apa := engine.Format(book, "apa")
	mla := engine.Format(book, "mla")
	if apa.Text == mla.Text {
		t.Errorf("APA and MLA rendered identically: %q", apa.Text)
	}

	// Style lookup is case-insensitive.
	upper := engine.Format(book, "APA")
	if upper.Text != apa.Text {
		t.Errorf("Format(book, \"APA\") = %q, want %q", upper.Text, apa.Text)
	}
}

func TestFormat_UnknownStyleFallsBackToAPA(t *testing.T) {
	book := testBook("The Great Gatsby", 1925)

	got := engine.Format(book, "vancouver")
	want := engine.Format(book, "apa")
	if got.Text != want.Text || got.HTML != want.HTML {
		t.Errorf("Format(book, \"vancouver\") = %q, want APA output %q", got.Text, want.Text)
	}
}

func TestFormat_UnknownSourceTypeRendersEmpty(t *testing.T) {
	unknown := &citation.Unknown{Type: "podcast"}
	unknown.Title = "Episode 1"

	got := engine.Format(unknown, "apa")
	if got.Text != "" || got.HTML != "" {
		t.Errorf("Format(unknown) = %+v, want empty", got)
	}
}

func TestFormat_RecognizedTagOnUnknownVariantRendersEmpty(t *testing.T) {
	// An Unknown record can carry any tag, including one a style would
	// otherwise dispatch on. Formatting must stay empty, not panic.
	unknown := &citation.Unknown{Type: citation.SourceBook}
	unknown.Title = "Mislabeled"

	for _, name := range []string{"apa", "mla", "chicago", "harvard"} {
		got := engine.Format(unknown, name)
		if got.Text != "" || got.HTML != "" {
			t.Errorf("Format(unknown, %q) = %+v, want empty", name, got)
		}
	}
}

func TestFormatAll_PreservesOrder(t *testing.T) {
	records := []citation.Fields{
		testBook("Alpha", 2001),
		testBook("Beta", 2002),
		testBook("Gamma", 2003),
	}

	entries := engine.FormatAll(records, "apa")
	if len(entries) != len(records) {
		t.Fatalf("entry count = %d, want %d", len(entries), len(records))
	}
	for i, want := range []string{"Alpha", "Beta", "Gamma"} {
		if !strings.Contains(entries[i].Text, want) {
			t.Errorf("entries[%d].Text = %q, want it to contain %q", i, entries[i].Text, want)
		}
	}
}

func TestFormatAll_IsDeterministic(t *testing.T) {
	records := []citation.Fields{testBook("Alpha", 2001), testBook("Beta", 2002)}

	first := engine.FormatAll(records, "chicago")
	second := engine.FormatAll(records, "chicago")
	for i := range first {
		if first[i] != second[i] {
			t.Errorf("entries[%d] differ between runs: %q vs %q", i, first[i].Text, second[i].Text)
		}
	}
}

func TestInText_DispatchesByStyleName(t *testing.T) {
	book := testBook("The Great Gatsby", 1925)

	cases := []struct {
		style string
		want  string
	}{
		{"apa", "(Doe, 1925)"},
		{"mla", "(Doe)"},
		{"chicago", "(Doe 1925)"},
		{"harvard", "(Doe, 1925)"},
		{"nonsense", "(Doe, 1925)"}, // APA fallback
	}
	for _, tc := range cases {
		if got := engine.InText(book, tc.style); got != tc.want {
			t.Errorf("InText(book, %q) = %q, want %q", tc.style, got, tc.want)
		}
	}
}
