package csljson_test

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/aicoder2009/opencitation/citation"
	"github.com/aicoder2009/opencitation/exchange"
	"github.com/aicoder2009/opencitation/exchange/csljson"
)

func TestSerialize_JournalItem(t *testing.T) {
	j := &citation.Journal{
		JournalTitle: "Nature",
		Volume:       "171",
		Issue:        "4356",
		PageRange:    "737-738",
	}
	j.Title = "Molecular Structure of Nucleic Acids"
	j.Authors = []citation.Author{
		{FirstName: "James", MiddleName: "D.", LastName: "Watson"},
		{FirstName: "Francis", LastName: "Crick"},
	}
	j.PublicationDate = &citation.Date{Year: 1953, Month: 4, Day: 25}
	j.DOI = "10.1038/171737a0"

	var buf bytes.Buffer
	f := &csljson.Format{}
	if err := f.Serialize(&buf, []citation.Fields{j}, exchange.NewOptions()); err != nil {
		t.Fatalf("Serialize failed: %v", err)
	}

	// A single record encodes as one object, not a one-element array.
	var item map[string]any
	if err := json.Unmarshal(buf.Bytes(), &item); err != nil {
		t.Fatalf("parsing CSL JSON output: %v", err)
	}

	cases := []struct {
		field string
		want  string
	}{
		{"type", "article-journal"},
		{"title", "Molecular Structure of Nucleic Acids"},
		{"container-title", "Nature"},
		{"volume", "171"},
		{"issue", "4356"},
		{"page", "737-738"},
		{"DOI", "10.1038/171737a0"},
	}
	for _, tc := range cases {
		got, _ := item[tc.field].(string)
		if got != tc.want {
			t.Errorf("item[%q] = %q, want %q", tc.field, got, tc.want)
		}
	}

	authors, _ := item["author"].([]any)
	if len(authors) != 2 {
		t.Fatalf("author count = %d, want 2", len(authors))
	}
	first, _ := authors[0].(map[string]any)
	if family, _ := first["family"].(string); family != "Watson" {
		t.Errorf("author[0].family = %q, want %q", family, "Watson")
	}
	if given, _ := first["given"].(string); given != "James D." {
		t.Errorf("author[0].given = %q, want %q", given, "James D.")
	}

	issued, _ := item["issued"].(map[string]any)
	parts, _ := issued["date-parts"].([]any)
	if len(parts) != 1 {
		t.Fatalf("date-parts outer length = %d, want 1", len(parts))
	}
	inner, _ := parts[0].([]any)
	want := []float64{1953, 4, 25}
	if len(inner) != len(want) {
		t.Fatalf("date-parts = %v, want %v", inner, want)
	}
	for i, w := range want {
		if got, _ := inner[i].(float64); got != w {
			t.Errorf("date-parts[%d] = %v, want %v", i, inner[i], w)
		}
	}
}

func TestSerialize_MultipleRecordsEncodeAsArray(t *testing.T) {
	one := &citation.Book{}
	one.Title = "One"
	two := &citation.Website{}
	two.Title = "Two"

	var buf bytes.Buffer
	f := &csljson.Format{}
	if err := f.Serialize(&buf, []citation.Fields{one, two}, exchange.NewOptions()); err != nil {
		t.Fatalf("Serialize failed: %v", err)
	}

	var items []map[string]any
	if err := json.Unmarshal(buf.Bytes(), &items); err != nil {
		t.Fatalf("parsing CSL JSON array: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("item count = %d, want 2", len(items))
	}
	if got, _ := items[0]["type"].(string); got != "book" {
		t.Errorf("items[0].type = %q, want %q", got, "book")
	}
	if got, _ := items[1]["type"].(string); got != "webpage" {
		t.Errorf("items[1].type = %q, want %q", got, "webpage")
	}
}

func TestSerialize_OrganizationAuthorUsesLiteral(t *testing.T) {
	w := &citation.Website{}
	w.Title = "Guidelines"
	w.Authors = []citation.Author{{LastName: "World Health Organization", IsOrganization: true}}

	var buf bytes.Buffer
	f := &csljson.Format{}
	if err := f.Serialize(&buf, []citation.Fields{w}, exchange.NewOptions()); err != nil {
		t.Fatalf("Serialize failed: %v", err)
	}

	var item map[string]any
	if err := json.Unmarshal(buf.Bytes(), &item); err != nil {
		t.Fatalf("parsing output: %v", err)
	}
	authors, _ := item["author"].([]any)
	if len(authors) != 1 {
		t.Fatalf("author count = %d, want 1", len(authors))
	}
	a, _ := authors[0].(map[string]any)
	if literal, _ := a["literal"].(string); literal != "World Health Organization" {
		t.Errorf("author[0].literal = %q, want organization name", literal)
	}
	if _, ok := a["family"]; ok {
		t.Error("organization author has a family name, want literal only")
	}
}

func TestSerialize_PrettyIndentsOutput(t *testing.T) {
	b := &citation.Book{}
	b.Title = "One"

	var buf bytes.Buffer
	f := &csljson.Format{}
	opts := exchange.NewOptions()
	opts.Pretty = true
	if err := f.Serialize(&buf, []citation.Fields{b}, opts); err != nil {
		t.Fatalf("Serialize failed: %v", err)
	}
	if !strings.Contains(buf.String(), "\n  \"") {
		t.Errorf("pretty output is not indented:\n%s", buf.String())
	}
}
