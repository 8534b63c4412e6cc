package bibtex_test

import (
	"strings"
	"testing"

	"github.com/aicoder2009/opencitation/citation"
	"github.com/aicoder2009/opencitation/exchange/bibtex"
)

func book(title, last string, year int) *citation.Book {
	b := &citation.Book{}
	b.Title = title
	if last != "" {
		b.Authors = []citation.Author{{FirstName: "Jane", LastName: last}}
	}
	if year != 0 {
		b.PublicationDate = &citation.Date{Year: year}
	}
	return b
}

func TestEntry_Book(t *testing.T) {
	b := book("The Great Gatsby", "Fitzgerald", 1925)
	b.Publisher = "Scribner"
	b.ISBN = "9780743273565"

	entry := bibtex.Entry(b)

	if !strings.HasPrefix(entry, "@book{fitzgerald1925,") {
		t.Errorf("entry header = %q, want @book{fitzgerald1925,", strings.SplitN(entry, "\n", 2)[0])
	}
	wantFields := []string{
		"  title = {The Great Gatsby},",
		"  author = {Fitzgerald, Jane},",
		"  year = {1925},",
		"  publisher = {Scribner},",
		"  isbn = {9780743273565},",
	}
	for _, want := range wantFields {
		if !strings.Contains(entry, want) {
			t.Errorf("entry missing %q:\n%s", want, entry)
		}
	}
	if !strings.HasSuffix(entry, "}\n") {
		t.Errorf("entry does not close with }:\n%s", entry)
	}
}

func TestEntry_JournalMapsToArticle(t *testing.T) {
	j := &citation.Journal{
		JournalTitle: "Nature",
		Volume:       "171",
		Issue:        "4356",
		PageRange:    "737-738",
	}
	j.Title = "Molecular Structure of Nucleic Acids"
	j.Authors = []citation.Author{
		{FirstName: "James", LastName: "Watson"},
		{FirstName: "Francis", LastName: "Crick"},
	}
	j.PublicationDate = &citation.Date{Year: 1953, Month: 4}
	j.DOI = "10.1038/171737a0"

	entry := bibtex.Entry(j)

	if !strings.HasPrefix(entry, "@article{watson1953,") {
		t.Errorf("entry header = %q, want @article{watson1953,", strings.SplitN(entry, "\n", 2)[0])
	}
	wantFields := []string{
		"  author = {Watson, James and Crick, Francis},",
		"  journal = {Nature},",
		"  volume = {171},",
		"  number = {4356},",
		"  pages = {737-738},",
		"  month = apr,", // month macros are unbraced
		"  doi = {10.1038/171737a0},",
	}
	for _, want := range wantFields {
		if !strings.Contains(entry, want) {
			t.Errorf("entry missing %q:\n%s", want, entry)
		}
	}
}

func TestEntry_EscapesSpecialCharacters(t *testing.T) {
	b := book("Profit & Loss: 100% of the $10 #1 under_score", "Smith", 2020)

	entry := bibtex.Entry(b)
	want := `title = {Profit \& Loss: 100\% of the \$10 \#1 under\_score}`
	if !strings.Contains(entry, want) {
		t.Errorf("entry missing escaped title %q:\n%s", want, entry)
	}
}

func TestEntry_OrganizationAuthorIsBraced(t *testing.T) {
	b := book("Guidelines", "", 2021)
	b.Authors = []citation.Author{{LastName: "World Health Organization", IsOrganization: true}}

	entry := bibtex.Entry(b)
	if !strings.Contains(entry, "author = {{World Health Organization}},") {
		t.Errorf("organization author not braced:\n%s", entry)
	}
}

func TestEntries_DeduplicatesKeysWithinBatch(t *testing.T) {
	batch := []citation.Fields{
		book("First Book", "Smith", 2020),
		book("Second Book", "Smith", 2020),
		book("Third Book", "Smith", 2020),
	}

	out := bibtex.Entries(batch)
	for _, key := range []string{"@book{smith2020,", "@book{smith2020a,", "@book{smith2020b,"} {
		if !strings.Contains(out, key) {
			t.Errorf("batch output missing key %q:\n%s", key, out)
		}
	}
}

func TestEntries_KeySuffixesWrapPastZ(t *testing.T) {
	batch := make([]citation.Fields, 0, 29)
	for i := 0; i < 29; i++ {
		batch = append(batch, book("Collected Works", "Smith", 2020))
	}

	out := bibtex.Entries(batch)
	// 27th collision exhausts the single letters; the 28th wraps to "aa".
	for _, key := range []string{"@book{smith2020z,", "@book{smith2020aa,", "@book{smith2020ab,"} {
		if !strings.Contains(out, key) {
			t.Errorf("batch output missing key %q", key)
		}
	}
	if strings.Contains(out, "smith2020{") {
		t.Errorf("key suffix walked past the alphabet:\n%s", out)
	}
}

func TestCitationKeyFallbacks(t *testing.T) {
	cases := []struct {
		name   string
		fields citation.Fields
		want   string
	}{
		{"no author uses title word", book("Gatsby Explained", "", 1999), "@book{gatsby1999,"},
		{"no year uses nd", book("Gatsby Explained", "Smith", 0), "@book{smithnd,"},
		{"nothing usable", &citation.Book{}, "@book{unknownnd,"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			entry := bibtex.Entry(tc.fields)
			if !strings.HasPrefix(entry, tc.want) {
				t.Errorf("entry header = %q, want prefix %q", strings.SplitN(entry, "\n", 2)[0], tc.want)
			}
		})
	}
}

func TestEntryTypes(t *testing.T) {
	cases := []struct {
		fields citation.Fields
		want   string
	}{
		{&citation.Book{}, "@book{"},
		{&citation.Journal{}, "@article{"},
		{&citation.Newspaper{}, "@article{"},
		{&citation.Website{}, "@online{"},
		{&citation.Blog{}, "@online{"},
		{&citation.Film{}, "@misc{"},
		{&citation.Miscellaneous{}, "@misc{"},
	}
	for _, tc := range cases {
		entry := bibtex.Entry(tc.fields)
		if !strings.HasPrefix(entry, tc.want) {
			t.Errorf("Entry(%s) starts with %q, want prefix %q",
				tc.fields.SourceType(), strings.SplitN(entry, "{", 2)[0], tc.want)
		}
	}
}
