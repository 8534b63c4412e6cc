package harvard_test

import (
	"testing"

	"github.com/aicoder2009/opencitation/citation"
	"github.com/aicoder2009/opencitation/style/harvard"
)

var style = &harvard.Style{}

func author(first, last string) citation.Author {
	return citation.Author{FirstName: first, LastName: last}
}

func TestFormat_WebsiteWithoutAuthorLeadsWithTitle(t *testing.T) {
	w := &citation.Website{}
	w.Title = "Test Page"
	w.URL = "https://example.com/"

	got := style.Format(w)
	wantText := "Test Page (n.d.). [Online] Available at: https://example.com."
	wantHTML := `<em>Test Page</em> (n.d.). [Online] Available at: ` +
		`<a href="https://example.com">https://example.com</a>.`

	if got.Text != wantText {
		t.Errorf("Text = %q, want %q", got.Text, wantText)
	}
	if got.HTML != wantHTML {
		t.Errorf("HTML = %q, want %q", got.HTML, wantHTML)
	}
}

func TestFormat_WebsiteWithAccessDate(t *testing.T) {
	w := &citation.Website{SiteName: "NHS"}
	w.Title = "Migraine"
	w.Authors = []citation.Author{author("Jane", "Doe")}
	w.PublicationDate = &citation.Date{Year: 2022}
	w.URL = "https://www.nhs.uk/migraine"
	w.AccessDate = &citation.Date{Year: 2023, Month: 3, Day: 15}

	got := style.Format(w)
	want := "Doe, J. (2022). Migraine. [Online] NHS. Available at: " +
		"https://www.nhs.uk/migraine [Accessed: 15 March 2023]."
	if got.Text != want {
		t.Errorf("Text = %q, want %q", got.Text, want)
	}
}

func TestFormat_JournalArticle(t *testing.T) {
	j := &citation.Journal{
		JournalTitle: "Journal of Testing",
		Volume:       "42",
		Issue:        "3",
		PageRange:    "123-145",
	}
	j.Title = "Test Article"
	j.Authors = []citation.Author{author("Jane", "Doe")}
	j.PublicationDate = &citation.Date{Year: 2020}

	got := style.Format(j)
	want := "Doe, J. (2020). 'Test Article', Journal of Testing, 42(3), pp. 123-145."
	if got.Text != want {
		t.Errorf("Text = %q, want %q", got.Text, want)
	}
}

func TestFormat_FilmLeadsWithTitle(t *testing.T) {
	f := &citation.Film{
		Directors:         []citation.Author{author("Christopher", "Nolan")},
		ProductionCompany: "Warner Bros.",
	}
	f.Title = "Inception"
	f.PublicationDate = &citation.Date{Year: 2010}

	got := style.Format(f)
	want := "Inception (2010). Directed by Christopher Nolan. [Film] Warner Bros."
	if got.Text != want {
		t.Errorf("Text = %q, want %q", got.Text, want)
	}
}

func TestFormatAuthor_ConcatenatedInitials(t *testing.T) {
	cases := []struct {
		name   string
		author citation.Author
		want   string
	}{
		{"two initials run together",
			citation.Author{FirstName: "Francis", MiddleName: "Scott", LastName: "Fitzgerald"},
			"Fitzgerald, F.S."},
		{"single initial", author("Jane", "Doe"), "Doe, J."},
		{"organization verbatim",
			citation.Author{LastName: "World Health Organization", IsOrganization: true},
			"World Health Organization"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := harvard.FormatAuthor(tc.author); got != tc.want {
				t.Errorf("FormatAuthor = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestJoinAuthors_NoOxfordComma(t *testing.T) {
	three := []citation.Author{author("Jane", "Doe"), author("John", "Smith"), author("Wei", "Li")}
	if got, want := harvard.JoinAuthors(three), "Doe, J., Smith, J. and Li, W."; got != want {
		t.Errorf("JoinAuthors(3) = %q, want %q", got, want)
	}

	four := append(three, author("Ann", "Park"))
	if got, want := harvard.JoinAuthors(four), "Doe, J. et al."; got != want {
		t.Errorf("JoinAuthors(4) = %q, want %q", got, want)
	}
}

func TestInText(t *testing.T) {
	date := &citation.Date{Year: 2020}
	cases := []struct {
		name    string
		authors []citation.Author
		date    *citation.Date
		want    string
	}{
		{"single", []citation.Author{author("Jane", "Smith")}, date, "(Smith, 2020)"},
		{"pair joined with and",
			[]citation.Author{author("Jane", "Smith"), author("John", "Jones")}, date,
			"(Smith and Jones, 2020)"},
		{"no date sentinel", []citation.Author{author("Jane", "Smith")}, nil, "(Smith, n.d.)"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			b := &citation.Book{}
			b.Title = "Some Book"
			b.Authors = tc.authors
			b.PublicationDate = tc.date
			if got := style.InText(b); got != tc.want {
				t.Errorf("InText = %q, want %q", got, tc.want)
			}
		})
	}
}
