package mla_test

import (
	"testing"

	"github.com/aicoder2009/opencitation/citation"
	"github.com/aicoder2009/opencitation/style/mla"
)

var style = &mla.Style{}

func author(first, last string) citation.Author {
	return citation.Author{FirstName: first, LastName: last}
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
	wantText := `Doe, Jane. "Test Article." Journal of Testing, vol. 42, no. 3, 2020, pp. 123-145.`
	wantHTML := `Doe, Jane. &#34;Test Article.&#34; <em>Journal of Testing</em>, vol. 42, no. 3, 2020, pp. 123-145.`

	if got.Text != wantText {
		t.Errorf("Text = %q, want %q", got.Text, wantText)
	}
	if got.HTML != wantHTML {
		t.Errorf("HTML = %q, want %q", got.HTML, wantHTML)
	}
}

func TestFormat_BookKeepsTitleCase(t *testing.T) {
	book := &citation.Book{}
	book.Title = "The Great Gatsby"
	book.Authors = []citation.Author{{FirstName: "Francis", MiddleName: "Scott", LastName: "Fitzgerald"}}
	book.PublicationDate = &citation.Date{Year: 1925}
	book.Publisher = "Scribner"

	got := style.Format(book)
	want := "Fitzgerald, Francis Scott. The Great Gatsby. Scribner, 1925."
	if got.Text != want {
		t.Errorf("Text = %q, want %q", got.Text, want)
	}
}

func TestFormat_WebsiteWithAccessDate(t *testing.T) {
	w := &citation.Website{SiteName: "Mayo Clinic"}
	w.Title = "Migraine"
	w.URL = "https://www.mayoclinic.org/migraine/"
	w.PublicationDate = &citation.Date{Year: 2022, Month: 5, Day: 10}
	w.AccessDate = &citation.Date{Year: 2023, Month: 3, Day: 15}

	got := style.Format(w)
	want := `"Migraine." Mayo Clinic, 10 May 2022. https://www.mayoclinic.org/migraine. ` +
		"Accessed 15 Mar. 2023."
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
	want := "Inception. Directed by Christopher Nolan, Warner Bros., 2010."
	if got.Text != want {
		t.Errorf("Text = %q, want %q", got.Text, want)
	}
}

func TestJoinAuthors(t *testing.T) {
	cases := []struct {
		name    string
		authors []citation.Author
		want    string
	}{
		{"single inverted", []citation.Author{author("Jane", "Doe")}, "Doe, Jane"},
		{"pair second in natural order",
			[]citation.Author{author("Jane", "Doe"), author("John", "Smith")},
			"Doe, Jane, and John Smith"},
		{"three collapse to et al",
			[]citation.Author{author("Jane", "Doe"), author("John", "Smith"), author("Wei", "Li")},
			"Doe, Jane, et al."},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := mla.JoinAuthors(tc.authors); got != tc.want {
				t.Errorf("JoinAuthors = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestFormatDate(t *testing.T) {
	cases := []struct {
		name string
		date *citation.Date
		want string
	}{
		{"nil is empty", nil, ""},
		{"year only", &citation.Date{Year: 2020}, "2020"},
		{"abbreviated month", &citation.Date{Year: 2020, Month: 3, Day: 15}, "15 Mar. 2020"},
		{"may not abbreviated", &citation.Date{Year: 2020, Month: 5, Day: 1}, "1 May 2020"},
		{"month year", &citation.Date{Year: 2020, Month: 9}, "Sept. 2020"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := mla.FormatDate(tc.date); got != tc.want {
				t.Errorf("FormatDate = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestInText(t *testing.T) {
	cases := []struct {
		name    string
		authors []citation.Author
		title   string
		want    string
	}{
		{"single", []citation.Author{author("Jane", "Doe")}, "", "(Doe)"},
		{"pair", []citation.Author{author("Jane", "Doe"), author("John", "Smith")}, "", "(Doe and Smith)"},
		{"three plus", []citation.Author{author("Jane", "Doe"), author("John", "Smith"), author("Wei", "Li")},
			"", "(Doe et al.)"},
		{"title fallback", nil, "A Very Long Title Indeed", `("A Very Long...")`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := &citation.Website{}
			w.Title = tc.title
			w.Authors = tc.authors
			if got := style.InText(w); got != tc.want {
				t.Errorf("InText = %q, want %q", got, tc.want)
			}
		})
	}
}
