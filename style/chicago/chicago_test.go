package chicago_test

import (
	"testing"

	"github.com/aicoder2009/opencitation/citation"
	"github.com/aicoder2009/opencitation/style/chicago"
)

var style = &chicago.Style{}

func author(first, last string) citation.Author {
	return citation.Author{FirstName: first, LastName: last}
}

func TestFormat_BookWithPlace(t *testing.T) {
	book := &citation.Book{PublicationPlace: "New York"}
	book.Title = "The Great Gatsby"
	book.Authors = []citation.Author{author("Francis", "Fitzgerald")}
	book.PublicationDate = &citation.Date{Year: 1925}
	book.Publisher = "Scribner"

	got := style.Format(book)
	wantText := "Fitzgerald, Francis. The Great Gatsby. New York: Scribner, 1925."
	wantHTML := "Fitzgerald, Francis. <em>The Great Gatsby</em>. New York: Scribner, 1925."

	if got.Text != wantText {
		t.Errorf("Text = %q, want %q", got.Text, wantText)
	}
	if got.HTML != wantHTML {
		t.Errorf("HTML = %q, want %q", got.HTML, wantHTML)
	}
}

func TestFormat_JournalVolumeIssueYearPages(t *testing.T) {
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
	want := `Doe, Jane. "Test Article." Journal of Testing 42, no. 3 (2020): 123-145.`
	if got.Text != want {
		t.Errorf("Text = %q, want %q", got.Text, want)
	}
}

// A blog entry without a date must still end in a period: the trailing comma
// after "(blog)" is converted, not left dangling.
func TestFormat_BlogWithoutDateTerminates(t *testing.T) {
	b := &citation.Blog{BlogName: "Coding Horror"}
	b.Title = "The Best Code"
	b.Authors = []citation.Author{author("Jeff", "Atwood")}
	b.URL = "https://blog.codinghorror.com/the-best-code"

	got := style.Format(b)
	want := `Atwood, Jeff. "The Best Code." Coding Horror (blog). ` +
		"https://blog.codinghorror.com/the-best-code."
	if got.Text != want {
		t.Errorf("Text = %q, want %q", got.Text, want)
	}
}

func TestFormat_BlogWithDate(t *testing.T) {
	b := &citation.Blog{BlogName: "Coding Horror"}
	b.Title = "The Best Code"
	b.Authors = []citation.Author{author("Jeff", "Atwood")}
	b.PublicationDate = &citation.Date{Year: 2019, Month: 7, Day: 22}

	got := style.Format(b)
	want := `Atwood, Jeff. "The Best Code." Coding Horror (blog), July 22, 2019.`
	if got.Text != want {
		t.Errorf("Text = %q, want %q", got.Text, want)
	}
}

func TestFormat_TVEpisodeAiredOnNetwork(t *testing.T) {
	ep := &citation.TVEpisode{
		EpisodeTitle:  "Ozymandias",
		SeriesTitle:   "Breaking Bad",
		Season:        "5",
		EpisodeNumber: "14",
		Network:       "AMC",
		Directors:     []citation.Author{author("Rian", "Johnson")},
	}
	ep.AirDate = &citation.Date{Year: 2013, Month: 9, Day: 15}

	got := style.Format(ep)
	want := `Breaking Bad, season 5, episode 14, "Ozymandias." Directed by Rian Johnson. ` +
		"Aired September 15, 2013, on AMC."
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
		{"single", []citation.Author{author("Jane", "Doe")}, "Doe, Jane"},
		{"pair", []citation.Author{author("Jane", "Doe"), author("John", "Smith")},
			"Doe, Jane and John Smith"},
		{"three listed in full",
			[]citation.Author{author("Jane", "Doe"), author("John", "Smith"), author("Wei", "Li")},
			"Doe, Jane, John Smith, and Wei Li"},
		{"four collapse to et al",
			[]citation.Author{author("A", "One"), author("B", "Two"), author("C", "Three"), author("D", "Four")},
			"One, A, et al."},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := chicago.JoinAuthors(tc.authors); got != tc.want {
				t.Errorf("JoinAuthors = %q, want %q", got, tc.want)
			}
		})
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
		{"no comma between author and year",
			[]citation.Author{author("Jane", "Smith")}, date, "(Smith 2020)"},
		{"two authors",
			[]citation.Author{author("Jane", "Smith"), author("John", "Jones")}, date,
			"(Smith and Jones 2020)"},
		{"three authors listed",
			[]citation.Author{author("A", "One"), author("B", "Two"), author("C", "Three")}, date,
			"(One, Two, and Three 2020)"},
		{"no date keeps comma before sentinel",
			[]citation.Author{author("Jane", "Smith")}, nil, "(Smith, n.d.)"},
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

func TestFormatDate(t *testing.T) {
	cases := []struct {
		name string
		date *citation.Date
		want string
	}{
		{"nil is empty", nil, ""},
		{"year only", &citation.Date{Year: 2020}, "2020"},
		{"full month spelled out", &citation.Date{Year: 2020, Month: 3, Day: 15}, "March 15, 2020"},
		{"month year", &citation.Date{Year: 2020, Month: 3}, "March 2020"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := chicago.FormatDate(tc.date); got != tc.want {
				t.Errorf("FormatDate = %q, want %q", got, tc.want)
			}
		})
	}
}
