package bibtex

import (
	"fmt"
	"io"
	"strings"

	"github.com/aicoder2009/opencitation/citation"
	"github.com/aicoder2009/opencitation/exchange"
)

// Serialize writes citation records as BibTeX entries. Citation keys are
// unique within the batch: collisions gain a letter suffix (smith2020,
// smith2020a, ...).
func (f *Format) Serialize(w io.Writer, citations []citation.Fields, opts *exchange.Options) error {
	// opts reserved for future use (e.g., encoding options)
	_ = opts

	if _, err := io.WriteString(w, Entries(citations)); err != nil {
		return err
	}
	return nil
}

// Entries renders a batch of citations with batch-unique keys, one blank
// line between entries.
func Entries(citations []citation.Fields) string {
	used := make(map[string]int)
	entries := make([]string, 0, len(citations))
	for _, c := range citations {
		key := citationKey(c)
		if n, taken := used[key]; taken {
			used[key] = n + 1
			key += suffix(n)
		} else {
			used[key] = 1
		}
		entries = append(entries, entry(c, key))
	}
	return strings.Join(entries, "\n")
}

// suffix renders the nth collision suffix in bijective base 26:
// a..z, aa, ab, ...
func suffix(n int) string {
	var s []byte
	for n > 0 {
		n--
		s = append([]byte{byte('a' + n%26)}, s...)
		n /= 26
	}
	return string(s)
}

// Entry renders a single citation as a BibTeX entry with a generated key.
func Entry(f citation.Fields) string {
	return entry(f, citationKey(f))
}

func entry(f citation.Fields, key string) string {
	var sb strings.Builder
	c := f.Base()

	fmt.Fprintf(&sb, "@%s{%s,\n", entryType(f.SourceType()), key)

	field := func(name, value string) {
		if value != "" {
			fmt.Fprintf(&sb, "  %s = {%s},\n", name, escape(value))
		}
	}

	field("title", c.FullTitle())
	if len(c.Authors) > 0 {
		field("author", formatPersons(c.Authors))
	}

	if c.PublicationDate.HasYear() {
		field("year", fmt.Sprintf("%d", c.PublicationDate.Year))
		if c.PublicationDate.HasMonth() {
			// month macros are unbraced by convention
			fmt.Fprintf(&sb, "  month = %s,\n", monthMacro(c.PublicationDate.Month))
		}
	}

	switch v := f.(type) {
	case *citation.Book:
		if len(v.Editors) > 0 {
			field("editor", formatPersons(v.Editors))
		}
		field("publisher", c.Publisher)
		field("address", v.PublicationPlace)
		field("edition", v.Edition)
		field("isbn", v.ISBN)
	case *citation.Journal:
		field("journal", v.JournalTitle)
		field("volume", v.Volume)
		field("number", v.Issue)
		field("pages", pick(v.PageRange, v.ArticleNumber))
		field("issn", v.ISSN)
		field("publisher", c.Publisher)
	case *citation.Website:
		field("organization", v.SiteName)
	case *citation.Blog:
		field("journal", v.BlogName)
	case *citation.Newspaper:
		field("journal", v.NewspaperTitle)
	case *citation.Video:
		field("organization", pick(v.Platform, v.ChannelName))
		field("howpublished", "Online video")
	case *citation.Film:
		if len(v.Directors) > 0 {
			field("editor", formatPersons(v.Directors))
		}
		field("publisher", pick(v.ProductionCompany, c.Publisher))
		field("howpublished", "Film")
	case *citation.TVSeries:
		if len(v.Creators) > 0 {
			field("editor", formatPersons(v.Creators))
		}
		field("publisher", pick(v.Network, v.StreamingService))
		field("howpublished", "Television series")
	case *citation.TVEpisode:
		field("booktitle", v.SeriesTitle)
		field("publisher", pick(v.Network, v.StreamingService))
		field("howpublished", "Television episode")
	case *citation.Miscellaneous:
		field("publisher", c.Publisher)
		field("howpublished", pick(v.Format, v.Medium))
		field("note", v.Description)
	default:
		field("publisher", c.Publisher)
	}

	field("doi", c.DOI)
	field("url", strings.TrimSuffix(c.URL, "/"))
	field("abstract", c.Annotation)
	field("language", c.Language)

	sb.WriteString("}\n")
	return sb.String()
}

// entryType maps a source type to its standard BibTeX entry type.
func entryType(t citation.SourceType) string {
	switch t {
	case citation.SourceBook:
		return "book"
	case citation.SourceJournal:
		return "article"
	case citation.SourceNewspaper:
		return "article"
	case citation.SourceWebsite, citation.SourceBlog:
		return "online"
	default:
		return "misc"
	}
}

// citationKey derives a "lastnameyear" key from the first author and the
// publication year, with "unknown" and "nd" fallbacks.
func citationKey(f citation.Fields) string {
	c := f.Base()

	author := ""
	if len(c.Authors) > 0 {
		author = c.Authors[0].LastName
	}
	if author == "" {
		author = firstWord(c.Title)
	}
	if author == "" {
		author = "unknown"
	}

	year := "nd"
	if c.PublicationDate.HasYear() {
		year = fmt.Sprintf("%d", c.PublicationDate.Year)
	}

	author = strings.Map(func(r rune) rune {
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') {
			return r
		}
		return -1
	}, author)
	if author == "" {
		author = "unknown"
	}

	return strings.ToLower(author) + year
}

func firstWord(s string) string {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}

// formatPersons formats a contributor list for BibTeX, joined by " and ".
func formatPersons(people []citation.Author) string {
	names := make([]string, 0, len(people))
	for _, p := range people {
		if name := formatPerson(p); name != "" {
			names = append(names, name)
		}
	}
	return strings.Join(names, " and ")
}

// formatPerson formats a single contributor. Organization names are braced
// so BibTeX does not split them on internal spaces.
func formatPerson(p citation.Author) string {
	if p.LastName == "" {
		return ""
	}
	if p.IsOrganization {
		return "{" + p.LastName + "}"
	}
	return p.InvertedName()
}

// monthMacro converts a month number to the BibTeX month macro.
func monthMacro(month int) string {
	months := []string{"", "jan", "feb", "mar", "apr", "may", "jun", "jul", "aug", "sep", "oct", "nov", "dec"}
	if month >= 1 && month <= 12 {
		return months[month]
	}
	return ""
}

// escape escapes special characters for BibTeX.
func escape(s string) string {
	s = strings.ReplaceAll(s, "&", "\\&")
	s = strings.ReplaceAll(s, "%", "\\%")
	s = strings.ReplaceAll(s, "$", "\\$")
	s = strings.ReplaceAll(s, "#", "\\#")
	s = strings.ReplaceAll(s, "_", "\\_")
	return s
}

// pick returns the first non-empty value.
func pick(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
