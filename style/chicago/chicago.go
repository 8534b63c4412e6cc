// Package chicago implements the Chicago style, 17th edition
// (bibliography form).
package chicago

import (
	"github.com/aicoder2009/opencitation/citation"
	"github.com/aicoder2009/opencitation/render"
	"github.com/aicoder2009/opencitation/style"
)

// Style implements the Chicago citation style.
type Style struct{}

var _ style.Formatter = (*Style)(nil)

// Name returns the style identifier.
func (s *Style) Name() string {
	return "chicago"
}

// Description returns a human-readable style description.
func (s *Style) Description() string {
	return "Chicago style, 17th edition"
}

// Format renders the full Chicago bibliography entry for the citation.
func (s *Style) Format(f citation.Fields) citation.Formatted {
	switch v := f.(type) {
	case *citation.Book:
		return refBook(v)
	case *citation.Journal:
		return refJournal(v)
	case *citation.Website:
		return refWebsite(v)
	case *citation.Blog:
		return refBlog(v)
	case *citation.Newspaper:
		return refNewspaper(v)
	case *citation.Video:
		return refVideo(v)
	case *citation.Image:
		return refImage(v)
	case *citation.Film:
		return refFilm(v)
	case *citation.TVSeries:
		return refTVSeries(v)
	case *citation.TVEpisode:
		return refTVEpisode(v)
	case *citation.Miscellaneous:
		return refMisc(v)
	default:
		return citation.Formatted{}
	}
}

// InText renders the author-date citation, e.g. "(Smith 2020)"; Chicago
// places no comma between author and year.
func (s *Style) InText(f citation.Fields) string {
	c := f.Base()

	who := citeAuthors(c.Authors)
	if who == "" {
		who = render.TruncateWords(c.FullTitle(), 3)
	}

	if !c.PublicationDate.HasYear() {
		if who == "" {
			return "(n.d.)"
		}
		return "(" + who + ", n.d.)"
	}
	year := yearOf(c.PublicationDate)
	if who == "" {
		return "(" + year + ")"
	}
	return "(" + who + " " + year + ")"
}

// citeAuthors renders the author element of an in-text citation; up to three
// surnames are listed, more collapse to "et al."
func citeAuthors(authors []citation.Author) string {
	switch len(authors) {
	case 0:
		return ""
	case 1:
		return authors[0].LastName
	case 2:
		return authors[0].LastName + " and " + authors[1].LastName
	case 3:
		return authors[0].LastName + ", " + authors[1].LastName + ", and " + authors[2].LastName
	default:
		return authors[0].LastName + " et al."
	}
}

func init() {
	style.Register(&Style{})
}
