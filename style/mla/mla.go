// Package mla implements the MLA style, 9th edition.
package mla

import (
	"github.com/aicoder2009/opencitation/citation"
	"github.com/aicoder2009/opencitation/render"
	"github.com/aicoder2009/opencitation/style"
)

// Style implements the MLA citation style.
type Style struct{}

var _ style.Formatter = (*Style)(nil)

// Name returns the style identifier.
func (s *Style) Name() string {
	return "mla"
}

// Description returns a human-readable style description.
func (s *Style) Description() string {
	return "MLA style, 9th edition"
}

// Format renders the full MLA works-cited entry for the citation.
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

// InText renders the parenthetical author citation; MLA cites the author
// alone, e.g. "(Smith)" or "(Smith et al.)".
func (s *Style) InText(f citation.Fields) string {
	c := f.Base()

	switch len(c.Authors) {
	case 0:
		t := render.TruncateWords(c.FullTitle(), 3)
		if t == "" {
			return ""
		}
		return `("` + t + `")`
	case 1:
		return "(" + c.Authors[0].LastName + ")"
	case 2:
		return "(" + c.Authors[0].LastName + " and " + c.Authors[1].LastName + ")"
	default:
		return "(" + c.Authors[0].LastName + " et al.)"
	}
}

func init() {
	style.Register(&Style{})
}
