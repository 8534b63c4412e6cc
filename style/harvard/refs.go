package harvard

import (
	"strings"

	"github.com/aicoder2009/opencitation/citation"
	"github.com/aicoder2009/opencitation/render"
)

// quoted wraps a contained-work title in single quotation marks, Harvard's
// form for articles and episodes.
func quoted(title string) string {
	return "'" + title + "',"
}

// addAvailability appends the "Available at: URL [Accessed: date]." tail
// used for online sources. Prefers the DOI resolver URL when a DOI is
// present.
func addAvailability(e *render.Entry, c *citation.Common) {
	target := ""
	switch {
	case c.DOI != "":
		target = render.DOI(c.DOI)
	case c.URL != "":
		target = render.URL(c.URL)
	default:
		return
	}

	if c.AccessDate.HasYear() {
		e.Add(render.Text("Available at: "), render.Link(target))
		e.AddText("[Accessed: " + FormatDate(c.AccessDate) + "].")
		return
	}
	e.Add(render.Text("Available at: "), render.Link(target), render.Text("."))
}

// addAttribution appends the leading author and year elements, moving the
// italicized title to the front when no author is known.
func addAttribution(e *render.Entry, authors []citation.Author, title string, year string) {
	if len(authors) > 0 {
		e.AddText(JoinAuthors(authors))
		e.AddText(year + ".")
		if title != "" {
			e.Add(render.Italic(title), render.Text("."))
		}
		return
	}
	if title != "" {
		e.Add(render.Italic(title))
	}
	e.AddText(year + ".")
}

func refBook(b *citation.Book) citation.Formatted {
	var e render.Entry

	year := yearElement(b.PublicationDate)
	switch {
	case len(b.Authors) > 0:
		addAttribution(&e, b.Authors, b.FullTitle(), year)
	case len(b.Editors) > 0:
		label := " (ed.)"
		if len(b.Editors) > 1 {
			label = " (eds.)"
		}
		e.AddText(JoinAuthors(b.Editors) + label)
		e.AddText(year + ".")
		if t := b.FullTitle(); t != "" {
			e.Add(render.Italic(t), render.Text("."))
		}
	default:
		addAttribution(&e, nil, b.FullTitle(), year)
	}

	if b.Edition != "" {
		e.AddText(b.Edition + " edn.")
	}

	imprint := b.Publisher
	if b.PublicationPlace != "" && imprint != "" {
		imprint = b.PublicationPlace + ": " + imprint
	} else if imprint == "" {
		imprint = b.PublicationPlace
	}
	if imprint != "" {
		e.AddText(imprint + ".")
	}
	addAvailability(&e, &b.Common)
	return e.Formatted()
}

func refJournal(j *citation.Journal) citation.Formatted {
	var e render.Entry

	if len(j.Authors) > 0 {
		e.AddText(JoinAuthors(j.Authors))
	}
	e.AddText(yearElement(j.PublicationDate) + ".")
	if t := j.FullTitle(); t != "" {
		e.AddText(quoted(t))
	}

	if j.JournalTitle != "" {
		spans := []render.Span{render.Italic(j.JournalTitle)}
		rest := ""
		if j.Volume != "" {
			rest = ", " + j.Volume
			if j.Issue != "" {
				rest += "(" + j.Issue + ")"
			}
		}
		switch {
		case j.PageRange != "":
			rest += ", pp. " + j.PageRange + "."
		case j.ArticleNumber != "":
			rest += ", " + j.ArticleNumber + "."
		default:
			rest += "."
		}
		spans = append(spans, render.Text(rest))
		e.Add(spans...)
	}
	addAvailability(&e, &j.Common)
	return e.Formatted()
}

func refWebsite(w *citation.Website) citation.Formatted {
	var e render.Entry

	addAttribution(&e, w.Authors, w.FullTitle(), yearElement(w.PublicationDate))
	if w.SiteName != "" {
		e.AddText("[Online] " + render.EnsurePeriod(w.SiteName))
	} else if w.URL != "" || w.DOI != "" {
		e.AddText("[Online]")
	}
	addAvailability(&e, &w.Common)
	return e.Formatted()
}

func refBlog(b *citation.Blog) citation.Formatted {
	var e render.Entry

	if len(b.Authors) > 0 {
		e.AddText(JoinAuthors(b.Authors))
	}
	e.AddText(yearElement(b.PublicationDate) + ".")
	if t := b.FullTitle(); t != "" {
		e.AddText(quoted(t))
	}
	if b.BlogName != "" {
		e.Add(render.Italic(b.BlogName), render.Text(","))
	}

	if date := FormatDate(b.PublicationDate); date != "n.d." {
		e.AddText(date + ".")
	} else {
		e.Terminate(".")
	}
	e.AddText("[Online]")
	addAvailability(&e, &b.Common)
	return e.Formatted()
}

func refNewspaper(n *citation.Newspaper) citation.Formatted {
	var e render.Entry

	if len(n.Authors) > 0 {
		e.AddText(JoinAuthors(n.Authors))
	}
	e.AddText(yearElement(n.PublicationDate) + ".")
	if t := n.FullTitle(); t != "" {
		e.AddText(quoted(t))
	}
	if n.NewspaperTitle != "" {
		e.Add(render.Italic(n.NewspaperTitle), render.Text(","))
	}

	details := make([]string, 0, 2)
	if date := FormatDate(n.PublicationDate); date != "n.d." {
		details = append(details, date)
	}
	if n.Section != "" {
		details = append(details, n.Section)
	}
	if len(details) > 0 {
		e.AddText(strings.Join(details, ", ") + ".")
	} else {
		e.Terminate(".")
	}
	addAvailability(&e, &n.Common)
	return e.Formatted()
}

func refVideo(v *citation.Video) citation.Formatted {
	var e render.Entry

	date := v.PublishedDate()
	switch {
	case len(v.Authors) > 0:
		e.AddText(JoinAuthors(v.Authors))
		e.AddText(yearElement(date) + ".")
		if t := v.FullTitle(); t != "" {
			e.Add(render.Italic(t), render.Text("."))
		}
	case v.ChannelName != "":
		e.AddText(v.ChannelName)
		e.AddText(yearElement(date) + ".")
		if t := v.FullTitle(); t != "" {
			e.Add(render.Italic(t), render.Text("."))
		}
	default:
		addAttribution(&e, nil, v.FullTitle(), yearElement(date))
	}

	if v.Platform != "" {
		e.AddText("[Online video] " + render.EnsurePeriod(v.Platform))
	} else {
		e.AddText("[Online video]")
	}
	addAvailability(&e, &v.Common)
	return e.Formatted()
}

func refImage(i *citation.Image) citation.Formatted {
	var e render.Entry

	addAttribution(&e, i.Authors, i.FullTitle(), yearElement(i.PublicationDate))

	medium := i.Medium
	if medium == "" {
		medium = i.ImageType
	}
	if medium != "" {
		e.AddText("[" + medium + "]")
	}

	venue := i.Museum
	if venue == "" {
		venue = i.Collection
	}
	if venue != "" && i.Location != "" {
		venue += ", " + i.Location
	} else if venue == "" {
		venue = i.Location
	}
	if venue != "" {
		e.AddText(render.EnsurePeriod(venue))
	}
	addAvailability(&e, &i.Common)
	return e.Formatted()
}

func refFilm(f *citation.Film) citation.Formatted {
	var e render.Entry

	// Harvard leads film and television entries with the title.
	if t := f.FullTitle(); t != "" {
		e.Add(render.Italic(t))
	}
	e.AddText(yearElement(f.PublicationDate) + ".")

	if len(f.Directors) > 0 {
		e.AddText("Directed by " + directNames(f.Directors) + ".")
	}
	if f.ProductionCompany != "" {
		e.AddText("[Film] " + render.EnsurePeriod(f.ProductionCompany))
	} else {
		e.AddText("[Film]")
	}
	if f.StreamingService != "" {
		e.AddText(render.EnsurePeriod(f.StreamingService))
	}
	addAvailability(&e, &f.Common)
	return e.Formatted()
}

func refTVSeries(t *citation.TVSeries) citation.Formatted {
	var e render.Entry

	if ti := t.FullTitle(); ti != "" {
		e.Add(render.Italic(ti))
	}
	e.AddText(yearRangeElement(t.YearStart, t.YearEnd, t.PublicationDate) + ".")

	if len(t.Creators) > 0 {
		e.AddText("Created by " + directNames(t.Creators) + ".")
	}
	venue := t.Network
	if venue == "" {
		venue = t.StreamingService
	}
	if venue != "" {
		e.AddText("[TV series] " + render.EnsurePeriod(venue))
	} else {
		e.AddText("[TV series]")
	}
	addAvailability(&e, &t.Common)
	return e.Formatted()
}

func refTVEpisode(t *citation.TVEpisode) citation.Formatted {
	var e render.Entry

	if t.EpisodeTitle != "" {
		e.AddText(quoted(t.EpisodeTitle))
	}
	if t.SeriesTitle != "" {
		locator := ""
		if t.Season != "" {
			locator = ", Series " + t.Season
		}
		if t.EpisodeNumber != "" {
			locator += ", Episode " + t.EpisodeNumber
		}
		e.Add(render.Italic(t.SeriesTitle), render.Text(locator+"."))
	}
	e.AddText(yearElement(t.AiredDate()) + ".")

	venue := t.Network
	if venue == "" {
		venue = t.StreamingService
	}
	if venue != "" {
		e.AddText(render.EnsurePeriod(venue))
	}
	addAvailability(&e, &t.Common)
	return e.Formatted()
}

func refMisc(m *citation.Miscellaneous) citation.Formatted {
	var e render.Entry

	addAttribution(&e, m.Authors, m.FullTitle(), yearElement(m.PublicationDate))

	descriptor := m.Format
	if descriptor == "" {
		descriptor = m.Medium
	}
	if descriptor != "" {
		e.AddText("[" + descriptor + "]")
	}
	if m.Publisher != "" {
		e.AddText(render.EnsurePeriod(m.Publisher))
	}
	if m.Description != "" {
		e.AddText(render.EnsurePeriod(m.Description))
	}
	addAvailability(&e, &m.Common)
	return e.Formatted()
}
