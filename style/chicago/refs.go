package chicago

import (
	"strings"

	"github.com/aicoder2009/opencitation/citation"
	"github.com/aicoder2009/opencitation/render"
)

// quoted wraps a contained-work title in quotation marks with the period
// inside.
func quoted(title string) string {
	return `"` + title + `."`
}

// addIdentifier appends the DOI or URL as the final element.
func addIdentifier(e *render.Entry, c *citation.Common) {
	switch {
	case c.DOI != "":
		e.Add(render.Link(render.DOI(c.DOI)), render.Text("."))
	case c.URL != "":
		e.Add(render.Link(render.URL(c.URL)), render.Text("."))
	}
}

// addAccessed appends the optional "Accessed Month Day, Year." element,
// which Chicago places before the URL.
func addAccessed(e *render.Entry, c *citation.Common) {
	if date := FormatDate(c.AccessDate); date != "" {
		e.AddText("Accessed " + date + ".")
	}
}

// joinDetails joins non-empty parts with commas and a terminal period.
func joinDetails(parts ...string) string {
	kept := parts[:0]
	for _, p := range parts {
		if p != "" {
			kept = append(kept, p)
		}
	}
	if len(kept) == 0 {
		return ""
	}
	return strings.Join(kept, ", ") + "."
}

func refBook(b *citation.Book) citation.Formatted {
	var e render.Entry

	if len(b.Authors) > 0 {
		e.AddText(render.EnsurePeriod(JoinAuthors(b.Authors)))
	} else if len(b.Editors) > 0 {
		e.AddText(render.EnsurePeriod(creditedAuthors(b.Editors, "ed")))
	}

	if t := b.FullTitle(); t != "" {
		e.Add(render.Italic(t), render.Text("."))
	}
	if b.Edition != "" {
		e.AddText(b.Edition + " ed.")
	}

	imprint := b.Publisher
	if b.PublicationPlace != "" && imprint != "" {
		imprint = b.PublicationPlace + ": " + imprint
	} else if imprint == "" {
		imprint = b.PublicationPlace
	}
	if year := FormatDate(b.PublicationDate); year != "" {
		if imprint != "" {
			imprint += ", " + year
		} else {
			imprint = year
		}
	}
	if imprint != "" {
		e.AddText(imprint + ".")
	}
	addIdentifier(&e, &b.Common)
	return e.Formatted()
}

func refJournal(j *citation.Journal) citation.Formatted {
	var e render.Entry

	if len(j.Authors) > 0 {
		e.AddText(render.EnsurePeriod(JoinAuthors(j.Authors)))
	}
	if t := j.FullTitle(); t != "" {
		e.AddText(quoted(t))
	}

	// "Journal 42, no. 3 (2020): 123-145." with the journal name and volume
	// italicized as one run.
	if j.JournalTitle != "" || j.Volume != "" {
		spans := make([]render.Span, 0, 2)
		container := j.JournalTitle
		if j.Volume != "" {
			if container != "" {
				container += " "
			}
			container += j.Volume
		}
		spans = append(spans, render.Italic(container))

		rest := ""
		if j.Issue != "" {
			rest += ", no. " + j.Issue
		}
		if year := FormatDate(j.PublicationDate); year != "" {
			rest += " (" + year + ")"
		}
		switch {
		case j.PageRange != "":
			rest += ": " + j.PageRange + "."
		case j.ArticleNumber != "":
			rest += ": " + j.ArticleNumber + "."
		default:
			rest += "."
		}
		spans = append(spans, render.Text(rest))
		e.Add(spans...)
	}

	addIdentifier(&e, &j.Common)
	return e.Formatted()
}

func refWebsite(w *citation.Website) citation.Formatted {
	var e render.Entry

	if len(w.Authors) > 0 {
		e.AddText(render.EnsurePeriod(JoinAuthors(w.Authors)))
	} else if w.SiteName != "" {
		e.AddText(render.EnsurePeriod(w.SiteName))
	}
	if t := w.FullTitle(); t != "" {
		e.AddText(quoted(t))
	}
	if len(w.Authors) > 0 && w.SiteName != "" {
		e.AddText(render.EnsurePeriod(w.SiteName))
	}
	if date := FormatDate(w.PublicationDate); date != "" {
		e.AddText(date + ".")
	}
	addAccessed(&e, &w.Common)
	addIdentifier(&e, &w.Common)
	return e.Formatted()
}

func refBlog(b *citation.Blog) citation.Formatted {
	var e render.Entry

	if len(b.Authors) > 0 {
		e.AddText(render.EnsurePeriod(JoinAuthors(b.Authors)))
	}
	if t := b.FullTitle(); t != "" {
		e.AddText(quoted(t))
	}
	if b.BlogName != "" {
		e.Add(render.Italic(b.BlogName), render.Text(" (blog),"))
	}
	if date := FormatDate(b.PublicationDate); date != "" {
		e.AddText(date + ".")
	} else {
		e.Terminate(".")
	}
	addAccessed(&e, &b.Common)
	addIdentifier(&e, &b.Common)
	return e.Formatted()
}

func refNewspaper(n *citation.Newspaper) citation.Formatted {
	var e render.Entry

	if len(n.Authors) > 0 {
		e.AddText(render.EnsurePeriod(JoinAuthors(n.Authors)))
	}
	if t := n.FullTitle(); t != "" {
		e.AddText(quoted(t))
	}
	if n.NewspaperTitle != "" {
		e.Add(render.Italic(n.NewspaperTitle), render.Text(","))
	}
	details := joinDetails(FormatDate(n.PublicationDate), sectionOf(n))
	if details != "" {
		e.AddText(details)
	} else {
		e.Terminate(".")
	}
	addIdentifier(&e, &n.Common)
	return e.Formatted()
}

func sectionOf(n *citation.Newspaper) string {
	if n.Section == "" {
		return ""
	}
	return "sec. " + n.Section
}

func refVideo(v *citation.Video) citation.Formatted {
	var e render.Entry

	switch {
	case len(v.Authors) > 0:
		e.AddText(render.EnsurePeriod(JoinAuthors(v.Authors)))
	case v.ChannelName != "":
		e.AddText(render.EnsurePeriod(v.ChannelName))
	}
	if t := v.FullTitle(); t != "" {
		e.AddText(quoted(t))
	}

	descriptor := "Video"
	if v.Platform != "" {
		descriptor = v.Platform + " video"
	}
	if v.Duration != "" {
		descriptor += ", " + v.Duration
	}
	e.AddText(descriptor + ".")

	if date := FormatDate(v.PublishedDate()); date != "" {
		e.AddText(date + ".")
	}
	addIdentifier(&e, &v.Common)
	return e.Formatted()
}

func refImage(i *citation.Image) citation.Formatted {
	var e render.Entry

	if len(i.Authors) > 0 {
		e.AddText(render.EnsurePeriod(JoinAuthors(i.Authors)))
	}
	if t := i.FullTitle(); t != "" {
		e.Add(render.Italic(t), render.Text("."))
	}
	if date := FormatDate(i.PublicationDate); date != "" {
		e.AddText(date + ".")
	}

	medium := i.Medium
	if medium == "" {
		medium = i.ImageType
	}
	if medium != "" && i.Dimensions != "" {
		medium += ", " + i.Dimensions
	} else if medium == "" {
		medium = i.Dimensions
	}
	if medium != "" {
		e.AddText(render.EnsurePeriod(medium))
	}

	venue := i.Museum
	if venue == "" {
		venue = i.Collection
	}
	if details := joinDetails(venue, i.Location); details != "" {
		e.AddText(details)
	}
	addIdentifier(&e, &i.Common)
	return e.Formatted()
}

func refFilm(f *citation.Film) citation.Formatted {
	var e render.Entry

	if credit := creditedAuthors(f.Directors, "dir"); credit != "" {
		e.AddText(render.EnsurePeriod(credit))
	} else if len(f.Authors) > 0 {
		e.AddText(render.EnsurePeriod(JoinAuthors(f.Authors)))
	}
	if t := f.FullTitle(); t != "" {
		e.Add(render.Italic(t), render.Text("."))
	}
	if details := joinDetails(f.ProductionCompany, FormatDate(f.PublicationDate)); details != "" {
		e.AddText(details)
	}
	if f.StreamingService != "" {
		e.AddText(render.EnsurePeriod(f.StreamingService))
	}
	addIdentifier(&e, &f.Common)
	return e.Formatted()
}

func refTVSeries(t *citation.TVSeries) citation.Formatted {
	var e render.Entry

	if credit := creditedAuthors(t.Creators, "creator"); credit != "" {
		e.AddText(render.EnsurePeriod(credit))
	} else if credit := creditedAuthors(t.ExecutiveProducers, "executive producer"); credit != "" {
		e.AddText(render.EnsurePeriod(credit))
	} else if len(t.Authors) > 0 {
		e.AddText(render.EnsurePeriod(JoinAuthors(t.Authors)))
	}
	if ti := t.FullTitle(); ti != "" {
		e.Add(render.Italic(ti), render.Text("."))
	}

	venue := t.Network
	if venue == "" {
		venue = t.StreamingService
	}
	if details := joinDetails(venue, yearSpan(t.YearStart, t.YearEnd, t.PublicationDate)); details != "" {
		e.AddText(details)
	}
	addIdentifier(&e, &t.Common)
	return e.Formatted()
}

func refTVEpisode(t *citation.TVEpisode) citation.Formatted {
	var e render.Entry

	if t.SeriesTitle != "" {
		e.Add(render.Italic(t.SeriesTitle), render.Text(","))
	}

	locator := ""
	if t.Season != "" {
		locator = "season " + t.Season
	}
	if t.EpisodeNumber != "" {
		if locator != "" {
			locator += ", "
		}
		locator += "episode " + t.EpisodeNumber
	}
	if locator != "" {
		e.AddText(locator + ",")
	}
	if t.EpisodeTitle != "" {
		e.AddText(quoted(t.EpisodeTitle))
	} else {
		e.Terminate(".")
	}

	if len(t.Directors) > 0 {
		e.AddText("Directed by " + directNames(t.Directors) + ".")
	}
	if len(t.Writers) > 0 {
		e.AddText("Written by " + directNames(t.Writers) + ".")
	}

	aired := FormatDate(t.AiredDate())
	venue := t.Network
	if venue == "" {
		venue = t.StreamingService
	}
	switch {
	case aired != "" && venue != "":
		e.AddText("Aired " + aired + ", on " + venue + ".")
	case aired != "":
		e.AddText("Aired " + aired + ".")
	case venue != "":
		e.AddText(render.EnsurePeriod(venue))
	}
	addIdentifier(&e, &t.Common)
	return e.Formatted()
}

func refMisc(m *citation.Miscellaneous) citation.Formatted {
	var e render.Entry

	if len(m.Authors) > 0 {
		e.AddText(render.EnsurePeriod(JoinAuthors(m.Authors)))
	}
	if t := m.FullTitle(); t != "" {
		e.Add(render.Italic(t), render.Text("."))
	}

	descriptor := m.Format
	if descriptor == "" {
		descriptor = m.Medium
	}
	if descriptor != "" {
		e.AddText(render.EnsurePeriod(descriptor))
	}
	if details := joinDetails(m.Publisher, FormatDate(m.PublicationDate)); details != "" {
		e.AddText(details)
	}
	if m.Description != "" {
		e.AddText(render.EnsurePeriod(m.Description))
	}
	addIdentifier(&e, &m.Common)
	return e.Formatted()
}
