package apa

import (
	"github.com/aicoder2009/opencitation/citation"
	"github.com/aicoder2009/opencitation/render"
)

// title returns the sentence-cased full title; APA lowercases work titles
// beyond the first letter of each colon segment.
func title(c *citation.Common) string {
	return render.SentenceCase(c.FullTitle())
}

// addIdentifier appends the DOI when present, otherwise the URL. APA prefers
// the DOI over any URL.
func addIdentifier(e *render.Entry, c *citation.Common) {
	if c.DOI != "" {
		e.Add(render.Link(render.DOI(c.DOI)))
		return
	}
	if c.URL != "" {
		e.Add(render.Link(render.URL(c.URL)))
	}
}

// addRetrieval appends either the "Retrieved ..., from URL" element or the
// bare identifier.
func addRetrieval(e *render.Entry, c *citation.Common) {
	if c.DOI == "" && c.URL != "" && c.AccessDate.HasYear() {
		e.Add(render.Text(retrieved(c.AccessDate, c.URL)))
		e.Add(render.Link(render.URL(c.URL)))
		return
	}
	addIdentifier(e, c)
}

func refBook(b *citation.Book) citation.Formatted {
	var e render.Entry

	if len(b.Authors) > 0 {
		e.AddText(render.EnsurePeriod(JoinAuthors(b.Authors)))
	} else if len(b.Editors) > 0 {
		e.AddText(render.EnsurePeriod(joinEditors(b.Editors)))
	}
	e.AddText(FormatDate(b.PublicationDate) + ".")

	if t := title(&b.Common); t != "" {
		if b.Edition != "" {
			e.Add(render.Italic(t), render.Text(" ("+b.Edition+" ed.)."))
		} else {
			e.Add(render.Italic(t), render.Text("."))
		}
	}

	if b.Publisher != "" {
		e.AddText(render.EnsurePeriod(b.Publisher))
	}
	addIdentifier(&e, &b.Common)
	return e.Formatted()
}

func refJournal(j *citation.Journal) citation.Formatted {
	var e render.Entry

	if len(j.Authors) > 0 {
		e.AddText(render.EnsurePeriod(JoinAuthors(j.Authors)))
	}
	e.AddText(FormatDate(j.PublicationDate) + ".")

	if t := title(&j.Common); t != "" {
		e.AddText(render.EnsurePeriod(t))
	}

	// Journal name and volume italicized together; issue and pages plain.
	hasLocator := j.PageRange != "" || j.ArticleNumber != ""
	container := j.JournalTitle
	if j.Volume != "" {
		if container != "" {
			container += ", "
		}
		container += j.Volume
	}
	if container != "" {
		spans := []render.Span{render.Italic(container)}
		if j.Volume != "" && j.Issue != "" {
			spans = append(spans, render.Text("("+j.Issue+")"))
		}
		if hasLocator {
			spans = append(spans, render.Text(","))
		} else {
			spans = append(spans, render.Text("."))
		}
		e.Add(spans...)
	}

	switch {
	case j.PageRange != "":
		e.AddText(j.PageRange + ".")
	case j.ArticleNumber != "":
		e.AddText("Article " + j.ArticleNumber + ".")
	}

	addIdentifier(&e, &j.Common)
	return e.Formatted()
}

func refWebsite(w *citation.Website) citation.Formatted {
	var e render.Entry

	if len(w.Authors) > 0 {
		e.AddText(render.EnsurePeriod(JoinAuthors(w.Authors)))
		e.AddText(FormatDate(w.PublicationDate) + ".")
		if t := title(&w.Common); t != "" {
			e.Add(render.Italic(t), render.Text("."))
		}
	} else {
		// Without an author the title moves to the front.
		if t := title(&w.Common); t != "" {
			e.Add(render.Italic(t), render.Text("."))
		}
		e.AddText(FormatDate(w.PublicationDate) + ".")
	}

	if w.SiteName != "" {
		e.AddText(render.EnsurePeriod(w.SiteName))
	}
	addRetrieval(&e, &w.Common)
	return e.Formatted()
}

func refBlog(b *citation.Blog) citation.Formatted {
	var e render.Entry

	if len(b.Authors) > 0 {
		e.AddText(render.EnsurePeriod(JoinAuthors(b.Authors)))
	}
	e.AddText(FormatDate(b.PublicationDate) + ".")

	if t := title(&b.Common); t != "" {
		e.AddText(render.EnsurePeriod(t))
	}
	if b.BlogName != "" {
		e.Add(render.Italic(b.BlogName), render.Text("."))
	}
	addIdentifier(&e, &b.Common)
	return e.Formatted()
}

func refNewspaper(n *citation.Newspaper) citation.Formatted {
	var e render.Entry

	if len(n.Authors) > 0 {
		e.AddText(render.EnsurePeriod(JoinAuthors(n.Authors)))
	}
	e.AddText(FormatDate(n.PublicationDate) + ".")

	if t := title(&n.Common); t != "" {
		e.AddText(render.EnsurePeriod(t))
	}
	if n.NewspaperTitle != "" {
		e.Add(render.Italic(n.NewspaperTitle), render.Text("."))
	}
	addIdentifier(&e, &n.Common)
	return e.Formatted()
}

func refVideo(v *citation.Video) citation.Formatted {
	var e render.Entry

	switch {
	case len(v.Authors) > 0:
		e.AddText(render.EnsurePeriod(JoinAuthors(v.Authors)))
	case v.ChannelName != "":
		e.AddText(render.EnsurePeriod(v.ChannelName))
	}
	e.AddText(FormatDate(v.PublishedDate()) + ".")

	if t := title(&v.Common); t != "" {
		e.Add(render.Italic(t), render.Text(" [Video]."))
	}
	if v.Platform != "" {
		e.AddText(render.EnsurePeriod(v.Platform))
	}
	addIdentifier(&e, &v.Common)
	return e.Formatted()
}

func refImage(i *citation.Image) citation.Formatted {
	var e render.Entry

	if len(i.Authors) > 0 {
		e.AddText(render.EnsurePeriod(JoinAuthors(i.Authors)))
	}
	e.AddText(FormatDate(i.PublicationDate) + ".")

	descriptor := i.ImageType
	if descriptor == "" {
		descriptor = i.Medium
	}
	if descriptor == "" {
		descriptor = "Image"
	}
	if t := title(&i.Common); t != "" {
		e.Add(render.Italic(t), render.Text(" ["+descriptor+"]."))
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
	addIdentifier(&e, &i.Common)
	return e.Formatted()
}

func refFilm(f *citation.Film) citation.Formatted {
	var e render.Entry

	if credit := roleCredit(f.Directors, "Director"); credit != "" {
		e.AddText(credit + ".")
	} else if len(f.Authors) > 0 {
		e.AddText(render.EnsurePeriod(JoinAuthors(f.Authors)))
	}
	e.AddText(FormatDate(f.PublicationDate) + ".")

	if t := title(&f.Common); t != "" {
		e.Add(render.Italic(t), render.Text(" [Film]."))
	}
	if f.ProductionCompany != "" {
		e.AddText(render.EnsurePeriod(f.ProductionCompany))
	}
	if f.StreamingService != "" {
		e.AddText(render.EnsurePeriod(f.StreamingService))
	}
	addIdentifier(&e, &f.Common)
	return e.Formatted()
}

func refTVSeries(t *citation.TVSeries) citation.Formatted {
	var e render.Entry

	if credit := roleCredit(t.Creators, "Creator"); credit != "" {
		e.AddText(credit + ".")
	} else if credit := roleCredit(t.ExecutiveProducers, "Executive Producer"); credit != "" {
		e.AddText(credit + ".")
	} else if len(t.Authors) > 0 {
		e.AddText(render.EnsurePeriod(JoinAuthors(t.Authors)))
	}
	e.AddText(yearRange(t.YearStart, t.YearEnd, t.PublicationDate) + ".")

	if ti := title(&t.Common); ti != "" {
		e.Add(render.Italic(ti), render.Text(" [TV series]."))
	}

	venue := t.Network
	if venue == "" {
		venue = t.StreamingService
	}
	if venue != "" {
		e.AddText(render.EnsurePeriod(venue))
	}
	addIdentifier(&e, &t.Common)
	return e.Formatted()
}

func refTVEpisode(t *citation.TVEpisode) citation.Formatted {
	var e render.Entry

	writers := roleCredit(t.Writers, "Writer")
	directors := roleCredit(t.Directors, "Director")
	switch {
	case writers != "" && directors != "":
		e.AddText(writers + ", & " + directors + ".")
	case writers != "":
		e.AddText(writers + ".")
	case directors != "":
		e.AddText(directors + ".")
	case len(t.Authors) > 0:
		e.AddText(render.EnsurePeriod(JoinAuthors(t.Authors)))
	}
	e.AddText(FormatDate(t.AiredDate()) + ".")

	episode := render.SentenceCase(t.EpisodeTitle)
	if episode == "" {
		episode = title(&t.Common)
	}
	if episode != "" {
		locator := ""
		if t.Season != "" && t.EpisodeNumber != "" {
			locator = " (Season " + t.Season + ", Episode " + t.EpisodeNumber + ")"
		}
		e.AddText(episode + locator + " [TV series episode].")
	}

	if t.SeriesTitle != "" {
		e.Add(render.Text("In "), render.Italic(t.SeriesTitle), render.Text("."))
	}

	venue := t.Network
	if venue == "" {
		venue = t.StreamingService
	}
	if venue != "" {
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
	e.AddText(FormatDate(m.PublicationDate) + ".")

	descriptor := m.Format
	if descriptor == "" {
		descriptor = m.Medium
	}
	if t := title(&m.Common); t != "" {
		if descriptor != "" {
			e.Add(render.Italic(t), render.Text(" ["+descriptor+"]."))
		} else {
			e.Add(render.Italic(t), render.Text("."))
		}
	}

	if m.Publisher != "" {
		e.AddText(render.EnsurePeriod(m.Publisher))
	}
	if m.Description != "" {
		e.AddText(render.EnsurePeriod(m.Description))
	}
	addIdentifier(&e, &m.Common)
	return e.Formatted()
}
