package mla

import (
	"strings"

	"github.com/aicoder2009/opencitation/citation"
	"github.com/aicoder2009/opencitation/render"
)

// quoted wraps a contained-work title in quotation marks with the period
// inside, MLA's form for works inside a container.
func quoted(title string) string {
	return `"` + title + `."`
}

// pages renders a page locator, "pp. 123-145" for ranges and "p. 12" for a
// single page.
func pages(pageRange string) string {
	if strings.Contains(pageRange, "-") {
		return "pp. " + pageRange
	}
	return "p. " + pageRange
}

// addContainer appends the container element: an italicized container title
// followed by comma-separated publication details and a terminal period.
func addContainer(e *render.Entry, name string, details ...string) {
	kept := details[:0]
	for _, d := range details {
		if d != "" {
			kept = append(kept, d)
		}
	}

	switch {
	case name != "" && len(kept) > 0:
		e.Add(render.Italic(name), render.Text(", "+strings.Join(kept, ", ")+"."))
	case name != "":
		e.Add(render.Italic(name), render.Text("."))
	case len(kept) > 0:
		e.AddText(strings.Join(kept, ", ") + ".")
	}
}

// addIdentifier appends the DOI or URL as the final location element.
func addIdentifier(e *render.Entry, c *citation.Common) {
	switch {
	case c.DOI != "":
		e.Add(render.Link(render.DOI(c.DOI)), render.Text("."))
	case c.URL != "":
		e.Add(render.Link(render.URL(c.URL)), render.Text("."))
	}
}

// addAccessed appends the optional "Accessed Day Mon. Year." element.
func addAccessed(e *render.Entry, c *citation.Common) {
	if date := FormatDate(c.AccessDate); date != "" {
		e.AddText("Accessed " + date + ".")
	}
}

func refBook(b *citation.Book) citation.Formatted {
	var e render.Entry

	if len(b.Authors) > 0 {
		e.AddText(render.EnsurePeriod(JoinAuthors(b.Authors)))
	} else if len(b.Editors) > 0 {
		label := ", editor."
		if len(b.Editors) > 1 {
			label = ", editors."
		}
		e.AddText(JoinAuthors(b.Editors) + label)
	}

	if t := b.FullTitle(); t != "" {
		e.Add(render.Italic(t), render.Text("."))
	}

	edition := ""
	if b.Edition != "" {
		edition = b.Edition + " ed."
	}
	details := make([]string, 0, 3)
	for _, d := range []string{edition, b.Publisher, FormatDate(b.PublicationDate)} {
		if d != "" {
			details = append(details, d)
		}
	}
	if len(details) > 0 {
		e.AddText(strings.Join(details, ", ") + ".")
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

	details := make([]string, 0, 4)
	if j.Volume != "" {
		details = append(details, "vol. "+j.Volume)
	}
	if j.Issue != "" {
		details = append(details, "no. "+j.Issue)
	}
	if date := FormatDate(j.PublicationDate); date != "" {
		details = append(details, date)
	}
	if j.PageRange != "" {
		details = append(details, pages(j.PageRange))
	}
	addContainer(&e, j.JournalTitle, details...)
	addIdentifier(&e, &j.Common)
	return e.Formatted()
}

func refWebsite(w *citation.Website) citation.Formatted {
	var e render.Entry

	if len(w.Authors) > 0 {
		e.AddText(render.EnsurePeriod(JoinAuthors(w.Authors)))
	}
	if t := w.FullTitle(); t != "" {
		e.AddText(quoted(t))
	}
	addContainer(&e, w.SiteName, FormatDate(w.PublicationDate))
	addIdentifier(&e, &w.Common)
	addAccessed(&e, &w.Common)
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
	addContainer(&e, b.BlogName, FormatDate(b.PublicationDate))
	addIdentifier(&e, &b.Common)
	addAccessed(&e, &b.Common)
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

	section := ""
	if n.Section != "" {
		section = "sec. " + n.Section
	}
	addContainer(&e, n.NewspaperTitle, FormatDate(n.PublicationDate), section)
	addIdentifier(&e, &n.Common)
	return e.Formatted()
}

func refVideo(v *citation.Video) citation.Formatted {
	var e render.Entry

	uploaded := ""
	switch {
	case len(v.Authors) > 0:
		e.AddText(render.EnsurePeriod(JoinAuthors(v.Authors)))
		if v.ChannelName != "" {
			uploaded = "uploaded by " + v.ChannelName
		}
	case v.ChannelName != "":
		e.AddText(render.EnsurePeriod(v.ChannelName))
	}

	if t := v.FullTitle(); t != "" {
		e.AddText(quoted(t))
	}
	addContainer(&e, v.Platform, uploaded, FormatDate(v.PublishedDate()))
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
	if i.Medium != "" {
		e.AddText(render.EnsurePeriod(i.Medium))
	}

	venue := i.Museum
	if venue == "" {
		venue = i.Collection
	}
	details := make([]string, 0, 3)
	for _, d := range []string{FormatDate(i.PublicationDate), venue, i.Location} {
		if d != "" {
			details = append(details, d)
		}
	}
	if len(details) > 0 {
		e.AddText(strings.Join(details, ", ") + ".")
	}
	addIdentifier(&e, &i.Common)
	return e.Formatted()
}

func refFilm(f *citation.Film) citation.Formatted {
	var e render.Entry

	if t := f.FullTitle(); t != "" {
		e.Add(render.Italic(t), render.Text("."))
	}

	directed := ""
	if len(f.Directors) > 0 {
		directed = "Directed by " + directNames(f.Directors)
	}
	details := make([]string, 0, 3)
	for _, d := range []string{directed, f.ProductionCompany, FormatDate(f.PublicationDate)} {
		if d != "" {
			details = append(details, d)
		}
	}
	if len(details) > 0 {
		e.AddText(strings.Join(details, ", ") + ".")
	}
	if f.StreamingService != "" {
		e.Add(render.Italic(f.StreamingService), render.Text("."))
	}
	addIdentifier(&e, &f.Common)
	return e.Formatted()
}

func refTVSeries(t *citation.TVSeries) citation.Formatted {
	var e render.Entry

	if ti := t.FullTitle(); ti != "" {
		e.Add(render.Italic(ti), render.Text("."))
	}

	created := ""
	if len(t.Creators) > 0 {
		created = "Created by " + directNames(t.Creators)
	}
	venue := t.Network
	if venue == "" {
		venue = t.StreamingService
	}
	details := make([]string, 0, 3)
	for _, d := range []string{created, venue, yearSpan(t.YearStart, t.YearEnd, t.PublicationDate)} {
		if d != "" {
			details = append(details, d)
		}
	}
	if len(details) > 0 {
		e.AddText(strings.Join(details, ", ") + ".")
	}
	addIdentifier(&e, &t.Common)
	return e.Formatted()
}

func refTVEpisode(t *citation.TVEpisode) citation.Formatted {
	var e render.Entry

	if t.EpisodeTitle != "" {
		e.AddText(quoted(t.EpisodeTitle))
	}

	created := ""
	if len(t.Writers) > 0 {
		created = "written by " + directNames(t.Writers)
	}
	directed := ""
	if len(t.Directors) > 0 {
		directed = "directed by " + directNames(t.Directors)
	}
	season := ""
	if t.Season != "" {
		season = "season " + t.Season
	}
	episode := ""
	if t.EpisodeNumber != "" {
		episode = "episode " + t.EpisodeNumber
	}
	venue := t.Network
	if venue == "" {
		venue = t.StreamingService
	}
	addContainer(&e, t.SeriesTitle, created, directed, season, episode, venue, FormatDate(t.AiredDate()))
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
	if m.Description != "" {
		e.AddText(render.EnsurePeriod(m.Description))
	}

	details := make([]string, 0, 2)
	for _, d := range []string{m.Publisher, FormatDate(m.PublicationDate)} {
		if d != "" {
			details = append(details, d)
		}
	}
	if len(details) > 0 {
		e.AddText(strings.Join(details, ", ") + ".")
	}
	addIdentifier(&e, &m.Common)
	return e.Formatted()
}
