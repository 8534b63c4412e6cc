package ris

import (
	"fmt"
	"io"
	"strings"

	"github.com/aicoder2009/opencitation/citation"
	"github.com/aicoder2009/opencitation/exchange"
)

// Serialize writes citation records as RIS, one blank line between records.
func (f *Format) Serialize(w io.Writer, citations []citation.Fields, opts *exchange.Options) error {
	// opts reserved for future use (RIS has no layout options)
	_ = opts

	if _, err := io.WriteString(w, Records(citations)); err != nil {
		return err
	}
	return nil
}

// Records renders a batch of citations, joined by a blank line.
func Records(citations []citation.Fields) string {
	entries := make([]string, 0, len(citations))
	for _, c := range citations {
		entries = append(entries, Record(c))
	}
	return strings.Join(entries, "\n\n")
}

// Record renders a single citation as an RIS record. Missing fields are
// omitted rather than emitted as blank tags.
func Record(f citation.Fields) string {
	var lines []string
	add := func(tag, value string) {
		if value != "" {
			lines = append(lines, tag+"  - "+value)
		}
	}

	c := f.Base()
	add("TY", typeCode(f.SourceType()))

	for _, a := range c.Authors {
		add("AU", a.InvertedName())
	}

	title := c.FullTitle()
	switch v := f.(type) {
	case *citation.Book:
		for _, ed := range v.Editors {
			add("ED", ed.InvertedName())
		}
		add("TI", title)
		add("PB", c.Publisher)
		add("CY", v.PublicationPlace)
		add("SN", v.ISBN)
		add("ET", v.Edition)
	case *citation.Journal:
		add("TI", title)
		add("T2", v.JournalTitle)
		add("JO", v.JournalTitle)
		add("VL", v.Volume)
		add("IS", v.Issue)
		addPages(add, v.PageRange)
		add("SN", v.ISSN)
		add("PB", c.Publisher)
	case *citation.Website:
		add("TI", title)
		add("T2", v.SiteName)
		add("PB", c.Publisher)
	case *citation.Blog:
		add("TI", title)
		add("T2", v.BlogName)
		add("PB", c.Publisher)
	case *citation.Newspaper:
		add("TI", title)
		add("T2", v.NewspaperTitle)
		add("PB", c.Publisher)
	case *citation.Video:
		for _, ch := range channelAuthor(v, c) {
			add("AU", ch)
		}
		add("TI", title)
		add("T2", v.Platform)
		add("PB", c.Publisher)
	case *citation.Film:
		for _, d := range v.Directors {
			add("ED", d.InvertedName())
		}
		add("TI", title)
		add("PB", pick(v.ProductionCompany, c.Publisher))
	case *citation.TVSeries:
		for _, cr := range v.Creators {
			add("ED", cr.InvertedName())
		}
		add("TI", title)
		add("PB", pick(v.Network, v.StreamingService, c.Publisher))
	case *citation.TVEpisode:
		add("TI", pick(v.EpisodeTitle, title))
		add("T2", v.SeriesTitle)
		add("VL", v.Season)
		add("IS", v.EpisodeNumber)
		add("PB", pick(v.Network, v.StreamingService, c.Publisher))
	default:
		add("TI", title)
		add("PB", c.Publisher)
	}

	add("PY", yearOf(c.PublicationDate))
	add("Y1", fullDate(c.PublicationDate))
	add("UR", strings.TrimSuffix(c.URL, "/"))
	add("DO", c.DOI)
	add("Y2", fullDate(c.AccessDate))
	add("LA", c.Language)
	add("AB", c.Annotation)

	lines = append(lines, "ER  - ")
	return strings.Join(lines, "\n")
}

// typeCode maps a source type to its RIS reference type.
func typeCode(t citation.SourceType) string {
	switch t {
	case citation.SourceBook:
		return "BOOK"
	case citation.SourceJournal:
		return "JOUR"
	case citation.SourceNewspaper:
		return "NEWS"
	case citation.SourceWebsite, citation.SourceBlog:
		return "ELEC"
	case citation.SourceVideo, citation.SourceTVSeries, citation.SourceTVEpisode:
		return "VIDEO"
	case citation.SourceFilm:
		return "MPCT"
	case citation.SourceImage:
		return "ART"
	default:
		return "GEN"
	}
}

// addPages splits a "start-end" page range into SP and EP tags; a single
// page emits SP alone.
func addPages(add func(tag, value string), pageRange string) {
	if pageRange == "" {
		return
	}
	start, end, found := strings.Cut(pageRange, "-")
	add("SP", strings.TrimSpace(start))
	if found {
		add("EP", strings.TrimSpace(end))
	}
}

// yearOf renders the publication year tag value.
func yearOf(d *citation.Date) string {
	if !d.HasYear() {
		return ""
	}
	return fmt.Sprintf("%d", d.Year)
}

// fullDate renders the RIS date form "YYYY/MM/DD/", emitted only when the
// date is finer-grained than a bare year.
func fullDate(d *citation.Date) string {
	if !d.HasYear() || !d.HasMonth() {
		return ""
	}
	if d.HasDay() {
		return fmt.Sprintf("%04d/%02d/%02d/", d.Year, d.Month, d.Day)
	}
	return fmt.Sprintf("%04d/%02d//", d.Year, d.Month)
}

// channelAuthor supplies the channel name as an author when a video record
// has no listed authors.
func channelAuthor(v *citation.Video, c *citation.Common) []string {
	if len(c.Authors) > 0 || v.ChannelName == "" {
		return nil
	}
	return []string{v.ChannelName}
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
