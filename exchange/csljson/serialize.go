package csljson

import (
	"encoding/json"
	"io"

	"github.com/aicoder2009/opencitation/citation"
	"github.com/aicoder2009/opencitation/exchange"
)

// Item is a CSL-JSON citation item with the standard variable names.
type Item struct {
	Type            string `json:"type"`
	Title           string `json:"title,omitempty"`
	Author          []Name `json:"author,omitempty"`
	Editor          []Name `json:"editor,omitempty"`
	Director        []Name `json:"director,omitempty"`
	Issued          *DateV `json:"issued,omitempty"`
	Accessed        *DateV `json:"accessed,omitempty"`
	ContainerTitle  string `json:"container-title,omitempty"`
	CollectionTitle string `json:"collection-title,omitempty"`
	Volume          string `json:"volume,omitempty"`
	Issue           string `json:"issue,omitempty"`
	Page            string `json:"page,omitempty"`
	Edition         string `json:"edition,omitempty"`
	Publisher       string `json:"publisher,omitempty"`
	PublisherPlace  string `json:"publisher-place,omitempty"`
	URL             string `json:"URL,omitempty"`
	DOI             string `json:"DOI,omitempty"`
	ISBN            string `json:"ISBN,omitempty"`
	ISSN            string `json:"ISSN,omitempty"`
	Medium          string `json:"medium,omitempty"`
	Dimensions      string `json:"dimensions,omitempty"`
	Abstract        string `json:"abstract,omitempty"`
	Language        string `json:"language,omitempty"`
	Section         string `json:"section,omitempty"`
}

// Name is a CSL-JSON contributor name.
type Name struct {
	Family  string `json:"family,omitempty"`
	Given   string `json:"given,omitempty"`
	Suffix  string `json:"suffix,omitempty"`
	Literal string `json:"literal,omitempty"`
}

// DateV is a CSL-JSON date value in date-parts form.
type DateV struct {
	DateParts [][]int `json:"date-parts"`
	Season    string  `json:"season,omitempty"`
}

// Serialize writes citation records as a CSL-JSON array (a single record is
// written as one item).
func (f *Format) Serialize(w io.Writer, citations []citation.Fields, opts *exchange.Options) error {
	if opts == nil {
		opts = exchange.NewOptions()
	}

	items := make([]Item, 0, len(citations))
	for _, c := range citations {
		items = append(items, toItem(c))
	}

	encoder := json.NewEncoder(w)
	if opts.Pretty {
		encoder.SetIndent("", "  ")
	}
	if len(items) == 1 {
		return encoder.Encode(items[0])
	}
	return encoder.Encode(items)
}

// toItem maps a citation record onto a CSL-JSON item.
func toItem(f citation.Fields) Item {
	c := f.Base()
	item := Item{
		Type:      itemType(f.SourceType()),
		Title:     c.FullTitle(),
		Author:    names(c.Authors),
		Issued:    dateOf(c.PublicationDate),
		Accessed:  dateOf(c.AccessDate),
		URL:       c.URL,
		DOI:       c.DOI,
		Publisher: c.Publisher,
		Abstract:  c.Annotation,
		Language:  c.Language,
	}

	switch v := f.(type) {
	case *citation.Book:
		item.Editor = names(v.Editors)
		item.Edition = v.Edition
		item.PublisherPlace = v.PublicationPlace
		item.ISBN = v.ISBN
	case *citation.Journal:
		item.ContainerTitle = v.JournalTitle
		item.Volume = v.Volume
		item.Issue = v.Issue
		item.Page = v.PageRange
		item.ISSN = v.ISSN
	case *citation.Website:
		item.ContainerTitle = v.SiteName
	case *citation.Blog:
		item.ContainerTitle = v.BlogName
	case *citation.Newspaper:
		item.ContainerTitle = v.NewspaperTitle
		item.Section = v.Section
	case *citation.Video:
		item.ContainerTitle = v.Platform
		item.Issued = dateOf(v.PublishedDate())
		if len(item.Author) == 0 && v.ChannelName != "" {
			item.Author = []Name{{Literal: v.ChannelName}}
		}
	case *citation.Image:
		item.Medium = pick(v.Medium, v.ImageType)
		item.Dimensions = v.Dimensions
		item.CollectionTitle = v.Collection
		item.PublisherPlace = v.Location
		if item.Publisher == "" {
			item.Publisher = v.Museum
		}
	case *citation.Film:
		item.Director = names(v.Directors)
		if item.Publisher == "" {
			item.Publisher = v.ProductionCompany
		}
	case *citation.TVSeries:
		item.Director = names(v.Creators)
		if item.Publisher == "" {
			item.Publisher = pick(v.Network, v.StreamingService)
		}
	case *citation.TVEpisode:
		if v.EpisodeTitle != "" {
			item.Title = v.EpisodeTitle
		}
		item.ContainerTitle = v.SeriesTitle
		item.Volume = v.Season
		item.Issue = v.EpisodeNumber
		item.Director = names(v.Directors)
		if item.Publisher == "" {
			item.Publisher = pick(v.Network, v.StreamingService)
		}
		item.Issued = dateOf(v.AiredDate())
	case *citation.Miscellaneous:
		item.Medium = pick(v.Format, v.Medium)
	}

	return item
}

// itemType maps a source type to its CSL item type.
func itemType(t citation.SourceType) string {
	switch t {
	case citation.SourceBook:
		return "book"
	case citation.SourceJournal:
		return "article-journal"
	case citation.SourceNewspaper:
		return "article-newspaper"
	case citation.SourceWebsite, citation.SourceBlog:
		return "webpage"
	case citation.SourceVideo:
		return "motion_picture"
	case citation.SourceFilm:
		return "motion_picture"
	case citation.SourceTVSeries, citation.SourceTVEpisode:
		return "broadcast"
	case citation.SourceImage:
		return "graphic"
	default:
		return "document"
	}
}

// names maps contributors to CSL names; organizations use the literal form.
func names(authors []citation.Author) []Name {
	if len(authors) == 0 {
		return nil
	}
	out := make([]Name, 0, len(authors))
	for _, a := range authors {
		if a.IsOrganization {
			out = append(out, Name{Literal: a.LastName})
			continue
		}
		out = append(out, Name{
			Family: a.LastName,
			Given:  a.GivenNames(),
			Suffix: a.Suffix,
		})
	}
	return out
}

// dateOf maps a date to CSL date-parts, nil when no year is present.
func dateOf(d *citation.Date) *DateV {
	if !d.HasYear() {
		return nil
	}
	parts := []int{d.Year}
	if d.HasMonth() {
		parts = append(parts, d.Month)
		if d.HasDay() {
			parts = append(parts, d.Day)
		}
	}
	return &DateV{
		DateParts: [][]int{parts},
		Season:    string(d.Season),
	}
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
