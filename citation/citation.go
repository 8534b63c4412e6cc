// Package citation defines the normalized citation data model shared by the
// style formatters and exchange serializers.
package citation

// SourceType identifies the category of work being cited.
type SourceType string

// The recognized source types.
const (
	SourceBook          SourceType = "book"
	SourceJournal       SourceType = "journal"
	SourceWebsite       SourceType = "website"
	SourceBlog          SourceType = "blog"
	SourceNewspaper     SourceType = "newspaper"
	SourceVideo         SourceType = "video"
	SourceImage         SourceType = "image"
	SourceFilm          SourceType = "film"
	SourceTVSeries      SourceType = "tv-series"
	SourceTVEpisode     SourceType = "tv-episode"
	SourceMiscellaneous SourceType = "miscellaneous"
)

// SourceTypes lists every recognized source type in display order.
func SourceTypes() []SourceType {
	return []SourceType{
		SourceBook,
		SourceJournal,
		SourceWebsite,
		SourceBlog,
		SourceNewspaper,
		SourceVideo,
		SourceImage,
		SourceFilm,
		SourceTVSeries,
		SourceTVEpisode,
		SourceMiscellaneous,
	}
}

// AccessType records how a source was accessed. It is informational and does
// not gate any formatting logic.
type AccessType string

// The recognized access types.
const (
	AccessWeb      AccessType = "web"
	AccessPrint    AccessType = "print"
	AccessDatabase AccessType = "database"
	AccessApp      AccessType = "app"
	AccessArchive  AccessType = "archive"
)

// Common holds the fields shared by every source type.
type Common struct {
	Title           string     `json:"title" yaml:"title"`
	Subtitle        string     `json:"subtitle,omitempty" yaml:"subtitle,omitempty"`
	AccessType      AccessType `json:"accessType,omitempty" yaml:"accessType,omitempty"`
	Authors         []Author   `json:"authors,omitempty" yaml:"authors,omitempty"`
	PublicationDate *Date      `json:"publicationDate,omitempty" yaml:"publicationDate,omitempty"`
	URL             string     `json:"url,omitempty" yaml:"url,omitempty"`
	DOI             string     `json:"doi,omitempty" yaml:"doi,omitempty"`
	Publisher       string     `json:"publisher,omitempty" yaml:"publisher,omitempty"`
	AccessDate      *Date      `json:"accessDate,omitempty" yaml:"accessDate,omitempty"`
	Language        string     `json:"language,omitempty" yaml:"language,omitempty"`
	Annotation      string     `json:"annotation,omitempty" yaml:"annotation,omitempty"`
}

// FullTitle returns the title joined with the subtitle when one is present.
func (c *Common) FullTitle() string {
	if c.Subtitle != "" {
		return c.Title + ": " + c.Subtitle
	}
	return c.Title
}

// Fields is the tagged union over the eleven source types. Each variant
// embeds Common and adds its source-specific fields.
type Fields interface {
	// SourceType returns the variant's type tag.
	SourceType() SourceType

	// Base returns the fields shared by all source types.
	Base() *Common
}

// Formatted is a fully rendered citation. Text and HTML carry the same
// elements in the same order; HTML additionally italicizes titles, hyperlinks
// URLs and DOIs, and escapes interpolated text.
type Formatted struct {
	Text string `json:"text"`
	HTML string `json:"html"`
}
