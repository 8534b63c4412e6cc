package citation

// Book is a published monograph.
type Book struct {
	Common           `yaml:",inline"`
	ISBN             string   `json:"isbn,omitempty" yaml:"isbn,omitempty"`
	Edition          string   `json:"edition,omitempty" yaml:"edition,omitempty"`
	PublicationPlace string   `json:"publicationPlace,omitempty" yaml:"publicationPlace,omitempty"`
	Editors          []Author `json:"editors,omitempty" yaml:"editors,omitempty"`
}

func (b *Book) SourceType() SourceType { return SourceBook }
func (b *Book) Base() *Common          { return &b.Common }

// Journal is an article in a scholarly journal.
type Journal struct {
	Common        `yaml:",inline"`
	JournalTitle  string `json:"journalTitle" yaml:"journalTitle"`
	Volume        string `json:"volume,omitempty" yaml:"volume,omitempty"`
	Issue         string `json:"issue,omitempty" yaml:"issue,omitempty"`
	PageRange     string `json:"pageRange,omitempty" yaml:"pageRange,omitempty"`
	ArticleNumber string `json:"articleNumber,omitempty" yaml:"articleNumber,omitempty"`
	ISSN          string `json:"issn,omitempty" yaml:"issn,omitempty"`
}

func (j *Journal) SourceType() SourceType { return SourceJournal }
func (j *Journal) Base() *Common          { return &j.Common }

// Website is a page on a general website.
type Website struct {
	Common   `yaml:",inline"`
	SiteName string `json:"siteName,omitempty" yaml:"siteName,omitempty"`
}

func (w *Website) SourceType() SourceType { return SourceWebsite }
func (w *Website) Base() *Common          { return &w.Common }

// Blog is a post on a named blog.
type Blog struct {
	Common   `yaml:",inline"`
	BlogName string `json:"blogName" yaml:"blogName"`
}

func (b *Blog) SourceType() SourceType { return SourceBlog }
func (b *Blog) Base() *Common          { return &b.Common }

// Newspaper is an article in a newspaper.
type Newspaper struct {
	Common         `yaml:",inline"`
	NewspaperTitle string `json:"newspaperTitle" yaml:"newspaperTitle"`
	Section        string `json:"section,omitempty" yaml:"section,omitempty"`
}

func (n *Newspaper) SourceType() SourceType { return SourceNewspaper }
func (n *Newspaper) Base() *Common          { return &n.Common }

// Video is an online video, e.g. a YouTube upload.
type Video struct {
	Common      `yaml:",inline"`
	ChannelName string `json:"channelName,omitempty" yaml:"channelName,omitempty"`
	Platform    string `json:"platform,omitempty" yaml:"platform,omitempty"`
	UploadDate  *Date  `json:"uploadDate,omitempty" yaml:"uploadDate,omitempty"`
	Duration    string `json:"duration,omitempty" yaml:"duration,omitempty"`
}

func (v *Video) SourceType() SourceType { return SourceVideo }
func (v *Video) Base() *Common          { return &v.Common }

// PublishedDate returns the upload date when set, falling back to the
// publication date.
func (v *Video) PublishedDate() *Date {
	if v.UploadDate.HasYear() {
		return v.UploadDate
	}
	return v.PublicationDate
}

// Image is an artwork, photograph, or other visual work.
type Image struct {
	Common     `yaml:",inline"`
	Medium     string `json:"medium,omitempty" yaml:"medium,omitempty"`
	Museum     string `json:"museum,omitempty" yaml:"museum,omitempty"`
	Collection string `json:"collection,omitempty" yaml:"collection,omitempty"`
	Location   string `json:"location,omitempty" yaml:"location,omitempty"`
	Dimensions string `json:"dimensions,omitempty" yaml:"dimensions,omitempty"`
	ImageType  string `json:"imageType,omitempty" yaml:"imageType,omitempty"`
}

func (i *Image) SourceType() SourceType { return SourceImage }
func (i *Image) Base() *Common          { return &i.Common }

// Film is a feature film.
type Film struct {
	Common            `yaml:",inline"`
	Directors         []Author `json:"directors,omitempty" yaml:"directors,omitempty"`
	ProductionCompany string   `json:"productionCompany,omitempty" yaml:"productionCompany,omitempty"`
	StreamingService  string   `json:"streamingService,omitempty" yaml:"streamingService,omitempty"`
}

func (f *Film) SourceType() SourceType { return SourceFilm }
func (f *Film) Base() *Common          { return &f.Common }

// TVSeries is a television series cited as a whole.
type TVSeries struct {
	Common             `yaml:",inline"`
	Creators           []Author `json:"creators,omitempty" yaml:"creators,omitempty"`
	ExecutiveProducers []Author `json:"executiveProducers,omitempty" yaml:"executiveProducers,omitempty"`
	YearStart          int      `json:"yearStart,omitempty" yaml:"yearStart,omitempty"`
	YearEnd            int      `json:"yearEnd,omitempty" yaml:"yearEnd,omitempty"`
	Network            string   `json:"network,omitempty" yaml:"network,omitempty"`
	StreamingService   string   `json:"streamingService,omitempty" yaml:"streamingService,omitempty"`
}

func (t *TVSeries) SourceType() SourceType { return SourceTVSeries }
func (t *TVSeries) Base() *Common          { return &t.Common }

// TVEpisode is a single episode of a television series.
type TVEpisode struct {
	Common           `yaml:",inline"`
	EpisodeTitle     string   `json:"episodeTitle,omitempty" yaml:"episodeTitle,omitempty"`
	SeriesTitle      string   `json:"seriesTitle" yaml:"seriesTitle"`
	Season           string   `json:"season,omitempty" yaml:"season,omitempty"`
	EpisodeNumber    string   `json:"episodeNumber,omitempty" yaml:"episodeNumber,omitempty"`
	Writers          []Author `json:"writers,omitempty" yaml:"writers,omitempty"`
	Directors        []Author `json:"directors,omitempty" yaml:"directors,omitempty"`
	AirDate          *Date    `json:"airDate,omitempty" yaml:"airDate,omitempty"`
	Network          string   `json:"network,omitempty" yaml:"network,omitempty"`
	StreamingService string   `json:"streamingService,omitempty" yaml:"streamingService,omitempty"`
}

func (t *TVEpisode) SourceType() SourceType { return SourceTVEpisode }
func (t *TVEpisode) Base() *Common          { return &t.Common }

// AiredDate returns the air date when set, falling back to the publication
// date.
func (t *TVEpisode) AiredDate() *Date {
	if t.AirDate.HasYear() {
		return t.AirDate
	}
	return t.PublicationDate
}

// Miscellaneous covers sources that fit no other type.
type Miscellaneous struct {
	Common      `yaml:",inline"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
	Format      string `json:"format,omitempty" yaml:"format,omitempty"`
	Medium      string `json:"medium,omitempty" yaml:"medium,omitempty"`
}

func (m *Miscellaneous) SourceType() SourceType { return SourceMiscellaneous }
func (m *Miscellaneous) Base() *Common          { return &m.Common }

// Unknown preserves a record whose sourceType tag is not one of the eleven
// recognized types. Formatters render it as an empty citation rather than
// failing, so newer source types degrade instead of erroring.
type Unknown struct {
	Common `yaml:",inline"`
	Type   SourceType `json:"sourceType" yaml:"sourceType"`
}

func (u *Unknown) SourceType() SourceType { return u.Type }
func (u *Unknown) Base() *Common          { return &u.Common }
