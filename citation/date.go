package citation

// Season identifies a quarterly publication season, an alternative to a
// month for seasonal issues.
type Season string

// The recognized seasons.
const (
	SeasonSpring Season = "spring"
	SeasonSummer Season = "summer"
	SeasonFall   Season = "fall"
	SeasonWinter Season = "winter"
)

// Date is a publication or access date of year, and optionally month, day or
// season granularity. A Date without a year carries no information: every
// formatter treats it exactly like a nil *Date.
type Date struct {
	Year   int    `json:"year,omitempty" yaml:"year,omitempty"`
	Month  int    `json:"month,omitempty" yaml:"month,omitempty"` // 1-12
	Day    int    `json:"day,omitempty" yaml:"day,omitempty"`
	Season Season `json:"season,omitempty" yaml:"season,omitempty"`
}

// HasYear reports whether the date carries a usable year. Presence of the
// year is the sole gate for "no date" handling.
func (d *Date) HasYear() bool {
	return d != nil && d.Year != 0
}

// HasMonth reports whether the date carries a valid month.
func (d *Date) HasMonth() bool {
	return d != nil && d.Month >= 1 && d.Month <= 12
}

// HasDay reports whether the date carries a day.
func (d *Date) HasDay() bool {
	return d != nil && d.Day > 0
}
