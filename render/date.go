package render

import "github.com/aicoder2009/opencitation/citation"

var monthNames = [13]string{
	"", "January", "February", "March", "April", "May", "June",
	"July", "August", "September", "October", "November", "December",
}

// MLA abbreviates months of five or more letters.
var monthAbbrevs = [13]string{
	"", "Jan.", "Feb.", "Mar.", "Apr.", "May", "June",
	"July", "Aug.", "Sept.", "Oct.", "Nov.", "Dec.",
}

// MonthName returns the full English month name, or "" for an out-of-range
// month.
func MonthName(m int) string {
	if m < 1 || m > 12 {
		return ""
	}
	return monthNames[m]
}

// MonthAbbrev returns the MLA-style month abbreviation, or "" for an
// out-of-range month.
func MonthAbbrev(m int) string {
	if m < 1 || m > 12 {
		return ""
	}
	return monthAbbrevs[m]
}

// SeasonName returns the capitalized season name, or "" when the season is
// not one of the four recognized values.
func SeasonName(s citation.Season) string {
	switch s {
	case citation.SeasonSpring:
		return "Spring"
	case citation.SeasonSummer:
		return "Summer"
	case citation.SeasonFall:
		return "Fall"
	case citation.SeasonWinter:
		return "Winter"
	default:
		return ""
	}
}
