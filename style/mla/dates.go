package mla

import (
	"strconv"

	"github.com/aicoder2009/opencitation/citation"
	"github.com/aicoder2009/opencitation/render"
)

// FormatDate renders a date as "Day Mon. Year" with the MLA month
// abbreviations, degrading to "Mon. Year" and "Year". A date without a year
// renders as the empty string.
func FormatDate(d *citation.Date) string {
	if !d.HasYear() {
		return ""
	}

	year := strconv.Itoa(d.Year)
	if !d.HasMonth() {
		return year
	}
	month := render.MonthAbbrev(d.Month)
	if d.HasDay() {
		return strconv.Itoa(d.Day) + " " + month + " " + year
	}
	return month + " " + year
}

// yearSpan renders a "start-end" range for multi-year works, "start-present"
// while ongoing. Falls back to the publication date when no start is known.
func yearSpan(start, end int, fallback *citation.Date) string {
	if start == 0 {
		return FormatDate(fallback)
	}
	if end == 0 {
		return strconv.Itoa(start) + "-present"
	}
	if end == start {
		return strconv.Itoa(start)
	}
	return strconv.Itoa(start) + "-" + strconv.Itoa(end)
}
