package chicago

import (
	"strconv"

	"github.com/aicoder2009/opencitation/citation"
	"github.com/aicoder2009/opencitation/render"
)

// FormatDate renders a date as "Month Day, Year" with the month spelled in
// full, degrading to "Month Year" and "Year". A date without a year renders
// as the empty string.
func FormatDate(d *citation.Date) string {
	if !d.HasYear() {
		return ""
	}

	year := strconv.Itoa(d.Year)
	if !d.HasMonth() {
		return year
	}
	month := render.MonthName(d.Month)
	if d.HasDay() {
		return month + " " + strconv.Itoa(d.Day) + ", " + year
	}
	return month + " " + year
}

// yearOf renders just the year of a date known to have one.
func yearOf(d *citation.Date) string {
	return strconv.Itoa(d.Year)
}

// yearSpan renders a "start–end" range for multi-year works.
func yearSpan(start, end int, fallback *citation.Date) string {
	if start == 0 {
		return FormatDate(fallback)
	}
	if end == 0 {
		return strconv.Itoa(start) + "–present"
	}
	if end == start {
		return strconv.Itoa(start)
	}
	return strconv.Itoa(start) + "–" + strconv.Itoa(end)
}
