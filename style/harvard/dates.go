package harvard

import (
	"strconv"

	"github.com/aicoder2009/opencitation/citation"
	"github.com/aicoder2009/opencitation/render"
)

// FormatDate renders a date as "Day Month Year" with no commas and the month
// spelled in full, degrading to "Month Year" and "Year". A date without a
// year renders the "n.d." sentinel.
func FormatDate(d *citation.Date) string {
	if !d.HasYear() {
		return "n.d."
	}

	year := strconv.Itoa(d.Year)
	if !d.HasMonth() {
		return year
	}
	month := render.MonthName(d.Month)
	if d.HasDay() {
		return strconv.Itoa(d.Day) + " " + month + " " + year
	}
	return month + " " + year
}

// yearOf renders just the year of a date known to have one.
func yearOf(d *citation.Date) string {
	return strconv.Itoa(d.Year)
}

// yearElement renders the parenthesized year element that follows the
// author, "(2020)" or "(n.d.)".
func yearElement(d *citation.Date) string {
	if !d.HasYear() {
		return "(n.d.)"
	}
	return "(" + yearOf(d) + ")"
}

// yearRangeElement renders "(start–end)" for multi-year works.
func yearRangeElement(start, end int, fallback *citation.Date) string {
	if start == 0 {
		return yearElement(fallback)
	}
	if end == 0 {
		return "(" + strconv.Itoa(start) + "–present)"
	}
	if end == start {
		return "(" + strconv.Itoa(start) + ")"
	}
	return "(" + strconv.Itoa(start) + "–" + strconv.Itoa(end) + ")"
}
