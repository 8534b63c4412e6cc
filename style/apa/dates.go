package apa

import (
	"strconv"

	"github.com/aicoder2009/opencitation/citation"
	"github.com/aicoder2009/opencitation/render"
)

// FormatDate renders a date element as "(Year, Month Day)" or
// "(Year, Season)", with the "(n.d.)" sentinel when no year is present.
func FormatDate(d *citation.Date) string {
	if !d.HasYear() {
		return "(n.d.)"
	}

	s := strconv.Itoa(d.Year)
	if season := render.SeasonName(d.Season); season != "" {
		return "(" + s + ", " + season + ")"
	}
	if d.HasMonth() {
		s += ", " + render.MonthName(d.Month)
		if d.HasDay() {
			s += " " + strconv.Itoa(d.Day)
		}
	}
	return "(" + s + ")"
}

// yearOf renders just the year of a date known to have one.
func yearOf(d *citation.Date) string {
	return strconv.Itoa(d.Year)
}

// yearRange renders a "(start–end)" span for works that run over multiple
// years, with "present" for an open end. Falls back to FormatDate when no
// start year is known.
func yearRange(start, end int, fallback *citation.Date) string {
	if start == 0 {
		return FormatDate(fallback)
	}
	if end == 0 {
		return "(" + strconv.Itoa(start) + "–present)"
	}
	if end == start {
		return "(" + strconv.Itoa(start) + ")"
	}
	return "(" + strconv.Itoa(start) + "–" + strconv.Itoa(end) + ")"
}

// retrieved renders the APA access-date element, "Retrieved Month Day, Year,
// from URL".
func retrieved(d *citation.Date, url string) string {
	if !d.HasYear() || url == "" {
		return ""
	}
	s := "Retrieved "
	if d.HasMonth() {
		s += render.MonthName(d.Month) + " "
		if d.HasDay() {
			s += strconv.Itoa(d.Day) + ", "
		}
	}
	return s + strconv.Itoa(d.Year) + ", from"
}
