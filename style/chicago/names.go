package chicago

import (
	"strings"

	"github.com/aicoder2009/opencitation/citation"
)

// FormatAuthor renders one author; like MLA, Chicago inverts only the first
// author in a list. Organization authors render verbatim.
func FormatAuthor(a citation.Author, isFirst bool) string {
	if a.IsOrganization {
		return a.LastName
	}
	if isFirst {
		return a.InvertedName()
	}
	return a.DirectName()
}

// JoinAuthors renders an author list per Chicago rules: up to three authors
// are listed in full ("A, B, and C"), four or more collapse to the first
// author plus "et al."
func JoinAuthors(authors []citation.Author) string {
	switch len(authors) {
	case 0:
		return ""
	case 1:
		return FormatAuthor(authors[0], true)
	case 2:
		return FormatAuthor(authors[0], true) + " and " + FormatAuthor(authors[1], false)
	case 3:
		return FormatAuthor(authors[0], true) + ", " + FormatAuthor(authors[1], false) +
			", and " + FormatAuthor(authors[2], false)
	default:
		return FormatAuthor(authors[0], true) + ", et al."
	}
}

// creditedAuthors renders a contributor list with a trailing role
// abbreviation, Chicago's "Last, First, dir." form.
func creditedAuthors(people []citation.Author, role string) string {
	if len(people) == 0 {
		return ""
	}
	if len(people) > 1 {
		role += "s"
	}
	return JoinAuthors(people) + ", " + role
}

// directNames renders contributors in natural order for mid-entry credits.
func directNames(people []citation.Author) string {
	names := make([]string, 0, len(people))
	for _, p := range people {
		names = append(names, p.DirectName())
	}
	switch len(names) {
	case 0:
		return ""
	case 1:
		return names[0]
	case 2:
		return names[0] + " and " + names[1]
	default:
		return strings.Join(names[:len(names)-1], ", ") + ", and " + names[len(names)-1]
	}
}
