package harvard

import (
	"strings"

	"github.com/aicoder2009/opencitation/citation"
	"github.com/aicoder2009/opencitation/render"
)

// FormatAuthor renders one author as "Last, F.M. Suffix" with the initials
// run together, unlike APA's spaced initials. Organization authors render
// verbatim.
func FormatAuthor(a citation.Author) string {
	if a.IsOrganization {
		return a.LastName
	}

	name := a.LastName
	if initials := render.Initials(a.GivenNames(), ""); initials != "" {
		name += ", " + initials
	}
	if a.Suffix != "" {
		name += " " + a.Suffix
	}
	return name
}

// JoinAuthors renders an author list per Harvard rules: up to three authors
// listed ("A, B and C", no comma before the "and"), four or more collapse to
// the first author plus "et al." with no comma.
func JoinAuthors(authors []citation.Author) string {
	switch len(authors) {
	case 0:
		return ""
	case 1:
		return FormatAuthor(authors[0])
	case 2:
		return FormatAuthor(authors[0]) + " and " + FormatAuthor(authors[1])
	case 3:
		return FormatAuthor(authors[0]) + ", " + FormatAuthor(authors[1]) +
			" and " + FormatAuthor(authors[2])
	default:
		return FormatAuthor(authors[0]) + " et al."
	}
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
		return strings.Join(names[:len(names)-1], ", ") + " and " + names[len(names)-1]
	}
}
