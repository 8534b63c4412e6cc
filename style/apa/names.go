package apa

import (
	"strings"

	"github.com/aicoder2009/opencitation/citation"
	"github.com/aicoder2009/opencitation/render"
)

// maxListedAuthors is where APA truncates an author list: works with more
// authors list the first nineteen, an ellipsis, and the final author.
const maxListedAuthors = 20

// FormatAuthor renders one author as "Last, F. M., Suffix", with given names
// reduced to spaced initials. Organization authors render verbatim.
func FormatAuthor(a citation.Author) string {
	if a.IsOrganization {
		return a.LastName
	}

	name := a.LastName
	if initials := render.Initials(a.GivenNames(), " "); initials != "" {
		name += ", " + initials
	}
	if a.Suffix != "" {
		name += ", " + a.Suffix
	}
	return name
}

// JoinAuthors renders an author list per APA rules: two authors joined with
// an ampersand, three through twenty comma-separated with an ampersand
// before the last, and longer lists truncated to the first nineteen, an
// ellipsis, and the final author (no ampersand).
func JoinAuthors(authors []citation.Author) string {
	switch len(authors) {
	case 0:
		return ""
	case 1:
		return FormatAuthor(authors[0])
	case 2:
		return FormatAuthor(authors[0]) + " & " + FormatAuthor(authors[1])
	}

	names := make([]string, len(authors))
	for i, a := range authors {
		names[i] = FormatAuthor(a)
	}

	if len(names) <= maxListedAuthors {
		return strings.Join(names[:len(names)-1], ", ") + ", & " + names[len(names)-1]
	}
	return strings.Join(names[:maxListedAuthors-1], ", ") + ", ... " + names[len(names)-1]
}

// joinEditors renders an editor list with its "(Ed.)" or "(Eds.)" label.
func joinEditors(editors []citation.Author) string {
	if len(editors) == 0 {
		return ""
	}
	label := " (Ed.)"
	if len(editors) > 1 {
		label = " (Eds.)"
	}
	return JoinAuthors(editors) + label
}

// roleCredit renders a contributor list with a role label, e.g.
// "Nolan, C. (Director)". The label pluralizes for multiple contributors.
func roleCredit(people []citation.Author, role string) string {
	if len(people) == 0 {
		return ""
	}
	label := " (" + role + ")"
	if len(people) > 1 {
		label = " (" + role + "s)"
	}
	return JoinAuthors(people) + label
}
