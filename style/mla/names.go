package mla

import "github.com/aicoder2009/opencitation/citation"

// FormatAuthor renders one author. MLA inverts only the first author in a
// list: "Last, First Middle, Suffix" when first, "First Middle Last Suffix"
// otherwise. Organization authors render verbatim.
func FormatAuthor(a citation.Author, isFirst bool) string {
	if a.IsOrganization {
		return a.LastName
	}
	if isFirst {
		return a.InvertedName()
	}
	return a.DirectName()
}

// JoinAuthors renders an author list per MLA rules: a pair is joined with
// ", and " (second author not inverted), and three or more authors collapse
// to the first author plus "et al."
func JoinAuthors(authors []citation.Author) string {
	switch len(authors) {
	case 0:
		return ""
	case 1:
		return FormatAuthor(authors[0], true)
	case 2:
		return FormatAuthor(authors[0], true) + ", and " + FormatAuthor(authors[1], false)
	default:
		return FormatAuthor(authors[0], true) + ", et al."
	}
}

// directNames renders contributors in natural order for in-entry credits
// such as "Directed by Jane Doe and John Smith".
func directNames(people []citation.Author) string {
	switch len(people) {
	case 0:
		return ""
	case 1:
		return people[0].DirectName()
	case 2:
		return people[0].DirectName() + " and " + people[1].DirectName()
	default:
		return people[0].DirectName() + " et al."
	}
}
