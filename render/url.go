package render

import "strings"

// URL normalizes a URL for display by stripping exactly one trailing slash.
func URL(u string) string {
	return strings.TrimSuffix(u, "/")
}

// DOI normalizes a DOI to its https://doi.org resolver form. Values already
// carrying an http(s) prefix pass through unchanged, so the function is
// idempotent; a leading "doi:" label is stripped case-insensitively.
func DOI(doi string) string {
	if doi == "" {
		return ""
	}
	if strings.HasPrefix(doi, "http") {
		return doi
	}
	if len(doi) >= 4 && strings.EqualFold(doi[:4], "doi:") {
		doi = doi[4:]
	}
	return "https://doi.org/" + doi
}
