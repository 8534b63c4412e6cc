// Package bibtex provides a format plugin for BibTeX bibliography entries.
package bibtex

import "github.com/aicoder2009/opencitation/exchange"

// Format implements the BibTeX exchange format.
type Format struct{}

// Ensure Format implements the interfaces
var (
	_ exchange.Format     = (*Format)(nil)
	_ exchange.Serializer = (*Format)(nil)
)

// Name returns the format identifier.
func (f *Format) Name() string {
	return "bibtex"
}

// Description returns a human-readable format description.
func (f *Format) Description() string {
	return "BibTeX bibliography format"
}

// Extensions returns file extensions associated with this format.
func (f *Format) Extensions() []string {
	return []string{"bib", "bibtex"}
}

func init() {
	exchange.Register(&Format{})
}
