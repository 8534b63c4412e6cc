// Package style defines the interface for citation style plugins.
package style

import "github.com/aicoder2009/opencitation/citation"

// Default is the style used when a requested style is not recognized.
const Default = "apa"

// Formatter defines the interface that all citation style plugins implement.
//
// Format and InText are pure functions with a no-throw contract: missing
// fields degrade to omitted elements, a date without a year renders the
// style's no-date sentinel, and an unrecognized source type yields an empty
// result. They never panic and never return errors.
type Formatter interface {
	// Name returns the style identifier (e.g., "apa", "mla")
	Name() string

	// Description returns a human-readable style description
	Description() string

	// Format renders the full reference entry for the citation.
	Format(f citation.Fields) citation.Formatted

	// InText renders the short parenthetical citation for embedding in
	// prose, e.g. "(Smith, 2020)".
	InText(f citation.Fields) string
}
