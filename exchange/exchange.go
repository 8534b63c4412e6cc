// Package exchange defines the interface for bibliographic exchange format
// plugins (BibTeX, RIS, CSL-JSON).
package exchange

import (
	"io"

	"github.com/aicoder2009/opencitation/citation"
)

// Format defines the interface that all exchange format plugins implement.
type Format interface {
	// Name returns the format identifier (e.g., "bibtex", "ris")
	Name() string

	// Description returns a human-readable format description
	Description() string

	// Extensions returns file extensions associated with this format
	Extensions() []string
}

// Serializer is a format that can write citation records to output.
//
// Serializers are best-effort: fields missing from a record are omitted from
// the output, never reported as errors. The only errors returned are write
// failures.
type Serializer interface {
	Format

	// Serialize writes citation records to the output.
	Serialize(w io.Writer, citations []citation.Fields, opts *Options) error
}

// Options contains options for serialization.
type Options struct {
	// Pretty enables pretty-printing for formats that support it (CSL-JSON)
	Pretty bool
}

// NewOptions creates Options with defaults.
func NewOptions() *Options {
	return &Options{}
}
