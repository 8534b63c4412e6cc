// Package csljson provides a format plugin for CSL-JSON citation items.
package csljson

import "github.com/aicoder2009/opencitation/exchange"

// Format implements the CSL-JSON exchange format.
type Format struct{}

// Ensure Format implements the interfaces
var (
	_ exchange.Format     = (*Format)(nil)
	_ exchange.Serializer = (*Format)(nil)
)

// Name returns the format identifier.
func (f *Format) Name() string {
	return "csl"
}

// Description returns a human-readable format description.
func (f *Format) Description() string {
	return "CSL-JSON citation items"
}

// Extensions returns file extensions associated with this format.
func (f *Format) Extensions() []string {
	return []string{"json", "csl"}
}

func init() {
	exchange.Register(&Format{})
}
