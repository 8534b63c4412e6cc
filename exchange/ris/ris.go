// Package ris provides a format plugin for RIS bibliographic records.
package ris

import "github.com/aicoder2009/opencitation/exchange"

// Format implements the RIS exchange format.
type Format struct{}

// Ensure Format implements the interfaces
var (
	_ exchange.Format     = (*Format)(nil)
	_ exchange.Serializer = (*Format)(nil)
)

// Name returns the format identifier.
func (f *Format) Name() string {
	return "ris"
}

// Description returns a human-readable format description.
func (f *Format) Description() string {
	return "RIS reference manager format"
}

// Extensions returns file extensions associated with this format.
func (f *Format) Extensions() []string {
	return []string{"ris"}
}

func init() {
	exchange.Register(&Format{})
}
