// Package engine is the citation formatting facade: style dispatch, batch
// formatting, and in-text citation generation over the registered styles.
package engine

import (
	"github.com/aicoder2009/opencitation/citation"
	"github.com/aicoder2009/opencitation/style"

	// Register the built-in citation styles
	_ "github.com/aicoder2009/opencitation/style/apa"
	_ "github.com/aicoder2009/opencitation/style/chicago"
	_ "github.com/aicoder2009/opencitation/style/harvard"
	_ "github.com/aicoder2009/opencitation/style/mla"
)

// formatter resolves a style name, falling back silently to APA for
// unrecognized names. The engine never fails on a bad style selector.
func formatter(name string) style.Formatter {
	if f, ok := style.Get(name); ok {
		return f
	}
	f, _ := style.Get(style.Default)
	return f
}

// Format renders the full reference entry for a citation in the named style.
// An unrecognized style falls back to APA.
func Format(f citation.Fields, styleName string) citation.Formatted {
	return formatter(styleName).Format(f)
}

// FormatAll renders a batch of citations in order. There is no partial
// failure: every formatter degrades to empty or partial output rather than
// erroring.
func FormatAll(citations []citation.Fields, styleName string) []citation.Formatted {
	s := formatter(styleName)
	out := make([]citation.Formatted, len(citations))
	for i, f := range citations {
		out[i] = s.Format(f)
	}
	return out
}

// InText renders the short parenthetical citation for embedding in prose.
func InText(f citation.Fields, styleName string) string {
	return formatter(styleName).InText(f)
}
