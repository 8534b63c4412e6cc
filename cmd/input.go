package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/aicoder2009/opencitation/citation"
)

var (
	inputFile  string
	outputFile string
)

// readCitations loads citation records from the input file or stdin.
// YAML input is detected by file extension; everything else is parsed as
// JSON first with a YAML fallback for piped input.
func readCitations() ([]citation.Fields, error) {
	var data []byte
	var err error

	if inputFile != "" {
		data, err = os.ReadFile(inputFile)
		if err != nil {
			return nil, fmt.Errorf("reading input file: %w", err)
		}
	} else {
		data, err = io.ReadAll(os.Stdin)
		if err != nil {
			return nil, fmt.Errorf("reading stdin: %w", err)
		}
	}

	switch strings.ToLower(filepath.Ext(inputFile)) {
	case ".yaml", ".yml":
		slog.Debug("parsing input as YAML", "file", inputFile, "bytes", len(data))
		return citation.DecodeYAMLList(data)
	}

	records, err := citation.DecodeList(data)
	if err != nil {
		if recs, yerr := citation.DecodeYAMLList(data); yerr == nil {
			slog.Debug("JSON parse failed, fell back to YAML", "records", len(recs), "jsonError", err)
			return recs, nil
		}
		return nil, fmt.Errorf("parsing input: %w", err)
	}
	slog.Debug("parsed input", "records", len(records), "bytes", len(data))
	return records, nil
}

// openOutput returns the output destination and a close function. The close
// function is a no-op for stdout.
func openOutput() (io.Writer, func() error, error) {
	if outputFile == "" {
		return os.Stdout, func() error { return nil }, nil
	}
	f, err := os.Create(outputFile)
	if err != nil {
		return nil, nil, fmt.Errorf("creating output file: %w", err)
	}
	return f, f.Close, nil
}
