// Package cmd provides CLI commands for opencitation.
package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

func setupLogger() {
	// .env is optional; environment variables win when both are set
	_ = godotenv.Load()

	logLevel := strings.ToUpper(os.Getenv("LOG_LEVEL"))
	if logLevel == "" {
		logLevel = "INFO"
	}

	var level slog.Level
	switch logLevel {
	case "DEBUG":
		level = slog.LevelDebug
	case "INFO":
		level = slog.LevelInfo
	case "WARN", "WARNING":
		level = slog.LevelWarn
	case "ERROR":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{
		Level: level,
	}

	handler := slog.NewTextHandler(os.Stderr, opts)
	logger := slog.New(handler)

	slog.SetDefault(logger)
}

var rootCmd = &cobra.Command{
	Use:   "opencitation",
	Short: "Generate citations in academic styles",
	Long: `Opencitation is a CLI tool for generating citations from bibliographic records.

It formats books, journal articles, websites, and other source types as
reference entries in APA 7, MLA 9, Chicago 17, and Harvard style, and exports
records to exchange formats like BibTeX, RIS, and CSL-JSON.

Examples:
  opencitation format apa -i sources.json
  opencitation format mla -i sources.yaml --html -o works-cited.html
  cat sources.json | opencitation intext chicago
  opencitation export bibtex -i sources.json -o library.bib`,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	setupLogger()
	rootCmd.AddCommand(formatCmd)
	rootCmd.AddCommand(intextCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(stylesCmd)
}
