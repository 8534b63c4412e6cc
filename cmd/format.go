package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/aicoder2009/opencitation/config"
	"github.com/aicoder2009/opencitation/engine"
	"github.com/aicoder2009/opencitation/style"
)

var htmlOutput bool

var formatCmd = &cobra.Command{
	Use:   "format [style]",
	Short: "Format citations as reference entries",
	Long: `Format bibliographic records as full reference entries in a citation style.

Arguments:
  style    Citation style (apa, mla, chicago, harvard)

The style defaults to the default_style in ~/.opencitation/config.yaml, or
APA. An unrecognized style name also falls back to APA. Input defaults to
stdin, output defaults to stdout.

Examples:
  # Format JSON records as APA references (stdin to stdout)
  cat sources.json | opencitation format apa

  # Explicit input file, YAML records
  opencitation format mla --input sources.yaml

  # HTML output to a file
  opencitation format chicago -i sources.json -o references.html --html`,
	Args: cobra.MaximumNArgs(1),
	RunE: runFormat,
}

func init() {
	formatCmd.Flags().StringVarP(&inputFile, "input", "i", "", "Input file (default: stdin)")
	formatCmd.Flags().StringVarP(&outputFile, "output", "o", "", "Output file (default: stdout)")
	formatCmd.Flags().BoolVar(&htmlOutput, "html", false, "Emit HTML entries instead of plain text")
}

func runFormat(cmd *cobra.Command, args []string) (err error) {
	styleName, err := resolveStyle(args)
	if err != nil {
		return err
	}

	records, err := readCitations()
	if err != nil {
		return err
	}

	output, closeOutput, err := openOutput()
	if err != nil {
		return err
	}
	defer func() {
		if cerr := closeOutput(); cerr != nil && err == nil {
			err = fmt.Errorf("closing output file: %w", cerr)
		}
	}()

	entries := engine.FormatAll(records, styleName)
	for _, entry := range entries {
		line := entry.Text
		if htmlOutput {
			line = entry.HTML
		}
		if _, err := fmt.Fprintln(output, line); err != nil {
			return fmt.Errorf("writing output: %w", err)
		}
	}

	fmt.Fprintf(os.Stderr, "Formatted %d citations\n", len(entries))
	return nil
}

// resolveStyle picks the style from the argument, the user config, or the
// built-in default, in that order.
func resolveStyle(args []string) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}

	cfg, err := config.Load()
	if err != nil {
		return "", err
	}
	if cfg.DefaultStyle != "" {
		return cfg.DefaultStyle, nil
	}
	return style.Default, nil
}
