package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/aicoder2009/opencitation/engine"
)

var intextCmd = &cobra.Command{
	Use:   "intext [style]",
	Short: "Generate in-text citations",
	Long: `Generate the short parenthetical citation for each record, one per line.

Examples:
  # In-text citations for prose, e.g. (Smith & Jones, 2020)
  cat sources.json | opencitation intext apa

  # Chicago author-date form, e.g. (Smith 2020)
  opencitation intext chicago -i sources.json`,
	Args: cobra.MaximumNArgs(1),
	RunE: runInText,
}

func init() {
	intextCmd.Flags().StringVarP(&inputFile, "input", "i", "", "Input file (default: stdin)")
	intextCmd.Flags().StringVarP(&outputFile, "output", "o", "", "Output file (default: stdout)")
}

func runInText(cmd *cobra.Command, args []string) (err error) {
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

	for _, record := range records {
		if _, err := fmt.Fprintln(output, engine.InText(record, styleName)); err != nil {
			return fmt.Errorf("writing output: %w", err)
		}
	}

	fmt.Fprintf(os.Stderr, "Generated %d in-text citations\n", len(records))
	return nil
}
