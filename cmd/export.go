package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/aicoder2009/opencitation/config"
	"github.com/aicoder2009/opencitation/exchange"
)

var pretty bool

var exportCmd = &cobra.Command{
	Use:   "export [format]",
	Short: "Export citations to an exchange format",
	Long: `Export bibliographic records to a reference manager exchange format.

Arguments:
  format    Exchange format (bibtex, ris, csl)

The format defaults to the default_format in ~/.opencitation/config.yaml.
Input defaults to stdin, output defaults to stdout.

Examples:
  # Export to BibTeX
  cat sources.json | opencitation export bibtex

  # Export to RIS for EndNote or Zotero
  opencitation export ris -i sources.json -o library.ris

  # Pretty-printed CSL-JSON
  opencitation export csl -i sources.json --pretty`,
	Args: cobra.MaximumNArgs(1),
	RunE: runExport,
}

func init() {
	exportCmd.Flags().StringVarP(&inputFile, "input", "i", "", "Input file (default: stdin)")
	exportCmd.Flags().StringVarP(&outputFile, "output", "o", "", "Output file (default: stdout)")
	exportCmd.Flags().BoolVar(&pretty, "pretty", false, "Pretty-print output for formats that support it")
}

func runExport(cmd *cobra.Command, args []string) (err error) {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	formatName := cfg.DefaultFormat
	if len(args) > 0 {
		formatName = args[0]
	}
	if formatName == "" {
		return fmt.Errorf("no exchange format given and no default_format configured")
	}

	serializer, err := exchange.GetSerializer(formatName)
	if err != nil {
		return fmt.Errorf("unknown exchange format %q: %w", formatName, err)
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

	opts := exchange.NewOptions()
	opts.Pretty = pretty || cfg.Pretty

	if err := serializer.Serialize(output, records, opts); err != nil {
		return fmt.Errorf("serializing output: %w", err)
	}

	fmt.Fprintf(os.Stderr, "Exported %d citations as %s\n", len(records), serializer.Name())
	return nil
}
