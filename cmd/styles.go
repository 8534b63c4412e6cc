package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aicoder2009/opencitation/exchange"
	"github.com/aicoder2009/opencitation/style"
)

var stylesCmd = &cobra.Command{
	Use:   "styles",
	Short: "List citation styles and exchange formats",
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Println("Citation styles:")
		for _, name := range style.List() {
			s, _ := style.Get(name)
			fmt.Printf("  %-10s %s\n", name, s.Description())
		}

		fmt.Println()
		fmt.Println("Exchange formats:")
		for _, name := range exchange.List() {
			f, _ := exchange.Get(name)
			fmt.Printf("  %-10s %s\n", name, f.Description())
		}

		return nil
	},
}
