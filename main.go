package main

import (
	"github.com/aicoder2009/opencitation/cmd"

	// Register exchange format plugins
	_ "github.com/aicoder2009/opencitation/exchange/bibtex"
	_ "github.com/aicoder2009/opencitation/exchange/csljson"
	_ "github.com/aicoder2009/opencitation/exchange/ris"
)

func main() {
	cmd.Execute()
}
