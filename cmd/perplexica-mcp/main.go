package main

import (
	"fmt"
	"os"

	"github.com/custodia-labs/perplexica-mcp/internal/adapters/driving/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		// The only process-terminating failure path: transport or CLI
		// initialisation. Tool-call failures never reach here.
		fmt.Fprintf(os.Stderr, "perplexica-mcp: %v\n", err)
		os.Exit(1)
	}
}
