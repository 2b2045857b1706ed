package main

import (
	"fmt"
	"os"

	"github.com/agentic-research/ringscan/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "ringscan: %v\n", err)
		os.Exit(1)
	}
}
