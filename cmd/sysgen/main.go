package main

import (
	"os"

	"github.com/dosanma1/sysgen/internal/cmd"
	"github.com/dosanma1/sysgen/internal/ui"
)

func main() {
	if err := cmd.Execute(); err != nil {
		ui.Error(os.Stderr, "Error: %v", err)
		os.Exit(1)
	}
}
