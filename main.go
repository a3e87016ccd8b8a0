package main

import (
	"os"

	"github.com/priyam/synapseed/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
