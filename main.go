package main

import (
	"os"

	"github.com/fretwise/fretwise/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
