package main

import (
	"os"

	"github.com/rata-lang/rata/cmd/rata/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
