package main

import (
	"os"

	"github.com/grokipedia/grokipedia-go/cli/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
