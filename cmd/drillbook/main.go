package main

import (
	"os"

	"github.com/drillbook-dev/drillbook/internal/commands"
)

func main() {
	if err := commands.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
