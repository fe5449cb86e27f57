package main

import (
	"os"

	"github.com/wealth-dev/wealth/internal/commands"
)

func main() {
	if err := commands.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
