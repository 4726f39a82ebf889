package main

import (
	"errors"
	"os"

	"github.com/moasq/devinci/internal/commands"
	"github.com/moasq/devinci/internal/terminal"
)

func main() {
	if err := commands.Execute(); err != nil {
		if errors.Is(err, commands.ErrCancelled) {
			os.Exit(130)
		}
		terminal.Error(err.Error())
		os.Exit(1)
	}
}
