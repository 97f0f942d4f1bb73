package main

import (
	"context"
	"fmt"
	"os"

	"github.com/rocketscienceinc/tictactoe-cli/internal/cli"
)

// main - is the entry point of the application. Configuration, logging and the game are set up by the cli package.
func main() {
	defer func() {
		if err := recover(); err != nil {
			fmt.Fprintf(os.Stderr, "recovered from panic: %v\n", err)
			os.Exit(1)
		}
	}()

	if err := cli.Execute(context.Background()); err != nil {
		os.Exit(1)
	}
}
