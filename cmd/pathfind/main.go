// pathfind is a CLI for running shortest-path searches on grid maps.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/Faultbox/gridpath/internal/logger"
)

// Exit codes.
const (
	exitOK       = 0
	exitError    = 1
	exitNotFound = 2
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	root := newRootCmd(stdout, stderr)
	root.SetArgs(args)

	err := root.Execute()
	logger.Sync()

	switch {
	case err == nil:
		return exitOK
	case errors.Is(err, errNoPath):
		return exitNotFound
	default:
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitError
	}
}
