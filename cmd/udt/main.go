// Package main is the entry point for the udt CLI.
package main

import (
	"fmt"
	"os"

	"github.com/udtoolkit/udt/cmd/udt/commands"
	"github.com/udtoolkit/udt/internal/errors"
)

func main() {
	err := commands.Execute()
	if err == nil {
		return
	}

	// Guard blocks print their reason at the command layer; only carry
	// the exit code forward for those.
	var ee *errors.ExitError
	if !(errors.As(err, &ee) && ee.Err == nil) {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		if ee != nil && ee.Suggestion != "" {
			fmt.Fprintf(os.Stderr, "Hint: %s\n", ee.Suggestion)
		}
	}
	os.Exit(errors.ExitCode(err))
}
