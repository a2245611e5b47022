package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/udtoolkit/udt/internal/command"
	"github.com/udtoolkit/udt/internal/errors"
	"github.com/udtoolkit/udt/internal/paths"
)

func init() {
	commandCmd.AddCommand(commandShowCmd)
}

var commandShowCmd = &cobra.Command{
	Use:   "show <name>",
	Short: "Show a slash command's prompt",
	Args:  cobra.ExactArgs(1),
	RunE:  runCommandShow,
}

func runCommandShow(_ *cobra.Command, args []string) error {
	return runCommandShowWithWriter(os.Stdout, args[0])
}

// runCommandShowWithWriter allows injecting a writer for testing.
func runCommandShowWithWriter(w io.Writer, name string) error {
	dir, err := resolveBundleDir()
	if err != nil {
		return err
	}

	c, err := command.Find(paths.CommandsDir(dir), name)
	if err != nil {
		return errors.UserError(err, "run 'udt command list' to see available commands")
	}

	fmt.Fprintf(w, "Name: /%s\n", c.Name)
	if c.Description != "" {
		fmt.Fprintf(w, "Description: %s\n", c.Description)
	}
	if c.AllowedTools != "" {
		fmt.Fprintf(w, "Allowed tools: %s\n", c.AllowedTools)
	}
	fmt.Fprintf(w, "\n%s\n", c.Body)
	return nil
}
