package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/udtoolkit/udt/internal/command"
	"github.com/udtoolkit/udt/internal/paths"
)

var commandListJSON bool

func init() {
	commandListCmd.Flags().BoolVar(&commandListJSON, "json", false, "Output in JSON format")
	commandCmd.AddCommand(commandListCmd)
}

var commandListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the bundle's slash commands",
	RunE:  runCommandList,
}

func runCommandList(_ *cobra.Command, _ []string) error {
	return runCommandListWithWriter(os.Stdout)
}

// runCommandListWithWriter allows injecting a writer for testing.
func runCommandListWithWriter(w io.Writer) error {
	dir, err := resolveBundleDir()
	if err != nil {
		return err
	}

	cmds, err := command.List(paths.CommandsDir(dir))
	if err != nil {
		return err
	}

	if commandListJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(cmds)
	}

	if len(cmds) == 0 {
		fmt.Fprintln(w, "No commands found.")
		return nil
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "NAME\tDESCRIPTION")
	for _, c := range cmds {
		fmt.Fprintf(tw, "/%s\t%s\n", c.Name, c.Description)
	}
	return tw.Flush()
}
