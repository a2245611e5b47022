package commands

import (
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(hookCmd)
}

var hookCmd = &cobra.Command{
	Use:   "hook",
	Short: "Run as an assistant tool-pipeline hook",
	Long: `Hook entry points for assistants that gate tool calls through
external commands. Each hook reads its JSON payload from stdin and
signals the verdict through the exit code.`,
}
