package commands

import (
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(commandCmd)
}

var commandCmd = &cobra.Command{
	Use:   "command",
	Short: "Inventory the bundle's slash commands",
	Long: `List and show the markdown slash-command files in the toolkit
bundle's commands/ directory.`,
}
