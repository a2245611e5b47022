package commands

import (
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(skillCmd)
}

var skillCmd = &cobra.Command{
	Use:   "skill",
	Short: "Inventory the bundle's skills",
	Long: `List, show and validate the markdown skill files in the toolkit
bundle's skills/ directory.`,
}
