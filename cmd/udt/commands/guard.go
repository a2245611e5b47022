package commands

import (
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(guardCmd)
}

var guardCmd = &cobra.Command{
	Use:   "guard",
	Short: "Evaluate paths against the protected-file policy",
	Long: `Work with the path guard: check candidate paths against the
protection rules or inspect the active rule table.

The guard blocks modifications to secrets, lockfiles, VCS internals and
key material. Matching is ordered and first-match-wins; the .git rule is
segment-anchored so .github directories are never blocked.`,
}
