package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/udtoolkit/udt/internal/paths"
	"github.com/udtoolkit/udt/internal/skill"
)

var skillListJSON bool

func init() {
	skillListCmd.Flags().BoolVar(&skillListJSON, "json", false, "Output in JSON format")
	skillCmd.AddCommand(skillListCmd)
}

var skillListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the bundle's skills",
	Long: `List all skills in the bundle's skills/ directory.

Examples:
  # List skills in the current bundle
  udt skill list

  # Machine-readable
  udt skill list --json`,
	RunE: runSkillList,
}

func runSkillList(_ *cobra.Command, _ []string) error {
	return runSkillListWithWriter(os.Stdout)
}

// runSkillListWithWriter allows injecting a writer for testing.
func runSkillListWithWriter(w io.Writer) error {
	dir, err := resolveBundleDir()
	if err != nil {
		return err
	}

	skills, err := skill.List(paths.SkillsDir(dir))
	if err != nil {
		return err
	}

	if skillListJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(skills)
	}

	if len(skills) == 0 {
		fmt.Fprintln(w, "No skills found.")
		return nil
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "NAME\tDESCRIPTION")
	for _, s := range skills {
		fmt.Fprintf(tw, "%s\t%s\n", s.Name, s.Description)
	}
	return tw.Flush()
}
