package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var guardRulesJSON bool

func init() {
	guardRulesCmd.Flags().BoolVar(&guardRulesJSON, "json", false, "Output in JSON format")
	guardCmd.AddCommand(guardRulesCmd)
}

var guardRulesCmd = &cobra.Command{
	Use:   "rules",
	Short: "Show the active protection rules",
	Long: `Print the active rule table in evaluation order.

Shows the built-in policy unless a rules file is configured via --rules
or guard.rules_file.`,
	RunE: runGuardRules,
}

func runGuardRules(_ *cobra.Command, _ []string) error {
	return runGuardRulesWithWriter(os.Stdout)
}

// runGuardRulesWithWriter allows injecting a writer for testing.
func runGuardRulesWithWriter(w io.Writer) error {
	g, err := resolveGuard()
	if err != nil {
		return err
	}
	rules := g.Rules()

	if guardRulesJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(rules)
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "PATTERN\tKIND\tRATIONALE")
	for _, r := range rules {
		fmt.Fprintf(tw, "%s\t%s\t%s\n", r.Pattern, r.Kind, r.Rationale)
	}
	return tw.Flush()
}
