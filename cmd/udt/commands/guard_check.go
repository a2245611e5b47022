package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/udtoolkit/udt/internal/errors"
	"github.com/udtoolkit/udt/internal/guard"
)

var guardCheckJSON bool

func init() {
	guardCheckCmd.Flags().BoolVar(&guardCheckJSON, "json", false, "Output in JSON format")
	guardCmd.AddCommand(guardCheckCmd)
}

var guardCheckCmd = &cobra.Command{
	Use:   "check <path>...",
	Short: "Check whether paths are protected",
	Long: `Evaluate one or more paths against the active protection rules.

Prints a verdict per path. The exit code is 0 when every path is
allowed and 2 when at least one path is blocked, matching the hook
convention.

Examples:
  # Single path
  udt guard check backend/.env

  # Several paths, machine-readable
  udt guard check --json .git/config .github/workflows/ci.yml`,
	Args: cobra.MinimumNArgs(1),
	RunE: runGuardCheck,
}

// checkResult pairs a path with its decision for output.
type checkResult struct {
	Path     string         `json:"path"`
	Decision guard.Decision `json:"decision"`
}

func runGuardCheck(_ *cobra.Command, args []string) error {
	return runGuardCheckWithWriter(os.Stdout, args)
}

// runGuardCheckWithWriter allows injecting a writer for testing.
func runGuardCheckWithWriter(w io.Writer, args []string) error {
	g, err := resolveGuard()
	if err != nil {
		return err
	}

	results := make([]checkResult, len(args))
	blocked := false
	for i, path := range args {
		d := g.Evaluate(path)
		results[i] = checkResult{Path: path, Decision: d}
		if !d.Allowed {
			blocked = true
		}
	}

	if guardCheckJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(results); err != nil {
			return err
		}
	} else {
		for _, r := range results {
			if r.Decision.Allowed {
				fmt.Fprintf(w, "allow  %s\n", r.Path)
			} else {
				fmt.Fprintf(w, "block  %s  (%s)\n", r.Path, r.Decision.Reason)
			}
		}
	}

	if blocked {
		return errors.WithCode(nil, errors.ExitBlocked)
	}
	return nil
}
