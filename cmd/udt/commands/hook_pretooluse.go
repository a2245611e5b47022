package commands

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/udtoolkit/udt/internal/errors"
	"github.com/udtoolkit/udt/internal/hook"
)

func init() {
	hookCmd.AddCommand(hookPreToolUseCmd)
}

var hookPreToolUseCmd = &cobra.Command{
	Use:   "pre-tool-use",
	Short: "Gate a file modification before the tool runs",
	Long: `Read a pre-tool-use payload from stdin and evaluate the target
file path against the protection rules.

Exit code 0 permits the operation. Exit code 2 denies it, with the
reason written to stderr for the host to surface to the agent. A
payload without a file path (or one that cannot be decoded) always
permits: the guard only classifies, it never fails.

Wire it into the assistant's settings as the PreToolUse hook for
file-modifying tools (Write, Edit, MultiEdit).`,
	Args: cobra.NoArgs,
	RunE: runHookPreToolUse,
}

func runHookPreToolUse(cmd *cobra.Command, _ []string) error {
	return runHookPreToolUseWith(cmd.InOrStdin(), os.Stderr)
}

// runHookPreToolUseWith allows injecting streams for testing.
func runHookPreToolUseWith(in io.Reader, diag io.Writer) error {
	g, err := resolveGuard()
	if err != nil {
		return err
	}

	d := hook.NewGate(g, slog.Default()).Check(in)
	if d.Allowed {
		return nil
	}

	fmt.Fprintln(diag, d.Reason)
	// The reason is already on the diagnostic stream; carry only the code.
	return errors.WithCode(nil, errors.ExitBlocked)
}
