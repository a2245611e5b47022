// Package hook binds the path guard to an assistant's tool-call pipeline.
//
// Assistants that support pre-tool-use hooks deliver a JSON payload on
// stdin describing the tool about to run. For file-modifying tools the
// payload carries the target path under tool_input.file_path. The gate
// extracts that path and asks the guard for a decision; the command layer
// translates the decision into the hook exit convention (0 allow, 2 block
// with the reason on stderr).
package hook

import (
	"encoding/json"
	"io"
	"log/slog"

	"github.com/udtoolkit/udt/internal/guard"
)

// Payload is the subset of the pre-tool-use hook input the gate cares
// about. Unknown fields are ignored.
type Payload struct {
	ToolName  string    `json:"tool_name"`
	ToolInput ToolInput `json:"tool_input"`
}

// ToolInput carries the per-tool arguments. Only file_path matters here.
type ToolInput struct {
	FilePath string `json:"file_path"`
}

// Gate evaluates hook payloads against a guard.
type Gate struct {
	guard  *guard.Guard
	logger *slog.Logger
}

// NewGate creates a Gate over the given guard. A nil logger defaults to
// slog.Default.
func NewGate(g *guard.Guard, logger *slog.Logger) *Gate {
	if logger == nil {
		logger = slog.Default()
	}
	return &Gate{guard: g, logger: logger}
}

// Check decodes a payload from r and evaluates the target path. The gate
// is total over its input: a payload that cannot be decoded, or one with
// no file_path, carries no path to protect and is allowed. Decode
// failures are logged at debug level so a misconfigured hook is
// diagnosable without ever blocking legitimate edits.
func (g *Gate) Check(r io.Reader) guard.Decision {
	var p Payload
	if err := json.NewDecoder(r).Decode(&p); err != nil {
		g.logger.Debug("hook payload decode failed, allowing", "error", err)
		return guard.Allow()
	}

	d := g.guard.Evaluate(p.ToolInput.FilePath)
	if !d.Allowed {
		g.logger.Debug("hook blocked file modification",
			"tool", p.ToolName,
			"path", p.ToolInput.FilePath,
			"pattern", d.Pattern)
	}
	return d
}
