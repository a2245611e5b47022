package commands

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/udtoolkit/udt/internal/errors"
)

// resetFlags restores the persistent flag state after a test mutates it.
func resetFlags(t *testing.T) {
	t.Helper()
	origDir, origRules := dirFlag, rulesFlag
	origJSON := guardCheckJSON
	t.Cleanup(func() {
		dirFlag, rulesFlag = origDir, origRules
		guardCheckJSON = origJSON
	})
	dirFlag, rulesFlag = "", ""
	loadedConfig = nil
}

func TestRunGuardCheck_Allowed(t *testing.T) {
	resetFlags(t)

	var buf bytes.Buffer
	err := runGuardCheckWithWriter(&buf, []string{"src/components/UserProfile.tsx"})
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "allow  src/components/UserProfile.tsx")
}

func TestRunGuardCheck_Blocked(t *testing.T) {
	resetFlags(t)

	var buf bytes.Buffer
	err := runGuardCheckWithWriter(&buf, []string{"backend/.env"})
	require.Error(t, err)
	assert.Equal(t, errors.ExitBlocked, errors.ExitCode(err))
	assert.Contains(t, buf.String(), "block  backend/.env")
	assert.Contains(t, buf.String(), "Matches protected pattern '.env'")
}

func TestRunGuardCheck_MixedPaths(t *testing.T) {
	resetFlags(t)

	var buf bytes.Buffer
	err := runGuardCheckWithWriter(&buf, []string{
		".github/workflows/ci.yml",
		".git/config",
	})
	require.Error(t, err, "one blocked path makes the whole check blocked")
	assert.Equal(t, errors.ExitBlocked, errors.ExitCode(err))

	out := buf.String()
	assert.Contains(t, out, "allow  .github/workflows/ci.yml")
	assert.Contains(t, out, "block  .git/config")
}

func TestRunGuardCheck_JSON(t *testing.T) {
	resetFlags(t)
	guardCheckJSON = true

	var buf bytes.Buffer
	err := runGuardCheckWithWriter(&buf, []string{"yarn.lock"})
	require.Error(t, err)

	var results []checkResult
	require.NoError(t, json.Unmarshal(buf.Bytes(), &results))
	require.Len(t, results, 1)
	assert.Equal(t, "yarn.lock", results[0].Path)
	assert.False(t, results[0].Decision.Allowed)
	assert.Equal(t, "yarn.lock", results[0].Decision.Pattern)
}

func TestRunGuardCheck_CustomRulesFile(t *testing.T) {
	resetFlags(t)
	rulesFlag = writeTestRules(t, `
rules:
  - pattern: .tfstate
    kind: extension
`)

	var buf bytes.Buffer
	err := runGuardCheckWithWriter(&buf, []string{"infra/prod.tfstate"})
	require.Error(t, err)
	assert.Equal(t, errors.ExitBlocked, errors.ExitCode(err))

	// The default table is replaced, not extended.
	buf.Reset()
	require.NoError(t, runGuardCheckWithWriter(&buf, []string{"backend/.env"}))
}

func TestRunGuardCheck_BadRulesFile(t *testing.T) {
	resetFlags(t)
	rulesFlag = writeTestRules(t, `
rules:
  - pattern: x
    kind: nonsense
`)

	var buf bytes.Buffer
	err := runGuardCheckWithWriter(&buf, []string{"anything"})
	require.Error(t, err)
	assert.Equal(t, errors.ExitUser, errors.ExitCode(err))
}
