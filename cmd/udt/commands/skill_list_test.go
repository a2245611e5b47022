package commands

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestBundle builds a minimal bundle with one skill and one command.
func newTestBundle(t *testing.T) string {
	t.Helper()
	root := t.TempDir()

	skillDir := filepath.Join(root, "skills", "django")
	require.NoError(t, os.MkdirAll(skillDir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(skillDir, "SKILL.md"), []byte(`---
name: django
description: Django best practices
---
Use fat models.
`), 0o600))

	cmdDir := filepath.Join(root, "commands")
	require.NoError(t, os.MkdirAll(cmdDir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(cmdDir, "review-pr.md"), []byte(`---
description: Review the current pull request
---
Review the diff.
`), 0o600))

	return root
}

func TestRunSkillList(t *testing.T) {
	resetFlags(t)
	dirFlag = newTestBundle(t)

	var buf bytes.Buffer
	require.NoError(t, runSkillListWithWriter(&buf))

	out := buf.String()
	assert.Contains(t, out, "django")
	assert.Contains(t, out, "Django best practices")
}

func TestRunSkillList_EmptyBundle(t *testing.T) {
	resetFlags(t)
	dirFlag = t.TempDir()

	var buf bytes.Buffer
	require.NoError(t, runSkillListWithWriter(&buf))
	assert.Contains(t, buf.String(), "No skills found.")
}

func TestRunSkillList_JSON(t *testing.T) {
	resetFlags(t)
	dirFlag = newTestBundle(t)
	orig := skillListJSON
	t.Cleanup(func() { skillListJSON = orig })
	skillListJSON = true

	var buf bytes.Buffer
	require.NoError(t, runSkillListWithWriter(&buf))
	assert.Contains(t, buf.String(), `"name": "django"`)
}
