package paths

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBundleDir_Explicit(t *testing.T) {
	dir := t.TempDir()
	got, err := BundleDir(dir)
	require.NoError(t, err)
	assert.Equal(t, dir, got)
}

func TestBundleDir_DefaultsToCwd(t *testing.T) {
	wd, err := os.Getwd()
	require.NoError(t, err)

	got, err := BundleDir("")
	require.NoError(t, err)
	assert.Equal(t, wd, got)
}

func TestValidateBundle(t *testing.T) {
	dir := t.TempDir()
	assert.ErrorIs(t, ValidateBundle(dir), ErrBundleNotFound)

	require.NoError(t, os.Mkdir(filepath.Join(dir, SkillsDirName), 0o755))
	assert.NoError(t, ValidateBundle(dir))
}

func TestSubdirHelpers(t *testing.T) {
	assert.Equal(t, filepath.Join("b", "skills"), SkillsDir("b"))
	assert.Equal(t, filepath.Join("b", "commands"), CommandsDir("b"))
}
