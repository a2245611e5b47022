package frontmatter

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type meta struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
}

func TestParse_WithFrontmatter(t *testing.T) {
	doc := `---
name: aspnet-core
description: ASP.NET Core best practices
---
# Skill body

Content here.
`
	var m meta
	body, err := Parse(strings.NewReader(doc), &m)
	require.NoError(t, err)
	assert.Equal(t, "aspnet-core", m.Name)
	assert.Equal(t, "ASP.NET Core best practices", m.Description)
	assert.True(t, strings.HasPrefix(string(body), "# Skill body"))
}

func TestParse_WithoutFrontmatter(t *testing.T) {
	doc := "# Just markdown\n"
	var m meta
	body, err := Parse(strings.NewReader(doc), &m)
	require.NoError(t, err)
	assert.Equal(t, doc, string(body))
	assert.Empty(t, m.Name)
}

func TestParse_CRLF(t *testing.T) {
	doc := "---\r\nname: win\r\n---\r\nbody\r\n"
	var m meta
	body, err := Parse(strings.NewReader(doc), &m)
	require.NoError(t, err)
	assert.Equal(t, "win", m.Name)
	assert.Contains(t, string(body), "body")
}

func TestParse_UnclosedReturnsWholeDoc(t *testing.T) {
	doc := "---\nname: broken\nno closing delimiter\n"
	var m meta
	body, err := Parse(strings.NewReader(doc), &m)
	require.NoError(t, err)
	assert.Equal(t, doc, string(body))
}

func TestMustParse_Missing(t *testing.T) {
	var m meta
	_, err := MustParse(strings.NewReader("no block here"), &m)
	assert.ErrorIs(t, err, ErrMissingFrontmatter)
}

func TestMustParse_Unclosed(t *testing.T) {
	var m meta
	_, err := MustParse(strings.NewReader("---\nname: x\n"), &m)
	assert.ErrorIs(t, err, ErrUnclosedFrontmatter)
}

func TestMustParse_InvalidYAML(t *testing.T) {
	var m meta
	_, err := MustParse(strings.NewReader("---\nname: [\n---\nbody"), &m)
	assert.Error(t, err)
}

func TestParse_DelimiterAtEOF(t *testing.T) {
	var m meta
	body, err := Parse(strings.NewReader("---\nname: tail\n---"), &m)
	require.NoError(t, err)
	assert.Equal(t, "tail", m.Name)
	assert.Empty(t, string(body))
}
