package skill

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeSkill(t *testing.T, root, name, content string) {
	t.Helper()
	dir := filepath.Join(root, name)
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, FileName), []byte(content), 0o600))
}

const djangoSkill = `---
name: django
description: Django best practices for models, views and settings
allowed-tools: Read Write Edit
---
# Django

Use fat models, thin views.
`

func TestLoad(t *testing.T) {
	root := t.TempDir()
	writeSkill(t, root, "django", djangoSkill)

	s, err := Load(filepath.Join(root, "django", FileName))
	require.NoError(t, err)
	assert.Equal(t, "django", s.Name)
	assert.Equal(t, "Django best practices for models, views and settings", s.Description)
	assert.Equal(t, "Read Write Edit", s.AllowedTools)
	assert.True(t, strings.HasPrefix(s.Body, "# Django"))
}

func TestLoad_MissingFrontmatter(t *testing.T) {
	root := t.TempDir()
	writeSkill(t, root, "bare", "# no frontmatter\n")

	_, err := Load(filepath.Join(root, "bare", FileName))
	require.Error(t, err)
}

func TestList(t *testing.T) {
	root := t.TempDir()
	writeSkill(t, root, "django", djangoSkill)
	writeSkill(t, root, "nextjs", `---
name: nextjs
description: Next.js app router conventions
---
Body.
`)
	// A directory without SKILL.md is skipped.
	require.NoError(t, os.MkdirAll(filepath.Join(root, "assets"), 0o755))
	// Loose files are ignored.
	require.NoError(t, os.WriteFile(filepath.Join(root, "README.md"), []byte("x"), 0o600))

	skills, err := List(root)
	require.NoError(t, err)
	require.Len(t, skills, 2)
	assert.Equal(t, "django", skills[0].Name)
	assert.Equal(t, "nextjs", skills[1].Name)
}

func TestList_MissingDir(t *testing.T) {
	skills, err := List(filepath.Join(t.TempDir(), "absent"))
	require.NoError(t, err)
	assert.Empty(t, skills)
}

func TestFind(t *testing.T) {
	root := t.TempDir()
	writeSkill(t, root, "django", djangoSkill)

	s, err := Find(root, "django")
	require.NoError(t, err)
	assert.Equal(t, "django", s.Name)

	_, err = Find(root, "rails")
	assert.ErrorIs(t, err, ErrSkillNotFound)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name       string
		skill      Skill
		wantIssues int
		wantSubstr string
	}{
		{
			name: "valid",
			skill: Skill{
				Name:        "aspnet-core",
				Description: "ASP.NET Core guidance",
				Body:        "content",
			},
			wantIssues: 0,
		},
		{
			name:       "empty everything",
			skill:      Skill{},
			wantIssues: 3,
		},
		{
			name: "uppercase name",
			skill: Skill{
				Name:        "Django",
				Description: "d",
				Body:        "b",
			},
			wantIssues: 1,
			wantSubstr: "kebab-case",
		},
		{
			name: "name too long",
			skill: Skill{
				Name:        strings.Repeat("a", MaxNameLength+1),
				Description: "d",
				Body:        "b",
			},
			wantIssues: 1,
			wantSubstr: "exceeds",
		},
		{
			name: "description too long",
			skill: Skill{
				Name:        "ok",
				Description: strings.Repeat("d", MaxDescriptionLength+1),
				Body:        "b",
			},
			wantIssues: 1,
			wantSubstr: "description exceeds",
		},
		{
			name: "directory mismatch",
			skill: Skill{
				Name:        "django",
				Description: "d",
				Body:        "b",
				Path:        filepath.Join("skills", "rails", FileName),
			},
			wantIssues: 1,
			wantSubstr: "does not match directory",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			issues := Validate(&tt.skill)
			assert.Len(t, issues, tt.wantIssues, "issues: %v", issues)
			if tt.wantSubstr != "" {
				require.NotEmpty(t, issues)
				assert.Contains(t, strings.Join(issues, "; "), tt.wantSubstr)
			}
		})
	}
}
