// Package skill reads and validates the skill files shipped in a toolkit
// bundle. A skill lives at skills/<name>/SKILL.md and carries required
// YAML frontmatter (name, description) above a markdown body of
// framework guidance.
package skill

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/cockroachdb/errors"

	"github.com/udtoolkit/udt/pkg/frontmatter"
)

// FileName is the canonical skill file name inside each skill directory.
const FileName = "SKILL.md"

// Sentinel errors for skill operations.
var (
	ErrSkillNotFound = errors.New("skill not found")
)

// Skill is one parsed skill file.
type Skill struct {
	// Name identifies the skill; it must match the directory name.
	Name string `json:"name" yaml:"name"`

	// Description tells the assistant when to apply the skill.
	Description string `json:"description" yaml:"description"`

	// AllowedTools optionally restricts which tools the skill may use,
	// in the assistant's space-delimited permission syntax.
	AllowedTools string `json:"allowed-tools,omitempty" yaml:"allowed-tools"`

	// Body is the markdown instruction content below the frontmatter.
	Body string `json:"-" yaml:"-"`

	// Path is where the skill was loaded from, for diagnostics.
	Path string `json:"-" yaml:"-"`
}

// Load parses a single SKILL.md file. Frontmatter is required.
func Load(path string) (*Skill, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "opening skill %s", path)
	}
	defer f.Close()

	var s Skill
	body, err := frontmatter.MustParse(f, &s)
	if err != nil {
		return nil, errors.Wrapf(err, "parsing skill %s", path)
	}
	s.Body = strings.TrimSpace(string(body))
	s.Path = path
	return &s, nil
}

// List returns all skills under dir (the bundle's skills directory),
// sorted by directory iteration order (lexical per os.ReadDir). A
// missing directory yields an empty list, not an error.
func List(dir string) ([]*Skill, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, errors.Wrap(err, "reading skills directory")
	}

	skills := make([]*Skill, 0, len(entries))
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		path := filepath.Join(dir, entry.Name(), FileName)
		if _, err := os.Stat(path); err != nil {
			// Directories without a SKILL.md (assets, scratch space)
			// are skipped, not errors.
			continue
		}
		s, err := Load(path)
		if err != nil {
			return nil, err
		}
		skills = append(skills, s)
	}
	return skills, nil
}

// Find loads the named skill from dir.
func Find(dir, name string) (*Skill, error) {
	path := filepath.Join(dir, name, FileName)
	if _, err := os.Stat(path); err != nil {
		return nil, errors.Wrapf(ErrSkillNotFound, "%s", name)
	}
	return Load(path)
}
