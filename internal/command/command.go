// Package command reads the slash-command files shipped in a toolkit
// bundle. A command lives at commands/<name>.md; YAML frontmatter
// (description, allowed-tools) is optional, and the body is the prompt
// the assistant expands when the command is invoked.
package command

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/cockroachdb/errors"

	"github.com/udtoolkit/udt/pkg/frontmatter"
)

// ErrCommandNotFound indicates the named command file does not exist.
var ErrCommandNotFound = errors.New("command not found")

// Command is one parsed slash-command file.
type Command struct {
	// Name is the command's invocation name, derived from the file name.
	Name string `json:"name" yaml:"-"`

	// Description summarizes the command for listings.
	Description string `json:"description,omitempty" yaml:"description"`

	// AllowedTools optionally restricts the tools available while the
	// command runs.
	AllowedTools string `json:"allowed-tools,omitempty" yaml:"allowed-tools"`

	// Body is the prompt template below the frontmatter.
	Body string `json:"-" yaml:"-"`

	// Path is where the command was loaded from, for diagnostics.
	Path string `json:"-" yaml:"-"`
}

// Load parses a single command file. Frontmatter is optional: a bare
// markdown file is a valid command with an empty description.
func Load(path string) (*Command, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "opening command %s", path)
	}
	defer f.Close()

	var c Command
	body, err := frontmatter.Parse(f, &c)
	if err != nil {
		return nil, errors.Wrapf(err, "parsing command %s", path)
	}
	c.Name = strings.TrimSuffix(filepath.Base(path), ".md")
	c.Body = strings.TrimSpace(string(body))
	c.Path = path
	return &c, nil
}

// List returns all commands under dir (the bundle's commands directory).
// A missing directory yields an empty list, not an error.
func List(dir string) ([]*Command, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, errors.Wrap(err, "reading commands directory")
	}

	cmds := make([]*Command, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".md") {
			continue
		}
		c, err := Load(filepath.Join(dir, entry.Name()))
		if err != nil {
			return nil, err
		}
		cmds = append(cmds, c)
	}
	return cmds, nil
}

// Find loads the named command from dir.
func Find(dir, name string) (*Command, error) {
	path := filepath.Join(dir, name+".md")
	if _, err := os.Stat(path); err != nil {
		return nil, errors.Wrapf(ErrCommandNotFound, "%s", name)
	}
	return Load(path)
}
