package skill

import (
	"fmt"
	"path/filepath"
	"regexp"
)

// Field limits for skill frontmatter.
const (
	MaxNameLength        = 64
	MaxDescriptionLength = 1024
)

// nameRegex enforces lowercase kebab-case skill names.
var nameRegex = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)

// Validate checks a parsed skill against the bundle conventions and
// returns the list of problems found. An empty list means valid.
func Validate(s *Skill) []string {
	var issues []string

	switch {
	case s.Name == "":
		issues = append(issues, "name is required")
	case len(s.Name) > MaxNameLength:
		issues = append(issues, fmt.Sprintf("name exceeds %d characters", MaxNameLength))
	case !nameRegex.MatchString(s.Name):
		issues = append(issues, "name must be lowercase kebab-case (letters, digits, hyphens)")
	}

	switch {
	case s.Description == "":
		issues = append(issues, "description is required")
	case len(s.Description) > MaxDescriptionLength:
		issues = append(issues, fmt.Sprintf("description exceeds %d characters", MaxDescriptionLength))
	}

	if s.Body == "" {
		issues = append(issues, "skill body is empty")
	}

	// The directory name is the skill's identity for lookup; a mismatch
	// with the frontmatter name makes `skill show <name>` surprising.
	if s.Path != "" && s.Name != "" {
		dir := filepath.Base(filepath.Dir(s.Path))
		if dir != s.Name {
			issues = append(issues, fmt.Sprintf("name %q does not match directory %q", s.Name, dir))
		}
	}

	return issues
}
