package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/ktr0731/go-fuzzyfinder"
	"github.com/spf13/cobra"

	"github.com/udtoolkit/udt/internal/errors"
	"github.com/udtoolkit/udt/internal/paths"
	"github.com/udtoolkit/udt/internal/skill"
)

func init() {
	skillCmd.AddCommand(skillShowCmd)
}

var skillShowCmd = &cobra.Command{
	Use:   "show [name]",
	Short: "Show a skill's metadata and content",
	Long: `Print one skill, frontmatter and body.

With no name, opens an interactive fuzzy picker over the bundle's
skills.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSkillShow,
}

func runSkillShow(_ *cobra.Command, args []string) error {
	dir, err := resolveBundleDir()
	if err != nil {
		return err
	}
	skillsDir := paths.SkillsDir(dir)

	var s *skill.Skill
	if len(args) == 1 {
		s, err = skill.Find(skillsDir, args[0])
		if err != nil {
			return errors.UserError(err, "run 'udt skill list' to see available skills")
		}
	} else {
		s, err = pickSkill(skillsDir)
		if err != nil || s == nil {
			return err
		}
	}

	printSkill(os.Stdout, s)
	return nil
}

// pickSkill opens a fuzzy finder over the bundle's skills. Returns nil
// without error when the user aborts.
func pickSkill(skillsDir string) (*skill.Skill, error) {
	skills, err := skill.List(skillsDir)
	if err != nil {
		return nil, err
	}
	if len(skills) == 0 {
		fmt.Println("No skills found.")
		return nil, nil
	}

	idx, err := fuzzyfinder.Find(
		skills,
		func(i int) string {
			return skills[i].Name
		},
		fuzzyfinder.WithPreviewWindow(func(i, _, _ int) string {
			if i == -1 {
				return ""
			}
			return fmt.Sprintf("%s\n\n%s", skills[i].Description, skills[i].Body)
		}),
	)
	if err != nil {
		if errors.Is(err, fuzzyfinder.ErrAbort) {
			return nil, nil
		}
		return nil, errors.Wrap(err, "interactive skill selection failed")
	}
	return skills[idx], nil
}

func printSkill(w io.Writer, s *skill.Skill) {
	fmt.Fprintf(w, "Name: %s\n", s.Name)
	fmt.Fprintf(w, "Description: %s\n", s.Description)
	if s.AllowedTools != "" {
		fmt.Fprintf(w, "Allowed tools: %s\n", s.AllowedTools)
	}
	fmt.Fprintf(w, "\n%s\n", s.Body)
}
