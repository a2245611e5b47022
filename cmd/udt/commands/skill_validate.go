package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/udtoolkit/udt/internal/errors"
	"github.com/udtoolkit/udt/internal/paths"
	"github.com/udtoolkit/udt/internal/skill"
)

func init() {
	skillCmd.AddCommand(skillValidateCmd)
}

var skillValidateCmd = &cobra.Command{
	Use:   "validate [name...]",
	Short: "Validate skill frontmatter and structure",
	Long: `Validate skills against the bundle conventions: required
frontmatter fields, kebab-case names, length limits, and agreement
between the frontmatter name and the directory name.

With no arguments, validates every skill in the bundle.`,
	RunE: runSkillValidate,
}

func runSkillValidate(_ *cobra.Command, args []string) error {
	return runSkillValidateWithWriter(os.Stdout, args)
}

// runSkillValidateWithWriter allows injecting a writer for testing.
func runSkillValidateWithWriter(w io.Writer, args []string) error {
	dir, err := resolveBundleDir()
	if err != nil {
		return err
	}
	skillsDir := paths.SkillsDir(dir)

	var skills []*skill.Skill
	if len(args) > 0 {
		for _, name := range args {
			s, err := skill.Find(skillsDir, name)
			if err != nil {
				return errors.UserError(err, "run 'udt skill list' to see available skills")
			}
			skills = append(skills, s)
		}
	} else {
		skills, err = skill.List(skillsDir)
		if err != nil {
			return err
		}
	}

	failed := 0
	for _, s := range skills {
		issues := skill.Validate(s)
		if len(issues) == 0 {
			fmt.Fprintf(w, "ok    %s\n", s.Name)
			continue
		}
		failed++
		fmt.Fprintf(w, "fail  %s\n", s.Name)
		for _, issue := range issues {
			fmt.Fprintf(w, "      - %s\n", issue)
		}
	}

	if failed > 0 {
		return errors.UserError(errors.Newf("%d skill(s) failed validation", failed), "")
	}
	return nil
}
