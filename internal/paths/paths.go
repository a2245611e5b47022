// Package paths resolves the filesystem locations udt works with: the
// user's config directory and the toolkit bundle layout (skills/,
// commands/, hooks/).
package paths

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/cockroachdb/errors"
)

// Bundle subdirectory names.
const (
	SkillsDirName   = "skills"
	CommandsDirName = "commands"
	HooksDirName    = "hooks"
)

// ErrBundleNotFound indicates the directory does not look like a toolkit
// bundle (no skills/ or commands/ subdirectory).
var ErrBundleNotFound = errors.New("not a toolkit bundle")

// ConfigHome returns the XDG config home directory
// (~/.config on Linux, ~/Library/Application Support on macOS).
func ConfigHome() string {
	return xdg.ConfigHome
}

// BundleDir resolves the toolkit bundle root. Precedence: the explicit
// value (--dir flag or config), then the current working directory.
func BundleDir(explicit string) (string, error) {
	if explicit != "" {
		abs, err := filepath.Abs(explicit)
		if err != nil {
			return "", errors.Wrap(err, "resolving bundle dir")
		}
		return abs, nil
	}
	wd, err := os.Getwd()
	if err != nil {
		return "", errors.Wrap(err, "resolving working directory")
	}
	return wd, nil
}

// SkillsDir returns the skills directory under the bundle root.
func SkillsDir(bundle string) string {
	return filepath.Join(bundle, SkillsDirName)
}

// CommandsDir returns the commands directory under the bundle root.
func CommandsDir(bundle string) string {
	return filepath.Join(bundle, CommandsDirName)
}

// ValidateBundle checks that dir contains at least one of the bundle
// subdirectories. It guards list commands against being run in an
// unrelated directory and silently printing nothing.
func ValidateBundle(dir string) error {
	for _, sub := range []string{SkillsDirName, CommandsDirName, HooksDirName} {
		if fi, err := os.Stat(filepath.Join(dir, sub)); err == nil && fi.IsDir() {
			return nil
		}
	}
	return errors.Wrapf(ErrBundleNotFound, "%s", dir)
}
