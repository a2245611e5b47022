package guard

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Sentinel errors for rules file loading.
var (
	// ErrUnsupportedFormat indicates the rules file extension is not recognized.
	ErrUnsupportedFormat = errors.New("unsupported rules file format")

	// ErrInvalidRule indicates a rule in the file failed validation.
	ErrInvalidRule = errors.New("invalid rule")
)

// rulesFile is the on-disk schema shared by the YAML and TOML forms.
type rulesFile struct {
	Rules []Rule `yaml:"rules" toml:"rules"`
}

// LoadFile reads a rules file and constructs a Guard from it. The format
// is chosen by extension: .yaml/.yml or .toml. Loading validates every
// rule up front: an empty pattern or an unknown kind is an error rather
// than a silent drop, so a typo in the file cannot quietly disable a
// protection.
func LoadFile(path string) (*Guard, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "reading rules file")
	}

	var rf rulesFile
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &rf); err != nil {
			return nil, errors.Wrapf(err, "parsing %s", path)
		}
	case ".toml":
		if err := toml.Unmarshal(data, &rf); err != nil {
			return nil, errors.Wrapf(err, "parsing %s", path)
		}
	default:
		return nil, errors.Wrapf(ErrUnsupportedFormat, "%s (want .yaml, .yml or .toml)", path)
	}

	rules, err := validateRules(rf.Rules)
	if err != nil {
		return nil, errors.Wrapf(err, "in %s", path)
	}
	return New(rules), nil
}

// validateRules normalizes kinds and rejects unusable entries.
func validateRules(rules []Rule) ([]Rule, error) {
	out := make([]Rule, 0, len(rules))
	for i, r := range rules {
		if r.Pattern == "" {
			return nil, errors.Wrapf(ErrInvalidRule, "rule %d: empty pattern", i)
		}
		if r.Kind == "" {
			r.Kind = MatchSubstring
		}
		if !r.Kind.Valid() {
			return nil, errors.Wrapf(ErrInvalidRule, "rule %d (%s): unknown kind %q", i, r.Pattern, r.Kind)
		}
		out = append(out, r)
	}
	return out, nil
}
