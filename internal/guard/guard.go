// Package guard implements the protected-path policy that gates file
// modifications requested through an assistant's tool pipeline.
//
// A Guard holds an ordered, immutable list of rules. Evaluate checks a
// candidate path against each rule in order and returns the decision for
// the first rule that matches. Evaluation is pure: no I/O, no state, and
// no error path — every string input yields exactly one Decision.
package guard

import (
	"fmt"
	"strings"
)

// MatchKind selects how a rule's pattern is compared against a path.
type MatchKind string

const (
	// MatchSubstring matches when the pattern occurs anywhere in the path.
	MatchSubstring MatchKind = "substring"

	// MatchSegment matches only when the pattern occupies a full
	// slash-delimited segment run: each occurrence must be preceded by
	// start-of-string or '/' and followed by end-of-string or '/'. This
	// keeps ".git" from matching ".github".
	MatchSegment MatchKind = "segment"

	// MatchExtension matches when the path ends with the pattern and the
	// pattern begins at a '.' boundary (e.g. ".pem" matching "server.pem").
	MatchExtension MatchKind = "extension"
)

// Valid reports whether the kind is one of the supported match kinds.
func (k MatchKind) Valid() bool {
	switch k {
	case MatchSubstring, MatchSegment, MatchExtension:
		return true
	}
	return false
}

// Rule is one protection criterion: a pattern plus the way it matches.
type Rule struct {
	// Pattern is the token compared against candidate paths. Never empty
	// in a constructed Guard.
	Pattern string `json:"pattern" yaml:"pattern" toml:"pattern"`

	// Kind selects the match predicate. The zero value is treated as
	// MatchSubstring by New.
	Kind MatchKind `json:"kind,omitempty" yaml:"kind,omitempty" toml:"kind,omitempty"`

	// Rationale documents why the pattern is protected. Informational
	// only; it never affects matching.
	Rationale string `json:"rationale,omitempty" yaml:"rationale,omitempty" toml:"rationale,omitempty"`
}

// matches reports whether the rule's predicate accepts the path.
func (r Rule) matches(path string) bool {
	switch r.Kind {
	case MatchSegment:
		return segmentMatch(path, r.Pattern)
	case MatchExtension:
		return extensionMatch(path, r.Pattern)
	default:
		return strings.Contains(path, r.Pattern)
	}
}

// Decision is the outcome of evaluating one path against the rule list.
type Decision struct {
	// Allowed reports whether the modification may proceed.
	Allowed bool `json:"allowed"`

	// Pattern is the pattern of the first matching rule. Empty when allowed.
	Pattern string `json:"pattern,omitempty"`

	// Reason is a human-readable explanation. Empty when allowed.
	Reason string `json:"reason,omitempty"`
}

// Allow returns the allowing decision.
func Allow() Decision {
	return Decision{Allowed: true}
}

// Block returns a blocking decision for the given matched pattern.
func Block(pattern string) Decision {
	return Decision{
		Allowed: false,
		Pattern: pattern,
		Reason:  fmt.Sprintf("Matches protected pattern '%s'", pattern),
	}
}

// Guard evaluates candidate paths against a fixed, ordered rule list.
// It is immutable after construction and safe for concurrent use.
type Guard struct {
	rules []Rule
}

// New constructs a Guard over the given rules. Rule order is preserved;
// the first matching rule determines the decision and its reported
// pattern. Rules with an empty pattern or an unknown kind are dropped
// (a zero-value kind normalizes to MatchSubstring).
func New(rules []Rule) *Guard {
	kept := make([]Rule, 0, len(rules))
	for _, r := range rules {
		if r.Pattern == "" {
			continue
		}
		if r.Kind == "" {
			r.Kind = MatchSubstring
		}
		if !r.Kind.Valid() {
			continue
		}
		kept = append(kept, r)
	}
	return &Guard{rules: kept}
}

// Rules returns a copy of the guard's rule list in evaluation order.
func (g *Guard) Rules() []Rule {
	out := make([]Rule, len(g.rules))
	copy(out, g.rules)
	return out
}

// Evaluate checks path against the rule list in order and returns the
// decision of the first matching rule, or Allow when none match. The
// empty path is always allowed: every pattern is non-empty, so no
// predicate can accept it.
func (g *Guard) Evaluate(path string) Decision {
	if path == "" {
		return Allow()
	}
	for _, r := range g.rules {
		if r.matches(path) {
			return Block(r.Pattern)
		}
	}
	return Allow()
}

// segmentMatch reports whether token occupies a full '/'-delimited
// segment boundary somewhere in path: an occurrence at index i is
// accepted iff i is 0 or preceded by '/', and the occurrence ends at
// end-of-string or is followed by '/'.
func segmentMatch(path, token string) bool {
	if token == "" {
		return false
	}
	for start := 0; ; {
		i := strings.Index(path[start:], token)
		if i < 0 {
			return false
		}
		i += start
		end := i + len(token)
		leftOK := i == 0 || path[i-1] == '/'
		rightOK := end == len(path) || path[end] == '/'
		if leftOK && rightOK {
			return true
		}
		start = i + 1
		if start >= len(path) {
			return false
		}
	}
}

// extensionMatch reports whether path ends with token at a '.' boundary.
// Tokens are normalized so "pem", ".pem" and "*.pem" all mean the same
// suffix.
func extensionMatch(path, token string) bool {
	token = strings.TrimPrefix(token, "*")
	if !strings.HasPrefix(token, ".") {
		token = "." + token
	}
	if token == "." {
		return false
	}
	return strings.HasSuffix(path, token)
}
