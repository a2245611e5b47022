package guard

// defaultRules is the shipped protection policy. Order matters for the
// reported pattern in diagnostics; evaluation stops at the first match.
//
// The ".git/" substring entry predates the segment-anchored ".git" entry
// and is kept for compatibility; the segment entry exists so that ".git"
// never matches ".github".
//
// The "*.pem", "*.key" and "*.cert" entries are literal substrings, not
// globs, matching the historical policy exactly. Operators who want
// suffix semantics can declare extension-kind rules in a rules file.
var defaultRules = []Rule{
	{Pattern: ".env", Kind: MatchSubstring, Rationale: "local secrets file"},
	{Pattern: ".env.local", Kind: MatchSubstring, Rationale: "local secrets override"},
	{Pattern: ".env.*.local", Kind: MatchSubstring, Rationale: "environment-specific secrets"},
	{Pattern: "package-lock.json", Kind: MatchSubstring, Rationale: "dependency lockfile"},
	{Pattern: "yarn.lock", Kind: MatchSubstring, Rationale: "dependency lockfile"},
	{Pattern: ".git/", Kind: MatchSubstring, Rationale: "VCS internals"},
	{Pattern: ".git", Kind: MatchSegment, Rationale: "VCS internals"},
	{Pattern: "credentials.json", Kind: MatchSubstring, Rationale: "credential store"},
	{Pattern: "secrets", Kind: MatchSubstring, Rationale: "secret material"},
	{Pattern: ".aws/credentials", Kind: MatchSubstring, Rationale: "cloud credentials"},
	{Pattern: ".ssh/", Kind: MatchSubstring, Rationale: "SSH keys"},
	{Pattern: "*.pem", Kind: MatchSubstring, Rationale: "private key material"},
	{Pattern: "*.key", Kind: MatchSubstring, Rationale: "private key material"},
	{Pattern: "*.cert", Kind: MatchSubstring, Rationale: "certificate material"},
}

// Default returns a Guard over the shipped protection policy.
func Default() *Guard {
	return New(DefaultRules())
}

// DefaultRules returns a copy of the shipped rule table in evaluation order.
func DefaultRules() []Rule {
	out := make([]Rule, len(defaultRules))
	copy(out, defaultRules)
	return out
}
