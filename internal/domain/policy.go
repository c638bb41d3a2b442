package domain

import "fmt"

// Scope selects which manifests a run evaluates.
type Scope int

const (
	// ScopeRepo evaluates every manifest in the workspace.
	ScopeRepo Scope = iota
	// ScopeDiff evaluates only manifests in a caller-supplied changed set.
	ScopeDiff
)

func (s Scope) String() string {
	if s == ScopeDiff {
		return "diff"
	}
	return "repo"
}

// ParseScope maps a config token to a Scope.
func ParseScope(v string) (Scope, error) {
	switch v {
	case "repo":
		return ScopeRepo, nil
	case "diff":
		return ScopeDiff, nil
	default:
		return ScopeRepo, fmt.Errorf("unknown scope %q (expected repo|diff)", v)
	}
}

// FailOn is the threshold at which a run's verdict flips to fail.
type FailOn int

const (
	FailOnError FailOn = iota
	FailOnWarning
)

func (f FailOn) String() string {
	if f == FailOnWarning {
		return "warning"
	}
	return "error"
}

// ParseFailOn maps a config token to a FailOn threshold.
func ParseFailOn(v string) (FailOn, error) {
	switch v {
	case "error":
		return FailOnError, nil
	case "warning", "warn":
		return FailOnWarning, nil
	default:
		return FailOnError, fmt.Errorf("unknown fail_on %q (expected error|warning)", v)
	}
}

// CheckPolicy is the resolved per-check configuration.
type CheckPolicy struct {
	Enabled  bool
	Severity Severity

	// Glob patterns exempting matched values from reporting. The matched
	// value is check-specific (usually the dependency name, sometimes a
	// filesystem path).
	Allow []string

	// Lift the publishable-only restriction on the *_requires_version
	// checks.
	IgnorePublishFalse bool
}

// EnabledPolicy returns a policy enabled at the given severity.
func EnabledPolicy(severity Severity) CheckPolicy {
	return CheckPolicy{Enabled: true, Severity: severity}
}

// DisabledPolicy is the stub a check starts from when the preset does not
// mention it.
func DisabledPolicy() CheckPolicy {
	return CheckPolicy{}
}

// EffectiveConfig is the fully resolved policy for one run. It is immutable
// once resolved.
type EffectiveConfig struct {
	Profile     string
	Scope       Scope
	FailOn      FailOn
	MaxFindings int
	Checks      map[string]CheckPolicy
}

// CheckPolicyFor returns the policy for a check id, or nil when the check
// is disabled or absent (in which case the check must no-op).
func (c *EffectiveConfig) CheckPolicyFor(checkID string) *CheckPolicy {
	p, ok := c.Checks[checkID]
	if !ok || !p.Enabled {
		return nil
	}
	return &p
}
