package domain

// Built-in profile names.
const (
	ProfileStrict = "strict"
	ProfileWarn   = "warn"
	ProfileCompat = "compat"
)

// defaultMaxFindings bounds report size before per-run configuration.
const defaultMaxFindings = 200

// allCheckIDs is the canonical registration order of the built-in checks.
// The checks package mirrors this list; its tests keep the two in sync.
var allCheckIDs = []string{
	CheckNoWildcards,
	CheckPathRequiresVersion,
	CheckPathSafety,
	CheckWorkspaceInheritance,
	CheckGitRequiresVersion,
	CheckDevOnlyInNormal,
	CheckDefaultFeaturesExplicit,
	CheckNoMultipleVersions,
	CheckOptionalUnused,
}

// AllCheckIDs returns the ids of every built-in check in registration order.
func AllCheckIDs() []string {
	out := make([]string, len(allCheckIDs))
	copy(out, allCheckIDs)
	return out
}

// Preset returns the opinionated defaults for a named profile. Unknown
// names fall back to strict so a misspelled profile can never silently
// weaken policy.
func Preset(profile string) *EffectiveConfig {
	switch profile {
	case ProfileWarn:
		return &EffectiveConfig{
			Profile:     ProfileWarn,
			Scope:       ScopeRepo,
			FailOn:      FailOnWarning,
			MaxFindings: defaultMaxFindings,
			Checks:      defaultChecks(SeverityWarning),
		}
	case ProfileCompat:
		// Compatibility mode is "mostly on" but reports at warning.
		return &EffectiveConfig{
			Profile:     ProfileCompat,
			Scope:       ScopeRepo,
			FailOn:      FailOnError,
			MaxFindings: defaultMaxFindings,
			Checks:      defaultChecks(SeverityWarning),
		}
	default:
		return &EffectiveConfig{
			Profile:     ProfileStrict,
			Scope:       ScopeRepo,
			FailOn:      FailOnError,
			MaxFindings: defaultMaxFindings,
			Checks:      defaultChecks(SeverityError),
		}
	}
}

func defaultChecks(severity Severity) map[string]CheckPolicy {
	m := make(map[string]CheckPolicy, len(allCheckIDs))
	for _, id := range allCheckIDs {
		m[id] = EnabledPolicy(severity)
	}
	return m
}
