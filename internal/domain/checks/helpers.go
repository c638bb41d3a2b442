package checks

import (
	"github.com/bmatcuk/doublestar/v4"
	"github.com/depguard/depguard/internal/domain"
)

// allowed reports whether value matches any of the allowlist globs.
// Patterns are validated during config resolution, so matching here cannot
// fail.
func allowed(patterns []string, value string) bool {
	for _, pattern := range patterns {
		if doublestar.MatchUnvalidated(pattern, value) {
			return true
		}
	}
	return false
}

// specData mirrors the declared spec into a finding payload, including
// only the fields the user actually wrote.
func specData(spec domain.DepSpec) map[string]any {
	d := make(map[string]any)
	if spec.Version != "" {
		d["version"] = spec.Version
	}
	if spec.Path != "" {
		d["path"] = spec.Path
	}
	if spec.Workspace {
		d["workspace"] = true
	}
	if spec.Git != "" {
		d["git"] = spec.Git
	}
	if spec.Branch != "" {
		d["branch"] = spec.Branch
	}
	if spec.Tag != "" {
		d["tag"] = spec.Tag
	}
	if spec.Rev != "" {
		d["rev"] = spec.Rev
	}
	if spec.DefaultFeatures != nil {
		d["default-features"] = *spec.DefaultFeatures
	}
	if spec.Optional {
		d["optional"] = true
	}
	return d
}

// withTarget adds the dependency's target qualifier to a payload when
// present.
func withTarget(data map[string]any, dep domain.DependencyDecl) map[string]any {
	if dep.Target != "" {
		data["target"] = dep.Target
	}
	return data
}
