// Package checks holds the built-in dependency policy rules. Each check is
// a pure function over the workspace model and resolved config; ordering of
// the emitted findings is imposed later by the engine, never by a check.
package checks

import "github.com/depguard/depguard/internal/domain"

// Registry returns the built-in checks in their fixed registration order.
// The slice is rebuilt on every call so callers can never mutate shared
// state.
func Registry() []domain.Check {
	return []domain.Check{
		{ID: domain.CheckNoWildcards, Run: runNoWildcards},
		{ID: domain.CheckPathRequiresVersion, Run: runPathRequiresVersion},
		{ID: domain.CheckPathSafety, Run: runPathSafety},
		{ID: domain.CheckWorkspaceInheritance, Run: runWorkspaceInheritance},
		{ID: domain.CheckGitRequiresVersion, Run: runGitRequiresVersion},
		{ID: domain.CheckDevOnlyInNormal, Run: runDevOnlyInNormal},
		{ID: domain.CheckDefaultFeaturesExplicit, Run: runDefaultFeaturesExplicit},
		{ID: domain.CheckNoMultipleVersions, Run: runNoMultipleVersions},
		{ID: domain.CheckOptionalUnused, Run: runOptionalUnused},
	}
}
