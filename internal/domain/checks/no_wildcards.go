package checks

import (
	"fmt"
	"strings"

	"github.com/depguard/depguard/internal/domain"
)

// runNoWildcards flags any declared version requirement containing a
// wildcard marker.
func runNoWildcards(model *domain.WorkspaceModel, cfg *domain.EffectiveConfig, out *[]domain.Finding) {
	policy := cfg.CheckPolicyFor(domain.CheckNoWildcards)
	if policy == nil {
		return
	}

	for i := range model.Manifests {
		manifest := &model.Manifests[i]
		for _, dep := range manifest.Dependencies {
			version := dep.Spec.Version
			if version == "" || !strings.Contains(version, "*") {
				continue
			}
			if allowed(policy.Allow, dep.Name) {
				continue
			}

			*out = append(*out, domain.Finding{
				Severity: policy.Severity,
				CheckID:  domain.CheckNoWildcards,
				Code:     domain.CodeWildcardVersion,
				Message:  fmt.Sprintf("dependency '%s' uses a wildcard version: %s", dep.Name, version),
				Location: dep.Location,
				Help:     "Replace wildcard versions with an explicit semver requirement.",
				Fingerprint: domain.Fingerprint(
					domain.CheckNoWildcards, domain.CodeWildcardVersion,
					manifest.Path, dep.Name, dep.Spec.Path,
				),
				Data: withTarget(map[string]any{
					"current_spec": specData(dep.Spec),
					"dependency":   dep.Name,
					"fix_action":   domain.FixActionPinVersion,
					"fix_hint":     "Pin to a specific semver requirement",
					"manifest":     manifest.Path,
					"section":      dep.Kind.Section(),
				}, dep),
			})
		}
	}
}
