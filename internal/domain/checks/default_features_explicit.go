package checks

import (
	"fmt"

	"github.com/depguard/depguard/internal/domain"
)

// runDefaultFeaturesExplicit flags dependencies that carry inline options
// (path, git, or optional) without stating default-features explicitly.
// Inheriting specs and plain version strings are exempt.
func runDefaultFeaturesExplicit(model *domain.WorkspaceModel, cfg *domain.EffectiveConfig, out *[]domain.Finding) {
	policy := cfg.CheckPolicyFor(domain.CheckDefaultFeaturesExplicit)
	if policy == nil {
		return
	}

	for i := range model.Manifests {
		manifest := &model.Manifests[i]
		for _, dep := range manifest.Dependencies {
			if dep.Spec.Workspace {
				continue
			}

			hasInlineOptions := dep.Spec.Path != "" || dep.Spec.Git != "" || dep.Spec.Optional
			if !hasInlineOptions {
				continue
			}
			if dep.Spec.DefaultFeatures != nil {
				continue
			}
			if allowed(policy.Allow, dep.Name) {
				continue
			}

			*out = append(*out, domain.Finding{
				Severity: policy.Severity,
				CheckID:  domain.CheckDefaultFeaturesExplicit,
				Code:     domain.CodeDefaultFeaturesImplicit,
				Message: fmt.Sprintf(
					"dependency '%s' has inline options but no explicit default-features declaration",
					dep.Name,
				),
				Location: dep.Location,
				Help:     "Add `default-features = true` or `default-features = false` to make the intent explicit.",
				Fingerprint: domain.Fingerprint(
					domain.CheckDefaultFeaturesExplicit, domain.CodeDefaultFeaturesImplicit,
					manifest.Path, dep.Name, "",
				),
				Data: map[string]any{
					"dependency": dep.Name,
					"manifest":   manifest.Path,
				},
			})
		}
	}
}
