package checks

import (
	"fmt"

	"github.com/depguard/depguard/internal/domain"
)

// runPathRequiresVersion flags path dependencies in publishable packages
// that carry neither an explicit version nor workspace inheritance. A
// registry ignores the path key when publishing, so such a dependency
// cannot be resolved by consumers.
func runPathRequiresVersion(model *domain.WorkspaceModel, cfg *domain.EffectiveConfig, out *[]domain.Finding) {
	policy := cfg.CheckPolicyFor(domain.CheckPathRequiresVersion)
	if policy == nil {
		return
	}

	for i := range model.Manifests {
		manifest := &model.Manifests[i]
		if !policy.IgnorePublishFalse && !manifest.IsPublishable() {
			continue
		}

		for _, dep := range manifest.Dependencies {
			if dep.Spec.Path == "" || dep.Spec.Version != "" || dep.Spec.Workspace {
				continue
			}
			if allowed(policy.Allow, dep.Name) {
				continue
			}

			*out = append(*out, domain.Finding{
				Severity: policy.Severity,
				CheckID:  domain.CheckPathRequiresVersion,
				Code:     domain.CodePathWithoutVersion,
				Message:  fmt.Sprintf("dependency '%s' uses a path dependency without an explicit version", dep.Name),
				Location: dep.Location,
				Help:     "Add an explicit version alongside `path = ...`, or use `workspace = true` with a workspace dependency.",
				Fingerprint: domain.Fingerprint(
					domain.CheckPathRequiresVersion, domain.CodePathWithoutVersion,
					manifest.Path, dep.Name, dep.Spec.Path,
				),
				Data: map[string]any{
					"dependency": dep.Name,
					"manifest":   manifest.Path,
					"path":       dep.Spec.Path,
				},
			})
		}
	}
}
