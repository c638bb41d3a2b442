package checks

import (
	"fmt"
	"strings"

	"github.com/depguard/depguard/internal/domain"
)

// runOptionalUnused flags optional dependencies that no feature of the
// manifest references. Feature tokens may name a dependency three ways:
// "dep:name" (explicit dependency marker), "name/feature" (activating a
// dependency's feature), or a bare "name".
func runOptionalUnused(model *domain.WorkspaceModel, cfg *domain.EffectiveConfig, out *[]domain.Finding) {
	policy := cfg.CheckPolicyFor(domain.CheckOptionalUnused)
	if policy == nil {
		return
	}

	for i := range model.Manifests {
		manifest := &model.Manifests[i]

		referenced := make(map[string]bool)
		for _, tokens := range manifest.Features {
			for _, token := range tokens {
				switch {
				case strings.HasPrefix(token, "dep:"):
					referenced[strings.TrimPrefix(token, "dep:")] = true
				case strings.Contains(token, "/"):
					name, _, _ := strings.Cut(token, "/")
					referenced[name] = true
				default:
					// Could be a feature name or a dependency name.
					referenced[token] = true
				}
			}
		}

		for _, dep := range manifest.Dependencies {
			if !dep.Spec.Optional {
				continue
			}
			if referenced[dep.Name] {
				continue
			}
			if allowed(policy.Allow, dep.Name) {
				continue
			}

			*out = append(*out, domain.Finding{
				Severity: policy.Severity,
				CheckID:  domain.CheckOptionalUnused,
				Code:     domain.CodeOptionalNotInFeatures,
				Message:  fmt.Sprintf("optional dependency '%s' is not referenced in any feature", dep.Name),
				Location: dep.Location,
				Help:     "Add a feature that enables this dependency, or remove `optional = true`.",
				Fingerprint: domain.Fingerprint(
					domain.CheckOptionalUnused, domain.CodeOptionalNotInFeatures,
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
