package checks

import (
	"fmt"

	"github.com/depguard/depguard/internal/domain"
)

// devOnlyCrates are crates conventionally used only in dev, test, or
// benchmark contexts.
var devOnlyCrates = map[string]bool{
	// Test frameworks
	"proptest":      true,
	"quickcheck":    true,
	"rstest":        true,
	"test-case":     true,
	"test-strategy": true,
	// Mocking
	"mockall":  true,
	"mockito":  true,
	"wiremock": true,
	"httpmock": true,
	// Snapshot testing
	"insta":       true,
	"expect-test": true,
	// Benchmarking
	"criterion": true,
	"divan":     true,
	"iai":       true,
	// Test utilities
	"tempfile":   true,
	"assert_cmd": true,
	"assert_fs":  true,
	"predicates": true,
	"fake":       true,
	"arbitrary":  true,
	// Coverage
	"cargo-llvm-cov": true,
}

// runDevOnlyInNormal flags conventionally dev-only crates declared under
// [dependencies] instead of [dev-dependencies] or [build-dependencies].
func runDevOnlyInNormal(model *domain.WorkspaceModel, cfg *domain.EffectiveConfig, out *[]domain.Finding) {
	policy := cfg.CheckPolicyFor(domain.CheckDevOnlyInNormal)
	if policy == nil {
		return
	}

	for i := range model.Manifests {
		manifest := &model.Manifests[i]
		for _, dep := range manifest.Dependencies {
			if dep.Kind != domain.DepKindNormal {
				continue
			}
			if !devOnlyCrates[dep.Name] {
				continue
			}
			if allowed(policy.Allow, dep.Name) {
				continue
			}

			*out = append(*out, domain.Finding{
				Severity: policy.Severity,
				CheckID:  domain.CheckDevOnlyInNormal,
				Code:     domain.CodeDevDepInNormal,
				Message: fmt.Sprintf(
					"dependency '%s' is typically a dev-only crate but appears in [dependencies]",
					dep.Name,
				),
				Location: dep.Location,
				Help:     "Move this dependency to [dev-dependencies] unless it's genuinely needed in production code.",
				Fingerprint: domain.Fingerprint(
					domain.CheckDevOnlyInNormal, domain.CodeDevDepInNormal,
					manifest.Path, dep.Name, "",
				),
				Data: map[string]any{
					"current_spec": specData(dep.Spec),
					"dependency":   dep.Name,
					"fix_hint":     "Move to [dev-dependencies]",
					"manifest":     manifest.Path,
					"section":      dep.Kind.Section(),
				},
			})
		}
	}
}
