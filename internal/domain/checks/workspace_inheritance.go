package checks

import (
	"fmt"

	"github.com/depguard/depguard/internal/domain"
)

// runWorkspaceInheritance flags dependencies that duplicate a
// [workspace.dependencies] definition locally instead of inheriting it
// with `workspace = true`. No-ops when the workspace has no shared table.
func runWorkspaceInheritance(model *domain.WorkspaceModel, cfg *domain.EffectiveConfig, out *[]domain.Finding) {
	policy := cfg.CheckPolicyFor(domain.CheckWorkspaceInheritance)
	if policy == nil {
		return
	}
	if len(model.WorkspaceDependencies) == 0 {
		return
	}

	for i := range model.Manifests {
		manifest := &model.Manifests[i]
		for _, dep := range manifest.Dependencies {
			if _, shared := model.WorkspaceDependencies[dep.Name]; !shared {
				continue
			}
			if dep.Spec.Workspace {
				continue
			}
			if allowed(policy.Allow, dep.Name) {
				continue
			}

			*out = append(*out, domain.Finding{
				Severity: policy.Severity,
				CheckID:  domain.CheckWorkspaceInheritance,
				Code:     domain.CodeMissingWorkspaceTrue,
				Message: fmt.Sprintf(
					"dependency '%s' exists in [workspace.dependencies] but is not declared with `workspace = true`",
					dep.Name,
				),
				Location: dep.Location,
				Help:     "Prefer `workspace = true` to inherit the workspace dependency version and features.",
				Fingerprint: domain.Fingerprint(
					domain.CheckWorkspaceInheritance, domain.CodeMissingWorkspaceTrue,
					manifest.Path, dep.Name, dep.Spec.Path,
				),
				Data: map[string]any{
					"dependency": dep.Name,
					"manifest":   manifest.Path,
				},
			})
		}
	}
}
