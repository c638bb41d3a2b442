package checks

import (
	"fmt"

	"github.com/depguard/depguard/internal/domain"
)

// runGitRequiresVersion mirrors path_requires_version for git
// dependencies: a publishable package depending on a git URL without an
// explicit version cannot be consumed from a registry.
func runGitRequiresVersion(model *domain.WorkspaceModel, cfg *domain.EffectiveConfig, out *[]domain.Finding) {
	policy := cfg.CheckPolicyFor(domain.CheckGitRequiresVersion)
	if policy == nil {
		return
	}

	for i := range model.Manifests {
		manifest := &model.Manifests[i]
		if !policy.IgnorePublishFalse && !manifest.IsPublishable() {
			continue
		}

		for _, dep := range manifest.Dependencies {
			if dep.Spec.Git == "" || dep.Spec.Version != "" || dep.Spec.Workspace {
				continue
			}
			if allowed(policy.Allow, dep.Name) {
				continue
			}

			*out = append(*out, domain.Finding{
				Severity: policy.Severity,
				CheckID:  domain.CheckGitRequiresVersion,
				Code:     domain.CodeGitWithoutVersion,
				Message:  fmt.Sprintf("dependency '%s' uses a git dependency without an explicit version", dep.Name),
				Location: dep.Location,
				Help:     "Add an explicit version alongside `git = ...`, or use `workspace = true` with a workspace dependency.",
				Fingerprint: domain.Fingerprint(
					domain.CheckGitRequiresVersion, domain.CodeGitWithoutVersion,
					manifest.Path, dep.Name, dep.Spec.Git,
				),
				Data: withTarget(map[string]any{
					"current_spec": specData(dep.Spec),
					"dependency":   dep.Name,
					"fix_action":   domain.FixActionAddVersionWithGit,
					"fix_hint":     "Add version alongside the git dependency",
					"manifest":     manifest.Path,
					"section":      dep.Kind.Section(),
				}, dep),
			})
		}
	}
}
