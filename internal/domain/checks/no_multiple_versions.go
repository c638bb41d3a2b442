package checks

import (
	"fmt"
	"sort"
	"strings"

	"github.com/depguard/depguard/internal/domain"
)

// runNoMultipleVersions groups independently versioned declarations by
// crate name across the whole workspace and emits one workspace-level
// finding (no location) per name declared with more than one distinct
// version.
func runNoMultipleVersions(model *domain.WorkspaceModel, cfg *domain.EffectiveConfig, out *[]domain.Finding) {
	policy := cfg.CheckPolicyFor(domain.CheckNoMultipleVersions)
	if policy == nil {
		return
	}

	type occurrence struct {
		version  string
		manifest string
	}
	byName := make(map[string][]occurrence)

	for i := range model.Manifests {
		manifest := &model.Manifests[i]
		for _, dep := range manifest.Dependencies {
			// Inheriting or unversioned specs have no independent version.
			if dep.Spec.Workspace || dep.Spec.Version == "" {
				continue
			}
			byName[dep.Name] = append(byName[dep.Name], occurrence{
				version:  dep.Spec.Version,
				manifest: manifest.Path,
			})
		}
	}

	names := make([]string, 0, len(byName))
	for name := range byName {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		occurrences := byName[name]

		distinct := make(map[string]bool)
		for _, o := range occurrences {
			distinct[o.version] = true
		}
		if len(distinct) <= 1 {
			continue
		}
		if allowed(policy.Allow, name) {
			continue
		}

		versions := make([]string, 0, len(distinct))
		for v := range distinct {
			versions = append(versions, v)
		}
		sort.Strings(versions)

		occData := make([]map[string]any, 0, len(occurrences))
		sort.Slice(occurrences, func(i, j int) bool {
			if occurrences[i].manifest != occurrences[j].manifest {
				return occurrences[i].manifest < occurrences[j].manifest
			}
			return occurrences[i].version < occurrences[j].version
		})
		for _, o := range occurrences {
			occData = append(occData, map[string]any{
				"version":  o.version,
				"manifest": o.manifest,
			})
		}

		*out = append(*out, domain.Finding{
			Severity: policy.Severity,
			CheckID:  domain.CheckNoMultipleVersions,
			Code:     domain.CodeDuplicateDifferentVersions,
			Message: fmt.Sprintf(
				"crate '%s' has multiple versions across workspace: %s",
				name, strings.Join(versions, ", "),
			),
			// Workspace-level finding, no single location.
			Location: nil,
			Help:     "Align all workspace members to use the same version via [workspace.dependencies].",
			Fingerprint: domain.Fingerprint(
				domain.CheckNoMultipleVersions, domain.CodeDuplicateDifferentVersions,
				"", name, "",
			),
			Data: map[string]any{
				"crate":       name,
				"versions":    versions,
				"occurrences": occData,
			},
		})
	}
}
