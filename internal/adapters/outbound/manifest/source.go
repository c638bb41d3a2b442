// Package manifest implements domain.WorkspaceSource for Cargo workspaces:
// it discovers Cargo.toml files under a repository root, parses them, and
// materializes the workspace model the policy engine evaluates.
package manifest

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/depguard/depguard/internal/domain"
)

// Source builds workspace models from the filesystem.
type Source struct{}

func New() *Source { return &Source{} }

// Build parses the workspace at repoRoot. When changedFiles is non-nil the
// manifest set narrows to the root manifest plus changed manifests.
func (s *Source) Build(repoRoot string, changedFiles []string) (*domain.WorkspaceModel, error) {
	paths, err := discoverManifests(repoRoot)
	if err != nil {
		return nil, fmt.Errorf("discovering manifests: %w", err)
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("no %s found under %s", rootManifest, repoRoot)
	}

	model := &domain.WorkspaceModel{RepoRoot: domain.NormalizeRepoPath(repoRoot)}

	var ws *workspaceInfo
	for _, manifestPath := range paths {
		data, err := os.ReadFile(filepath.Join(repoRoot, filepath.FromSlash(manifestPath)))
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", manifestPath, err)
		}

		parsed, info, err := parseManifest(data, manifestPath)
		if err != nil {
			return nil, fmt.Errorf("parsing manifest: %w", err)
		}

		if manifestPath == rootManifest {
			ws = info
			if info != nil {
				model.WorkspaceDependencies = info.Dependencies
			}
		} else if !memberOfWorkspace(ws, manifestPath) {
			continue
		}

		model.Manifests = append(model.Manifests, parsed)
	}

	if changedFiles != nil {
		model.Manifests = narrowToChanged(model.Manifests, changedFiles)
	}

	return model, nil
}

// narrowToChanged keeps the root manifest plus every manifest named in the
// change set. The root stays in scope because [workspace.dependencies]
// edits affect every member.
func narrowToChanged(manifests []domain.ManifestModel, changedFiles []string) []domain.ManifestModel {
	changed := make(map[string]bool, len(changedFiles))
	for _, f := range changedFiles {
		changed[domain.NormalizeRepoPath(f)] = true
	}

	out := manifests[:0:0]
	for _, m := range manifests {
		if m.Path == rootManifest || changed[m.Path] {
			out = append(out, m)
		}
	}
	return out
}
