package manifest

import (
	"io/fs"
	"path"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/depguard/depguard/internal/domain"
)

const rootManifest = "Cargo.toml"

// discoverManifests walks repoRoot for Cargo.toml files, skipping VCS
// metadata, hidden directories, and cargo build output. Returns normalized
// repo-relative paths with the root manifest first and the rest sorted.
func discoverManifests(repoRoot string) ([]string, error) {
	var paths []string

	err := filepath.WalkDir(repoRoot, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			name := d.Name()
			if p != repoRoot && (name == "target" || strings.HasPrefix(name, ".")) {
				return filepath.SkipDir
			}
			return nil
		}
		if d.Name() != rootManifest {
			return nil
		}
		rel, err := filepath.Rel(repoRoot, p)
		if err != nil {
			return err
		}
		paths = append(paths, domain.NormalizeRepoPath(rel))
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Slice(paths, func(i, j int) bool {
		if paths[i] == rootManifest {
			return true
		}
		if paths[j] == rootManifest {
			return false
		}
		return paths[i] < paths[j]
	})
	return paths, nil
}

// memberOfWorkspace reports whether a non-root manifest belongs to the
// workspace per the root's members and exclude globs. Globs match the
// crate directory, as cargo does.
func memberOfWorkspace(ws *workspaceInfo, manifestPath string) bool {
	if ws == nil || len(ws.Members) == 0 {
		return true
	}

	dir := path.Dir(manifestPath)
	for _, pattern := range ws.Exclude {
		if doublestar.MatchUnvalidated(pattern, dir) {
			return false
		}
	}
	for _, pattern := range ws.Members {
		if doublestar.MatchUnvalidated(pattern, dir) {
			return true
		}
	}
	return false
}
