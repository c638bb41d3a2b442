package checks

import (
	"fmt"
	"strings"

	"github.com/depguard/depguard/internal/domain"
)

// runPathSafety flags local path dependencies that are absolute or whose
// `..` traversal crosses above the workspace root.
func runPathSafety(model *domain.WorkspaceModel, cfg *domain.EffectiveConfig, out *[]domain.Finding) {
	policy := cfg.CheckPolicyFor(domain.CheckPathSafety)
	if policy == nil {
		return
	}

	for i := range model.Manifests {
		manifest := &model.Manifests[i]
		depth := manifestDirDepth(manifest.Path)

		for _, dep := range manifest.Dependencies {
			path := dep.Spec.Path
			if path == "" {
				continue
			}
			if allowed(policy.Allow, path) {
				continue
			}

			if isAbsolutePath(path) {
				*out = append(*out, domain.Finding{
					Severity: policy.Severity,
					CheckID:  domain.CheckPathSafety,
					Code:     domain.CodeAbsolutePath,
					Message:  fmt.Sprintf("dependency '%s' uses an absolute path: %s", dep.Name, path),
					Location: dep.Location,
					Help:     "Use repo-relative paths. Absolute paths are not portable and may leak host layout.",
					Fingerprint: domain.Fingerprint(
						domain.CheckPathSafety, domain.CodeAbsolutePath,
						manifest.Path, dep.Name, path,
					),
					Data: map[string]any{
						"dependency": dep.Name,
						"manifest":   manifest.Path,
						"path":       path,
					},
				})
				continue
			}

			if escapesRepoRoot(depth, path) {
				*out = append(*out, domain.Finding{
					Severity: policy.Severity,
					CheckID:  domain.CheckPathSafety,
					Code:     domain.CodeParentEscape,
					Message:  fmt.Sprintf("dependency '%s' uses a path that escapes the repo root: %s", dep.Name, path),
					Location: dep.Location,
					Help:     "Avoid `..` segments that escape the repository root.",
					Fingerprint: domain.Fingerprint(
						domain.CheckPathSafety, domain.CodeParentEscape,
						manifest.Path, dep.Name, path,
					),
					Data: map[string]any{
						"dependency": dep.Name,
						"manifest":   manifest.Path,
						"path":       path,
					},
				})
			}
		}
	}
}

// isAbsolutePath detects Unix absolute paths and Windows drive-letter
// prefixes regardless of the host platform; manifests written on one
// platform are routinely evaluated on another.
func isAbsolutePath(p string) bool {
	if strings.HasPrefix(p, "/") {
		return true
	}
	return len(p) >= 2 && p[1] == ':'
}

// manifestDirDepth counts directory segments above a repo-relative
// manifest path. The root manifest sits at depth 0; "crates/foo/Cargo.toml"
// at depth 2.
func manifestDirDepth(manifestPath string) int {
	trimmed := strings.Trim(manifestPath, "/")
	parts := strings.Split(trimmed, "/")
	if len(parts) > 0 {
		parts = parts[:len(parts)-1] // drop the filename
	}
	depth := 0
	for _, seg := range parts {
		if seg != "" && seg != "." {
			depth++
		}
	}
	return depth
}

// escapesRepoRoot walks relPath from startDepth; a `..` segment decrements
// the depth and going negative means the path crosses above the root.
func escapesRepoRoot(startDepth int, relPath string) bool {
	depth := startDepth
	for _, seg := range strings.Split(relPath, "/") {
		switch seg {
		case "", ".":
		case "..":
			depth--
			if depth < 0 {
				return true
			}
		default:
			depth++
		}
	}
	return false
}
