package domain

import "strings"

// WorkspaceModel is the fully materialized input to the policy engine:
// the workspace root, the shared [workspace.dependencies] table, and one
// ManifestModel per manifest in scope (root first). It is built once per
// run and never mutated afterwards.
type WorkspaceModel struct {
	RepoRoot string `json:"repo_root"`

	// [workspace.dependencies] from the root manifest, keyed by crate name.
	WorkspaceDependencies map[string]WorkspaceDependency `json:"workspace_dependencies,omitempty"`

	Manifests []ManifestModel `json:"manifests"`
}

// WorkspaceDependency is one entry of the shared dependency table.
type WorkspaceDependency struct {
	Name      string `json:"name"`
	Version   string `json:"version,omitempty"`
	Path      string `json:"path,omitempty"`
	Workspace bool   `json:"workspace,omitempty"`
}

// ManifestModel is one package's manifest. Path is the canonical
// repo-relative path and doubles as the stable sort/identity key.
type ManifestModel struct {
	Path         string           `json:"path"`
	Package      *PackageMeta     `json:"package,omitempty"`
	Dependencies []DependencyDecl `json:"dependencies"`

	// [features] table: feature name -> ordered reference tokens.
	Features map[string][]string `json:"features,omitempty"`
}

// PackageMeta holds the [package] fields the checks care about.
type PackageMeta struct {
	Name    string `json:"name"`
	Publish bool   `json:"publish"`
}

// IsPublishable reports whether the package can be published to a registry.
func (m *ManifestModel) IsPublishable() bool {
	return m.Package != nil && m.Package.Publish
}

// PackageName returns the package name, or "" for virtual manifests.
func (m *ManifestModel) PackageName() string {
	if m.Package == nil {
		return ""
	}
	return m.Package.Name
}

// DepKind is the lifecycle category a dependency is declared under.
type DepKind int

const (
	DepKindNormal DepKind = iota
	DepKindDev
	DepKindBuild
)

// Section returns the manifest table name for the kind.
func (k DepKind) Section() string {
	switch k {
	case DepKindDev:
		return "dev-dependencies"
	case DepKindBuild:
		return "build-dependencies"
	default:
		return "dependencies"
	}
}

// DependencyDecl is one declared dependency edge.
type DependencyDecl struct {
	Kind DepKind `json:"kind"`
	Name string  `json:"name"`
	Spec DepSpec `json:"spec"`

	// Source location of the declaration, for findings only. Never part of
	// a finding's identity.
	Location *Location `json:"location,omitempty"`

	// Target platform filter (e.g. `cfg(unix)`). Present only for deps
	// declared under [target.<spec>.*] tables; diagnostic context only.
	Target string `json:"target,omitempty"`
}

// DepSpec is the declared constraint for a dependency. Fields may combine
// (e.g. path + version); Workspace=true suppresses independent
// interpretation of Version/Path, and checks treat such a spec as not
// independently versioned.
type DepSpec struct {
	Version string `json:"version,omitempty"`
	Path    string `json:"path,omitempty"`

	// Inherit from the [workspace.dependencies] definition.
	Workspace bool `json:"workspace,omitempty"`

	Git    string `json:"git,omitempty"`
	Branch string `json:"branch,omitempty"`
	Tag    string `json:"tag,omitempty"`
	Rev    string `json:"rev,omitempty"`

	// Nil means default-features was not stated explicitly.
	DefaultFeatures *bool `json:"default_features,omitempty"`

	Optional bool `json:"optional,omitempty"`
}

// Location is a source position inside a manifest. Line and Col are
// 1-based; zero means unknown.
type Location struct {
	Path string `json:"path"`
	Line int    `json:"line,omitempty"`
	Col  int    `json:"col,omitempty"`
}

// NormalizeRepoPath canonicalizes a repo-relative path: forward slashes,
// no leading "./", never empty (an empty input becomes ".").
func NormalizeRepoPath(p string) string {
	v := strings.ReplaceAll(p, `\`, "/")
	for strings.HasPrefix(v, "./") {
		v = strings.TrimPrefix(v, "./")
	}
	if v == "" {
		return "."
	}
	return v
}
