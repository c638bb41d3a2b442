package manifest

import (
	"fmt"
	"sort"

	"github.com/BurntSushi/toml"
	"github.com/depguard/depguard/internal/domain"
)

// manifestFile mirrors the Cargo.toml tables the checks care about.
// Dependency values are kept as primitives because Cargo allows both the
// string shorthand (`serde = "1.0"`) and the table form.
type manifestFile struct {
	Package   *packageSection   `toml:"package"`
	Workspace *workspaceSection `toml:"workspace"`

	Dependencies      map[string]toml.Primitive `toml:"dependencies"`
	DevDependencies   map[string]toml.Primitive `toml:"dev-dependencies"`
	BuildDependencies map[string]toml.Primitive `toml:"build-dependencies"`

	Target map[string]targetSection `toml:"target"`

	Features map[string][]string `toml:"features"`
}

type packageSection struct {
	Name string `toml:"name"`

	// Bool or a registry list. An empty list means "publish nowhere".
	Publish toml.Primitive `toml:"publish"`
}

type workspaceSection struct {
	Members []string `toml:"members"`
	Exclude []string `toml:"exclude"`

	Dependencies map[string]toml.Primitive `toml:"dependencies"`
}

type targetSection struct {
	Dependencies      map[string]toml.Primitive `toml:"dependencies"`
	DevDependencies   map[string]toml.Primitive `toml:"dev-dependencies"`
	BuildDependencies map[string]toml.Primitive `toml:"build-dependencies"`
}

// depTable is the inline-table form of a dependency spec.
type depTable struct {
	Version   string `toml:"version"`
	Path      string `toml:"path"`
	Workspace bool   `toml:"workspace"`

	Git    string `toml:"git"`
	Branch string `toml:"branch"`
	Tag    string `toml:"tag"`
	Rev    string `toml:"rev"`

	DefaultFeatures *bool `toml:"default-features"`
	Optional        bool  `toml:"optional"`
}

// workspaceInfo is the decoded [workspace] table of a root manifest.
type workspaceInfo struct {
	Members      []string
	Exclude      []string
	Dependencies map[string]domain.WorkspaceDependency
}

// parseManifest decodes one Cargo.toml into a ManifestModel. manifestPath
// is the canonical repo-relative path used for locations and identity.
// The second return value is non-nil when the manifest declares a
// [workspace] table.
func parseManifest(data []byte, manifestPath string) (domain.ManifestModel, *workspaceInfo, error) {
	var file manifestFile
	md, err := toml.Decode(string(data), &file)
	if err != nil {
		return domain.ManifestModel{}, nil, fmt.Errorf("%s: %w", manifestPath, err)
	}

	model := domain.ManifestModel{
		Path:     manifestPath,
		Features: file.Features,
	}

	if file.Package != nil {
		publish, err := decodePublish(md, file.Package.Publish)
		if err != nil {
			return domain.ManifestModel{}, nil, fmt.Errorf("%s: package.publish: %w", manifestPath, err)
		}
		model.Package = &domain.PackageMeta{
			Name:    file.Package.Name,
			Publish: publish,
		}
	}

	var deps []domain.DependencyDecl
	deps = appendDeps(deps, md, file.Dependencies, domain.DepKindNormal, manifestPath, "")
	deps = appendDeps(deps, md, file.DevDependencies, domain.DepKindDev, manifestPath, "")
	deps = appendDeps(deps, md, file.BuildDependencies, domain.DepKindBuild, manifestPath, "")

	for _, target := range sortedKeys(file.Target) {
		section := file.Target[target]
		deps = appendDeps(deps, md, section.Dependencies, domain.DepKindNormal, manifestPath, target)
		deps = appendDeps(deps, md, section.DevDependencies, domain.DepKindDev, manifestPath, target)
		deps = appendDeps(deps, md, section.BuildDependencies, domain.DepKindBuild, manifestPath, target)
	}
	model.Dependencies = deps

	var ws *workspaceInfo
	if file.Workspace != nil {
		ws = &workspaceInfo{
			Members:      file.Workspace.Members,
			Exclude:      file.Workspace.Exclude,
			Dependencies: parseWorkspaceDeps(md, file.Workspace),
		}
	}

	return model, ws, nil
}

// appendDeps decodes one dependency table in name order so the model is
// deterministic regardless of map iteration.
func appendDeps(
	out []domain.DependencyDecl,
	md toml.MetaData,
	table map[string]toml.Primitive,
	kind domain.DepKind,
	manifestPath, target string,
) []domain.DependencyDecl {
	for _, name := range sortedKeys(table) {
		spec, err := decodeSpec(md, table[name])
		if err != nil {
			// Shapes Cargo itself rejects; skip rather than fail the scan.
			continue
		}
		out = append(out, domain.DependencyDecl{
			Kind:     kind,
			Name:     name,
			Spec:     spec,
			Location: &domain.Location{Path: manifestPath},
			Target:   target,
		})
	}
	return out
}

// decodeSpec handles both dependency forms: the version-string shorthand
// and the full inline table.
func decodeSpec(md toml.MetaData, prim toml.Primitive) (domain.DepSpec, error) {
	var version string
	if err := md.PrimitiveDecode(prim, &version); err == nil {
		return domain.DepSpec{Version: version}, nil
	}

	var table depTable
	if err := md.PrimitiveDecode(prim, &table); err != nil {
		return domain.DepSpec{}, err
	}
	return domain.DepSpec{
		Version:         table.Version,
		Path:            table.Path,
		Workspace:       table.Workspace,
		Git:             table.Git,
		Branch:          table.Branch,
		Tag:             table.Tag,
		Rev:             table.Rev,
		DefaultFeatures: table.DefaultFeatures,
		Optional:        table.Optional,
	}, nil
}

// decodePublish resolves package.publish: absent means publishable, a bool
// is taken as-is, and a registry list is publishable only when non-empty.
func decodePublish(md toml.MetaData, prim toml.Primitive) (bool, error) {
	if md.Type("package", "publish") == "" {
		return true, nil
	}

	var flag bool
	if err := md.PrimitiveDecode(prim, &flag); err == nil {
		return flag, nil
	}

	var registries []string
	if err := md.PrimitiveDecode(prim, &registries); err != nil {
		return false, fmt.Errorf("expected bool or registry list: %w", err)
	}
	return len(registries) > 0, nil
}

// parseWorkspaceDeps flattens the root [workspace.dependencies] table.
func parseWorkspaceDeps(md toml.MetaData, ws *workspaceSection) map[string]domain.WorkspaceDependency {
	if ws == nil || len(ws.Dependencies) == 0 {
		return nil
	}

	out := make(map[string]domain.WorkspaceDependency, len(ws.Dependencies))
	for name, prim := range ws.Dependencies {
		spec, err := decodeSpec(md, prim)
		if err != nil {
			continue
		}
		out[name] = domain.WorkspaceDependency{
			Name:      name,
			Version:   spec.Version,
			Path:      spec.Path,
			Workspace: spec.Workspace,
		}
	}
	return out
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
