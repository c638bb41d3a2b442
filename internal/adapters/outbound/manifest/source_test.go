package manifest_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/depguard/depguard/internal/adapters/outbound/manifest"
	"github.com/depguard/depguard/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, root, rel, content string) {
	t.Helper()
	full := filepath.Join(root, filepath.FromSlash(rel))
	require.NoError(t, os.MkdirAll(filepath.Dir(full), 0755))
	require.NoError(t, os.WriteFile(full, []byte(content), 0644))
}

func depByName(t *testing.T, m domain.ManifestModel, name string) domain.DependencyDecl {
	t.Helper()
	for _, d := range m.Dependencies {
		if d.Name == name {
			return d
		}
	}
	t.Fatalf("dependency %s not found in %s", name, m.Path)
	return domain.DependencyDecl{}
}

func TestSource_Build_Workspace(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "Cargo.toml", `
[workspace]
members = ["crates/*"]
exclude = ["crates/vendored"]

[workspace.dependencies]
serde = { version = "1.0", default-features = false }
`)
	writeFile(t, root, "crates/app/Cargo.toml", `
[package]
name = "app"

[dependencies]
serde = { workspace = true }
tokio = "1.38"

[dev-dependencies]
proptest = "1.4"
`)
	writeFile(t, root, "crates/vendored/Cargo.toml", `
[package]
name = "vendored"
`)
	writeFile(t, root, "target/debug/Cargo.toml", `[package]
name = "junk"
`)

	model, err := manifest.New().Build(root, nil)
	require.NoError(t, err)

	require.Len(t, model.Manifests, 2, "root plus one member; excluded and build output skipped")
	assert.Equal(t, "Cargo.toml", model.Manifests[0].Path)
	assert.Equal(t, "crates/app/Cargo.toml", model.Manifests[1].Path)

	require.Contains(t, model.WorkspaceDependencies, "serde")
	assert.Equal(t, "1.0", model.WorkspaceDependencies["serde"].Version)

	app := model.Manifests[1]
	assert.Equal(t, "app", app.PackageName())
	assert.True(t, app.IsPublishable(), "publish defaults to true")

	serde := depByName(t, app, "serde")
	assert.True(t, serde.Spec.Workspace)
	assert.Equal(t, domain.DepKindNormal, serde.Kind)

	tokio := depByName(t, app, "tokio")
	assert.Equal(t, "1.38", tokio.Spec.Version, "string shorthand")

	proptest := depByName(t, app, "proptest")
	assert.Equal(t, domain.DepKindDev, proptest.Kind)

	require.NotNil(t, serde.Location)
	assert.Equal(t, "crates/app/Cargo.toml", serde.Location.Path)
}

func TestSource_Build_PublishForms(t *testing.T) {
	tests := []struct {
		name    string
		pkg     string
		publish bool
	}{
		{"absent defaults to publishable", "[package]\nname = \"a\"\n", true},
		{"false", "[package]\nname = \"a\"\npublish = false\n", false},
		{"empty registry list", "[package]\nname = \"a\"\npublish = []\n", false},
		{"registry list", "[package]\nname = \"a\"\npublish = [\"internal\"]\n", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root := t.TempDir()
			writeFile(t, root, "Cargo.toml", tt.pkg)

			model, err := manifest.New().Build(root, nil)
			require.NoError(t, err)
			require.Len(t, model.Manifests, 1)
			assert.Equal(t, tt.publish, model.Manifests[0].IsPublishable())
		})
	}
}

func TestSource_Build_SpecFields(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "Cargo.toml", `
[package]
name = "app"

[dependencies]
local = { path = "../local", version = "0.1.0", default-features = false }
pinned = { git = "https://example.com/repo.git", tag = "v1.2.3" }
extra = { version = "2.0", optional = true }

[target.'cfg(unix)'.dependencies]
nix = "0.29"

[features]
extras = ["dep:extra"]
`)

	model, err := manifest.New().Build(root, nil)
	require.NoError(t, err)
	require.Len(t, model.Manifests, 1)
	m := model.Manifests[0]

	local := depByName(t, m, "local")
	assert.Equal(t, "../local", local.Spec.Path)
	assert.Equal(t, "0.1.0", local.Spec.Version)
	require.NotNil(t, local.Spec.DefaultFeatures)
	assert.False(t, *local.Spec.DefaultFeatures)

	pinned := depByName(t, m, "pinned")
	assert.Equal(t, "https://example.com/repo.git", pinned.Spec.Git)
	assert.Equal(t, "v1.2.3", pinned.Spec.Tag)

	extra := depByName(t, m, "extra")
	assert.True(t, extra.Spec.Optional)

	nix := depByName(t, m, "nix")
	assert.Equal(t, "cfg(unix)", nix.Target)
	assert.Equal(t, "0.29", nix.Spec.Version)

	assert.Equal(t, []string{"dep:extra"}, m.Features["extras"])
}

func TestSource_Build_DiffScope(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "Cargo.toml", `
[workspace]
members = ["crates/*"]
`)
	writeFile(t, root, "crates/a/Cargo.toml", "[package]\nname = \"a\"\n")
	writeFile(t, root, "crates/b/Cargo.toml", "[package]\nname = \"b\"\n")

	model, err := manifest.New().Build(root, []string{"crates/b/Cargo.toml", "src/main.rs"})
	require.NoError(t, err)

	require.Len(t, model.Manifests, 2)
	assert.Equal(t, "Cargo.toml", model.Manifests[0].Path, "root stays in scope")
	assert.Equal(t, "crates/b/Cargo.toml", model.Manifests[1].Path)
}

func TestSource_Build_Errors(t *testing.T) {
	t.Run("no manifests", func(t *testing.T) {
		_, err := manifest.New().Build(t.TempDir(), nil)
		assert.Error(t, err)
	})

	t.Run("invalid toml", func(t *testing.T) {
		root := t.TempDir()
		writeFile(t, root, "Cargo.toml", "[package\nname = \"broken\"")

		_, err := manifest.New().Build(root, nil)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "Cargo.toml")
	})
}
