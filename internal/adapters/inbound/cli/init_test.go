package cli_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/depguard/depguard/internal/adapters/inbound/cli"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitCmd_CreatesConfigFile(t *testing.T) {
	tmpDir := t.TempDir()

	root := cli.NewRootCmdForTest()
	root.SetArgs([]string{"init", tmpDir})
	require.NoError(t, root.Execute())

	data, err := os.ReadFile(filepath.Join(tmpDir, ".depguard.yaml"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "profile: strict")
	assert.Contains(t, string(data), "deps.no_wildcards")
}

func TestInitCmd_WarnProfile(t *testing.T) {
	tmpDir := t.TempDir()

	root := cli.NewRootCmdForTest()
	root.SetArgs([]string{"init", tmpDir, "--profile", "warn"})
	require.NoError(t, root.Execute())

	data, err := os.ReadFile(filepath.Join(tmpDir, ".depguard.yaml"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "profile: warn")
}

func TestInitCmd_FailsIfExists(t *testing.T) {
	tmpDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, ".depguard.yaml"), []byte("existing"), 0644))

	root := cli.NewRootCmdForTest()
	root.SetArgs([]string{"init", tmpDir})
	err := root.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")
}

func TestInitCmd_ForceOverwrites(t *testing.T) {
	tmpDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, ".depguard.yaml"), []byte("old"), 0644))

	root := cli.NewRootCmdForTest()
	root.SetArgs([]string{"init", tmpDir, "--force"})
	require.NoError(t, root.Execute())

	data, err := os.ReadFile(filepath.Join(tmpDir, ".depguard.yaml"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "profile:")
}

func TestInitCmd_InvalidProfile(t *testing.T) {
	root := cli.NewRootCmdForTest()
	root.SetArgs([]string{"init", t.TempDir(), "--profile", "paranoid"})
	err := root.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown profile")
}

func TestInitCmd_GeneratedConfigLoads(t *testing.T) {
	tmpDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "Cargo.toml"),
		[]byte("[package]\nname = \"a\"\n"), 0644))

	root := cli.NewRootCmdForTest()
	root.SetArgs([]string{"init", tmpDir})
	require.NoError(t, root.Execute())

	check := cli.NewRootCmdForTest()
	check.SetArgs([]string{"check", "--path", tmpDir})
	assert.NoError(t, check.Execute())
}
