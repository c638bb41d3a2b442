package config_test

import (
	"os"
	"path/filepath"
	"testing"

	appconfig "github.com/depguard/depguard/internal/adapters/outbound/config"
	"github.com/depguard/depguard/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, dir, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".depguard.yaml"), []byte(content), 0644))
}

func TestYAMLLoader_MissingFileReturnsZeroConfig(t *testing.T) {
	dir := t.TempDir()
	loader := appconfig.New()

	cfg, err := loader.Load(dir)
	require.NoError(t, err)
	assert.Equal(t, domain.Config{}, cfg)
}

func TestYAMLLoader_ValidYAML(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, `
profile: warn
scope: diff
max_findings: 50
checks:
  deps.no_wildcards:
    severity: error
    allow:
      - internal-*
  deps.optional_unused:
    enabled: false
`)
	loader := appconfig.New()

	cfg, err := loader.Load(dir)
	require.NoError(t, err)

	assert.Equal(t, "warn", cfg.Profile)
	assert.Equal(t, "diff", cfg.Scope)
	require.NotNil(t, cfg.MaxFindings)
	assert.Equal(t, 50, *cfg.MaxFindings)

	wildcards := cfg.Checks["deps.no_wildcards"]
	require.NotNil(t, wildcards.Severity)
	assert.Equal(t, "error", *wildcards.Severity)
	assert.Equal(t, []string{"internal-*"}, wildcards.Allow)

	optional := cfg.Checks["deps.optional_unused"]
	require.NotNil(t, optional.Enabled)
	assert.False(t, *optional.Enabled)
}

func TestYAMLLoader_InvalidYAML(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, `{{{invalid yaml`)
	loader := appconfig.New()

	_, err := loader.Load(dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing .depguard.yaml")
}
