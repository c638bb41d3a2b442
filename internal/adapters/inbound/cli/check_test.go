package cli_test

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/depguard/depguard/internal/adapters/inbound/cli"
	"github.com/depguard/depguard/internal/application"
	"github.com/depguard/depguard/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFixture(t *testing.T, root, rel, content string) {
	t.Helper()
	full := filepath.Join(root, filepath.FromSlash(rel))
	require.NoError(t, os.MkdirAll(filepath.Dir(full), 0755))
	require.NoError(t, os.WriteFile(full, []byte(content), 0644))
}

func dirtyWorkspace(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	writeFixture(t, root, "Cargo.toml", `
[package]
name = "app"

[dependencies]
serde = "*"
`)
	return root
}

func cleanWorkspace(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	writeFixture(t, root, "Cargo.toml", `
[package]
name = "app"

[dependencies]
serde = "1.0"
`)
	return root
}

func runCheck(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	root := cli.NewRootCmdForTest()
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(append([]string{"check"}, args...))
	err := root.Execute()
	return out.String(), err
}

func TestCheckCmd_FailVerdictCarriesExitCode(t *testing.T) {
	output, err := runCheck(t, "--path", dirtyWorkspace(t))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "exit status 2")
	assert.Contains(t, output, "wildcard version")
}

func TestCheckCmd_CleanWorkspacePasses(t *testing.T) {
	output, err := runCheck(t, "--path", cleanWorkspace(t))

	require.NoError(t, err)
	assert.Contains(t, output, "No findings.")
}

func TestCheckCmd_JSONFormat(t *testing.T) {
	output, err := runCheck(t, "--path", dirtyWorkspace(t), "--format", "json")
	require.Error(t, err, "verdict still drives the exit code")

	var report application.ReportEnvelope
	require.NoError(t, json.Unmarshal([]byte(output), &report))
	assert.Equal(t, application.ReportSchema, report.Schema)
	assert.Equal(t, domain.VerdictFail, report.Verdict)
	require.Len(t, report.Findings, 1)
	assert.Equal(t, domain.CodeWildcardVersion, report.Findings[0].Code)
}

func TestCheckCmd_WarnProfileFailsOnWarnings(t *testing.T) {
	_, err := runCheck(t, "--path", dirtyWorkspace(t), "--profile", "warn", "--format", "json")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "exit status 2", "warn profile fails on warnings")
}

func TestCheckCmd_CompatProfileExitsOne(t *testing.T) {
	_, err := runCheck(t, "--path", dirtyWorkspace(t), "--profile", "compat", "--format", "json")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "exit status 1", "compat reports warnings without failing")
}

func TestCheckCmd_AdvisorySuppressesExitCode(t *testing.T) {
	output, err := runCheck(t, "--path", dirtyWorkspace(t), "--advisory")

	require.NoError(t, err)
	assert.Contains(t, output, "wildcard version")
}

func TestCheckCmd_ReportOutAndMarkdown(t *testing.T) {
	root := dirtyWorkspace(t)
	reportPath := filepath.Join(root, "report.json")
	mdPath := filepath.Join(root, "report.md")

	_, err := runCheck(t, "--path", root, "--advisory",
		"--report-out", reportPath, "--write-markdown", mdPath)
	require.NoError(t, err)

	data, err := os.ReadFile(reportPath)
	require.NoError(t, err)
	var report application.ReportEnvelope
	require.NoError(t, json.Unmarshal(data, &report))
	assert.Equal(t, domain.VerdictFail, report.Verdict)

	md, err := os.ReadFile(mdPath)
	require.NoError(t, err)
	assert.Contains(t, string(md), "# depguard report")
}

func TestCheckCmd_GHAFormat(t *testing.T) {
	output, err := runCheck(t, "--path", dirtyWorkspace(t), "--format", "gha", "--advisory")

	require.NoError(t, err)
	assert.Contains(t, output, "::error ")
	assert.Contains(t, output, "file=Cargo.toml")
}

func TestCheckCmd_RuntimeErrorReportsAndFails(t *testing.T) {
	root := t.TempDir()
	writeFixture(t, root, "Cargo.toml", "[package\nbroken")

	output, err := runCheck(t, "--path", root, "--format", "json")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "exit status 2")
	assert.Contains(t, output, domain.CheckToolRuntime)
}

func TestCheckCmd_UnknownFormat(t *testing.T) {
	_, err := runCheck(t, "--path", cleanWorkspace(t), "--format", "xml")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown format")
}
