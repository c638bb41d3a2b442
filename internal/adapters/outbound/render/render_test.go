package render_test

import (
	"strings"
	"testing"

	"github.com/depguard/depguard/internal/adapters/outbound/render"
	"github.com/depguard/depguard/internal/application"
	"github.com/depguard/depguard/internal/domain"
	"github.com/stretchr/testify/assert"
)

func sampleReport() *application.ReportEnvelope {
	return &application.ReportEnvelope{
		Schema:  application.ReportSchema,
		Tool:    application.ToolMeta{Name: "depguard", Version: "test"},
		Verdict: domain.VerdictFail,
		Counts:  domain.SeverityCounts{Error: 1, Warning: 1},
		Stats: domain.ScanStats{
			Scope:               "repo",
			Profile:             "strict",
			ManifestsScanned:    2,
			DependenciesScanned: 14,
			FindingsTotal:       2,
			FindingsEmitted:     2,
		},
		Findings: []domain.Finding{
			{
				Severity: domain.SeverityError,
				CheckID:  domain.CheckNoWildcards,
				Code:     domain.CodeWildcardVersion,
				Message:  "dependency 'serde' uses a wildcard version: *",
				Location: &domain.Location{Path: "crates/app/Cargo.toml"},
			},
			{
				Severity: domain.SeverityWarning,
				CheckID:  domain.CheckNoMultipleVersions,
				Code:     domain.CodeDuplicateDifferentVersions,
				Message:  "crate 'tokio' has multiple versions across workspace: 1.0, 1.38",
			},
		},
	}
}

func TestMarkdown(t *testing.T) {
	md := render.Markdown(sampleReport())

	assert.Contains(t, md, "# depguard report")
	assert.Contains(t, md, "fail")
	assert.Contains(t, md, "`strict`")
	assert.Contains(t, md, "| Severity | Location | Check | Message |")
	assert.Contains(t, md, "crates/app/Cargo.toml")
	assert.Contains(t, md, "workspace", "locationless findings labeled workspace")
}

func TestMarkdown_NoFindings(t *testing.T) {
	report := sampleReport()
	report.Findings = nil
	report.Verdict = domain.VerdictPass

	md := render.Markdown(report)
	assert.Contains(t, md, "No findings.")
	assert.NotContains(t, md, "| Severity |")
}

func TestAnnotations(t *testing.T) {
	out := render.Annotations(sampleReport())
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")

	assert.Len(t, lines, 2)
	assert.Contains(t, lines[0], "::error ")
	assert.Contains(t, lines[0], "file=crates/app/Cargo.toml")
	assert.Contains(t, lines[0], "title=deps.no_wildcards")
	assert.Contains(t, lines[1], "::warning ")
}

func TestAnnotations_EscapesMessages(t *testing.T) {
	report := sampleReport()
	report.Findings = []domain.Finding{{
		Severity: domain.SeverityError,
		CheckID:  "deps.no_wildcards",
		Message:  "100% broken\nsecond line",
	}}

	out := render.Annotations(report)
	assert.Contains(t, out, "100%25 broken%0Asecond line")
	assert.NotContains(t, strings.TrimSuffix(out, "\n"), "\n100")
}

func TestAnnotations_CapsOutput(t *testing.T) {
	report := sampleReport()
	report.Findings = nil
	for i := 0; i < 15; i++ {
		report.Findings = append(report.Findings, domain.Finding{
			Severity: domain.SeverityError,
			CheckID:  "deps.no_wildcards",
			Message:  "finding",
		})
	}

	out := render.Annotations(report)
	assert.Equal(t, 10, strings.Count(out, "::error "))
	assert.Contains(t, out, "5 further findings omitted")
}
