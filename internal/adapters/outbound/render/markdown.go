// Package render produces the plain-text report formats: a markdown
// summary for PR comments and job summaries, and GitHub Actions workflow
// annotations.
package render

import (
	"fmt"
	"strings"

	"github.com/depguard/depguard/internal/application"
)

// Markdown renders the report as a markdown document suitable for a PR
// comment or a GitHub job summary.
func Markdown(report *application.ReportEnvelope) string {
	var b strings.Builder

	b.WriteString("# depguard report\n\n")
	b.WriteString(fmt.Sprintf("**Verdict:** %s %s\n\n", verdictEmoji(report), report.Verdict))

	b.WriteString(fmt.Sprintf("- Profile: `%s`\n", report.Stats.Profile))
	b.WriteString(fmt.Sprintf("- Scope: `%s`\n", report.Stats.Scope))
	b.WriteString(fmt.Sprintf("- Manifests scanned: %d\n", report.Stats.ManifestsScanned))
	b.WriteString(fmt.Sprintf("- Dependencies scanned: %d\n", report.Stats.DependenciesScanned))
	if report.CommitHash != "" {
		b.WriteString(fmt.Sprintf("- Commit: `%s`\n", report.CommitHash))
	}
	if report.Trend != nil {
		b.WriteString(fmt.Sprintf("- Trend: %d new, %d recurring, %d resolved\n",
			report.Trend.New, report.Trend.Recurring, report.Trend.Resolved))
	}
	b.WriteString("\n")

	if len(report.Findings) == 0 {
		b.WriteString("No findings.\n")
		return b.String()
	}

	b.WriteString(fmt.Sprintf("## Findings (%d errors, %d warnings, %d info)\n\n",
		report.Counts.Error, report.Counts.Warning, report.Counts.Info))

	b.WriteString("| Severity | Location | Check | Message |\n")
	b.WriteString("|---|---|---|---|\n")
	for _, f := range report.Findings {
		location := "workspace"
		if f.Location != nil {
			location = f.Location.Path
			if f.Location.Line > 0 {
				location = fmt.Sprintf("%s:%d", location, f.Location.Line)
			}
		}
		b.WriteString(fmt.Sprintf("| %s | `%s` | `%s` | %s |\n",
			f.Severity, location, f.CheckID, escapeCell(f.Message)))
	}

	if report.Stats.TruncatedReason != "" {
		b.WriteString(fmt.Sprintf("\n_%s_\n", report.Stats.TruncatedReason))
	}

	return b.String()
}

func escapeCell(s string) string {
	s = strings.ReplaceAll(s, "|", "\\|")
	return strings.ReplaceAll(s, "\n", " ")
}

func verdictEmoji(report *application.ReportEnvelope) string {
	switch report.Verdict.String() {
	case "fail":
		return "❌"
	case "warn":
		return "⚠️"
	default:
		return "✅"
	}
}
