package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/depguard/depguard/internal/application"
	"github.com/depguard/depguard/internal/domain"
)

var (
	accent  = lipgloss.Color("#D97706") // amber
	fg      = lipgloss.Color("#E8E6E3") // warm light gray
	dim     = lipgloss.Color("#6B7280") // muted gray
	faint   = lipgloss.Color("#3F3F46") // very dim
	success = lipgloss.Color("#22C55E") // green
	danger  = lipgloss.Color("#EF4444") // red
	warning = lipgloss.Color("#F59E0B") // amber-yellow
	info    = lipgloss.Color("#8B949E") // soft blue-gray
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(accent).
			Align(lipgloss.Center)

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(accent).
			Padding(1, 4).
			Align(lipgloss.Center).
			Width(68)

	dimStyle      = lipgloss.NewStyle().Foreground(dim)
	faintStyle    = lipgloss.NewStyle().Foreground(faint)
	passStyle     = lipgloss.NewStyle().Foreground(success)
	failStyle     = lipgloss.NewStyle().Foreground(danger)
	warnStyle     = lipgloss.NewStyle().Foreground(warning)
	errorTagStyle = lipgloss.NewStyle().Foreground(danger).Bold(true)
	warnTagStyle  = lipgloss.NewStyle().Foreground(warning).Bold(true)
	infoTagStyle  = lipgloss.NewStyle().Foreground(info)
	fileStyle     = lipgloss.NewStyle().Foreground(dim)
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(fg)
	hintStyle     = lipgloss.NewStyle().Foreground(dim).Italic(true)
	separatorLine = faintStyle.Render(strings.Repeat("─", 64))
)

// RenderReport renders a report envelope as a styled terminal string.
func RenderReport(report *application.ReportEnvelope) string {
	var b strings.Builder

	title := headerStyle.Render("depguard")
	subtitle := dimStyle.Render("Dependency Policy Report")
	verdictStyled := lipgloss.NewStyle().
		Bold(true).
		Foreground(verdictColor(report.Verdict)).
		Render(strings.ToUpper(report.Verdict.String()))

	meta := dimStyle.Render(fmt.Sprintf("profile %s · scope %s", report.Stats.Profile, report.Stats.Scope))
	b.WriteString(boxStyle.Render(title + "\n" + subtitle + "\n\n" + verdictStyled + "\n" + meta))
	b.WriteString("\n\n")

	b.WriteString(fmt.Sprintf("  %s\n",
		dimStyle.Render(fmt.Sprintf("%d manifests · %d dependencies scanned",
			report.Stats.ManifestsScanned, report.Stats.DependenciesScanned)),
	))
	if report.Trend != nil {
		b.WriteString(fmt.Sprintf("  %s\n",
			dimStyle.Render(fmt.Sprintf("vs last run: %d new · %d recurring · %d resolved",
				report.Trend.New, report.Trend.Recurring, report.Trend.Resolved)),
		))
	}
	b.WriteString("\n  " + separatorLine + "\n\n")

	if len(report.Findings) == 0 {
		b.WriteString("  " + passStyle.Render("No findings.") + "\n")
		return b.String()
	}

	b.WriteString("  " + titleStyle.Render("Findings") + "  ")
	if report.Counts.Error > 0 {
		b.WriteString(errorTagStyle.Render(fmt.Sprintf("%d errors", report.Counts.Error)) + "  ")
	}
	if report.Counts.Warning > 0 {
		b.WriteString(warnTagStyle.Render(fmt.Sprintf("%d warnings", report.Counts.Warning)) + "  ")
	}
	if report.Counts.Info > 0 {
		b.WriteString(infoTagStyle.Render(fmt.Sprintf("%d info", report.Counts.Info)))
	}
	b.WriteString("\n\n")

	for _, f := range report.Findings {
		renderFinding(&b, f)
	}

	if report.Stats.TruncatedReason != "" {
		b.WriteString("\n  " + hintStyle.Render(report.Stats.TruncatedReason) + "\n")
	}

	return b.String()
}

func renderFinding(b *strings.Builder, f domain.Finding) {
	bullet := severityBullet(f.Severity)

	location := ""
	if f.Location != nil {
		location = f.Location.Path
		if f.Location.Line > 0 {
			location = fmt.Sprintf("%s:%d", location, f.Location.Line)
		}
	} else {
		location = "workspace"
	}

	b.WriteString(fmt.Sprintf("    %s %s  %s\n", bullet, fileStyle.Render(location), f.Message))
	b.WriteString(fmt.Sprintf("      %s\n", faintStyle.Render(f.CheckID+" · "+f.Code)))
	if f.Help != "" {
		b.WriteString(fmt.Sprintf("      %s\n", hintStyle.Render(f.Help)))
	}
}

// RenderExplanation renders one check's documentation page.
func RenderExplanation(identifier string, exp domain.Explanation) string {
	var b strings.Builder

	b.WriteString(boxStyle.Render(headerStyle.Render(exp.Title) + "\n" + dimStyle.Render(identifier)))
	b.WriteString("\n\n")

	b.WriteString("  " + titleStyle.Render("What it detects") + "\n")
	writeIndented(&b, exp.Description)
	b.WriteString("\n  " + titleStyle.Render("How to fix") + "\n")
	writeIndented(&b, exp.Remediation)

	b.WriteString("\n  " + titleStyle.Render("Before") + "\n")
	writeIndented(&b, faintStyle.Render(exp.Before))
	b.WriteString("\n  " + titleStyle.Render("After") + "\n")
	writeIndented(&b, passStyle.Render(exp.After))

	return b.String()
}

func writeIndented(b *strings.Builder, text string) {
	for _, line := range strings.Split(text, "\n") {
		b.WriteString("  " + line + "\n")
	}
}

func severityBullet(s domain.Severity) string {
	switch s {
	case domain.SeverityError:
		return failStyle.Render("●")
	case domain.SeverityWarning:
		return warnStyle.Render("●")
	default:
		return infoTagStyle.Render("●")
	}
}

func verdictColor(v domain.Verdict) lipgloss.Color {
	switch v {
	case domain.VerdictFail:
		return danger
	case domain.VerdictWarn:
		return warning
	default:
		return success
	}
}
