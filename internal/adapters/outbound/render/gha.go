package render

import (
	"fmt"
	"strings"

	"github.com/depguard/depguard/internal/application"
	"github.com/depguard/depguard/internal/domain"
)

// GitHub fans annotations out to the PR UI but drops everything past a
// per-step limit, so emit at most this many and summarize the rest.
const maxAnnotations = 10

// Annotations renders the report as GitHub Actions workflow commands, one
// annotation per finding.
func Annotations(report *application.ReportEnvelope) string {
	var b strings.Builder

	for i, f := range report.Findings {
		if i == maxAnnotations {
			b.WriteString(fmt.Sprintf("::notice::depguard: %d further findings omitted from annotations\n",
				len(report.Findings)-maxAnnotations))
			break
		}
		b.WriteString(annotation(f))
	}

	return b.String()
}

func annotation(f domain.Finding) string {
	command := "notice"
	switch f.Severity {
	case domain.SeverityError:
		command = "error"
	case domain.SeverityWarning:
		command = "warning"
	}

	var props []string
	if f.Location != nil {
		props = append(props, "file="+escapeProperty(f.Location.Path))
		if f.Location.Line > 0 {
			props = append(props, fmt.Sprintf("line=%d", f.Location.Line))
		}
	}
	props = append(props, "title="+escapeProperty(f.CheckID))

	return fmt.Sprintf("::%s %s::%s\n", command, strings.Join(props, ","), escapeData(f.Message))
}

// escapeData escapes an annotation message per the workflow command rules.
func escapeData(s string) string {
	s = strings.ReplaceAll(s, "%", "%25")
	s = strings.ReplaceAll(s, "\r", "%0D")
	return strings.ReplaceAll(s, "\n", "%0A")
}

// escapeProperty additionally escapes the property delimiters.
func escapeProperty(s string) string {
	s = escapeData(s)
	s = strings.ReplaceAll(s, ":", "%3A")
	return strings.ReplaceAll(s, ",", "%2C")
}
