package domain

// SeverityCounts aggregates emitted findings by severity.
type SeverityCounts struct {
	Info    int `json:"info"`
	Warning int `json:"warning"`
	Error   int `json:"error"`
}

// CountSeverities tallies a finding slice.
func CountSeverities(findings []Finding) SeverityCounts {
	var counts SeverityCounts
	for _, f := range findings {
		switch f.Severity {
		case SeverityError:
			counts.Error++
		case SeverityWarning:
			counts.Warning++
		default:
			counts.Info++
		}
	}
	return counts
}

// ScanStats summarizes one evaluation run.
type ScanStats struct {
	Scope   string `json:"scope"`
	Profile string `json:"profile"`

	ManifestsScanned    int `json:"manifests_scanned"`
	DependenciesScanned int `json:"dependencies_scanned"`

	// FindingsTotal counts findings before truncation; FindingsEmitted
	// counts what the report carries.
	FindingsTotal   int `json:"findings_total"`
	FindingsEmitted int `json:"findings_emitted"`

	TruncatedReason string `json:"truncated_reason,omitempty"`
}

// DomainReport is the engine's output: verdict, sorted and truncated
// findings, and aggregate statistics. Constructed once per run.
type DomainReport struct {
	Verdict  Verdict        `json:"verdict"`
	Findings []Finding      `json:"findings"`
	Counts   SeverityCounts `json:"counts"`
	Stats    ScanStats      `json:"stats"`
}
