package application

import "github.com/depguard/depguard/internal/domain"

// ReportSchema identifies the envelope format. Consumers should reject
// schemas they do not know.
const ReportSchema = "depguard.report.v1"

// ToolMeta identifies the producing tool inside a report.
type ToolMeta struct {
	Name    string `json:"name"`
	Version string `json:"version"`
}

// Trend compares the current run's fingerprints against the previous
// recorded run.
type Trend struct {
	New       int `json:"new"`
	Recurring int `json:"recurring"`
	Resolved  int `json:"resolved"`
}

// ReportEnvelope is the stable machine-readable report wrapped around the
// engine output. It is what `check --format json` prints and what
// --report-out writes.
type ReportEnvelope struct {
	Schema      string   `json:"schema"`
	Tool        ToolMeta `json:"tool"`
	GeneratedAt string   `json:"generated_at"`

	RepoRoot   string `json:"repo_root"`
	CommitHash string `json:"commit_hash,omitempty"`

	Verdict  domain.Verdict        `json:"verdict"`
	Counts   domain.SeverityCounts `json:"counts"`
	Stats    domain.ScanStats      `json:"stats"`
	Findings []domain.Finding      `json:"findings"`

	// Trend is present when a previous run was recorded for this repo.
	Trend *Trend `json:"trend,omitempty"`
}
