package domain

import (
	"fmt"
	"math"
	"sort"
	"strings"
)

// Check is one independent, pure policy rule. Run appends findings for
// every violation it sees; it must not mutate the model or config, and it
// must no-op when its policy is disabled or absent.
type Check struct {
	ID  string
	Run func(model *WorkspaceModel, cfg *EffectiveConfig, out *[]Finding)
}

// Evaluate runs every check in registration order and post-processes the
// result: deterministic sort, truncation to cfg.MaxFindings, verdict,
// severity counts, and scan statistics. It is total: given a valid model
// and config it never fails.
//
// The verdict and counts are computed over the emitted (post-truncation)
// findings. A high-severity finding dropped by truncation does not affect
// the verdict; bounding output size takes priority over exhaustive verdict
// accuracy.
func Evaluate(model *WorkspaceModel, cfg *EffectiveConfig, checks []Check) *DomainReport {
	var findings []Finding
	for _, check := range checks {
		check.Run(model, cfg, &findings)
	}

	// Deterministic ordering before truncation.
	sort.Slice(findings, func(i, j int) bool {
		return CompareFindings(findings[i], findings[j]) < 0
	})

	total := len(findings)

	emitted := findings
	truncatedReason := ""
	if cfg.MaxFindings > 0 && len(emitted) > cfg.MaxFindings {
		emitted = emitted[:cfg.MaxFindings]
		truncatedReason = fmt.Sprintf("findings truncated to max_findings=%d", cfg.MaxFindings)
	}

	depsScanned := 0
	for i := range model.Manifests {
		depsScanned += len(model.Manifests[i].Dependencies)
	}

	return &DomainReport{
		Verdict:  computeVerdict(emitted, cfg.FailOn),
		Findings: emitted,
		Counts:   CountSeverities(emitted),
		Stats: ScanStats{
			Scope:               cfg.Scope.String(),
			Profile:             cfg.Profile,
			ManifestsScanned:    len(model.Manifests),
			DependenciesScanned: depsScanned,
			FindingsTotal:       total,
			FindingsEmitted:     len(emitted),
			TruncatedReason:     truncatedReason,
		},
	}
}

func computeVerdict(findings []Finding, failOn FailOn) Verdict {
	hasWarning := false
	for _, f := range findings {
		switch f.Severity {
		case SeverityError:
			return VerdictFail
		case SeverityWarning:
			hasWarning = true
		}
	}
	if hasWarning {
		if failOn == FailOnWarning {
			return VerdictFail
		}
		return VerdictWarn
	}
	return VerdictPass
}

// missingPathSentinel sorts after every real repo-relative path.
const missingPathSentinel = "~"

// CompareFindings is the total ordering imposed on findings:
// severity rank (error first), location path (absent last), location line
// (absent last), check id, code, message. It is independent of check
// execution and insertion order.
func CompareFindings(a, b Finding) int {
	if d := severityRank(a.Severity) - severityRank(b.Severity); d != 0 {
		return d
	}

	ap, al := locationKey(a.Location)
	bp, bl := locationKey(b.Location)
	if d := strings.Compare(ap, bp); d != 0 {
		return d
	}
	if al != bl {
		if al < bl {
			return -1
		}
		return 1
	}

	if d := strings.Compare(a.CheckID, b.CheckID); d != 0 {
		return d
	}
	if d := strings.Compare(a.Code, b.Code); d != 0 {
		return d
	}
	return strings.Compare(a.Message, b.Message)
}

func severityRank(s Severity) int {
	switch s {
	case SeverityError:
		return 0
	case SeverityWarning:
		return 1
	default:
		return 2
	}
}

func locationKey(loc *Location) (string, int) {
	if loc == nil {
		return missingPathSentinel, math.MaxInt
	}
	line := loc.Line
	if line == 0 {
		line = math.MaxInt
	}
	return loc.Path, line
}
