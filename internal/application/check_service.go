package application

import (
	"fmt"
	"time"

	"github.com/depguard/depguard/internal/domain"
	"github.com/depguard/depguard/internal/domain/checks"
)

// CheckService orchestrates the check pipeline:
// load config -> resolve policy -> build workspace model -> evaluate -> envelope.
type CheckService struct {
	config    domain.ConfigSource
	workspace domain.WorkspaceSource
	git       domain.GitInfo
	history   domain.RunHistory
	checks    []domain.Check

	tool ToolMeta
	now  func() time.Time
}

func NewCheckService(
	config domain.ConfigSource,
	workspace domain.WorkspaceSource,
	git domain.GitInfo,
	history domain.RunHistory,
	tool ToolMeta,
) *CheckService {
	return &CheckService{
		config:    config,
		workspace: workspace,
		git:       git,
		history:   history,
		checks:    checks.Registry(),
		tool:      tool,
		now:       time.Now,
	}
}

// CheckOptions are the per-invocation knobs layered over the repo config.
// Zero values mean "not set".
type CheckOptions struct {
	RepoRoot    string
	Profile     string
	Scope       string
	MaxFindings int

	// Base is the git revision diff scope compares against. Defaults to
	// HEAD.
	Base string
}

// Check runs the full pipeline and always produces a report: pipeline
// failures (unreadable config, broken manifests, git errors) surface as a
// failing report with a single runtime finding rather than as an error.
func (s *CheckService) Check(opts CheckOptions) *ReportEnvelope {
	envelope, err := s.run(opts)
	if err != nil {
		return s.failureReport(opts, err)
	}
	return envelope
}

func (s *CheckService) run(opts CheckOptions) (*ReportEnvelope, error) {
	rawConfig, err := s.config.Load(opts.RepoRoot)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	cfg, err := domain.Resolve(rawConfig, domain.Overrides{
		Profile:     opts.Profile,
		Scope:       opts.Scope,
		MaxFindings: opts.MaxFindings,
	})
	if err != nil {
		return nil, fmt.Errorf("resolving config: %w", err)
	}

	var changedFiles []string
	if cfg.Scope == domain.ScopeDiff {
		base := opts.Base
		if base == "" {
			base = "HEAD"
		}
		changedFiles, err = s.git.ChangedFiles(opts.RepoRoot, base)
		if err != nil {
			return nil, fmt.Errorf("resolving changed files against %s: %w", base, err)
		}
	}

	model, err := s.workspace.Build(opts.RepoRoot, changedFiles)
	if err != nil {
		return nil, fmt.Errorf("building workspace model: %w", err)
	}

	report := domain.Evaluate(model, cfg, s.checks)

	envelope := &ReportEnvelope{
		Schema:      ReportSchema,
		Tool:        s.tool,
		GeneratedAt: s.now().UTC().Format(time.RFC3339),
		RepoRoot:    model.RepoRoot,
		Verdict:     report.Verdict,
		Counts:      report.Counts,
		Stats:       report.Stats,
		Findings:    report.Findings,
	}
	if s.git.IsGitRepo(opts.RepoRoot) {
		if hash, err := s.git.CommitHash(opts.RepoRoot); err == nil {
			envelope.CommitHash = hash
		}
	}

	s.recordRun(opts.RepoRoot, envelope)
	return envelope, nil
}

// recordRun computes the trend against the previously saved run and
// appends the current run to history. History is best effort; a broken or
// missing history store never fails a check.
func (s *CheckService) recordRun(repoRoot string, envelope *ReportEnvelope) {
	if s.history == nil {
		return
	}

	entries, err := s.history.Load(repoRoot)
	if err == nil && len(entries) > 0 {
		previous := make(map[string]bool)
		for _, fp := range entries[len(entries)-1].Fingerprints {
			previous[fp] = true
		}

		trend := &Trend{}
		current := make(map[string]bool)
		for _, f := range envelope.Findings {
			if f.Fingerprint == "" {
				continue
			}
			current[f.Fingerprint] = true
			if previous[f.Fingerprint] {
				trend.Recurring++
			} else {
				trend.New++
			}
		}
		for fp := range previous {
			if !current[fp] {
				trend.Resolved++
			}
		}
		envelope.Trend = trend
	}

	fingerprints := make([]string, 0, len(envelope.Findings))
	for _, f := range envelope.Findings {
		if f.Fingerprint != "" {
			fingerprints = append(fingerprints, f.Fingerprint)
		}
	}
	_ = s.history.Save(repoRoot, domain.RunEntry{
		Timestamp:    envelope.GeneratedAt,
		CommitHash:   envelope.CommitHash,
		Profile:      envelope.Stats.Profile,
		Verdict:      envelope.Verdict,
		Counts:       envelope.Counts,
		Fingerprints: fingerprints,
	})
}

// failureReport wraps a pipeline error in a failing report so callers and
// CI always get the same envelope shape.
func (s *CheckService) failureReport(opts CheckOptions, runErr error) *ReportEnvelope {
	finding := domain.Finding{
		Severity: domain.SeverityError,
		CheckID:  domain.CheckToolRuntime,
		Code:     domain.CodeRuntimeError,
		Message:  runErr.Error(),
		Help:     "The tool could not complete the scan. Fix the underlying error and rerun.",
	}

	return &ReportEnvelope{
		Schema:      ReportSchema,
		Tool:        s.tool,
		GeneratedAt: s.now().UTC().Format(time.RFC3339),
		RepoRoot:    opts.RepoRoot,
		Verdict:     domain.VerdictFail,
		Counts:      domain.CountSeverities([]domain.Finding{finding}),
		Stats: domain.ScanStats{
			FindingsTotal:   1,
			FindingsEmitted: 1,
		},
		Findings: []domain.Finding{finding},
	}
}
