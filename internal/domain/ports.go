package domain

// WorkspaceSource builds the in-memory workspace model for a repository
// root. Implementations do filesystem IO; the engine never does.
type WorkspaceSource interface {
	// Build parses the workspace at repoRoot. changedFiles narrows the
	// manifest set for diff scope and is ignored when nil.
	Build(repoRoot string, changedFiles []string) (*WorkspaceModel, error)
}

// ConfigSource loads the raw user configuration for a repository root.
// A missing config file is not an error; defaults apply.
type ConfigSource interface {
	Load(repoRoot string) (Config, error)
}

// GitInfo answers questions about the repository's revision control state.
type GitInfo interface {
	IsGitRepo(repoRoot string) bool
	CommitHash(repoRoot string) (string, error)
	// ChangedFiles lists repo-relative paths changed between base and the
	// current worktree (committed and uncommitted).
	ChangedFiles(repoRoot, base string) ([]string, error)
}

// RunEntry is one recorded evaluation run, kept for cross-run trending.
// Fingerprints identify findings independent of message wording, so a
// later run can tell new findings from recurring ones.
type RunEntry struct {
	Timestamp    string         `json:"timestamp"`
	CommitHash   string         `json:"commit_hash,omitempty"`
	Profile      string         `json:"profile"`
	Verdict      Verdict        `json:"verdict"`
	Counts       SeverityCounts `json:"counts"`
	Fingerprints []string       `json:"fingerprints,omitempty"`
}

// RunHistory persists run entries for a repository.
type RunHistory interface {
	Load(repoRoot string) ([]RunEntry, error)
	Save(repoRoot string, entry RunEntry) error
}
