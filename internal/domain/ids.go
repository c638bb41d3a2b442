package domain

// Stable identifiers for checks and finding codes. Check IDs are dotted
// namespaces; codes are short snake_case discriminators.
const (
	CheckNoWildcards             = "deps.no_wildcards"
	CheckPathRequiresVersion     = "deps.path_requires_version"
	CheckPathSafety              = "deps.path_safety"
	CheckWorkspaceInheritance    = "deps.workspace_inheritance"
	CheckGitRequiresVersion      = "deps.git_requires_version"
	CheckDevOnlyInNormal         = "deps.dev_only_in_normal"
	CheckDefaultFeaturesExplicit = "deps.default_features_explicit"
	CheckNoMultipleVersions      = "deps.no_multiple_versions"
	CheckOptionalUnused          = "deps.optional_unused"

	CodeWildcardVersion            = "wildcard_version"
	CodePathWithoutVersion         = "path_without_version"
	CodeAbsolutePath               = "absolute_path"
	CodeParentEscape               = "parent_escape"
	CodeMissingWorkspaceTrue       = "missing_workspace_true"
	CodeGitWithoutVersion          = "git_without_version"
	CodeDevDepInNormal             = "dev_dep_in_normal"
	CodeDefaultFeaturesImplicit    = "default_features_implicit"
	CodeDuplicateDifferentVersions = "duplicate_different_versions"
	CodeOptionalNotInFeatures      = "optional_not_in_features"

	// Tool-level identifiers for the synthesized failure finding emitted
	// when an upstream stage (config, model build) fails.
	CheckToolRuntime = "tool.runtime"
	CodeRuntimeError = "runtime_error"
)

// Fix action hints carried in finding payloads for tooling that applies
// automated remediation.
const (
	FixActionPinVersion        = "pin_version"
	FixActionAddVersionWithGit = "add_version_with_git"
)
