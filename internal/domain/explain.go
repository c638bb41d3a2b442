package domain

// Explanation documents one check or finding code: what it detects, why it
// matters, and how to fix violations.
type Explanation struct {
	Title       string
	Description string
	Remediation string

	// Manifest snippets: one that triggers the check, one that passes.
	Before string
	After  string
}

// LookupExplanation resolves a check id or finding code to its
// documentation. Codes resolve to their owning check's entry.
func LookupExplanation(identifier string) (Explanation, bool) {
	if exp, ok := explanations[identifier]; ok {
		return exp, true
	}
	if checkID, ok := codeOwners[identifier]; ok {
		return explanations[checkID], true
	}
	return Explanation{}, false
}

// AllCodes returns every known finding code.
func AllCodes() []string {
	out := make([]string, 0, len(codeOwners))
	for _, id := range allCheckIDs {
		for code, owner := range codeOwners {
			if owner == id {
				out = append(out, code)
			}
		}
	}
	return out
}

var codeOwners = map[string]string{
	CodeWildcardVersion:            CheckNoWildcards,
	CodePathWithoutVersion:         CheckPathRequiresVersion,
	CodeAbsolutePath:               CheckPathSafety,
	CodeParentEscape:               CheckPathSafety,
	CodeMissingWorkspaceTrue:       CheckWorkspaceInheritance,
	CodeGitWithoutVersion:          CheckGitRequiresVersion,
	CodeDevDepInNormal:             CheckDevOnlyInNormal,
	CodeDefaultFeaturesImplicit:    CheckDefaultFeaturesExplicit,
	CodeDuplicateDifferentVersions: CheckNoMultipleVersions,
	CodeOptionalNotInFeatures:      CheckOptionalUnused,
}

var explanations = map[string]Explanation{
	CheckNoWildcards: {
		Title: "No Wildcard Versions",
		Description: "Detects dependencies declared with wildcard version requirements like `*` or `1.*`.\n" +
			"Wildcard versions allow any release to be selected, make builds irreproducible, and\n" +
			"are rejected by cargo publish.",
		Remediation: "Replace wildcard versions with explicit semver requirements: `^1.2.3` for\n" +
			"compatible updates, `~1.2.3` for patch-level updates, or `=1.2.3` for an exact pin.",
		Before: "[dependencies]\nserde = \"*\"",
		After:  "[dependencies]\nserde = \"1.0\"",
	},
	CheckPathRequiresVersion: {
		Title: "Path Dependencies Require Version",
		Description: "Detects path dependencies in publishable crates that lack an explicit version.\n" +
			"When publishing, the registry ignores the `path` key; without a version the crate\n" +
			"cannot be published or consumed.",
		Remediation: "Add an explicit version alongside the path, or inherit the workspace\n" +
			"definition with `workspace = true`.",
		Before: "[dependencies]\nmy-crate = { path = \"../my-crate\" }",
		After:  "[dependencies]\nmy-crate = { path = \"../my-crate\", version = \"0.1.0\" }",
	},
	CheckPathSafety: {
		Title: "Path Safety",
		Description: "Detects path dependencies that point outside the repository: absolute filesystem\n" +
			"paths, or relative paths whose `..` traversal crosses above the workspace root.\n" +
			"Such paths leak host layout and break on any other machine.",
		Remediation: "Keep path dependencies repo-relative and inside the workspace. Move external\n" +
			"code into the workspace or depend on a published version.",
		Before: "[dependencies]\nhelper = { path = \"/home/me/helper\" }",
		After:  "[dependencies]\nhelper = { path = \"crates/helper\" }",
	},
	CheckWorkspaceInheritance: {
		Title: "Workspace Inheritance",
		Description: "Detects dependencies that duplicate a [workspace.dependencies] definition locally\n" +
			"instead of inheriting it. Local duplicates drift from the shared version over time.",
		Remediation: "Declare the dependency with `workspace = true` so version and features come\n" +
			"from the single shared definition.",
		Before: "[dependencies]\nserde = \"1.0\"",
		After:  "[dependencies]\nserde = { workspace = true }",
	},
	CheckGitRequiresVersion: {
		Title: "Git Dependencies Require Version",
		Description: "Detects git dependencies in publishable crates that lack an explicit version.\n" +
			"Like path dependencies, git URLs are ignored by the registry when publishing.",
		Remediation: "Add an explicit version alongside `git = ...`, or inherit the workspace\n" +
			"definition with `workspace = true`.",
		Before: "[dependencies]\nmylib = { git = \"https://github.com/me/mylib\" }",
		After:  "[dependencies]\nmylib = { git = \"https://github.com/me/mylib\", version = \"0.3\" }",
	},
	CheckDevOnlyInNormal: {
		Title: "Dev-Only Crates In Normal Dependencies",
		Description: "Detects crates that are conventionally test-, mock-, or benchmark-only (proptest,\n" +
			"mockall, criterion, tempfile, ...) declared under [dependencies], where they bloat\n" +
			"production builds.",
		Remediation: "Move the crate to [dev-dependencies] (or [build-dependencies] when it is a\n" +
			"build-time tool).",
		Before: "[dependencies]\nproptest = \"1\"",
		After:  "[dev-dependencies]\nproptest = \"1\"",
	},
	CheckDefaultFeaturesExplicit: {
		Title: "Explicit default-features",
		Description: "Detects dependencies that carry inline options (path, git, optional) without an\n" +
			"explicit default-features declaration, leaving the feature surface implicit.",
		Remediation: "State `default-features = true` or `default-features = false` so the intended\n" +
			"feature set is visible in the manifest.",
		Before: "[dependencies]\nmylib = { path = \"crates/mylib\", optional = true }",
		After:  "[dependencies]\nmylib = { path = \"crates/mylib\", optional = true, default-features = false }",
	},
	CheckNoMultipleVersions: {
		Title: "No Multiple Versions",
		Description: "Detects a crate declared with different version requirements across workspace\n" +
			"members. Divergent requirements split the dependency tree and grow compile times.",
		Remediation: "Define the crate once under [workspace.dependencies] and inherit it with\n" +
			"`workspace = true` in every member.",
		Before: "# crates/a: serde = \"1.0\"\n# crates/b: serde = \"2.0\"",
		After:  "[workspace.dependencies]\nserde = \"1.0\"",
	},
	CheckOptionalUnused: {
		Title: "Optional Dependencies Must Be Used",
		Description: "Detects dependencies marked `optional = true` that no feature references. An\n" +
			"optional dependency nothing can enable is dead configuration.",
		Remediation: "Add a feature that enables the dependency (`feat = [\"dep:name\"]`), or drop\n" +
			"`optional = true`.",
		Before: "[dependencies]\nzstd = { version = \"0.13\", optional = true }\n\n[features]\n# zstd never referenced",
		After:  "[dependencies]\nzstd = { version = \"0.13\", optional = true }\n\n[features]\ncompress = [\"dep:zstd\"]",
	},
}
