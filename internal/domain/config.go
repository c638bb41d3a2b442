package domain

import (
	"fmt"

	"github.com/bmatcuk/doublestar/v4"
)

// Config is the user-facing .depguard.yaml schema. It is intentionally
// permissive: pointer fields distinguish "not specified" from zero values,
// and unknown checks are allowed (they may belong to a newer build).
type Config struct {
	// Optional schema string for tooling ("depguard.config.v1").
	Schema string `yaml:"schema,omitempty" json:"schema,omitempty"`

	Profile string `yaml:"profile,omitempty" json:"profile,omitempty"`
	Scope   string `yaml:"scope,omitempty"   json:"scope,omitempty"`

	// When to fail the run: "error" (default) or "warning".
	FailOn string `yaml:"fail_on,omitempty" json:"fail_on,omitempty"`

	// How many findings to emit before truncating the list.
	MaxFindings *int `yaml:"max_findings,omitempty" json:"max_findings,omitempty"`

	// Map of check id -> per-check overrides.
	Checks map[string]CheckConfig `yaml:"checks,omitempty" json:"checks,omitempty"`
}

// CheckConfig overrides one check's preset policy.
type CheckConfig struct {
	Enabled  *bool   `yaml:"enabled,omitempty"  json:"enabled,omitempty"`
	Severity *string `yaml:"severity,omitempty" json:"severity,omitempty"`

	// Allowlist glob patterns; semantics are check-specific.
	Allow []string `yaml:"allow,omitempty" json:"allow,omitempty"`

	IgnorePublishFalse *bool `yaml:"ignore_publish_false,omitempty" json:"ignore_publish_false,omitempty"`
}

// Overrides are the caller-supplied (command line) overrides. They take
// precedence over everything in Config for the fields they carry; zero
// values mean "not set".
type Overrides struct {
	Profile     string
	Scope       string
	MaxFindings int
}

// Resolve merges preset, raw config, and caller overrides into one
// EffectiveConfig. Precedence, later wins:
//
//  1. preset selected by profile name (unknown or absent -> strict)
//  2. top-level config fields (scope, fail_on, max_findings)
//  3. per-check config overrides, merged into the preset policy; a check
//     the preset does not mention starts from a disabled stub
//  4. caller overrides (profile, scope, max_findings)
//
// Any invalid scope, severity, fail_on token or allow glob fails
// resolution with an error naming the offending field or check; no
// partial config is ever returned.
func Resolve(cfg Config, overrides Overrides) (*EffectiveConfig, error) {
	profile := overrides.Profile
	if profile == "" {
		profile = cfg.Profile
	}
	if profile == "" {
		profile = ProfileStrict
	}

	effective := Preset(profile)

	if scope := firstNonEmpty(overrides.Scope, cfg.Scope); scope != "" {
		s, err := ParseScope(scope)
		if err != nil {
			return nil, fmt.Errorf("invalid scope: %w", err)
		}
		effective.Scope = s
	}

	if cfg.FailOn != "" {
		f, err := ParseFailOn(cfg.FailOn)
		if err != nil {
			return nil, fmt.Errorf("invalid fail_on: %w", err)
		}
		effective.FailOn = f
	}

	switch {
	case overrides.MaxFindings > 0:
		effective.MaxFindings = overrides.MaxFindings
	case cfg.MaxFindings != nil:
		effective.MaxFindings = *cfg.MaxFindings
	}

	for checkID, cc := range cfg.Checks {
		policy, ok := effective.Checks[checkID]
		if !ok {
			policy = DisabledPolicy()
		}

		if cc.Enabled != nil {
			policy.Enabled = *cc.Enabled
		}
		if cc.Severity != nil {
			sev, err := ParseSeverity(*cc.Severity)
			if err != nil {
				return nil, fmt.Errorf("invalid severity for %s: %w", checkID, err)
			}
			policy.Severity = sev
		}
		if len(cc.Allow) > 0 {
			if err := validateAllowlist(checkID, cc.Allow); err != nil {
				return nil, err
			}
			policy.Allow = cc.Allow
		}
		if cc.IgnorePublishFalse != nil {
			policy.IgnorePublishFalse = *cc.IgnorePublishFalse
		}

		effective.Checks[checkID] = policy
	}

	return effective, nil
}

func validateAllowlist(checkID string, patterns []string) error {
	for _, pattern := range patterns {
		if !doublestar.ValidatePattern(pattern) {
			return fmt.Errorf("invalid allow glob for %s: %q", checkID, pattern)
		}
	}
	return nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
