package domain

import "fmt"

// Severity of a finding. The zero value is Info.
type Severity int

const (
	SeverityInfo Severity = iota
	SeverityWarning
	SeverityError
)

func (s Severity) String() string {
	switch s {
	case SeverityError:
		return "error"
	case SeverityWarning:
		return "warning"
	default:
		return "info"
	}
}

// MarshalText implements encoding.TextMarshaler so severities serialize as
// their lowercase names in JSON reports.
func (s Severity) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText accepts the same tokens as ParseSeverity.
func (s *Severity) UnmarshalText(b []byte) error {
	sev, err := ParseSeverity(string(b))
	if err != nil {
		return err
	}
	*s = sev
	return nil
}

// ParseSeverity maps a config token to a Severity. "warn" is accepted as an
// alias for "warning".
func ParseSeverity(v string) (Severity, error) {
	switch v {
	case "info":
		return SeverityInfo, nil
	case "warning", "warn":
		return SeverityWarning, nil
	case "error":
		return SeverityError, nil
	default:
		return SeverityInfo, fmt.Errorf("unknown severity %q (expected info|warning|error)", v)
	}
}

// Verdict is the overall outcome of a run.
type Verdict int

const (
	VerdictPass Verdict = iota
	VerdictWarn
	VerdictFail
)

func (v Verdict) String() string {
	switch v {
	case VerdictWarn:
		return "warn"
	case VerdictFail:
		return "fail"
	default:
		return "pass"
	}
}

func (v Verdict) MarshalText() ([]byte, error) {
	return []byte(v.String()), nil
}

func (v *Verdict) UnmarshalText(b []byte) error {
	switch string(b) {
	case "pass":
		*v = VerdictPass
	case "warn":
		*v = VerdictWarn
	case "fail":
		*v = VerdictFail
	default:
		return fmt.Errorf("unknown verdict %q", string(b))
	}
	return nil
}

// ExitCode maps the verdict to the process exit code convention:
// pass -> 0, warn -> 1, fail -> 2.
func (v Verdict) ExitCode() int {
	switch v {
	case VerdictWarn:
		return 1
	case VerdictFail:
		return 2
	default:
		return 0
	}
}

// Finding is one reported policy violation. Findings are created by checks
// and read-only afterwards.
type Finding struct {
	Severity Severity `json:"severity"`
	CheckID  string   `json:"check_id"`
	Code     string   `json:"code"`
	Message  string   `json:"message"`

	Location *Location `json:"location,omitempty"`

	Help string `json:"help,omitempty"`
	URL  string `json:"url,omitempty"`

	// Stable content identity for dedup and trending across runs,
	// independent of message wording. See Fingerprint.
	Fingerprint string `json:"fingerprint,omitempty"`

	// Check-specific structured payload, kept open-ended for forward
	// compatibility.
	Data map[string]any `json:"data,omitempty"`
}
