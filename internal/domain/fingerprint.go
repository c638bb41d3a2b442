package domain

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

// Fingerprint computes the stable SHA-256 identity of a finding from its
// identity fields: check id, code, manifest path and dependency name, plus
// an optional extra disambiguator (a dependency path or git URL). The
// fields are joined with '|', which is not expected inside any of them.
//
// Identical inputs always yield the identical digest regardless of
// process, platform, or run order. Message wording is deliberately not
// part of the identity, so findings can be deduplicated across runs even
// after message edits.
func Fingerprint(checkID, code, manifestPath, depName, extra string) string {
	parts := []string{checkID, code, manifestPath, depName}
	if extra != "" {
		parts = append(parts, extra)
	}
	sum := sha256.Sum256([]byte(strings.Join(parts, "|")))
	return hex.EncodeToString(sum[:])
}
