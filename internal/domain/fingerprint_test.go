package domain_test

import (
	"testing"

	"github.com/depguard/depguard/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestFingerprint_DeterministicAcrossCalls(t *testing.T) {
	a := domain.Fingerprint("deps.no_wildcards", "wildcard_version", "Cargo.toml", "serde", "")
	b := domain.Fingerprint("deps.no_wildcards", "wildcard_version", "Cargo.toml", "serde", "")
	assert.Equal(t, a, b)
	assert.Len(t, a, 64) // sha-256 hex
}

func TestFingerprint_ChangingAnyFieldChangesDigest(t *testing.T) {
	base := domain.Fingerprint("check", "code", "Cargo.toml", "serde", "extra")

	variants := []string{
		domain.Fingerprint("check2", "code", "Cargo.toml", "serde", "extra"),
		domain.Fingerprint("check", "code2", "Cargo.toml", "serde", "extra"),
		domain.Fingerprint("check", "code", "crates/a/Cargo.toml", "serde", "extra"),
		domain.Fingerprint("check", "code", "Cargo.toml", "tokio", "extra"),
		domain.Fingerprint("check", "code", "Cargo.toml", "serde", "other"),
	}
	seen := map[string]bool{base: true}
	for _, v := range variants {
		assert.False(t, seen[v], "digest collision")
		seen[v] = true
	}
}

func TestFingerprint_ExtraOmittedWhenEmpty(t *testing.T) {
	without := domain.Fingerprint("check", "code", "Cargo.toml", "serde", "")
	with := domain.Fingerprint("check", "code", "Cargo.toml", "serde", "crates/serde")
	assert.NotEqual(t, without, with)
}
