package history_test

import (
	"testing"

	"github.com/depguard/depguard/internal/adapters/outbound/history"
	"github.com/depguard/depguard/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileHistory_LoadEmpty(t *testing.T) {
	store := history.New()

	entries, err := store.Load(t.TempDir())
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestFileHistory_SaveAndLoad(t *testing.T) {
	dir := t.TempDir()
	store := history.New()

	first := domain.RunEntry{
		Timestamp:    "2026-08-29T10:00:00Z",
		CommitHash:   "abc123",
		Profile:      "strict",
		Verdict:      domain.VerdictFail,
		Counts:       domain.SeverityCounts{Error: 2},
		Fingerprints: []string{"fp1", "fp2"},
	}
	require.NoError(t, store.Save(dir, first))

	second := domain.RunEntry{
		Timestamp: "2026-08-29T11:00:00Z",
		Profile:   "strict",
		Verdict:   domain.VerdictPass,
	}
	require.NoError(t, store.Save(dir, second))

	entries, err := store.Load(dir)
	require.NoError(t, err)
	require.Len(t, entries, 2)

	assert.Equal(t, first, entries[0])
	assert.Equal(t, domain.VerdictPass, entries[1].Verdict)
	assert.Empty(t, entries[1].Fingerprints)
}
