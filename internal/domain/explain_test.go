package domain_test

import (
	"testing"

	"github.com/depguard/depguard/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookupExplanation_EveryCheckHasAnEntry(t *testing.T) {
	for _, id := range domain.AllCheckIDs() {
		exp, ok := domain.LookupExplanation(id)
		require.True(t, ok, "missing explanation for %s", id)
		assert.NotEmpty(t, exp.Title, id)
		assert.NotEmpty(t, exp.Description, id)
		assert.NotEmpty(t, exp.Remediation, id)
		assert.NotEmpty(t, exp.Before, id)
		assert.NotEmpty(t, exp.After, id)
	}
}

func TestLookupExplanation_CodeResolvesToOwningCheck(t *testing.T) {
	byCode, ok := domain.LookupExplanation(domain.CodeParentEscape)
	require.True(t, ok)
	byCheck, ok := domain.LookupExplanation(domain.CheckPathSafety)
	require.True(t, ok)
	assert.Equal(t, byCheck, byCode)
}

func TestLookupExplanation_Unknown(t *testing.T) {
	_, ok := domain.LookupExplanation("deps.not_a_check")
	assert.False(t, ok)
}

func TestAllCodes_CoversEveryCode(t *testing.T) {
	codes := domain.AllCodes()
	assert.Len(t, codes, 10)
	assert.Contains(t, codes, domain.CodeWildcardVersion)
	assert.Contains(t, codes, domain.CodeAbsolutePath)
	assert.Contains(t, codes, domain.CodeParentEscape)
	assert.Contains(t, codes, domain.CodeDuplicateDifferentVersions)
}
