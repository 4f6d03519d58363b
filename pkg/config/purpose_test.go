package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRegistry() *LLMProviderRegistry {
	return NewLLMProviderRegistry(map[string]*LLMProviderConfig{
		"primary": {Type: LLMProviderTypeAnthropic, Model: "claude-test"},
		"cheap":   {Type: LLMProviderTypeOpenAI, Model: "mini-test"},
	})
}

func TestResolveExplicitAssignment(t *testing.T) {
	r := NewPurposeResolver(map[Purpose]string{
		PurposeLayer1Scoring: "cheap",
		PurposeNewsFilter:    "primary",
	}, testRegistry())

	provider, err := r.Resolve(PurposeLayer1Scoring)
	require.NoError(t, err)
	assert.Equal(t, "mini-test", provider.Model, "explicit assignment wins over the fallback")
}

func TestResolveFallsBackToNewsFilter(t *testing.T) {
	// Legacy deployments assigned only news_filter; the scoring and
	// lightweight purposes inherit it.
	r := NewPurposeResolver(map[Purpose]string{
		PurposeNewsFilter: "primary",
	}, testRegistry())

	for _, p := range []Purpose{PurposeLayer1Scoring, PurposeLayer2Lightweight} {
		provider, err := r.Resolve(p)
		require.NoError(t, err, "purpose %s", p)
		assert.Equal(t, "claude-test", provider.Model)
	}
}

func TestResolveUnassignedPurposeFails(t *testing.T) {
	r := NewPurposeResolver(map[Purpose]string{
		PurposeNewsFilter: "primary",
	}, testRegistry())

	_, err := r.Resolve(PurposeContentExtraction)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnknownPurpose)
}

func TestResolveUnknownProviderFails(t *testing.T) {
	r := NewPurposeResolver(map[Purpose]string{
		PurposeEmbedding: "missing",
	}, testRegistry())

	_, err := r.Resolve(PurposeEmbedding)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrLLMProviderNotFound)
}

func TestValidateRequiresEveryPurpose(t *testing.T) {
	assignments := make(map[Purpose]string)
	for _, p := range AllPurposes {
		assignments[p] = "primary"
	}
	delete(assignments, PurposeLayer15Cleaning)

	r := NewPurposeResolver(assignments, testRegistry())
	err := r.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnknownPurpose)
	assert.Contains(t, err.Error(), string(PurposeLayer15Cleaning))
}
