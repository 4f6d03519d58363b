package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// validatorConfig builds a minimal valid Config the tests then break.
func validatorConfig(providers map[string]*LLMProviderConfig, assignments map[Purpose]string) *Config {
	registry := NewLLMProviderRegistry(providers)
	return &Config{
		Pipeline:            DefaultPipelineConfig(),
		Queue:               DefaultQueueConfig(),
		Retention:           DefaultRetentionConfig(),
		LLMProviderRegistry: registry,
		PurposeResolver:     NewPurposeResolver(assignments, registry),
	}
}

func allPurposesOn(provider string) map[Purpose]string {
	assignments := make(map[Purpose]string, len(AllPurposes))
	for _, p := range AllPurposes {
		assignments[p] = provider
	}
	return assignments
}

func TestValidateAllPassesOnValidConfig(t *testing.T) {
	cfg := validatorConfig(map[string]*LLMProviderConfig{
		"primary": {Type: LLMProviderTypeAnthropic, Model: "claude-test"},
	}, allPurposesOn("primary"))

	assert.NoError(t, NewValidator(cfg).ValidateAll())
}

func TestValidateRejectsUnknownProviderType(t *testing.T) {
	cfg := validatorConfig(map[string]*LLMProviderConfig{
		"primary": {Type: "cohere", Model: "command-test"},
	}, allPurposesOn("primary"))

	err := NewValidator(cfg).ValidateAll()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidValue)

	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "llm_provider", vErr.Component)
	assert.Equal(t, "type", vErr.Field)
}

func TestValidateRequiresModel(t *testing.T) {
	cfg := validatorConfig(map[string]*LLMProviderConfig{
		"primary": {Type: LLMProviderTypeOpenAI},
	}, allPurposesOn("primary"))

	err := NewValidator(cfg).ValidateAll()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMissingRequiredField)
}

func TestValidateRejectsEmptyAPIKeyEnv(t *testing.T) {
	cfg := validatorConfig(map[string]*LLMProviderConfig{
		"primary": {
			Type:      LLMProviderTypeAnthropic,
			Model:     "claude-test",
			APIKeyEnv: "NEWSFLOW_TEST_KEY_DEFINITELY_UNSET",
		},
	}, allPurposesOn("primary"))

	err := NewValidator(cfg).ValidateAll()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidValue)
}

func TestValidateAcceptsPopulatedAPIKeyEnv(t *testing.T) {
	t.Setenv("NEWSFLOW_TEST_KEY", "sk-test")
	cfg := validatorConfig(map[string]*LLMProviderConfig{
		"primary": {
			Type:      LLMProviderTypeAnthropic,
			Model:     "claude-test",
			APIKeyEnv: "NEWSFLOW_TEST_KEY",
		},
	}, allPurposesOn("primary"))

	assert.NoError(t, NewValidator(cfg).ValidateAll())
}

func TestValidateRejectsDanglingPurposeReference(t *testing.T) {
	assignments := allPurposesOn("primary")
	assignments[PurposeEmbedding] = "missing"
	cfg := validatorConfig(map[string]*LLMProviderConfig{
		"primary": {Type: LLMProviderTypeAnthropic, Model: "claude-test"},
	}, assignments)

	err := NewValidator(cfg).ValidateAll()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidReference)
}

func TestValidateRejectsInvertedThresholds(t *testing.T) {
	cfg := validatorConfig(map[string]*LLMProviderConfig{
		"primary": {Type: LLMProviderTypeAnthropic, Model: "claude-test"},
	}, allPurposesOn("primary"))
	cfg.Pipeline.DiscardThreshold = 200
	cfg.Pipeline.FullAnalysisThreshold = 100

	err := NewValidator(cfg).ValidateAll()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidValue)
}

func TestValidateRejectsBadPipelineFields(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*PipelineConfig)
	}{
		{"zero batch size", func(p *PipelineConfig) { p.ScoringBatchSize = 0 }},
		{"empty content root", func(p *PipelineConfig) { p.ContentRoot = "" }},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := validatorConfig(map[string]*LLMProviderConfig{
				"primary": {Type: LLMProviderTypeAnthropic, Model: "claude-test"},
			}, allPurposesOn("primary"))
			tc.mutate(cfg.Pipeline)

			assert.Error(t, NewValidator(cfg).ValidateAll())
		})
	}
}
