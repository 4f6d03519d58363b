package config

import (
	"fmt"
	"os"
)

// Validator performs cross-cutting validation over the loaded configuration.
type Validator struct {
	cfg *Config
}

// NewValidator creates a validator for the given configuration.
func NewValidator(cfg *Config) *Validator {
	return &Validator{cfg: cfg}
}

// ValidateAll runs every validation pass. The first failure aborts boot.
func (v *Validator) ValidateAll() error {
	if err := v.validateProviders(); err != nil {
		return err
	}
	if err := v.validatePurposes(); err != nil {
		return err
	}
	if err := v.validatePipeline(); err != nil {
		return err
	}
	return nil
}

func (v *Validator) validateProviders() error {
	for name, p := range v.cfg.LLMProviderRegistry.providers {
		if p.Type != LLMProviderTypeAnthropic && p.Type != LLMProviderTypeOpenAI {
			return NewValidationError("llm_provider", name, "type",
				fmt.Errorf("%w: %q", ErrInvalidValue, p.Type))
		}
		if p.Model == "" {
			return NewValidationError("llm_provider", name, "model", ErrMissingRequiredField)
		}
		if p.APIKeyEnv != "" && os.Getenv(p.APIKeyEnv) == "" {
			return NewValidationError("llm_provider", name, "api_key_env",
				fmt.Errorf("%w: environment variable %s is empty", ErrInvalidValue, p.APIKeyEnv))
		}
	}
	return nil
}

func (v *Validator) validatePurposes() error {
	// Every purpose must resolve at boot; referencing a provider that
	// doesn't exist is an ErrInvalidReference, not a runtime surprise.
	for purpose, provider := range v.cfg.PurposeResolver.assignments {
		if !v.cfg.LLMProviderRegistry.Has(provider) {
			return NewValidationError("purpose", string(purpose), "",
				fmt.Errorf("%w: provider %q", ErrInvalidReference, provider))
		}
	}
	return v.cfg.PurposeResolver.Validate()
}

func (v *Validator) validatePipeline() error {
	p := v.cfg.Pipeline
	if p.DiscardThreshold >= p.FullAnalysisThreshold {
		return NewValidationError("pipeline", "thresholds", "",
			fmt.Errorf("%w: discard_threshold (%d) must be below full_analysis_threshold (%d)",
				ErrInvalidValue, p.DiscardThreshold, p.FullAnalysisThreshold))
	}
	if p.ScoringBatchSize <= 0 {
		return NewValidationError("pipeline", "scoring_batch_size", "", ErrInvalidValue)
	}
	if p.ContentRoot == "" {
		return NewValidationError("pipeline", "content_root", "", ErrMissingRequiredField)
	}
	return nil
}
