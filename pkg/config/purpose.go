package config

import (
	"fmt"
	"sync"
)

// Purpose is a named LLM role. Every pipeline stage resolves its model and
// credential through a purpose rather than hard-coding a provider.
type Purpose string

// Purposes used by the pipeline. These are stable identifiers; an unknown
// purpose is a hard error at boot, not per-request.
const (
	PurposeLayer1Scoring      Purpose = "layer1_scoring"
	PurposeLayer2Analysis     Purpose = "phase2_layer2_analysis"
	PurposeLayer2Lightweight  Purpose = "phase2_layer2_lightweight"
	PurposeLayer15Cleaning    Purpose = "phase2_layer15_cleaning"
	PurposeNewsFilter         Purpose = "news_filter"
	PurposeContentExtraction  Purpose = "content_extraction"
	PurposeEmbedding          Purpose = "embedding"
)

// AllPurposes lists every purpose the resolver must be able to satisfy,
// directly or through a fallback.
var AllPurposes = []Purpose{
	PurposeLayer1Scoring,
	PurposeLayer2Analysis,
	PurposeLayer2Lightweight,
	PurposeLayer15Cleaning,
	PurposeNewsFilter,
	PurposeContentExtraction,
	PurposeEmbedding,
}

// purposeFallbacks maps a purpose to the purpose consulted when it has no
// explicit assignment. Legacy deployments assigned only news_filter.
var purposeFallbacks = map[Purpose]Purpose{
	PurposeLayer1Scoring:     PurposeNewsFilter,
	PurposeLayer2Lightweight: PurposeNewsFilter,
}

// PurposeResolver resolves a purpose to a concrete LLM provider
// configuration. Resolution is read-heavy; the assignment map is immutable
// after boot, so reads only take the lock for the map lookup.
type PurposeResolver struct {
	mu          sync.RWMutex
	assignments map[Purpose]string // purpose → provider name
	providers   *LLMProviderRegistry
}

// NewPurposeResolver creates a resolver over the given provider registry.
// assignments maps purpose name → provider name from YAML.
func NewPurposeResolver(assignments map[Purpose]string, providers *LLMProviderRegistry) *PurposeResolver {
	copied := make(map[Purpose]string, len(assignments))
	for k, v := range assignments {
		copied[k] = v
	}
	return &PurposeResolver{
		assignments: copied,
		providers:   providers,
	}
}

// Resolve returns the provider configuration for a purpose.
// Rule: explicit assignment → fallback purpose's assignment → hard error.
// No silent defaults once a purpose exists.
func (r *PurposeResolver) Resolve(purpose Purpose) (*LLMProviderConfig, error) {
	r.mu.RLock()
	name, ok := r.assignments[purpose]
	if !ok {
		if fallback, hasFallback := purposeFallbacks[purpose]; hasFallback {
			name, ok = r.assignments[fallback]
		}
	}
	r.mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownPurpose, purpose)
	}

	provider, err := r.providers.Get(name)
	if err != nil {
		return nil, fmt.Errorf("purpose %s: %w", purpose, err)
	}
	return provider, nil
}

// Validate checks every known purpose resolves, so misconfiguration fails
// at boot rather than mid-pipeline.
func (r *PurposeResolver) Validate() error {
	for _, p := range AllPurposes {
		if _, err := r.Resolve(p); err != nil {
			return err
		}
	}
	return nil
}
