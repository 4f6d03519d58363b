package services

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/finsight/newsflow/ent"
	"github.com/finsight/newsflow/ent/systemsetting"
	"github.com/finsight/newsflow/pkg/config"
)

// settingsCacheTTL bounds how stale a cached setting can be. Threshold
// changes apply to new batches within this window without a restart.
const settingsCacheTTL = 30 * time.Second

// SettingsService reads and writes runtime-tunable settings stored in the
// database, with a short read cache in front.
type SettingsService struct {
	client   *ent.Client
	pipeline *config.PipelineConfig

	mu       sync.RWMutex
	cache    map[string]string
	cachedAt time.Time
}

// NewSettingsService creates a new SettingsService. The pipeline config
// supplies defaults for keys absent from the database.
func NewSettingsService(client *ent.Client, pipeline *config.PipelineConfig) *SettingsService {
	return &SettingsService{
		client:   client,
		pipeline: pipeline,
		cache:    make(map[string]string),
	}
}

// Get returns the value for key, or ok=false when unset.
func (s *SettingsService) Get(ctx context.Context, key string) (string, bool, error) {
	values, err := s.snapshot(ctx)
	if err != nil {
		return "", false, err
	}
	v, ok := values[key]
	return v, ok, nil
}

// Set upserts a setting and invalidates the cache.
func (s *SettingsService) Set(ctx context.Context, key, value string) error {
	if key == "" {
		return NewValidationError("key", "required")
	}

	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	err := s.client.SystemSetting.Create().
		SetKey(key).
		SetValue(value).
		OnConflictColumns(systemsetting.FieldKey).
		SetValue(value).
		Exec(writeCtx)
	if err != nil {
		return fmt.Errorf("failed to set %s: %w", key, err)
	}

	s.mu.Lock()
	s.cachedAt = time.Time{}
	s.mu.Unlock()
	return nil
}

// Thresholds returns the current Layer-1 score boundaries
// (discard, full-analysis). Database values override config defaults;
// malformed values fall back silently.
func (s *SettingsService) Thresholds(ctx context.Context) (int, int) {
	discard := s.pipeline.DiscardThreshold
	full := s.pipeline.FullAnalysisThreshold

	values, err := s.snapshot(ctx)
	if err != nil {
		return discard, full
	}

	if v, ok := values[config.SettingDiscardThreshold]; ok {
		if n, err := strconv.Atoi(v); err == nil {
			discard = n
		}
	}
	if v, ok := values[config.SettingFullAnalysisThreshold]; ok {
		if n, err := strconv.Atoi(v); err == nil {
			full = n
		}
	}

	// An inverted pair would route everything to deep analysis; keep the
	// config defaults instead.
	if discard >= full {
		return s.pipeline.DiscardThreshold, s.pipeline.FullAnalysisThreshold
	}
	return discard, full
}

// ProviderChain returns the configured Layer-1.5 content provider order,
// comma separated in the setting value. Empty means provider defaults.
func (s *SettingsService) ProviderChain(ctx context.Context) []string {
	values, err := s.snapshot(ctx)
	if err != nil {
		return nil
	}
	raw, ok := values[config.SettingFetchProviderChain]
	if !ok || raw == "" {
		return nil
	}

	parts := strings.Split(raw, ",")
	chain := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			chain = append(chain, trimmed)
		}
	}
	return chain
}

// snapshot returns all settings, refreshing the cache when stale.
func (s *SettingsService) snapshot(ctx context.Context) (map[string]string, error) {
	s.mu.RLock()
	if time.Since(s.cachedAt) < settingsCacheTTL {
		cached := s.cache
		s.mu.RUnlock()
		return cached, nil
	}
	s.mu.RUnlock()

	rows, err := s.client.SystemSetting.Query().All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load settings: %w", err)
	}

	fresh := make(map[string]string, len(rows))
	for _, row := range rows {
		fresh[row.Key] = row.Value
	}

	s.mu.Lock()
	s.cache = fresh
	s.cachedAt = time.Now()
	s.mu.Unlock()
	return fresh, nil
}
