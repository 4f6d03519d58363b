package config

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validProvidersYAML = `llm_providers:
  primary:
    type: anthropic
    model: claude-test
  embedder:
    type: openai
    model: text-embedding-test
`

const validNewsflowYAML = `system:
  stats_redis_addr: redis.internal:6379
  admin_token: "{{.NEWSFLOW_TEST_ADMIN_TOKEN}}"
  retention:
    trace_retention_days: 3
    content_retention_days: 10
pipeline:
  discard_threshold: 90
  scoring_batch_size: 5
queue:
  default_worker_count: 2
purposes:
  news_filter: primary
  phase2_layer2_analysis: primary
  phase2_layer15_cleaning: primary
  content_extraction: primary
  embedding: embedder
`

// writeConfigDir lays out a config directory for Initialize.
func writeConfigDir(t *testing.T, newsflowYAML, providersYAML string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "newsflow.yaml"), []byte(newsflowYAML), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "llm-providers.yaml"), []byte(providersYAML), 0o600))
	return dir
}

func TestInitializeLoadsValidConfig(t *testing.T) {
	t.Setenv("NEWSFLOW_TEST_ADMIN_TOKEN", "sekrit")
	dir := writeConfigDir(t, validNewsflowYAML, validProvidersYAML)

	cfg, err := Initialize(context.Background(), dir)
	require.NoError(t, err)

	// User overrides are applied over defaults.
	assert.Equal(t, 90, cfg.Pipeline.DiscardThreshold)
	assert.Equal(t, 5, cfg.Pipeline.ScoringBatchSize)
	assert.Equal(t, 195, cfg.Pipeline.FullAnalysisThreshold, "unset field keeps the default")
	assert.Equal(t, 2, cfg.Queue.DefaultWorkerCount)
	assert.Equal(t, 3, cfg.Retention.TraceRetentionDays)
	assert.Equal(t, 10, cfg.Retention.ContentRetentionDays)
	assert.Equal(t, 14, cfg.Retention.JobRetentionDays, "unset retention keeps the default")

	assert.Equal(t, "redis.internal:6379", cfg.StatsRedisAddr)
	assert.Equal(t, "sekrit", cfg.AdminToken, "admin token expanded from the environment")
	assert.Equal(t, dir, cfg.ConfigDir())

	// Every purpose resolves, including the fallback-only ones.
	for _, p := range AllPurposes {
		_, err := cfg.PurposeResolver.Resolve(p)
		assert.NoError(t, err, "purpose %s", p)
	}
}

func TestInitializeMissingFileFails(t *testing.T) {
	_, err := Initialize(context.Background(), t.TempDir())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrConfigNotFound)
}

func TestInitializeInvalidYAMLFails(t *testing.T) {
	dir := writeConfigDir(t, "pipeline: [not: a: map", validProvidersYAML)

	_, err := Initialize(context.Background(), dir)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidYAML)

	var loadErr *LoadError
	require.ErrorAs(t, err, &loadErr)
	assert.Equal(t, "newsflow.yaml", loadErr.File)
}

func TestInitializeUnassignedPurposeFails(t *testing.T) {
	withoutEmbedding := `purposes:
  news_filter: primary
  phase2_layer2_analysis: primary
  phase2_layer15_cleaning: primary
  content_extraction: primary
`
	dir := writeConfigDir(t, withoutEmbedding, validProvidersYAML)

	_, err := Initialize(context.Background(), dir)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnknownPurpose)
}

func TestMergePipelineConfigOverlaysNonZero(t *testing.T) {
	dst := DefaultPipelineConfig()
	mergePipelineConfig(dst, &PipelineConfig{
		ContentRoot:      "/srv/content",
		FetchTimeout:     5 * time.Second,
		ScoringBatchSize: 7,
	})

	assert.Equal(t, "/srv/content", dst.ContentRoot)
	assert.Equal(t, 5*time.Second, dst.FetchTimeout)
	assert.Equal(t, 7, dst.ScoringBatchSize)
	assert.Equal(t, 105, dst.DiscardThreshold, "zero-valued fields never overwrite defaults")
}

func TestResolveRetentionConfigDefaults(t *testing.T) {
	assert.Equal(t, DefaultRetentionConfig(), resolveRetentionConfig(nil))
	assert.Equal(t, DefaultRetentionConfig(), resolveRetentionConfig(&SystemYAMLConfig{}))

	got := resolveRetentionConfig(&SystemYAMLConfig{Retention: &RetentionConfig{JobRetentionDays: 2}})
	assert.Equal(t, 2, got.JobRetentionDays)
	assert.Equal(t, 24*time.Hour, got.CleanupInterval)
}

func TestInitializeNoSystemSectionUsesDefaults(t *testing.T) {
	minimal := `purposes:
  news_filter: primary
  phase2_layer2_analysis: primary
  phase2_layer15_cleaning: primary
  content_extraction: primary
  embedding: primary
`
	dir := writeConfigDir(t, minimal, validProvidersYAML)

	cfg, err := Initialize(context.Background(), dir)
	require.NoError(t, err)
	assert.Equal(t, "localhost:6379", cfg.StatsRedisAddr)
	assert.Empty(t, cfg.AdminToken)
	assert.Equal(t, DefaultRetentionConfig(), cfg.Retention)
}

func TestInitializeValidationFailureSurfaces(t *testing.T) {
	yaml := `pipeline:
  discard_threshold: 200
  full_analysis_threshold: 100
purposes:
  news_filter: primary
  phase2_layer2_analysis: primary
  phase2_layer15_cleaning: primary
  content_extraction: primary
  embedding: primary
`
	dir := writeConfigDir(t, yaml, validProvidersYAML)

	_, err := Initialize(context.Background(), dir)
	require.Error(t, err)

	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "pipeline", vErr.Component)
}

func TestInitializeUnknownProviderTypeFails(t *testing.T) {
	providers := `llm_providers:
  primary:
    type: cohere
    model: command-test
`
	yaml := `purposes:
  news_filter: primary
  phase2_layer2_analysis: primary
  phase2_layer15_cleaning: primary
  content_extraction: primary
  embedding: primary
`
	dir := writeConfigDir(t, yaml, providers)

	_, err := Initialize(context.Background(), dir)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidValue)
}

func TestLoadErrorFormatting(t *testing.T) {
	err := NewLoadError("newsflow.yaml", errors.New("boom"))
	assert.Contains(t, err.Error(), "newsflow.yaml")
	assert.Contains(t, err.Error(), "boom")
}
