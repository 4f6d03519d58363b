package services

import (
	"context"
	"testing"

	"github.com/finsight/newsflow/pkg/config"
	testdb "github.com/finsight/newsflow/test/database"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSettingsService(t *testing.T) *SettingsService {
	t.Helper()
	client := testdb.NewTestClient(t)
	return NewSettingsService(client.Client, config.DefaultPipelineConfig())
}

func TestSettingsService_GetSet(t *testing.T) {
	service := newSettingsService(t)
	ctx := context.Background()

	_, ok, err := service.Get(ctx, "nonexistent")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, service.Set(ctx, config.SettingDiscardThreshold, "120"))

	v, ok, err := service.Get(ctx, config.SettingDiscardThreshold)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "120", v)

	// Upsert replaces the value.
	require.NoError(t, service.Set(ctx, config.SettingDiscardThreshold, "130"))
	v, _, err = service.Get(ctx, config.SettingDiscardThreshold)
	require.NoError(t, err)
	assert.Equal(t, "130", v)
}

func TestSettingsService_Thresholds(t *testing.T) {
	service := newSettingsService(t)
	ctx := context.Background()

	t.Run("defaults without overrides", func(t *testing.T) {
		discard, full := service.Thresholds(ctx)
		assert.Equal(t, 105, discard)
		assert.Equal(t, 195, full)
	})

	t.Run("database overrides win", func(t *testing.T) {
		require.NoError(t, service.Set(ctx, config.SettingDiscardThreshold, "90"))
		require.NoError(t, service.Set(ctx, config.SettingFullAnalysisThreshold, "210"))

		discard, full := service.Thresholds(ctx)
		assert.Equal(t, 90, discard)
		assert.Equal(t, 210, full)
	})

	t.Run("malformed values fall back", func(t *testing.T) {
		require.NoError(t, service.Set(ctx, config.SettingDiscardThreshold, "not-a-number"))

		discard, _ := service.Thresholds(ctx)
		assert.Equal(t, 105, discard)
	})

	t.Run("inverted pair keeps config defaults", func(t *testing.T) {
		require.NoError(t, service.Set(ctx, config.SettingDiscardThreshold, "250"))
		require.NoError(t, service.Set(ctx, config.SettingFullAnalysisThreshold, "200"))

		discard, full := service.Thresholds(ctx)
		assert.Equal(t, 105, discard)
		assert.Equal(t, 195, full)
	})
}

func TestSettingsService_ProviderChain(t *testing.T) {
	service := newSettingsService(t)
	ctx := context.Background()

	assert.Nil(t, service.ProviderChain(ctx))

	require.NoError(t, service.Set(ctx, config.SettingFetchProviderChain, "scraper, vendor_api"))
	assert.Equal(t, []string{"scraper", "vendor_api"}, service.ProviderChain(ctx))
}
