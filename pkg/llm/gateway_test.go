package llm

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finsight/newsflow/pkg/config"
)

type stubClient struct {
	resp    *Response
	err     error
	lastReq *Request
}

func (s *stubClient) Chat(_ context.Context, req *Request) (*Response, error) {
	s.lastReq = req
	if s.err != nil {
		return nil, s.err
	}
	return s.resp, nil
}

func (s *stubClient) ChatStream(_ context.Context, req *Request) (<-chan StreamEvent, error) {
	s.lastReq = req
	ch := make(chan StreamEvent, 4)
	ch <- &ContentDelta{Content: s.resp.Content}
	ch <- &UsageInfo{Usage: s.resp.Usage}
	ch <- &FinishEvent{Reason: "stop"}
	close(ch)
	return ch, nil
}

func newTestGateway(t *testing.T, stub *stubClient) *Gateway {
	t.Helper()

	temp := 0.2
	registry := config.NewLLMProviderRegistry(map[string]*config.LLMProviderConfig{
		"fast": {
			Type:        config.LLMProviderTypeOpenAI,
			Model:       "test-model-mini",
			Temperature: &temp,
			MaxTokens:   2048,
		},
	})
	resolver := config.NewPurposeResolver(map[config.Purpose]string{
		config.PurposeNewsFilter:     "fast",
		config.PurposeLayer2Analysis: "fast",
	}, registry)

	gw := NewGateway(resolver)
	gw.newClient = func(*config.LLMProviderConfig) (Client, error) { return stub, nil }
	return gw
}

func TestGatewayChatForPurpose(t *testing.T) {
	stub := &stubClient{resp: &Response{
		Content: "ok",
		Usage:   Usage{PromptTokens: 100, CompletionTokens: 20, CachedTokens: 80},
	}}
	gw := newTestGateway(t, stub)

	resp, err := gw.ChatForPurpose(context.Background(), config.PurposeNewsFilter, &Request{
		Messages: []Message{{Role: RoleUser, Content: "hello"}},
	})
	require.NoError(t, err)
	assert.Equal(t, "ok", resp.Content)

	// Provider defaults fill in unset request fields.
	assert.Equal(t, "test-model-mini", stub.lastReq.Model)
	require.NotNil(t, stub.lastReq.Temperature)
	assert.Equal(t, 0.2, *stub.lastReq.Temperature)
	assert.Equal(t, 2048, stub.lastReq.MaxTokens)
}

func TestGatewayPurposeFallback(t *testing.T) {
	// layer1_scoring has no explicit assignment; it falls back to news_filter.
	stub := &stubClient{resp: &Response{Content: "scored"}}
	gw := newTestGateway(t, stub)

	resp, err := gw.ChatForPurpose(context.Background(), config.PurposeLayer1Scoring, &Request{
		Messages: []Message{{Role: RoleUser, Content: "batch"}},
	})
	require.NoError(t, err)
	assert.Equal(t, "scored", resp.Content)
}

func TestGatewayUnknownPurpose(t *testing.T) {
	gw := newTestGateway(t, &stubClient{resp: &Response{}})

	_, err := gw.ChatForPurpose(context.Background(), config.Purpose("nonexistent"), &Request{})
	require.Error(t, err)
	assert.ErrorIs(t, err, config.ErrUnknownPurpose)
}

func TestGatewayUsageAccounting(t *testing.T) {
	stub := &stubClient{resp: &Response{
		Usage: Usage{PromptTokens: 1000, CompletionTokens: 50, CachedTokens: 900},
	}}
	gw := newTestGateway(t, stub)

	for range 3 {
		_, err := gw.ChatForPurpose(context.Background(), config.PurposeNewsFilter, &Request{})
		require.NoError(t, err)
	}

	snapshot := gw.UsageSnapshot()
	usage := snapshot[config.PurposeNewsFilter]
	assert.Equal(t, int64(3), usage.Calls)
	assert.Equal(t, int64(3000), usage.PromptTokens)
	assert.Equal(t, int64(150), usage.CompletionTokens)
	assert.Equal(t, int64(2700), usage.CachedTokens)
	assert.InDelta(t, 0.9, usage.CacheHitRate(), 0.001)
}

func TestGatewayRecordsFailures(t *testing.T) {
	stub := &stubClient{err: ErrRateLimited}
	gw := newTestGateway(t, stub)

	_, err := gw.ChatForPurpose(context.Background(), config.PurposeNewsFilter, &Request{})
	require.Error(t, err)
	assert.True(t, IsTransient(err))

	usage := gw.UsageSnapshot()[config.PurposeNewsFilter]
	assert.Equal(t, int64(1), usage.Calls)
	assert.Equal(t, int64(1), usage.Failures)
}

func TestGatewayStreamRecordsUsage(t *testing.T) {
	stub := &stubClient{resp: &Response{
		Content: "delta",
		Usage:   Usage{PromptTokens: 10, CompletionTokens: 5},
	}}
	gw := newTestGateway(t, stub)

	ch, err := gw.ChatStreamForPurpose(context.Background(), config.PurposeLayer2Analysis, &Request{})
	require.NoError(t, err)

	var sawContent, sawFinish bool
	for ev := range ch {
		switch e := ev.(type) {
		case *ContentDelta:
			sawContent = true
			assert.Equal(t, "delta", e.Content)
		case *FinishEvent:
			sawFinish = true
		}
	}
	assert.True(t, sawContent)
	assert.True(t, sawFinish)

	usage := gw.UsageSnapshot()[config.PurposeLayer2Analysis]
	assert.Equal(t, int64(1), usage.Calls)
	assert.Equal(t, int64(10), usage.PromptTokens)
}

func TestGatewayClientCaching(t *testing.T) {
	stub := &stubClient{resp: &Response{}}
	gw := newTestGateway(t, stub)

	built := 0
	gw.newClient = func(*config.LLMProviderConfig) (Client, error) {
		built++
		return stub, nil
	}

	for range 5 {
		_, err := gw.ChatForPurpose(context.Background(), config.PurposeNewsFilter, &Request{})
		require.NoError(t, err)
	}
	assert.Equal(t, 1, built)
}

func TestIsTransient(t *testing.T) {
	assert.True(t, IsTransient(ErrRateLimited))
	assert.True(t, IsTransient(ErrTimeout))
	assert.True(t, IsTransient(ErrTransport))
	assert.True(t, IsTransient(ErrProvider))
	assert.False(t, IsTransient(ErrAuthentication))
	assert.False(t, IsTransient(ErrModelNotFound))
	assert.False(t, IsTransient(errors.New("unrelated")))
}

func TestClassifyStatus(t *testing.T) {
	assert.ErrorIs(t, classifyStatus(401, ""), ErrAuthentication)
	assert.ErrorIs(t, classifyStatus(403, ""), ErrAuthentication)
	assert.ErrorIs(t, classifyStatus(404, ""), ErrModelNotFound)
	assert.ErrorIs(t, classifyStatus(429, ""), ErrRateLimited)
	assert.ErrorIs(t, classifyStatus(500, ""), ErrProvider)
	assert.ErrorIs(t, classifyStatus(418, ""), ErrProvider)
}
