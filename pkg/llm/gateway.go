package llm

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/finsight/newsflow/pkg/config"
)

// Gateway resolves purposes to provider clients and accounts token usage
// per purpose. Clients are built lazily and cached; the underlying
// configuration is immutable after boot so a cached client never goes stale.
type Gateway struct {
	resolver *config.PurposeResolver

	mu      sync.Mutex
	clients map[config.LLMProviderType]map[string]Client // type → model+keyenv → client

	usageMu sync.RWMutex
	usage   map[config.Purpose]*PurposeUsage

	// newClient is swappable in tests.
	newClient func(cfg *config.LLMProviderConfig) (Client, error)
}

// PurposeUsage accumulates usage for one purpose since process start.
type PurposeUsage struct {
	Calls            int64 `json:"calls"`
	Failures         int64 `json:"failures"`
	PromptTokens     int64 `json:"prompt_tokens"`
	CompletionTokens int64 `json:"completion_tokens"`
	CachedTokens     int64 `json:"cached_tokens"`
}

// CacheHitRate returns the fraction of prompt tokens served from the
// provider's prompt cache, in [0,1].
func (u *PurposeUsage) CacheHitRate() float64 {
	if u.PromptTokens == 0 {
		return 0
	}
	return float64(u.CachedTokens) / float64(u.PromptTokens)
}

// NewGateway creates a gateway over the purpose resolver.
func NewGateway(resolver *config.PurposeResolver) *Gateway {
	return &Gateway{
		resolver:  resolver,
		clients:   make(map[config.LLMProviderType]map[string]Client),
		usage:     make(map[config.Purpose]*PurposeUsage),
		newClient: buildClient,
	}
}

func buildClient(cfg *config.LLMProviderConfig) (Client, error) {
	switch cfg.Type {
	case config.LLMProviderTypeAnthropic:
		return NewAnthropicClient(cfg)
	case config.LLMProviderTypeOpenAI:
		return NewOpenAIClient(cfg)
	default:
		return nil, fmt.Errorf("unsupported provider type %q", cfg.Type)
	}
}

// ChatForPurpose resolves the purpose, fills in the provider's model and
// sampling defaults where the request leaves them unset, and records usage.
func (g *Gateway) ChatForPurpose(ctx context.Context, purpose config.Purpose, req *Request) (*Response, error) {
	client, providerCfg, err := g.clientFor(purpose)
	if err != nil {
		return nil, err
	}

	applyProviderDefaults(req, providerCfg)

	resp, err := client.Chat(ctx, req)
	if err != nil {
		g.recordFailure(purpose)
		return nil, err
	}

	g.recordUsage(purpose, resp.Usage)
	return resp, nil
}

// ChatStreamForPurpose is the streaming variant. Usage is recorded when the
// provider emits its UsageInfo event; the caller sees the events unchanged.
func (g *Gateway) ChatStreamForPurpose(ctx context.Context, purpose config.Purpose, req *Request) (<-chan StreamEvent, error) {
	client, providerCfg, err := g.clientFor(purpose)
	if err != nil {
		return nil, err
	}

	applyProviderDefaults(req, providerCfg)

	upstream, err := client.ChatStream(ctx, req)
	if err != nil {
		g.recordFailure(purpose)
		return nil, err
	}

	out := make(chan StreamEvent, 32)
	go func() {
		defer close(out)
		for ev := range upstream {
			switch e := ev.(type) {
			case *UsageInfo:
				g.recordUsage(purpose, e.Usage)
			case *ErrorEvent:
				g.recordFailure(purpose)
			}
			select {
			case out <- ev:
			case <-ctx.Done():
				return
			}
		}
	}()
	return out, nil
}

// EmbeddingsForPurpose resolves the purpose to an embedding-capable provider.
// Only OpenAI-compatible providers expose an embeddings endpoint.
func (g *Gateway) EmbeddingsForPurpose(ctx context.Context, purpose config.Purpose, inputs []string) ([][]float32, error) {
	client, providerCfg, err := g.clientFor(purpose)
	if err != nil {
		return nil, err
	}

	embedder, ok := client.(Embedder)
	if !ok {
		return nil, fmt.Errorf("provider type %q for purpose %s does not support embeddings",
			providerCfg.Type, purpose)
	}

	vectors, err := embedder.Embeddings(ctx, providerCfg.Model, inputs)
	if err != nil {
		g.recordFailure(purpose)
		return nil, err
	}
	return vectors, nil
}

// ModelForPurpose returns the configured model name for a purpose.
func (g *Gateway) ModelForPurpose(purpose config.Purpose) (string, error) {
	cfg, err := g.resolver.Resolve(purpose)
	if err != nil {
		return "", err
	}
	return cfg.Model, nil
}

// UsageSnapshot returns a copy of per-purpose usage counters for reporting.
func (g *Gateway) UsageSnapshot() map[config.Purpose]PurposeUsage {
	g.usageMu.RLock()
	defer g.usageMu.RUnlock()

	out := make(map[config.Purpose]PurposeUsage, len(g.usage))
	for p, u := range g.usage {
		out[p] = *u
	}
	return out
}

func (g *Gateway) clientFor(purpose config.Purpose) (Client, *config.LLMProviderConfig, error) {
	providerCfg, err := g.resolver.Resolve(purpose)
	if err != nil {
		return nil, nil, err
	}

	cacheKey := providerCfg.Model + "|" + providerCfg.APIKeyEnv + "|" + providerCfg.BaseURL

	g.mu.Lock()
	defer g.mu.Unlock()

	byKey, ok := g.clients[providerCfg.Type]
	if !ok {
		byKey = make(map[string]Client)
		g.clients[providerCfg.Type] = byKey
	}
	if client, ok := byKey[cacheKey]; ok {
		return client, providerCfg, nil
	}

	client, err := g.newClient(providerCfg)
	if err != nil {
		return nil, nil, fmt.Errorf("build client for purpose %s: %w", purpose, err)
	}
	byKey[cacheKey] = client

	slog.Info("LLM client created",
		"purpose", string(purpose),
		"provider_type", string(providerCfg.Type),
		"model", providerCfg.Model)

	return client, providerCfg, nil
}

func applyProviderDefaults(req *Request, cfg *config.LLMProviderConfig) {
	if req.Model == "" {
		req.Model = cfg.Model
	}
	if req.Temperature == nil {
		req.Temperature = cfg.Temperature
	}
	if req.MaxTokens == 0 {
		req.MaxTokens = cfg.MaxTokens
	}
}

func (g *Gateway) recordUsage(purpose config.Purpose, u Usage) {
	g.usageMu.Lock()
	defer g.usageMu.Unlock()

	acc, ok := g.usage[purpose]
	if !ok {
		acc = &PurposeUsage{}
		g.usage[purpose] = acc
	}
	acc.Calls++
	acc.PromptTokens += int64(u.PromptTokens)
	acc.CompletionTokens += int64(u.CompletionTokens)
	acc.CachedTokens += int64(u.CachedTokens)
}

func (g *Gateway) recordFailure(purpose config.Purpose) {
	g.usageMu.Lock()
	defer g.usageMu.Unlock()

	acc, ok := g.usage[purpose]
	if !ok {
		acc = &PurposeUsage{}
		g.usage[purpose] = acc
	}
	acc.Calls++
	acc.Failures++
}
