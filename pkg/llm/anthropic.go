package llm

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"github.com/finsight/newsflow/pkg/config"
)

// AnthropicClient implements Client over the Anthropic Messages API.
// The cache_control hint maps directly to the API's prompt caching;
// cached prefix tokens come back as cache_read_input_tokens.
type AnthropicClient struct {
	client anthropic.Client
}

// NewAnthropicClient creates a client from provider configuration.
func NewAnthropicClient(cfg *config.LLMProviderConfig) (*AnthropicClient, error) {
	apiKey := os.Getenv(cfg.APIKeyEnv)
	if apiKey == "" {
		return nil, fmt.Errorf("%w: environment variable %s is empty", ErrAuthentication, cfg.APIKeyEnv)
	}

	opts := []option.RequestOption{option.WithAPIKey(apiKey)}
	if cfg.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(cfg.BaseURL))
	}

	return &AnthropicClient{client: anthropic.NewClient(opts...)}, nil
}

// Chat implements Client.
func (c *AnthropicClient) Chat(ctx context.Context, req *Request) (*Response, error) {
	if req.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, req.Timeout)
		defer cancel()
	}

	params := c.buildParams(req)

	msg, err := c.client.Messages.New(ctx, params)
	if err != nil {
		return nil, classifyAnthropicError(err)
	}

	var text strings.Builder
	for _, block := range msg.Content {
		if block.Type == "text" {
			text.WriteString(block.Text)
		}
	}

	return &Response{
		Content:        text.String(),
		Usage:          anthropicUsage(msg.Usage),
		FinishReason:   string(msg.StopReason),
		ToolsSupported: true,
	}, nil
}

// ChatStream implements Client.
func (c *AnthropicClient) ChatStream(ctx context.Context, req *Request) (<-chan StreamEvent, error) {
	if req.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, req.Timeout)
		go func() {
			<-ctx.Done()
			cancel()
		}()
	}

	stream := c.client.Messages.NewStreaming(ctx, c.buildParams(req))

	ch := make(chan StreamEvent, 32)
	go func() {
		defer close(ch)

		usage := Usage{}
		for stream.Next() {
			event := stream.Current()
			switch ev := event.AsAny().(type) {
			case anthropic.MessageStartEvent:
				usage = anthropicUsage(ev.Message.Usage)
			case anthropic.ContentBlockDeltaEvent:
				if ev.Delta.Text != "" {
					select {
					case ch <- &ContentDelta{Content: ev.Delta.Text}:
					case <-ctx.Done():
						return
					}
				}
			case anthropic.MessageDeltaEvent:
				usage.CompletionTokens = int(ev.Usage.OutputTokens)
			case anthropic.MessageStopEvent:
				ch <- &UsageInfo{Usage: usage}
				ch <- &FinishEvent{Reason: "stop"}
			}
		}
		if err := stream.Err(); err != nil {
			select {
			case ch <- &ErrorEvent{Err: classifyAnthropicError(err)}:
			case <-ctx.Done():
			}
		}
	}()

	return ch, nil
}

// buildParams converts a provider-independent request. System messages go to
// the dedicated system field; cache_control hints become ephemeral cache
// breakpoints on the carrying block.
func (c *AnthropicClient) buildParams(req *Request) anthropic.MessageNewParams {
	maxTokens := req.MaxTokens
	if maxTokens == 0 {
		maxTokens = 4096
	}

	params := anthropic.MessageNewParams{
		Model:     anthropic.Model(req.Model),
		MaxTokens: int64(maxTokens),
	}
	if req.Temperature != nil {
		params.Temperature = anthropic.Float(*req.Temperature)
	}

	for _, m := range req.Messages {
		switch m.Role {
		case RoleSystem:
			block := anthropic.TextBlockParam{Text: m.Content}
			if m.CacheControl == CacheControlEphemeral {
				block.CacheControl = anthropic.NewCacheControlEphemeralParam()
			}
			params.System = append(params.System, block)
		case RoleAssistant:
			params.Messages = append(params.Messages,
				anthropic.NewAssistantMessage(anthropic.NewTextBlock(m.Content)))
		default:
			block := anthropic.TextBlockParam{Text: m.Content}
			if m.CacheControl == CacheControlEphemeral {
				block.CacheControl = anthropic.NewCacheControlEphemeralParam()
			}
			params.Messages = append(params.Messages, anthropic.MessageParam{
				Role:    anthropic.MessageParamRoleUser,
				Content: []anthropic.ContentBlockParamUnion{{OfText: &block}},
			})
		}
	}

	return params
}

// anthropicUsage normalizes the API's split input accounting: input_tokens
// excludes cached reads, so the prompt total is the sum of all three.
func anthropicUsage(u anthropic.Usage) Usage {
	return Usage{
		PromptTokens:     int(u.InputTokens + u.CacheReadInputTokens + u.CacheCreationInputTokens),
		CompletionTokens: int(u.OutputTokens),
		CachedTokens:     int(u.CacheReadInputTokens),
	}
}

func classifyAnthropicError(err error) error {
	var apiErr *anthropic.Error
	if errors.As(err, &apiErr) {
		return classifyStatus(apiErr.StatusCode, apiErr.Error())
	}
	return classifyTransport(err)
}
