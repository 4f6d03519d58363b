// Package llm provides a uniform chat/streaming surface over heterogeneous
// LLM providers, with token-usage and prompt-cache accounting.
package llm

import (
	"context"
	"time"
)

// Role identifies the author of a message.
type Role string

// Message roles.
const (
	RoleSystem    Role = "system"
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
	RoleTool      Role = "tool"
)

// CacheControl hints that the provider should cache the prompt prefix up to
// and including the carrying message. Providers that ignore the hint still
// work correctly; cache-hit rate just stays near zero.
type CacheControl string

// CacheControlEphemeral is the only cache mode providers currently expose.
const CacheControlEphemeral CacheControl = "ephemeral"

// Message is one entry in a conversation.
type Message struct {
	Role         Role
	Content      string
	CacheControl CacheControl // empty = no hint
}

// ToolDefinition describes a tool available to the LLM.
type ToolDefinition struct {
	Name             string
	Description      string
	ParametersSchema string // JSON Schema
}

// ResponseFormat constrains the response shape.
type ResponseFormat string

// Response format constraints.
const (
	ResponseFormatText ResponseFormat = "text"
	ResponseFormatJSON ResponseFormat = "json_object"
)

// Request is a provider-independent chat request.
type Request struct {
	Model          string
	Messages       []Message
	Tools          []ToolDefinition
	ResponseFormat ResponseFormat
	Temperature    *float64
	MaxTokens      int
	Timeout        time.Duration // zero = caller's context only
}

// Usage reports token consumption for one call. CachedTokens counts prompt
// tokens served from the provider's prompt cache.
type Usage struct {
	PromptTokens     int `json:"prompt_tokens"`
	CompletionTokens int `json:"completion_tokens"`
	CachedTokens     int `json:"cached_tokens"`
}

// Total returns prompt + completion tokens.
func (u Usage) Total() int {
	return u.PromptTokens + u.CompletionTokens
}

// Response is a provider-independent chat response.
type Response struct {
	Content        string
	Usage          Usage
	FinishReason   string
	ToolsSupported bool
}

// StreamEvent is the interface for all streaming event types.
type StreamEvent interface {
	streamEventType() StreamEventType
}

// StreamEventType identifies the kind of streaming event.
type StreamEventType string

// Streaming event kinds.
const (
	StreamEventContentDelta  StreamEventType = "content_delta"
	StreamEventToolCallDelta StreamEventType = "tool_call_delta"
	StreamEventUsageInfo     StreamEventType = "usage_info"
	StreamEventFinish        StreamEventType = "finish"
	StreamEventError         StreamEventType = "error"
)

// ContentDelta is a chunk of the response text.
type ContentDelta struct{ Content string }

// ToolCallDelta is a chunk of a tool-call argument stream.
type ToolCallDelta struct{ CallID, Name, Arguments string }

// UsageInfo reports token consumption once the provider emits it.
type UsageInfo struct{ Usage Usage }

// FinishEvent signals stream completion with the finish reason.
type FinishEvent struct{ Reason string }

// ErrorEvent signals a provider error mid-stream.
type ErrorEvent struct{ Err error }

func (e *ContentDelta) streamEventType() StreamEventType  { return StreamEventContentDelta }
func (e *ToolCallDelta) streamEventType() StreamEventType { return StreamEventToolCallDelta }
func (e *UsageInfo) streamEventType() StreamEventType     { return StreamEventUsageInfo }
func (e *FinishEvent) streamEventType() StreamEventType   { return StreamEventFinish }
func (e *ErrorEvent) streamEventType() StreamEventType    { return StreamEventError }

// Client is the uniform provider contract. Implementations classify failures
// into the error taxonomy in errors.go; the caller decides retry/report.
type Client interface {
	// Chat sends a conversation and returns the complete response.
	Chat(ctx context.Context, req *Request) (*Response, error)

	// ChatStream sends a conversation and returns a channel of events.
	// The channel is closed when the stream completes; errors are delivered
	// as ErrorEvent values.
	ChatStream(ctx context.Context, req *Request) (<-chan StreamEvent, error)
}

// Embedder generates embedding vectors. Kept separate from Client because
// only the index writer needs it.
type Embedder interface {
	Embeddings(ctx context.Context, model string, inputs []string) ([][]float32, error)
}
