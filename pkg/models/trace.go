package models

import (
	"time"
)

// TraceEvent is one pipeline observation, buffered by the workflow and
// written append-only by the trace service.
type TraceEvent struct {
	ArticleID  string         `json:"article_id"`
	Layer      string         `json:"layer"`
	Node       string         `json:"node"`
	Status     string         `json:"status"`
	DurationMS int64          `json:"duration_ms"`
	Metadata   map[string]any `json:"metadata,omitempty"`
	Error      string         `json:"error,omitempty"`
	OccurredAt time.Time      `json:"occurred_at"`
}

// Trace statuses.
const (
	TraceStatusSuccess = "success"
	TraceStatusError   = "error"
	TraceStatusSkip    = "skip"
)

// Pipeline layers, outermost first.
const (
	TraceLayerDispatch = "dispatch"
	TraceLayerLayer1   = "layer1"
	TraceLayerFetch    = "fetch"
	TraceLayerLayer15  = "layer15"
	TraceLayerLayer2   = "layer2"
	TraceLayerEmbed    = "embed"
)

// NodeStats aggregates trace outcomes for one (layer, node) pair in a window.
type NodeStats struct {
	Layer         string  `json:"layer"`
	Node          string  `json:"node"`
	Success       int     `json:"success"`
	Error         int     `json:"error"`
	Skip          int     `json:"skip"`
	AvgDurationMS float64 `json:"avg_duration_ms"`
}

// TraceFilters contains filtering options for searching traces.
type TraceFilters struct {
	ArticleID string     `json:"article_id,omitempty"`
	Layer     string     `json:"layer,omitempty"`
	Node      string     `json:"node,omitempty"`
	Status    string     `json:"status,omitempty"`
	Since     *time.Time `json:"since,omitempty"`
	Until     *time.Time `json:"until,omitempty"`
	Limit     int        `json:"limit,omitempty"`
	Offset    int        `json:"offset,omitempty"`
}
