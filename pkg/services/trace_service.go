package services

import (
	"context"
	"fmt"
	"time"

	"github.com/finsight/newsflow/ent"
	"github.com/finsight/newsflow/ent/pipelinetrace"
	"github.com/finsight/newsflow/pkg/models"
	"github.com/google/uuid"
)

// traceErrorMaxLen caps stored error strings; full errors go to the log.
const traceErrorMaxLen = 200

// TraceService writes and queries the append-only pipeline trace.
type TraceService struct {
	client *ent.Client
}

// NewTraceService creates a new TraceService.
func NewTraceService(client *ent.Client) *TraceService {
	return &TraceService{client: client}
}

// Record writes a single trace event.
func (s *TraceService) Record(ctx context.Context, ev models.TraceEvent) error {
	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	_, err := s.builder(s.client, ev).Save(writeCtx)
	if err != nil {
		return fmt.Errorf("failed to record trace: %w", err)
	}
	return nil
}

// RecordMany writes a batch of trace events in one transaction. The workflow
// buffers events per article and flushes them here, so a crash mid-article
// loses the whole buffer rather than leaving a partial timeline.
func (s *TraceService) RecordMany(ctx context.Context, events []models.TraceEvent) error {
	if len(events) == 0 {
		return nil
	}

	writeCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	tx, err := s.client.Tx(writeCtx)
	if err != nil {
		return fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	builders := make([]*ent.PipelineTraceCreate, 0, len(events))
	for _, ev := range events {
		builders = append(builders, s.builder(tx.Client(), ev))
	}
	if _, err := tx.PipelineTrace.CreateBulk(builders...).Save(writeCtx); err != nil {
		return fmt.Errorf("failed to record trace batch: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit trace batch: %w", err)
	}
	return nil
}

// GetTimeline returns an article's trace events in occurrence order.
func (s *TraceService) GetTimeline(ctx context.Context, articleID string) ([]*ent.PipelineTrace, error) {
	traces, err := s.client.PipelineTrace.Query().
		Where(pipelinetrace.ArticleIDEQ(articleID)).
		Order(ent.Asc(pipelinetrace.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get trace timeline: %w", err)
	}
	return traces, nil
}

// WindowStats aggregates trace outcomes per (layer, node) since the given
// time. Used by the pipeline stats endpoint.
func (s *TraceService) WindowStats(ctx context.Context, since time.Time) ([]models.NodeStats, error) {
	var rows []struct {
		Layer      string  `json:"layer"`
		Node       string  `json:"node"`
		Status     string  `json:"status"`
		Count      int     `json:"count"`
		AvgDuation float64 `json:"avg_duration_ms"`
	}
	err := s.client.PipelineTrace.Query().
		Where(pipelinetrace.CreatedAtGTE(since)).
		GroupBy(pipelinetrace.FieldLayer, pipelinetrace.FieldNode, pipelinetrace.FieldStatus).
		Aggregate(
			ent.Count(),
			ent.As(ent.Mean(pipelinetrace.FieldDurationMs), "avg_duration_ms"),
		).
		Scan(ctx, &rows)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate traces: %w", err)
	}

	// Collapse the per-status rows into one entry per (layer, node).
	byNode := make(map[string]*models.NodeStats)
	order := make([]string, 0)
	totals := make(map[string]int)
	weighted := make(map[string]float64)
	for _, r := range rows {
		key := r.Layer + "/" + r.Node
		stats, ok := byNode[key]
		if !ok {
			stats = &models.NodeStats{Layer: r.Layer, Node: r.Node}
			byNode[key] = stats
			order = append(order, key)
		}
		switch r.Status {
		case models.TraceStatusSuccess:
			stats.Success += r.Count
		case models.TraceStatusError:
			stats.Error += r.Count
		case models.TraceStatusSkip:
			stats.Skip += r.Count
		}
		totals[key] += r.Count
		weighted[key] += r.AvgDuation * float64(r.Count)
	}

	out := make([]models.NodeStats, 0, len(order))
	for _, key := range order {
		stats := byNode[key]
		if totals[key] > 0 {
			stats.AvgDurationMS = weighted[key] / float64(totals[key])
		}
		out = append(out, *stats)
	}
	return out, nil
}

// SearchTraces returns trace events matching the filters, newest first.
func (s *TraceService) SearchTraces(ctx context.Context, filters models.TraceFilters) ([]*ent.PipelineTrace, int, error) {
	query := s.client.PipelineTrace.Query()

	if filters.ArticleID != "" {
		query = query.Where(pipelinetrace.ArticleIDEQ(filters.ArticleID))
	}
	if filters.Layer != "" {
		query = query.Where(pipelinetrace.LayerEQ(filters.Layer))
	}
	if filters.Node != "" {
		query = query.Where(pipelinetrace.NodeEQ(filters.Node))
	}
	if filters.Status != "" {
		query = query.Where(pipelinetrace.StatusEQ(pipelinetrace.Status(filters.Status)))
	}
	if filters.Since != nil {
		query = query.Where(pipelinetrace.CreatedAtGTE(*filters.Since))
	}
	if filters.Until != nil {
		query = query.Where(pipelinetrace.CreatedAtLT(*filters.Until))
	}

	totalCount, err := query.Count(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count traces: %w", err)
	}

	limit := filters.Limit
	if limit <= 0 {
		limit = 50
	}
	offset := filters.Offset
	if offset < 0 {
		offset = 0
	}

	traces, err := query.
		Limit(limit).
		Offset(offset).
		Order(ent.Desc(pipelinetrace.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to search traces: %w", err)
	}
	return traces, totalCount, nil
}

// PurgeOlderThan hard-deletes trace rows created before cutoff.
func (s *TraceService) PurgeOlderThan(ctx context.Context, cutoff time.Time) (int, error) {
	deleteCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	n, err := s.client.PipelineTrace.Delete().
		Where(pipelinetrace.CreatedAtLT(cutoff)).
		Exec(deleteCtx)
	if err != nil {
		return 0, fmt.Errorf("failed to purge traces: %w", err)
	}
	return n, nil
}

func (s *TraceService) builder(client *ent.Client, ev models.TraceEvent) *ent.PipelineTraceCreate {
	b := client.PipelineTrace.Create().
		SetID(uuid.New().String()).
		SetArticleID(ev.ArticleID).
		SetLayer(ev.Layer).
		SetNode(ev.Node).
		SetStatus(pipelinetrace.Status(ev.Status)).
		SetDurationMs(int(ev.DurationMS))

	if ev.Metadata != nil {
		b.SetMetadata(ev.Metadata)
	}
	if ev.Error != "" {
		msg := ev.Error
		if len(msg) > traceErrorMaxLen {
			msg = msg[:traceErrorMaxLen]
		}
		b.SetError(msg)
	}
	if !ev.OccurredAt.IsZero() {
		b.SetCreatedAt(ev.OccurredAt)
	}
	return b
}
