package queue

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/finsight/newsflow/ent"
	"github.com/finsight/newsflow/ent/pipelinejob"
	"github.com/finsight/newsflow/pkg/fetcher"
	"github.com/finsight/newsflow/pkg/workflow"
)

// monitorRunner runs one feed monitoring cycle (the dispatcher).
type monitorRunner interface {
	Run(ctx context.Context) error
}

// batchFetcher downloads a batch of article bodies.
type batchFetcher interface {
	BatchFetch(ctx context.Context, items []fetcher.Item) error
}

// articleProcessor runs the per-article analysis workflow.
type articleProcessor interface {
	Run(ctx context.Context, job workflow.Job) (*workflow.State, error)
}

// JobExecutor routes claimed jobs to the pipeline component that handles
// their kind: monitor → dispatcher, fetch_batch → fetcher, article_analysis
// → workflow engine.
type JobExecutor struct {
	monitor  monitorRunner
	fetcher  batchFetcher
	workflow articleProcessor
}

// NewJobExecutor creates the executor wired to the three pipeline stages.
func NewJobExecutor(monitor monitorRunner, f batchFetcher, w articleProcessor) *JobExecutor {
	return &JobExecutor{monitor: monitor, fetcher: f, workflow: w}
}

// Execute dispatches the job by kind and maps the outcome to a queue status.
func (e *JobExecutor) Execute(ctx context.Context, job *ent.PipelineJob) *ExecutionResult {
	var err error
	result := map[string]interface{}{}

	switch job.Kind {
	case pipelinejob.KindMonitor:
		err = e.monitor.Run(ctx)
	case pipelinejob.KindFetchBatch:
		err = e.executeFetchBatch(ctx, job, result)
	case pipelinejob.KindArticleAnalysis:
		err = e.executeArticleAnalysis(ctx, job, result)
	default:
		err = fmt.Errorf("unknown job kind %q", job.Kind)
	}

	if err != nil {
		return &ExecutionResult{Status: statusForError(ctx, err), Error: err}
	}
	return &ExecutionResult{Status: pipelinejob.StatusCompleted, Result: result}
}

// fetchBatchPayload is the fetch_batch job payload shape.
type fetchBatchPayload struct {
	Items []fetchBatchItem `json:"items"`
}

type fetchBatchItem struct {
	ArticleID    string `json:"article_id"`
	URL          string `json:"url"`
	Source       string `json:"source"`
	Title        string `json:"title"`
	Summary      string `json:"summary"`
	Symbol       string `json:"symbol"`
	Market       string `json:"market"`
	Routing      string `json:"routing"`
	FilterStatus string `json:"filter_status"`
}

func (e *JobExecutor) executeFetchBatch(ctx context.Context, job *ent.PipelineJob, result map[string]interface{}) error {
	var payload fetchBatchPayload
	if err := decodePayload(job.Payload, &payload); err != nil {
		return err
	}
	if len(payload.Items) == 0 {
		return errors.New("fetch_batch payload has no items")
	}

	items := make([]fetcher.Item, len(payload.Items))
	for i, it := range payload.Items {
		items[i] = fetcher.Item{
			ArticleID:    it.ArticleID,
			URL:          it.URL,
			Source:       it.Source,
			Title:        it.Title,
			Summary:      it.Summary,
			Symbol:       it.Symbol,
			Market:       it.Market,
			Routing:      it.Routing,
			FilterStatus: it.FilterStatus,
		}
	}

	if err := e.fetcher.BatchFetch(ctx, items); err != nil {
		return err
	}
	result["items"] = len(items)
	return nil
}

// articleAnalysisPayload is the article_analysis job payload shape.
type articleAnalysisPayload struct {
	ArticleID string `json:"article_id"`
	FilePath  string `json:"file_path"`
	Routing   string `json:"routing"`
	Partial   bool   `json:"partial"`
}

func (e *JobExecutor) executeArticleAnalysis(ctx context.Context, job *ent.PipelineJob, result map[string]interface{}) error {
	var payload articleAnalysisPayload
	if err := decodePayload(job.Payload, &payload); err != nil {
		return err
	}
	if payload.ArticleID == "" {
		return errors.New("article_analysis payload missing article_id")
	}

	state, err := e.workflow.Run(ctx, workflow.Job{
		ArticleID: payload.ArticleID,
		FilePath:  payload.FilePath,
		Routing:   payload.Routing,
		Partial:   payload.Partial,
	})
	if err != nil {
		return err
	}

	result["article_id"] = payload.ArticleID
	result["decision"] = state.Decision
	result["final_status"] = string(state.FinalStatus)
	return nil
}

// decodePayload converts the stored JSON payload map into a typed struct.
func decodePayload(payload map[string]interface{}, out interface{}) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("encode job payload: %w", err)
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("decode job payload: %w", err)
	}
	return nil
}

// statusForError distinguishes timeout and cancellation from plain failure.
func statusForError(ctx context.Context, err error) pipelinejob.Status {
	switch {
	case errors.Is(err, context.DeadlineExceeded) || errors.Is(ctx.Err(), context.DeadlineExceeded):
		return pipelinejob.StatusTimedOut
	case errors.Is(err, context.Canceled) || errors.Is(ctx.Err(), context.Canceled):
		return pipelinejob.StatusCancelled
	default:
		return pipelinejob.StatusFailed
	}
}
