package queue

import (
	"context"
	"errors"
	"testing"

	"github.com/finsight/newsflow/ent"
	"github.com/finsight/newsflow/ent/article"
	"github.com/finsight/newsflow/ent/pipelinejob"
	"github.com/finsight/newsflow/pkg/fetcher"
	"github.com/finsight/newsflow/pkg/workflow"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeMonitor struct {
	calls int
	err   error
}

func (f *fakeMonitor) Run(ctx context.Context) error {
	f.calls++
	return f.err
}

type fakeFetcher struct {
	items []fetcher.Item
	err   error
}

func (f *fakeFetcher) BatchFetch(ctx context.Context, items []fetcher.Item) error {
	f.items = items
	return f.err
}

type fakeWorkflow struct {
	job   workflow.Job
	state *workflow.State
	err   error
}

func (f *fakeWorkflow) Run(ctx context.Context, job workflow.Job) (*workflow.State, error) {
	f.job = job
	return f.state, f.err
}

func newTestExecutor() (*JobExecutor, *fakeMonitor, *fakeFetcher, *fakeWorkflow) {
	m := &fakeMonitor{}
	f := &fakeFetcher{}
	w := &fakeWorkflow{state: &workflow.State{
		Decision:    workflow.DecisionKeep,
		FinalStatus: article.ContentStatusEmbedded,
	}}
	return NewJobExecutor(m, f, w), m, f, w
}

func TestExecuteMonitorJob(t *testing.T) {
	exec, m, _, _ := newTestExecutor()

	result := exec.Execute(context.Background(), &ent.PipelineJob{
		ID:   "job-1",
		Kind: pipelinejob.KindMonitor,
	})

	assert.Equal(t, pipelinejob.StatusCompleted, result.Status)
	assert.Equal(t, 1, m.calls)
}

func TestExecuteFetchBatchJob(t *testing.T) {
	exec, _, f, _ := newTestExecutor()

	result := exec.Execute(context.Background(), &ent.PipelineJob{
		ID:   "job-1",
		Kind: pipelinejob.KindFetchBatch,
		Payload: map[string]interface{}{
			"items": []interface{}{
				map[string]interface{}{
					"article_id": "art-1",
					"url":        "https://example.com/a",
					"source":     "Example",
					"routing":    "full_analysis",
				},
				map[string]interface{}{
					"article_id": "art-2",
					"url":        "https://example.com/b",
				},
			},
		},
	})

	require.Equal(t, pipelinejob.StatusCompleted, result.Status)
	require.Len(t, f.items, 2)
	assert.Equal(t, "art-1", f.items[0].ArticleID)
	assert.Equal(t, "https://example.com/a", f.items[0].URL)
	assert.Equal(t, "full_analysis", f.items[0].Routing)
	assert.Equal(t, "art-2", f.items[1].ArticleID)
	assert.Equal(t, 2, result.Result["items"])
}

func TestExecuteFetchBatchJobEmptyPayload(t *testing.T) {
	exec, _, _, _ := newTestExecutor()

	result := exec.Execute(context.Background(), &ent.PipelineJob{
		ID:   "job-1",
		Kind: pipelinejob.KindFetchBatch,
	})

	assert.Equal(t, pipelinejob.StatusFailed, result.Status)
	assert.Error(t, result.Error)
}

func TestExecuteArticleAnalysisJob(t *testing.T) {
	exec, _, _, w := newTestExecutor()

	result := exec.Execute(context.Background(), &ent.PipelineJob{
		ID:   "job-1",
		Kind: pipelinejob.KindArticleAnalysis,
		Payload: map[string]interface{}{
			"article_id": "art-1",
			"file_path":  "2025/06/art-1.json",
			"routing":    "full_analysis",
			"partial":    true,
		},
	})

	require.Equal(t, pipelinejob.StatusCompleted, result.Status)
	assert.Equal(t, "art-1", w.job.ArticleID)
	assert.Equal(t, "2025/06/art-1.json", w.job.FilePath)
	assert.Equal(t, "full_analysis", w.job.Routing)
	assert.True(t, w.job.Partial)
	assert.Equal(t, "keep", result.Result["decision"])
	assert.Equal(t, "embedded", result.Result["final_status"])
}

func TestExecuteArticleAnalysisMissingID(t *testing.T) {
	exec, _, _, _ := newTestExecutor()

	result := exec.Execute(context.Background(), &ent.PipelineJob{
		ID:      "job-1",
		Kind:    pipelinejob.KindArticleAnalysis,
		Payload: map[string]interface{}{"file_path": "x.json"},
	})

	assert.Equal(t, pipelinejob.StatusFailed, result.Status)
}

func TestExecuteMapsFailure(t *testing.T) {
	exec, m, _, _ := newTestExecutor()
	m.err = errors.New("feed store down")

	result := exec.Execute(context.Background(), &ent.PipelineJob{
		ID:   "job-1",
		Kind: pipelinejob.KindMonitor,
	})

	assert.Equal(t, pipelinejob.StatusFailed, result.Status)
	assert.ErrorContains(t, result.Error, "feed store down")
}

func TestExecuteMapsTimeout(t *testing.T) {
	exec, m, _, _ := newTestExecutor()
	m.err = context.DeadlineExceeded

	result := exec.Execute(context.Background(), &ent.PipelineJob{
		ID:   "job-1",
		Kind: pipelinejob.KindMonitor,
	})

	assert.Equal(t, pipelinejob.StatusTimedOut, result.Status)
}

func TestExecuteMapsCancellation(t *testing.T) {
	exec, m, _, _ := newTestExecutor()
	m.err = errors.New("wrapped failure")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	result := exec.Execute(ctx, &ent.PipelineJob{
		ID:   "job-1",
		Kind: pipelinejob.KindMonitor,
	})

	assert.Equal(t, pipelinejob.StatusCancelled, result.Status)
}
