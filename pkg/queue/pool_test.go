package queue

import (
	"context"
	"testing"

	"github.com/finsight/newsflow/ent/pipelinejob"
	"github.com/stretchr/testify/assert"
)

func TestQueueForKind(t *testing.T) {
	assert.Equal(t, QueueScrape, queueForKind(pipelinejob.KindFetchBatch))
	assert.Equal(t, QueueDefault, queueForKind(pipelinejob.KindMonitor))
	assert.Equal(t, QueueDefault, queueForKind(pipelinejob.KindArticleAnalysis))
}

func TestPoolRegisterAndCancelJob(t *testing.T) {
	pool := &WorkerPool{
		activeJobs: make(map[string]context.CancelFunc),
	}

	ctx, cancel := context.WithCancel(context.Background())
	pool.RegisterJob("job-1", cancel)

	assert.True(t, pool.CancelJob("job-1"))
	assert.Error(t, ctx.Err()) // Context should be cancelled

	assert.False(t, pool.CancelJob("unknown"))
}

func TestPoolUnregisterJob(t *testing.T) {
	pool := &WorkerPool{
		activeJobs: make(map[string]context.CancelFunc),
	}

	_, cancel := context.WithCancel(context.Background())
	pool.RegisterJob("job-1", cancel)
	pool.UnregisterJob("job-1")

	assert.False(t, pool.CancelJob("job-1"), "cancel after unregister should fail")
}
