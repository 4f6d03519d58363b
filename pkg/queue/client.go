package queue

import (
	"context"
	"fmt"
	"time"

	"github.com/finsight/newsflow/ent"
	"github.com/finsight/newsflow/ent/pipelinejob"
	"github.com/google/uuid"
)

// Client enqueues pipeline jobs. It is the producer side of the queue; the
// dispatcher, fetcher, and admin API all enqueue through it.
type Client struct {
	db *ent.Client
}

// NewClient creates a queue client.
func NewClient(db *ent.Client) *Client {
	return &Client{db: db}
}

// Enqueue inserts a pending job and returns its ID. The worker queue is
// derived from the kind: fetch_batch goes to the scrape queue, everything
// else to the default queue.
func (c *Client) Enqueue(ctx context.Context, kind pipelinejob.Kind, payload map[string]interface{}) (string, error) {
	jobID := uuid.NewString()

	create := c.db.PipelineJob.Create().
		SetID(jobID).
		SetKind(kind).
		SetQueue(queueForKind(kind))
	if payload != nil {
		create = create.SetPayload(payload)
	}

	if _, err := create.Save(ctx); err != nil {
		return "", fmt.Errorf("enqueue %s job: %w", kind, err)
	}
	return jobID, nil
}

// PruneTerminalBefore deletes terminal jobs completed before the cutoff.
// Used by the retention sweep; pending and in-progress jobs are never touched.
func (c *Client) PruneTerminalBefore(ctx context.Context, cutoff time.Time) (int, error) {
	n, err := c.db.PipelineJob.Delete().
		Where(
			pipelinejob.StatusIn(
				pipelinejob.StatusCompleted,
				pipelinejob.StatusFailed,
				pipelinejob.StatusCancelled,
				pipelinejob.StatusTimedOut,
			),
			pipelinejob.CompletedAtLT(cutoff),
		).
		Exec(ctx)
	if err != nil {
		return 0, fmt.Errorf("prune terminal jobs: %w", err)
	}
	return n, nil
}
