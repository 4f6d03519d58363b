package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// PipelineJob holds the schema definition for the PipelineJob entity.
// The database is the queue: workers claim pending jobs with
// FOR UPDATE SKIP LOCKED, heartbeat while processing, and write a
// terminal status when done. Failed jobs are retried with backoff
// by resetting them to pending with a future run_at.
type PipelineJob struct {
	ent.Schema
}

// Fields of the PipelineJob.
func (PipelineJob) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("job_id").
			Unique().
			Immutable(),
		field.Enum("kind").
			Values("monitor", "fetch_batch", "article_analysis").
			Immutable(),
		field.String("queue").
			Default("default").
			Immutable().
			Comment("Worker queue: default (LLM-bound) or scrape (I/O-bound)"),
		field.JSON("payload", map[string]interface{}{}).
			Optional().
			Immutable(),
		field.Enum("status").
			Values("pending", "in_progress", "completed", "failed", "cancelled", "timed_out").
			Default("pending"),
		field.Int("attempts").
			Default(0),
		field.Int("max_attempts").
			Default(3),
		field.Time("run_at").
			Default(time.Now).
			Comment("Earliest claim time; pushed forward on retry backoff"),
		field.String("pod_id").
			Optional().
			Nillable().
			Comment("For multi-replica coordination"),
		field.Time("started_at").
			Optional().
			Nillable(),
		field.Time("completed_at").
			Optional().
			Nillable(),
		field.Time("last_heartbeat_at").
			Optional().
			Nillable().
			Comment("For orphan detection"),
		field.String("error_message").
			Optional().
			Nillable(),
		field.JSON("result", map[string]interface{}{}).
			Optional().
			Comment("Terminal status dict captured by the queue"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Indexes of the PipelineJob.
func (PipelineJob) Indexes() []ent.Index {
	return []ent.Index{
		// Claim query: pending jobs on a queue, FIFO by creation
		index.Fields("status", "queue", "run_at"),
		index.Fields("status", "last_heartbeat_at"),
		index.Fields("kind", "status"),
		index.Fields("created_at"),
	}
}
