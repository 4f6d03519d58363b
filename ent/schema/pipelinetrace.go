package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// PipelineTrace holds the schema definition for the PipelineTrace entity.
// Append-only record of a single pipeline node execution, used for
// observability and per-article debugging. Rows are never mutated.
type PipelineTrace struct {
	ent.Schema
}

// Fields of the PipelineTrace.
func (PipelineTrace) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("trace_id").
			Unique().
			Immutable(),
		field.String("article_id").
			Immutable(),
		field.String("layer").
			Immutable().
			Comment("layer1 / layer1_5 / layer2 / dispatcher"),
		field.String("node").
			Immutable().
			Comment("Node name (e.g. read_file, deep_filter, update_db)"),
		field.Enum("status").
			Values("success", "error", "skip").
			Immutable(),
		field.Int("duration_ms").
			Default(0).
			Immutable(),
		field.JSON("metadata", map[string]interface{}{}).
			Optional().
			Immutable().
			Comment("Node-specific data (provider, word_count, routing, ...)"),
		field.String("error").
			Optional().
			Immutable().
			Comment("Error message, truncated to 200 chars"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the PipelineTrace.
func (PipelineTrace) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("article", Article.Type).
			Ref("traces").
			Field("article_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the PipelineTrace.
func (PipelineTrace) Indexes() []ent.Index {
	return []ent.Index{
		// Per-article timeline ordering
		index.Fields("article_id", "created_at"),
		// Aggregate stats grouping
		index.Fields("layer", "node", "status"),
		// Retention sweeps
		index.Fields("created_at"),
	}
}
