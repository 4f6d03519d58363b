package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Article holds the schema definition for the Article entity — the central
// unit of work flowing through the ingestion and analysis pipeline.
type Article struct {
	ent.Schema
}

// Fields of the Article.
func (Article) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("article_id").
			Unique().
			Immutable(),
		field.String("source").
			Comment("Feed or vendor identifier the article came from"),
		field.String("url").
			Comment("Canonical fetch URL"),
		field.Text("title"),
		field.Text("summary").
			Optional().
			Comment("Short summary from the feed payload (full-text searchable)"),
		field.String("symbol").
			Optional().
			Comment("Associated market symbol, if any"),
		field.String("market").
			Optional().
			Comment("Market region (e.g. US, HK, CN)"),
		field.Time("published_at").
			Optional().
			Nillable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable().
			Comment("Ingestion timestamp"),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),

		// Pipeline state
		field.Enum("content_status").
			Values("pending", "fetched", "partial", "embedded", "embedding_failed", "failed", "blocked", "deleted").
			Default("pending"),
		field.Enum("filter_status").
			Values("pending", "useful", "uncertain", "skipped", "keep", "delete", "fine_keep", "fine_delete").
			Default("pending"),
		field.String("content_file_path").
			Optional().
			Nillable().
			Comment("Path of the persisted content file; nil once deleted"),

		// Analysis outputs (written together by the update_db workflow node)
		field.JSON("related_entities", []map[string]interface{}{}).
			Optional().
			Comment("[{entity, type, score}] from the entity extractor"),
		field.JSON("industry_tags", []string{}).
			Optional(),
		field.JSON("event_tags", []string{}).
			Optional(),
		field.String("sentiment_tag").
			Optional().
			Comment("bullish / bearish / neutral"),
		field.Text("investment_summary").
			Optional(),
		field.Text("detailed_summary").
			Optional(),
		field.Text("analysis_report").
			Optional().
			Comment("Markdown analysis report (full-text searchable)"),
		field.String("primary_entity").
			Optional(),
		field.Bool("has_stock_entity").
			Default(false),
		field.Bool("has_macro_entity").
			Default(false),
		field.Float("max_entity_score").
			Default(0),
		field.String("error_message").
			Optional().
			Nillable(),
	}
}

// Edges of the Article.
func (Article) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("traces", PipelineTrace.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the Article.
func (Article) Indexes() []ent.Index {
	return []ent.Index{
		// Dedup invariant: (source, url) identifies at most one article
		index.Fields("source", "url").
			Unique(),
		index.Fields("content_status"),
		index.Fields("filter_status"),
		index.Fields("content_status", "created_at"),
		index.Fields("symbol"),
		index.Fields("published_at"),
	}
}
