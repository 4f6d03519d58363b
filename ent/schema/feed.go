package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Feed holds the schema definition for the Feed entity — an RSS/vendor
// subscription polled by the ingest dispatcher.
type Feed struct {
	ent.Schema
}

// Fields of the Feed.
func (Feed) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("feed_id").
			Unique().
			Immutable(),
		field.String("route").
			Unique().
			Comment("Feed URL or vendor route"),
		field.String("name").
			Optional(),
		field.String("category").
			Optional().
			Comment("Operational grouping (e.g. macro, equities)"),
		field.Int("interval_minutes").
			Default(30).
			Comment("Poll interval"),
		field.Bool("fulltext").
			Default(false).
			Comment("Payload already carries full text; skip the fetch stage"),
		field.Bool("enabled").
			Default(true),
		field.Time("last_poll_at").
			Optional().
			Nillable(),
		field.String("etag").
			Optional().
			Comment("Conditional GET state"),
		field.String("last_modified").
			Optional().
			Comment("Conditional GET state"),
		field.Int("consecutive_errors").
			Default(0),
		field.Int("article_count").
			Default(0).
			Comment("Cumulative articles ingested from this feed"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Indexes of the Feed.
func (Feed) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("enabled"),
		index.Fields("enabled", "last_poll_at"),
	}
}
