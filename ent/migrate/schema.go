// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// ArticlesColumns holds the columns for the "articles" table.
	ArticlesColumns = []*schema.Column{
		{Name: "article_id", Type: field.TypeString, Unique: true},
		{Name: "source", Type: field.TypeString},
		{Name: "url", Type: field.TypeString},
		{Name: "title", Type: field.TypeString, Size: 2147483647},
		{Name: "summary", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "symbol", Type: field.TypeString, Nullable: true},
		{Name: "market", Type: field.TypeString, Nullable: true},
		{Name: "published_at", Type: field.TypeTime, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "content_status", Type: field.TypeEnum, Enums: []string{"pending", "fetched", "partial", "embedded", "embedding_failed", "failed", "blocked", "deleted"}, Default: "pending"},
		{Name: "filter_status", Type: field.TypeEnum, Enums: []string{"pending", "useful", "uncertain", "skipped", "keep", "delete", "fine_keep", "fine_delete"}, Default: "pending"},
		{Name: "content_file_path", Type: field.TypeString, Nullable: true},
		{Name: "related_entities", Type: field.TypeJSON, Nullable: true},
		{Name: "industry_tags", Type: field.TypeJSON, Nullable: true},
		{Name: "event_tags", Type: field.TypeJSON, Nullable: true},
		{Name: "sentiment_tag", Type: field.TypeString, Nullable: true},
		{Name: "investment_summary", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "detailed_summary", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "analysis_report", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "primary_entity", Type: field.TypeString, Nullable: true},
		{Name: "has_stock_entity", Type: field.TypeBool, Default: false},
		{Name: "has_macro_entity", Type: field.TypeBool, Default: false},
		{Name: "max_entity_score", Type: field.TypeFloat64, Default: 0},
		{Name: "error_message", Type: field.TypeString, Nullable: true},
	}
	// ArticlesTable holds the schema information for the "articles" table.
	ArticlesTable = &schema.Table{
		Name:       "articles",
		Columns:    ArticlesColumns,
		PrimaryKey: []*schema.Column{ArticlesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "article_source_url",
				Unique:  true,
				Columns: []*schema.Column{ArticlesColumns[1], ArticlesColumns[2]},
			},
			{
				Name:    "article_content_status",
				Unique:  false,
				Columns: []*schema.Column{ArticlesColumns[10]},
			},
			{
				Name:    "article_filter_status",
				Unique:  false,
				Columns: []*schema.Column{ArticlesColumns[11]},
			},
			{
				Name:    "article_content_status_created_at",
				Unique:  false,
				Columns: []*schema.Column{ArticlesColumns[10], ArticlesColumns[8]},
			},
			{
				Name:    "article_symbol",
				Unique:  false,
				Columns: []*schema.Column{ArticlesColumns[5]},
			},
			{
				Name:    "article_published_at",
				Unique:  false,
				Columns: []*schema.Column{ArticlesColumns[7]},
			},
		},
	}
	// FeedsColumns holds the columns for the "feeds" table.
	FeedsColumns = []*schema.Column{
		{Name: "feed_id", Type: field.TypeString, Unique: true},
		{Name: "route", Type: field.TypeString, Unique: true},
		{Name: "name", Type: field.TypeString, Nullable: true},
		{Name: "category", Type: field.TypeString, Nullable: true},
		{Name: "interval_minutes", Type: field.TypeInt, Default: 30},
		{Name: "fulltext", Type: field.TypeBool, Default: false},
		{Name: "enabled", Type: field.TypeBool, Default: true},
		{Name: "last_poll_at", Type: field.TypeTime, Nullable: true},
		{Name: "etag", Type: field.TypeString, Nullable: true},
		{Name: "last_modified", Type: field.TypeString, Nullable: true},
		{Name: "consecutive_errors", Type: field.TypeInt, Default: 0},
		{Name: "article_count", Type: field.TypeInt, Default: 0},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// FeedsTable holds the schema information for the "feeds" table.
	FeedsTable = &schema.Table{
		Name:       "feeds",
		Columns:    FeedsColumns,
		PrimaryKey: []*schema.Column{FeedsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "feed_enabled",
				Unique:  false,
				Columns: []*schema.Column{FeedsColumns[6]},
			},
			{
				Name:    "feed_enabled_last_poll_at",
				Unique:  false,
				Columns: []*schema.Column{FeedsColumns[6], FeedsColumns[7]},
			},
		},
	}
	// PipelineJobsColumns holds the columns for the "pipeline_jobs" table.
	PipelineJobsColumns = []*schema.Column{
		{Name: "job_id", Type: field.TypeString, Unique: true},
		{Name: "kind", Type: field.TypeEnum, Enums: []string{"monitor", "fetch_batch", "article_analysis"}},
		{Name: "queue", Type: field.TypeString, Default: "default"},
		{Name: "payload", Type: field.TypeJSON, Nullable: true},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending", "in_progress", "completed", "failed", "cancelled", "timed_out"}, Default: "pending"},
		{Name: "attempts", Type: field.TypeInt, Default: 0},
		{Name: "max_attempts", Type: field.TypeInt, Default: 3},
		{Name: "run_at", Type: field.TypeTime},
		{Name: "pod_id", Type: field.TypeString, Nullable: true},
		{Name: "started_at", Type: field.TypeTime, Nullable: true},
		{Name: "completed_at", Type: field.TypeTime, Nullable: true},
		{Name: "last_heartbeat_at", Type: field.TypeTime, Nullable: true},
		{Name: "error_message", Type: field.TypeString, Nullable: true},
		{Name: "result", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
	}
	// PipelineJobsTable holds the schema information for the "pipeline_jobs" table.
	PipelineJobsTable = &schema.Table{
		Name:       "pipeline_jobs",
		Columns:    PipelineJobsColumns,
		PrimaryKey: []*schema.Column{PipelineJobsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "pipelinejob_status_queue_run_at",
				Unique:  false,
				Columns: []*schema.Column{PipelineJobsColumns[4], PipelineJobsColumns[2], PipelineJobsColumns[7]},
			},
			{
				Name:    "pipelinejob_status_last_heartbeat_at",
				Unique:  false,
				Columns: []*schema.Column{PipelineJobsColumns[4], PipelineJobsColumns[11]},
			},
			{
				Name:    "pipelinejob_kind_status",
				Unique:  false,
				Columns: []*schema.Column{PipelineJobsColumns[1], PipelineJobsColumns[4]},
			},
			{
				Name:    "pipelinejob_created_at",
				Unique:  false,
				Columns: []*schema.Column{PipelineJobsColumns[14]},
			},
		},
	}
	// PipelineTracesColumns holds the columns for the "pipeline_traces" table.
	PipelineTracesColumns = []*schema.Column{
		{Name: "trace_id", Type: field.TypeString, Unique: true},
		{Name: "layer", Type: field.TypeString},
		{Name: "node", Type: field.TypeString},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"success", "error", "skip"}},
		{Name: "duration_ms", Type: field.TypeInt, Default: 0},
		{Name: "metadata", Type: field.TypeJSON, Nullable: true},
		{Name: "error", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "article_id", Type: field.TypeString},
	}
	// PipelineTracesTable holds the schema information for the "pipeline_traces" table.
	PipelineTracesTable = &schema.Table{
		Name:       "pipeline_traces",
		Columns:    PipelineTracesColumns,
		PrimaryKey: []*schema.Column{PipelineTracesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "pipeline_traces_articles_traces",
				Columns:    []*schema.Column{PipelineTracesColumns[8]},
				RefColumns: []*schema.Column{ArticlesColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "pipelinetrace_article_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{PipelineTracesColumns[8], PipelineTracesColumns[7]},
			},
			{
				Name:    "pipelinetrace_layer_node_status",
				Unique:  false,
				Columns: []*schema.Column{PipelineTracesColumns[1], PipelineTracesColumns[2], PipelineTracesColumns[3]},
			},
			{
				Name:    "pipelinetrace_created_at",
				Unique:  false,
				Columns: []*schema.Column{PipelineTracesColumns[7]},
			},
		},
	}
	// SystemSettingsColumns holds the columns for the "system_settings" table.
	SystemSettingsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "key", Type: field.TypeString, Unique: true},
		{Name: "value", Type: field.TypeString},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// SystemSettingsTable holds the schema information for the "system_settings" table.
	SystemSettingsTable = &schema.Table{
		Name:       "system_settings",
		Columns:    SystemSettingsColumns,
		PrimaryKey: []*schema.Column{SystemSettingsColumns[0]},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		ArticlesTable,
		FeedsTable,
		PipelineJobsTable,
		PipelineTracesTable,
		SystemSettingsTable,
	}
)

func init() {
	PipelineTracesTable.ForeignKeys[0].RefTable = ArticlesTable
}
