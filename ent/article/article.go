// Code generated by ent, DO NOT EDIT.

package article

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the article type in the database.
	Label = "article"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "article_id"
	// FieldSource holds the string denoting the source field in the database.
	FieldSource = "source"
	// FieldURL holds the string denoting the url field in the database.
	FieldURL = "url"
	// FieldTitle holds the string denoting the title field in the database.
	FieldTitle = "title"
	// FieldSummary holds the string denoting the summary field in the database.
	FieldSummary = "summary"
	// FieldSymbol holds the string denoting the symbol field in the database.
	FieldSymbol = "symbol"
	// FieldMarket holds the string denoting the market field in the database.
	FieldMarket = "market"
	// FieldPublishedAt holds the string denoting the published_at field in the database.
	FieldPublishedAt = "published_at"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// FieldContentStatus holds the string denoting the content_status field in the database.
	FieldContentStatus = "content_status"
	// FieldFilterStatus holds the string denoting the filter_status field in the database.
	FieldFilterStatus = "filter_status"
	// FieldContentFilePath holds the string denoting the content_file_path field in the database.
	FieldContentFilePath = "content_file_path"
	// FieldRelatedEntities holds the string denoting the related_entities field in the database.
	FieldRelatedEntities = "related_entities"
	// FieldIndustryTags holds the string denoting the industry_tags field in the database.
	FieldIndustryTags = "industry_tags"
	// FieldEventTags holds the string denoting the event_tags field in the database.
	FieldEventTags = "event_tags"
	// FieldSentimentTag holds the string denoting the sentiment_tag field in the database.
	FieldSentimentTag = "sentiment_tag"
	// FieldInvestmentSummary holds the string denoting the investment_summary field in the database.
	FieldInvestmentSummary = "investment_summary"
	// FieldDetailedSummary holds the string denoting the detailed_summary field in the database.
	FieldDetailedSummary = "detailed_summary"
	// FieldAnalysisReport holds the string denoting the analysis_report field in the database.
	FieldAnalysisReport = "analysis_report"
	// FieldPrimaryEntity holds the string denoting the primary_entity field in the database.
	FieldPrimaryEntity = "primary_entity"
	// FieldHasStockEntity holds the string denoting the has_stock_entity field in the database.
	FieldHasStockEntity = "has_stock_entity"
	// FieldHasMacroEntity holds the string denoting the has_macro_entity field in the database.
	FieldHasMacroEntity = "has_macro_entity"
	// FieldMaxEntityScore holds the string denoting the max_entity_score field in the database.
	FieldMaxEntityScore = "max_entity_score"
	// FieldErrorMessage holds the string denoting the error_message field in the database.
	FieldErrorMessage = "error_message"
	// EdgeTraces holds the string denoting the traces edge name in mutations.
	EdgeTraces = "traces"
	// PipelineTraceFieldID holds the string denoting the ID field of the PipelineTrace.
	PipelineTraceFieldID = "trace_id"
	// Table holds the table name of the article in the database.
	Table = "articles"
	// TracesTable is the table that holds the traces relation/edge.
	TracesTable = "pipeline_traces"
	// TracesInverseTable is the table name for the PipelineTrace entity.
	// It exists in this package in order to avoid circular dependency with the "pipelinetrace" package.
	TracesInverseTable = "pipeline_traces"
	// TracesColumn is the table column denoting the traces relation/edge.
	TracesColumn = "article_id"
)

// Columns holds all SQL columns for article fields.
var Columns = []string{
	FieldID,
	FieldSource,
	FieldURL,
	FieldTitle,
	FieldSummary,
	FieldSymbol,
	FieldMarket,
	FieldPublishedAt,
	FieldCreatedAt,
	FieldUpdatedAt,
	FieldContentStatus,
	FieldFilterStatus,
	FieldContentFilePath,
	FieldRelatedEntities,
	FieldIndustryTags,
	FieldEventTags,
	FieldSentimentTag,
	FieldInvestmentSummary,
	FieldDetailedSummary,
	FieldAnalysisReport,
	FieldPrimaryEntity,
	FieldHasStockEntity,
	FieldHasMacroEntity,
	FieldMaxEntityScore,
	FieldErrorMessage,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
	// DefaultHasStockEntity holds the default value on creation for the "has_stock_entity" field.
	DefaultHasStockEntity bool
	// DefaultHasMacroEntity holds the default value on creation for the "has_macro_entity" field.
	DefaultHasMacroEntity bool
	// DefaultMaxEntityScore holds the default value on creation for the "max_entity_score" field.
	DefaultMaxEntityScore float64
)

// ContentStatus defines the type for the "content_status" enum field.
type ContentStatus string

// ContentStatusPending is the default value of the ContentStatus enum.
const DefaultContentStatus = ContentStatusPending

// ContentStatus values.
const (
	ContentStatusPending         ContentStatus = "pending"
	ContentStatusFetched         ContentStatus = "fetched"
	ContentStatusPartial         ContentStatus = "partial"
	ContentStatusEmbedded        ContentStatus = "embedded"
	ContentStatusEmbeddingFailed ContentStatus = "embedding_failed"
	ContentStatusFailed          ContentStatus = "failed"
	ContentStatusBlocked         ContentStatus = "blocked"
	ContentStatusDeleted         ContentStatus = "deleted"
)

func (cs ContentStatus) String() string {
	return string(cs)
}

// ContentStatusValidator is a validator for the "content_status" field enum values. It is called by the builders before save.
func ContentStatusValidator(cs ContentStatus) error {
	switch cs {
	case ContentStatusPending, ContentStatusFetched, ContentStatusPartial, ContentStatusEmbedded, ContentStatusEmbeddingFailed, ContentStatusFailed, ContentStatusBlocked, ContentStatusDeleted:
		return nil
	default:
		return fmt.Errorf("article: invalid enum value for content_status field: %q", cs)
	}
}

// FilterStatus defines the type for the "filter_status" enum field.
type FilterStatus string

// FilterStatusPending is the default value of the FilterStatus enum.
const DefaultFilterStatus = FilterStatusPending

// FilterStatus values.
const (
	FilterStatusPending    FilterStatus = "pending"
	FilterStatusUseful     FilterStatus = "useful"
	FilterStatusUncertain  FilterStatus = "uncertain"
	FilterStatusSkipped    FilterStatus = "skipped"
	FilterStatusKeep       FilterStatus = "keep"
	FilterStatusDelete     FilterStatus = "delete"
	FilterStatusFineKeep   FilterStatus = "fine_keep"
	FilterStatusFineDelete FilterStatus = "fine_delete"
)

func (fs FilterStatus) String() string {
	return string(fs)
}

// FilterStatusValidator is a validator for the "filter_status" field enum values. It is called by the builders before save.
func FilterStatusValidator(fs FilterStatus) error {
	switch fs {
	case FilterStatusPending, FilterStatusUseful, FilterStatusUncertain, FilterStatusSkipped, FilterStatusKeep, FilterStatusDelete, FilterStatusFineKeep, FilterStatusFineDelete:
		return nil
	default:
		return fmt.Errorf("article: invalid enum value for filter_status field: %q", fs)
	}
}

// OrderOption defines the ordering options for the Article queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// BySource orders the results by the source field.
func BySource(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSource, opts...).ToFunc()
}

// ByURL orders the results by the url field.
func ByURL(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldURL, opts...).ToFunc()
}

// ByTitle orders the results by the title field.
func ByTitle(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTitle, opts...).ToFunc()
}

// BySummary orders the results by the summary field.
func BySummary(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSummary, opts...).ToFunc()
}

// BySymbol orders the results by the symbol field.
func BySymbol(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSymbol, opts...).ToFunc()
}

// ByMarket orders the results by the market field.
func ByMarket(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMarket, opts...).ToFunc()
}

// ByPublishedAt orders the results by the published_at field.
func ByPublishedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPublishedAt, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByContentStatus orders the results by the content_status field.
func ByContentStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldContentStatus, opts...).ToFunc()
}

// ByFilterStatus orders the results by the filter_status field.
func ByFilterStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFilterStatus, opts...).ToFunc()
}

// ByContentFilePath orders the results by the content_file_path field.
func ByContentFilePath(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldContentFilePath, opts...).ToFunc()
}

// BySentimentTag orders the results by the sentiment_tag field.
func BySentimentTag(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSentimentTag, opts...).ToFunc()
}

// ByInvestmentSummary orders the results by the investment_summary field.
func ByInvestmentSummary(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldInvestmentSummary, opts...).ToFunc()
}

// ByDetailedSummary orders the results by the detailed_summary field.
func ByDetailedSummary(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDetailedSummary, opts...).ToFunc()
}

// ByAnalysisReport orders the results by the analysis_report field.
func ByAnalysisReport(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAnalysisReport, opts...).ToFunc()
}

// ByPrimaryEntity orders the results by the primary_entity field.
func ByPrimaryEntity(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPrimaryEntity, opts...).ToFunc()
}

// ByHasStockEntity orders the results by the has_stock_entity field.
func ByHasStockEntity(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldHasStockEntity, opts...).ToFunc()
}

// ByHasMacroEntity orders the results by the has_macro_entity field.
func ByHasMacroEntity(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldHasMacroEntity, opts...).ToFunc()
}

// ByMaxEntityScore orders the results by the max_entity_score field.
func ByMaxEntityScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMaxEntityScore, opts...).ToFunc()
}

// ByErrorMessage orders the results by the error_message field.
func ByErrorMessage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldErrorMessage, opts...).ToFunc()
}

// ByTracesCount orders the results by traces count.
func ByTracesCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newTracesStep(), opts...)
	}
}

// ByTraces orders the results by traces terms.
func ByTraces(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newTracesStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newTracesStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(TracesInverseTable, PipelineTraceFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, TracesTable, TracesColumn),
	)
}
