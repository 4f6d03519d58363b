// Code generated by ent, DO NOT EDIT.

package feed

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the feed type in the database.
	Label = "feed"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "feed_id"
	// FieldRoute holds the string denoting the route field in the database.
	FieldRoute = "route"
	// FieldName holds the string denoting the name field in the database.
	FieldName = "name"
	// FieldCategory holds the string denoting the category field in the database.
	FieldCategory = "category"
	// FieldIntervalMinutes holds the string denoting the interval_minutes field in the database.
	FieldIntervalMinutes = "interval_minutes"
	// FieldFulltext holds the string denoting the fulltext field in the database.
	FieldFulltext = "fulltext"
	// FieldEnabled holds the string denoting the enabled field in the database.
	FieldEnabled = "enabled"
	// FieldLastPollAt holds the string denoting the last_poll_at field in the database.
	FieldLastPollAt = "last_poll_at"
	// FieldEtag holds the string denoting the etag field in the database.
	FieldEtag = "etag"
	// FieldLastModified holds the string denoting the last_modified field in the database.
	FieldLastModified = "last_modified"
	// FieldConsecutiveErrors holds the string denoting the consecutive_errors field in the database.
	FieldConsecutiveErrors = "consecutive_errors"
	// FieldArticleCount holds the string denoting the article_count field in the database.
	FieldArticleCount = "article_count"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// Table holds the table name of the feed in the database.
	Table = "feeds"
)

// Columns holds all SQL columns for feed fields.
var Columns = []string{
	FieldID,
	FieldRoute,
	FieldName,
	FieldCategory,
	FieldIntervalMinutes,
	FieldFulltext,
	FieldEnabled,
	FieldLastPollAt,
	FieldEtag,
	FieldLastModified,
	FieldConsecutiveErrors,
	FieldArticleCount,
	FieldCreatedAt,
	FieldUpdatedAt,
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
	// DefaultIntervalMinutes holds the default value on creation for the "interval_minutes" field.
	DefaultIntervalMinutes int
	// DefaultFulltext holds the default value on creation for the "fulltext" field.
	DefaultFulltext bool
	// DefaultEnabled holds the default value on creation for the "enabled" field.
	DefaultEnabled bool
	// DefaultConsecutiveErrors holds the default value on creation for the "consecutive_errors" field.
	DefaultConsecutiveErrors int
	// DefaultArticleCount holds the default value on creation for the "article_count" field.
	DefaultArticleCount int
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// OrderOption defines the ordering options for the Feed queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByRoute orders the results by the route field.
func ByRoute(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRoute, opts...).ToFunc()
}

// ByName orders the results by the name field.
func ByName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldName, opts...).ToFunc()
}

// ByCategory orders the results by the category field.
func ByCategory(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCategory, opts...).ToFunc()
}

// ByIntervalMinutes orders the results by the interval_minutes field.
func ByIntervalMinutes(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIntervalMinutes, opts...).ToFunc()
}

// ByFulltext orders the results by the fulltext field.
func ByFulltext(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFulltext, opts...).ToFunc()
}

// ByEnabled orders the results by the enabled field.
func ByEnabled(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEnabled, opts...).ToFunc()
}

// ByLastPollAt orders the results by the last_poll_at field.
func ByLastPollAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastPollAt, opts...).ToFunc()
}

// ByEtag orders the results by the etag field.
func ByEtag(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEtag, opts...).ToFunc()
}

// ByLastModified orders the results by the last_modified field.
func ByLastModified(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastModified, opts...).ToFunc()
}

// ByConsecutiveErrors orders the results by the consecutive_errors field.
func ByConsecutiveErrors(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldConsecutiveErrors, opts...).ToFunc()
}

// ByArticleCount orders the results by the article_count field.
func ByArticleCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldArticleCount, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}
