// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/finsight/newsflow/ent/feed"
)

// Feed is the model entity for the Feed schema.
type Feed struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// Feed URL or vendor route
	Route string `json:"route,omitempty"`
	// Name holds the value of the "name" field.
	Name string `json:"name,omitempty"`
	// Operational grouping (e.g. macro, equities)
	Category string `json:"category,omitempty"`
	// Poll interval
	IntervalMinutes int `json:"interval_minutes,omitempty"`
	// Payload already carries full text; skip the fetch stage
	Fulltext bool `json:"fulltext,omitempty"`
	// Enabled holds the value of the "enabled" field.
	Enabled bool `json:"enabled,omitempty"`
	// LastPollAt holds the value of the "last_poll_at" field.
	LastPollAt *time.Time `json:"last_poll_at,omitempty"`
	// Conditional GET state
	Etag string `json:"etag,omitempty"`
	// Conditional GET state
	LastModified string `json:"last_modified,omitempty"`
	// ConsecutiveErrors holds the value of the "consecutive_errors" field.
	ConsecutiveErrors int `json:"consecutive_errors,omitempty"`
	// Cumulative articles ingested from this feed
	ArticleCount int `json:"article_count,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt    time.Time `json:"updated_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Feed) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case feed.FieldFulltext, feed.FieldEnabled:
			values[i] = new(sql.NullBool)
		case feed.FieldIntervalMinutes, feed.FieldConsecutiveErrors, feed.FieldArticleCount:
			values[i] = new(sql.NullInt64)
		case feed.FieldID, feed.FieldRoute, feed.FieldName, feed.FieldCategory, feed.FieldEtag, feed.FieldLastModified:
			values[i] = new(sql.NullString)
		case feed.FieldLastPollAt, feed.FieldCreatedAt, feed.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Feed fields.
func (_m *Feed) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case feed.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case feed.FieldRoute:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field route", values[i])
			} else if value.Valid {
				_m.Route = value.String
			}
		case feed.FieldName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field name", values[i])
			} else if value.Valid {
				_m.Name = value.String
			}
		case feed.FieldCategory:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field category", values[i])
			} else if value.Valid {
				_m.Category = value.String
			}
		case feed.FieldIntervalMinutes:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field interval_minutes", values[i])
			} else if value.Valid {
				_m.IntervalMinutes = int(value.Int64)
			}
		case feed.FieldFulltext:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field fulltext", values[i])
			} else if value.Valid {
				_m.Fulltext = value.Bool
			}
		case feed.FieldEnabled:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field enabled", values[i])
			} else if value.Valid {
				_m.Enabled = value.Bool
			}
		case feed.FieldLastPollAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field last_poll_at", values[i])
			} else if value.Valid {
				_m.LastPollAt = new(time.Time)
				*_m.LastPollAt = value.Time
			}
		case feed.FieldEtag:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field etag", values[i])
			} else if value.Valid {
				_m.Etag = value.String
			}
		case feed.FieldLastModified:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field last_modified", values[i])
			} else if value.Valid {
				_m.LastModified = value.String
			}
		case feed.FieldConsecutiveErrors:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field consecutive_errors", values[i])
			} else if value.Valid {
				_m.ConsecutiveErrors = int(value.Int64)
			}
		case feed.FieldArticleCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field article_count", values[i])
			} else if value.Valid {
				_m.ArticleCount = int(value.Int64)
			}
		case feed.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case feed.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Feed.
// This includes values selected through modifiers, order, etc.
func (_m *Feed) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this Feed.
// Note that you need to call Feed.Unwrap() before calling this method if this Feed
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Feed) Update() *FeedUpdateOne {
	return NewFeedClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Feed entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Feed) Unwrap() *Feed {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Feed is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Feed) String() string {
	var builder strings.Builder
	builder.WriteString("Feed(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("route=")
	builder.WriteString(_m.Route)
	builder.WriteString(", ")
	builder.WriteString("name=")
	builder.WriteString(_m.Name)
	builder.WriteString(", ")
	builder.WriteString("category=")
	builder.WriteString(_m.Category)
	builder.WriteString(", ")
	builder.WriteString("interval_minutes=")
	builder.WriteString(fmt.Sprintf("%v", _m.IntervalMinutes))
	builder.WriteString(", ")
	builder.WriteString("fulltext=")
	builder.WriteString(fmt.Sprintf("%v", _m.Fulltext))
	builder.WriteString(", ")
	builder.WriteString("enabled=")
	builder.WriteString(fmt.Sprintf("%v", _m.Enabled))
	builder.WriteString(", ")
	if v := _m.LastPollAt; v != nil {
		builder.WriteString("last_poll_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("etag=")
	builder.WriteString(_m.Etag)
	builder.WriteString(", ")
	builder.WriteString("last_modified=")
	builder.WriteString(_m.LastModified)
	builder.WriteString(", ")
	builder.WriteString("consecutive_errors=")
	builder.WriteString(fmt.Sprintf("%v", _m.ConsecutiveErrors))
	builder.WriteString(", ")
	builder.WriteString("article_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.ArticleCount))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Feeds is a parsable slice of Feed.
type Feeds []*Feed
