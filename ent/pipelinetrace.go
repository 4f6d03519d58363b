// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/finsight/newsflow/ent/article"
	"github.com/finsight/newsflow/ent/pipelinetrace"
)

// PipelineTrace is the model entity for the PipelineTrace schema.
type PipelineTrace struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// ArticleID holds the value of the "article_id" field.
	ArticleID string `json:"article_id,omitempty"`
	// layer1 / layer1_5 / layer2 / dispatcher
	Layer string `json:"layer,omitempty"`
	// Node name (e.g. read_file, deep_filter, update_db)
	Node string `json:"node,omitempty"`
	// Status holds the value of the "status" field.
	Status pipelinetrace.Status `json:"status,omitempty"`
	// DurationMs holds the value of the "duration_ms" field.
	DurationMs int `json:"duration_ms,omitempty"`
	// Node-specific data (provider, word_count, routing, ...)
	Metadata map[string]interface{} `json:"metadata,omitempty"`
	// Error message, truncated to 200 chars
	Error string `json:"error,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the PipelineTraceQuery when eager-loading is set.
	Edges        PipelineTraceEdges `json:"edges"`
	selectValues sql.SelectValues
}

// PipelineTraceEdges holds the relations/edges for other nodes in the graph.
type PipelineTraceEdges struct {
	// Article holds the value of the article edge.
	Article *Article `json:"article,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// ArticleOrErr returns the Article value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e PipelineTraceEdges) ArticleOrErr() (*Article, error) {
	if e.Article != nil {
		return e.Article, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: article.Label}
	}
	return nil, &NotLoadedError{edge: "article"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*PipelineTrace) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case pipelinetrace.FieldMetadata:
			values[i] = new([]byte)
		case pipelinetrace.FieldDurationMs:
			values[i] = new(sql.NullInt64)
		case pipelinetrace.FieldID, pipelinetrace.FieldArticleID, pipelinetrace.FieldLayer, pipelinetrace.FieldNode, pipelinetrace.FieldStatus, pipelinetrace.FieldError:
			values[i] = new(sql.NullString)
		case pipelinetrace.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the PipelineTrace fields.
func (_m *PipelineTrace) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case pipelinetrace.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case pipelinetrace.FieldArticleID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field article_id", values[i])
			} else if value.Valid {
				_m.ArticleID = value.String
			}
		case pipelinetrace.FieldLayer:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field layer", values[i])
			} else if value.Valid {
				_m.Layer = value.String
			}
		case pipelinetrace.FieldNode:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field node", values[i])
			} else if value.Valid {
				_m.Node = value.String
			}
		case pipelinetrace.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = pipelinetrace.Status(value.String)
			}
		case pipelinetrace.FieldDurationMs:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field duration_ms", values[i])
			} else if value.Valid {
				_m.DurationMs = int(value.Int64)
			}
		case pipelinetrace.FieldMetadata:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field metadata", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Metadata); err != nil {
					return fmt.Errorf("unmarshal field metadata: %w", err)
				}
			}
		case pipelinetrace.FieldError:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field error", values[i])
			} else if value.Valid {
				_m.Error = value.String
			}
		case pipelinetrace.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the PipelineTrace.
// This includes values selected through modifiers, order, etc.
func (_m *PipelineTrace) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryArticle queries the "article" edge of the PipelineTrace entity.
func (_m *PipelineTrace) QueryArticle() *ArticleQuery {
	return NewPipelineTraceClient(_m.config).QueryArticle(_m)
}

// Update returns a builder for updating this PipelineTrace.
// Note that you need to call PipelineTrace.Unwrap() before calling this method if this PipelineTrace
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *PipelineTrace) Update() *PipelineTraceUpdateOne {
	return NewPipelineTraceClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the PipelineTrace entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *PipelineTrace) Unwrap() *PipelineTrace {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: PipelineTrace is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *PipelineTrace) String() string {
	var builder strings.Builder
	builder.WriteString("PipelineTrace(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("article_id=")
	builder.WriteString(_m.ArticleID)
	builder.WriteString(", ")
	builder.WriteString("layer=")
	builder.WriteString(_m.Layer)
	builder.WriteString(", ")
	builder.WriteString("node=")
	builder.WriteString(_m.Node)
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	builder.WriteString("duration_ms=")
	builder.WriteString(fmt.Sprintf("%v", _m.DurationMs))
	builder.WriteString(", ")
	builder.WriteString("metadata=")
	builder.WriteString(fmt.Sprintf("%v", _m.Metadata))
	builder.WriteString(", ")
	builder.WriteString("error=")
	builder.WriteString(_m.Error)
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// PipelineTraces is a parsable slice of PipelineTrace.
type PipelineTraces []*PipelineTrace
