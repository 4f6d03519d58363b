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
)

// Article is the model entity for the Article schema.
type Article struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// Feed or vendor identifier the article came from
	Source string `json:"source,omitempty"`
	// Canonical fetch URL
	URL string `json:"url,omitempty"`
	// Title holds the value of the "title" field.
	Title string `json:"title,omitempty"`
	// Short summary from the feed payload (full-text searchable)
	Summary string `json:"summary,omitempty"`
	// Associated market symbol, if any
	Symbol string `json:"symbol,omitempty"`
	// Market region (e.g. US, HK, CN)
	Market string `json:"market,omitempty"`
	// PublishedAt holds the value of the "published_at" field.
	PublishedAt *time.Time `json:"published_at,omitempty"`
	// Ingestion timestamp
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// ContentStatus holds the value of the "content_status" field.
	ContentStatus article.ContentStatus `json:"content_status,omitempty"`
	// FilterStatus holds the value of the "filter_status" field.
	FilterStatus article.FilterStatus `json:"filter_status,omitempty"`
	// Path of the persisted content file; nil once deleted
	ContentFilePath *string `json:"content_file_path,omitempty"`
	// [{entity, type, score}] from the entity extractor
	RelatedEntities []map[string]interface{} `json:"related_entities,omitempty"`
	// IndustryTags holds the value of the "industry_tags" field.
	IndustryTags []string `json:"industry_tags,omitempty"`
	// EventTags holds the value of the "event_tags" field.
	EventTags []string `json:"event_tags,omitempty"`
	// bullish / bearish / neutral
	SentimentTag string `json:"sentiment_tag,omitempty"`
	// InvestmentSummary holds the value of the "investment_summary" field.
	InvestmentSummary string `json:"investment_summary,omitempty"`
	// DetailedSummary holds the value of the "detailed_summary" field.
	DetailedSummary string `json:"detailed_summary,omitempty"`
	// Markdown analysis report (full-text searchable)
	AnalysisReport string `json:"analysis_report,omitempty"`
	// PrimaryEntity holds the value of the "primary_entity" field.
	PrimaryEntity string `json:"primary_entity,omitempty"`
	// HasStockEntity holds the value of the "has_stock_entity" field.
	HasStockEntity bool `json:"has_stock_entity,omitempty"`
	// HasMacroEntity holds the value of the "has_macro_entity" field.
	HasMacroEntity bool `json:"has_macro_entity,omitempty"`
	// MaxEntityScore holds the value of the "max_entity_score" field.
	MaxEntityScore float64 `json:"max_entity_score,omitempty"`
	// ErrorMessage holds the value of the "error_message" field.
	ErrorMessage *string `json:"error_message,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the ArticleQuery when eager-loading is set.
	Edges        ArticleEdges `json:"edges"`
	selectValues sql.SelectValues
}

// ArticleEdges holds the relations/edges for other nodes in the graph.
type ArticleEdges struct {
	// Traces holds the value of the traces edge.
	Traces []*PipelineTrace `json:"traces,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// TracesOrErr returns the Traces value or an error if the edge
// was not loaded in eager-loading.
func (e ArticleEdges) TracesOrErr() ([]*PipelineTrace, error) {
	if e.loadedTypes[0] {
		return e.Traces, nil
	}
	return nil, &NotLoadedError{edge: "traces"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Article) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case article.FieldRelatedEntities, article.FieldIndustryTags, article.FieldEventTags:
			values[i] = new([]byte)
		case article.FieldHasStockEntity, article.FieldHasMacroEntity:
			values[i] = new(sql.NullBool)
		case article.FieldMaxEntityScore:
			values[i] = new(sql.NullFloat64)
		case article.FieldID, article.FieldSource, article.FieldURL, article.FieldTitle, article.FieldSummary, article.FieldSymbol, article.FieldMarket, article.FieldContentStatus, article.FieldFilterStatus, article.FieldContentFilePath, article.FieldSentimentTag, article.FieldInvestmentSummary, article.FieldDetailedSummary, article.FieldAnalysisReport, article.FieldPrimaryEntity, article.FieldErrorMessage:
			values[i] = new(sql.NullString)
		case article.FieldPublishedAt, article.FieldCreatedAt, article.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Article fields.
func (_m *Article) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case article.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case article.FieldSource:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field source", values[i])
			} else if value.Valid {
				_m.Source = value.String
			}
		case article.FieldURL:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field url", values[i])
			} else if value.Valid {
				_m.URL = value.String
			}
		case article.FieldTitle:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field title", values[i])
			} else if value.Valid {
				_m.Title = value.String
			}
		case article.FieldSummary:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field summary", values[i])
			} else if value.Valid {
				_m.Summary = value.String
			}
		case article.FieldSymbol:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field symbol", values[i])
			} else if value.Valid {
				_m.Symbol = value.String
			}
		case article.FieldMarket:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field market", values[i])
			} else if value.Valid {
				_m.Market = value.String
			}
		case article.FieldPublishedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field published_at", values[i])
			} else if value.Valid {
				_m.PublishedAt = new(time.Time)
				*_m.PublishedAt = value.Time
			}
		case article.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case article.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		case article.FieldContentStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field content_status", values[i])
			} else if value.Valid {
				_m.ContentStatus = article.ContentStatus(value.String)
			}
		case article.FieldFilterStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field filter_status", values[i])
			} else if value.Valid {
				_m.FilterStatus = article.FilterStatus(value.String)
			}
		case article.FieldContentFilePath:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field content_file_path", values[i])
			} else if value.Valid {
				_m.ContentFilePath = new(string)
				*_m.ContentFilePath = value.String
			}
		case article.FieldRelatedEntities:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field related_entities", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.RelatedEntities); err != nil {
					return fmt.Errorf("unmarshal field related_entities: %w", err)
				}
			}
		case article.FieldIndustryTags:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field industry_tags", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.IndustryTags); err != nil {
					return fmt.Errorf("unmarshal field industry_tags: %w", err)
				}
			}
		case article.FieldEventTags:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field event_tags", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.EventTags); err != nil {
					return fmt.Errorf("unmarshal field event_tags: %w", err)
				}
			}
		case article.FieldSentimentTag:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field sentiment_tag", values[i])
			} else if value.Valid {
				_m.SentimentTag = value.String
			}
		case article.FieldInvestmentSummary:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field investment_summary", values[i])
			} else if value.Valid {
				_m.InvestmentSummary = value.String
			}
		case article.FieldDetailedSummary:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field detailed_summary", values[i])
			} else if value.Valid {
				_m.DetailedSummary = value.String
			}
		case article.FieldAnalysisReport:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field analysis_report", values[i])
			} else if value.Valid {
				_m.AnalysisReport = value.String
			}
		case article.FieldPrimaryEntity:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field primary_entity", values[i])
			} else if value.Valid {
				_m.PrimaryEntity = value.String
			}
		case article.FieldHasStockEntity:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field has_stock_entity", values[i])
			} else if value.Valid {
				_m.HasStockEntity = value.Bool
			}
		case article.FieldHasMacroEntity:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field has_macro_entity", values[i])
			} else if value.Valid {
				_m.HasMacroEntity = value.Bool
			}
		case article.FieldMaxEntityScore:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field max_entity_score", values[i])
			} else if value.Valid {
				_m.MaxEntityScore = value.Float64
			}
		case article.FieldErrorMessage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field error_message", values[i])
			} else if value.Valid {
				_m.ErrorMessage = new(string)
				*_m.ErrorMessage = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Article.
// This includes values selected through modifiers, order, etc.
func (_m *Article) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryTraces queries the "traces" edge of the Article entity.
func (_m *Article) QueryTraces() *PipelineTraceQuery {
	return NewArticleClient(_m.config).QueryTraces(_m)
}

// Update returns a builder for updating this Article.
// Note that you need to call Article.Unwrap() before calling this method if this Article
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Article) Update() *ArticleUpdateOne {
	return NewArticleClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Article entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Article) Unwrap() *Article {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Article is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Article) String() string {
	var builder strings.Builder
	builder.WriteString("Article(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("source=")
	builder.WriteString(_m.Source)
	builder.WriteString(", ")
	builder.WriteString("url=")
	builder.WriteString(_m.URL)
	builder.WriteString(", ")
	builder.WriteString("title=")
	builder.WriteString(_m.Title)
	builder.WriteString(", ")
	builder.WriteString("summary=")
	builder.WriteString(_m.Summary)
	builder.WriteString(", ")
	builder.WriteString("symbol=")
	builder.WriteString(_m.Symbol)
	builder.WriteString(", ")
	builder.WriteString("market=")
	builder.WriteString(_m.Market)
	builder.WriteString(", ")
	if v := _m.PublishedAt; v != nil {
		builder.WriteString("published_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("content_status=")
	builder.WriteString(fmt.Sprintf("%v", _m.ContentStatus))
	builder.WriteString(", ")
	builder.WriteString("filter_status=")
	builder.WriteString(fmt.Sprintf("%v", _m.FilterStatus))
	builder.WriteString(", ")
	if v := _m.ContentFilePath; v != nil {
		builder.WriteString("content_file_path=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("related_entities=")
	builder.WriteString(fmt.Sprintf("%v", _m.RelatedEntities))
	builder.WriteString(", ")
	builder.WriteString("industry_tags=")
	builder.WriteString(fmt.Sprintf("%v", _m.IndustryTags))
	builder.WriteString(", ")
	builder.WriteString("event_tags=")
	builder.WriteString(fmt.Sprintf("%v", _m.EventTags))
	builder.WriteString(", ")
	builder.WriteString("sentiment_tag=")
	builder.WriteString(_m.SentimentTag)
	builder.WriteString(", ")
	builder.WriteString("investment_summary=")
	builder.WriteString(_m.InvestmentSummary)
	builder.WriteString(", ")
	builder.WriteString("detailed_summary=")
	builder.WriteString(_m.DetailedSummary)
	builder.WriteString(", ")
	builder.WriteString("analysis_report=")
	builder.WriteString(_m.AnalysisReport)
	builder.WriteString(", ")
	builder.WriteString("primary_entity=")
	builder.WriteString(_m.PrimaryEntity)
	builder.WriteString(", ")
	builder.WriteString("has_stock_entity=")
	builder.WriteString(fmt.Sprintf("%v", _m.HasStockEntity))
	builder.WriteString(", ")
	builder.WriteString("has_macro_entity=")
	builder.WriteString(fmt.Sprintf("%v", _m.HasMacroEntity))
	builder.WriteString(", ")
	builder.WriteString("max_entity_score=")
	builder.WriteString(fmt.Sprintf("%v", _m.MaxEntityScore))
	builder.WriteString(", ")
	if v := _m.ErrorMessage; v != nil {
		builder.WriteString("error_message=")
		builder.WriteString(*v)
	}
	builder.WriteByte(')')
	return builder.String()
}

// Articles is a parsable slice of Article.
type Articles []*Article
