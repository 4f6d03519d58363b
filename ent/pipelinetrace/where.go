// Code generated by ent, DO NOT EDIT.

package pipelinetrace

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/finsight/newsflow/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.PipelineTrace {
	return predicate.PipelineTrace(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.PipelineTrace {
	return predicate.PipelineTrace(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.PipelineTrace {
	return predicate.PipelineTrace(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.PipelineTrace {
	return predicate.PipelineTrace(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.PipelineTrace {
	return predicate.PipelineTrace(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.PipelineTrace {
	return predicate.PipelineTrace(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.PipelineTrace {
	return predicate.PipelineTrace(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.PipelineTrace {
	return predicate.PipelineTrace(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.PipelineTrace {
	return predicate.PipelineTrace(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.PipelineTrace {
	return predicate.PipelineTrace(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.PipelineTrace {
	return predicate.PipelineTrace(sql.FieldContainsFold(FieldID, id))
}

// ArticleID applies equality check predicate on the "article_id" field. It's identical to ArticleIDEQ.
func ArticleID(v string) predicate.PipelineTrace {
	return predicate.PipelineTrace(sql.FieldEQ(FieldArticleID, v))
}

// Layer applies equality check predicate on the "layer" field. It's identical to LayerEQ.
func Layer(v string) predicate.PipelineTrace {
	return predicate.PipelineTrace(sql.FieldEQ(FieldLayer, v))
}

// Node applies equality check predicate on the "node" field. It's identical to NodeEQ.
func Node(v string) predicate.PipelineTrace {
	return predicate.PipelineTrace(sql.FieldEQ(FieldNode, v))
}

// DurationMs applies equality check predicate on the "duration_ms" field. It's identical to DurationMsEQ.
func DurationMs(v int) predicate.PipelineTrace {
	return predicate.PipelineTrace(sql.FieldEQ(FieldDurationMs, v))
}

// Error applies equality check predicate on the "error" field. It's identical to ErrorEQ.
func Error(v string) predicate.PipelineTrace {
	return predicate.PipelineTrace(sql.FieldEQ(FieldError, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.PipelineTrace {
	return predicate.PipelineTrace(sql.FieldEQ(FieldCreatedAt, v))
}

// ArticleIDEQ applies the EQ predicate on the "article_id" field.
func ArticleIDEQ(v string) predicate.PipelineTrace {
	return predicate.PipelineTrace(sql.FieldEQ(FieldArticleID, v))
}

// ArticleIDNEQ applies the NEQ predicate on the "article_id" field.
func ArticleIDNEQ(v string) predicate.PipelineTrace {
	return predicate.PipelineTrace(sql.FieldNEQ(FieldArticleID, v))
}

// ArticleIDIn applies the In predicate on the "article_id" field.
func ArticleIDIn(vs ...string) predicate.PipelineTrace {
	return predicate.PipelineTrace(sql.FieldIn(FieldArticleID, vs...))
}

// ArticleIDNotIn applies the NotIn predicate on the "article_id" field.
func ArticleIDNotIn(vs ...string) predicate.PipelineTrace {
	return predicate.PipelineTrace(sql.FieldNotIn(FieldArticleID, vs...))
}

// ArticleIDGT applies the GT predicate on the "article_id" field.
func ArticleIDGT(v string) predicate.PipelineTrace {
	return predicate.PipelineTrace(sql.FieldGT(FieldArticleID, v))
}

// ArticleIDGTE applies the GTE predicate on the "article_id" field.
func ArticleIDGTE(v string) predicate.PipelineTrace {
	return predicate.PipelineTrace(sql.FieldGTE(FieldArticleID, v))
}

// ArticleIDLT applies the LT predicate on the "article_id" field.
func ArticleIDLT(v string) predicate.PipelineTrace {
	return predicate.PipelineTrace(sql.FieldLT(FieldArticleID, v))
}

// ArticleIDLTE applies the LTE predicate on the "article_id" field.
func ArticleIDLTE(v string) predicate.PipelineTrace {
	return predicate.PipelineTrace(sql.FieldLTE(FieldArticleID, v))
}

// ArticleIDContains applies the Contains predicate on the "article_id" field.
func ArticleIDContains(v string) predicate.PipelineTrace {
	return predicate.PipelineTrace(sql.FieldContains(FieldArticleID, v))
}

// ArticleIDHasPrefix applies the HasPrefix predicate on the "article_id" field.
func ArticleIDHasPrefix(v string) predicate.PipelineTrace {
	return predicate.PipelineTrace(sql.FieldHasPrefix(FieldArticleID, v))
}

// ArticleIDHasSuffix applies the HasSuffix predicate on the "article_id" field.
func ArticleIDHasSuffix(v string) predicate.PipelineTrace {
	return predicate.PipelineTrace(sql.FieldHasSuffix(FieldArticleID, v))
}

// ArticleIDEqualFold applies the EqualFold predicate on the "article_id" field.
func ArticleIDEqualFold(v string) predicate.PipelineTrace {
	return predicate.PipelineTrace(sql.FieldEqualFold(FieldArticleID, v))
}

// ArticleIDContainsFold applies the ContainsFold predicate on the "article_id" field.
func ArticleIDContainsFold(v string) predicate.PipelineTrace {
	return predicate.PipelineTrace(sql.FieldContainsFold(FieldArticleID, v))
}

// LayerEQ applies the EQ predicate on the "layer" field.
func LayerEQ(v string) predicate.PipelineTrace {
	return predicate.PipelineTrace(sql.FieldEQ(FieldLayer, v))
}

// LayerNEQ applies the NEQ predicate on the "layer" field.
func LayerNEQ(v string) predicate.PipelineTrace {
	return predicate.PipelineTrace(sql.FieldNEQ(FieldLayer, v))
}

// LayerIn applies the In predicate on the "layer" field.
func LayerIn(vs ...string) predicate.PipelineTrace {
	return predicate.PipelineTrace(sql.FieldIn(FieldLayer, vs...))
}

// LayerNotIn applies the NotIn predicate on the "layer" field.
func LayerNotIn(vs ...string) predicate.PipelineTrace {
	return predicate.PipelineTrace(sql.FieldNotIn(FieldLayer, vs...))
}

// LayerGT applies the GT predicate on the "layer" field.
func LayerGT(v string) predicate.PipelineTrace {
	return predicate.PipelineTrace(sql.FieldGT(FieldLayer, v))
}

// LayerGTE applies the GTE predicate on the "layer" field.
func LayerGTE(v string) predicate.PipelineTrace {
	return predicate.PipelineTrace(sql.FieldGTE(FieldLayer, v))
}

// LayerLT applies the LT predicate on the "layer" field.
func LayerLT(v string) predicate.PipelineTrace {
	return predicate.PipelineTrace(sql.FieldLT(FieldLayer, v))
}

// LayerLTE applies the LTE predicate on the "layer" field.
func LayerLTE(v string) predicate.PipelineTrace {
	return predicate.PipelineTrace(sql.FieldLTE(FieldLayer, v))
}

// LayerContains applies the Contains predicate on the "layer" field.
func LayerContains(v string) predicate.PipelineTrace {
	return predicate.PipelineTrace(sql.FieldContains(FieldLayer, v))
}

// LayerHasPrefix applies the HasPrefix predicate on the "layer" field.
func LayerHasPrefix(v string) predicate.PipelineTrace {
	return predicate.PipelineTrace(sql.FieldHasPrefix(FieldLayer, v))
}

// LayerHasSuffix applies the HasSuffix predicate on the "layer" field.
func LayerHasSuffix(v string) predicate.PipelineTrace {
	return predicate.PipelineTrace(sql.FieldHasSuffix(FieldLayer, v))
}

// LayerEqualFold applies the EqualFold predicate on the "layer" field.
func LayerEqualFold(v string) predicate.PipelineTrace {
	return predicate.PipelineTrace(sql.FieldEqualFold(FieldLayer, v))
}

// LayerContainsFold applies the ContainsFold predicate on the "layer" field.
func LayerContainsFold(v string) predicate.PipelineTrace {
	return predicate.PipelineTrace(sql.FieldContainsFold(FieldLayer, v))
}

// NodeEQ applies the EQ predicate on the "node" field.
func NodeEQ(v string) predicate.PipelineTrace {
	return predicate.PipelineTrace(sql.FieldEQ(FieldNode, v))
}

// NodeNEQ applies the NEQ predicate on the "node" field.
func NodeNEQ(v string) predicate.PipelineTrace {
	return predicate.PipelineTrace(sql.FieldNEQ(FieldNode, v))
}

// NodeIn applies the In predicate on the "node" field.
func NodeIn(vs ...string) predicate.PipelineTrace {
	return predicate.PipelineTrace(sql.FieldIn(FieldNode, vs...))
}

// NodeNotIn applies the NotIn predicate on the "node" field.
func NodeNotIn(vs ...string) predicate.PipelineTrace {
	return predicate.PipelineTrace(sql.FieldNotIn(FieldNode, vs...))
}

// NodeGT applies the GT predicate on the "node" field.
func NodeGT(v string) predicate.PipelineTrace {
	return predicate.PipelineTrace(sql.FieldGT(FieldNode, v))
}

// NodeGTE applies the GTE predicate on the "node" field.
func NodeGTE(v string) predicate.PipelineTrace {
	return predicate.PipelineTrace(sql.FieldGTE(FieldNode, v))
}

// NodeLT applies the LT predicate on the "node" field.
func NodeLT(v string) predicate.PipelineTrace {
	return predicate.PipelineTrace(sql.FieldLT(FieldNode, v))
}

// NodeLTE applies the LTE predicate on the "node" field.
func NodeLTE(v string) predicate.PipelineTrace {
	return predicate.PipelineTrace(sql.FieldLTE(FieldNode, v))
}

// NodeContains applies the Contains predicate on the "node" field.
func NodeContains(v string) predicate.PipelineTrace {
	return predicate.PipelineTrace(sql.FieldContains(FieldNode, v))
}

// NodeHasPrefix applies the HasPrefix predicate on the "node" field.
func NodeHasPrefix(v string) predicate.PipelineTrace {
	return predicate.PipelineTrace(sql.FieldHasPrefix(FieldNode, v))
}

// NodeHasSuffix applies the HasSuffix predicate on the "node" field.
func NodeHasSuffix(v string) predicate.PipelineTrace {
	return predicate.PipelineTrace(sql.FieldHasSuffix(FieldNode, v))
}

// NodeEqualFold applies the EqualFold predicate on the "node" field.
func NodeEqualFold(v string) predicate.PipelineTrace {
	return predicate.PipelineTrace(sql.FieldEqualFold(FieldNode, v))
}

// NodeContainsFold applies the ContainsFold predicate on the "node" field.
func NodeContainsFold(v string) predicate.PipelineTrace {
	return predicate.PipelineTrace(sql.FieldContainsFold(FieldNode, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.PipelineTrace {
	return predicate.PipelineTrace(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.PipelineTrace {
	return predicate.PipelineTrace(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.PipelineTrace {
	return predicate.PipelineTrace(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.PipelineTrace {
	return predicate.PipelineTrace(sql.FieldNotIn(FieldStatus, vs...))
}

// DurationMsEQ applies the EQ predicate on the "duration_ms" field.
func DurationMsEQ(v int) predicate.PipelineTrace {
	return predicate.PipelineTrace(sql.FieldEQ(FieldDurationMs, v))
}

// DurationMsNEQ applies the NEQ predicate on the "duration_ms" field.
func DurationMsNEQ(v int) predicate.PipelineTrace {
	return predicate.PipelineTrace(sql.FieldNEQ(FieldDurationMs, v))
}

// DurationMsIn applies the In predicate on the "duration_ms" field.
func DurationMsIn(vs ...int) predicate.PipelineTrace {
	return predicate.PipelineTrace(sql.FieldIn(FieldDurationMs, vs...))
}

// DurationMsNotIn applies the NotIn predicate on the "duration_ms" field.
func DurationMsNotIn(vs ...int) predicate.PipelineTrace {
	return predicate.PipelineTrace(sql.FieldNotIn(FieldDurationMs, vs...))
}

// DurationMsGT applies the GT predicate on the "duration_ms" field.
func DurationMsGT(v int) predicate.PipelineTrace {
	return predicate.PipelineTrace(sql.FieldGT(FieldDurationMs, v))
}

// DurationMsGTE applies the GTE predicate on the "duration_ms" field.
func DurationMsGTE(v int) predicate.PipelineTrace {
	return predicate.PipelineTrace(sql.FieldGTE(FieldDurationMs, v))
}

// DurationMsLT applies the LT predicate on the "duration_ms" field.
func DurationMsLT(v int) predicate.PipelineTrace {
	return predicate.PipelineTrace(sql.FieldLT(FieldDurationMs, v))
}

// DurationMsLTE applies the LTE predicate on the "duration_ms" field.
func DurationMsLTE(v int) predicate.PipelineTrace {
	return predicate.PipelineTrace(sql.FieldLTE(FieldDurationMs, v))
}

// MetadataIsNil applies the IsNil predicate on the "metadata" field.
func MetadataIsNil() predicate.PipelineTrace {
	return predicate.PipelineTrace(sql.FieldIsNull(FieldMetadata))
}

// MetadataNotNil applies the NotNil predicate on the "metadata" field.
func MetadataNotNil() predicate.PipelineTrace {
	return predicate.PipelineTrace(sql.FieldNotNull(FieldMetadata))
}

// ErrorEQ applies the EQ predicate on the "error" field.
func ErrorEQ(v string) predicate.PipelineTrace {
	return predicate.PipelineTrace(sql.FieldEQ(FieldError, v))
}

// ErrorNEQ applies the NEQ predicate on the "error" field.
func ErrorNEQ(v string) predicate.PipelineTrace {
	return predicate.PipelineTrace(sql.FieldNEQ(FieldError, v))
}

// ErrorIn applies the In predicate on the "error" field.
func ErrorIn(vs ...string) predicate.PipelineTrace {
	return predicate.PipelineTrace(sql.FieldIn(FieldError, vs...))
}

// ErrorNotIn applies the NotIn predicate on the "error" field.
func ErrorNotIn(vs ...string) predicate.PipelineTrace {
	return predicate.PipelineTrace(sql.FieldNotIn(FieldError, vs...))
}

// ErrorGT applies the GT predicate on the "error" field.
func ErrorGT(v string) predicate.PipelineTrace {
	return predicate.PipelineTrace(sql.FieldGT(FieldError, v))
}

// ErrorGTE applies the GTE predicate on the "error" field.
func ErrorGTE(v string) predicate.PipelineTrace {
	return predicate.PipelineTrace(sql.FieldGTE(FieldError, v))
}

// ErrorLT applies the LT predicate on the "error" field.
func ErrorLT(v string) predicate.PipelineTrace {
	return predicate.PipelineTrace(sql.FieldLT(FieldError, v))
}

// ErrorLTE applies the LTE predicate on the "error" field.
func ErrorLTE(v string) predicate.PipelineTrace {
	return predicate.PipelineTrace(sql.FieldLTE(FieldError, v))
}

// ErrorContains applies the Contains predicate on the "error" field.
func ErrorContains(v string) predicate.PipelineTrace {
	return predicate.PipelineTrace(sql.FieldContains(FieldError, v))
}

// ErrorHasPrefix applies the HasPrefix predicate on the "error" field.
func ErrorHasPrefix(v string) predicate.PipelineTrace {
	return predicate.PipelineTrace(sql.FieldHasPrefix(FieldError, v))
}

// ErrorHasSuffix applies the HasSuffix predicate on the "error" field.
func ErrorHasSuffix(v string) predicate.PipelineTrace {
	return predicate.PipelineTrace(sql.FieldHasSuffix(FieldError, v))
}

// ErrorIsNil applies the IsNil predicate on the "error" field.
func ErrorIsNil() predicate.PipelineTrace {
	return predicate.PipelineTrace(sql.FieldIsNull(FieldError))
}

// ErrorNotNil applies the NotNil predicate on the "error" field.
func ErrorNotNil() predicate.PipelineTrace {
	return predicate.PipelineTrace(sql.FieldNotNull(FieldError))
}

// ErrorEqualFold applies the EqualFold predicate on the "error" field.
func ErrorEqualFold(v string) predicate.PipelineTrace {
	return predicate.PipelineTrace(sql.FieldEqualFold(FieldError, v))
}

// ErrorContainsFold applies the ContainsFold predicate on the "error" field.
func ErrorContainsFold(v string) predicate.PipelineTrace {
	return predicate.PipelineTrace(sql.FieldContainsFold(FieldError, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.PipelineTrace {
	return predicate.PipelineTrace(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.PipelineTrace {
	return predicate.PipelineTrace(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.PipelineTrace {
	return predicate.PipelineTrace(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.PipelineTrace {
	return predicate.PipelineTrace(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.PipelineTrace {
	return predicate.PipelineTrace(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.PipelineTrace {
	return predicate.PipelineTrace(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.PipelineTrace {
	return predicate.PipelineTrace(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.PipelineTrace {
	return predicate.PipelineTrace(sql.FieldLTE(FieldCreatedAt, v))
}

// HasArticle applies the HasEdge predicate on the "article" edge.
func HasArticle() predicate.PipelineTrace {
	return predicate.PipelineTrace(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, ArticleTable, ArticleColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasArticleWith applies the HasEdge predicate on the "article" edge with a given conditions (other predicates).
func HasArticleWith(preds ...predicate.Article) predicate.PipelineTrace {
	return predicate.PipelineTrace(func(s *sql.Selector) {
		step := newArticleStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.PipelineTrace) predicate.PipelineTrace {
	return predicate.PipelineTrace(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.PipelineTrace) predicate.PipelineTrace {
	return predicate.PipelineTrace(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.PipelineTrace) predicate.PipelineTrace {
	return predicate.PipelineTrace(sql.NotPredicates(p))
}
