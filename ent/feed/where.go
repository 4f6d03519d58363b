// Code generated by ent, DO NOT EDIT.

package feed

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/finsight/newsflow/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Feed {
	return predicate.Feed(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Feed {
	return predicate.Feed(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Feed {
	return predicate.Feed(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Feed {
	return predicate.Feed(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Feed {
	return predicate.Feed(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Feed {
	return predicate.Feed(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Feed {
	return predicate.Feed(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Feed {
	return predicate.Feed(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Feed {
	return predicate.Feed(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Feed {
	return predicate.Feed(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Feed {
	return predicate.Feed(sql.FieldContainsFold(FieldID, id))
}

// Route applies equality check predicate on the "route" field. It's identical to RouteEQ.
func Route(v string) predicate.Feed {
	return predicate.Feed(sql.FieldEQ(FieldRoute, v))
}

// Name applies equality check predicate on the "name" field. It's identical to NameEQ.
func Name(v string) predicate.Feed {
	return predicate.Feed(sql.FieldEQ(FieldName, v))
}

// Category applies equality check predicate on the "category" field. It's identical to CategoryEQ.
func Category(v string) predicate.Feed {
	return predicate.Feed(sql.FieldEQ(FieldCategory, v))
}

// IntervalMinutes applies equality check predicate on the "interval_minutes" field. It's identical to IntervalMinutesEQ.
func IntervalMinutes(v int) predicate.Feed {
	return predicate.Feed(sql.FieldEQ(FieldIntervalMinutes, v))
}

// Fulltext applies equality check predicate on the "fulltext" field. It's identical to FulltextEQ.
func Fulltext(v bool) predicate.Feed {
	return predicate.Feed(sql.FieldEQ(FieldFulltext, v))
}

// Enabled applies equality check predicate on the "enabled" field. It's identical to EnabledEQ.
func Enabled(v bool) predicate.Feed {
	return predicate.Feed(sql.FieldEQ(FieldEnabled, v))
}

// LastPollAt applies equality check predicate on the "last_poll_at" field. It's identical to LastPollAtEQ.
func LastPollAt(v time.Time) predicate.Feed {
	return predicate.Feed(sql.FieldEQ(FieldLastPollAt, v))
}

// Etag applies equality check predicate on the "etag" field. It's identical to EtagEQ.
func Etag(v string) predicate.Feed {
	return predicate.Feed(sql.FieldEQ(FieldEtag, v))
}

// LastModified applies equality check predicate on the "last_modified" field. It's identical to LastModifiedEQ.
func LastModified(v string) predicate.Feed {
	return predicate.Feed(sql.FieldEQ(FieldLastModified, v))
}

// ConsecutiveErrors applies equality check predicate on the "consecutive_errors" field. It's identical to ConsecutiveErrorsEQ.
func ConsecutiveErrors(v int) predicate.Feed {
	return predicate.Feed(sql.FieldEQ(FieldConsecutiveErrors, v))
}

// ArticleCount applies equality check predicate on the "article_count" field. It's identical to ArticleCountEQ.
func ArticleCount(v int) predicate.Feed {
	return predicate.Feed(sql.FieldEQ(FieldArticleCount, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Feed {
	return predicate.Feed(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Feed {
	return predicate.Feed(sql.FieldEQ(FieldUpdatedAt, v))
}

// RouteEQ applies the EQ predicate on the "route" field.
func RouteEQ(v string) predicate.Feed {
	return predicate.Feed(sql.FieldEQ(FieldRoute, v))
}

// RouteNEQ applies the NEQ predicate on the "route" field.
func RouteNEQ(v string) predicate.Feed {
	return predicate.Feed(sql.FieldNEQ(FieldRoute, v))
}

// RouteIn applies the In predicate on the "route" field.
func RouteIn(vs ...string) predicate.Feed {
	return predicate.Feed(sql.FieldIn(FieldRoute, vs...))
}

// RouteNotIn applies the NotIn predicate on the "route" field.
func RouteNotIn(vs ...string) predicate.Feed {
	return predicate.Feed(sql.FieldNotIn(FieldRoute, vs...))
}

// RouteGT applies the GT predicate on the "route" field.
func RouteGT(v string) predicate.Feed {
	return predicate.Feed(sql.FieldGT(FieldRoute, v))
}

// RouteGTE applies the GTE predicate on the "route" field.
func RouteGTE(v string) predicate.Feed {
	return predicate.Feed(sql.FieldGTE(FieldRoute, v))
}

// RouteLT applies the LT predicate on the "route" field.
func RouteLT(v string) predicate.Feed {
	return predicate.Feed(sql.FieldLT(FieldRoute, v))
}

// RouteLTE applies the LTE predicate on the "route" field.
func RouteLTE(v string) predicate.Feed {
	return predicate.Feed(sql.FieldLTE(FieldRoute, v))
}

// RouteContains applies the Contains predicate on the "route" field.
func RouteContains(v string) predicate.Feed {
	return predicate.Feed(sql.FieldContains(FieldRoute, v))
}

// RouteHasPrefix applies the HasPrefix predicate on the "route" field.
func RouteHasPrefix(v string) predicate.Feed {
	return predicate.Feed(sql.FieldHasPrefix(FieldRoute, v))
}

// RouteHasSuffix applies the HasSuffix predicate on the "route" field.
func RouteHasSuffix(v string) predicate.Feed {
	return predicate.Feed(sql.FieldHasSuffix(FieldRoute, v))
}

// RouteEqualFold applies the EqualFold predicate on the "route" field.
func RouteEqualFold(v string) predicate.Feed {
	return predicate.Feed(sql.FieldEqualFold(FieldRoute, v))
}

// RouteContainsFold applies the ContainsFold predicate on the "route" field.
func RouteContainsFold(v string) predicate.Feed {
	return predicate.Feed(sql.FieldContainsFold(FieldRoute, v))
}

// NameEQ applies the EQ predicate on the "name" field.
func NameEQ(v string) predicate.Feed {
	return predicate.Feed(sql.FieldEQ(FieldName, v))
}

// NameNEQ applies the NEQ predicate on the "name" field.
func NameNEQ(v string) predicate.Feed {
	return predicate.Feed(sql.FieldNEQ(FieldName, v))
}

// NameIn applies the In predicate on the "name" field.
func NameIn(vs ...string) predicate.Feed {
	return predicate.Feed(sql.FieldIn(FieldName, vs...))
}

// NameNotIn applies the NotIn predicate on the "name" field.
func NameNotIn(vs ...string) predicate.Feed {
	return predicate.Feed(sql.FieldNotIn(FieldName, vs...))
}

// NameGT applies the GT predicate on the "name" field.
func NameGT(v string) predicate.Feed {
	return predicate.Feed(sql.FieldGT(FieldName, v))
}

// NameGTE applies the GTE predicate on the "name" field.
func NameGTE(v string) predicate.Feed {
	return predicate.Feed(sql.FieldGTE(FieldName, v))
}

// NameLT applies the LT predicate on the "name" field.
func NameLT(v string) predicate.Feed {
	return predicate.Feed(sql.FieldLT(FieldName, v))
}

// NameLTE applies the LTE predicate on the "name" field.
func NameLTE(v string) predicate.Feed {
	return predicate.Feed(sql.FieldLTE(FieldName, v))
}

// NameContains applies the Contains predicate on the "name" field.
func NameContains(v string) predicate.Feed {
	return predicate.Feed(sql.FieldContains(FieldName, v))
}

// NameHasPrefix applies the HasPrefix predicate on the "name" field.
func NameHasPrefix(v string) predicate.Feed {
	return predicate.Feed(sql.FieldHasPrefix(FieldName, v))
}

// NameHasSuffix applies the HasSuffix predicate on the "name" field.
func NameHasSuffix(v string) predicate.Feed {
	return predicate.Feed(sql.FieldHasSuffix(FieldName, v))
}

// NameIsNil applies the IsNil predicate on the "name" field.
func NameIsNil() predicate.Feed {
	return predicate.Feed(sql.FieldIsNull(FieldName))
}

// NameNotNil applies the NotNil predicate on the "name" field.
func NameNotNil() predicate.Feed {
	return predicate.Feed(sql.FieldNotNull(FieldName))
}

// NameEqualFold applies the EqualFold predicate on the "name" field.
func NameEqualFold(v string) predicate.Feed {
	return predicate.Feed(sql.FieldEqualFold(FieldName, v))
}

// NameContainsFold applies the ContainsFold predicate on the "name" field.
func NameContainsFold(v string) predicate.Feed {
	return predicate.Feed(sql.FieldContainsFold(FieldName, v))
}

// CategoryEQ applies the EQ predicate on the "category" field.
func CategoryEQ(v string) predicate.Feed {
	return predicate.Feed(sql.FieldEQ(FieldCategory, v))
}

// CategoryNEQ applies the NEQ predicate on the "category" field.
func CategoryNEQ(v string) predicate.Feed {
	return predicate.Feed(sql.FieldNEQ(FieldCategory, v))
}

// CategoryIn applies the In predicate on the "category" field.
func CategoryIn(vs ...string) predicate.Feed {
	return predicate.Feed(sql.FieldIn(FieldCategory, vs...))
}

// CategoryNotIn applies the NotIn predicate on the "category" field.
func CategoryNotIn(vs ...string) predicate.Feed {
	return predicate.Feed(sql.FieldNotIn(FieldCategory, vs...))
}

// CategoryGT applies the GT predicate on the "category" field.
func CategoryGT(v string) predicate.Feed {
	return predicate.Feed(sql.FieldGT(FieldCategory, v))
}

// CategoryGTE applies the GTE predicate on the "category" field.
func CategoryGTE(v string) predicate.Feed {
	return predicate.Feed(sql.FieldGTE(FieldCategory, v))
}

// CategoryLT applies the LT predicate on the "category" field.
func CategoryLT(v string) predicate.Feed {
	return predicate.Feed(sql.FieldLT(FieldCategory, v))
}

// CategoryLTE applies the LTE predicate on the "category" field.
func CategoryLTE(v string) predicate.Feed {
	return predicate.Feed(sql.FieldLTE(FieldCategory, v))
}

// CategoryContains applies the Contains predicate on the "category" field.
func CategoryContains(v string) predicate.Feed {
	return predicate.Feed(sql.FieldContains(FieldCategory, v))
}

// CategoryHasPrefix applies the HasPrefix predicate on the "category" field.
func CategoryHasPrefix(v string) predicate.Feed {
	return predicate.Feed(sql.FieldHasPrefix(FieldCategory, v))
}

// CategoryHasSuffix applies the HasSuffix predicate on the "category" field.
func CategoryHasSuffix(v string) predicate.Feed {
	return predicate.Feed(sql.FieldHasSuffix(FieldCategory, v))
}

// CategoryIsNil applies the IsNil predicate on the "category" field.
func CategoryIsNil() predicate.Feed {
	return predicate.Feed(sql.FieldIsNull(FieldCategory))
}

// CategoryNotNil applies the NotNil predicate on the "category" field.
func CategoryNotNil() predicate.Feed {
	return predicate.Feed(sql.FieldNotNull(FieldCategory))
}

// CategoryEqualFold applies the EqualFold predicate on the "category" field.
func CategoryEqualFold(v string) predicate.Feed {
	return predicate.Feed(sql.FieldEqualFold(FieldCategory, v))
}

// CategoryContainsFold applies the ContainsFold predicate on the "category" field.
func CategoryContainsFold(v string) predicate.Feed {
	return predicate.Feed(sql.FieldContainsFold(FieldCategory, v))
}

// IntervalMinutesEQ applies the EQ predicate on the "interval_minutes" field.
func IntervalMinutesEQ(v int) predicate.Feed {
	return predicate.Feed(sql.FieldEQ(FieldIntervalMinutes, v))
}

// IntervalMinutesNEQ applies the NEQ predicate on the "interval_minutes" field.
func IntervalMinutesNEQ(v int) predicate.Feed {
	return predicate.Feed(sql.FieldNEQ(FieldIntervalMinutes, v))
}

// IntervalMinutesIn applies the In predicate on the "interval_minutes" field.
func IntervalMinutesIn(vs ...int) predicate.Feed {
	return predicate.Feed(sql.FieldIn(FieldIntervalMinutes, vs...))
}

// IntervalMinutesNotIn applies the NotIn predicate on the "interval_minutes" field.
func IntervalMinutesNotIn(vs ...int) predicate.Feed {
	return predicate.Feed(sql.FieldNotIn(FieldIntervalMinutes, vs...))
}

// IntervalMinutesGT applies the GT predicate on the "interval_minutes" field.
func IntervalMinutesGT(v int) predicate.Feed {
	return predicate.Feed(sql.FieldGT(FieldIntervalMinutes, v))
}

// IntervalMinutesGTE applies the GTE predicate on the "interval_minutes" field.
func IntervalMinutesGTE(v int) predicate.Feed {
	return predicate.Feed(sql.FieldGTE(FieldIntervalMinutes, v))
}

// IntervalMinutesLT applies the LT predicate on the "interval_minutes" field.
func IntervalMinutesLT(v int) predicate.Feed {
	return predicate.Feed(sql.FieldLT(FieldIntervalMinutes, v))
}

// IntervalMinutesLTE applies the LTE predicate on the "interval_minutes" field.
func IntervalMinutesLTE(v int) predicate.Feed {
	return predicate.Feed(sql.FieldLTE(FieldIntervalMinutes, v))
}

// FulltextEQ applies the EQ predicate on the "fulltext" field.
func FulltextEQ(v bool) predicate.Feed {
	return predicate.Feed(sql.FieldEQ(FieldFulltext, v))
}

// FulltextNEQ applies the NEQ predicate on the "fulltext" field.
func FulltextNEQ(v bool) predicate.Feed {
	return predicate.Feed(sql.FieldNEQ(FieldFulltext, v))
}

// EnabledEQ applies the EQ predicate on the "enabled" field.
func EnabledEQ(v bool) predicate.Feed {
	return predicate.Feed(sql.FieldEQ(FieldEnabled, v))
}

// EnabledNEQ applies the NEQ predicate on the "enabled" field.
func EnabledNEQ(v bool) predicate.Feed {
	return predicate.Feed(sql.FieldNEQ(FieldEnabled, v))
}

// LastPollAtEQ applies the EQ predicate on the "last_poll_at" field.
func LastPollAtEQ(v time.Time) predicate.Feed {
	return predicate.Feed(sql.FieldEQ(FieldLastPollAt, v))
}

// LastPollAtNEQ applies the NEQ predicate on the "last_poll_at" field.
func LastPollAtNEQ(v time.Time) predicate.Feed {
	return predicate.Feed(sql.FieldNEQ(FieldLastPollAt, v))
}

// LastPollAtIn applies the In predicate on the "last_poll_at" field.
func LastPollAtIn(vs ...time.Time) predicate.Feed {
	return predicate.Feed(sql.FieldIn(FieldLastPollAt, vs...))
}

// LastPollAtNotIn applies the NotIn predicate on the "last_poll_at" field.
func LastPollAtNotIn(vs ...time.Time) predicate.Feed {
	return predicate.Feed(sql.FieldNotIn(FieldLastPollAt, vs...))
}

// LastPollAtGT applies the GT predicate on the "last_poll_at" field.
func LastPollAtGT(v time.Time) predicate.Feed {
	return predicate.Feed(sql.FieldGT(FieldLastPollAt, v))
}

// LastPollAtGTE applies the GTE predicate on the "last_poll_at" field.
func LastPollAtGTE(v time.Time) predicate.Feed {
	return predicate.Feed(sql.FieldGTE(FieldLastPollAt, v))
}

// LastPollAtLT applies the LT predicate on the "last_poll_at" field.
func LastPollAtLT(v time.Time) predicate.Feed {
	return predicate.Feed(sql.FieldLT(FieldLastPollAt, v))
}

// LastPollAtLTE applies the LTE predicate on the "last_poll_at" field.
func LastPollAtLTE(v time.Time) predicate.Feed {
	return predicate.Feed(sql.FieldLTE(FieldLastPollAt, v))
}

// LastPollAtIsNil applies the IsNil predicate on the "last_poll_at" field.
func LastPollAtIsNil() predicate.Feed {
	return predicate.Feed(sql.FieldIsNull(FieldLastPollAt))
}

// LastPollAtNotNil applies the NotNil predicate on the "last_poll_at" field.
func LastPollAtNotNil() predicate.Feed {
	return predicate.Feed(sql.FieldNotNull(FieldLastPollAt))
}

// EtagEQ applies the EQ predicate on the "etag" field.
func EtagEQ(v string) predicate.Feed {
	return predicate.Feed(sql.FieldEQ(FieldEtag, v))
}

// EtagNEQ applies the NEQ predicate on the "etag" field.
func EtagNEQ(v string) predicate.Feed {
	return predicate.Feed(sql.FieldNEQ(FieldEtag, v))
}

// EtagIn applies the In predicate on the "etag" field.
func EtagIn(vs ...string) predicate.Feed {
	return predicate.Feed(sql.FieldIn(FieldEtag, vs...))
}

// EtagNotIn applies the NotIn predicate on the "etag" field.
func EtagNotIn(vs ...string) predicate.Feed {
	return predicate.Feed(sql.FieldNotIn(FieldEtag, vs...))
}

// EtagGT applies the GT predicate on the "etag" field.
func EtagGT(v string) predicate.Feed {
	return predicate.Feed(sql.FieldGT(FieldEtag, v))
}

// EtagGTE applies the GTE predicate on the "etag" field.
func EtagGTE(v string) predicate.Feed {
	return predicate.Feed(sql.FieldGTE(FieldEtag, v))
}

// EtagLT applies the LT predicate on the "etag" field.
func EtagLT(v string) predicate.Feed {
	return predicate.Feed(sql.FieldLT(FieldEtag, v))
}

// EtagLTE applies the LTE predicate on the "etag" field.
func EtagLTE(v string) predicate.Feed {
	return predicate.Feed(sql.FieldLTE(FieldEtag, v))
}

// EtagContains applies the Contains predicate on the "etag" field.
func EtagContains(v string) predicate.Feed {
	return predicate.Feed(sql.FieldContains(FieldEtag, v))
}

// EtagHasPrefix applies the HasPrefix predicate on the "etag" field.
func EtagHasPrefix(v string) predicate.Feed {
	return predicate.Feed(sql.FieldHasPrefix(FieldEtag, v))
}

// EtagHasSuffix applies the HasSuffix predicate on the "etag" field.
func EtagHasSuffix(v string) predicate.Feed {
	return predicate.Feed(sql.FieldHasSuffix(FieldEtag, v))
}

// EtagIsNil applies the IsNil predicate on the "etag" field.
func EtagIsNil() predicate.Feed {
	return predicate.Feed(sql.FieldIsNull(FieldEtag))
}

// EtagNotNil applies the NotNil predicate on the "etag" field.
func EtagNotNil() predicate.Feed {
	return predicate.Feed(sql.FieldNotNull(FieldEtag))
}

// EtagEqualFold applies the EqualFold predicate on the "etag" field.
func EtagEqualFold(v string) predicate.Feed {
	return predicate.Feed(sql.FieldEqualFold(FieldEtag, v))
}

// EtagContainsFold applies the ContainsFold predicate on the "etag" field.
func EtagContainsFold(v string) predicate.Feed {
	return predicate.Feed(sql.FieldContainsFold(FieldEtag, v))
}

// LastModifiedEQ applies the EQ predicate on the "last_modified" field.
func LastModifiedEQ(v string) predicate.Feed {
	return predicate.Feed(sql.FieldEQ(FieldLastModified, v))
}

// LastModifiedNEQ applies the NEQ predicate on the "last_modified" field.
func LastModifiedNEQ(v string) predicate.Feed {
	return predicate.Feed(sql.FieldNEQ(FieldLastModified, v))
}

// LastModifiedIn applies the In predicate on the "last_modified" field.
func LastModifiedIn(vs ...string) predicate.Feed {
	return predicate.Feed(sql.FieldIn(FieldLastModified, vs...))
}

// LastModifiedNotIn applies the NotIn predicate on the "last_modified" field.
func LastModifiedNotIn(vs ...string) predicate.Feed {
	return predicate.Feed(sql.FieldNotIn(FieldLastModified, vs...))
}

// LastModifiedGT applies the GT predicate on the "last_modified" field.
func LastModifiedGT(v string) predicate.Feed {
	return predicate.Feed(sql.FieldGT(FieldLastModified, v))
}

// LastModifiedGTE applies the GTE predicate on the "last_modified" field.
func LastModifiedGTE(v string) predicate.Feed {
	return predicate.Feed(sql.FieldGTE(FieldLastModified, v))
}

// LastModifiedLT applies the LT predicate on the "last_modified" field.
func LastModifiedLT(v string) predicate.Feed {
	return predicate.Feed(sql.FieldLT(FieldLastModified, v))
}

// LastModifiedLTE applies the LTE predicate on the "last_modified" field.
func LastModifiedLTE(v string) predicate.Feed {
	return predicate.Feed(sql.FieldLTE(FieldLastModified, v))
}

// LastModifiedContains applies the Contains predicate on the "last_modified" field.
func LastModifiedContains(v string) predicate.Feed {
	return predicate.Feed(sql.FieldContains(FieldLastModified, v))
}

// LastModifiedHasPrefix applies the HasPrefix predicate on the "last_modified" field.
func LastModifiedHasPrefix(v string) predicate.Feed {
	return predicate.Feed(sql.FieldHasPrefix(FieldLastModified, v))
}

// LastModifiedHasSuffix applies the HasSuffix predicate on the "last_modified" field.
func LastModifiedHasSuffix(v string) predicate.Feed {
	return predicate.Feed(sql.FieldHasSuffix(FieldLastModified, v))
}

// LastModifiedIsNil applies the IsNil predicate on the "last_modified" field.
func LastModifiedIsNil() predicate.Feed {
	return predicate.Feed(sql.FieldIsNull(FieldLastModified))
}

// LastModifiedNotNil applies the NotNil predicate on the "last_modified" field.
func LastModifiedNotNil() predicate.Feed {
	return predicate.Feed(sql.FieldNotNull(FieldLastModified))
}

// LastModifiedEqualFold applies the EqualFold predicate on the "last_modified" field.
func LastModifiedEqualFold(v string) predicate.Feed {
	return predicate.Feed(sql.FieldEqualFold(FieldLastModified, v))
}

// LastModifiedContainsFold applies the ContainsFold predicate on the "last_modified" field.
func LastModifiedContainsFold(v string) predicate.Feed {
	return predicate.Feed(sql.FieldContainsFold(FieldLastModified, v))
}

// ConsecutiveErrorsEQ applies the EQ predicate on the "consecutive_errors" field.
func ConsecutiveErrorsEQ(v int) predicate.Feed {
	return predicate.Feed(sql.FieldEQ(FieldConsecutiveErrors, v))
}

// ConsecutiveErrorsNEQ applies the NEQ predicate on the "consecutive_errors" field.
func ConsecutiveErrorsNEQ(v int) predicate.Feed {
	return predicate.Feed(sql.FieldNEQ(FieldConsecutiveErrors, v))
}

// ConsecutiveErrorsIn applies the In predicate on the "consecutive_errors" field.
func ConsecutiveErrorsIn(vs ...int) predicate.Feed {
	return predicate.Feed(sql.FieldIn(FieldConsecutiveErrors, vs...))
}

// ConsecutiveErrorsNotIn applies the NotIn predicate on the "consecutive_errors" field.
func ConsecutiveErrorsNotIn(vs ...int) predicate.Feed {
	return predicate.Feed(sql.FieldNotIn(FieldConsecutiveErrors, vs...))
}

// ConsecutiveErrorsGT applies the GT predicate on the "consecutive_errors" field.
func ConsecutiveErrorsGT(v int) predicate.Feed {
	return predicate.Feed(sql.FieldGT(FieldConsecutiveErrors, v))
}

// ConsecutiveErrorsGTE applies the GTE predicate on the "consecutive_errors" field.
func ConsecutiveErrorsGTE(v int) predicate.Feed {
	return predicate.Feed(sql.FieldGTE(FieldConsecutiveErrors, v))
}

// ConsecutiveErrorsLT applies the LT predicate on the "consecutive_errors" field.
func ConsecutiveErrorsLT(v int) predicate.Feed {
	return predicate.Feed(sql.FieldLT(FieldConsecutiveErrors, v))
}

// ConsecutiveErrorsLTE applies the LTE predicate on the "consecutive_errors" field.
func ConsecutiveErrorsLTE(v int) predicate.Feed {
	return predicate.Feed(sql.FieldLTE(FieldConsecutiveErrors, v))
}

// ArticleCountEQ applies the EQ predicate on the "article_count" field.
func ArticleCountEQ(v int) predicate.Feed {
	return predicate.Feed(sql.FieldEQ(FieldArticleCount, v))
}

// ArticleCountNEQ applies the NEQ predicate on the "article_count" field.
func ArticleCountNEQ(v int) predicate.Feed {
	return predicate.Feed(sql.FieldNEQ(FieldArticleCount, v))
}

// ArticleCountIn applies the In predicate on the "article_count" field.
func ArticleCountIn(vs ...int) predicate.Feed {
	return predicate.Feed(sql.FieldIn(FieldArticleCount, vs...))
}

// ArticleCountNotIn applies the NotIn predicate on the "article_count" field.
func ArticleCountNotIn(vs ...int) predicate.Feed {
	return predicate.Feed(sql.FieldNotIn(FieldArticleCount, vs...))
}

// ArticleCountGT applies the GT predicate on the "article_count" field.
func ArticleCountGT(v int) predicate.Feed {
	return predicate.Feed(sql.FieldGT(FieldArticleCount, v))
}

// ArticleCountGTE applies the GTE predicate on the "article_count" field.
func ArticleCountGTE(v int) predicate.Feed {
	return predicate.Feed(sql.FieldGTE(FieldArticleCount, v))
}

// ArticleCountLT applies the LT predicate on the "article_count" field.
func ArticleCountLT(v int) predicate.Feed {
	return predicate.Feed(sql.FieldLT(FieldArticleCount, v))
}

// ArticleCountLTE applies the LTE predicate on the "article_count" field.
func ArticleCountLTE(v int) predicate.Feed {
	return predicate.Feed(sql.FieldLTE(FieldArticleCount, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Feed {
	return predicate.Feed(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Feed {
	return predicate.Feed(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Feed {
	return predicate.Feed(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Feed {
	return predicate.Feed(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Feed {
	return predicate.Feed(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Feed {
	return predicate.Feed(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Feed {
	return predicate.Feed(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Feed {
	return predicate.Feed(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Feed {
	return predicate.Feed(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Feed {
	return predicate.Feed(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Feed {
	return predicate.Feed(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Feed {
	return predicate.Feed(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Feed {
	return predicate.Feed(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Feed {
	return predicate.Feed(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Feed {
	return predicate.Feed(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Feed {
	return predicate.Feed(sql.FieldLTE(FieldUpdatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Feed) predicate.Feed {
	return predicate.Feed(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Feed) predicate.Feed {
	return predicate.Feed(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Feed) predicate.Feed {
	return predicate.Feed(sql.NotPredicates(p))
}
