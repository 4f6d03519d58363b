// Code generated by ent, DO NOT EDIT.

package article

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/finsight/newsflow/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Article {
	return predicate.Article(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Article {
	return predicate.Article(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Article {
	return predicate.Article(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Article {
	return predicate.Article(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Article {
	return predicate.Article(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Article {
	return predicate.Article(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Article {
	return predicate.Article(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Article {
	return predicate.Article(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Article {
	return predicate.Article(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Article {
	return predicate.Article(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Article {
	return predicate.Article(sql.FieldContainsFold(FieldID, id))
}

// Source applies equality check predicate on the "source" field. It's identical to SourceEQ.
func Source(v string) predicate.Article {
	return predicate.Article(sql.FieldEQ(FieldSource, v))
}

// URL applies equality check predicate on the "url" field. It's identical to URLEQ.
func URL(v string) predicate.Article {
	return predicate.Article(sql.FieldEQ(FieldURL, v))
}

// Title applies equality check predicate on the "title" field. It's identical to TitleEQ.
func Title(v string) predicate.Article {
	return predicate.Article(sql.FieldEQ(FieldTitle, v))
}

// Summary applies equality check predicate on the "summary" field. It's identical to SummaryEQ.
func Summary(v string) predicate.Article {
	return predicate.Article(sql.FieldEQ(FieldSummary, v))
}

// Symbol applies equality check predicate on the "symbol" field. It's identical to SymbolEQ.
func Symbol(v string) predicate.Article {
	return predicate.Article(sql.FieldEQ(FieldSymbol, v))
}

// Market applies equality check predicate on the "market" field. It's identical to MarketEQ.
func Market(v string) predicate.Article {
	return predicate.Article(sql.FieldEQ(FieldMarket, v))
}

// PublishedAt applies equality check predicate on the "published_at" field. It's identical to PublishedAtEQ.
func PublishedAt(v time.Time) predicate.Article {
	return predicate.Article(sql.FieldEQ(FieldPublishedAt, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Article {
	return predicate.Article(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Article {
	return predicate.Article(sql.FieldEQ(FieldUpdatedAt, v))
}

// ContentFilePath applies equality check predicate on the "content_file_path" field. It's identical to ContentFilePathEQ.
func ContentFilePath(v string) predicate.Article {
	return predicate.Article(sql.FieldEQ(FieldContentFilePath, v))
}

// SentimentTag applies equality check predicate on the "sentiment_tag" field. It's identical to SentimentTagEQ.
func SentimentTag(v string) predicate.Article {
	return predicate.Article(sql.FieldEQ(FieldSentimentTag, v))
}

// InvestmentSummary applies equality check predicate on the "investment_summary" field. It's identical to InvestmentSummaryEQ.
func InvestmentSummary(v string) predicate.Article {
	return predicate.Article(sql.FieldEQ(FieldInvestmentSummary, v))
}

// DetailedSummary applies equality check predicate on the "detailed_summary" field. It's identical to DetailedSummaryEQ.
func DetailedSummary(v string) predicate.Article {
	return predicate.Article(sql.FieldEQ(FieldDetailedSummary, v))
}

// AnalysisReport applies equality check predicate on the "analysis_report" field. It's identical to AnalysisReportEQ.
func AnalysisReport(v string) predicate.Article {
	return predicate.Article(sql.FieldEQ(FieldAnalysisReport, v))
}

// PrimaryEntity applies equality check predicate on the "primary_entity" field. It's identical to PrimaryEntityEQ.
func PrimaryEntity(v string) predicate.Article {
	return predicate.Article(sql.FieldEQ(FieldPrimaryEntity, v))
}

// HasStockEntity applies equality check predicate on the "has_stock_entity" field. It's identical to HasStockEntityEQ.
func HasStockEntity(v bool) predicate.Article {
	return predicate.Article(sql.FieldEQ(FieldHasStockEntity, v))
}

// HasMacroEntity applies equality check predicate on the "has_macro_entity" field. It's identical to HasMacroEntityEQ.
func HasMacroEntity(v bool) predicate.Article {
	return predicate.Article(sql.FieldEQ(FieldHasMacroEntity, v))
}

// MaxEntityScore applies equality check predicate on the "max_entity_score" field. It's identical to MaxEntityScoreEQ.
func MaxEntityScore(v float64) predicate.Article {
	return predicate.Article(sql.FieldEQ(FieldMaxEntityScore, v))
}

// ErrorMessage applies equality check predicate on the "error_message" field. It's identical to ErrorMessageEQ.
func ErrorMessage(v string) predicate.Article {
	return predicate.Article(sql.FieldEQ(FieldErrorMessage, v))
}

// SourceEQ applies the EQ predicate on the "source" field.
func SourceEQ(v string) predicate.Article {
	return predicate.Article(sql.FieldEQ(FieldSource, v))
}

// SourceNEQ applies the NEQ predicate on the "source" field.
func SourceNEQ(v string) predicate.Article {
	return predicate.Article(sql.FieldNEQ(FieldSource, v))
}

// SourceIn applies the In predicate on the "source" field.
func SourceIn(vs ...string) predicate.Article {
	return predicate.Article(sql.FieldIn(FieldSource, vs...))
}

// SourceNotIn applies the NotIn predicate on the "source" field.
func SourceNotIn(vs ...string) predicate.Article {
	return predicate.Article(sql.FieldNotIn(FieldSource, vs...))
}

// SourceGT applies the GT predicate on the "source" field.
func SourceGT(v string) predicate.Article {
	return predicate.Article(sql.FieldGT(FieldSource, v))
}

// SourceGTE applies the GTE predicate on the "source" field.
func SourceGTE(v string) predicate.Article {
	return predicate.Article(sql.FieldGTE(FieldSource, v))
}

// SourceLT applies the LT predicate on the "source" field.
func SourceLT(v string) predicate.Article {
	return predicate.Article(sql.FieldLT(FieldSource, v))
}

// SourceLTE applies the LTE predicate on the "source" field.
func SourceLTE(v string) predicate.Article {
	return predicate.Article(sql.FieldLTE(FieldSource, v))
}

// SourceContains applies the Contains predicate on the "source" field.
func SourceContains(v string) predicate.Article {
	return predicate.Article(sql.FieldContains(FieldSource, v))
}

// SourceHasPrefix applies the HasPrefix predicate on the "source" field.
func SourceHasPrefix(v string) predicate.Article {
	return predicate.Article(sql.FieldHasPrefix(FieldSource, v))
}

// SourceHasSuffix applies the HasSuffix predicate on the "source" field.
func SourceHasSuffix(v string) predicate.Article {
	return predicate.Article(sql.FieldHasSuffix(FieldSource, v))
}

// SourceEqualFold applies the EqualFold predicate on the "source" field.
func SourceEqualFold(v string) predicate.Article {
	return predicate.Article(sql.FieldEqualFold(FieldSource, v))
}

// SourceContainsFold applies the ContainsFold predicate on the "source" field.
func SourceContainsFold(v string) predicate.Article {
	return predicate.Article(sql.FieldContainsFold(FieldSource, v))
}

// URLEQ applies the EQ predicate on the "url" field.
func URLEQ(v string) predicate.Article {
	return predicate.Article(sql.FieldEQ(FieldURL, v))
}

// URLNEQ applies the NEQ predicate on the "url" field.
func URLNEQ(v string) predicate.Article {
	return predicate.Article(sql.FieldNEQ(FieldURL, v))
}

// URLIn applies the In predicate on the "url" field.
func URLIn(vs ...string) predicate.Article {
	return predicate.Article(sql.FieldIn(FieldURL, vs...))
}

// URLNotIn applies the NotIn predicate on the "url" field.
func URLNotIn(vs ...string) predicate.Article {
	return predicate.Article(sql.FieldNotIn(FieldURL, vs...))
}

// URLGT applies the GT predicate on the "url" field.
func URLGT(v string) predicate.Article {
	return predicate.Article(sql.FieldGT(FieldURL, v))
}

// URLGTE applies the GTE predicate on the "url" field.
func URLGTE(v string) predicate.Article {
	return predicate.Article(sql.FieldGTE(FieldURL, v))
}

// URLLT applies the LT predicate on the "url" field.
func URLLT(v string) predicate.Article {
	return predicate.Article(sql.FieldLT(FieldURL, v))
}

// URLLTE applies the LTE predicate on the "url" field.
func URLLTE(v string) predicate.Article {
	return predicate.Article(sql.FieldLTE(FieldURL, v))
}

// URLContains applies the Contains predicate on the "url" field.
func URLContains(v string) predicate.Article {
	return predicate.Article(sql.FieldContains(FieldURL, v))
}

// URLHasPrefix applies the HasPrefix predicate on the "url" field.
func URLHasPrefix(v string) predicate.Article {
	return predicate.Article(sql.FieldHasPrefix(FieldURL, v))
}

// URLHasSuffix applies the HasSuffix predicate on the "url" field.
func URLHasSuffix(v string) predicate.Article {
	return predicate.Article(sql.FieldHasSuffix(FieldURL, v))
}

// URLEqualFold applies the EqualFold predicate on the "url" field.
func URLEqualFold(v string) predicate.Article {
	return predicate.Article(sql.FieldEqualFold(FieldURL, v))
}

// URLContainsFold applies the ContainsFold predicate on the "url" field.
func URLContainsFold(v string) predicate.Article {
	return predicate.Article(sql.FieldContainsFold(FieldURL, v))
}

// TitleEQ applies the EQ predicate on the "title" field.
func TitleEQ(v string) predicate.Article {
	return predicate.Article(sql.FieldEQ(FieldTitle, v))
}

// TitleNEQ applies the NEQ predicate on the "title" field.
func TitleNEQ(v string) predicate.Article {
	return predicate.Article(sql.FieldNEQ(FieldTitle, v))
}

// TitleIn applies the In predicate on the "title" field.
func TitleIn(vs ...string) predicate.Article {
	return predicate.Article(sql.FieldIn(FieldTitle, vs...))
}

// TitleNotIn applies the NotIn predicate on the "title" field.
func TitleNotIn(vs ...string) predicate.Article {
	return predicate.Article(sql.FieldNotIn(FieldTitle, vs...))
}

// TitleGT applies the GT predicate on the "title" field.
func TitleGT(v string) predicate.Article {
	return predicate.Article(sql.FieldGT(FieldTitle, v))
}

// TitleGTE applies the GTE predicate on the "title" field.
func TitleGTE(v string) predicate.Article {
	return predicate.Article(sql.FieldGTE(FieldTitle, v))
}

// TitleLT applies the LT predicate on the "title" field.
func TitleLT(v string) predicate.Article {
	return predicate.Article(sql.FieldLT(FieldTitle, v))
}

// TitleLTE applies the LTE predicate on the "title" field.
func TitleLTE(v string) predicate.Article {
	return predicate.Article(sql.FieldLTE(FieldTitle, v))
}

// TitleContains applies the Contains predicate on the "title" field.
func TitleContains(v string) predicate.Article {
	return predicate.Article(sql.FieldContains(FieldTitle, v))
}

// TitleHasPrefix applies the HasPrefix predicate on the "title" field.
func TitleHasPrefix(v string) predicate.Article {
	return predicate.Article(sql.FieldHasPrefix(FieldTitle, v))
}

// TitleHasSuffix applies the HasSuffix predicate on the "title" field.
func TitleHasSuffix(v string) predicate.Article {
	return predicate.Article(sql.FieldHasSuffix(FieldTitle, v))
}

// TitleEqualFold applies the EqualFold predicate on the "title" field.
func TitleEqualFold(v string) predicate.Article {
	return predicate.Article(sql.FieldEqualFold(FieldTitle, v))
}

// TitleContainsFold applies the ContainsFold predicate on the "title" field.
func TitleContainsFold(v string) predicate.Article {
	return predicate.Article(sql.FieldContainsFold(FieldTitle, v))
}

// SummaryEQ applies the EQ predicate on the "summary" field.
func SummaryEQ(v string) predicate.Article {
	return predicate.Article(sql.FieldEQ(FieldSummary, v))
}

// SummaryNEQ applies the NEQ predicate on the "summary" field.
func SummaryNEQ(v string) predicate.Article {
	return predicate.Article(sql.FieldNEQ(FieldSummary, v))
}

// SummaryIn applies the In predicate on the "summary" field.
func SummaryIn(vs ...string) predicate.Article {
	return predicate.Article(sql.FieldIn(FieldSummary, vs...))
}

// SummaryNotIn applies the NotIn predicate on the "summary" field.
func SummaryNotIn(vs ...string) predicate.Article {
	return predicate.Article(sql.FieldNotIn(FieldSummary, vs...))
}

// SummaryGT applies the GT predicate on the "summary" field.
func SummaryGT(v string) predicate.Article {
	return predicate.Article(sql.FieldGT(FieldSummary, v))
}

// SummaryGTE applies the GTE predicate on the "summary" field.
func SummaryGTE(v string) predicate.Article {
	return predicate.Article(sql.FieldGTE(FieldSummary, v))
}

// SummaryLT applies the LT predicate on the "summary" field.
func SummaryLT(v string) predicate.Article {
	return predicate.Article(sql.FieldLT(FieldSummary, v))
}

// SummaryLTE applies the LTE predicate on the "summary" field.
func SummaryLTE(v string) predicate.Article {
	return predicate.Article(sql.FieldLTE(FieldSummary, v))
}

// SummaryContains applies the Contains predicate on the "summary" field.
func SummaryContains(v string) predicate.Article {
	return predicate.Article(sql.FieldContains(FieldSummary, v))
}

// SummaryHasPrefix applies the HasPrefix predicate on the "summary" field.
func SummaryHasPrefix(v string) predicate.Article {
	return predicate.Article(sql.FieldHasPrefix(FieldSummary, v))
}

// SummaryHasSuffix applies the HasSuffix predicate on the "summary" field.
func SummaryHasSuffix(v string) predicate.Article {
	return predicate.Article(sql.FieldHasSuffix(FieldSummary, v))
}

// SummaryIsNil applies the IsNil predicate on the "summary" field.
func SummaryIsNil() predicate.Article {
	return predicate.Article(sql.FieldIsNull(FieldSummary))
}

// SummaryNotNil applies the NotNil predicate on the "summary" field.
func SummaryNotNil() predicate.Article {
	return predicate.Article(sql.FieldNotNull(FieldSummary))
}

// SummaryEqualFold applies the EqualFold predicate on the "summary" field.
func SummaryEqualFold(v string) predicate.Article {
	return predicate.Article(sql.FieldEqualFold(FieldSummary, v))
}

// SummaryContainsFold applies the ContainsFold predicate on the "summary" field.
func SummaryContainsFold(v string) predicate.Article {
	return predicate.Article(sql.FieldContainsFold(FieldSummary, v))
}

// SymbolEQ applies the EQ predicate on the "symbol" field.
func SymbolEQ(v string) predicate.Article {
	return predicate.Article(sql.FieldEQ(FieldSymbol, v))
}

// SymbolNEQ applies the NEQ predicate on the "symbol" field.
func SymbolNEQ(v string) predicate.Article {
	return predicate.Article(sql.FieldNEQ(FieldSymbol, v))
}

// SymbolIn applies the In predicate on the "symbol" field.
func SymbolIn(vs ...string) predicate.Article {
	return predicate.Article(sql.FieldIn(FieldSymbol, vs...))
}

// SymbolNotIn applies the NotIn predicate on the "symbol" field.
func SymbolNotIn(vs ...string) predicate.Article {
	return predicate.Article(sql.FieldNotIn(FieldSymbol, vs...))
}

// SymbolGT applies the GT predicate on the "symbol" field.
func SymbolGT(v string) predicate.Article {
	return predicate.Article(sql.FieldGT(FieldSymbol, v))
}

// SymbolGTE applies the GTE predicate on the "symbol" field.
func SymbolGTE(v string) predicate.Article {
	return predicate.Article(sql.FieldGTE(FieldSymbol, v))
}

// SymbolLT applies the LT predicate on the "symbol" field.
func SymbolLT(v string) predicate.Article {
	return predicate.Article(sql.FieldLT(FieldSymbol, v))
}

// SymbolLTE applies the LTE predicate on the "symbol" field.
func SymbolLTE(v string) predicate.Article {
	return predicate.Article(sql.FieldLTE(FieldSymbol, v))
}

// SymbolContains applies the Contains predicate on the "symbol" field.
func SymbolContains(v string) predicate.Article {
	return predicate.Article(sql.FieldContains(FieldSymbol, v))
}

// SymbolHasPrefix applies the HasPrefix predicate on the "symbol" field.
func SymbolHasPrefix(v string) predicate.Article {
	return predicate.Article(sql.FieldHasPrefix(FieldSymbol, v))
}

// SymbolHasSuffix applies the HasSuffix predicate on the "symbol" field.
func SymbolHasSuffix(v string) predicate.Article {
	return predicate.Article(sql.FieldHasSuffix(FieldSymbol, v))
}

// SymbolIsNil applies the IsNil predicate on the "symbol" field.
func SymbolIsNil() predicate.Article {
	return predicate.Article(sql.FieldIsNull(FieldSymbol))
}

// SymbolNotNil applies the NotNil predicate on the "symbol" field.
func SymbolNotNil() predicate.Article {
	return predicate.Article(sql.FieldNotNull(FieldSymbol))
}

// SymbolEqualFold applies the EqualFold predicate on the "symbol" field.
func SymbolEqualFold(v string) predicate.Article {
	return predicate.Article(sql.FieldEqualFold(FieldSymbol, v))
}

// SymbolContainsFold applies the ContainsFold predicate on the "symbol" field.
func SymbolContainsFold(v string) predicate.Article {
	return predicate.Article(sql.FieldContainsFold(FieldSymbol, v))
}

// MarketEQ applies the EQ predicate on the "market" field.
func MarketEQ(v string) predicate.Article {
	return predicate.Article(sql.FieldEQ(FieldMarket, v))
}

// MarketNEQ applies the NEQ predicate on the "market" field.
func MarketNEQ(v string) predicate.Article {
	return predicate.Article(sql.FieldNEQ(FieldMarket, v))
}

// MarketIn applies the In predicate on the "market" field.
func MarketIn(vs ...string) predicate.Article {
	return predicate.Article(sql.FieldIn(FieldMarket, vs...))
}

// MarketNotIn applies the NotIn predicate on the "market" field.
func MarketNotIn(vs ...string) predicate.Article {
	return predicate.Article(sql.FieldNotIn(FieldMarket, vs...))
}

// MarketGT applies the GT predicate on the "market" field.
func MarketGT(v string) predicate.Article {
	return predicate.Article(sql.FieldGT(FieldMarket, v))
}

// MarketGTE applies the GTE predicate on the "market" field.
func MarketGTE(v string) predicate.Article {
	return predicate.Article(sql.FieldGTE(FieldMarket, v))
}

// MarketLT applies the LT predicate on the "market" field.
func MarketLT(v string) predicate.Article {
	return predicate.Article(sql.FieldLT(FieldMarket, v))
}

// MarketLTE applies the LTE predicate on the "market" field.
func MarketLTE(v string) predicate.Article {
	return predicate.Article(sql.FieldLTE(FieldMarket, v))
}

// MarketContains applies the Contains predicate on the "market" field.
func MarketContains(v string) predicate.Article {
	return predicate.Article(sql.FieldContains(FieldMarket, v))
}

// MarketHasPrefix applies the HasPrefix predicate on the "market" field.
func MarketHasPrefix(v string) predicate.Article {
	return predicate.Article(sql.FieldHasPrefix(FieldMarket, v))
}

// MarketHasSuffix applies the HasSuffix predicate on the "market" field.
func MarketHasSuffix(v string) predicate.Article {
	return predicate.Article(sql.FieldHasSuffix(FieldMarket, v))
}

// MarketIsNil applies the IsNil predicate on the "market" field.
func MarketIsNil() predicate.Article {
	return predicate.Article(sql.FieldIsNull(FieldMarket))
}

// MarketNotNil applies the NotNil predicate on the "market" field.
func MarketNotNil() predicate.Article {
	return predicate.Article(sql.FieldNotNull(FieldMarket))
}

// MarketEqualFold applies the EqualFold predicate on the "market" field.
func MarketEqualFold(v string) predicate.Article {
	return predicate.Article(sql.FieldEqualFold(FieldMarket, v))
}

// MarketContainsFold applies the ContainsFold predicate on the "market" field.
func MarketContainsFold(v string) predicate.Article {
	return predicate.Article(sql.FieldContainsFold(FieldMarket, v))
}

// PublishedAtEQ applies the EQ predicate on the "published_at" field.
func PublishedAtEQ(v time.Time) predicate.Article {
	return predicate.Article(sql.FieldEQ(FieldPublishedAt, v))
}

// PublishedAtNEQ applies the NEQ predicate on the "published_at" field.
func PublishedAtNEQ(v time.Time) predicate.Article {
	return predicate.Article(sql.FieldNEQ(FieldPublishedAt, v))
}

// PublishedAtIn applies the In predicate on the "published_at" field.
func PublishedAtIn(vs ...time.Time) predicate.Article {
	return predicate.Article(sql.FieldIn(FieldPublishedAt, vs...))
}

// PublishedAtNotIn applies the NotIn predicate on the "published_at" field.
func PublishedAtNotIn(vs ...time.Time) predicate.Article {
	return predicate.Article(sql.FieldNotIn(FieldPublishedAt, vs...))
}

// PublishedAtGT applies the GT predicate on the "published_at" field.
func PublishedAtGT(v time.Time) predicate.Article {
	return predicate.Article(sql.FieldGT(FieldPublishedAt, v))
}

// PublishedAtGTE applies the GTE predicate on the "published_at" field.
func PublishedAtGTE(v time.Time) predicate.Article {
	return predicate.Article(sql.FieldGTE(FieldPublishedAt, v))
}

// PublishedAtLT applies the LT predicate on the "published_at" field.
func PublishedAtLT(v time.Time) predicate.Article {
	return predicate.Article(sql.FieldLT(FieldPublishedAt, v))
}

// PublishedAtLTE applies the LTE predicate on the "published_at" field.
func PublishedAtLTE(v time.Time) predicate.Article {
	return predicate.Article(sql.FieldLTE(FieldPublishedAt, v))
}

// PublishedAtIsNil applies the IsNil predicate on the "published_at" field.
func PublishedAtIsNil() predicate.Article {
	return predicate.Article(sql.FieldIsNull(FieldPublishedAt))
}

// PublishedAtNotNil applies the NotNil predicate on the "published_at" field.
func PublishedAtNotNil() predicate.Article {
	return predicate.Article(sql.FieldNotNull(FieldPublishedAt))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Article {
	return predicate.Article(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Article {
	return predicate.Article(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Article {
	return predicate.Article(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Article {
	return predicate.Article(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Article {
	return predicate.Article(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Article {
	return predicate.Article(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Article {
	return predicate.Article(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Article {
	return predicate.Article(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Article {
	return predicate.Article(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Article {
	return predicate.Article(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Article {
	return predicate.Article(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Article {
	return predicate.Article(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Article {
	return predicate.Article(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Article {
	return predicate.Article(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Article {
	return predicate.Article(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Article {
	return predicate.Article(sql.FieldLTE(FieldUpdatedAt, v))
}

// ContentStatusEQ applies the EQ predicate on the "content_status" field.
func ContentStatusEQ(v ContentStatus) predicate.Article {
	return predicate.Article(sql.FieldEQ(FieldContentStatus, v))
}

// ContentStatusNEQ applies the NEQ predicate on the "content_status" field.
func ContentStatusNEQ(v ContentStatus) predicate.Article {
	return predicate.Article(sql.FieldNEQ(FieldContentStatus, v))
}

// ContentStatusIn applies the In predicate on the "content_status" field.
func ContentStatusIn(vs ...ContentStatus) predicate.Article {
	return predicate.Article(sql.FieldIn(FieldContentStatus, vs...))
}

// ContentStatusNotIn applies the NotIn predicate on the "content_status" field.
func ContentStatusNotIn(vs ...ContentStatus) predicate.Article {
	return predicate.Article(sql.FieldNotIn(FieldContentStatus, vs...))
}

// FilterStatusEQ applies the EQ predicate on the "filter_status" field.
func FilterStatusEQ(v FilterStatus) predicate.Article {
	return predicate.Article(sql.FieldEQ(FieldFilterStatus, v))
}

// FilterStatusNEQ applies the NEQ predicate on the "filter_status" field.
func FilterStatusNEQ(v FilterStatus) predicate.Article {
	return predicate.Article(sql.FieldNEQ(FieldFilterStatus, v))
}

// FilterStatusIn applies the In predicate on the "filter_status" field.
func FilterStatusIn(vs ...FilterStatus) predicate.Article {
	return predicate.Article(sql.FieldIn(FieldFilterStatus, vs...))
}

// FilterStatusNotIn applies the NotIn predicate on the "filter_status" field.
func FilterStatusNotIn(vs ...FilterStatus) predicate.Article {
	return predicate.Article(sql.FieldNotIn(FieldFilterStatus, vs...))
}

// ContentFilePathEQ applies the EQ predicate on the "content_file_path" field.
func ContentFilePathEQ(v string) predicate.Article {
	return predicate.Article(sql.FieldEQ(FieldContentFilePath, v))
}

// ContentFilePathNEQ applies the NEQ predicate on the "content_file_path" field.
func ContentFilePathNEQ(v string) predicate.Article {
	return predicate.Article(sql.FieldNEQ(FieldContentFilePath, v))
}

// ContentFilePathIn applies the In predicate on the "content_file_path" field.
func ContentFilePathIn(vs ...string) predicate.Article {
	return predicate.Article(sql.FieldIn(FieldContentFilePath, vs...))
}

// ContentFilePathNotIn applies the NotIn predicate on the "content_file_path" field.
func ContentFilePathNotIn(vs ...string) predicate.Article {
	return predicate.Article(sql.FieldNotIn(FieldContentFilePath, vs...))
}

// ContentFilePathGT applies the GT predicate on the "content_file_path" field.
func ContentFilePathGT(v string) predicate.Article {
	return predicate.Article(sql.FieldGT(FieldContentFilePath, v))
}

// ContentFilePathGTE applies the GTE predicate on the "content_file_path" field.
func ContentFilePathGTE(v string) predicate.Article {
	return predicate.Article(sql.FieldGTE(FieldContentFilePath, v))
}

// ContentFilePathLT applies the LT predicate on the "content_file_path" field.
func ContentFilePathLT(v string) predicate.Article {
	return predicate.Article(sql.FieldLT(FieldContentFilePath, v))
}

// ContentFilePathLTE applies the LTE predicate on the "content_file_path" field.
func ContentFilePathLTE(v string) predicate.Article {
	return predicate.Article(sql.FieldLTE(FieldContentFilePath, v))
}

// ContentFilePathContains applies the Contains predicate on the "content_file_path" field.
func ContentFilePathContains(v string) predicate.Article {
	return predicate.Article(sql.FieldContains(FieldContentFilePath, v))
}

// ContentFilePathHasPrefix applies the HasPrefix predicate on the "content_file_path" field.
func ContentFilePathHasPrefix(v string) predicate.Article {
	return predicate.Article(sql.FieldHasPrefix(FieldContentFilePath, v))
}

// ContentFilePathHasSuffix applies the HasSuffix predicate on the "content_file_path" field.
func ContentFilePathHasSuffix(v string) predicate.Article {
	return predicate.Article(sql.FieldHasSuffix(FieldContentFilePath, v))
}

// ContentFilePathIsNil applies the IsNil predicate on the "content_file_path" field.
func ContentFilePathIsNil() predicate.Article {
	return predicate.Article(sql.FieldIsNull(FieldContentFilePath))
}

// ContentFilePathNotNil applies the NotNil predicate on the "content_file_path" field.
func ContentFilePathNotNil() predicate.Article {
	return predicate.Article(sql.FieldNotNull(FieldContentFilePath))
}

// ContentFilePathEqualFold applies the EqualFold predicate on the "content_file_path" field.
func ContentFilePathEqualFold(v string) predicate.Article {
	return predicate.Article(sql.FieldEqualFold(FieldContentFilePath, v))
}

// ContentFilePathContainsFold applies the ContainsFold predicate on the "content_file_path" field.
func ContentFilePathContainsFold(v string) predicate.Article {
	return predicate.Article(sql.FieldContainsFold(FieldContentFilePath, v))
}

// RelatedEntitiesIsNil applies the IsNil predicate on the "related_entities" field.
func RelatedEntitiesIsNil() predicate.Article {
	return predicate.Article(sql.FieldIsNull(FieldRelatedEntities))
}

// RelatedEntitiesNotNil applies the NotNil predicate on the "related_entities" field.
func RelatedEntitiesNotNil() predicate.Article {
	return predicate.Article(sql.FieldNotNull(FieldRelatedEntities))
}

// IndustryTagsIsNil applies the IsNil predicate on the "industry_tags" field.
func IndustryTagsIsNil() predicate.Article {
	return predicate.Article(sql.FieldIsNull(FieldIndustryTags))
}

// IndustryTagsNotNil applies the NotNil predicate on the "industry_tags" field.
func IndustryTagsNotNil() predicate.Article {
	return predicate.Article(sql.FieldNotNull(FieldIndustryTags))
}

// EventTagsIsNil applies the IsNil predicate on the "event_tags" field.
func EventTagsIsNil() predicate.Article {
	return predicate.Article(sql.FieldIsNull(FieldEventTags))
}

// EventTagsNotNil applies the NotNil predicate on the "event_tags" field.
func EventTagsNotNil() predicate.Article {
	return predicate.Article(sql.FieldNotNull(FieldEventTags))
}

// SentimentTagEQ applies the EQ predicate on the "sentiment_tag" field.
func SentimentTagEQ(v string) predicate.Article {
	return predicate.Article(sql.FieldEQ(FieldSentimentTag, v))
}

// SentimentTagNEQ applies the NEQ predicate on the "sentiment_tag" field.
func SentimentTagNEQ(v string) predicate.Article {
	return predicate.Article(sql.FieldNEQ(FieldSentimentTag, v))
}

// SentimentTagIn applies the In predicate on the "sentiment_tag" field.
func SentimentTagIn(vs ...string) predicate.Article {
	return predicate.Article(sql.FieldIn(FieldSentimentTag, vs...))
}

// SentimentTagNotIn applies the NotIn predicate on the "sentiment_tag" field.
func SentimentTagNotIn(vs ...string) predicate.Article {
	return predicate.Article(sql.FieldNotIn(FieldSentimentTag, vs...))
}

// SentimentTagGT applies the GT predicate on the "sentiment_tag" field.
func SentimentTagGT(v string) predicate.Article {
	return predicate.Article(sql.FieldGT(FieldSentimentTag, v))
}

// SentimentTagGTE applies the GTE predicate on the "sentiment_tag" field.
func SentimentTagGTE(v string) predicate.Article {
	return predicate.Article(sql.FieldGTE(FieldSentimentTag, v))
}

// SentimentTagLT applies the LT predicate on the "sentiment_tag" field.
func SentimentTagLT(v string) predicate.Article {
	return predicate.Article(sql.FieldLT(FieldSentimentTag, v))
}

// SentimentTagLTE applies the LTE predicate on the "sentiment_tag" field.
func SentimentTagLTE(v string) predicate.Article {
	return predicate.Article(sql.FieldLTE(FieldSentimentTag, v))
}

// SentimentTagContains applies the Contains predicate on the "sentiment_tag" field.
func SentimentTagContains(v string) predicate.Article {
	return predicate.Article(sql.FieldContains(FieldSentimentTag, v))
}

// SentimentTagHasPrefix applies the HasPrefix predicate on the "sentiment_tag" field.
func SentimentTagHasPrefix(v string) predicate.Article {
	return predicate.Article(sql.FieldHasPrefix(FieldSentimentTag, v))
}

// SentimentTagHasSuffix applies the HasSuffix predicate on the "sentiment_tag" field.
func SentimentTagHasSuffix(v string) predicate.Article {
	return predicate.Article(sql.FieldHasSuffix(FieldSentimentTag, v))
}

// SentimentTagIsNil applies the IsNil predicate on the "sentiment_tag" field.
func SentimentTagIsNil() predicate.Article {
	return predicate.Article(sql.FieldIsNull(FieldSentimentTag))
}

// SentimentTagNotNil applies the NotNil predicate on the "sentiment_tag" field.
func SentimentTagNotNil() predicate.Article {
	return predicate.Article(sql.FieldNotNull(FieldSentimentTag))
}

// SentimentTagEqualFold applies the EqualFold predicate on the "sentiment_tag" field.
func SentimentTagEqualFold(v string) predicate.Article {
	return predicate.Article(sql.FieldEqualFold(FieldSentimentTag, v))
}

// SentimentTagContainsFold applies the ContainsFold predicate on the "sentiment_tag" field.
func SentimentTagContainsFold(v string) predicate.Article {
	return predicate.Article(sql.FieldContainsFold(FieldSentimentTag, v))
}

// InvestmentSummaryEQ applies the EQ predicate on the "investment_summary" field.
func InvestmentSummaryEQ(v string) predicate.Article {
	return predicate.Article(sql.FieldEQ(FieldInvestmentSummary, v))
}

// InvestmentSummaryNEQ applies the NEQ predicate on the "investment_summary" field.
func InvestmentSummaryNEQ(v string) predicate.Article {
	return predicate.Article(sql.FieldNEQ(FieldInvestmentSummary, v))
}

// InvestmentSummaryIn applies the In predicate on the "investment_summary" field.
func InvestmentSummaryIn(vs ...string) predicate.Article {
	return predicate.Article(sql.FieldIn(FieldInvestmentSummary, vs...))
}

// InvestmentSummaryNotIn applies the NotIn predicate on the "investment_summary" field.
func InvestmentSummaryNotIn(vs ...string) predicate.Article {
	return predicate.Article(sql.FieldNotIn(FieldInvestmentSummary, vs...))
}

// InvestmentSummaryGT applies the GT predicate on the "investment_summary" field.
func InvestmentSummaryGT(v string) predicate.Article {
	return predicate.Article(sql.FieldGT(FieldInvestmentSummary, v))
}

// InvestmentSummaryGTE applies the GTE predicate on the "investment_summary" field.
func InvestmentSummaryGTE(v string) predicate.Article {
	return predicate.Article(sql.FieldGTE(FieldInvestmentSummary, v))
}

// InvestmentSummaryLT applies the LT predicate on the "investment_summary" field.
func InvestmentSummaryLT(v string) predicate.Article {
	return predicate.Article(sql.FieldLT(FieldInvestmentSummary, v))
}

// InvestmentSummaryLTE applies the LTE predicate on the "investment_summary" field.
func InvestmentSummaryLTE(v string) predicate.Article {
	return predicate.Article(sql.FieldLTE(FieldInvestmentSummary, v))
}

// InvestmentSummaryContains applies the Contains predicate on the "investment_summary" field.
func InvestmentSummaryContains(v string) predicate.Article {
	return predicate.Article(sql.FieldContains(FieldInvestmentSummary, v))
}

// InvestmentSummaryHasPrefix applies the HasPrefix predicate on the "investment_summary" field.
func InvestmentSummaryHasPrefix(v string) predicate.Article {
	return predicate.Article(sql.FieldHasPrefix(FieldInvestmentSummary, v))
}

// InvestmentSummaryHasSuffix applies the HasSuffix predicate on the "investment_summary" field.
func InvestmentSummaryHasSuffix(v string) predicate.Article {
	return predicate.Article(sql.FieldHasSuffix(FieldInvestmentSummary, v))
}

// InvestmentSummaryIsNil applies the IsNil predicate on the "investment_summary" field.
func InvestmentSummaryIsNil() predicate.Article {
	return predicate.Article(sql.FieldIsNull(FieldInvestmentSummary))
}

// InvestmentSummaryNotNil applies the NotNil predicate on the "investment_summary" field.
func InvestmentSummaryNotNil() predicate.Article {
	return predicate.Article(sql.FieldNotNull(FieldInvestmentSummary))
}

// InvestmentSummaryEqualFold applies the EqualFold predicate on the "investment_summary" field.
func InvestmentSummaryEqualFold(v string) predicate.Article {
	return predicate.Article(sql.FieldEqualFold(FieldInvestmentSummary, v))
}

// InvestmentSummaryContainsFold applies the ContainsFold predicate on the "investment_summary" field.
func InvestmentSummaryContainsFold(v string) predicate.Article {
	return predicate.Article(sql.FieldContainsFold(FieldInvestmentSummary, v))
}

// DetailedSummaryEQ applies the EQ predicate on the "detailed_summary" field.
func DetailedSummaryEQ(v string) predicate.Article {
	return predicate.Article(sql.FieldEQ(FieldDetailedSummary, v))
}

// DetailedSummaryNEQ applies the NEQ predicate on the "detailed_summary" field.
func DetailedSummaryNEQ(v string) predicate.Article {
	return predicate.Article(sql.FieldNEQ(FieldDetailedSummary, v))
}

// DetailedSummaryIn applies the In predicate on the "detailed_summary" field.
func DetailedSummaryIn(vs ...string) predicate.Article {
	return predicate.Article(sql.FieldIn(FieldDetailedSummary, vs...))
}

// DetailedSummaryNotIn applies the NotIn predicate on the "detailed_summary" field.
func DetailedSummaryNotIn(vs ...string) predicate.Article {
	return predicate.Article(sql.FieldNotIn(FieldDetailedSummary, vs...))
}

// DetailedSummaryGT applies the GT predicate on the "detailed_summary" field.
func DetailedSummaryGT(v string) predicate.Article {
	return predicate.Article(sql.FieldGT(FieldDetailedSummary, v))
}

// DetailedSummaryGTE applies the GTE predicate on the "detailed_summary" field.
func DetailedSummaryGTE(v string) predicate.Article {
	return predicate.Article(sql.FieldGTE(FieldDetailedSummary, v))
}

// DetailedSummaryLT applies the LT predicate on the "detailed_summary" field.
func DetailedSummaryLT(v string) predicate.Article {
	return predicate.Article(sql.FieldLT(FieldDetailedSummary, v))
}

// DetailedSummaryLTE applies the LTE predicate on the "detailed_summary" field.
func DetailedSummaryLTE(v string) predicate.Article {
	return predicate.Article(sql.FieldLTE(FieldDetailedSummary, v))
}

// DetailedSummaryContains applies the Contains predicate on the "detailed_summary" field.
func DetailedSummaryContains(v string) predicate.Article {
	return predicate.Article(sql.FieldContains(FieldDetailedSummary, v))
}

// DetailedSummaryHasPrefix applies the HasPrefix predicate on the "detailed_summary" field.
func DetailedSummaryHasPrefix(v string) predicate.Article {
	return predicate.Article(sql.FieldHasPrefix(FieldDetailedSummary, v))
}

// DetailedSummaryHasSuffix applies the HasSuffix predicate on the "detailed_summary" field.
func DetailedSummaryHasSuffix(v string) predicate.Article {
	return predicate.Article(sql.FieldHasSuffix(FieldDetailedSummary, v))
}

// DetailedSummaryIsNil applies the IsNil predicate on the "detailed_summary" field.
func DetailedSummaryIsNil() predicate.Article {
	return predicate.Article(sql.FieldIsNull(FieldDetailedSummary))
}

// DetailedSummaryNotNil applies the NotNil predicate on the "detailed_summary" field.
func DetailedSummaryNotNil() predicate.Article {
	return predicate.Article(sql.FieldNotNull(FieldDetailedSummary))
}

// DetailedSummaryEqualFold applies the EqualFold predicate on the "detailed_summary" field.
func DetailedSummaryEqualFold(v string) predicate.Article {
	return predicate.Article(sql.FieldEqualFold(FieldDetailedSummary, v))
}

// DetailedSummaryContainsFold applies the ContainsFold predicate on the "detailed_summary" field.
func DetailedSummaryContainsFold(v string) predicate.Article {
	return predicate.Article(sql.FieldContainsFold(FieldDetailedSummary, v))
}

// AnalysisReportEQ applies the EQ predicate on the "analysis_report" field.
func AnalysisReportEQ(v string) predicate.Article {
	return predicate.Article(sql.FieldEQ(FieldAnalysisReport, v))
}

// AnalysisReportNEQ applies the NEQ predicate on the "analysis_report" field.
func AnalysisReportNEQ(v string) predicate.Article {
	return predicate.Article(sql.FieldNEQ(FieldAnalysisReport, v))
}

// AnalysisReportIn applies the In predicate on the "analysis_report" field.
func AnalysisReportIn(vs ...string) predicate.Article {
	return predicate.Article(sql.FieldIn(FieldAnalysisReport, vs...))
}

// AnalysisReportNotIn applies the NotIn predicate on the "analysis_report" field.
func AnalysisReportNotIn(vs ...string) predicate.Article {
	return predicate.Article(sql.FieldNotIn(FieldAnalysisReport, vs...))
}

// AnalysisReportGT applies the GT predicate on the "analysis_report" field.
func AnalysisReportGT(v string) predicate.Article {
	return predicate.Article(sql.FieldGT(FieldAnalysisReport, v))
}

// AnalysisReportGTE applies the GTE predicate on the "analysis_report" field.
func AnalysisReportGTE(v string) predicate.Article {
	return predicate.Article(sql.FieldGTE(FieldAnalysisReport, v))
}

// AnalysisReportLT applies the LT predicate on the "analysis_report" field.
func AnalysisReportLT(v string) predicate.Article {
	return predicate.Article(sql.FieldLT(FieldAnalysisReport, v))
}

// AnalysisReportLTE applies the LTE predicate on the "analysis_report" field.
func AnalysisReportLTE(v string) predicate.Article {
	return predicate.Article(sql.FieldLTE(FieldAnalysisReport, v))
}

// AnalysisReportContains applies the Contains predicate on the "analysis_report" field.
func AnalysisReportContains(v string) predicate.Article {
	return predicate.Article(sql.FieldContains(FieldAnalysisReport, v))
}

// AnalysisReportHasPrefix applies the HasPrefix predicate on the "analysis_report" field.
func AnalysisReportHasPrefix(v string) predicate.Article {
	return predicate.Article(sql.FieldHasPrefix(FieldAnalysisReport, v))
}

// AnalysisReportHasSuffix applies the HasSuffix predicate on the "analysis_report" field.
func AnalysisReportHasSuffix(v string) predicate.Article {
	return predicate.Article(sql.FieldHasSuffix(FieldAnalysisReport, v))
}

// AnalysisReportIsNil applies the IsNil predicate on the "analysis_report" field.
func AnalysisReportIsNil() predicate.Article {
	return predicate.Article(sql.FieldIsNull(FieldAnalysisReport))
}

// AnalysisReportNotNil applies the NotNil predicate on the "analysis_report" field.
func AnalysisReportNotNil() predicate.Article {
	return predicate.Article(sql.FieldNotNull(FieldAnalysisReport))
}

// AnalysisReportEqualFold applies the EqualFold predicate on the "analysis_report" field.
func AnalysisReportEqualFold(v string) predicate.Article {
	return predicate.Article(sql.FieldEqualFold(FieldAnalysisReport, v))
}

// AnalysisReportContainsFold applies the ContainsFold predicate on the "analysis_report" field.
func AnalysisReportContainsFold(v string) predicate.Article {
	return predicate.Article(sql.FieldContainsFold(FieldAnalysisReport, v))
}

// PrimaryEntityEQ applies the EQ predicate on the "primary_entity" field.
func PrimaryEntityEQ(v string) predicate.Article {
	return predicate.Article(sql.FieldEQ(FieldPrimaryEntity, v))
}

// PrimaryEntityNEQ applies the NEQ predicate on the "primary_entity" field.
func PrimaryEntityNEQ(v string) predicate.Article {
	return predicate.Article(sql.FieldNEQ(FieldPrimaryEntity, v))
}

// PrimaryEntityIn applies the In predicate on the "primary_entity" field.
func PrimaryEntityIn(vs ...string) predicate.Article {
	return predicate.Article(sql.FieldIn(FieldPrimaryEntity, vs...))
}

// PrimaryEntityNotIn applies the NotIn predicate on the "primary_entity" field.
func PrimaryEntityNotIn(vs ...string) predicate.Article {
	return predicate.Article(sql.FieldNotIn(FieldPrimaryEntity, vs...))
}

// PrimaryEntityGT applies the GT predicate on the "primary_entity" field.
func PrimaryEntityGT(v string) predicate.Article {
	return predicate.Article(sql.FieldGT(FieldPrimaryEntity, v))
}

// PrimaryEntityGTE applies the GTE predicate on the "primary_entity" field.
func PrimaryEntityGTE(v string) predicate.Article {
	return predicate.Article(sql.FieldGTE(FieldPrimaryEntity, v))
}

// PrimaryEntityLT applies the LT predicate on the "primary_entity" field.
func PrimaryEntityLT(v string) predicate.Article {
	return predicate.Article(sql.FieldLT(FieldPrimaryEntity, v))
}

// PrimaryEntityLTE applies the LTE predicate on the "primary_entity" field.
func PrimaryEntityLTE(v string) predicate.Article {
	return predicate.Article(sql.FieldLTE(FieldPrimaryEntity, v))
}

// PrimaryEntityContains applies the Contains predicate on the "primary_entity" field.
func PrimaryEntityContains(v string) predicate.Article {
	return predicate.Article(sql.FieldContains(FieldPrimaryEntity, v))
}

// PrimaryEntityHasPrefix applies the HasPrefix predicate on the "primary_entity" field.
func PrimaryEntityHasPrefix(v string) predicate.Article {
	return predicate.Article(sql.FieldHasPrefix(FieldPrimaryEntity, v))
}

// PrimaryEntityHasSuffix applies the HasSuffix predicate on the "primary_entity" field.
func PrimaryEntityHasSuffix(v string) predicate.Article {
	return predicate.Article(sql.FieldHasSuffix(FieldPrimaryEntity, v))
}

// PrimaryEntityIsNil applies the IsNil predicate on the "primary_entity" field.
func PrimaryEntityIsNil() predicate.Article {
	return predicate.Article(sql.FieldIsNull(FieldPrimaryEntity))
}

// PrimaryEntityNotNil applies the NotNil predicate on the "primary_entity" field.
func PrimaryEntityNotNil() predicate.Article {
	return predicate.Article(sql.FieldNotNull(FieldPrimaryEntity))
}

// PrimaryEntityEqualFold applies the EqualFold predicate on the "primary_entity" field.
func PrimaryEntityEqualFold(v string) predicate.Article {
	return predicate.Article(sql.FieldEqualFold(FieldPrimaryEntity, v))
}

// PrimaryEntityContainsFold applies the ContainsFold predicate on the "primary_entity" field.
func PrimaryEntityContainsFold(v string) predicate.Article {
	return predicate.Article(sql.FieldContainsFold(FieldPrimaryEntity, v))
}

// HasStockEntityEQ applies the EQ predicate on the "has_stock_entity" field.
func HasStockEntityEQ(v bool) predicate.Article {
	return predicate.Article(sql.FieldEQ(FieldHasStockEntity, v))
}

// HasStockEntityNEQ applies the NEQ predicate on the "has_stock_entity" field.
func HasStockEntityNEQ(v bool) predicate.Article {
	return predicate.Article(sql.FieldNEQ(FieldHasStockEntity, v))
}

// HasMacroEntityEQ applies the EQ predicate on the "has_macro_entity" field.
func HasMacroEntityEQ(v bool) predicate.Article {
	return predicate.Article(sql.FieldEQ(FieldHasMacroEntity, v))
}

// HasMacroEntityNEQ applies the NEQ predicate on the "has_macro_entity" field.
func HasMacroEntityNEQ(v bool) predicate.Article {
	return predicate.Article(sql.FieldNEQ(FieldHasMacroEntity, v))
}

// MaxEntityScoreEQ applies the EQ predicate on the "max_entity_score" field.
func MaxEntityScoreEQ(v float64) predicate.Article {
	return predicate.Article(sql.FieldEQ(FieldMaxEntityScore, v))
}

// MaxEntityScoreNEQ applies the NEQ predicate on the "max_entity_score" field.
func MaxEntityScoreNEQ(v float64) predicate.Article {
	return predicate.Article(sql.FieldNEQ(FieldMaxEntityScore, v))
}

// MaxEntityScoreIn applies the In predicate on the "max_entity_score" field.
func MaxEntityScoreIn(vs ...float64) predicate.Article {
	return predicate.Article(sql.FieldIn(FieldMaxEntityScore, vs...))
}

// MaxEntityScoreNotIn applies the NotIn predicate on the "max_entity_score" field.
func MaxEntityScoreNotIn(vs ...float64) predicate.Article {
	return predicate.Article(sql.FieldNotIn(FieldMaxEntityScore, vs...))
}

// MaxEntityScoreGT applies the GT predicate on the "max_entity_score" field.
func MaxEntityScoreGT(v float64) predicate.Article {
	return predicate.Article(sql.FieldGT(FieldMaxEntityScore, v))
}

// MaxEntityScoreGTE applies the GTE predicate on the "max_entity_score" field.
func MaxEntityScoreGTE(v float64) predicate.Article {
	return predicate.Article(sql.FieldGTE(FieldMaxEntityScore, v))
}

// MaxEntityScoreLT applies the LT predicate on the "max_entity_score" field.
func MaxEntityScoreLT(v float64) predicate.Article {
	return predicate.Article(sql.FieldLT(FieldMaxEntityScore, v))
}

// MaxEntityScoreLTE applies the LTE predicate on the "max_entity_score" field.
func MaxEntityScoreLTE(v float64) predicate.Article {
	return predicate.Article(sql.FieldLTE(FieldMaxEntityScore, v))
}

// ErrorMessageEQ applies the EQ predicate on the "error_message" field.
func ErrorMessageEQ(v string) predicate.Article {
	return predicate.Article(sql.FieldEQ(FieldErrorMessage, v))
}

// ErrorMessageNEQ applies the NEQ predicate on the "error_message" field.
func ErrorMessageNEQ(v string) predicate.Article {
	return predicate.Article(sql.FieldNEQ(FieldErrorMessage, v))
}

// ErrorMessageIn applies the In predicate on the "error_message" field.
func ErrorMessageIn(vs ...string) predicate.Article {
	return predicate.Article(sql.FieldIn(FieldErrorMessage, vs...))
}

// ErrorMessageNotIn applies the NotIn predicate on the "error_message" field.
func ErrorMessageNotIn(vs ...string) predicate.Article {
	return predicate.Article(sql.FieldNotIn(FieldErrorMessage, vs...))
}

// ErrorMessageGT applies the GT predicate on the "error_message" field.
func ErrorMessageGT(v string) predicate.Article {
	return predicate.Article(sql.FieldGT(FieldErrorMessage, v))
}

// ErrorMessageGTE applies the GTE predicate on the "error_message" field.
func ErrorMessageGTE(v string) predicate.Article {
	return predicate.Article(sql.FieldGTE(FieldErrorMessage, v))
}

// ErrorMessageLT applies the LT predicate on the "error_message" field.
func ErrorMessageLT(v string) predicate.Article {
	return predicate.Article(sql.FieldLT(FieldErrorMessage, v))
}

// ErrorMessageLTE applies the LTE predicate on the "error_message" field.
func ErrorMessageLTE(v string) predicate.Article {
	return predicate.Article(sql.FieldLTE(FieldErrorMessage, v))
}

// ErrorMessageContains applies the Contains predicate on the "error_message" field.
func ErrorMessageContains(v string) predicate.Article {
	return predicate.Article(sql.FieldContains(FieldErrorMessage, v))
}

// ErrorMessageHasPrefix applies the HasPrefix predicate on the "error_message" field.
func ErrorMessageHasPrefix(v string) predicate.Article {
	return predicate.Article(sql.FieldHasPrefix(FieldErrorMessage, v))
}

// ErrorMessageHasSuffix applies the HasSuffix predicate on the "error_message" field.
func ErrorMessageHasSuffix(v string) predicate.Article {
	return predicate.Article(sql.FieldHasSuffix(FieldErrorMessage, v))
}

// ErrorMessageIsNil applies the IsNil predicate on the "error_message" field.
func ErrorMessageIsNil() predicate.Article {
	return predicate.Article(sql.FieldIsNull(FieldErrorMessage))
}

// ErrorMessageNotNil applies the NotNil predicate on the "error_message" field.
func ErrorMessageNotNil() predicate.Article {
	return predicate.Article(sql.FieldNotNull(FieldErrorMessage))
}

// ErrorMessageEqualFold applies the EqualFold predicate on the "error_message" field.
func ErrorMessageEqualFold(v string) predicate.Article {
	return predicate.Article(sql.FieldEqualFold(FieldErrorMessage, v))
}

// ErrorMessageContainsFold applies the ContainsFold predicate on the "error_message" field.
func ErrorMessageContainsFold(v string) predicate.Article {
	return predicate.Article(sql.FieldContainsFold(FieldErrorMessage, v))
}

// HasTraces applies the HasEdge predicate on the "traces" edge.
func HasTraces() predicate.Article {
	return predicate.Article(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, TracesTable, TracesColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasTracesWith applies the HasEdge predicate on the "traces" edge with a given conditions (other predicates).
func HasTracesWith(preds ...predicate.PipelineTrace) predicate.Article {
	return predicate.Article(func(s *sql.Selector) {
		step := newTracesStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Article) predicate.Article {
	return predicate.Article(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Article) predicate.Article {
	return predicate.Article(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Article) predicate.Article {
	return predicate.Article(sql.NotPredicates(p))
}
