// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/finsight/newsflow/ent/article"
	"github.com/finsight/newsflow/ent/feed"
	"github.com/finsight/newsflow/ent/pipelinejob"
	"github.com/finsight/newsflow/ent/pipelinetrace"
	"github.com/finsight/newsflow/ent/schema"
	"github.com/finsight/newsflow/ent/systemsetting"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	articleFields := schema.Article{}.Fields()
	_ = articleFields
	// articleDescCreatedAt is the schema descriptor for created_at field.
	articleDescCreatedAt := articleFields[8].Descriptor()
	// article.DefaultCreatedAt holds the default value on creation for the created_at field.
	article.DefaultCreatedAt = articleDescCreatedAt.Default.(func() time.Time)
	// articleDescUpdatedAt is the schema descriptor for updated_at field.
	articleDescUpdatedAt := articleFields[9].Descriptor()
	// article.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	article.DefaultUpdatedAt = articleDescUpdatedAt.Default.(func() time.Time)
	// article.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	article.UpdateDefaultUpdatedAt = articleDescUpdatedAt.UpdateDefault.(func() time.Time)
	// articleDescHasStockEntity is the schema descriptor for has_stock_entity field.
	articleDescHasStockEntity := articleFields[21].Descriptor()
	// article.DefaultHasStockEntity holds the default value on creation for the has_stock_entity field.
	article.DefaultHasStockEntity = articleDescHasStockEntity.Default.(bool)
	// articleDescHasMacroEntity is the schema descriptor for has_macro_entity field.
	articleDescHasMacroEntity := articleFields[22].Descriptor()
	// article.DefaultHasMacroEntity holds the default value on creation for the has_macro_entity field.
	article.DefaultHasMacroEntity = articleDescHasMacroEntity.Default.(bool)
	// articleDescMaxEntityScore is the schema descriptor for max_entity_score field.
	articleDescMaxEntityScore := articleFields[23].Descriptor()
	// article.DefaultMaxEntityScore holds the default value on creation for the max_entity_score field.
	article.DefaultMaxEntityScore = articleDescMaxEntityScore.Default.(float64)
	feedFields := schema.Feed{}.Fields()
	_ = feedFields
	// feedDescIntervalMinutes is the schema descriptor for interval_minutes field.
	feedDescIntervalMinutes := feedFields[4].Descriptor()
	// feed.DefaultIntervalMinutes holds the default value on creation for the interval_minutes field.
	feed.DefaultIntervalMinutes = feedDescIntervalMinutes.Default.(int)
	// feedDescFulltext is the schema descriptor for fulltext field.
	feedDescFulltext := feedFields[5].Descriptor()
	// feed.DefaultFulltext holds the default value on creation for the fulltext field.
	feed.DefaultFulltext = feedDescFulltext.Default.(bool)
	// feedDescEnabled is the schema descriptor for enabled field.
	feedDescEnabled := feedFields[6].Descriptor()
	// feed.DefaultEnabled holds the default value on creation for the enabled field.
	feed.DefaultEnabled = feedDescEnabled.Default.(bool)
	// feedDescConsecutiveErrors is the schema descriptor for consecutive_errors field.
	feedDescConsecutiveErrors := feedFields[10].Descriptor()
	// feed.DefaultConsecutiveErrors holds the default value on creation for the consecutive_errors field.
	feed.DefaultConsecutiveErrors = feedDescConsecutiveErrors.Default.(int)
	// feedDescArticleCount is the schema descriptor for article_count field.
	feedDescArticleCount := feedFields[11].Descriptor()
	// feed.DefaultArticleCount holds the default value on creation for the article_count field.
	feed.DefaultArticleCount = feedDescArticleCount.Default.(int)
	// feedDescCreatedAt is the schema descriptor for created_at field.
	feedDescCreatedAt := feedFields[12].Descriptor()
	// feed.DefaultCreatedAt holds the default value on creation for the created_at field.
	feed.DefaultCreatedAt = feedDescCreatedAt.Default.(func() time.Time)
	// feedDescUpdatedAt is the schema descriptor for updated_at field.
	feedDescUpdatedAt := feedFields[13].Descriptor()
	// feed.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	feed.DefaultUpdatedAt = feedDescUpdatedAt.Default.(func() time.Time)
	// feed.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	feed.UpdateDefaultUpdatedAt = feedDescUpdatedAt.UpdateDefault.(func() time.Time)
	pipelinejobFields := schema.PipelineJob{}.Fields()
	_ = pipelinejobFields
	// pipelinejobDescQueue is the schema descriptor for queue field.
	pipelinejobDescQueue := pipelinejobFields[2].Descriptor()
	// pipelinejob.DefaultQueue holds the default value on creation for the queue field.
	pipelinejob.DefaultQueue = pipelinejobDescQueue.Default.(string)
	// pipelinejobDescAttempts is the schema descriptor for attempts field.
	pipelinejobDescAttempts := pipelinejobFields[5].Descriptor()
	// pipelinejob.DefaultAttempts holds the default value on creation for the attempts field.
	pipelinejob.DefaultAttempts = pipelinejobDescAttempts.Default.(int)
	// pipelinejobDescMaxAttempts is the schema descriptor for max_attempts field.
	pipelinejobDescMaxAttempts := pipelinejobFields[6].Descriptor()
	// pipelinejob.DefaultMaxAttempts holds the default value on creation for the max_attempts field.
	pipelinejob.DefaultMaxAttempts = pipelinejobDescMaxAttempts.Default.(int)
	// pipelinejobDescRunAt is the schema descriptor for run_at field.
	pipelinejobDescRunAt := pipelinejobFields[7].Descriptor()
	// pipelinejob.DefaultRunAt holds the default value on creation for the run_at field.
	pipelinejob.DefaultRunAt = pipelinejobDescRunAt.Default.(func() time.Time)
	// pipelinejobDescCreatedAt is the schema descriptor for created_at field.
	pipelinejobDescCreatedAt := pipelinejobFields[14].Descriptor()
	// pipelinejob.DefaultCreatedAt holds the default value on creation for the created_at field.
	pipelinejob.DefaultCreatedAt = pipelinejobDescCreatedAt.Default.(func() time.Time)
	pipelinetraceFields := schema.PipelineTrace{}.Fields()
	_ = pipelinetraceFields
	// pipelinetraceDescDurationMs is the schema descriptor for duration_ms field.
	pipelinetraceDescDurationMs := pipelinetraceFields[5].Descriptor()
	// pipelinetrace.DefaultDurationMs holds the default value on creation for the duration_ms field.
	pipelinetrace.DefaultDurationMs = pipelinetraceDescDurationMs.Default.(int)
	// pipelinetraceDescCreatedAt is the schema descriptor for created_at field.
	pipelinetraceDescCreatedAt := pipelinetraceFields[8].Descriptor()
	// pipelinetrace.DefaultCreatedAt holds the default value on creation for the created_at field.
	pipelinetrace.DefaultCreatedAt = pipelinetraceDescCreatedAt.Default.(func() time.Time)
	systemsettingFields := schema.SystemSetting{}.Fields()
	_ = systemsettingFields
	// systemsettingDescUpdatedAt is the schema descriptor for updated_at field.
	systemsettingDescUpdatedAt := systemsettingFields[2].Descriptor()
	// systemsetting.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	systemsetting.DefaultUpdatedAt = systemsettingDescUpdatedAt.Default.(func() time.Time)
	// systemsetting.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	systemsetting.UpdateDefaultUpdatedAt = systemsettingDescUpdatedAt.UpdateDefault.(func() time.Time)
}
