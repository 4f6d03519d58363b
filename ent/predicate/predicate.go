// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Article is the predicate function for article builders.
type Article func(*sql.Selector)

// Feed is the predicate function for feed builders.
type Feed func(*sql.Selector)

// PipelineJob is the predicate function for pipelinejob builders.
type PipelineJob func(*sql.Selector)

// PipelineTrace is the predicate function for pipelinetrace builders.
type PipelineTrace func(*sql.Selector)

// SystemSetting is the predicate function for systemsetting builders.
type SystemSetting func(*sql.Selector)
