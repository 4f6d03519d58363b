// Package workflow runs the Layer-2 per-article state machine: read the
// content file, filter (deep or legacy), then embed or delete, with exactly
// one terminal database update and batched trace persistence.
package workflow

import (
	"time"

	"github.com/finsight/newsflow/ent/article"
	"github.com/finsight/newsflow/pkg/analysis"
	"github.com/finsight/newsflow/pkg/models"
)

// Job is the queue payload driving one workflow run.
type Job struct {
	ArticleID string
	FilePath  string
	Routing   string // Layer-1 routing decision
	Partial   bool
}

// Filter modes selected by route_filter_mode.
const (
	modeTwoPhase = "two_phase"
	modeLegacy   = "legacy"
)

// Filter decisions.
const (
	DecisionKeep   = "keep"
	DecisionDelete = "delete"
)

// State is the mutable bag carried through the graph. Nodes mutate it and
// never return errors; failures set the markers and later nodes short-circuit.
type State struct {
	Job Job

	// Populated by read_file.
	Title     string
	Text      string
	Symbol    string
	Market    string
	Language  string
	Authors   []string
	Keywords  []string
	WordCount int

	// Populated by the filter nodes.
	FilterMode string
	Decision   string
	Analysis   *analysis.Result

	// Terminal outcome.
	Failed      bool
	Err         string
	FinalStatus article.ContentStatus

	events []models.TraceEvent
}

func newState(job Job) *State {
	return &State{Job: job, Decision: DecisionKeep}
}

// fail marks the run failed with a terminal content status.
func (s *State) fail(status article.ContentStatus, err error) {
	s.Failed = true
	s.FinalStatus = status
	if err != nil {
		s.Err = err.Error()
	}
}

// addEvent buffers a trace event; events are persisted in one batch by
// update_db so a crashed run leaves no partial trace.
func (s *State) addEvent(node, status, errMsg string, start time.Time, metadata map[string]any) {
	s.events = append(s.events, models.TraceEvent{
		ArticleID:  s.Job.ArticleID,
		Layer:      models.TraceLayerLayer2,
		Node:       node,
		Status:     status,
		DurationMS: time.Since(start).Milliseconds(),
		Metadata:   metadata,
		Error:      errMsg,
		OccurredAt: time.Now().UTC(),
	})
}
