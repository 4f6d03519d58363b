package dispatcher

import (
	"sync"
	"time"
)

// Progress is the live stage indicator during a run.
type Progress struct {
	Stage     string    `json:"stage"`
	Message   string    `json:"message"`
	Percent   int       `json:"percent"`
	UpdatedAt time.Time `json:"updated_at"`
}

// RunSummary records the last completed run.
type RunSummary struct {
	FinishedAt time.Time      `json:"finished_at"`
	Stats      map[string]int `json:"stats"`
}

// MonitorStatus is the admin-facing snapshot.
type MonitorStatus struct {
	Status    string      `json:"status"` // idle | running
	Progress  *Progress   `json:"progress,omitempty"`
	LastRun   *RunSummary `json:"last_run,omitempty"`
	NextRunAt *time.Time  `json:"next_run_at,omitempty"`
}

// statusTracker guards the monitor state shared between the run loop and the
// admin API.
type statusTracker struct {
	mu       sync.Mutex
	running  bool
	progress *Progress
	lastRun  *RunSummary
	nextRun  *time.Time
}

func newStatusTracker() *statusTracker {
	return &statusTracker{}
}

// begin marks a run started; returns false if one is already in flight.
func (t *statusTracker) begin() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.running {
		return false
	}
	t.running = true
	t.progress = nil
	return true
}

func (t *statusTracker) setProgress(stage, message string, percent int) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.progress = &Progress{
		Stage:     stage,
		Message:   message,
		Percent:   percent,
		UpdatedAt: time.Now().UTC(),
	}
}

func (t *statusTracker) finish(at time.Time, stats map[string]int) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.running = false
	t.progress = nil
	t.lastRun = &RunSummary{FinishedAt: at.UTC(), Stats: stats}
}

func (t *statusTracker) setNextRun(at time.Time) {
	t.mu.Lock()
	defer t.mu.Unlock()
	utc := at.UTC()
	t.nextRun = &utc
}

func (t *statusTracker) snapshot() MonitorStatus {
	t.mu.Lock()
	defer t.mu.Unlock()

	s := MonitorStatus{Status: "idle", NextRunAt: t.nextRun, LastRun: t.lastRun}
	if t.running {
		s.Status = "running"
		s.Progress = t.progress
	}
	return s
}
