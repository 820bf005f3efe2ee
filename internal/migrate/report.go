package migrate

import (
	"encoding/json"
	"fmt"
	"io"
	"time"
)

// Outcome is the per-entity result recorded by the run controller.
type Outcome string

const (
	OutcomeCreated Outcome = "created"
	OutcomeUpdated Outcome = "updated"
	OutcomeSkipped Outcome = "skipped"
	OutcomeFailed  Outcome = "failed"
)

// Report is the run summary. Its JSON shape is the contract consumed by
// external report tooling; field names must stay stable.
type Report struct {
	Pipeline   string    `json:"pipeline"`
	StartedAt  time.Time `json:"started_at"`
	FinishedAt time.Time `json:"finished_at"`

	Total          int `json:"total"`
	Matched        int `json:"matched"`
	UnmatchedUsers int `json:"unmatched_users"`
	EmailMatched   int `json:"email_matched"`
	Created        int `json:"created"`
	Updated        int `json:"updated"`
	Skipped        int `json:"skipped"`
	Failed         int `json:"failed"`

	Warnings []string `json:"warnings"`
	Errors   []string `json:"errors"`
}

func NewReport(pipeline string) *Report {
	return &Report{
		Pipeline:  pipeline,
		StartedAt: time.Now().UTC(),
		Warnings:  []string{},
		Errors:    []string{},
	}
}

// Record accumulates one entity outcome. Failures carry the entity key so
// a re-run can be scoped to just the failed subset.
func (r *Report) Record(entityKey string, outcome Outcome, detail string) {
	r.Total++
	switch outcome {
	case OutcomeCreated:
		r.Created++
	case OutcomeUpdated:
		r.Updated++
	case OutcomeSkipped:
		r.Skipped++
		if detail != "" {
			r.Warnings = append(r.Warnings, fmt.Sprintf("%s: skipped: %s", entityKey, detail))
		}
	case OutcomeFailed:
		r.Failed++
		r.Errors = append(r.Errors, fmt.Sprintf("%s: %s", entityKey, detail))
	}
}

func (r *Report) Warn(entityKey, msg string) {
	r.Warnings = append(r.Warnings, fmt.Sprintf("%s: %s", entityKey, msg))
}

func (r *Report) Finish() {
	r.FinishedAt = time.Now().UTC()
}

// ExitCode is 0 only for a run with zero recorded errors.
func (r *Report) ExitCode() int {
	if r.Failed > 0 || len(r.Errors) > 0 {
		return 1
	}
	return 0
}

func (r *Report) Print(w io.Writer) {
	fmt.Fprintf(w, "\n=== %s migration summary ===\n", r.Pipeline)
	fmt.Fprintf(w, "total:           %d\n", r.Total)
	fmt.Fprintf(w, "matched:         %d\n", r.Matched)
	fmt.Fprintf(w, "unmatched users: %d\n", r.UnmatchedUsers)
	fmt.Fprintf(w, "email matched:   %d\n", r.EmailMatched)
	fmt.Fprintf(w, "created:         %d\n", r.Created)
	fmt.Fprintf(w, "updated:         %d\n", r.Updated)
	fmt.Fprintf(w, "skipped:         %d\n", r.Skipped)
	fmt.Fprintf(w, "failed:          %d\n", r.Failed)
	for _, msg := range r.Warnings {
		fmt.Fprintf(w, "warning: %s\n", msg)
	}
	for _, msg := range r.Errors {
		fmt.Fprintf(w, "error: %s\n", msg)
	}
}

// PrintJSON emits the machine-readable form of the same summary.
func (r *Report) PrintJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(r)
}
