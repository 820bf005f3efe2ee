package migrate

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

func TestReport_RecordAndExitCode(t *testing.T) {
	r := NewReport("profiles")
	r.Record("freelancer:1", OutcomeCreated, "")
	r.Record("freelancer:2", OutcomeUpdated, "")
	r.Record("freelancer:3", OutcomeSkipped, "already migrated")
	if r.Total != 3 || r.Created != 1 || r.Updated != 1 || r.Skipped != 1 {
		t.Fatalf("tallies wrong: %+v", r)
	}
	if r.ExitCode() != 0 {
		t.Fatalf("exit = %d, want 0 with no errors", r.ExitCode())
	}

	r.Record("freelancer:4", OutcomeFailed, "duplicate key")
	if r.Failed != 1 || len(r.Errors) != 1 {
		t.Fatalf("failure not recorded: %+v", r)
	}
	if !strings.Contains(r.Errors[0], "freelancer:4") {
		t.Fatalf("error missing entity key: %q", r.Errors[0])
	}
	if r.ExitCode() != 1 {
		t.Fatalf("exit = %d, want 1 after a failure", r.ExitCode())
	}
}

func TestReport_JSONContract(t *testing.T) {
	r := NewReport("services")
	r.Record("service:1", OutcomeCreated, "")
	r.Finish()

	var buf bytes.Buffer
	if err := r.PrintJSON(&buf); err != nil {
		t.Fatalf("PrintJSON: %v", err)
	}

	var decoded map[string]any
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	for _, key := range []string{
		"pipeline", "started_at", "finished_at",
		"total", "matched", "unmatched_users", "email_matched",
		"created", "updated", "skipped", "failed",
		"warnings", "errors",
	} {
		if _, ok := decoded[key]; !ok {
			t.Fatalf("report JSON missing %q", key)
		}
	}
	// Empty lists serialize as [], not null.
	if decoded["warnings"] == nil || decoded["errors"] == nil {
		t.Fatal("warnings/errors must never be null")
	}
}
