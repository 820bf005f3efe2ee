package migrate

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/damigrowth/migrator/internal/data/repos/source"
	"github.com/damigrowth/migrator/internal/domain/legacy"
	"github.com/damigrowth/migrator/internal/domain/target"
	"github.com/damigrowth/migrator/internal/platform/logger"
)

type serviceEnv struct {
	profiles *fakeProfiles
	services *fakeTargetServices
	deps     ServiceDeps
}

// newServiceEnv wires three legacy services: one with a migrated owner,
// one whose owner was never migrated, one with no owner link at all.
func newServiceEnv(t *testing.T) *serviceEnv {
	t.Helper()

	ownerProfile := &target.Profile{
		ID: uuid.New(), UserID: uuid.New(), LegacyID: 1, Type: target.ProfileFreelancer,
	}
	published := time.Now().UTC()

	env := &serviceEnv{
		profiles: newFakeProfiles(ownerProfile),
		services: newFakeTargetServices(),
	}
	env.deps = ServiceDeps{
		Services: &fakeSourceServices{
			rows: []*legacy.Service{
				{ID: 10, Title: "Logo design", PublishedAt: &published},
				{ID: 11, Title: "Unowned listing"},
				{ID: 12, Title: "Unlinked listing"},
			},
			links: map[int]int{10: 1, 11: 2},
		},
		Taxonomies:     &fakeTaxLinks{serviceTags: map[int][]int{10: {4}}},
		Media:          &fakeMedia{},
		Reviews:        &fakeReviews{service: map[int]source.StarBuckets{10: {0, 0, 0, 0, 2}}},
		TargetProfiles: env.profiles,
		TargetServices: env.services,
		TargetUsers:    newFakeUsers(),
		Tx:             &fakeTx{},
		Log:            logger.Nop(),
	}
	return env
}

func TestServiceRunner_Run(t *testing.T) {
	env := newServiceEnv(t)

	report, err := NewServiceRunner(env.deps, Options{}).Run(context.Background())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	if report.Created != 1 {
		t.Fatalf("created = %d: %v", report.Created, report.Errors)
	}
	// Service 11's owner was never migrated: a hard failure, never a
	// placeholder profile.
	if report.Failed != 1 {
		t.Fatalf("failed = %d, want 1", report.Failed)
	}
	if report.Skipped != 1 {
		t.Fatalf("skipped = %d, want 1 for the unlinked service", report.Skipped)
	}
	if int64(len(env.profiles.rows)) != 1 {
		t.Fatal("service pipeline must never create profiles")
	}

	row := env.services.rows[10]
	if row == nil {
		t.Fatal("service 10 not migrated")
	}
	if row.Status != "published" {
		t.Fatalf("status = %q, want published fallback from published_at", row.Status)
	}
	if row.Rating != 5.0 || row.ReviewCount != 2 {
		t.Fatalf("rating = (%v, %d), want (5, 2)", row.Rating, row.ReviewCount)
	}
	if string(row.Tags) != "[4]" {
		t.Fatalf("tags = %s", row.Tags)
	}
}

func TestServiceRunner_DraftFallback(t *testing.T) {
	env := newServiceEnv(t)
	src := env.deps.Services.(*fakeSourceServices)
	src.rows = []*legacy.Service{{ID: 10, Title: "No publish date"}}

	report, err := NewServiceRunner(env.deps, Options{}).Run(context.Background())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if report.Created != 1 {
		t.Fatalf("created = %d: %v", report.Created, report.Errors)
	}
	if got := env.services.rows[10].Status; got != "draft" {
		t.Fatalf("status = %q, want draft", got)
	}
}

func TestServiceRunner_Idempotent(t *testing.T) {
	env := newServiceEnv(t)

	if _, err := NewServiceRunner(env.deps, Options{}).Run(context.Background()); err != nil {
		t.Fatalf("first run: %v", err)
	}
	second, err := NewServiceRunner(env.deps, Options{}).Run(context.Background())
	if err != nil {
		t.Fatalf("second run: %v", err)
	}
	if second.Created != 0 {
		t.Fatalf("second run created %d, want 0", second.Created)
	}
}
