package migrate

import (
	"context"
	"testing"

	"github.com/google/uuid"

	"github.com/damigrowth/migrator/internal/domain/target"
	"github.com/damigrowth/migrator/internal/platform/logger"
)

func TestRollbackProfiles(t *testing.T) {
	pro := &target.User{ID: uuid.New(), Email: "pro@example.com", Role: target.RolePro}
	simple := &target.User{ID: uuid.New(), Email: "simple@example.com", Role: target.RoleSimple}
	users := newFakeUsers(pro, simple)
	profiles := newFakeProfiles(
		&target.Profile{ID: uuid.New(), UserID: pro.ID, LegacyID: 1, Type: target.ProfileFreelancer},
	)

	rb := NewRollbacker(&fakeTx{}, users, profiles, newFakeTargetServices(), newFakeTaxRepo(), logger.Nop())
	deletedProfiles, resetUsers, err := rb.RollbackProfiles(context.Background())
	if err != nil {
		t.Fatalf("RollbackProfiles: %v", err)
	}
	if deletedProfiles != 1 || resetUsers != 1 {
		t.Fatalf("got (%d, %d), want (1, 1)", deletedProfiles, resetUsers)
	}
	if pro.Role != target.RoleSimple {
		t.Fatalf("role = %q, want reset to simple", pro.Role)
	}
	if n, _ := profiles.Count(context.Background(), nil); n != 0 {
		t.Fatalf("profiles remaining: %d", n)
	}
}

func TestRollbackServices(t *testing.T) {
	services := newFakeTargetServices(
		&target.Service{ID: uuid.New(), ProfileID: uuid.New(), LegacyID: 10, Title: "Logo"},
	)
	rb := NewRollbacker(&fakeTx{}, newFakeUsers(), newFakeProfiles(), services, newFakeTaxRepo(), logger.Nop())

	deleted, err := rb.RollbackServices(context.Background())
	if err != nil {
		t.Fatalf("RollbackServices: %v", err)
	}
	if deleted != 1 {
		t.Fatalf("deleted = %d, want 1", deleted)
	}
}

func TestRollbackTaxonomies(t *testing.T) {
	repo := newFakeTaxRepo()
	repo.skills[5] = &target.Skill{ID: 5, Label: "Go", Slug: "go"}
	repo.categories[1] = &target.Category{ID: 1, Label: "Development", Slug: "development"}
	subCat := 1
	repo.subcategories[2] = &target.Subcategory{ID: 2, Label: "Backend", Slug: "backend", CategoryID: &subCat}

	rb := NewRollbacker(&fakeTx{}, newFakeUsers(), newFakeProfiles(), newFakeTargetServices(), repo, logger.Nop())
	deleted, err := rb.RollbackTaxonomies(context.Background())
	if err != nil {
		t.Fatalf("RollbackTaxonomies: %v", err)
	}
	if deleted != 3 {
		t.Fatalf("deleted = %d, want 3", deleted)
	}
	if len(repo.subcategories) != 0 || len(repo.categories) != 0 {
		t.Fatal("taxonomy rows left behind")
	}
}
