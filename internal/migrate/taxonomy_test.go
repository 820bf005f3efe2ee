package migrate

import (
	"context"
	"testing"

	"gorm.io/gorm"

	targetrepo "github.com/damigrowth/migrator/internal/data/repos/target"
	"github.com/damigrowth/migrator/internal/domain/legacy"
	"github.com/damigrowth/migrator/internal/domain/target"
	"github.com/damigrowth/migrator/internal/platform/logger"
)

type fakeTables struct {
	skills        []*legacy.Skill
	tags          []*legacy.Tag
	categories    []*legacy.Category
	subcategories []*legacy.Subcategory
}

func (f *fakeTables) Skills(ctx context.Context) ([]*legacy.Skill, error) { return f.skills, nil }
func (f *fakeTables) Tags(ctx context.Context) ([]*legacy.Tag, error)     { return f.tags, nil }
func (f *fakeTables) Industries(ctx context.Context) ([]*legacy.Industry, error) {
	return nil, nil
}
func (f *fakeTables) ContactMethods(ctx context.Context) ([]*legacy.ContactMethod, error) {
	return nil, nil
}
func (f *fakeTables) PaymentMethods(ctx context.Context) ([]*legacy.PaymentMethod, error) {
	return nil, nil
}
func (f *fakeTables) SettlementMethods(ctx context.Context) ([]*legacy.SettlementMethod, error) {
	return nil, nil
}
func (f *fakeTables) Categories(ctx context.Context) ([]*legacy.Category, error) {
	return f.categories, nil
}
func (f *fakeTables) Subcategories(ctx context.Context) ([]*legacy.Subcategory, error) {
	return f.subcategories, nil
}

type fakeTaxRepo struct {
	skills        map[int]*target.Skill
	tags          map[int]*target.Tag
	categories    map[int]*target.Category
	subcategories map[int]*target.Subcategory
	upserts       int
}

func newFakeTaxRepo() *fakeTaxRepo {
	return &fakeTaxRepo{
		skills:        map[int]*target.Skill{},
		tags:          map[int]*target.Tag{},
		categories:    map[int]*target.Category{},
		subcategories: map[int]*target.Subcategory{},
	}
}

func (f *fakeTaxRepo) UpsertSkills(ctx context.Context, tx *gorm.DB, rows []*target.Skill) error {
	f.upserts++
	for _, r := range rows {
		f.skills[r.ID] = r
	}
	return nil
}

func (f *fakeTaxRepo) UpsertTags(ctx context.Context, tx *gorm.DB, rows []*target.Tag) error {
	f.upserts++
	for _, r := range rows {
		f.tags[r.ID] = r
	}
	return nil
}

func (f *fakeTaxRepo) UpsertIndustries(ctx context.Context, tx *gorm.DB, rows []*target.Industry) error {
	f.upserts++
	return nil
}

func (f *fakeTaxRepo) UpsertContactMethods(ctx context.Context, tx *gorm.DB, rows []*target.ContactMethod) error {
	f.upserts++
	return nil
}

func (f *fakeTaxRepo) UpsertPaymentMethods(ctx context.Context, tx *gorm.DB, rows []*target.PaymentMethod) error {
	f.upserts++
	return nil
}

func (f *fakeTaxRepo) UpsertSettlementMethods(ctx context.Context, tx *gorm.DB, rows []*target.SettlementMethod) error {
	f.upserts++
	return nil
}

func (f *fakeTaxRepo) UpsertCategories(ctx context.Context, tx *gorm.DB, rows []*target.Category) error {
	f.upserts++
	for _, r := range rows {
		f.categories[r.ID] = r
	}
	return nil
}

func (f *fakeTaxRepo) UpsertSubcategories(ctx context.Context, tx *gorm.DB, rows []*target.Subcategory) error {
	f.upserts++
	for _, r := range rows {
		f.subcategories[r.ID] = r
	}
	return nil
}

func (f *fakeTaxRepo) Count(ctx context.Context, tx *gorm.DB, kind targetrepo.TaxonomyKind) (int64, error) {
	switch kind {
	case targetrepo.KindSkills:
		return int64(len(f.skills)), nil
	case targetrepo.KindTags:
		return int64(len(f.tags)), nil
	case targetrepo.KindCategories:
		return int64(len(f.categories)), nil
	case targetrepo.KindSubcategories:
		return int64(len(f.subcategories)), nil
	}
	return 0, nil
}

func (f *fakeTaxRepo) DeleteAll(ctx context.Context, tx *gorm.DB, kind targetrepo.TaxonomyKind) (int64, error) {
	switch kind {
	case targetrepo.KindSkills:
		n := int64(len(f.skills))
		f.skills = map[int]*target.Skill{}
		return n, nil
	case targetrepo.KindTags:
		n := int64(len(f.tags))
		f.tags = map[int]*target.Tag{}
		return n, nil
	case targetrepo.KindCategories:
		n := int64(len(f.categories))
		f.categories = map[int]*target.Category{}
		return n, nil
	case targetrepo.KindSubcategories:
		n := int64(len(f.subcategories))
		f.subcategories = map[int]*target.Subcategory{}
		return n, nil
	}
	return 0, nil
}

func newTaxonomyDeps(tables *fakeTables, repo *fakeTaxRepo) TaxonomyDeps {
	return TaxonomyDeps{
		Tables: tables,
		Target: repo,
		Tx:     &fakeTx{},
		Log:    logger.Nop(),
	}
}

func TestTaxonomyRunner_Run(t *testing.T) {
	catID := 1
	tables := &fakeTables{
		skills:        []*legacy.Skill{{ID: 5, Label: "Go", Slug: "go"}},
		categories:    []*legacy.Category{{ID: 1, Label: "Development", Slug: "development"}},
		subcategories: []*legacy.Subcategory{{ID: 2, Label: "Backend", Slug: "backend", CategoryID: &catID}},
	}
	repo := newFakeTaxRepo()

	report, err := NewTaxonomyRunner(newTaxonomyDeps(tables, repo), false).Run(context.Background())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if report.Failed != 0 {
		t.Fatalf("failed: %v", report.Errors)
	}
	// One record per kind, all created on an empty target.
	if report.Total != len(targetrepo.AllTaxonomyKinds) || report.Created != len(targetrepo.AllTaxonomyKinds) {
		t.Fatalf("total/created = %d/%d", report.Total, report.Created)
	}

	// Legacy ids preserved.
	if repo.skills[5] == nil || repo.skills[5].Slug != "go" {
		t.Fatalf("skill not upserted: %+v", repo.skills)
	}
	sub := repo.subcategories[2]
	if sub == nil || sub.CategoryID == nil || *sub.CategoryID != 1 {
		t.Fatalf("subcategory parent lost: %+v", sub)
	}
}

func TestTaxonomyRunner_RerunReportsUpdated(t *testing.T) {
	tables := &fakeTables{skills: []*legacy.Skill{{ID: 5, Label: "Go", Slug: "go"}}}
	repo := newFakeTaxRepo()
	deps := newTaxonomyDeps(tables, repo)

	if _, err := NewTaxonomyRunner(deps, false).Run(context.Background()); err != nil {
		t.Fatalf("first run: %v", err)
	}
	second, err := NewTaxonomyRunner(deps, false).Run(context.Background())
	if err != nil {
		t.Fatalf("second run: %v", err)
	}
	// Skills already present: re-run upserts in place and reports updated.
	if second.Updated == 0 {
		t.Fatalf("updated = %d, want skills counted as updated", second.Updated)
	}
	if len(repo.skills) != 1 {
		t.Fatalf("skills = %d rows, want 1 after idempotent re-run", len(repo.skills))
	}
}

func TestTaxonomyRunner_Preview(t *testing.T) {
	tables := &fakeTables{skills: []*legacy.Skill{{ID: 5, Label: "Go", Slug: "go"}}}
	repo := newFakeTaxRepo()

	report, err := NewTaxonomyRunner(newTaxonomyDeps(tables, repo), true).Run(context.Background())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if repo.upserts != 0 {
		t.Fatalf("preview wrote %d upserts", repo.upserts)
	}
	if report.Skipped != len(targetrepo.AllTaxonomyKinds) {
		t.Fatalf("skipped = %d, want every kind", report.Skipped)
	}
}
