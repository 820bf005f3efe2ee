package migrate

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/damigrowth/migrator/internal/data/repos/source"
	targetrepo "github.com/damigrowth/migrator/internal/data/repos/target"
	"github.com/damigrowth/migrator/internal/domain/target"
	"github.com/damigrowth/migrator/internal/platform/logger"
)

type TaxonomyDeps struct {
	Tables source.TaxonomyTableRepo
	Target targetrepo.TaxonomyRepo
	Tx     TxRunner
	Log    *logger.Logger
}

// TaxonomyRunner copies the closed set of taxonomy tables, preserving
// legacy ids. With Preview set it only reports what would change.
type TaxonomyRunner struct {
	deps    TaxonomyDeps
	preview bool
	log     *logger.Logger
}

func NewTaxonomyRunner(deps TaxonomyDeps, preview bool) *TaxonomyRunner {
	return &TaxonomyRunner{
		deps:    deps,
		preview: preview,
		log:     deps.Log.With("pipeline", "taxonomies"),
	}
}

func (r *TaxonomyRunner) Run(ctx context.Context) (*Report, error) {
	report := NewReport("taxonomies")

	for _, kind := range targetrepo.AllTaxonomyKinds {
		if err := r.runKind(ctx, report, kind); err != nil {
			if IsConnectivity(err) {
				report.Finish()
				return report, fmt.Errorf("taxonomy %s: %w", kind, err)
			}
			report.Record(string(kind), OutcomeFailed, err.Error())
			continue
		}
	}

	report.Finish()
	return report, nil
}

func (r *TaxonomyRunner) runKind(ctx context.Context, report *Report, kind targetrepo.TaxonomyKind) error {
	incoming, upsert, err := r.loadKind(ctx, kind)
	if err != nil {
		return err
	}

	existing, err := r.deps.Target.Count(ctx, nil, kind)
	if err != nil {
		return err
	}

	if r.preview {
		report.Record(string(kind), OutcomeSkipped,
			fmt.Sprintf("preview: %d legacy rows, %d already in target", incoming, existing))
		r.log.Info("preview", "kind", string(kind), "legacy", incoming, "existing", existing)
		return nil
	}

	if err := r.deps.Tx.InTx(ctx, upsert); err != nil {
		return err
	}
	if existing == 0 {
		report.Record(string(kind), OutcomeCreated, "")
	} else {
		report.Record(string(kind), OutcomeUpdated, "")
	}
	r.log.Info("migrated taxonomy", "kind", string(kind), "rows", incoming)
	return nil
}

// loadKind reads one legacy table and returns its row count plus the
// closure that upserts the mapped rows inside a transaction.
func (r *TaxonomyRunner) loadKind(ctx context.Context, kind targetrepo.TaxonomyKind) (int, func(tx *gorm.DB) error, error) {
	switch kind {
	case targetrepo.KindSkills:
		rows, err := r.deps.Tables.Skills(ctx)
		if err != nil {
			return 0, nil, err
		}
		mapped := make([]*target.Skill, 0, len(rows))
		for _, row := range rows {
			mapped = append(mapped, &target.Skill{ID: row.ID, Label: row.Label, Slug: row.Slug})
		}
		return len(mapped), func(tx *gorm.DB) error {
			return r.deps.Target.UpsertSkills(ctx, tx, mapped)
		}, nil
	case targetrepo.KindTags:
		rows, err := r.deps.Tables.Tags(ctx)
		if err != nil {
			return 0, nil, err
		}
		mapped := make([]*target.Tag, 0, len(rows))
		for _, row := range rows {
			mapped = append(mapped, &target.Tag{ID: row.ID, Label: row.Label, Slug: row.Slug})
		}
		return len(mapped), func(tx *gorm.DB) error {
			return r.deps.Target.UpsertTags(ctx, tx, mapped)
		}, nil
	case targetrepo.KindIndustries:
		rows, err := r.deps.Tables.Industries(ctx)
		if err != nil {
			return 0, nil, err
		}
		mapped := make([]*target.Industry, 0, len(rows))
		for _, row := range rows {
			mapped = append(mapped, &target.Industry{ID: row.ID, Label: row.Label, Slug: row.Slug})
		}
		return len(mapped), func(tx *gorm.DB) error {
			return r.deps.Target.UpsertIndustries(ctx, tx, mapped)
		}, nil
	case targetrepo.KindContactMethods:
		rows, err := r.deps.Tables.ContactMethods(ctx)
		if err != nil {
			return 0, nil, err
		}
		mapped := make([]*target.ContactMethod, 0, len(rows))
		for _, row := range rows {
			mapped = append(mapped, &target.ContactMethod{ID: row.ID, Label: row.Label, Slug: row.Slug})
		}
		return len(mapped), func(tx *gorm.DB) error {
			return r.deps.Target.UpsertContactMethods(ctx, tx, mapped)
		}, nil
	case targetrepo.KindPaymentMethods:
		rows, err := r.deps.Tables.PaymentMethods(ctx)
		if err != nil {
			return 0, nil, err
		}
		mapped := make([]*target.PaymentMethod, 0, len(rows))
		for _, row := range rows {
			mapped = append(mapped, &target.PaymentMethod{ID: row.ID, Label: row.Label, Slug: row.Slug})
		}
		return len(mapped), func(tx *gorm.DB) error {
			return r.deps.Target.UpsertPaymentMethods(ctx, tx, mapped)
		}, nil
	case targetrepo.KindSettlementMethods:
		rows, err := r.deps.Tables.SettlementMethods(ctx)
		if err != nil {
			return 0, nil, err
		}
		mapped := make([]*target.SettlementMethod, 0, len(rows))
		for _, row := range rows {
			mapped = append(mapped, &target.SettlementMethod{ID: row.ID, Label: row.Label, Slug: row.Slug})
		}
		return len(mapped), func(tx *gorm.DB) error {
			return r.deps.Target.UpsertSettlementMethods(ctx, tx, mapped)
		}, nil
	case targetrepo.KindCategories:
		rows, err := r.deps.Tables.Categories(ctx)
		if err != nil {
			return 0, nil, err
		}
		mapped := make([]*target.Category, 0, len(rows))
		for _, row := range rows {
			mapped = append(mapped, &target.Category{ID: row.ID, Label: row.Label, Slug: row.Slug})
		}
		return len(mapped), func(tx *gorm.DB) error {
			return r.deps.Target.UpsertCategories(ctx, tx, mapped)
		}, nil
	case targetrepo.KindSubcategories:
		rows, err := r.deps.Tables.Subcategories(ctx)
		if err != nil {
			return 0, nil, err
		}
		mapped := make([]*target.Subcategory, 0, len(rows))
		for _, row := range rows {
			mapped = append(mapped, &target.Subcategory{ID: row.ID, Label: row.Label, Slug: row.Slug, CategoryID: row.CategoryID})
		}
		return len(mapped), func(tx *gorm.DB) error {
			return r.deps.Target.UpsertSubcategories(ctx, tx, mapped)
		}, nil
	default:
		return 0, nil, fmt.Errorf("unknown taxonomy kind %q", kind)
	}
}
