package target

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/damigrowth/migrator/internal/domain/target"
	"github.com/damigrowth/migrator/internal/platform/logger"
)

// TaxonomyKind names one migratable taxonomy table. The set is closed.
type TaxonomyKind string

const (
	KindSkills            TaxonomyKind = "skills"
	KindTags              TaxonomyKind = "tags"
	KindIndustries        TaxonomyKind = "industries"
	KindContactMethods    TaxonomyKind = "contact_methods"
	KindPaymentMethods    TaxonomyKind = "payment_methods"
	KindSettlementMethods TaxonomyKind = "settlement_methods"
	KindCategories        TaxonomyKind = "categories"
	KindSubcategories     TaxonomyKind = "subcategories"
)

// AllTaxonomyKinds is ordered parent-first so category upserts land before
// subcategories referencing them.
var AllTaxonomyKinds = []TaxonomyKind{
	KindSkills, KindTags, KindIndustries,
	KindContactMethods, KindPaymentMethods, KindSettlementMethods,
	KindCategories, KindSubcategories,
}

// TaxonomyRepo upserts taxonomy rows by their preserved legacy ids.
type TaxonomyRepo interface {
	UpsertSkills(ctx context.Context, tx *gorm.DB, rows []*target.Skill) error
	UpsertTags(ctx context.Context, tx *gorm.DB, rows []*target.Tag) error
	UpsertIndustries(ctx context.Context, tx *gorm.DB, rows []*target.Industry) error
	UpsertContactMethods(ctx context.Context, tx *gorm.DB, rows []*target.ContactMethod) error
	UpsertPaymentMethods(ctx context.Context, tx *gorm.DB, rows []*target.PaymentMethod) error
	UpsertSettlementMethods(ctx context.Context, tx *gorm.DB, rows []*target.SettlementMethod) error
	UpsertCategories(ctx context.Context, tx *gorm.DB, rows []*target.Category) error
	UpsertSubcategories(ctx context.Context, tx *gorm.DB, rows []*target.Subcategory) error

	Count(ctx context.Context, tx *gorm.DB, kind TaxonomyKind) (int64, error)
	DeleteAll(ctx context.Context, tx *gorm.DB, kind TaxonomyKind) (int64, error)
}

type taxonomyRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewTaxonomyRepo(db *gorm.DB, baseLog *logger.Logger) TaxonomyRepo {
	return &taxonomyRepo{db: db, log: baseLog.With("repo", "TaxonomyRepo")}
}

func (r *taxonomyRepo) conn(tx *gorm.DB) *gorm.DB {
	if tx != nil {
		return tx
	}
	return r.db
}

func modelFor(kind TaxonomyKind) any {
	switch kind {
	case KindSkills:
		return &target.Skill{}
	case KindTags:
		return &target.Tag{}
	case KindIndustries:
		return &target.Industry{}
	case KindContactMethods:
		return &target.ContactMethod{}
	case KindPaymentMethods:
		return &target.PaymentMethod{}
	case KindSettlementMethods:
		return &target.SettlementMethod{}
	case KindCategories:
		return &target.Category{}
	case KindSubcategories:
		return &target.Subcategory{}
	default:
		return nil
	}
}

func (r *taxonomyRepo) upsert(ctx context.Context, tx *gorm.DB, rows any, updateCols []string) error {
	return r.conn(tx).WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			DoUpdates: clause.AssignmentColumns(updateCols),
		}).
		Create(rows).Error
}

var labelSlug = []string{"label", "slug"}

func (r *taxonomyRepo) UpsertSkills(ctx context.Context, tx *gorm.DB, rows []*target.Skill) error {
	if len(rows) == 0 {
		return nil
	}
	return r.upsert(ctx, tx, rows, labelSlug)
}

func (r *taxonomyRepo) UpsertTags(ctx context.Context, tx *gorm.DB, rows []*target.Tag) error {
	if len(rows) == 0 {
		return nil
	}
	return r.upsert(ctx, tx, rows, labelSlug)
}

func (r *taxonomyRepo) UpsertIndustries(ctx context.Context, tx *gorm.DB, rows []*target.Industry) error {
	if len(rows) == 0 {
		return nil
	}
	return r.upsert(ctx, tx, rows, labelSlug)
}

func (r *taxonomyRepo) UpsertContactMethods(ctx context.Context, tx *gorm.DB, rows []*target.ContactMethod) error {
	if len(rows) == 0 {
		return nil
	}
	return r.upsert(ctx, tx, rows, labelSlug)
}

func (r *taxonomyRepo) UpsertPaymentMethods(ctx context.Context, tx *gorm.DB, rows []*target.PaymentMethod) error {
	if len(rows) == 0 {
		return nil
	}
	return r.upsert(ctx, tx, rows, labelSlug)
}

func (r *taxonomyRepo) UpsertSettlementMethods(ctx context.Context, tx *gorm.DB, rows []*target.SettlementMethod) error {
	if len(rows) == 0 {
		return nil
	}
	return r.upsert(ctx, tx, rows, labelSlug)
}

func (r *taxonomyRepo) UpsertCategories(ctx context.Context, tx *gorm.DB, rows []*target.Category) error {
	if len(rows) == 0 {
		return nil
	}
	return r.upsert(ctx, tx, rows, labelSlug)
}

func (r *taxonomyRepo) UpsertSubcategories(ctx context.Context, tx *gorm.DB, rows []*target.Subcategory) error {
	if len(rows) == 0 {
		return nil
	}
	return r.upsert(ctx, tx, rows, []string{"label", "slug", "category_id"})
}

func (r *taxonomyRepo) Count(ctx context.Context, tx *gorm.DB, kind TaxonomyKind) (int64, error) {
	model := modelFor(kind)
	if model == nil {
		return 0, nil
	}
	var n int64
	err := r.conn(tx).WithContext(ctx).Model(model).Count(&n).Error
	return n, err
}

func (r *taxonomyRepo) DeleteAll(ctx context.Context, tx *gorm.DB, kind TaxonomyKind) (int64, error) {
	model := modelFor(kind)
	if model == nil {
		return 0, nil
	}
	res := r.conn(tx).WithContext(ctx).
		Where("1 = 1").
		Delete(model)
	return res.RowsAffected, res.Error
}
