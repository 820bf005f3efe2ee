package source

import (
	"context"

	"gorm.io/gorm"

	"github.com/damigrowth/migrator/internal/domain/legacy"
	"github.com/damigrowth/migrator/internal/platform/logger"
)

// TaxonomyTableRepo reads whole legacy taxonomy tables for the taxonomy
// migration script.
type TaxonomyTableRepo interface {
	Skills(ctx context.Context) ([]*legacy.Skill, error)
	Tags(ctx context.Context) ([]*legacy.Tag, error)
	Industries(ctx context.Context) ([]*legacy.Industry, error)
	ContactMethods(ctx context.Context) ([]*legacy.ContactMethod, error)
	PaymentMethods(ctx context.Context) ([]*legacy.PaymentMethod, error)
	SettlementMethods(ctx context.Context) ([]*legacy.SettlementMethod, error)
	Categories(ctx context.Context) ([]*legacy.Category, error)
	Subcategories(ctx context.Context) ([]*legacy.Subcategory, error)
}

type taxonomyTableRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewTaxonomyTableRepo(db *gorm.DB, baseLog *logger.Logger) TaxonomyTableRepo {
	return &taxonomyTableRepo{db: db, log: baseLog.With("repo", "TaxonomyTableRepo")}
}

func (r *taxonomyTableRepo) Skills(ctx context.Context) ([]*legacy.Skill, error) {
	var rows []*legacy.Skill
	return rows, r.db.WithContext(ctx).Order("id asc").Find(&rows).Error
}

func (r *taxonomyTableRepo) Tags(ctx context.Context) ([]*legacy.Tag, error) {
	var rows []*legacy.Tag
	return rows, r.db.WithContext(ctx).Order("id asc").Find(&rows).Error
}

func (r *taxonomyTableRepo) Industries(ctx context.Context) ([]*legacy.Industry, error) {
	var rows []*legacy.Industry
	return rows, r.db.WithContext(ctx).Order("id asc").Find(&rows).Error
}

func (r *taxonomyTableRepo) ContactMethods(ctx context.Context) ([]*legacy.ContactMethod, error) {
	var rows []*legacy.ContactMethod
	return rows, r.db.WithContext(ctx).Order("id asc").Find(&rows).Error
}

func (r *taxonomyTableRepo) PaymentMethods(ctx context.Context) ([]*legacy.PaymentMethod, error) {
	var rows []*legacy.PaymentMethod
	return rows, r.db.WithContext(ctx).Order("id asc").Find(&rows).Error
}

func (r *taxonomyTableRepo) SettlementMethods(ctx context.Context) ([]*legacy.SettlementMethod, error) {
	var rows []*legacy.SettlementMethod
	return rows, r.db.WithContext(ctx).Order("id asc").Find(&rows).Error
}

func (r *taxonomyTableRepo) Categories(ctx context.Context) ([]*legacy.Category, error) {
	var rows []*legacy.Category
	return rows, r.db.WithContext(ctx).Order("id asc").Find(&rows).Error
}

func (r *taxonomyTableRepo) Subcategories(ctx context.Context) ([]*legacy.Subcategory, error) {
	var rows []*legacy.Subcategory
	return rows, r.db.WithContext(ctx).Order("id asc").Find(&rows).Error
}
