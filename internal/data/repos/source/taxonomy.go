package source

import (
	"context"

	"gorm.io/gorm"

	"github.com/damigrowth/migrator/internal/domain/legacy"
	"github.com/damigrowth/migrator/internal/platform/logger"
)

// TaxonomyLinkRepo issues one query per taxonomy kind for a whole batch of
// entity ids. The set of kinds is closed; table and column names are
// compile-time constants, never built from runtime input.
type TaxonomyLinkRepo interface {
	Skills(ctx context.Context, freelancerIDs []int) (map[int][]int, error)
	Tags(ctx context.Context, freelancerIDs []int) (map[int][]int, error)
	Industries(ctx context.Context, freelancerIDs []int) (map[int][]int, error)
	ContactMethods(ctx context.Context, freelancerIDs []int) (map[int][]int, error)
	PaymentMethods(ctx context.Context, freelancerIDs []int) (map[int][]int, error)
	SettlementMethods(ctx context.Context, freelancerIDs []int) (map[int][]int, error)
	// Categories and Subcategories are single-valued selections.
	Categories(ctx context.Context, freelancerIDs []int) (map[int]int, error)
	Subcategories(ctx context.Context, freelancerIDs []int) (map[int]int, error)

	ServiceTags(ctx context.Context, serviceIDs []int) (map[int][]int, error)
	ServiceCategories(ctx context.Context, serviceIDs []int) (map[int]int, error)
	ServiceSubcategories(ctx context.Context, serviceIDs []int) (map[int]int, error)
}

type taxonomyLinkRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewTaxonomyLinkRepo(db *gorm.DB, baseLog *logger.Logger) TaxonomyLinkRepo {
	return &taxonomyLinkRepo{db: db, log: baseLog.With("repo", "TaxonomyLinkRepo")}
}

// pair is the grouping unit for every link query.
type pair struct {
	EntityID int
	LinkedID int
}

func (r *taxonomyLinkRepo) multi(ctx context.Context, model any, sel string, entityCol string, ids []int) (map[int][]int, error) {
	out := make(map[int][]int, len(ids))
	if len(ids) == 0 {
		return out, nil
	}
	var rows []pair
	err := r.db.WithContext(ctx).
		Model(model).
		Select(sel).
		Where(entityCol+" IN ?", ids).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	for _, p := range rows {
		out[p.EntityID] = append(out[p.EntityID], p.LinkedID)
	}
	return out, nil
}

func (r *taxonomyLinkRepo) single(ctx context.Context, model any, sel string, entityCol string, ids []int) (map[int]int, error) {
	out := make(map[int]int, len(ids))
	if len(ids) == 0 {
		return out, nil
	}
	var rows []pair
	err := r.db.WithContext(ctx).
		Model(model).
		Select(sel).
		Where(entityCol+" IN ?", ids).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	for _, p := range rows {
		out[p.EntityID] = p.LinkedID
	}
	return out, nil
}

func (r *taxonomyLinkRepo) Skills(ctx context.Context, ids []int) (map[int][]int, error) {
	return r.multi(ctx, &legacy.FreelancerSkillLink{},
		"freelancer_id AS entity_id, skill_id AS linked_id", "freelancer_id", ids)
}

func (r *taxonomyLinkRepo) Tags(ctx context.Context, ids []int) (map[int][]int, error) {
	return r.multi(ctx, &legacy.FreelancerTagLink{},
		"freelancer_id AS entity_id, tag_id AS linked_id", "freelancer_id", ids)
}

func (r *taxonomyLinkRepo) Industries(ctx context.Context, ids []int) (map[int][]int, error) {
	return r.multi(ctx, &legacy.FreelancerIndustryLink{},
		"freelancer_id AS entity_id, industry_id AS linked_id", "freelancer_id", ids)
}

func (r *taxonomyLinkRepo) ContactMethods(ctx context.Context, ids []int) (map[int][]int, error) {
	return r.multi(ctx, &legacy.FreelancerContactMethodLink{},
		"freelancer_id AS entity_id, contact_method_id AS linked_id", "freelancer_id", ids)
}

func (r *taxonomyLinkRepo) PaymentMethods(ctx context.Context, ids []int) (map[int][]int, error) {
	return r.multi(ctx, &legacy.FreelancerPaymentMethodLink{},
		"freelancer_id AS entity_id, payment_method_id AS linked_id", "freelancer_id", ids)
}

func (r *taxonomyLinkRepo) SettlementMethods(ctx context.Context, ids []int) (map[int][]int, error) {
	return r.multi(ctx, &legacy.FreelancerSettlementMethodLink{},
		"freelancer_id AS entity_id, settlement_method_id AS linked_id", "freelancer_id", ids)
}

func (r *taxonomyLinkRepo) Categories(ctx context.Context, ids []int) (map[int]int, error) {
	return r.single(ctx, &legacy.FreelancerCategoryLink{},
		"freelancer_id AS entity_id, category_id AS linked_id", "freelancer_id", ids)
}

func (r *taxonomyLinkRepo) Subcategories(ctx context.Context, ids []int) (map[int]int, error) {
	return r.single(ctx, &legacy.FreelancerSubcategoryLink{},
		"freelancer_id AS entity_id, subcategory_id AS linked_id", "freelancer_id", ids)
}

func (r *taxonomyLinkRepo) ServiceTags(ctx context.Context, ids []int) (map[int][]int, error) {
	return r.multi(ctx, &legacy.ServiceTagLink{},
		"service_id AS entity_id, tag_id AS linked_id", "service_id", ids)
}

func (r *taxonomyLinkRepo) ServiceCategories(ctx context.Context, ids []int) (map[int]int, error) {
	return r.single(ctx, &legacy.ServiceCategoryLink{},
		"service_id AS entity_id, category_id AS linked_id", "service_id", ids)
}

func (r *taxonomyLinkRepo) ServiceSubcategories(ctx context.Context, ids []int) (map[int]int, error) {
	return r.single(ctx, &legacy.ServiceSubcategoryLink{},
		"service_id AS entity_id, subcategory_id AS linked_id", "service_id", ids)
}
