package source

import (
	"context"
	"sort"

	"gorm.io/gorm"

	"github.com/damigrowth/migrator/internal/domain/legacy"
	"github.com/damigrowth/migrator/internal/platform/logger"
)

// ComponentRepo fetches polymorphic component rows for whole batches of
// entity ids. One query per typed table, keyed by component ids collected
// from the junction.
type ComponentRepo interface {
	Links(ctx context.Context, entityIDs []int) ([]*legacy.ComponentLink, error)
	Coverages(ctx context.Context, componentIDs []int) (map[int]*legacy.Coverage, error)
	// CoverageCounties and CoverageAreas return ordered id lists keyed by
	// coverage component id.
	CoverageCounties(ctx context.Context, coverageIDs []int) (map[int][]int, error)
	CoverageAreas(ctx context.Context, coverageIDs []int) (map[int][]int, error)
	Visibilities(ctx context.Context, componentIDs []int) (map[int]*legacy.Visibility, error)
	Billings(ctx context.Context, componentIDs []int) (map[int]*legacy.Billing, error)
	SocialSingles(ctx context.Context, componentIDs []int) (map[int]*legacy.SocialSingle, error)
}

type componentRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewComponentRepo(db *gorm.DB, baseLog *logger.Logger) ComponentRepo {
	return &componentRepo{db: db, log: baseLog.With("repo", "ComponentRepo")}
}

func (r *componentRepo) Links(ctx context.Context, entityIDs []int) ([]*legacy.ComponentLink, error) {
	var rows []*legacy.ComponentLink
	if len(entityIDs) == 0 {
		return rows, nil
	}
	err := r.db.WithContext(ctx).
		Where("entity_id IN ?", entityIDs).
		Order("entity_id asc, ord asc").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *componentRepo) Coverages(ctx context.Context, componentIDs []int) (map[int]*legacy.Coverage, error) {
	out := make(map[int]*legacy.Coverage, len(componentIDs))
	if len(componentIDs) == 0 {
		return out, nil
	}
	var rows []*legacy.Coverage
	if err := r.db.WithContext(ctx).Where("id IN ?", componentIDs).Find(&rows).Error; err != nil {
		return nil, err
	}
	for _, row := range rows {
		out[row.ID] = row
	}
	return out, nil
}

func (r *componentRepo) CoverageCounties(ctx context.Context, coverageIDs []int) (map[int][]int, error) {
	out := make(map[int][]int, len(coverageIDs))
	if len(coverageIDs) == 0 {
		return out, nil
	}
	var rows []legacy.CoverageCountyLink
	err := r.db.WithContext(ctx).
		Where("coverage_id IN ?", coverageIDs).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	sort.SliceStable(rows, func(i, j int) bool { return rows[i].Order < rows[j].Order })
	for _, row := range rows {
		out[row.CoverageID] = append(out[row.CoverageID], row.CountyID)
	}
	return out, nil
}

func (r *componentRepo) CoverageAreas(ctx context.Context, coverageIDs []int) (map[int][]int, error) {
	out := make(map[int][]int, len(coverageIDs))
	if len(coverageIDs) == 0 {
		return out, nil
	}
	var rows []legacy.CoverageAreaLink
	err := r.db.WithContext(ctx).
		Where("coverage_id IN ?", coverageIDs).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	sort.SliceStable(rows, func(i, j int) bool { return rows[i].Order < rows[j].Order })
	for _, row := range rows {
		out[row.CoverageID] = append(out[row.CoverageID], row.AreaID)
	}
	return out, nil
}

func (r *componentRepo) Visibilities(ctx context.Context, componentIDs []int) (map[int]*legacy.Visibility, error) {
	out := make(map[int]*legacy.Visibility, len(componentIDs))
	if len(componentIDs) == 0 {
		return out, nil
	}
	var rows []*legacy.Visibility
	if err := r.db.WithContext(ctx).Where("id IN ?", componentIDs).Find(&rows).Error; err != nil {
		return nil, err
	}
	for _, row := range rows {
		out[row.ID] = row
	}
	return out, nil
}

func (r *componentRepo) Billings(ctx context.Context, componentIDs []int) (map[int]*legacy.Billing, error) {
	out := make(map[int]*legacy.Billing, len(componentIDs))
	if len(componentIDs) == 0 {
		return out, nil
	}
	var rows []*legacy.Billing
	if err := r.db.WithContext(ctx).Where("id IN ?", componentIDs).Find(&rows).Error; err != nil {
		return nil, err
	}
	for _, row := range rows {
		out[row.ID] = row
	}
	return out, nil
}

func (r *componentRepo) SocialSingles(ctx context.Context, componentIDs []int) (map[int]*legacy.SocialSingle, error) {
	out := make(map[int]*legacy.SocialSingle, len(componentIDs))
	if len(componentIDs) == 0 {
		return out, nil
	}
	var rows []*legacy.SocialSingle
	if err := r.db.WithContext(ctx).Where("id IN ?", componentIDs).Find(&rows).Error; err != nil {
		return nil, err
	}
	for _, row := range rows {
		out[row.ID] = row
	}
	return out, nil
}
