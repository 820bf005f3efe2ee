package target

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/damigrowth/migrator/internal/domain/target"
	"github.com/damigrowth/migrator/internal/platform/logger"
)

type ServiceRepo interface {
	All(ctx context.Context, tx *gorm.DB) ([]*target.Service, error)
	GetByLegacyID(ctx context.Context, tx *gorm.DB, legacyID int) (*target.Service, error)
	Create(ctx context.Context, tx *gorm.DB, row *target.Service) error
	UpdateFields(ctx context.Context, tx *gorm.DB, id uuid.UUID, changes map[string]any) error
	DeleteAll(ctx context.Context, tx *gorm.DB) (int64, error)
	Count(ctx context.Context, tx *gorm.DB) (int64, error)
	CountByStatus(ctx context.Context, tx *gorm.DB) (map[string]int, error)
}

type serviceRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewServiceRepo(db *gorm.DB, baseLog *logger.Logger) ServiceRepo {
	return &serviceRepo{db: db, log: baseLog.With("repo", "ServiceRepo")}
}

func (r *serviceRepo) conn(tx *gorm.DB) *gorm.DB {
	if tx != nil {
		return tx
	}
	return r.db
}

func (r *serviceRepo) All(ctx context.Context, tx *gorm.DB) ([]*target.Service, error) {
	var rows []*target.Service
	if err := r.conn(tx).WithContext(ctx).Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *serviceRepo) GetByLegacyID(ctx context.Context, tx *gorm.DB, legacyID int) (*target.Service, error) {
	var row target.Service
	err := r.conn(tx).WithContext(ctx).Where("legacy_id = ?", legacyID).First(&row).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &row, nil
}

func (r *serviceRepo) Create(ctx context.Context, tx *gorm.DB, row *target.Service) error {
	if row == nil {
		return nil
	}
	return r.conn(tx).WithContext(ctx).Create(row).Error
}

func (r *serviceRepo) UpdateFields(ctx context.Context, tx *gorm.DB, id uuid.UUID, changes map[string]any) error {
	if id == uuid.Nil || len(changes) == 0 {
		return nil
	}
	return r.conn(tx).WithContext(ctx).
		Model(&target.Service{}).
		Where("id = ?", id).
		Updates(changes).Error
}

func (r *serviceRepo) DeleteAll(ctx context.Context, tx *gorm.DB) (int64, error) {
	res := r.conn(tx).WithContext(ctx).
		Where("1 = 1").
		Delete(&target.Service{})
	return res.RowsAffected, res.Error
}

func (r *serviceRepo) Count(ctx context.Context, tx *gorm.DB) (int64, error) {
	var n int64
	err := r.conn(tx).WithContext(ctx).Model(&target.Service{}).Count(&n).Error
	return n, err
}

func (r *serviceRepo) CountByStatus(ctx context.Context, tx *gorm.DB) (map[string]int, error) {
	type row struct {
		Status string
		Count  int
	}
	var rows []row
	err := r.conn(tx).WithContext(ctx).
		Model(&target.Service{}).
		Select("status, COUNT(*) AS count").
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	out := make(map[string]int, len(rows))
	for _, rr := range rows {
		out[rr.Status] = rr.Count
	}
	return out, nil
}
