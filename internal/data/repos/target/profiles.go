package target

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/damigrowth/migrator/internal/domain/target"
	"github.com/damigrowth/migrator/internal/platform/logger"
)

type ProfileRepo interface {
	All(ctx context.Context, tx *gorm.DB) ([]*target.Profile, error)
	GetByLegacyID(ctx context.Context, tx *gorm.DB, legacyID int) (*target.Profile, error)
	GetByUserID(ctx context.Context, tx *gorm.DB, userID uuid.UUID) (*target.Profile, error)
	Create(ctx context.Context, tx *gorm.DB, row *target.Profile) error
	UpdateFields(ctx context.Context, tx *gorm.DB, id uuid.UUID, changes map[string]any) error
	DeleteAll(ctx context.Context, tx *gorm.DB) (int64, error)
	Count(ctx context.Context, tx *gorm.DB) (int64, error)
	CountByType(ctx context.Context, tx *gorm.DB) (map[string]int, error)
}

type profileRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewProfileRepo(db *gorm.DB, baseLog *logger.Logger) ProfileRepo {
	return &profileRepo{db: db, log: baseLog.With("repo", "ProfileRepo")}
}

func (r *profileRepo) conn(tx *gorm.DB) *gorm.DB {
	if tx != nil {
		return tx
	}
	return r.db
}

func (r *profileRepo) All(ctx context.Context, tx *gorm.DB) ([]*target.Profile, error) {
	var rows []*target.Profile
	if err := r.conn(tx).WithContext(ctx).Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *profileRepo) GetByLegacyID(ctx context.Context, tx *gorm.DB, legacyID int) (*target.Profile, error) {
	var row target.Profile
	err := r.conn(tx).WithContext(ctx).Where("legacy_id = ?", legacyID).First(&row).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &row, nil
}

func (r *profileRepo) GetByUserID(ctx context.Context, tx *gorm.DB, userID uuid.UUID) (*target.Profile, error) {
	if userID == uuid.Nil {
		return nil, nil
	}
	var row target.Profile
	err := r.conn(tx).WithContext(ctx).Where("user_id = ?", userID).First(&row).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &row, nil
}

func (r *profileRepo) Create(ctx context.Context, tx *gorm.DB, row *target.Profile) error {
	if row == nil {
		return nil
	}
	return r.conn(tx).WithContext(ctx).Create(row).Error
}

func (r *profileRepo) UpdateFields(ctx context.Context, tx *gorm.DB, id uuid.UUID, changes map[string]any) error {
	if id == uuid.Nil || len(changes) == 0 {
		return nil
	}
	return r.conn(tx).WithContext(ctx).
		Model(&target.Profile{}).
		Where("id = ?", id).
		Updates(changes).Error
}

func (r *profileRepo) DeleteAll(ctx context.Context, tx *gorm.DB) (int64, error) {
	res := r.conn(tx).WithContext(ctx).
		Where("1 = 1").
		Delete(&target.Profile{})
	return res.RowsAffected, res.Error
}

func (r *profileRepo) Count(ctx context.Context, tx *gorm.DB) (int64, error) {
	var n int64
	err := r.conn(tx).WithContext(ctx).Model(&target.Profile{}).Count(&n).Error
	return n, err
}

func (r *profileRepo) CountByType(ctx context.Context, tx *gorm.DB) (map[string]int, error) {
	type row struct {
		Type  string
		Count int
	}
	var rows []row
	err := r.conn(tx).WithContext(ctx).
		Model(&target.Profile{}).
		Select("type, COUNT(*) AS count").
		Group("type").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	out := make(map[string]int, len(rows))
	for _, rr := range rows {
		out[rr.Type] = rr.Count
	}
	return out, nil
}
