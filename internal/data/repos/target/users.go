package target

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/damigrowth/migrator/internal/domain/target"
	"github.com/damigrowth/migrator/internal/platform/logger"
)

// UserRepo mutates pre-existing target accounts. The pipeline never
// creates or deletes users; rollback only resets the role discriminator.
type UserRepo interface {
	All(ctx context.Context, tx *gorm.DB) ([]*target.User, error)
	GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*target.User, error)
	GetByEmail(ctx context.Context, tx *gorm.DB, email string) (*target.User, error)
	UpdateFields(ctx context.Context, tx *gorm.DB, id uuid.UUID, changes map[string]any) error
	ResetRoles(ctx context.Context, tx *gorm.DB) (int64, error)
	CountByRole(ctx context.Context, tx *gorm.DB) (map[string]int, error)
}

type userRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewUserRepo(db *gorm.DB, baseLog *logger.Logger) UserRepo {
	return &userRepo{db: db, log: baseLog.With("repo", "UserRepo")}
}

func (r *userRepo) conn(tx *gorm.DB) *gorm.DB {
	if tx != nil {
		return tx
	}
	return r.db
}

func (r *userRepo) All(ctx context.Context, tx *gorm.DB) ([]*target.User, error) {
	var rows []*target.User
	if err := r.conn(tx).WithContext(ctx).Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *userRepo) GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*target.User, error) {
	if id == uuid.Nil {
		return nil, nil
	}
	var row target.User
	err := r.conn(tx).WithContext(ctx).Where("id = ?", id).First(&row).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &row, nil
}

func (r *userRepo) GetByEmail(ctx context.Context, tx *gorm.DB, email string) (*target.User, error) {
	if email == "" {
		return nil, nil
	}
	var row target.User
	err := r.conn(tx).WithContext(ctx).Where("email = ?", email).First(&row).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &row, nil
}

func (r *userRepo) UpdateFields(ctx context.Context, tx *gorm.DB, id uuid.UUID, changes map[string]any) error {
	if id == uuid.Nil || len(changes) == 0 {
		return nil
	}
	return r.conn(tx).WithContext(ctx).
		Model(&target.User{}).
		Where("id = ?", id).
		Updates(changes).Error
}

func (r *userRepo) ResetRoles(ctx context.Context, tx *gorm.DB) (int64, error) {
	res := r.conn(tx).WithContext(ctx).
		Model(&target.User{}).
		Where("role <> ?", target.RoleSimple).
		Update("role", target.RoleSimple)
	return res.RowsAffected, res.Error
}

func (r *userRepo) CountByRole(ctx context.Context, tx *gorm.DB) (map[string]int, error) {
	type row struct {
		Role  string
		Count int
	}
	var rows []row
	err := r.conn(tx).WithContext(ctx).
		Model(&target.User{}).
		Select("role, COUNT(*) AS count").
		Group("role").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	out := make(map[string]int, len(rows))
	for _, rr := range rows {
		out[rr.Role] = rr.Count
	}
	return out, nil
}
