package source

import (
	"context"

	"gorm.io/gorm"

	"github.com/damigrowth/migrator/internal/domain/legacy"
	"github.com/damigrowth/migrator/internal/platform/logger"
)

// IdentityRepo loads the identity-link chain in bulk. The resolver only
// ever works over these preloaded maps, never per-entity queries.
type IdentityRepo interface {
	// UserLinks returns freelancer id -> legacy user id for every link row.
	UserLinks(ctx context.Context) (map[int]int, error)
	// Users returns legacy user id -> user for every CMS account.
	Users(ctx context.Context) (map[int]*legacy.User, error)
}

type identityRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewIdentityRepo(db *gorm.DB, baseLog *logger.Logger) IdentityRepo {
	return &identityRepo{db: db, log: baseLog.With("repo", "IdentityRepo")}
}

func (r *identityRepo) UserLinks(ctx context.Context) (map[int]int, error) {
	var rows []legacy.FreelancerUserLink
	if err := r.db.WithContext(ctx).Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make(map[int]int, len(rows))
	for _, row := range rows {
		out[row.FreelancerID] = row.UserID
	}
	return out, nil
}

func (r *identityRepo) Users(ctx context.Context) (map[int]*legacy.User, error) {
	var rows []*legacy.User
	if err := r.db.WithContext(ctx).Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make(map[int]*legacy.User, len(rows))
	for _, row := range rows {
		out[row.ID] = row
	}
	return out, nil
}
