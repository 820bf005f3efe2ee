package source

import (
	"context"

	"gorm.io/gorm"

	"github.com/damigrowth/migrator/internal/domain/legacy"
	"github.com/damigrowth/migrator/internal/platform/logger"
)

type ServiceRepo interface {
	ListAll(ctx context.Context) ([]*legacy.Service, error)
	GetByID(ctx context.Context, id int) (*legacy.Service, error)
	// FreelancerLinks returns service id -> owning freelancer id.
	FreelancerLinks(ctx context.Context) (map[int]int, error)
}

type serviceRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewServiceRepo(db *gorm.DB, baseLog *logger.Logger) ServiceRepo {
	return &serviceRepo{db: db, log: baseLog.With("repo", "ServiceRepo")}
}

func (r *serviceRepo) ListAll(ctx context.Context) ([]*legacy.Service, error) {
	var rows []*legacy.Service
	if err := r.db.WithContext(ctx).Order("id asc").Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *serviceRepo) GetByID(ctx context.Context, id int) (*legacy.Service, error) {
	var row legacy.Service
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&row).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &row, nil
}

func (r *serviceRepo) FreelancerLinks(ctx context.Context) (map[int]int, error) {
	var rows []legacy.ServiceFreelancerLink
	if err := r.db.WithContext(ctx).Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make(map[int]int, len(rows))
	for _, row := range rows {
		out[row.ServiceID] = row.FreelancerID
	}
	return out, nil
}
