package source

import (
	"context"

	"gorm.io/gorm"

	"github.com/damigrowth/migrator/internal/domain/legacy"
	"github.com/damigrowth/migrator/internal/platform/logger"
)

// FreelancerRepo reads legacy freelancer rows. The source store is
// read-only, so none of these methods take a transaction.
type FreelancerRepo interface {
	ListAll(ctx context.Context) ([]*legacy.Freelancer, error)
	GetByID(ctx context.Context, id int) (*legacy.Freelancer, error)
	// TypeSlugs resolves the single-valued type selection for a batch of
	// freelancer ids in one query.
	TypeSlugs(ctx context.Context, freelancerIDs []int) (map[int]string, error)
}

type freelancerRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewFreelancerRepo(db *gorm.DB, baseLog *logger.Logger) FreelancerRepo {
	return &freelancerRepo{db: db, log: baseLog.With("repo", "FreelancerRepo")}
}

func (r *freelancerRepo) ListAll(ctx context.Context) ([]*legacy.Freelancer, error) {
	var rows []*legacy.Freelancer
	if err := r.db.WithContext(ctx).Order("id asc").Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *freelancerRepo) GetByID(ctx context.Context, id int) (*legacy.Freelancer, error) {
	var row legacy.Freelancer
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&row).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &row, nil
}

func (r *freelancerRepo) TypeSlugs(ctx context.Context, freelancerIDs []int) (map[int]string, error) {
	out := make(map[int]string, len(freelancerIDs))
	if len(freelancerIDs) == 0 {
		return out, nil
	}
	type row struct {
		FreelancerID int
		Slug         string
	}
	var rows []row
	err := r.db.WithContext(ctx).
		Model(&legacy.FreelancerTypeLink{}).
		Select("freelancers_type_links.freelancer_id AS freelancer_id, freelancer_types.slug AS slug").
		Joins("JOIN freelancer_types ON freelancer_types.id = freelancers_type_links.freelancer_type_id").
		Where("freelancers_type_links.freelancer_id IN ?", freelancerIDs).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	for _, r := range rows {
		out[r.FreelancerID] = r.Slug
	}
	return out, nil
}
