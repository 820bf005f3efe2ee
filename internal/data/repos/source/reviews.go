package source

import (
	"context"

	"gorm.io/gorm"

	"github.com/damigrowth/migrator/internal/domain/legacy"
	"github.com/damigrowth/migrator/internal/platform/logger"
)

// StarBuckets holds per-star review counts; index 0 is one star.
type StarBuckets [5]int

func (b StarBuckets) Total() int {
	total := 0
	for _, n := range b {
		total += n
	}
	return total
}

// ReviewRepo derives star buckets with one grouped query per batch.
type ReviewRepo interface {
	FreelancerBuckets(ctx context.Context, freelancerIDs []int) (map[int]StarBuckets, error)
	ServiceBuckets(ctx context.Context, serviceIDs []int) (map[int]StarBuckets, error)
}

type reviewRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewReviewRepo(db *gorm.DB, baseLog *logger.Logger) ReviewRepo {
	return &reviewRepo{db: db, log: baseLog.With("repo", "ReviewRepo")}
}

type bucketRow struct {
	EntityID int
	Rating   int
	Count    int
}

func (r *reviewRepo) FreelancerBuckets(ctx context.Context, ids []int) (map[int]StarBuckets, error) {
	out := make(map[int]StarBuckets, len(ids))
	if len(ids) == 0 {
		return out, nil
	}
	var rows []bucketRow
	err := r.db.WithContext(ctx).
		Model(&legacy.Review{}).
		Select("l.freelancer_id AS entity_id, reviews.rating AS rating, COUNT(*) AS count").
		Joins("JOIN reviews_freelancer_links l ON l.review_id = reviews.id").
		Where("l.freelancer_id IN ?", ids).
		Group("l.freelancer_id, reviews.rating").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	fillBuckets(out, rows)
	return out, nil
}

func (r *reviewRepo) ServiceBuckets(ctx context.Context, ids []int) (map[int]StarBuckets, error) {
	out := make(map[int]StarBuckets, len(ids))
	if len(ids) == 0 {
		return out, nil
	}
	var rows []bucketRow
	err := r.db.WithContext(ctx).
		Model(&legacy.Review{}).
		Select("l.service_id AS entity_id, reviews.rating AS rating, COUNT(*) AS count").
		Joins("JOIN reviews_service_links l ON l.review_id = reviews.id").
		Where("l.service_id IN ?", ids).
		Group("l.service_id, reviews.rating").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	fillBuckets(out, rows)
	return out, nil
}

func fillBuckets(out map[int]StarBuckets, rows []bucketRow) {
	for _, row := range rows {
		if row.Rating < 1 || row.Rating > 5 {
			continue
		}
		b := out[row.EntityID]
		b[row.Rating-1] += row.Count
		out[row.EntityID] = b
	}
}
