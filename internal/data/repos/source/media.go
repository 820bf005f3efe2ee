package source

import (
	"context"
	"sort"

	"gorm.io/gorm"

	"github.com/damigrowth/migrator/internal/domain/legacy"
	"github.com/damigrowth/migrator/internal/platform/logger"
)

// MediaRepo resolves already-hosted asset references through the file-morph
// join, one query for the whole batch.
type MediaRepo interface {
	// FilesFor returns ordered files keyed by related entity id for one
	// morph type ("freelancer" or "service").
	FilesFor(ctx context.Context, relatedType string, relatedIDs []int) (map[int][]*legacy.File, error)
}

type mediaRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewMediaRepo(db *gorm.DB, baseLog *logger.Logger) MediaRepo {
	return &mediaRepo{db: db, log: baseLog.With("repo", "MediaRepo")}
}

func (r *mediaRepo) FilesFor(ctx context.Context, relatedType string, relatedIDs []int) (map[int][]*legacy.File, error) {
	out := make(map[int][]*legacy.File, len(relatedIDs))
	if len(relatedIDs) == 0 {
		return out, nil
	}

	var morphs []legacy.FileMorph
	err := r.db.WithContext(ctx).
		Where("related_type = ? AND related_id IN ?", relatedType, relatedIDs).
		Find(&morphs).Error
	if err != nil {
		return nil, err
	}
	if len(morphs) == 0 {
		return out, nil
	}
	sort.SliceStable(morphs, func(i, j int) bool { return morphs[i].Order < morphs[j].Order })

	fileIDs := make([]int, 0, len(morphs))
	seen := make(map[int]bool, len(morphs))
	for _, m := range morphs {
		if !seen[m.FileID] {
			seen[m.FileID] = true
			fileIDs = append(fileIDs, m.FileID)
		}
	}

	var files []*legacy.File
	if err := r.db.WithContext(ctx).Where("id IN ?", fileIDs).Find(&files).Error; err != nil {
		return nil, err
	}
	byID := make(map[int]*legacy.File, len(files))
	for _, f := range files {
		byID[f.ID] = f
	}

	for _, m := range morphs {
		if f, ok := byID[m.FileID]; ok {
			out[m.RelatedID] = append(out[m.RelatedID], f)
		}
	}
	return out, nil
}
