package repos

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/larekshop/larek-backend/internal/logger"
	"github.com/larekshop/larek-backend/internal/types"
)

type PostRepo interface {
	Create(ctx context.Context, tx *gorm.DB, posts []*types.Post) ([]*types.Post, error)
	GetByIDs(ctx context.Context, tx *gorm.DB, postIDs []uuid.UUID) ([]*types.Post, error)
	GetBySlugs(ctx context.Context, tx *gorm.DB, slugs []string) ([]*types.Post, error)
	GetPublished(ctx context.Context, tx *gorm.DB) ([]*types.Post, error)
	Update(ctx context.Context, tx *gorm.DB, post *types.Post) error
	IncrementViews(ctx context.Context, tx *gorm.DB, postID uuid.UUID) error
	DeleteByIDs(ctx context.Context, tx *gorm.DB, postIDs []uuid.UUID) error
}

type postRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewPostRepo(db *gorm.DB, baseLog *logger.Logger) PostRepo {
	repoLog := baseLog.With("repo", "PostRepo")
	return &postRepo{db: db, log: repoLog}
}

func (pr *postRepo) Create(ctx context.Context, tx *gorm.DB, posts []*types.Post) ([]*types.Post, error) {
	transaction := tx
	if transaction == nil {
		transaction = pr.db
	}

	if len(posts) == 0 {
		return []*types.Post{}, nil
	}

	if err := transaction.WithContext(ctx).Create(&posts).Error; err != nil {
		return nil, err
	}

	return posts, nil
}

func (pr *postRepo) GetByIDs(ctx context.Context, tx *gorm.DB, postIDs []uuid.UUID) ([]*types.Post, error) {
	transaction := tx
	if transaction == nil {
		transaction = pr.db
	}

	var results []*types.Post

	if len(postIDs) == 0 {
		return results, nil
	}

	if err := transaction.WithContext(ctx).
		Where("id IN ?", postIDs).
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (pr *postRepo) GetBySlugs(ctx context.Context, tx *gorm.DB, slugs []string) ([]*types.Post, error) {
	transaction := tx
	if transaction == nil {
		transaction = pr.db
	}

	var results []*types.Post

	if len(slugs) == 0 {
		return results, nil
	}

	if err := transaction.WithContext(ctx).
		Where("slug IN ?", slugs).
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (pr *postRepo) GetPublished(ctx context.Context, tx *gorm.DB) ([]*types.Post, error) {
	transaction := tx
	if transaction == nil {
		transaction = pr.db
	}

	var results []*types.Post

	if err := transaction.WithContext(ctx).
		Where("is_published = ?", true).
		Order("created_at DESC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (pr *postRepo) Update(ctx context.Context, tx *gorm.DB, post *types.Post) error {
	transaction := tx
	if transaction == nil {
		transaction = pr.db
	}

	return transaction.WithContext(ctx).Save(post).Error
}

func (pr *postRepo) IncrementViews(ctx context.Context, tx *gorm.DB, postID uuid.UUID) error {
	transaction := tx
	if transaction == nil {
		transaction = pr.db
	}

	return transaction.WithContext(ctx).
		Model(&types.Post{}).
		Where("id = ?", postID).
		UpdateColumn("views_count", gorm.Expr("views_count + 1")).Error
}

func (pr *postRepo) DeleteByIDs(ctx context.Context, tx *gorm.DB, postIDs []uuid.UUID) error {
	transaction := tx
	if transaction == nil {
		transaction = pr.db
	}

	if len(postIDs) == 0 {
		return nil
	}

	return transaction.WithContext(ctx).
		Where("id IN ?", postIDs).
		Delete(&types.Post{}).Error
}
