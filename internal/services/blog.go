package services

import (
	"context"
	"fmt"
	"strings"
	"unicode"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/larekshop/larek-backend/internal/apperr"
	"github.com/larekshop/larek-backend/internal/logger"
	"github.com/larekshop/larek-backend/internal/repos"
	"github.com/larekshop/larek-backend/internal/types"
)

type PostInput struct {
	Title       string `json:"title"`
	Content     string `json:"content"`
	Preview     string `json:"preview"`
	IsPublished bool   `json:"is_published"`
}

type BlogService interface {
	ListPublished(ctx context.Context) ([]*types.Post, error)
	GetBySlug(ctx context.Context, slug string) (*types.Post, error)
	CreatePost(ctx context.Context, in PostInput) (*types.Post, error)
	UpdatePost(ctx context.Context, slug string, in PostInput) (*types.Post, error)
	DeletePost(ctx context.Context, slug string) error
}

type blogService struct {
	db       *gorm.DB
	log      *logger.Logger
	postRepo repos.PostRepo
}

func NewBlogService(db *gorm.DB, log *logger.Logger, postRepo repos.PostRepo) BlogService {
	serviceLog := log.With("service", "BlogService")
	return &blogService{db: db, log: serviceLog, postRepo: postRepo}
}

func (bs *blogService) ListPublished(ctx context.Context) ([]*types.Post, error) {
	return bs.postRepo.GetPublished(ctx, nil)
}

// GetBySlug bumps the views counter on every read.
func (bs *blogService) GetBySlug(ctx context.Context, slug string) (*types.Post, error) {
	posts, err := bs.postRepo.GetBySlugs(ctx, nil, []string{slug})
	if err != nil {
		return nil, fmt.Errorf("Failed to load post: %w", err)
	}
	if len(posts) == 0 {
		return nil, apperr.ErrNotFound
	}
	post := posts[0]

	if err := bs.postRepo.IncrementViews(ctx, nil, post.ID); err != nil {
		return nil, fmt.Errorf("Failed to bump views counter: %w", err)
	}
	post.ViewsCount++
	return post, nil
}

func (bs *blogService) CreatePost(ctx context.Context, in PostInput) (*types.Post, error) {
	if strings.TrimSpace(in.Title) == "" {
		return nil, &ValidationError{Form: "post", Fields: FieldErrors{"title": "title is required"}}
	}

	post := &types.Post{
		ID:          uuid.New(),
		Title:       in.Title,
		Slug:        slugify(in.Title),
		Content:     in.Content,
		Preview:     in.Preview,
		IsPublished: in.IsPublished,
	}
	if _, err := bs.postRepo.Create(ctx, nil, []*types.Post{post}); err != nil {
		return nil, fmt.Errorf("Failed to create post: %w", err)
	}
	return post, nil
}

func (bs *blogService) UpdatePost(ctx context.Context, slug string, in PostInput) (*types.Post, error) {
	posts, err := bs.postRepo.GetBySlugs(ctx, nil, []string{slug})
	if err != nil {
		return nil, fmt.Errorf("Failed to load post: %w", err)
	}
	if len(posts) == 0 {
		return nil, apperr.ErrNotFound
	}
	if strings.TrimSpace(in.Title) == "" {
		return nil, &ValidationError{Form: "post", Fields: FieldErrors{"title": "title is required"}}
	}

	post := posts[0]
	post.Title = in.Title
	post.Content = in.Content
	if in.Preview != "" {
		post.Preview = in.Preview
	}
	post.IsPublished = in.IsPublished

	if err := bs.postRepo.Update(ctx, nil, post); err != nil {
		return nil, fmt.Errorf("Failed to update post: %w", err)
	}
	return post, nil
}

func (bs *blogService) DeletePost(ctx context.Context, slug string) error {
	posts, err := bs.postRepo.GetBySlugs(ctx, nil, []string{slug})
	if err != nil {
		return fmt.Errorf("Failed to load post: %w", err)
	}
	if len(posts) == 0 {
		return apperr.ErrNotFound
	}
	return bs.postRepo.DeleteByIDs(ctx, nil, []uuid.UUID{posts[0].ID})
}

func slugify(title string) string {
	var b strings.Builder
	lastDash := true
	for _, r := range strings.ToLower(title) {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(r)
			lastDash = false
		default:
			if !lastDash {
				b.WriteRune('-')
				lastDash = true
			}
		}
	}
	slug := strings.Trim(b.String(), "-")
	if slug == "" {
		slug = uuid.New().String()
	}
	return slug
}
