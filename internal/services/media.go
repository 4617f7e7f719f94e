package services

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"path"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/larekshop/larek-backend/internal/apperr"
	"github.com/larekshop/larek-backend/internal/logger"
	"github.com/larekshop/larek-backend/internal/repos"
	"github.com/larekshop/larek-backend/internal/storage"
)

type MediaService interface {
	UploadProductPhoto(ctx context.Context, requesterID, productID uuid.UUID, filename string, file io.Reader) (string, error)
	UploadPostPreview(ctx context.Context, slug, filename string, file io.Reader) (string, error)
}

type mediaService struct {
	db          *gorm.DB
	log         *logger.Logger
	bucket      storage.BucketService
	policy      PolicyService
	productRepo repos.ProductRepo
	postRepo    repos.PostRepo
}

func NewMediaService(
	db *gorm.DB,
	log *logger.Logger,
	bucket storage.BucketService,
	policy PolicyService,
	productRepo repos.ProductRepo,
	postRepo repos.PostRepo,
) MediaService {
	serviceLog := log.With("service", "MediaService")
	return &mediaService{
		db:          db,
		log:         serviceLog,
		bucket:      bucket,
		policy:      policy,
		productRepo: productRepo,
		postRepo:    postRepo,
	}
}

// storageUnavailable covers deployments running without a configured
// bucket; uploads refuse cleanly instead of dereferencing a nil client.
func (ms *mediaService) storageUnavailable() error {
	if ms.bucket != nil {
		return nil
	}
	return apperr.New(http.StatusServiceUnavailable, "storage_unavailable", fmt.Errorf("file storage is not configured"))
}

// UploadProductPhoto stores the image under the catalog prefix and
// points the product at its public URL. Only requesters that pass the
// edit policy get here.
func (ms *mediaService) UploadProductPhoto(ctx context.Context, requesterID, productID uuid.UUID, filename string, file io.Reader) (string, error) {
	if err := ms.storageUnavailable(); err != nil {
		return "", err
	}
	products, err := ms.productRepo.GetByIDs(ctx, nil, []uuid.UUID{productID})
	if err != nil {
		return "", fmt.Errorf("Failed to load product: %w", err)
	}
	if len(products) == 0 {
		return "", apperr.ErrNotFound
	}
	product := products[0]

	if _, err := ms.policy.DecideEdit(ctx, nil, requesterID, product); err != nil {
		return "", err
	}

	key := storage.CatalogPrefix + product.ID.String() + path.Ext(filename)
	if err := ms.bucket.UploadFile(ctx, key, file); err != nil {
		return "", fmt.Errorf("Failed to upload product photo: %w", err)
	}

	product.Photo = ms.bucket.GetPublicURL(key)
	if err := ms.productRepo.Update(ctx, nil, product); err != nil {
		return "", fmt.Errorf("Failed to persist product photo: %w", err)
	}
	return product.Photo, nil
}

func (ms *mediaService) UploadPostPreview(ctx context.Context, slug, filename string, file io.Reader) (string, error) {
	if err := ms.storageUnavailable(); err != nil {
		return "", err
	}
	posts, err := ms.postRepo.GetBySlugs(ctx, nil, []string{slug})
	if err != nil {
		return "", fmt.Errorf("Failed to load post: %w", err)
	}
	if len(posts) == 0 {
		return "", apperr.ErrNotFound
	}
	post := posts[0]

	key := storage.BlogPrefix + post.ID.String() + path.Ext(filename)
	if err := ms.bucket.UploadFile(ctx, key, file); err != nil {
		return "", fmt.Errorf("Failed to upload post preview: %w", err)
	}

	post.Preview = ms.bucket.GetPublicURL(key)
	if err := ms.postRepo.Update(ctx, nil, post); err != nil {
		return "", fmt.Errorf("Failed to persist post preview: %w", err)
	}
	return post.Preview, nil
}
