package repos

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/larekshop/larek-backend/internal/logger"
	"github.com/larekshop/larek-backend/internal/types"
)

type ProductRepo interface {
	Create(ctx context.Context, tx *gorm.DB, products []*types.Product) ([]*types.Product, error)
	GetByIDs(ctx context.Context, tx *gorm.DB, productIDs []uuid.UUID) ([]*types.Product, error)
	GetAll(ctx context.Context, tx *gorm.DB) ([]*types.Product, error)
	Update(ctx context.Context, tx *gorm.DB, product *types.Product) error
	DeleteByIDs(ctx context.Context, tx *gorm.DB, productIDs []uuid.UUID) error
}

type productRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewProductRepo(db *gorm.DB, baseLog *logger.Logger) ProductRepo {
	repoLog := baseLog.With("repo", "ProductRepo")
	return &productRepo{db: db, log: repoLog}
}

func (pr *productRepo) Create(ctx context.Context, tx *gorm.DB, products []*types.Product) ([]*types.Product, error) {
	transaction := tx
	if transaction == nil {
		transaction = pr.db
	}

	if len(products) == 0 {
		return []*types.Product{}, nil
	}

	if err := transaction.WithContext(ctx).Create(&products).Error; err != nil {
		return nil, err
	}

	return products, nil
}

func (pr *productRepo) GetByIDs(ctx context.Context, tx *gorm.DB, productIDs []uuid.UUID) ([]*types.Product, error) {
	transaction := tx
	if transaction == nil {
		transaction = pr.db
	}

	var results []*types.Product

	if len(productIDs) == 0 {
		return results, nil
	}

	if err := transaction.WithContext(ctx).
		Preload("Category").
		Where("id IN ?", productIDs).
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (pr *productRepo) GetAll(ctx context.Context, tx *gorm.DB) ([]*types.Product, error) {
	transaction := tx
	if transaction == nil {
		transaction = pr.db
	}

	var results []*types.Product

	if err := transaction.WithContext(ctx).
		Preload("Category").
		Order("name, updated_at").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (pr *productRepo) Update(ctx context.Context, tx *gorm.DB, product *types.Product) error {
	transaction := tx
	if transaction == nil {
		transaction = pr.db
	}

	return transaction.WithContext(ctx).Save(product).Error
}

func (pr *productRepo) DeleteByIDs(ctx context.Context, tx *gorm.DB, productIDs []uuid.UUID) error {
	transaction := tx
	if transaction == nil {
		transaction = pr.db
	}

	if len(productIDs) == 0 {
		return nil
	}

	// Versions are owned by their product and go with it.
	if err := transaction.WithContext(ctx).
		Where("product_id IN ?", productIDs).
		Delete(&types.Version{}).Error; err != nil {
		return err
	}

	return transaction.WithContext(ctx).
		Where("id IN ?", productIDs).
		Delete(&types.Product{}).Error
}
