package repos

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/larekshop/larek-backend/internal/logger"
	"github.com/larekshop/larek-backend/internal/types"
)

type VersionRepo interface {
	Create(ctx context.Context, tx *gorm.DB, versions []*types.Version) ([]*types.Version, error)
	GetByIDs(ctx context.Context, tx *gorm.DB, versionIDs []uuid.UUID) ([]*types.Version, error)
	GetByProductIDs(ctx context.Context, tx *gorm.DB, productIDs []uuid.UUID) ([]*types.Version, error)
	GetCurrentByProductID(ctx context.Context, tx *gorm.DB, productID uuid.UUID) ([]*types.Version, error)
	Update(ctx context.Context, tx *gorm.DB, version *types.Version) error
	DeleteByIDs(ctx context.Context, tx *gorm.DB, versionIDs []uuid.UUID) error
}

type versionRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewVersionRepo(db *gorm.DB, baseLog *logger.Logger) VersionRepo {
	repoLog := baseLog.With("repo", "VersionRepo")
	return &versionRepo{db: db, log: repoLog}
}

func (vr *versionRepo) Create(ctx context.Context, tx *gorm.DB, versions []*types.Version) ([]*types.Version, error) {
	transaction := tx
	if transaction == nil {
		transaction = vr.db
	}

	if len(versions) == 0 {
		return []*types.Version{}, nil
	}

	if err := transaction.WithContext(ctx).Create(&versions).Error; err != nil {
		return nil, err
	}

	return versions, nil
}

func (vr *versionRepo) GetByIDs(ctx context.Context, tx *gorm.DB, versionIDs []uuid.UUID) ([]*types.Version, error) {
	transaction := tx
	if transaction == nil {
		transaction = vr.db
	}

	var results []*types.Version

	if len(versionIDs) == 0 {
		return results, nil
	}

	if err := transaction.WithContext(ctx).
		Where("id IN ?", versionIDs).
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (vr *versionRepo) GetByProductIDs(ctx context.Context, tx *gorm.DB, productIDs []uuid.UUID) ([]*types.Version, error) {
	transaction := tx
	if transaction == nil {
		transaction = vr.db
	}

	var results []*types.Version

	if len(productIDs) == 0 {
		return results, nil
	}

	if err := transaction.WithContext(ctx).
		Where("product_id IN ?", productIDs).
		Order("version_number").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

// GetCurrentByProductID returns every version flagged current for the
// product, in version_number order. Ties between several current
// versions are resolved by the caller taking the last row.
func (vr *versionRepo) GetCurrentByProductID(ctx context.Context, tx *gorm.DB, productID uuid.UUID) ([]*types.Version, error) {
	transaction := tx
	if transaction == nil {
		transaction = vr.db
	}

	var results []*types.Version

	if err := transaction.WithContext(ctx).
		Where("product_id = ? AND is_current_version = ?", productID, true).
		Order("version_number").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (vr *versionRepo) Update(ctx context.Context, tx *gorm.DB, version *types.Version) error {
	transaction := tx
	if transaction == nil {
		transaction = vr.db
	}

	return transaction.WithContext(ctx).Save(version).Error
}

func (vr *versionRepo) DeleteByIDs(ctx context.Context, tx *gorm.DB, versionIDs []uuid.UUID) error {
	transaction := tx
	if transaction == nil {
		transaction = vr.db
	}

	if len(versionIDs) == 0 {
		return nil
	}

	return transaction.WithContext(ctx).
		Where("id IN ?", versionIDs).
		Delete(&types.Version{}).Error
}
