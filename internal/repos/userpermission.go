package repos

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/larekshop/larek-backend/internal/logger"
	"github.com/larekshop/larek-backend/internal/types"
)

type UserPermissionRepo interface {
	Grant(ctx context.Context, tx *gorm.DB, grants []*types.UserPermission) ([]*types.UserPermission, error)
	GetByUserIDs(ctx context.Context, tx *gorm.DB, userIDs []uuid.UUID) ([]*types.UserPermission, error)
	HasAll(ctx context.Context, tx *gorm.DB, userID uuid.UUID, codenames []string) (bool, error)
	RevokeByUserIDs(ctx context.Context, tx *gorm.DB, userIDs []uuid.UUID) error
}

type userPermissionRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewUserPermissionRepo(db *gorm.DB, baseLog *logger.Logger) UserPermissionRepo {
	repoLog := baseLog.With("repo", "UserPermissionRepo")
	return &userPermissionRepo{db: db, log: repoLog}
}

func (upr *userPermissionRepo) Grant(ctx context.Context, tx *gorm.DB, grants []*types.UserPermission) ([]*types.UserPermission, error) {
	transaction := tx
	if transaction == nil {
		transaction = upr.db
	}

	if len(grants) == 0 {
		return []*types.UserPermission{}, nil
	}

	if err := transaction.WithContext(ctx).Create(&grants).Error; err != nil {
		return nil, err
	}

	return grants, nil
}

func (upr *userPermissionRepo) GetByUserIDs(ctx context.Context, tx *gorm.DB, userIDs []uuid.UUID) ([]*types.UserPermission, error) {
	transaction := tx
	if transaction == nil {
		transaction = upr.db
	}

	var results []*types.UserPermission

	if len(userIDs) == 0 {
		return results, nil
	}

	if err := transaction.WithContext(ctx).
		Where("user_id IN ?", userIDs).
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

// HasAll reports whether the user holds every one of the given
// codenames. An empty codename list is trivially satisfied.
func (upr *userPermissionRepo) HasAll(ctx context.Context, tx *gorm.DB, userID uuid.UUID, codenames []string) (bool, error) {
	transaction := tx
	if transaction == nil {
		transaction = upr.db
	}

	if len(codenames) == 0 {
		return true, nil
	}

	var count int64
	if err := transaction.WithContext(ctx).
		Model(&types.UserPermission{}).
		Where("user_id = ? AND codename IN ?", userID, codenames).
		Distinct("codename").
		Count(&count).Error; err != nil {
		return false, err
	}
	return count == int64(len(codenames)), nil
}

func (upr *userPermissionRepo) RevokeByUserIDs(ctx context.Context, tx *gorm.DB, userIDs []uuid.UUID) error {
	transaction := tx
	if transaction == nil {
		transaction = upr.db
	}

	if len(userIDs) == 0 {
		return nil
	}

	return transaction.WithContext(ctx).
		Where("user_id IN ?", userIDs).
		Delete(&types.UserPermission{}).Error
}
