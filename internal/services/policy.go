package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/larekshop/larek-backend/internal/apperr"
	"github.com/larekshop/larek-backend/internal/logger"
	"github.com/larekshop/larek-backend/internal/repos"
	"github.com/larekshop/larek-backend/internal/types"
)

type EditPolicy string

const (
	// OwnerEdit grants the full field set.
	OwnerEdit EditPolicy = "owner_edit"
	// ModeratorEdit grants is_published, description and category only.
	ModeratorEdit EditPolicy = "moderator_edit"
)

var moderatorCapabilities = []string{
	types.PermCancelPublication,
	types.PermChangeDescription,
	types.PermChangeCategory,
}

type PolicyService interface {
	DecideEdit(ctx context.Context, tx *gorm.DB, requesterID uuid.UUID, product *types.Product) (EditPolicy, error)
}

type policyService struct {
	db       *gorm.DB
	log      *logger.Logger
	permRepo repos.UserPermissionRepo
}

func NewPolicyService(db *gorm.DB, log *logger.Logger, permRepo repos.UserPermissionRepo) PolicyService {
	serviceLog := log.With("service", "PolicyService")
	return &policyService{db: db, log: serviceLog, permRepo: permRepo}
}

// DecideEdit runs on every edit request; nothing is cached between
// requests. The owner always wins; anyone else must hold all three
// moderator capabilities or the request dies here, before any form
// processing.
func (ps *policyService) DecideEdit(ctx context.Context, tx *gorm.DB, requesterID uuid.UUID, product *types.Product) (EditPolicy, error) {
	if product == nil {
		return "", fmt.Errorf("no product given")
	}
	if product.OwnerID != nil && *product.OwnerID == requesterID {
		return OwnerEdit, nil
	}

	ok, err := ps.permRepo.HasAll(ctx, tx, requesterID, moderatorCapabilities)
	if err != nil {
		return "", fmt.Errorf("Failed to check moderator capabilities: %w", err)
	}
	if ok {
		return ModeratorEdit, nil
	}

	ps.log.Debug("Edit denied", "requester_id", requesterID, "product_id", product.ID)
	return "", apperr.ErrPermissionDenied
}
