package services

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/larekshop/larek-backend/internal/apperr"
	"github.com/larekshop/larek-backend/internal/types"
)

func TestDecideEditOwnerWinsWithoutCapabilities(t *testing.T) {
	perms := newFakePermissionRepo()
	svc := NewPolicyService(nil, testLogger(t), perms)

	ownerID := uuid.New()
	product := &types.Product{ID: uuid.New(), OwnerID: &ownerID}

	policy, err := svc.DecideEdit(context.Background(), nil, ownerID, product)
	if err != nil {
		t.Fatalf("DecideEdit: %v", err)
	}
	if policy != OwnerEdit {
		t.Fatalf("expected %q, got %q", OwnerEdit, policy)
	}
}

func TestDecideEditModeratorNeedsAllCapabilities(t *testing.T) {
	perms := newFakePermissionRepo()
	svc := NewPolicyService(nil, testLogger(t), perms)

	ownerID := uuid.New()
	moderatorID := uuid.New()
	product := &types.Product{ID: uuid.New(), OwnerID: &ownerID}

	perms.grant(moderatorID, types.PermCancelPublication, types.PermChangeDescription)
	if _, err := svc.DecideEdit(context.Background(), nil, moderatorID, product); !errors.Is(err, apperr.ErrPermissionDenied) {
		t.Fatalf("expected permission denied with two of three capabilities, got %v", err)
	}

	perms.grant(moderatorID, types.PermChangeCategory)
	policy, err := svc.DecideEdit(context.Background(), nil, moderatorID, product)
	if err != nil {
		t.Fatalf("DecideEdit: %v", err)
	}
	if policy != ModeratorEdit {
		t.Fatalf("expected %q, got %q", ModeratorEdit, policy)
	}
}

func TestDecideEditStrangerDenied(t *testing.T) {
	perms := newFakePermissionRepo()
	svc := NewPolicyService(nil, testLogger(t), perms)

	ownerID := uuid.New()
	product := &types.Product{ID: uuid.New(), OwnerID: &ownerID}

	_, err := svc.DecideEdit(context.Background(), nil, uuid.New(), product)
	if !errors.Is(err, apperr.ErrPermissionDenied) {
		t.Fatalf("expected permission denied, got %v", err)
	}
}
