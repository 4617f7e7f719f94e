package repos

import (
	"context"
	"testing"

	"github.com/google/uuid"

	"github.com/larekshop/larek-backend/internal/repos/testutil"
	"github.com/larekshop/larek-backend/internal/types"
)

func TestUserPermissionRepoHasAll(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)

	ctx := context.Background()
	userRepo := NewUserRepo(db, testutil.Logger(t))
	permRepo := NewUserPermissionRepo(db, testutil.Logger(t))

	u := &types.User{ID: uuid.New(), Email: "moderator@example.com", Password: "pw"}
	if _, err := userRepo.Create(ctx, tx, []*types.User{u}); err != nil {
		t.Fatalf("seed user: %v", err)
	}

	grants := []*types.UserPermission{
		{ID: uuid.New(), UserID: u.ID, Codename: types.PermCancelPublication},
		{ID: uuid.New(), UserID: u.ID, Codename: types.PermChangeDescription},
	}
	if _, err := permRepo.Grant(ctx, tx, grants); err != nil {
		t.Fatalf("Grant: %v", err)
	}

	all := []string{types.PermCancelPublication, types.PermChangeDescription, types.PermChangeCategory}
	ok, err := permRepo.HasAll(ctx, tx, u.ID, all)
	if err != nil {
		t.Fatalf("HasAll: %v", err)
	}
	if ok {
		t.Fatalf("two of three grants must not satisfy HasAll")
	}

	if _, err := permRepo.Grant(ctx, tx, []*types.UserPermission{
		{ID: uuid.New(), UserID: u.ID, Codename: types.PermChangeCategory},
	}); err != nil {
		t.Fatalf("Grant third: %v", err)
	}

	ok, err = permRepo.HasAll(ctx, tx, u.ID, all)
	if err != nil {
		t.Fatalf("HasAll: %v", err)
	}
	if !ok {
		t.Fatalf("all three grants should satisfy HasAll")
	}
}
