package repos

import (
	"context"
	"testing"

	"github.com/google/uuid"

	"github.com/larekshop/larek-backend/internal/repos/testutil"
	"github.com/larekshop/larek-backend/internal/types"
)

func TestProductRepoCategoryDeletionClearsReference(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)

	ctx := context.Background()
	categoryRepo := NewCategoryRepo(db, testutil.Logger(t))
	productRepo := NewProductRepo(db, testutil.Logger(t))

	cat := &types.Category{ID: uuid.New(), Name: "Bikes"}
	if _, err := categoryRepo.Create(ctx, tx, []*types.Category{cat}); err != nil {
		t.Fatalf("seed category: %v", err)
	}

	p := &types.Product{ID: uuid.New(), Name: "Gravel Bike", Price: 1200, CategoryID: &cat.ID}
	if _, err := productRepo.Create(ctx, tx, []*types.Product{p}); err != nil {
		t.Fatalf("seed product: %v", err)
	}

	if err := categoryRepo.DeleteByIDs(ctx, tx, []uuid.UUID{cat.ID}); err != nil {
		t.Fatalf("DeleteByIDs: %v", err)
	}

	rows, err := productRepo.GetByIDs(ctx, tx, []uuid.UUID{p.ID})
	if err != nil || len(rows) != 1 {
		t.Fatalf("GetByIDs after category delete: err=%v len=%d", err, len(rows))
	}
	if rows[0].CategoryID != nil {
		t.Fatalf("category reference should be cleared, got %v", rows[0].CategoryID)
	}
}

func TestProductRepoDeleteCascadesVersions(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)

	ctx := context.Background()
	productRepo := NewProductRepo(db, testutil.Logger(t))
	versionRepo := NewVersionRepo(db, testutil.Logger(t))

	p := &types.Product{ID: uuid.New(), Name: "Lamp", Price: 30}
	if _, err := productRepo.Create(ctx, tx, []*types.Product{p}); err != nil {
		t.Fatalf("seed product: %v", err)
	}

	v := &types.Version{ID: uuid.New(), VersionNumber: 1, Name: "v1", ProductID: &p.ID, IsCurrentVersion: true}
	if _, err := versionRepo.Create(ctx, tx, []*types.Version{v}); err != nil {
		t.Fatalf("seed version: %v", err)
	}

	if err := productRepo.DeleteByIDs(ctx, tx, []uuid.UUID{p.ID}); err != nil {
		t.Fatalf("DeleteByIDs: %v", err)
	}

	rows, err := versionRepo.GetByProductIDs(ctx, tx, []uuid.UUID{p.ID})
	if err != nil || len(rows) != 0 {
		t.Fatalf("versions should be gone with the product: err=%v len=%d", err, len(rows))
	}
}

func TestVersionRepoCurrentLookup(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)

	ctx := context.Background()
	productRepo := NewProductRepo(db, testutil.Logger(t))
	versionRepo := NewVersionRepo(db, testutil.Logger(t))

	p := &types.Product{ID: uuid.New(), Name: "Kettle", Price: 45}
	if _, err := productRepo.Create(ctx, tx, []*types.Product{p}); err != nil {
		t.Fatalf("seed product: %v", err)
	}

	seed := []*types.Version{
		{ID: uuid.New(), VersionNumber: 1, Name: "old", ProductID: &p.ID, IsCurrentVersion: true},
		{ID: uuid.New(), VersionNumber: 2, Name: "mid", ProductID: &p.ID},
		{ID: uuid.New(), VersionNumber: 3, Name: "new", ProductID: &p.ID, IsCurrentVersion: true},
	}
	if _, err := versionRepo.Create(ctx, tx, seed); err != nil {
		t.Fatalf("seed versions: %v", err)
	}

	rows, err := versionRepo.GetCurrentByProductID(ctx, tx, p.ID)
	if err != nil {
		t.Fatalf("GetCurrentByProductID: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("expected both current versions, got %d", len(rows))
	}
	if rows[len(rows)-1].Name != "new" {
		t.Fatalf("expected version_number ordering with %q last, got %q", "new", rows[len(rows)-1].Name)
	}
}
