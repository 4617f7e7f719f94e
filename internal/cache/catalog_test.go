package cache

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/larekshop/larek-backend/internal/logger"
	"github.com/larekshop/larek-backend/internal/types"
)

func testLogger(t *testing.T) *logger.Logger {
	t.Helper()
	log, err := logger.New("test")
	if err != nil {
		t.Fatalf("init logger: %v", err)
	}
	return log
}

func TestCatalogServesSnapshotWithinTTL(t *testing.T) {
	now := time.Now()
	store := NewMemoryStoreWithClock(func() time.Time { return now })

	categoryLoads := 0
	productLoads := 0
	cat := &types.Category{ID: uuid.New(), Name: "Bikes"}
	prod := &types.Product{ID: uuid.New(), Name: "Gravel Bike", Price: 1200}

	catalog := NewCatalog(testLogger(t), store, 5*time.Minute,
		func(ctx context.Context) ([]*types.Category, error) {
			categoryLoads++
			return []*types.Category{cat}, nil
		},
		func(ctx context.Context) ([]*types.Product, error) {
			productLoads++
			return []*types.Product{prod}, nil
		},
	)

	ctx := context.Background()

	first, err := catalog.Categories(ctx)
	if err != nil {
		t.Fatalf("Categories: %v", err)
	}
	second, err := catalog.Categories(ctx)
	if err != nil {
		t.Fatalf("Categories: %v", err)
	}
	if categoryLoads != 1 {
		t.Fatalf("expected one store query within TTL, got %d", categoryLoads)
	}
	if len(first) != 1 || len(second) != 1 || first[0].ID != second[0].ID {
		t.Fatalf("snapshot changed between calls: %v vs %v", first, second)
	}

	if _, err := catalog.Products(ctx); err != nil {
		t.Fatalf("Products: %v", err)
	}
	if _, err := catalog.Products(ctx); err != nil {
		t.Fatalf("Products: %v", err)
	}
	if productLoads != 1 {
		t.Fatalf("expected one product store query within TTL, got %d", productLoads)
	}
}

func TestCatalogRefetchesAfterExpiry(t *testing.T) {
	now := time.Now()
	store := NewMemoryStoreWithClock(func() time.Time { return now })

	loads := 0
	catalog := NewCatalog(testLogger(t), store, 5*time.Minute,
		func(ctx context.Context) ([]*types.Category, error) {
			loads++
			return []*types.Category{{ID: uuid.New(), Name: "Bikes"}}, nil
		},
		func(ctx context.Context) ([]*types.Product, error) {
			return nil, nil
		},
	)

	ctx := context.Background()
	if _, err := catalog.Categories(ctx); err != nil {
		t.Fatalf("Categories: %v", err)
	}

	now = now.Add(5*time.Minute + time.Second)

	if _, err := catalog.Categories(ctx); err != nil {
		t.Fatalf("Categories after expiry: %v", err)
	}
	if loads != 2 {
		t.Fatalf("expected a new store query after TTL expiry, got %d loads", loads)
	}
}

func TestCatalogPropagatesLoaderError(t *testing.T) {
	store := NewMemoryStore()

	catalog := NewCatalog(testLogger(t), store, time.Minute,
		func(ctx context.Context) ([]*types.Category, error) {
			return nil, context.DeadlineExceeded
		},
		func(ctx context.Context) ([]*types.Product, error) {
			return nil, nil
		},
	)

	if _, err := catalog.Categories(context.Background()); err == nil {
		t.Fatalf("store error should propagate, no fallback")
	}
}
