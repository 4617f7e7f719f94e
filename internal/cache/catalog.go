package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/larekshop/larek-backend/internal/logger"
	"github.com/larekshop/larek-backend/internal/types"
)

const (
	categoriesKey = "catalog:categories"
	productsKey   = "catalog:products"
)

type CategoryLoader func(ctx context.Context) ([]*types.Category, error)
type ProductLoader func(ctx context.Context) ([]*types.Product, error)

// Catalog is the read-through snapshot of the category and product
// listings. First call (or first after expiry) hits the entity store
// through the loader and writes the snapshot with a fixed TTL; calls
// within the TTL never touch the store. Store errors propagate as is.
type Catalog struct {
	log            *logger.Logger
	store          Store
	ttl            time.Duration
	loadCategories CategoryLoader
	loadProducts   ProductLoader
}

func NewCatalog(log *logger.Logger, store Store, ttl time.Duration, loadCategories CategoryLoader, loadProducts ProductLoader) *Catalog {
	catalogLog := log.With("service", "CatalogCache")
	return &Catalog{
		log:            catalogLog,
		store:          store,
		ttl:            ttl,
		loadCategories: loadCategories,
		loadProducts:   loadProducts,
	}
}

func (c *Catalog) Categories(ctx context.Context) ([]*types.Category, error) {
	raw, ok, err := c.store.Get(ctx, categoriesKey)
	if err != nil {
		return nil, err
	}
	if ok {
		var cached []*types.Category
		if err := json.Unmarshal(raw, &cached); err == nil {
			return cached, nil
		}
		c.log.Warn("Discarding undecodable categories snapshot", "key", categoriesKey)
	}

	fresh, err := c.loadCategories(ctx)
	if err != nil {
		return nil, err
	}
	c.put(ctx, categoriesKey, fresh)
	return fresh, nil
}

func (c *Catalog) Products(ctx context.Context) ([]*types.Product, error) {
	raw, ok, err := c.store.Get(ctx, productsKey)
	if err != nil {
		return nil, err
	}
	if ok {
		var cached []*types.Product
		if err := json.Unmarshal(raw, &cached); err == nil {
			return cached, nil
		}
		c.log.Warn("Discarding undecodable products snapshot", "key", productsKey)
	}

	fresh, err := c.loadProducts(ctx)
	if err != nil {
		return nil, err
	}
	c.put(ctx, productsKey, fresh)
	return fresh, nil
}

func (c *Catalog) put(ctx context.Context, key string, val any) {
	raw, err := json.Marshal(val)
	if err != nil {
		c.log.Warn("Failed to encode snapshot", "key", key, "error", err)
		return
	}
	if err := c.store.Set(ctx, key, raw, c.ttl); err != nil {
		c.log.Warn("Failed to write snapshot", "key", key, "error", err)
	}
}
