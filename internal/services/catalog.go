package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/larekshop/larek-backend/internal/apperr"
	"github.com/larekshop/larek-backend/internal/cache"
	"github.com/larekshop/larek-backend/internal/logger"
	"github.com/larekshop/larek-backend/internal/repos"
	"github.com/larekshop/larek-backend/internal/types"
)

// NoActiveVersionLabel is attached to listed products that have no
// version flagged current.
const NoActiveVersionLabel = "Активная версия отсутствует"

// ProductFormResult reports the outcome of a coordinated product +
// versions save. The product may be persisted while the version rows
// were rejected; VersionErrors carries the per-row field errors for
// that case.
type ProductFormResult struct {
	Product       *types.Product   `json:"product"`
	Versions      []*types.Version `json:"versions,omitempty"`
	VersionErrors []FieldErrors    `json:"version_errors,omitempty"`
}

type CatalogService interface {
	ListCategories(ctx context.Context) ([]*types.Category, error)
	ListProducts(ctx context.Context) ([]*types.Product, error)
	GetProduct(ctx context.Context, productID uuid.UUID) (*types.Product, error)
	CreateProduct(ctx context.Context, requesterID uuid.UUID, in ProductInput, versions []VersionInput) (*ProductFormResult, error)
	UpdateProduct(ctx context.Context, requesterID uuid.UUID, productID uuid.UUID, in ProductInput, versions []VersionInput) (*ProductFormResult, error)
	DeleteProduct(ctx context.Context, productID uuid.UUID) error
}

type catalogService struct {
	db          *gorm.DB
	log         *logger.Logger
	catalog     *cache.Catalog
	policy      PolicyService
	productRepo repos.ProductRepo
	versionRepo repos.VersionRepo
}

func NewCatalogService(
	db *gorm.DB,
	log *logger.Logger,
	catalog *cache.Catalog,
	policy PolicyService,
	productRepo repos.ProductRepo,
	versionRepo repos.VersionRepo,
) CatalogService {
	serviceLog := log.With("service", "CatalogService")
	return &catalogService{
		db:          db,
		log:         serviceLog,
		catalog:     catalog,
		policy:      policy,
		productRepo: productRepo,
		versionRepo: versionRepo,
	}
}

func (cs *catalogService) ListCategories(ctx context.Context) ([]*types.Category, error) {
	return cs.catalog.Categories(ctx)
}

// ListProducts serves the cached snapshot and decorates every product
// with its active version label. With several versions flagged current
// the last row of the query wins; with none the placeholder is used.
func (cs *catalogService) ListProducts(ctx context.Context) ([]*types.Product, error) {
	products, err := cs.catalog.Products(ctx)
	if err != nil {
		return nil, err
	}

	for _, product := range products {
		current, err := cs.versionRepo.GetCurrentByProductID(ctx, nil, product.ID)
		if err != nil {
			return nil, fmt.Errorf("Failed to load current versions: %w", err)
		}
		if len(current) > 0 {
			product.ActiveVersion = current[len(current)-1].Name
		} else {
			product.ActiveVersion = NoActiveVersionLabel
		}
	}
	return products, nil
}

func (cs *catalogService) GetProduct(ctx context.Context, productID uuid.UUID) (*types.Product, error) {
	products, err := cs.productRepo.GetByIDs(ctx, nil, []uuid.UUID{productID})
	if err != nil {
		return nil, fmt.Errorf("Failed to load product: %w", err)
	}
	if len(products) == 0 {
		return nil, apperr.ErrNotFound
	}
	return products[0], nil
}

// CreateProduct validates and persists the product form first, stamping
// the requester as owner. Only then is the version sub-form validated
// against the persisted product; a rejected sub-form leaves the product
// in place and reports row errors instead of rolling back.
func (cs *catalogService) CreateProduct(ctx context.Context, requesterID uuid.UUID, in ProductInput, versions []VersionInput) (*ProductFormResult, error) {
	if fieldErrs := in.validate(); len(fieldErrs) > 0 {
		return nil, &ValidationError{Form: "product", Fields: fieldErrs}
	}

	product := &types.Product{
		ID:          uuid.New(),
		Name:        in.Name,
		Description: in.Description,
		CategoryID:  in.CategoryID,
		Price:       in.Price,
		IsPublished: in.IsPublished,
		OwnerID:     &requesterID,
	}
	if _, err := cs.productRepo.Create(ctx, nil, []*types.Product{product}); err != nil {
		return nil, fmt.Errorf("Failed to create product: %w", err)
	}

	result := &ProductFormResult{Product: product}

	if rowErrs := validateVersionRows(versions); rowErrs != nil {
		result.VersionErrors = rowErrs
		return result, nil
	}

	rows := make([]*types.Version, 0, len(versions))
	for _, v := range versions {
		rows = append(rows, &types.Version{
			ID:               uuid.New(),
			VersionNumber:    v.VersionNumber,
			Name:             v.Name,
			IsCurrentVersion: v.IsCurrentVersion,
			ProductID:        &product.ID,
		})
	}
	created, err := cs.versionRepo.Create(ctx, nil, rows)
	if err != nil {
		return nil, fmt.Errorf("Failed to create versions: %w", err)
	}
	result.Versions = created
	return result, nil
}

// UpdateProduct resolves the edit policy before touching anything; a
// denied requester never reaches form processing. Moderators only get
// the restricted field set applied.
func (cs *catalogService) UpdateProduct(ctx context.Context, requesterID uuid.UUID, productID uuid.UUID, in ProductInput, versions []VersionInput) (*ProductFormResult, error) {
	product, err := cs.GetProduct(ctx, productID)
	if err != nil {
		return nil, err
	}

	policy, err := cs.policy.DecideEdit(ctx, nil, requesterID, product)
	if err != nil {
		return nil, err
	}

	if fieldErrs := in.validate(); len(fieldErrs) > 0 {
		return nil, &ValidationError{Form: "product", Fields: fieldErrs}
	}

	switch policy {
	case OwnerEdit:
		product.Name = in.Name
		product.Price = in.Price
		product.Description = in.Description
		product.CategoryID = in.CategoryID
		product.IsPublished = in.IsPublished
	case ModeratorEdit:
		product.Description = in.Description
		product.CategoryID = in.CategoryID
		product.IsPublished = in.IsPublished
	}

	if err := cs.productRepo.Update(ctx, nil, product); err != nil {
		return nil, fmt.Errorf("Failed to update product: %w", err)
	}

	result := &ProductFormResult{Product: product}

	if rowErrs := validateVersionRows(versions); rowErrs != nil {
		result.VersionErrors = rowErrs
		return result, nil
	}

	var saved []*types.Version
	var toCreate []*types.Version
	for _, v := range versions {
		if v.ID != nil {
			existing, err := cs.versionRepo.GetByIDs(ctx, nil, []uuid.UUID{*v.ID})
			if err != nil {
				return nil, fmt.Errorf("Failed to load version: %w", err)
			}
			if len(existing) == 0 {
				return nil, apperr.ErrNotFound
			}
			row := existing[0]
			// The sub-form only covers this product's own versions; a
			// row id pointing at another product is treated as unknown.
			if row.ProductID == nil || *row.ProductID != product.ID {
				return nil, apperr.ErrNotFound
			}
			row.VersionNumber = v.VersionNumber
			row.Name = v.Name
			row.IsCurrentVersion = v.IsCurrentVersion
			row.ProductID = &product.ID
			if err := cs.versionRepo.Update(ctx, nil, row); err != nil {
				return nil, fmt.Errorf("Failed to update version: %w", err)
			}
			saved = append(saved, row)
			continue
		}
		toCreate = append(toCreate, &types.Version{
			ID:               uuid.New(),
			VersionNumber:    v.VersionNumber,
			Name:             v.Name,
			IsCurrentVersion: v.IsCurrentVersion,
			ProductID:        &product.ID,
		})
	}
	if len(toCreate) > 0 {
		created, err := cs.versionRepo.Create(ctx, nil, toCreate)
		if err != nil {
			return nil, fmt.Errorf("Failed to create versions: %w", err)
		}
		saved = append(saved, created...)
	}
	result.Versions = saved
	return result, nil
}

func (cs *catalogService) DeleteProduct(ctx context.Context, productID uuid.UUID) error {
	if _, err := cs.GetProduct(ctx, productID); err != nil {
		return err
	}
	return cs.productRepo.DeleteByIDs(ctx, nil, []uuid.UUID{productID})
}
