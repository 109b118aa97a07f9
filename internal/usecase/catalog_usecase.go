package usecase

import (
	"context"

	"isdn/internal/domain/entity"

	"github.com/google/uuid"
)

// ProductWithStock pairs a catalog product with the stock visible to the
// caller: their own region's level, or the cross-region aggregate for
// head office.
type ProductWithStock struct {
	Product *entity.Product
	Stock   int
}

// CreateProductInput defines the data required to add a catalog product.
// InitialStock, when positive, is written to every region so a new product
// is immediately orderable everywhere.
type CreateProductInput struct {
	Name         string
	Category     entity.Category
	Price        float64
	Image        string
	InitialStock int
}

// CatalogUsecase defines the interface for catalog business operations.
type CatalogUsecase interface {
	// ListProducts returns the catalog with stock scoped to the region,
	// or aggregated across regions when region is nil.
	ListProducts(ctx context.Context, region *entity.Region) ([]*ProductWithStock, error)

	// GetProduct returns a single product with region-scoped stock.
	GetProduct(ctx context.Context, id uuid.UUID, region *entity.Region) (*ProductWithStock, error)

	// CreateProduct adds a product to the catalog with optional starting stock.
	CreateProduct(ctx context.Context, input CreateProductInput) (*entity.Product, error)
}
