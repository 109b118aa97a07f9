package usecase

import (
	"context"

	"isdn/internal/domain/entity"

	"github.com/google/uuid"
)

// SetStockInput defines an absolute stock write for one (product, region).
type SetStockInput struct {
	ProductID uuid.UUID
	Region    entity.Region
	Quantity  int
}

// InventoryUsecase defines the interface for stock management operations.
type InventoryUsecase interface {
	// SetStock writes an absolute stock level after validating the product
	// exists and the quantity is non-negative.
	SetStock(ctx context.Context, actor Actor, input SetStockInput) error

	// GetStock reads the current level for one (product, region).
	GetStock(ctx context.Context, productID uuid.UUID, region entity.Region) (int, error)
}
