package repository

import (
	"context"
	"errors"

	"isdn/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrInsufficientStock is returned when a debit would drive stock negative.
// The record is left unchanged.
var ErrInsufficientStock = errors.New("insufficient stock")

// InventoryRepository is the regional inventory ledger: the only place stock
// is read or mutated. All quantity arguments are non-negative.
type InventoryRepository interface {
	// GetStock returns the stock level for (product, region).
	// Absence of a record means zero, not an error.
	GetStock(ctx context.Context, productID uuid.UUID, region entity.Region) (int, error)

	// SetStock upserts the (product, region) record to an absolute level.
	SetStock(ctx context.Context, productID uuid.UUID, region entity.Region, quantity int) error

	// Debit atomically decreases stock by quantity. Two simultaneous debits
	// must not both succeed when only one can be covered; the loser gets
	// ErrInsufficientStock and the record is unchanged.
	Debit(ctx context.Context, productID uuid.UUID, region entity.Region, quantity int) error

	// Credit atomically increases stock by quantity, creating the record if
	// it does not exist. Used to restock when an order is cancelled.
	Credit(ctx context.Context, productID uuid.UUID, region entity.Region, quantity int) error

	// AggregateStock sums stock across all regions for head-office-wide views.
	AggregateStock(ctx context.Context, productID uuid.UUID) (int, error)

	// StockLevels returns stock per product: for a region, that region's
	// levels; with a nil region, the aggregate across regions.
	StockLevels(ctx context.Context, region *entity.Region) (map[uuid.UUID]int, error)

	// LowStockCount counts records strictly below the threshold.
	LowStockCount(ctx context.Context, threshold int) (int64, error)
}
