package repository

import (
	"context"
	"errors"

	"isdn/internal/domain/entity"
	"isdn/internal/domain/policy"

	"github.com/google/uuid"
)

// ErrOrderNotFound is returned when an order is not found.
var ErrOrderNotFound = errors.New("order not found")

// ErrStatusConflict is returned by UpdateStatus when the order's current
// status no longer matches the expected one (a concurrent transition won).
var ErrStatusConflict = errors.New("order status conflict")

// SalesStats are the order-side dashboard aggregates.
type SalesStats struct {
	TotalSales        float64
	TotalOrders       int64
	PendingDeliveries int64 // Orders still moving, i.e. neither Delivered nor Cancelled.
}

// OrderRepository defines the operations for order persistence.
type OrderRepository interface {
	// Create persists an order together with all of its line items.
	Create(ctx context.Context, order *entity.Order) error

	// FindByID retrieves an order with its items and customer name.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Order, error)

	// List retrieves orders visible under the scope, most recent first.
	List(ctx context.Context, scope policy.ViewScope) ([]*entity.Order, error)

	// UpdateStatus moves the order from an expected current status to the
	// next one as a single conditional update. ErrStatusConflict is returned
	// when zero rows match, i.e. the status changed underneath the caller.
	UpdateStatus(ctx context.Context, id uuid.UUID, from, to entity.OrderStatus) error

	// SalesStats computes the dashboard aggregates in one pass.
	SalesStats(ctx context.Context) (*SalesStats, error)
}
