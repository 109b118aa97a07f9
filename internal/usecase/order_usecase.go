package usecase

import (
	"context"

	"isdn/internal/domain/entity"

	"github.com/google/uuid"
)

// Actor is the authenticated identity performing an operation, as carried
// by the access token.
type Actor struct {
	UserID uuid.UUID
	Role   entity.Role
	Region entity.Region // Empty for head-office staff.
}

// NewOrderItem is one requested line of a new order. The price is always
// taken from the catalog, never from the caller.
type NewOrderItem struct {
	ProductID uuid.UUID
	Quantity  int
}

// CreateOrderInput defines the data required to place an order.
type CreateOrderInput struct {
	Items []NewOrderItem
}

// OrderUsecase defines the interface for order lifecycle operations.
type OrderUsecase interface {
	// CreateOrder places an order for the actor's region: every line item is
	// validated, priced from the catalog and debited from regional stock in
	// one transaction. Nothing is persisted if any debit fails.
	CreateOrder(ctx context.Context, actor Actor, input CreateOrderInput) (*entity.Order, error)

	// GetOrder returns one order if the actor's view scope allows it.
	GetOrder(ctx context.Context, actor Actor, id uuid.UUID) (*entity.Order, error)

	// ListOrders returns the orders visible to the actor, most recent first.
	ListOrders(ctx context.Context, actor Actor) ([]*entity.Order, error)

	// TransitionStatus advances an order along the lifecycle graph if the
	// actor's role permits that edge. Cancellation restocks the order's
	// items; dispatch schedules a delivery.
	TransitionStatus(ctx context.Context, actor Actor, id uuid.UUID, next entity.OrderStatus) (*entity.Order, error)
}
