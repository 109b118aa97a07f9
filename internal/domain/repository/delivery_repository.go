package repository

import (
	"context"

	"isdn/internal/domain/entity"
)

// DeliveryRepository persists shipment records for dispatched orders.
type DeliveryRepository interface {
	// Create persists a new delivery record.
	Create(ctx context.Context, delivery *entity.Delivery) error
}
