package entity

import (
	"time"

	"github.com/google/uuid"
)

// DeliveryStatus tracks the physical shipment of a dispatched order.
type DeliveryStatus string

const (
	DeliveryStatusScheduled DeliveryStatus = "Scheduled"
	DeliveryStatusCompleted DeliveryStatus = "Completed"
)

// Delivery is created when an order is dispatched and carries the tracking
// reference shown to the customer.
type Delivery struct {
	ID                uuid.UUID
	OrderID           uuid.UUID
	VehicleNo         string
	TrackingID        string
	EstimatedDelivery time.Time
	DeliveryDate      *time.Time // Set once the order is delivered.
	Status            DeliveryStatus
}
