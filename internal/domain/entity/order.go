package entity

import (
	"time"

	"github.com/google/uuid"
)

// OrderStatus is the lifecycle state of an order. Transitions are monotonic
// forward; Delivered and Cancelled are terminal.
type OrderStatus string

const (
	OrderStatusPending        OrderStatus = "Pending"
	OrderStatusConfirmed      OrderStatus = "Confirmed"
	OrderStatusDispatched     OrderStatus = "Dispatched"
	OrderStatusOutForDelivery OrderStatus = "Out for Delivery"
	OrderStatusDelivered      OrderStatus = "Delivered"
	OrderStatusCancelled      OrderStatus = "Cancelled"
)

// orderTransitions is the full set of legal edges in the status graph.
// Cancellation is only reachable before dispatch.
var orderTransitions = map[OrderStatus][]OrderStatus{
	OrderStatusPending:        {OrderStatusConfirmed, OrderStatusCancelled},
	OrderStatusConfirmed:      {OrderStatusDispatched, OrderStatusCancelled},
	OrderStatusDispatched:     {OrderStatusOutForDelivery},
	OrderStatusOutForDelivery: {OrderStatusDelivered},
	OrderStatusDelivered:      {},
	OrderStatusCancelled:      {},
}

// String returns the string representation of the OrderStatus.
func (s OrderStatus) String() string {
	return string(s)
}

// IsValid checks if the OrderStatus is a valid value.
func (s OrderStatus) IsValid() bool {
	_, ok := orderTransitions[s]

	return ok
}

// IsTerminal reports whether no further transition is permitted.
func (s OrderStatus) IsTerminal() bool {
	return s == OrderStatusDelivered || s == OrderStatusCancelled
}

// CanTransitionTo reports whether next is a legal edge from s in the
// staff-driven workflow. States can never move backward or be skipped.
func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	for _, allowed := range orderTransitions[s] {
		if allowed == next {
			return true
		}
	}

	return false
}

// Order is a customer purchase placed against a single fulfillment region.
// TotalAmount always equals the sum of item price*quantity captured at
// creation time; it never changes when catalog prices do.
type Order struct {
	ID           uuid.UUID
	CustomerID   uuid.UUID
	CustomerName string // Joined from the customer record for display.
	Region       Region
	TotalAmount  float64
	Status       OrderStatus
	Items        []*OrderItem
	CreatedAt    time.Time
}

// OrderItem is a line item belonging to exactly one order. Price is the
// catalog unit price captured at order-creation time, not a live join.
type OrderItem struct {
	ID          uuid.UUID
	OrderID     uuid.UUID
	ProductID   uuid.UUID
	ProductName string
	Quantity    int
	Price       float64
}
