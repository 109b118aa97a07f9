// Package policy is the single authorization rule set for the system.
// The API layer and the order lifecycle engine both consult it, so role
// checks are never duplicated in handlers or view code.
package policy

import (
	"isdn/internal/domain/entity"

	"github.com/google/uuid"
)

// CanTransition reports whether actor's role may move an order from one
// status to another. The state graph is the outer bound: an edge illegal in
// the workflow is denied for every role. Within the graph, RDC staff confirm
// and dispatch, logistics take over from dispatch to delivery, and either may
// cancel while cancellation is still reachable. Head office may perform any
// legal edge.
func CanTransition(role entity.Role, from, to entity.OrderStatus) bool {
	if !from.CanTransitionTo(to) {
		return false
	}

	switch role {
	case entity.RoleHeadOffice:
		return true
	case entity.RoleRDCStaff:
		return (from == entity.OrderStatusPending && to == entity.OrderStatusConfirmed) ||
			(from == entity.OrderStatusConfirmed && to == entity.OrderStatusDispatched) ||
			to == entity.OrderStatusCancelled
	case entity.RoleLogistics:
		return (from == entity.OrderStatusDispatched && to == entity.OrderStatusOutForDelivery) ||
			(from == entity.OrderStatusOutForDelivery && to == entity.OrderStatusDelivered) ||
			to == entity.OrderStatusCancelled
	default:
		return false
	}
}

// ViewScope restricts which orders a caller may read. Exactly one of the
// three narrowing fields applies: customers see their own orders, regional
// staff their region's, head office everything.
type ViewScope struct {
	All        bool
	CustomerID uuid.UUID     // Set for customers.
	Region     entity.Region // Set for regional staff.
}

// ViewScopeFor derives the order visibility scope for an authenticated actor.
func ViewScopeFor(role entity.Role, userID uuid.UUID, region entity.Region) ViewScope {
	switch role {
	case entity.RoleHeadOffice:
		return ViewScope{All: true}
	case entity.RoleRDCStaff, entity.RoleLogistics:
		return ViewScope{Region: region}
	default:
		return ViewScope{CustomerID: userID}
	}
}

// Allows reports whether an order is visible under the scope.
func (s ViewScope) Allows(order *entity.Order) bool {
	if s.All {
		return true
	}
	if s.Region != "" {
		return order.Region == s.Region
	}

	return order.CustomerID == s.CustomerID
}

// CanWriteStock reports whether actor's role may set stock for a region.
// Head office writes anywhere; RDC staff only within their own region.
func CanWriteStock(role entity.Role, actorRegion, target entity.Region) bool {
	switch role {
	case entity.RoleHeadOffice:
		return true
	case entity.RoleRDCStaff:
		return actorRegion == target
	default:
		return false
	}
}
