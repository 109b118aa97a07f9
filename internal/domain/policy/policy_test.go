package policy

import (
	"testing"

	"isdn/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestCanTransition_RoleMatrix(t *testing.T) {
	tests := []struct {
		name string
		role entity.Role
		from entity.OrderStatus
		to   entity.OrderStatus
		want bool
	}{
		{"rdc confirms pending", entity.RoleRDCStaff, entity.OrderStatusPending, entity.OrderStatusConfirmed, true},
		{"rdc dispatches confirmed", entity.RoleRDCStaff, entity.OrderStatusConfirmed, entity.OrderStatusDispatched, true},
		{"rdc cannot deliver", entity.RoleRDCStaff, entity.OrderStatusOutForDelivery, entity.OrderStatusDelivered, false},
		{"rdc cancels pending", entity.RoleRDCStaff, entity.OrderStatusPending, entity.OrderStatusCancelled, true},
		{"logistics moves dispatched out", entity.RoleLogistics, entity.OrderStatusDispatched, entity.OrderStatusOutForDelivery, true},
		{"logistics delivers", entity.RoleLogistics, entity.OrderStatusOutForDelivery, entity.OrderStatusDelivered, true},
		{"logistics cannot confirm", entity.RoleLogistics, entity.OrderStatusPending, entity.OrderStatusConfirmed, false},
		{"logistics cancels confirmed", entity.RoleLogistics, entity.OrderStatusConfirmed, entity.OrderStatusCancelled, true},
		{"head office any legal edge", entity.RoleHeadOffice, entity.OrderStatusDispatched, entity.OrderStatusOutForDelivery, true},
		{"head office bound by graph", entity.RoleHeadOffice, entity.OrderStatusPending, entity.OrderStatusDispatched, false},
		{"head office cannot cancel dispatched", entity.RoleHeadOffice, entity.OrderStatusDispatched, entity.OrderStatusCancelled, false},
		{"customer cannot transition", entity.RoleCustomer, entity.OrderStatusPending, entity.OrderStatusConfirmed, false},
		{"nobody mutates delivered", entity.RoleHeadOffice, entity.OrderStatusDelivered, entity.OrderStatusCancelled, false},
		{"nobody mutates cancelled", entity.RoleHeadOffice, entity.OrderStatusCancelled, entity.OrderStatusPending, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CanTransition(tt.role, tt.from, tt.to))
		})
	}
}

func TestViewScopeFor(t *testing.T) {
	userID := uuid.New()

	headOffice := ViewScopeFor(entity.RoleHeadOffice, userID, "")
	assert.True(t, headOffice.All)

	rdc := ViewScopeFor(entity.RoleRDCStaff, userID, entity.RegionNorth)
	assert.False(t, rdc.All)
	assert.Equal(t, entity.RegionNorth, rdc.Region)

	customer := ViewScopeFor(entity.RoleCustomer, userID, entity.RegionSouth)
	assert.False(t, customer.All)
	assert.Equal(t, userID, customer.CustomerID)
	assert.Empty(t, customer.Region)
}

func TestViewScope_Allows(t *testing.T) {
	customerID := uuid.New()
	order := &entity.Order{CustomerID: customerID, Region: entity.RegionEast}

	assert.True(t, ViewScope{All: true}.Allows(order))
	assert.True(t, ViewScope{Region: entity.RegionEast}.Allows(order))
	assert.False(t, ViewScope{Region: entity.RegionWest}.Allows(order))
	assert.True(t, ViewScope{CustomerID: customerID}.Allows(order))
	assert.False(t, ViewScope{CustomerID: uuid.New()}.Allows(order))
}

func TestCanWriteStock(t *testing.T) {
	assert.True(t, CanWriteStock(entity.RoleHeadOffice, "", entity.RegionWest))
	assert.True(t, CanWriteStock(entity.RoleRDCStaff, entity.RegionWest, entity.RegionWest))
	assert.False(t, CanWriteStock(entity.RoleRDCStaff, entity.RegionWest, entity.RegionEast))
	assert.False(t, CanWriteStock(entity.RoleLogistics, entity.RegionWest, entity.RegionWest))
	assert.False(t, CanWriteStock(entity.RoleCustomer, entity.RegionWest, entity.RegionWest))
}
