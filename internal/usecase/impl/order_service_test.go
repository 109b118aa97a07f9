package impl

import (
	"context"
	"testing"

	"isdn/internal/domain/entity"
	domainerrors "isdn/internal/domain/errors"
	"isdn/internal/domain/repository"
	"isdn/internal/infra/metrics"
	mockRepo "isdn/internal/mocks/repository"
	"isdn/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type orderServiceFixture struct {
	service       usecase.OrderUsecase
	orderRepo     *mockRepo.MockOrderRepository
	productRepo   *mockRepo.MockProductRepository
	inventoryRepo *mockRepo.MockInventoryRepository
	deliveryRepo  *mockRepo.MockDeliveryRepository
	invoiceRepo   *mockRepo.MockInvoiceRepository
}

func newOrderServiceFixture() *orderServiceFixture {
	f := &orderServiceFixture{
		orderRepo:     new(mockRepo.MockOrderRepository),
		productRepo:   new(mockRepo.MockProductRepository),
		inventoryRepo: new(mockRepo.MockInventoryRepository),
		deliveryRepo:  new(mockRepo.MockDeliveryRepository),
		invoiceRepo:   new(mockRepo.MockInvoiceRepository),
	}

	txManager := &mockRepo.StubTransactionManager{
		Factory: &mockRepo.StubRepositoryFactory{
			ProductRepo:   f.productRepo,
			InventoryRepo: f.inventoryRepo,
			OrderRepo:     f.orderRepo,
			DeliveryRepo:  f.deliveryRepo,
			InvoiceRepo:   f.invoiceRepo,
		},
	}

	f.service = NewOrderService(OrderServiceParams{
		TxManager:   txManager,
		OrderRepo:   f.orderRepo,
		ProductRepo: f.productRepo,
		Metrics:     metrics.New(),
		Logger:      testLogger(),
	})

	return f
}

func customerActor(region entity.Region) usecase.Actor {
	return usecase.Actor{UserID: uuid.New(), Role: entity.RoleCustomer, Region: region}
}

func TestOrderService_CreateOrder_CapturesCatalogPrices(t *testing.T) {
	f := newOrderServiceFixture()
	ctx := context.Background()
	actor := customerActor(entity.RegionCentral)

	soap := &entity.Product{ID: uuid.New(), Name: "Sunlight Soap", Price: 150}
	noodles := &entity.Product{ID: uuid.New(), Name: "Maggie Noodles", Price: 120}

	f.productRepo.On("FindByID", ctx, soap.ID).Return(soap, nil)
	f.productRepo.On("FindByID", ctx, noodles.ID).Return(noodles, nil)
	f.inventoryRepo.On("Debit", ctx, soap.ID, entity.RegionCentral, 2).Return(nil)
	f.inventoryRepo.On("Debit", ctx, noodles.ID, entity.RegionCentral, 5).Return(nil)
	f.orderRepo.On("Create", ctx, mock.AnythingOfType("*entity.Order")).Return(nil)
	f.invoiceRepo.On("Create", ctx, mock.AnythingOfType("*entity.Invoice")).Return(nil)

	order, err := f.service.CreateOrder(ctx, actor, usecase.CreateOrderInput{
		Items: []usecase.NewOrderItem{
			{ProductID: soap.ID, Quantity: 2},
			{ProductID: noodles.ID, Quantity: 5},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusPending, order.Status)
	assert.Equal(t, actor.UserID, order.CustomerID)
	assert.InDelta(t, 2*150+5*120, order.TotalAmount, 0.001)
	require.Len(t, order.Items, 2)
	assert.InDelta(t, 150, order.Items[0].Price, 0.001)

	invoice := f.invoiceRepo.Calls[0].Arguments.Get(1).(*entity.Invoice)
	assert.InDelta(t, order.TotalAmount, invoice.Amount, 0.001)
	assert.Equal(t, entity.InvoiceStatusUnpaid, invoice.Status)
}

func TestOrderService_CreateOrder_EmptyOrder(t *testing.T) {
	f := newOrderServiceFixture()

	_, err := f.service.CreateOrder(context.Background(), customerActor(entity.RegionCentral), usecase.CreateOrderInput{})
	require.ErrorIs(t, err, domainerrors.ErrEmptyOrder)
}

func TestOrderService_CreateOrder_NonPositiveQuantity(t *testing.T) {
	f := newOrderServiceFixture()

	_, err := f.service.CreateOrder(context.Background(), customerActor(entity.RegionCentral), usecase.CreateOrderInput{
		Items: []usecase.NewOrderItem{{ProductID: uuid.New(), Quantity: 0}},
	})
	require.ErrorIs(t, err, domainerrors.ErrInvalidQuantity)
}

func TestOrderService_CreateOrder_InsufficientStock(t *testing.T) {
	f := newOrderServiceFixture()
	ctx := context.Background()
	actor := customerActor(entity.RegionCentral)

	soap := &entity.Product{ID: uuid.New(), Name: "Sunlight Soap", Price: 150}
	f.productRepo.On("FindByID", ctx, soap.ID).Return(soap, nil)
	f.inventoryRepo.On("Debit", ctx, soap.ID, entity.RegionCentral, 3).Return(repository.ErrInsufficientStock)

	_, err := f.service.CreateOrder(ctx, actor, usecase.CreateOrderInput{
		Items: []usecase.NewOrderItem{{ProductID: soap.ID, Quantity: 3}},
	})
	require.ErrorIs(t, err, domainerrors.ErrInsufficientStock)
	f.orderRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestOrderService_CreateOrder_UnknownProduct(t *testing.T) {
	f := newOrderServiceFixture()
	ctx := context.Background()
	productID := uuid.New()

	f.productRepo.On("FindByID", ctx, productID).Return(nil, repository.ErrProductNotFound)

	_, err := f.service.CreateOrder(ctx, customerActor(entity.RegionCentral), usecase.CreateOrderInput{
		Items: []usecase.NewOrderItem{{ProductID: productID, Quantity: 1}},
	})
	require.ErrorIs(t, err, domainerrors.ErrProductNotFound)
}

func TestOrderService_GetOrder_OutOfScopeReadsAsNotFound(t *testing.T) {
	f := newOrderServiceFixture()
	ctx := context.Background()
	actor := customerActor(entity.RegionCentral)

	order := &entity.Order{
		ID:         uuid.New(),
		CustomerID: uuid.New(), // Someone else's order.
		Region:     entity.RegionCentral,
		Status:     entity.OrderStatusPending,
	}
	f.orderRepo.On("FindByID", ctx, order.ID).Return(order, nil)

	_, err := f.service.GetOrder(ctx, actor, order.ID)
	require.ErrorIs(t, err, domainerrors.ErrOrderNotFound)
}

func TestOrderService_ListOrders_UsesActorScope(t *testing.T) {
	f := newOrderServiceFixture()
	ctx := context.Background()
	actor := usecase.Actor{UserID: uuid.New(), Role: entity.RoleRDCStaff, Region: entity.RegionNorth}

	f.orderRepo.On("List", ctx, mock.MatchedBy(func(scope interface{}) bool {
		return true
	})).Return([]*entity.Order{}, nil)

	orders, err := f.service.ListOrders(ctx, actor)
	require.NoError(t, err)
	assert.Empty(t, orders)
}

func TestOrderService_TransitionStatus_ConfirmByRDCStaff(t *testing.T) {
	f := newOrderServiceFixture()
	ctx := context.Background()
	actor := usecase.Actor{UserID: uuid.New(), Role: entity.RoleRDCStaff, Region: entity.RegionCentral}

	order := &entity.Order{
		ID:         uuid.New(),
		CustomerID: uuid.New(),
		Region:     entity.RegionCentral,
		Status:     entity.OrderStatusPending,
	}
	f.orderRepo.On("FindByID", ctx, order.ID).Return(order, nil)
	f.orderRepo.On("UpdateStatus", ctx, order.ID, entity.OrderStatusPending, entity.OrderStatusConfirmed).Return(nil)

	updated, err := f.service.TransitionStatus(ctx, actor, order.ID, entity.OrderStatusConfirmed)
	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusConfirmed, updated.Status)
}

func TestOrderService_TransitionStatus_IllegalEdgeForRole(t *testing.T) {
	f := newOrderServiceFixture()
	ctx := context.Background()
	// Logistics cannot confirm a pending order.
	actor := usecase.Actor{UserID: uuid.New(), Role: entity.RoleLogistics, Region: entity.RegionCentral}

	order := &entity.Order{
		ID:         uuid.New(),
		CustomerID: uuid.New(),
		Region:     entity.RegionCentral,
		Status:     entity.OrderStatusPending,
	}
	f.orderRepo.On("FindByID", ctx, order.ID).Return(order, nil)

	_, err := f.service.TransitionStatus(ctx, actor, order.ID, entity.OrderStatusConfirmed)
	require.ErrorIs(t, err, domainerrors.ErrIllegalTransition)
	f.orderRepo.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestOrderService_TransitionStatus_CustomerCannotTransition(t *testing.T) {
	f := newOrderServiceFixture()
	ctx := context.Background()
	actor := customerActor(entity.RegionCentral)

	order := &entity.Order{
		ID:         uuid.New(),
		CustomerID: actor.UserID,
		Region:     entity.RegionCentral,
		Status:     entity.OrderStatusPending,
	}
	f.orderRepo.On("FindByID", ctx, order.ID).Return(order, nil)

	_, err := f.service.TransitionStatus(ctx, actor, order.ID, entity.OrderStatusCancelled)
	require.ErrorIs(t, err, domainerrors.ErrIllegalTransition)
}

func TestOrderService_TransitionStatus_CancellationRestocksItems(t *testing.T) {
	f := newOrderServiceFixture()
	ctx := context.Background()
	actor := usecase.Actor{UserID: uuid.New(), Role: entity.RoleRDCStaff, Region: entity.RegionCentral}

	soapID := uuid.New()
	order := &entity.Order{
		ID:         uuid.New(),
		CustomerID: uuid.New(),
		Region:     entity.RegionCentral,
		Status:     entity.OrderStatusPending,
		Items: []*entity.OrderItem{
			{ProductID: soapID, Quantity: 4},
		},
	}
	f.orderRepo.On("FindByID", ctx, order.ID).Return(order, nil)
	f.orderRepo.On("UpdateStatus", ctx, order.ID, entity.OrderStatusPending, entity.OrderStatusCancelled).Return(nil)
	f.inventoryRepo.On("Credit", ctx, soapID, entity.RegionCentral, 4).Return(nil)

	_, err := f.service.TransitionStatus(ctx, actor, order.ID, entity.OrderStatusCancelled)
	require.NoError(t, err)
	f.inventoryRepo.AssertExpectations(t)
}

func TestOrderService_TransitionStatus_DispatchSchedulesDelivery(t *testing.T) {
	f := newOrderServiceFixture()
	ctx := context.Background()
	actor := usecase.Actor{UserID: uuid.New(), Role: entity.RoleRDCStaff, Region: entity.RegionCentral}

	order := &entity.Order{
		ID:         uuid.New(),
		CustomerID: uuid.New(),
		Region:     entity.RegionCentral,
		Status:     entity.OrderStatusConfirmed,
	}
	f.orderRepo.On("FindByID", ctx, order.ID).Return(order, nil)
	f.orderRepo.On("UpdateStatus", ctx, order.ID, entity.OrderStatusConfirmed, entity.OrderStatusDispatched).Return(nil)
	f.deliveryRepo.On("Create", ctx, mock.AnythingOfType("*entity.Delivery")).Return(nil)

	_, err := f.service.TransitionStatus(ctx, actor, order.ID, entity.OrderStatusDispatched)
	require.NoError(t, err)

	delivery := f.deliveryRepo.Calls[0].Arguments.Get(1).(*entity.Delivery)
	assert.Equal(t, order.ID, delivery.OrderID)
	assert.Equal(t, entity.DeliveryStatusScheduled, delivery.Status)
	assert.NotEmpty(t, delivery.TrackingID)
	assert.False(t, delivery.EstimatedDelivery.IsZero())
}

func TestOrderService_TransitionStatus_ConcurrentLoserGetsIllegalTransition(t *testing.T) {
	f := newOrderServiceFixture()
	ctx := context.Background()
	actor := usecase.Actor{UserID: uuid.New(), Role: entity.RoleHeadOffice}

	order := &entity.Order{
		ID:         uuid.New(),
		CustomerID: uuid.New(),
		Region:     entity.RegionCentral,
		Status:     entity.OrderStatusPending,
	}
	f.orderRepo.On("FindByID", ctx, order.ID).Return(order, nil)
	f.orderRepo.On("UpdateStatus", ctx, order.ID, entity.OrderStatusPending, entity.OrderStatusConfirmed).
		Return(repository.ErrStatusConflict)

	_, err := f.service.TransitionStatus(ctx, actor, order.ID, entity.OrderStatusConfirmed)
	require.ErrorIs(t, err, domainerrors.ErrIllegalTransition)
}

func TestOrderService_TransitionStatus_TerminalOrderIsImmutable(t *testing.T) {
	f := newOrderServiceFixture()
	ctx := context.Background()
	actor := usecase.Actor{UserID: uuid.New(), Role: entity.RoleHeadOffice}

	order := &entity.Order{
		ID:         uuid.New(),
		CustomerID: uuid.New(),
		Region:     entity.RegionCentral,
		Status:     entity.OrderStatusDelivered,
	}
	f.orderRepo.On("FindByID", ctx, order.ID).Return(order, nil)

	_, err := f.service.TransitionStatus(ctx, actor, order.ID, entity.OrderStatusCancelled)
	require.ErrorIs(t, err, domainerrors.ErrIllegalTransition)
}
