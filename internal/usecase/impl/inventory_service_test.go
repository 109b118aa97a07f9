package impl

import (
	"context"
	"testing"

	"isdn/internal/domain/entity"
	domainerrors "isdn/internal/domain/errors"
	"isdn/internal/domain/repository"
	mockRepo "isdn/internal/mocks/repository"
	"isdn/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newInventoryServiceForTest(productRepo *mockRepo.MockProductRepository, inventoryRepo *mockRepo.MockInventoryRepository) usecase.InventoryUsecase {
	return NewInventoryService(InventoryServiceParams{
		ProductRepo:   productRepo,
		InventoryRepo: inventoryRepo,
		Logger:        testLogger(),
	})
}

func TestInventoryService_SetStock_RDCStaffInOwnRegion(t *testing.T) {
	productRepo := new(mockRepo.MockProductRepository)
	inventoryRepo := new(mockRepo.MockInventoryRepository)
	service := newInventoryServiceForTest(productRepo, inventoryRepo)
	ctx := context.Background()

	productID := uuid.New()
	actor := usecase.Actor{UserID: uuid.New(), Role: entity.RoleRDCStaff, Region: entity.RegionCentral}

	productRepo.On("FindByID", ctx, productID).Return(&entity.Product{ID: productID}, nil)
	inventoryRepo.On("SetStock", ctx, productID, entity.RegionCentral, 50).Return(nil)

	err := service.SetStock(ctx, actor, usecase.SetStockInput{
		ProductID: productID,
		Region:    entity.RegionCentral,
		Quantity:  50,
	})
	require.NoError(t, err)
	inventoryRepo.AssertExpectations(t)
}

func TestInventoryService_SetStock_RDCStaffOtherRegionForbidden(t *testing.T) {
	service := newInventoryServiceForTest(new(mockRepo.MockProductRepository), new(mockRepo.MockInventoryRepository))
	actor := usecase.Actor{UserID: uuid.New(), Role: entity.RoleRDCStaff, Region: entity.RegionCentral}

	err := service.SetStock(context.Background(), actor, usecase.SetStockInput{
		ProductID: uuid.New(),
		Region:    entity.RegionNorth,
		Quantity:  50,
	})
	require.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestInventoryService_SetStock_CustomerForbidden(t *testing.T) {
	service := newInventoryServiceForTest(new(mockRepo.MockProductRepository), new(mockRepo.MockInventoryRepository))
	actor := usecase.Actor{UserID: uuid.New(), Role: entity.RoleCustomer, Region: entity.RegionCentral}

	err := service.SetStock(context.Background(), actor, usecase.SetStockInput{
		ProductID: uuid.New(),
		Region:    entity.RegionCentral,
		Quantity:  50,
	})
	require.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestInventoryService_SetStock_NegativeQuantity(t *testing.T) {
	service := newInventoryServiceForTest(new(mockRepo.MockProductRepository), new(mockRepo.MockInventoryRepository))
	actor := usecase.Actor{UserID: uuid.New(), Role: entity.RoleHeadOffice}

	err := service.SetStock(context.Background(), actor, usecase.SetStockInput{
		ProductID: uuid.New(),
		Region:    entity.RegionCentral,
		Quantity:  -1,
	})
	require.ErrorIs(t, err, domainerrors.ErrInvalidQuantity)
}

func TestInventoryService_SetStock_UnknownProduct(t *testing.T) {
	productRepo := new(mockRepo.MockProductRepository)
	inventoryRepo := new(mockRepo.MockInventoryRepository)
	service := newInventoryServiceForTest(productRepo, inventoryRepo)
	ctx := context.Background()

	productID := uuid.New()
	actor := usecase.Actor{UserID: uuid.New(), Role: entity.RoleHeadOffice}

	productRepo.On("FindByID", ctx, productID).Return(nil, repository.ErrProductNotFound)

	err := service.SetStock(ctx, actor, usecase.SetStockInput{
		ProductID: productID,
		Region:    entity.RegionCentral,
		Quantity:  10,
	})
	require.ErrorIs(t, err, domainerrors.ErrProductNotFound)
	inventoryRepo.AssertNotCalled(t, "SetStock", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestInventoryService_GetStock(t *testing.T) {
	inventoryRepo := new(mockRepo.MockInventoryRepository)
	service := newInventoryServiceForTest(new(mockRepo.MockProductRepository), inventoryRepo)
	ctx := context.Background()

	productID := uuid.New()
	inventoryRepo.On("GetStock", ctx, productID, entity.RegionWest).Return(7, nil)

	stock, err := service.GetStock(ctx, productID, entity.RegionWest)
	require.NoError(t, err)
	assert.Equal(t, 7, stock)
}
