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

type catalogServiceFixture struct {
	service       usecase.CatalogUsecase
	productRepo   *mockRepo.MockProductRepository
	inventoryRepo *mockRepo.MockInventoryRepository
}

func newCatalogServiceFixture() *catalogServiceFixture {
	f := &catalogServiceFixture{
		productRepo:   new(mockRepo.MockProductRepository),
		inventoryRepo: new(mockRepo.MockInventoryRepository),
	}

	txManager := &mockRepo.StubTransactionManager{
		Factory: &mockRepo.StubRepositoryFactory{
			ProductRepo:   f.productRepo,
			InventoryRepo: f.inventoryRepo,
		},
	}

	f.service = NewCatalogService(CatalogServiceParams{
		TxManager:     txManager,
		ProductRepo:   f.productRepo,
		InventoryRepo: f.inventoryRepo,
		Logger:        testLogger(),
	})

	return f
}

func TestCatalogService_ListProducts_MergesRegionalStock(t *testing.T) {
	f := newCatalogServiceFixture()
	ctx := context.Background()

	soap := &entity.Product{ID: uuid.New(), Name: "Sunlight Soap", Price: 150}
	noodles := &entity.Product{ID: uuid.New(), Name: "Maggie Noodles", Price: 120}
	region := entity.RegionCentral

	f.productRepo.On("List", ctx).Return([]*entity.Product{soap, noodles}, nil)
	f.inventoryRepo.On("StockLevels", ctx, &region).Return(map[uuid.UUID]int{soap.ID: 12}, nil)

	result, err := f.service.ListProducts(ctx, &region)
	require.NoError(t, err)
	require.Len(t, result, 2)
	assert.Equal(t, 12, result[0].Stock)
	// No inventory record reads as zero stock.
	assert.Equal(t, 0, result[1].Stock)
}

func TestCatalogService_GetProduct_AggregateForHeadOffice(t *testing.T) {
	f := newCatalogServiceFixture()
	ctx := context.Background()

	soap := &entity.Product{ID: uuid.New(), Name: "Sunlight Soap", Price: 150}
	f.productRepo.On("FindByID", ctx, soap.ID).Return(soap, nil)
	f.inventoryRepo.On("AggregateStock", ctx, soap.ID).Return(57, nil)

	result, err := f.service.GetProduct(ctx, soap.ID, nil)
	require.NoError(t, err)
	assert.Equal(t, 57, result.Stock)
}

func TestCatalogService_GetProduct_NotFound(t *testing.T) {
	f := newCatalogServiceFixture()
	ctx := context.Background()
	productID := uuid.New()

	f.productRepo.On("FindByID", ctx, productID).Return(nil, repository.ErrProductNotFound)

	_, err := f.service.GetProduct(ctx, productID, nil)
	require.ErrorIs(t, err, domainerrors.ErrProductNotFound)
}

func TestCatalogService_CreateProduct_SeedsInitialStockEverywhere(t *testing.T) {
	f := newCatalogServiceFixture()
	ctx := context.Background()

	f.productRepo.On("Create", ctx, mock.AnythingOfType("*entity.Product")).
		Run(func(args mock.Arguments) {
			product := args.Get(1).(*entity.Product)
			product.ID = uuid.New()
		}).
		Return(nil)
	f.inventoryRepo.On("SetStock", ctx, mock.AnythingOfType("uuid.UUID"), mock.AnythingOfType("entity.Region"), 30).
		Return(nil).Times(len(entity.AllRegions()))

	product, err := f.service.CreateProduct(ctx, usecase.CreateProductInput{
		Name:         "Lifebuoy Soap",
		Category:     entity.CategoryPersonalCare,
		Price:        180,
		InitialStock: 30,
	})
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, product.ID)
	f.inventoryRepo.AssertExpectations(t)
}

func TestCatalogService_CreateProduct_NoStockWriteWhenZero(t *testing.T) {
	f := newCatalogServiceFixture()
	ctx := context.Background()

	f.productRepo.On("Create", ctx, mock.AnythingOfType("*entity.Product")).Return(nil)

	_, err := f.service.CreateProduct(ctx, usecase.CreateProductInput{
		Name:     "Lifebuoy Soap",
		Category: entity.CategoryPersonalCare,
		Price:    180,
	})
	require.NoError(t, err)
	f.inventoryRepo.AssertNotCalled(t, "SetStock", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestCatalogService_CreateProduct_RejectsBadInput(t *testing.T) {
	f := newCatalogServiceFixture()
	ctx := context.Background()

	_, err := f.service.CreateProduct(ctx, usecase.CreateProductInput{
		Name:     "Mystery Item",
		Category: entity.Category("Contraband"),
		Price:    10,
	})
	require.ErrorIs(t, err, domainerrors.ErrValidationFailed)

	_, err = f.service.CreateProduct(ctx, usecase.CreateProductInput{
		Name:     "Lifebuoy Soap",
		Category: entity.CategoryPersonalCare,
		Price:    -1,
	})
	require.ErrorIs(t, err, domainerrors.ErrValidationFailed)

	_, err = f.service.CreateProduct(ctx, usecase.CreateProductInput{
		Name:         "Lifebuoy Soap",
		Category:     entity.CategoryPersonalCare,
		Price:        180,
		InitialStock: -5,
	})
	require.ErrorIs(t, err, domainerrors.ErrInvalidQuantity)
}
