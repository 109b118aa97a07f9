package repository

import (
	"context"

	"isdn/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockInventoryRepository is a mock implementation of repository.InventoryRepository.
type MockInventoryRepository struct {
	mock.Mock
}

func (m *MockInventoryRepository) GetStock(ctx context.Context, productID uuid.UUID, region entity.Region) (int, error) {
	args := m.Called(ctx, productID, region)

	return args.Int(0), args.Error(1)
}

func (m *MockInventoryRepository) SetStock(ctx context.Context, productID uuid.UUID, region entity.Region, quantity int) error {
	args := m.Called(ctx, productID, region, quantity)

	return args.Error(0)
}

func (m *MockInventoryRepository) Debit(ctx context.Context, productID uuid.UUID, region entity.Region, quantity int) error {
	args := m.Called(ctx, productID, region, quantity)

	return args.Error(0)
}

func (m *MockInventoryRepository) Credit(ctx context.Context, productID uuid.UUID, region entity.Region, quantity int) error {
	args := m.Called(ctx, productID, region, quantity)

	return args.Error(0)
}

func (m *MockInventoryRepository) AggregateStock(ctx context.Context, productID uuid.UUID) (int, error) {
	args := m.Called(ctx, productID)

	return args.Int(0), args.Error(1)
}

func (m *MockInventoryRepository) StockLevels(ctx context.Context, region *entity.Region) (map[uuid.UUID]int, error) {
	args := m.Called(ctx, region)
	if levels, ok := args.Get(0).(map[uuid.UUID]int); ok {
		return levels, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockInventoryRepository) LowStockCount(ctx context.Context, threshold int) (int64, error) {
	args := m.Called(ctx, threshold)

	return args.Get(0).(int64), args.Error(1)
}
