package repository

import (
	"context"

	"isdn/internal/domain/entity"
	"isdn/internal/domain/policy"
	"isdn/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockOrderRepository is a mock implementation of repository.OrderRepository.
type MockOrderRepository struct {
	mock.Mock
}

func (m *MockOrderRepository) Create(ctx context.Context, order *entity.Order) error {
	args := m.Called(ctx, order)

	return args.Error(0)
}

func (m *MockOrderRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	args := m.Called(ctx, id)
	if order, ok := args.Get(0).(*entity.Order); ok {
		return order, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockOrderRepository) List(ctx context.Context, scope policy.ViewScope) ([]*entity.Order, error) {
	args := m.Called(ctx, scope)
	if orders, ok := args.Get(0).([]*entity.Order); ok {
		return orders, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockOrderRepository) UpdateStatus(ctx context.Context, id uuid.UUID, from, to entity.OrderStatus) error {
	args := m.Called(ctx, id, from, to)

	return args.Error(0)
}

func (m *MockOrderRepository) SalesStats(ctx context.Context) (*repository.SalesStats, error) {
	args := m.Called(ctx)
	if stats, ok := args.Get(0).(*repository.SalesStats); ok {
		return stats, args.Error(1)
	}

	return nil, args.Error(1)
}
