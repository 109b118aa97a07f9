package repository

import (
	"context"

	"isdn/internal/domain/entity"

	"github.com/stretchr/testify/mock"
)

// MockDeliveryRepository is a mock implementation of repository.DeliveryRepository.
type MockDeliveryRepository struct {
	mock.Mock
}

func (m *MockDeliveryRepository) Create(ctx context.Context, delivery *entity.Delivery) error {
	args := m.Called(ctx, delivery)

	return args.Error(0)
}

// MockInvoiceRepository is a mock implementation of repository.InvoiceRepository.
type MockInvoiceRepository struct {
	mock.Mock
}

func (m *MockInvoiceRepository) Create(ctx context.Context, invoice *entity.Invoice) error {
	args := m.Called(ctx, invoice)

	return args.Error(0)
}
