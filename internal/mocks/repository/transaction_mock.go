package repository

import (
	"context"

	"isdn/internal/domain/repository"
)

// StubRepositoryFactory hands out pre-wired repository mocks, standing in
// for a transaction-bound factory.
type StubRepositoryFactory struct {
	UserRepo      repository.UserRepository
	ProductRepo   repository.ProductRepository
	InventoryRepo repository.InventoryRepository
	OrderRepo     repository.OrderRepository
	DeliveryRepo  repository.DeliveryRepository
	InvoiceRepo   repository.InvoiceRepository
}

func (f *StubRepositoryFactory) NewUserRepository() repository.UserRepository {
	return f.UserRepo
}

func (f *StubRepositoryFactory) NewProductRepository() repository.ProductRepository {
	return f.ProductRepo
}

func (f *StubRepositoryFactory) NewInventoryRepository() repository.InventoryRepository {
	return f.InventoryRepo
}

func (f *StubRepositoryFactory) NewOrderRepository() repository.OrderRepository {
	return f.OrderRepo
}

func (f *StubRepositoryFactory) NewDeliveryRepository() repository.DeliveryRepository {
	return f.DeliveryRepo
}

func (f *StubRepositoryFactory) NewInvoiceRepository() repository.InvoiceRepository {
	return f.InvoiceRepo
}

// StubTransactionManager runs the callback against the stub factory without
// any real transaction, so unit tests observe exactly what the use case did.
type StubTransactionManager struct {
	Factory *StubRepositoryFactory

	// BeginErr, when set, is returned without invoking the callback.
	BeginErr error
}

func (m *StubTransactionManager) Execute(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
	if m.BeginErr != nil {
		return m.BeginErr
	}

	return fn(m.Factory)
}
