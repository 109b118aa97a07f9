package repository

import (
	"context"

	"isdn/internal/domain/entity"
)

// InvoiceRepository persists invoices raised for orders.
type InvoiceRepository interface {
	// Create persists a new invoice.
	Create(ctx context.Context, invoice *entity.Invoice) error
}
