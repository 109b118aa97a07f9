package sqldb

import (
	"context"
	"time"

	"isdn/internal/domain/entity"
	domainerrors "isdn/internal/domain/errors"
	"isdn/internal/domain/repository"
	"isdn/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// invoiceRepository implements the repository.InvoiceRepository interface.
type invoiceRepository struct {
	db *gorm.DB
}

// NewInvoiceRepository is the constructor for invoiceRepository.
func NewInvoiceRepository(db *gorm.DB) repository.InvoiceRepository {
	return &invoiceRepository{
		db: db,
	}
}

// Create persists a new invoice.
func (repo *invoiceRepository) Create(ctx context.Context, invoice *entity.Invoice) error {
	if invoice.ID == uuid.Nil {
		invoice.ID = uuid.New()
	}
	if invoice.InvoiceDate.IsZero() {
		invoice.InvoiceDate = time.Now()
	}

	invoiceM := &model.InvoiceModel{
		ID:          invoice.ID,
		OrderID:     invoice.OrderID,
		Amount:      invoice.Amount,
		InvoiceDate: invoice.InvoiceDate,
		Status:      string(invoice.Status),
	}

	if err := repo.db.WithContext(ctx).Create(invoiceM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create invoice")
	}

	return nil
}
