package model

import (
	"time"

	"github.com/google/uuid"
)

// InvoiceModel mirrors the 'invoices' table.
type InvoiceModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID     uuid.UUID `gorm:"type:uuid;not null;index"`
	Amount      float64   `gorm:"not null"`
	InvoiceDate time.Time `gorm:"not null"`
	Status      string    `gorm:"type:varchar(16);not null"`
}

// TableName explicitly sets the table name for GORM.
func (InvoiceModel) TableName() string {
	return "invoices"
}
