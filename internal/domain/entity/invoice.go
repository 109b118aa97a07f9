package entity

import (
	"time"

	"github.com/google/uuid"
)

// InvoiceStatus is the payment state of an invoice.
type InvoiceStatus string

const (
	InvoiceStatusUnpaid InvoiceStatus = "Unpaid"
	InvoiceStatusPaid   InvoiceStatus = "Paid"
	InvoiceStatusVoid   InvoiceStatus = "Void"
)

// Invoice is raised together with its order; the amount mirrors the order
// total captured at creation time.
type Invoice struct {
	ID          uuid.UUID
	OrderID     uuid.UUID
	Amount      float64
	InvoiceDate time.Time
	Status      InvoiceStatus
}
