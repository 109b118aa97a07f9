package entity

import (
	"time"

	"github.com/google/uuid"
)

// Product is a catalog definition, independent of regional stock.
// Products are never deleted while referenced by inventory or order items.
type Product struct {
	ID        uuid.UUID
	Name      string
	Category  Category
	Price     float64 // Current catalog unit price; order items capture it at purchase time.
	Image     string
	CreatedAt time.Time
	UpdatedAt time.Time
}
