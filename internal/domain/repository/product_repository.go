package repository

import (
	"context"
	"errors"

	"isdn/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrProductNotFound is returned when a product is not found.
var ErrProductNotFound = errors.New("product not found")

// ProductRepository defines the operations for catalog persistence.
type ProductRepository interface {
	// FindByID retrieves a single product by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Product, error)

	// List retrieves the entire catalog ordered by name.
	List(ctx context.Context) ([]*entity.Product, error)

	// Create persists a new product definition.
	Create(ctx context.Context, product *entity.Product) error
}
