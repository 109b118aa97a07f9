package model

import (
	"time"

	"github.com/google/uuid"
)

// ProductModel mirrors the 'products' table. Stock lives in 'inventory',
// never here.
type ProductModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name      string    `gorm:"type:varchar(100);not null"`
	Category  string    `gorm:"type:varchar(32);not null"`
	Price     float64   `gorm:"not null"`
	Image     string    `gorm:"type:varchar(255)"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (ProductModel) TableName() string {
	return "products"
}
