package model

import (
	"time"

	"github.com/google/uuid"
)

// InventoryModel mirrors the 'inventory' table: one row per
// (product, location). The unique index is what makes the credit upsert safe.
type InventoryModel struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	ProductID  uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_inventory_product_location"`
	Location   string    `gorm:"type:varchar(16);not null;uniqueIndex:idx_inventory_product_location"`
	StockLevel int       `gorm:"not null;default:0"`
	UpdatedAt  time.Time

	Product *ProductModel `gorm:"foreignKey:ProductID"`
}

// TableName explicitly sets the table name for GORM.
func (InventoryModel) TableName() string {
	return "inventory"
}
