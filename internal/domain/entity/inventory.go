package entity

import (
	"time"

	"github.com/google/uuid"
)

// InventoryRecord is the per-(product, region) stock counter. At most one
// record exists per pair; absence of a record means zero stock. The stock
// level must never go negative.
type InventoryRecord struct {
	ID         uuid.UUID
	ProductID  uuid.UUID
	Region     Region
	StockLevel int
	UpdatedAt  time.Time
}
