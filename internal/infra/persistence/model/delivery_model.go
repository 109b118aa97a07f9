package model

import (
	"time"

	"github.com/google/uuid"
)

// DeliveryModel mirrors the 'deliveries' table.
type DeliveryModel struct {
	ID                uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID           uuid.UUID `gorm:"type:uuid;not null;index"`
	VehicleNo         string    `gorm:"type:varchar(32)"`
	TrackingID        string    `gorm:"type:varchar(32);not null"`
	EstimatedDelivery time.Time
	DeliveryDate      *time.Time
	Status            string `gorm:"type:varchar(32);not null"`
}

// TableName explicitly sets the table name for GORM.
func (DeliveryModel) TableName() string {
	return "deliveries"
}
