package sqldb

import (
	"context"

	"isdn/internal/domain/entity"
	domainerrors "isdn/internal/domain/errors"
	"isdn/internal/domain/repository"
	"isdn/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// deliveryRepository implements the repository.DeliveryRepository interface.
type deliveryRepository struct {
	db *gorm.DB
}

// NewDeliveryRepository is the constructor for deliveryRepository.
func NewDeliveryRepository(db *gorm.DB) repository.DeliveryRepository {
	return &deliveryRepository{
		db: db,
	}
}

// Create persists a new delivery record.
func (repo *deliveryRepository) Create(ctx context.Context, delivery *entity.Delivery) error {
	if delivery.ID == uuid.Nil {
		delivery.ID = uuid.New()
	}

	deliveryM := &model.DeliveryModel{
		ID:                delivery.ID,
		OrderID:           delivery.OrderID,
		VehicleNo:         delivery.VehicleNo,
		TrackingID:        delivery.TrackingID,
		EstimatedDelivery: delivery.EstimatedDelivery,
		DeliveryDate:      delivery.DeliveryDate,
		Status:            string(delivery.Status),
	}

	if err := repo.db.WithContext(ctx).Create(deliveryM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create delivery")
	}

	return nil
}
