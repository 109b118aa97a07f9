package sqldb

import (
	"context"
	"time"

	"isdn/internal/domain/entity"
	"isdn/internal/domain/repository"
	"isdn/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// inventoryRepository implements the repository.InventoryRepository interface.
// Debit and Credit are single conditional statements so concurrent callers
// are serialized by the database, never by application locks.
type inventoryRepository struct {
	db *gorm.DB
}

// NewInventoryRepository is the constructor for inventoryRepository.
func NewInventoryRepository(db *gorm.DB) repository.InventoryRepository {
	return &inventoryRepository{
		db: db,
	}
}

// GetStock returns the stock level for (product, region). A missing record
// reads as zero.
func (repo *inventoryRepository) GetStock(ctx context.Context, productID uuid.UUID, region entity.Region) (int, error) {
	var recordM model.InventoryModel

	if err := repo.db.WithContext(ctx).
		Where("product_id = ? AND location = ?", productID, region).
		First(&recordM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, nil
		}

		return 0, errors.Wrap(err, "failed to get stock level")
	}

	return recordM.StockLevel, nil
}

// SetStock upserts the (product, region) record to an absolute level.
func (repo *inventoryRepository) SetStock(ctx context.Context, productID uuid.UUID, region entity.Region, quantity int) error {
	recordM := &model.InventoryModel{
		ID:         uuid.New(),
		ProductID:  productID,
		Location:   string(region),
		StockLevel: quantity,
		UpdatedAt:  time.Now(),
	}

	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "product_id"}, {Name: "location"}},
			DoUpdates: clause.Assignments(map[string]any{
				"stock_level": quantity,
				"updated_at":  time.Now(),
			}),
		}).
		Create(recordM).Error; err != nil {
		return errors.Wrap(err, "failed to set stock level")
	}

	return nil
}

// Debit decreases stock by quantity in one conditional UPDATE. The guard
// 'stock_level >= quantity' makes over-selling impossible: of two racing
// debits against the last units, exactly one matches a row.
func (repo *inventoryRepository) Debit(ctx context.Context, productID uuid.UUID, region entity.Region, quantity int) error {
	result := repo.db.WithContext(ctx).
		Model(&model.InventoryModel{}).
		Where("product_id = ? AND location = ? AND stock_level >= ?", productID, region, quantity).
		Update("stock_level", gorm.Expr("stock_level - ?", quantity))

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to debit stock")
	}

	if result.RowsAffected == 0 {
		return repository.ErrInsufficientStock
	}

	return nil
}

// Credit increases stock by quantity, inserting the record when the
// (product, region) pair has never held stock before.
func (repo *inventoryRepository) Credit(ctx context.Context, productID uuid.UUID, region entity.Region, quantity int) error {
	recordM := &model.InventoryModel{
		ID:         uuid.New(),
		ProductID:  productID,
		Location:   string(region),
		StockLevel: quantity,
		UpdatedAt:  time.Now(),
	}

	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "product_id"}, {Name: "location"}},
			DoUpdates: clause.Assignments(map[string]any{
				"stock_level": gorm.Expr("stock_level + ?", quantity),
				"updated_at":  time.Now(),
			}),
		}).
		Create(recordM).Error; err != nil {
		return errors.Wrap(err, "failed to credit stock")
	}

	return nil
}

// AggregateStock sums stock across all regions for a product.
func (repo *inventoryRepository) AggregateStock(ctx context.Context, productID uuid.UUID) (int, error) {
	var total int64

	if err := repo.db.WithContext(ctx).
		Model(&model.InventoryModel{}).
		Where("product_id = ?", productID).
		Select("COALESCE(SUM(stock_level), 0)").
		Scan(&total).Error; err != nil {
		return 0, errors.Wrap(err, "failed to aggregate stock")
	}

	return int(total), nil
}

// StockLevels returns stock per product, filtered to one region or summed
// across all of them.
func (repo *inventoryRepository) StockLevels(ctx context.Context, region *entity.Region) (map[uuid.UUID]int, error) {
	type productStock struct {
		ProductID uuid.UUID
		Total     int64
	}

	query := repo.db.WithContext(ctx).
		Model(&model.InventoryModel{}).
		Select("product_id, COALESCE(SUM(stock_level), 0) AS total").
		Group("product_id")
	if region != nil {
		query = query.Where("location = ?", *region)
	}

	var rows []productStock
	if err := query.Scan(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to load stock levels")
	}

	levels := make(map[uuid.UUID]int, len(rows))
	for _, row := range rows {
		levels[row.ProductID] = int(row.Total)
	}

	return levels, nil
}

// LowStockCount counts inventory records strictly below the threshold.
func (repo *inventoryRepository) LowStockCount(ctx context.Context, threshold int) (int64, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.InventoryModel{}).
		Where("stock_level < ?", threshold).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count low stock records")
	}

	return count, nil
}
