package sqldb

import (
	"context"
	"time"

	"isdn/internal/domain/entity"
	domainerrors "isdn/internal/domain/errors"
	"isdn/internal/domain/policy"
	"isdn/internal/domain/repository"
	"isdn/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// orderRepository implements the repository.OrderRepository interface.
type orderRepository struct {
	db *gorm.DB
}

// NewOrderRepository is the constructor for orderRepository.
func NewOrderRepository(db *gorm.DB) repository.OrderRepository {
	return &orderRepository{
		db: db,
	}
}

// Create persists an order together with all of its line items.
func (repo *orderRepository) Create(ctx context.Context, order *entity.Order) error {
	if order.ID == uuid.Nil {
		order.ID = uuid.New()
	}
	if order.CreatedAt.IsZero() {
		order.CreatedAt = time.Now()
	}
	for _, item := range order.Items {
		if item.ID == uuid.Nil {
			item.ID = uuid.New()
		}
		item.OrderID = order.ID
	}

	orderM := fromOrderDomain(order)

	if err := repo.db.WithContext(ctx).Create(orderM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrProductNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create order")
	}

	return nil
}

// FindByID retrieves an order with its items and customer name.
func (repo *orderRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	var orderM model.OrderModel

	if err := repo.db.WithContext(ctx).
		Preload("Items.Product").
		Preload("Customer").
		Where("id = ?", id).
		First(&orderM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to find order by ID")
	}

	return toOrderDomain(&orderM), nil
}

// List retrieves orders visible under the scope, most recent first.
func (repo *orderRepository) List(ctx context.Context, scope policy.ViewScope) ([]*entity.Order, error) {
	query := repo.db.WithContext(ctx).
		Preload("Items.Product").
		Preload("Customer").
		Order("order_date DESC")

	switch {
	case scope.All:
		// No narrowing.
	case scope.Region != "":
		query = query.Where("region = ?", scope.Region)
	default:
		query = query.Where("customer_id = ?", scope.CustomerID)
	}

	var orderModels []*model.OrderModel
	if err := query.Find(&orderModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list orders")
	}

	orders := make([]*entity.Order, 0, len(orderModels))
	for _, orderM := range orderModels {
		orders = append(orders, toOrderDomain(orderM))
	}

	return orders, nil
}

// UpdateStatus moves the order from an expected current status to the next
// one as a single conditional update, so a concurrent transition can never
// be silently overwritten.
func (repo *orderRepository) UpdateStatus(ctx context.Context, id uuid.UUID, from, to entity.OrderStatus) error {
	result := repo.db.WithContext(ctx).
		Model(&model.OrderModel{}).
		Where("id = ? AND status = ?", id, from).
		Update("status", to)

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update order status")
	}

	if result.RowsAffected == 0 {
		// Distinguish a missing order from a lost race.
		var count int64
		if err := repo.db.WithContext(ctx).
			Model(&model.OrderModel{}).
			Where("id = ?", id).
			Count(&count).Error; err != nil {
			return errors.Wrap(err, "failed to check order existence")
		}
		if count == 0 {
			return repository.ErrOrderNotFound
		}

		return repository.ErrStatusConflict
	}

	return nil
}

// SalesStats computes the dashboard aggregates in one pass over the orders
// table. Cancelled orders count toward the order total but not toward sales
// or pending deliveries.
func (repo *orderRepository) SalesStats(ctx context.Context) (*repository.SalesStats, error) {
	var row struct {
		TotalSales        float64
		TotalOrders       int64
		PendingDeliveries int64
	}

	if err := repo.db.WithContext(ctx).
		Model(&model.OrderModel{}).
		Select(
			"COALESCE(SUM(CASE WHEN status <> ? THEN total_amount ELSE 0 END), 0) AS total_sales, "+
				"COUNT(*) AS total_orders, "+
				"COALESCE(SUM(CASE WHEN status NOT IN (?, ?) THEN 1 ELSE 0 END), 0) AS pending_deliveries",
			entity.OrderStatusCancelled,
			entity.OrderStatusDelivered, entity.OrderStatusCancelled,
		).
		Scan(&row).Error; err != nil {
		return nil, errors.Wrap(err, "failed to compute sales stats")
	}

	return &repository.SalesStats{
		TotalSales:        row.TotalSales,
		TotalOrders:       row.TotalOrders,
		PendingDeliveries: row.PendingDeliveries,
	}, nil
}

// --- Mapper Functions ---

func toOrderDomain(data *model.OrderModel) *entity.Order {
	if data == nil {
		return nil
	}

	items := make([]*entity.OrderItem, 0, len(data.Items))
	for i := range data.Items {
		items = append(items, toOrderItemDomain(&data.Items[i]))
	}

	var customerName string
	if data.Customer != nil {
		customerName = data.Customer.Name
	}

	return &entity.Order{
		ID:           data.ID,
		CustomerID:   data.CustomerID,
		CustomerName: customerName,
		Region:       entity.Region(data.Region),
		TotalAmount:  data.TotalAmount,
		Status:       entity.OrderStatus(data.Status),
		Items:        items,
		CreatedAt:    data.OrderDate,
	}
}

func toOrderItemDomain(data *model.OrderItemModel) *entity.OrderItem {
	if data == nil {
		return nil
	}

	var productName string
	if data.Product != nil {
		productName = data.Product.Name
	}

	return &entity.OrderItem{
		ID:          data.ID,
		OrderID:     data.OrderID,
		ProductID:   data.ProductID,
		ProductName: productName,
		Quantity:    data.Quantity,
		Price:       data.Price,
	}
}

func fromOrderDomain(data *entity.Order) *model.OrderModel {
	if data == nil {
		return nil
	}

	items := make([]model.OrderItemModel, 0, len(data.Items))
	for _, item := range data.Items {
		items = append(items, model.OrderItemModel{
			ID:        item.ID,
			OrderID:   item.OrderID,
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			Price:     item.Price,
		})
	}

	return &model.OrderModel{
		ID:          data.ID,
		CustomerID:  data.CustomerID,
		OrderDate:   data.CreatedAt,
		TotalAmount: data.TotalAmount,
		Status:      string(data.Status),
		Region:      string(data.Region),
		Items:       items,
	}
}
