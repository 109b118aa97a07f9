package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	deliverycontext "isdn/internal/delivery/context"
	"isdn/internal/domain/entity"
	domainerrors "isdn/internal/domain/errors"
	"isdn/internal/domain/policy"
	"isdn/internal/domain/repository"
	"isdn/internal/infra/metrics"
	"isdn/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// deliveryLeadTime is the window quoted to customers when an order is dispatched.
const deliveryLeadTime = 72 * time.Hour

// orderService implements the OrderUsecase interface. Order creation and
// cancellation mutate the inventory ledger, so both run inside a single
// transaction: either every debit/credit and the order write land, or none do.
type orderService struct {
	txManager   repository.TransactionManager
	orderRepo   repository.OrderRepository
	productRepo repository.ProductRepository
	metrics     *metrics.Metrics
	logger      *slog.Logger
}

// OrderServiceParams holds dependencies for orderService, injected by Fx.
type OrderServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	OrderRepo   repository.OrderRepository
	ProductRepo repository.ProductRepository
	Metrics     *metrics.Metrics
	Logger      *slog.Logger
}

// NewOrderService is the constructor for orderService.
func NewOrderService(params OrderServiceParams) usecase.OrderUsecase {
	return &orderService{
		txManager:   params.TxManager,
		orderRepo:   params.OrderRepo,
		productRepo: params.ProductRepo,
		metrics:     params.Metrics,
		logger:      params.Logger,
	}
}

func (srv *orderService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateOrder places an order for the actor's region. Prices are captured
// from the catalog at this moment; the caller never supplies them. Each line
// item debits regional stock inside the same transaction as the order
// insert, so an insufficient-stock failure on any line leaves nothing behind.
func (srv *orderService) CreateOrder(ctx context.Context, actor usecase.Actor, input usecase.CreateOrderInput) (*entity.Order, error) {
	if len(input.Items) == 0 {
		return nil, domainerrors.ErrEmptyOrder
	}
	for _, item := range input.Items {
		if item.Quantity <= 0 {
			return nil, domainerrors.ErrInvalidQuantity.WrapMessage("order quantities must be positive")
		}
	}
	if !actor.Region.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("actor has no fulfillment region")
	}

	order := &entity.Order{
		CustomerID: actor.UserID,
		Region:     actor.Region,
		Status:     entity.OrderStatusPending,
		CreatedAt:  time.Now(),
	}

	err := srv.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		productRepo := factory.NewProductRepository()
		inventoryRepo := factory.NewInventoryRepository()

		var total float64
		for _, line := range input.Items {
			product, err := productRepo.FindByID(ctx, line.ProductID)
			if err != nil {
				if errors.Is(err, repository.ErrProductNotFound) {
					return domainerrors.ErrProductNotFound.WrapMessage("order references an unknown product")
				}

				return errors.Wrap(err, "failed to load product")
			}

			if err := inventoryRepo.Debit(ctx, product.ID, actor.Region, line.Quantity); err != nil {
				if errors.Is(err, repository.ErrInsufficientStock) {
					srv.metrics.InsufficientStockHits.Inc()

					return domainerrors.ErrInsufficientStock.WrapMessage(product.Name)
				}

				return errors.Wrap(err, "failed to debit stock")
			}
			srv.metrics.StockDebits.Inc()

			order.Items = append(order.Items, &entity.OrderItem{
				ProductID:   product.ID,
				ProductName: product.Name,
				Quantity:    line.Quantity,
				Price:       product.Price,
			})
			total += product.Price * float64(line.Quantity)
		}
		order.TotalAmount = total

		if err := factory.NewOrderRepository().Create(ctx, order); err != nil {
			return errors.Wrap(err, "failed to create order")
		}

		invoice := &entity.Invoice{
			OrderID:     order.ID,
			Amount:      order.TotalAmount,
			InvoiceDate: order.CreatedAt,
			Status:      entity.InvoiceStatusUnpaid,
		}

		return factory.NewInvoiceRepository().Create(ctx, invoice)
	})
	if err != nil {
		srv.log(ctx).Warn("Order creation failed",
			slog.Any("customerID", actor.UserID),
			slog.String("region", actor.Region.String()),
			slog.Any("error", err),
		)

		return nil, err
	}

	srv.metrics.OrdersCreated.Inc()
	srv.log(ctx).Info("Order created",
		slog.Any("orderID", order.ID),
		slog.Any("customerID", actor.UserID),
		slog.String("region", actor.Region.String()),
		slog.Float64("total", order.TotalAmount),
	)

	return order, nil
}

// GetOrder returns one order if the actor's view scope allows it. Orders
// outside the scope read as not found rather than forbidden, so customers
// cannot probe for other customers' order IDs.
func (srv *orderService) GetOrder(ctx context.Context, actor usecase.Actor, id uuid.UUID) (*entity.Order, error) {
	order, err := srv.orderRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return nil, domainerrors.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to find order")
	}

	scope := policy.ViewScopeFor(actor.Role, actor.UserID, actor.Region)
	if !scope.Allows(order) {
		return nil, domainerrors.ErrOrderNotFound
	}

	return order, nil
}

// ListOrders returns the orders visible to the actor, most recent first.
func (srv *orderService) ListOrders(ctx context.Context, actor usecase.Actor) ([]*entity.Order, error) {
	scope := policy.ViewScopeFor(actor.Role, actor.UserID, actor.Region)

	orders, err := srv.orderRepo.List(ctx, scope)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list orders")
	}

	return orders, nil
}

// TransitionStatus advances an order along the lifecycle graph. The status
// write is conditional on the expected current status, so two concurrent
// transitions can never both win. Cancellation credits every line item back
// to the order's region; dispatch schedules a delivery with a tracking ID.
func (srv *orderService) TransitionStatus(ctx context.Context, actor usecase.Actor, id uuid.UUID, next entity.OrderStatus) (*entity.Order, error) {
	if !next.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("unknown order status")
	}

	order, err := srv.GetOrder(ctx, actor, id)
	if err != nil {
		return nil, err
	}

	if !policy.CanTransition(actor.Role, order.Status, next) {
		return nil, domainerrors.ErrIllegalTransition.WrapMessage(
			order.Status.String() + " to " + next.String(),
		)
	}

	err = srv.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		if err := factory.NewOrderRepository().UpdateStatus(ctx, id, order.Status, next); err != nil {
			if errors.Is(err, repository.ErrStatusConflict) {
				return domainerrors.ErrIllegalTransition.WrapMessage("order status changed concurrently")
			}
			if errors.Is(err, repository.ErrOrderNotFound) {
				return domainerrors.ErrOrderNotFound
			}

			return errors.Wrap(err, "failed to update order status")
		}

		switch next {
		case entity.OrderStatusCancelled:
			return srv.restockCancelledOrder(ctx, factory, order)
		case entity.OrderStatusDispatched:
			return srv.scheduleDelivery(ctx, factory, order)
		default:
			return nil
		}
	})
	if err != nil {
		return nil, err
	}

	if next == entity.OrderStatusCancelled {
		srv.metrics.OrdersCancelled.Inc()
	}
	srv.log(ctx).Info("Order status updated",
		slog.Any("orderID", id),
		slog.String("from", order.Status.String()),
		slog.String("to", next.String()),
		slog.String("by", actor.Role.String()),
	)

	order.Status = next

	return order, nil
}

// restockCancelledOrder credits every line item back to the order's region.
func (srv *orderService) restockCancelledOrder(ctx context.Context, factory repository.RepositoryFactory, order *entity.Order) error {
	inventoryRepo := factory.NewInventoryRepository()
	for _, item := range order.Items {
		if err := inventoryRepo.Credit(ctx, item.ProductID, order.Region, item.Quantity); err != nil {
			return errors.Wrap(err, "failed to restock cancelled order")
		}
	}

	return nil
}

// scheduleDelivery creates the shipment record shown to the customer.
func (srv *orderService) scheduleDelivery(ctx context.Context, factory repository.RepositoryFactory, order *entity.Order) error {
	delivery := &entity.Delivery{
		OrderID:           order.ID,
		TrackingID:        newTrackingID(),
		EstimatedDelivery: time.Now().Add(deliveryLeadTime),
		Status:            entity.DeliveryStatusScheduled,
	}

	return factory.NewDeliveryRepository().Create(ctx, delivery)
}

// newTrackingID derives a short, human-readable tracking reference.
func newTrackingID() string {
	raw := strings.ToUpper(strings.ReplaceAll(uuid.New().String(), "-", ""))

	return "TRK-" + raw[:10]
}
