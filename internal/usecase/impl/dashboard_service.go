package impl

import (
	"context"
	"log/slog"

	"isdn/config"
	deliverycontext "isdn/internal/delivery/context"
	"isdn/internal/domain/repository"
	"isdn/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// dashboardService implements the DashboardUsecase interface.
type dashboardService struct {
	orderRepo         repository.OrderRepository
	inventoryRepo     repository.InventoryRepository
	lowStockThreshold int
	logger            *slog.Logger
}

// DashboardServiceParams holds dependencies for dashboardService, injected by Fx.
type DashboardServiceParams struct {
	fx.In

	OrderRepo     repository.OrderRepository
	InventoryRepo repository.InventoryRepository
	Config        *config.Config
	Logger        *slog.Logger
}

// NewDashboardService is the constructor for dashboardService.
func NewDashboardService(params DashboardServiceParams) usecase.DashboardUsecase {
	lowStockThreshold := 0
	if params.Config != nil && params.Config.Dashboard != nil {
		lowStockThreshold = params.Config.Dashboard.LowStockThreshold
	}

	return &dashboardService{
		orderRepo:         params.OrderRepo,
		inventoryRepo:     params.InventoryRepo,
		lowStockThreshold: lowStockThreshold,
		logger:            params.Logger,
	}
}

func (srv *dashboardService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Stats combines the order-side aggregates with the low-stock count.
func (srv *dashboardService) Stats(ctx context.Context) (*usecase.DashboardStats, error) {
	sales, err := srv.orderRepo.SalesStats(ctx)
	if err != nil {
		srv.log(ctx).Error("Failed to compute sales stats", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to compute sales stats")
	}

	lowStock, err := srv.inventoryRepo.LowStockCount(ctx, srv.lowStockThreshold)
	if err != nil {
		srv.log(ctx).Error("Failed to count low stock items", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to count low stock items")
	}

	return &usecase.DashboardStats{
		TotalSales:        sales.TotalSales,
		TotalOrders:       sales.TotalOrders,
		LowStockItems:     lowStock,
		PendingDeliveries: sales.PendingDeliveries,
	}, nil
}
