package main

import (
	"context"
	"log/slog"
	"os"

	"isdn/config"
	"isdn/internal/delivery"
	"isdn/internal/delivery/http"
	"isdn/internal/delivery/http/middleware"
	"isdn/internal/delivery/http/router/handler"
	"isdn/internal/infra/auth"
	logs "isdn/internal/infra/log"
	"isdn/internal/infra/metrics"
	"isdn/internal/infra/persistence/sqldb"
	"isdn/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		metrics.New,
		sqldb.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			sqldb.NewUserRepository,
			sqldb.NewProductRepository,
			sqldb.NewInventoryRepository,
			sqldb.NewOrderRepository,
			sqldb.NewDeliveryRepository,
			sqldb.NewInvoiceRepository,
			sqldb.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewUserService,
			impl.NewCatalogService,
			impl.NewInventoryService,
			impl.NewOrderService,
			impl.NewDashboardService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
			middleware.NewErrorMiddleware,
			middleware.NewRequestMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewAuthHandler,
			handler.NewProductHandler,
			handler.NewInventoryHandler,
			handler.NewOrderHandler,
			handler.NewDashboardHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				http.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
