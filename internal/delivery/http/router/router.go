// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"isdn/internal/delivery/http/middleware"
	"isdn/internal/delivery/http/router/handler"
	"isdn/internal/domain/entity"
	"isdn/internal/infra/metrics"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler      *handler.AuthHandler
	ProductHandler   *handler.ProductHandler
	InventoryHandler *handler.InventoryHandler
	OrderHandler     *handler.OrderHandler
	DashboardHandler *handler.DashboardHandler
	AuthMiddleware   *middleware.AuthMiddleware
	Metrics          *metrics.Metrics
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler      *handler.AuthHandler
	productHandler   *handler.ProductHandler
	inventoryHandler *handler.InventoryHandler
	orderHandler     *handler.OrderHandler
	dashboardHandler *handler.DashboardHandler
	authMiddleware   *middleware.AuthMiddleware
	metrics          *metrics.Metrics
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:      params.AuthHandler,
		productHandler:   params.ProductHandler,
		inventoryHandler: params.InventoryHandler,
		orderHandler:     params.OrderHandler,
		dashboardHandler: params.DashboardHandler,
		authMiddleware:   params.AuthMiddleware,
		metrics:          params.Metrics,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Operational endpoints
	e.GET("/health", handler.HealthCheck)
	e.GET("/metrics", echo.WrapHandler(r.metrics.Handler()))

	api := e.Group("/api")

	// Auth routes
	authGroup := api.Group("/auth")
	{
		authGroup.POST("/register", r.authHandler.Register)
		authGroup.POST("/login", r.authHandler.Login)
		authGroup.POST("/logout", r.authHandler.Logout)
	}

	// Catalog: reading requires a login so stock can be scoped to the
	// caller's region; creation is a head-office operation.
	productGroup := api.Group("/products")
	productGroup.Use(r.authMiddleware.Authenticate)
	{
		productGroup.GET("", r.productHandler.List)
		productGroup.POST("", r.productHandler.Create,
			r.authMiddleware.RequireRole(entity.RoleHeadOffice))
	}

	// Stock writes are restricted to head office and RDC staff; the policy
	// layer additionally pins RDC staff to their own region.
	inventoryGroup := api.Group("/inventory")
	inventoryGroup.Use(r.authMiddleware.Authenticate)
	inventoryGroup.Use(r.authMiddleware.RequireRole(entity.RoleHeadOffice, entity.RoleRDCStaff))
	{
		inventoryGroup.PUT("", r.inventoryHandler.SetStock)
	}

	// Orders: customers place them, every authenticated role reads within
	// its view scope, staff roles drive the lifecycle.
	orderGroup := api.Group("/orders")
	orderGroup.Use(r.authMiddleware.Authenticate)
	{
		orderGroup.GET("", r.orderHandler.List)
		orderGroup.GET("/:id", r.orderHandler.Get)
		orderGroup.POST("", r.orderHandler.Create,
			r.authMiddleware.RequireRole(entity.RoleCustomer))
		orderGroup.PUT("/:id/status", r.orderHandler.UpdateStatus,
			r.authMiddleware.RequireRole(entity.RoleHeadOffice, entity.RoleRDCStaff, entity.RoleLogistics))
	}

	// Dashboard aggregates are staff-only.
	dashboardGroup := api.Group("/dashboard")
	dashboardGroup.Use(r.authMiddleware.Authenticate)
	dashboardGroup.Use(r.authMiddleware.RequireRole(entity.RoleHeadOffice, entity.RoleRDCStaff, entity.RoleLogistics))
	{
		dashboardGroup.GET("/stats", r.dashboardHandler.Stats)
	}
}
