package usecase

import "context"

// DashboardStats are the headline figures shown on the head-office dashboard.
type DashboardStats struct {
	TotalSales        float64 `json:"totalSales"`
	TotalOrders       int64   `json:"totalOrders"`
	LowStockItems     int64   `json:"lowStockItems"`
	PendingDeliveries int64   `json:"pendingDeliveries"`
}

// DashboardUsecase aggregates order and inventory figures for reporting.
type DashboardUsecase interface {
	Stats(ctx context.Context) (*DashboardStats, error)
}
