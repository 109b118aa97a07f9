package handler

import (
	"log/slog"
	"net/http"

	"isdn/internal/delivery/http/middleware"
	"isdn/internal/delivery/http/response"
	"isdn/internal/domain/entity"
	"isdn/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// InventoryHandler holds dependencies for stock management handlers.
type InventoryHandler struct {
	uc     usecase.InventoryUsecase
	logger *slog.Logger
}

// NewInventoryHandler is the constructor for InventoryHandler, injected by Fx.
func NewInventoryHandler(uc usecase.InventoryUsecase, logger *slog.Logger) *InventoryHandler {
	return &InventoryHandler{
		uc:     uc,
		logger: logger,
	}
}

type setStockRequest struct {
	ProductID string `json:"productId" validate:"required,uuid"`
	Region    string `json:"region" validate:"required"`
	Quantity  int    `json:"quantity" validate:"gte=0"`
}

// SetStock writes an absolute stock level for one (product, region).
func (h *InventoryHandler) SetStock(c echo.Context) error {
	actor, ok := middleware.ActorFromContext(c)
	if !ok {
		return response.Unauthorized(c, "NOT_AUTHENTICATED", "Authentication required")
	}

	var req setStockRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid stock input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	productID, err := uuid.Parse(req.ProductID)
	if err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid product ID")
	}

	if err := h.uc.SetStock(c.Request().Context(), actor, usecase.SetStockInput{
		ProductID: productID,
		Region:    entity.Region(req.Region),
		Quantity:  req.Quantity,
	}); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"productId": req.ProductID,
		"region":    req.Region,
		"quantity":  req.Quantity,
	}, "Stock level updated")
}
