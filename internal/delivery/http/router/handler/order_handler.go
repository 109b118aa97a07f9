package handler

import (
	"log/slog"
	"net/http"
	"time"

	"isdn/internal/delivery/http/middleware"
	"isdn/internal/delivery/http/response"
	"isdn/internal/domain/entity"
	"isdn/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// OrderHandler holds dependencies for order lifecycle handlers.
type OrderHandler struct {
	uc     usecase.OrderUsecase
	logger *slog.Logger
}

// NewOrderHandler is the constructor for OrderHandler, injected by Fx.
func NewOrderHandler(uc usecase.OrderUsecase, logger *slog.Logger) *OrderHandler {
	return &OrderHandler{
		uc:     uc,
		logger: logger,
	}
}

type createOrderRequest struct {
	Items []createOrderItem `json:"items" validate:"required,min=1,dive"`
}

type createOrderItem struct {
	ProductID string `json:"productId" validate:"required,uuid"`
	Quantity  int    `json:"quantity" validate:"gt=0"`
}

type updateStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

type orderItemResponse struct {
	ID          string  `json:"id"`
	ProductID   string  `json:"productId"`
	ProductName string  `json:"productName,omitempty"`
	Quantity    int     `json:"quantity"`
	Price       float64 `json:"price"`
}

type orderResponse struct {
	ID           string              `json:"id"`
	CustomerID   string              `json:"customerId"`
	CustomerName string              `json:"customerName,omitempty"`
	Region       string              `json:"region"`
	TotalAmount  float64             `json:"totalAmount"`
	Status       string              `json:"status"`
	OrderDate    time.Time           `json:"orderDate"`
	Items        []orderItemResponse `json:"items,omitempty"`
}

func toOrderResponse(order *entity.Order) orderResponse {
	items := make([]orderItemResponse, 0, len(order.Items))
	for _, item := range order.Items {
		items = append(items, orderItemResponse{
			ID:          item.ID.String(),
			ProductID:   item.ProductID.String(),
			ProductName: item.ProductName,
			Quantity:    item.Quantity,
			Price:       item.Price,
		})
	}

	return orderResponse{
		ID:           order.ID.String(),
		CustomerID:   order.CustomerID.String(),
		CustomerName: order.CustomerName,
		Region:       order.Region.String(),
		TotalAmount:  order.TotalAmount,
		Status:       order.Status.String(),
		OrderDate:    order.CreatedAt,
		Items:        items,
	}
}

// Create places a new order for the authenticated customer.
func (h *OrderHandler) Create(c echo.Context) error {
	actor, ok := middleware.ActorFromContext(c)
	if !ok {
		return response.Unauthorized(c, "NOT_AUTHENTICATED", "Authentication required")
	}

	var req createOrderRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid order input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	items := make([]usecase.NewOrderItem, 0, len(req.Items))
	for _, line := range req.Items {
		productID, err := uuid.Parse(line.ProductID)
		if err != nil {
			return response.BindingError(c, "INVALID_INPUT", "Invalid product ID")
		}
		items = append(items, usecase.NewOrderItem{ProductID: productID, Quantity: line.Quantity})
	}

	order, err := h.uc.CreateOrder(c.Request().Context(), actor, usecase.CreateOrderInput{Items: items})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toOrderResponse(order), "Order placed successfully")
}

// List returns the orders visible to the authenticated actor.
func (h *OrderHandler) List(c echo.Context) error {
	actor, ok := middleware.ActorFromContext(c)
	if !ok {
		return response.Unauthorized(c, "NOT_AUTHENTICATED", "Authentication required")
	}

	orders, err := h.uc.ListOrders(c.Request().Context(), actor)
	if err != nil {
		return errors.WithStack(err)
	}

	result := make([]orderResponse, 0, len(orders))
	for _, order := range orders {
		result = append(result, toOrderResponse(order))
	}

	return response.Success(c, http.StatusOK, result, "")
}

// Get returns one order with its line items.
func (h *OrderHandler) Get(c echo.Context) error {
	actor, ok := middleware.ActorFromContext(c)
	if !ok {
		return response.Unauthorized(c, "NOT_AUTHENTICATED", "Authentication required")
	}

	orderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid order ID")
	}

	order, err := h.uc.GetOrder(c.Request().Context(), actor, orderID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toOrderResponse(order), "")
}

// UpdateStatus advances an order along the lifecycle graph.
func (h *OrderHandler) UpdateStatus(c echo.Context) error {
	actor, ok := middleware.ActorFromContext(c)
	if !ok {
		return response.Unauthorized(c, "NOT_AUTHENTICATED", "Authentication required")
	}

	orderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid order ID")
	}

	var req updateStatusRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid status input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	order, err := h.uc.TransitionStatus(c.Request().Context(), actor, orderID, entity.OrderStatus(req.Status))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toOrderResponse(order), "Order status updated")
}
