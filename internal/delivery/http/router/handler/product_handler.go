package handler

import (
	"log/slog"
	"net/http"

	"isdn/internal/delivery/http/middleware"
	"isdn/internal/delivery/http/response"
	"isdn/internal/domain/entity"
	"isdn/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ProductHandler holds dependencies for catalog handlers.
type ProductHandler struct {
	uc     usecase.CatalogUsecase
	logger *slog.Logger
}

// NewProductHandler is the constructor for ProductHandler, injected by Fx.
func NewProductHandler(uc usecase.CatalogUsecase, logger *slog.Logger) *ProductHandler {
	return &ProductHandler{
		uc:     uc,
		logger: logger,
	}
}

type createProductRequest struct {
	Name         string  `json:"name" validate:"required"`
	Category     string  `json:"category" validate:"required"`
	Price        float64 `json:"price" validate:"gte=0"`
	Image        string  `json:"image"`
	InitialStock int     `json:"initialStock" validate:"gte=0"`
}

type productResponse struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Category string  `json:"category"`
	Price    float64 `json:"price"`
	Image    string  `json:"image,omitempty"`
	Stock    int     `json:"stock"`
}

// stockRegionFor resolves which region's stock the caller sees: their own
// for regional roles, the cross-region aggregate for head office.
func stockRegionFor(c echo.Context) *entity.Region {
	actor, ok := middleware.ActorFromContext(c)
	if !ok || actor.Role == entity.RoleHeadOffice {
		return nil
	}
	region := actor.Region

	return &region
}

// List returns the catalog with stock scoped to the caller.
func (h *ProductHandler) List(c echo.Context) error {
	result, err := h.uc.ListProducts(c.Request().Context(), stockRegionFor(c))
	if err != nil {
		return errors.WithStack(err)
	}

	products := make([]productResponse, 0, len(result))
	for _, item := range result {
		products = append(products, productResponse{
			ID:       item.Product.ID.String(),
			Name:     item.Product.Name,
			Category: item.Product.Category.String(),
			Price:    item.Product.Price,
			Image:    item.Product.Image,
			Stock:    item.Stock,
		})
	}

	return response.Success(c, http.StatusOK, products, "")
}

// Create adds a product to the catalog.
func (h *ProductHandler) Create(c echo.Context) error {
	var req createProductRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid product input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	product, err := h.uc.CreateProduct(c.Request().Context(), usecase.CreateProductInput{
		Name:         req.Name,
		Category:     entity.Category(req.Category),
		Price:        req.Price,
		Image:        req.Image,
		InitialStock: req.InitialStock,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, productResponse{
		ID:       product.ID.String(),
		Name:     product.Name,
		Category: product.Category.String(),
		Price:    product.Price,
		Image:    product.Image,
		Stock:    req.InitialStock,
	}, "Product created successfully")
}
