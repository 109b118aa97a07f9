package impl

import (
	"context"
	"log/slog"

	deliverycontext "isdn/internal/delivery/context"
	"isdn/internal/domain/entity"
	domainerrors "isdn/internal/domain/errors"
	"isdn/internal/domain/repository"
	"isdn/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// catalogService implements the CatalogUsecase interface.
type catalogService struct {
	txManager     repository.TransactionManager
	productRepo   repository.ProductRepository
	inventoryRepo repository.InventoryRepository
	logger        *slog.Logger
}

// CatalogServiceParams holds dependencies for catalogService, injected by Fx.
type CatalogServiceParams struct {
	fx.In

	TxManager     repository.TransactionManager
	ProductRepo   repository.ProductRepository
	InventoryRepo repository.InventoryRepository
	Logger        *slog.Logger
}

// NewCatalogService is the constructor for catalogService.
func NewCatalogService(params CatalogServiceParams) usecase.CatalogUsecase {
	return &catalogService{
		txManager:     params.TxManager,
		productRepo:   params.ProductRepo,
		inventoryRepo: params.InventoryRepo,
		logger:        params.Logger,
	}
}

func (srv *catalogService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListProducts returns the catalog with stock scoped to one region or
// aggregated across all of them. Products without an inventory record read
// as zero stock.
func (srv *catalogService) ListProducts(ctx context.Context, region *entity.Region) ([]*usecase.ProductWithStock, error) {
	products, err := srv.productRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list products")
	}

	levels, err := srv.inventoryRepo.StockLevels(ctx, region)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load stock levels")
	}

	result := make([]*usecase.ProductWithStock, 0, len(products))
	for _, product := range products {
		result = append(result, &usecase.ProductWithStock{
			Product: product,
			Stock:   levels[product.ID],
		})
	}

	return result, nil
}

// GetProduct returns a single product with region-scoped or aggregate stock.
func (srv *catalogService) GetProduct(ctx context.Context, id uuid.UUID, region *entity.Region) (*usecase.ProductWithStock, error) {
	product, err := srv.productRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, domainerrors.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to find product")
	}

	var stock int
	if region != nil {
		stock, err = srv.inventoryRepo.GetStock(ctx, id, *region)
	} else {
		stock, err = srv.inventoryRepo.AggregateStock(ctx, id)
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to read stock")
	}

	return &usecase.ProductWithStock{Product: product, Stock: stock}, nil
}

// CreateProduct adds a catalog entry and, when initial stock is given,
// writes it to every region in the same transaction.
func (srv *catalogService) CreateProduct(ctx context.Context, input usecase.CreateProductInput) (*entity.Product, error) {
	if !input.Category.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("unknown category")
	}
	if input.Price < 0 {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("price must not be negative")
	}
	if input.InitialStock < 0 {
		return nil, domainerrors.ErrInvalidQuantity
	}

	product := &entity.Product{
		Name:     input.Name,
		Category: input.Category,
		Price:    input.Price,
		Image:    input.Image,
	}

	err := srv.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		if err := factory.NewProductRepository().Create(ctx, product); err != nil {
			return err
		}

		if input.InitialStock == 0 {
			return nil
		}

		inventoryRepo := factory.NewInventoryRepository()
		for _, region := range entity.AllRegions() {
			if err := inventoryRepo.SetStock(ctx, product.ID, region, input.InitialStock); err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Failed to create product", slog.String("name", input.Name), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create product")
	}

	srv.log(ctx).Info("Product created", slog.Any("productID", product.ID), slog.String("name", product.Name))

	return product, nil
}
