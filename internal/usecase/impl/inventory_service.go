package impl

import (
	"context"
	"log/slog"

	deliverycontext "isdn/internal/delivery/context"
	"isdn/internal/domain/entity"
	domainerrors "isdn/internal/domain/errors"
	"isdn/internal/domain/policy"
	"isdn/internal/domain/repository"
	"isdn/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// inventoryService implements the InventoryUsecase interface.
type inventoryService struct {
	productRepo   repository.ProductRepository
	inventoryRepo repository.InventoryRepository
	logger        *slog.Logger
}

// InventoryServiceParams holds dependencies for inventoryService, injected by Fx.
type InventoryServiceParams struct {
	fx.In

	ProductRepo   repository.ProductRepository
	InventoryRepo repository.InventoryRepository
	Logger        *slog.Logger
}

// NewInventoryService is the constructor for inventoryService.
func NewInventoryService(params InventoryServiceParams) usecase.InventoryUsecase {
	return &inventoryService{
		productRepo:   params.ProductRepo,
		inventoryRepo: params.InventoryRepo,
		logger:        params.Logger,
	}
}

func (srv *inventoryService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// SetStock writes an absolute level for one (product, region) after
// authorization and validation. Negative quantities never reach the ledger.
func (srv *inventoryService) SetStock(ctx context.Context, actor usecase.Actor, input usecase.SetStockInput) error {
	if !policy.CanWriteStock(actor.Role, actor.Region, input.Region) {
		return domainerrors.ErrForbidden
	}
	if !input.Region.IsValid() {
		return domainerrors.ErrValidationFailed.WrapMessage("unknown region")
	}
	if input.Quantity < 0 {
		return domainerrors.ErrInvalidQuantity
	}

	if _, err := srv.productRepo.FindByID(ctx, input.ProductID); err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return domainerrors.ErrProductNotFound
		}

		return errors.Wrap(err, "failed to verify product")
	}

	if err := srv.inventoryRepo.SetStock(ctx, input.ProductID, input.Region, input.Quantity); err != nil {
		return errors.Wrap(err, "failed to set stock")
	}

	srv.log(ctx).Info("Stock level set",
		slog.Any("productID", input.ProductID),
		slog.String("region", input.Region.String()),
		slog.Int("quantity", input.Quantity),
	)

	return nil
}

// GetStock reads the current level for one (product, region). A missing
// record reads as zero.
func (srv *inventoryService) GetStock(ctx context.Context, productID uuid.UUID, region entity.Region) (int, error) {
	if !region.IsValid() {
		return 0, domainerrors.ErrValidationFailed.WrapMessage("unknown region")
	}

	stock, err := srv.inventoryRepo.GetStock(ctx, productID, region)
	if err != nil {
		return 0, errors.Wrap(err, "failed to get stock")
	}

	return stock, nil
}
