package usecases

import (
	"context"
	"strings"

	"warrantydesk/internal/domain/product"
	"warrantydesk/internal/shared/errors"
	"warrantydesk/internal/shared/logger"
)

type DeleteProductCommand struct {
	ProductID string
}

// DeleteProductUseCase removes a product from the registry. Tickets that
// reference the product keep their embedded product snapshot, so existing
// tickets remain readable after the product is gone.
type DeleteProductUseCase struct {
	productRepo product.ProductRepository
	logger      logger.Interface
}

func NewDeleteProductUseCase(
	productRepo product.ProductRepository,
	logger logger.Interface,
) *DeleteProductUseCase {
	return &DeleteProductUseCase{
		productRepo: productRepo,
		logger:      logger,
	}
}

// Execute deletes by id. Deleting an id that no longer exists is a no-op,
// so a repeated delete (double click, stale list) succeeds quietly.
func (uc *DeleteProductUseCase) Execute(ctx context.Context, cmd DeleteProductCommand) error {
	productID := strings.TrimSpace(cmd.ProductID)
	if productID == "" {
		return errors.NewValidationError("product ID is required")
	}

	if err := uc.productRepo.Delete(ctx, productID); err != nil {
		uc.logger.Errorw("failed to delete product", "error", err, "product_id", productID)
		return errors.NewStorageError("failed to delete product")
	}

	uc.logger.Infow("product deleted", "product_id", productID)
	return nil
}
