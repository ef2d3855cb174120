package usecases

import (
	"context"
	"strings"

	"warrantydesk/internal/application/product/dto"
	"warrantydesk/internal/domain/product"
	"warrantydesk/internal/shared/biztime"
	"warrantydesk/internal/shared/errors"
	"warrantydesk/internal/shared/logger"
)

type GetProductQuery struct {
	ProductID string
}

type GetProductResult struct {
	Product  *dto.ProductDTO
	Coverage dto.CoverageDTO
}

type GetProductUseCase struct {
	productRepo product.ProductRepository
	logger      logger.Interface
}

func NewGetProductUseCase(
	productRepo product.ProductRepository,
	logger logger.Interface,
) *GetProductUseCase {
	return &GetProductUseCase{
		productRepo: productRepo,
		logger:      logger,
	}
}

func (uc *GetProductUseCase) Execute(ctx context.Context, query GetProductQuery) (*GetProductResult, error) {
	productID := strings.TrimSpace(query.ProductID)
	if productID == "" {
		return nil, errors.NewValidationError("product ID is required")
	}

	entity, err := uc.productRepo.FindByID(ctx, productID)
	if err != nil {
		uc.logger.Errorw("failed to find product", "error", err, "product_id", productID)
		return nil, errors.NewStorageError("failed to load product")
	}
	if entity == nil {
		return nil, errors.NewNotFoundError("product not found")
	}

	return &GetProductResult{
		Product:  dto.ToProductDTO(entity),
		Coverage: dto.ToCoverageDTO(entity.Coverage(biztime.NowUTC())),
	}, nil
}
