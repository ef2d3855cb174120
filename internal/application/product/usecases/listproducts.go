package usecases

import (
	"context"
	"strings"

	"warrantydesk/internal/application/product/dto"
	"warrantydesk/internal/domain/product"
	"warrantydesk/internal/shared/errors"
	"warrantydesk/internal/shared/logger"
)

type ListProductsQuery struct {
	SearchText string
}

type ListProductsResult struct {
	Products []*dto.ProductDTO
	Total    int64
}

type ListProductsUseCase struct {
	productRepo product.ProductRepository
	logger      logger.Interface
}

func NewListProductsUseCase(
	productRepo product.ProductRepository,
	logger logger.Interface,
) *ListProductsUseCase {
	return &ListProductsUseCase{
		productRepo: productRepo,
		logger:      logger,
	}
}

func (uc *ListProductsUseCase) Execute(ctx context.Context, query ListProductsQuery) (*ListProductsResult, error) {
	filter := product.ProductFilter{
		SearchText: strings.TrimSpace(query.SearchText),
	}

	products, total, err := uc.productRepo.List(ctx, filter)
	if err != nil {
		uc.logger.Errorw("failed to list products", "error", err)
		return nil, errors.NewStorageError("failed to list products")
	}

	dtos := make([]*dto.ProductDTO, 0, len(products))
	for _, p := range products {
		dtos = append(dtos, dto.ToProductDTO(p))
	}

	return &ListProductsResult{Products: dtos, Total: total}, nil
}
