package usecases

import (
	"context"

	"warrantydesk/internal/application/product/dto"
)

type RegisterProductExecutor interface {
	Execute(ctx context.Context, cmd RegisterProductCommand) (*dto.ProductDTO, error)
}

type GetProductExecutor interface {
	Execute(ctx context.Context, query GetProductQuery) (*GetProductResult, error)
}

type ListProductsExecutor interface {
	Execute(ctx context.Context, query ListProductsQuery) (*ListProductsResult, error)
}

type DeleteProductExecutor interface {
	Execute(ctx context.Context, cmd DeleteProductCommand) error
}

type CheckWarrantyExecutor interface {
	Execute(ctx context.Context, query CheckWarrantyQuery) (*CheckWarrantyResult, error)
}
