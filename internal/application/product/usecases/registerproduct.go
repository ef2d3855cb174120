package usecases

import (
	"context"
	"fmt"
	"strings"
	"time"

	"warrantydesk/internal/application/product/dto"
	"warrantydesk/internal/domain/product"
	"warrantydesk/internal/shared/biztime"
	"warrantydesk/internal/shared/errors"
	"warrantydesk/internal/shared/id"
	"warrantydesk/internal/shared/logger"
)

type RegisterProductCommand struct {
	ItemName       string
	Serial         string
	Model          string
	BillNo         string
	PurchaseDate   string
	WarrantyMonths *int
}

type RegisterProductUseCase struct {
	productRepo product.ProductRepository
	logger      logger.Interface
}

func NewRegisterProductUseCase(
	productRepo product.ProductRepository,
	logger logger.Interface,
) *RegisterProductUseCase {
	return &RegisterProductUseCase{
		productRepo: productRepo,
		logger:      logger,
	}
}

func (uc *RegisterProductUseCase) Execute(ctx context.Context, cmd RegisterProductCommand) (*dto.ProductDTO, error) {
	uc.logger.Infow("executing register product use case", "item_name", cmd.ItemName)

	if err := uc.validateCommand(cmd); err != nil {
		uc.logger.Errorw("invalid register product command", "error", err)
		return nil, err
	}

	purchaseDate, err := parseOptionalDate(cmd.PurchaseDate)
	if err != nil {
		return nil, errors.NewValidationError("purchase date must be in YYYY-MM-DD format")
	}

	productID, err := id.NewProductID()
	if err != nil {
		uc.logger.Errorw("failed to generate product ID", "error", err)
		return nil, fmt.Errorf("failed to generate product ID: %w", err)
	}

	entity, err := product.NewProduct(
		productID,
		cmd.ItemName,
		cmd.Serial,
		cmd.Model,
		cmd.BillNo,
		purchaseDate,
		cmd.WarrantyMonths,
		biztime.NowUTC(),
	)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.productRepo.Save(ctx, entity); err != nil {
		uc.logger.Errorw("failed to save product", "error", err, "product_id", productID)
		if errors.IsDuplicateError(err) {
			return nil, errors.NewConflictError("product already exists")
		}
		return nil, errors.NewStorageError("failed to save product")
	}

	uc.logger.Infow("product registered successfully",
		"product_id", entity.ProductID(),
		"item_name", entity.ItemName(),
	)

	return dto.ToProductDTO(entity), nil
}

func (uc *RegisterProductUseCase) validateCommand(cmd RegisterProductCommand) error {
	if strings.TrimSpace(cmd.ItemName) == "" {
		return errors.NewValidationError("item name is required")
	}
	if cmd.WarrantyMonths != nil && *cmd.WarrantyMonths < 0 {
		return errors.NewValidationError("warranty months cannot be negative")
	}
	return nil
}

// parseOptionalDate treats an empty string as an absent date.
func parseOptionalDate(value string) (*time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil, nil
	}
	parsed, err := biztime.ParseDate(value)
	if err != nil {
		return nil, err
	}
	return &parsed, nil
}
