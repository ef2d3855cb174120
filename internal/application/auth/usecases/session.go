package usecases

import (
	"context"

	"warrantydesk/internal/shared/errors"
	"warrantydesk/internal/shared/logger"
)

type RefreshSessionCommand struct {
	RefreshToken string
}

// RefreshSessionUseCase rotates an admin session: a valid refresh token
// yields a brand-new access/refresh pair.
type RefreshSessionUseCase struct {
	jwtService JWTService
	logger     logger.Interface
}

func NewRefreshSessionUseCase(jwtService JWTService, logger logger.Interface) *RefreshSessionUseCase {
	return &RefreshSessionUseCase{
		jwtService: jwtService,
		logger:     logger,
	}
}

func (uc *RefreshSessionUseCase) Execute(ctx context.Context, cmd RefreshSessionCommand) (*TokenPair, error) {
	if cmd.RefreshToken == "" {
		return nil, errors.NewUnauthorizedError("session expired")
	}

	tokens, err := uc.jwtService.Refresh(cmd.RefreshToken)
	if err != nil {
		uc.logger.Warnw("failed to refresh admin session", "error", err)
		return nil, errors.NewUnauthorizedError("session expired")
	}

	return tokens, nil
}
