package usecases

import "context"

type LoginExecutor interface {
	Execute(ctx context.Context, cmd LoginCommand) (*LoginResult, error)
}

type RefreshSessionExecutor interface {
	Execute(ctx context.Context, cmd RefreshSessionCommand) (*TokenPair, error)
}
