package usecases

import (
	"context"
	"crypto/subtle"
	"strings"

	"warrantydesk/internal/shared/authorization"
	"warrantydesk/internal/shared/config"
	"warrantydesk/internal/shared/errors"
	"warrantydesk/internal/shared/logger"
)

type TokenPair struct {
	AccessToken  string
	RefreshToken string
	ExpiresIn    int64
}

type JWTService interface {
	Generate(username string, role authorization.UserRole) (*TokenPair, error)
	Refresh(refreshToken string) (*TokenPair, error)
}

type PasswordHasher interface {
	Verify(password, hash string) error
}

type LoginCommand struct {
	Username string
	Password string
}

type LoginResult struct {
	Username     string
	AccessToken  string
	RefreshToken string
	ExpiresIn    int64
}

// LoginUseCase authenticates the single admin account. Credentials come from
// configuration; the stored password is a bcrypt hash, never plaintext. A
// failed attempt returns the same generic error whether the username or the
// password was wrong.
type LoginUseCase struct {
	authConfig config.AuthConfig
	hasher     PasswordHasher
	jwtService JWTService
	logger     logger.Interface
}

func NewLoginUseCase(
	authConfig config.AuthConfig,
	hasher PasswordHasher,
	jwtService JWTService,
	logger logger.Interface,
) *LoginUseCase {
	return &LoginUseCase{
		authConfig: authConfig,
		hasher:     hasher,
		jwtService: jwtService,
		logger:     logger,
	}
}

func (uc *LoginUseCase) Execute(ctx context.Context, cmd LoginCommand) (*LoginResult, error) {
	username := strings.TrimSpace(cmd.Username)
	if username == "" || cmd.Password == "" {
		return nil, errors.NewValidationError("username and password are required")
	}

	// Constant-time compare; the bcrypt check below runs either way so both
	// failure paths take comparable time.
	usernameMatches := subtle.ConstantTimeCompare([]byte(username), []byte(uc.authConfig.AdminUsername)) == 1
	passwordErr := uc.hasher.Verify(cmd.Password, uc.authConfig.AdminPasswordHash)

	if !usernameMatches || passwordErr != nil {
		uc.logger.Warnw("failed admin login attempt", "username", username)
		return nil, errors.NewUnauthorizedError("invalid username or password")
	}

	tokens, err := uc.jwtService.Generate(username, authorization.RoleAdmin)
	if err != nil {
		uc.logger.Errorw("failed to generate session tokens", "error", err)
		return nil, errors.NewInternalError("failed to create session")
	}

	uc.logger.Infow("admin logged in", "username", username)

	return &LoginResult{
		Username:     username,
		AccessToken:  tokens.AccessToken,
		RefreshToken: tokens.RefreshToken,
		ExpiresIn:    tokens.ExpiresIn,
	}, nil
}
