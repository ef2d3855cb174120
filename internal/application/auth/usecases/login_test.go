package usecases

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"warrantydesk/internal/shared/authorization"
	"warrantydesk/internal/shared/config"
	"warrantydesk/internal/shared/errors"
	"warrantydesk/internal/shared/logger"
)

type stubHasher struct {
	verifyErr error
}

func (s *stubHasher) Verify(password, hash string) error {
	return s.verifyErr
}

type stubJWTService struct {
	generateErr error
	refreshErr  error
	generated   int
}

func (s *stubJWTService) Generate(username string, role authorization.UserRole) (*TokenPair, error) {
	if s.generateErr != nil {
		return nil, s.generateErr
	}
	s.generated++
	return &TokenPair{AccessToken: "access-" + username, RefreshToken: "refresh-" + username, ExpiresIn: 900}, nil
}

func (s *stubJWTService) Refresh(refreshToken string) (*TokenPair, error) {
	if s.refreshErr != nil {
		return nil, s.refreshErr
	}
	return &TokenPair{AccessToken: "rotated-access", RefreshToken: "rotated-refresh", ExpiresIn: 900}, nil
}

func testAuthConfig() config.AuthConfig {
	return config.AuthConfig{
		AdminUsername:     "admin",
		AdminPasswordHash: "$2a$12$stubstubstubstubstubstub",
	}
}

type noopLogger struct{}

func (noopLogger) Debug(msg string, args ...any)                   {}
func (noopLogger) Info(msg string, args ...any)                    {}
func (noopLogger) Warn(msg string, args ...any)                    {}
func (noopLogger) Error(msg string, args ...any)                   {}
func (l noopLogger) With(args ...any) logger.Interface             { return l }
func (l noopLogger) Named(name string) logger.Interface            { return l }
func (noopLogger) Debugw(msg string, keysAndValues ...interface{}) {}
func (noopLogger) Infow(msg string, keysAndValues ...interface{})  {}
func (noopLogger) Warnw(msg string, keysAndValues ...interface{})  {}
func (noopLogger) Errorw(msg string, keysAndValues ...interface{}) {}

func testLogger() logger.Interface { return noopLogger{} }

func TestLoginUseCase_Execute_Success(t *testing.T) {
	jwtSvc := &stubJWTService{}
	uc := NewLoginUseCase(testAuthConfig(), &stubHasher{}, jwtSvc, testLogger())

	result, err := uc.Execute(context.Background(), LoginCommand{Username: "admin", Password: "correct horse"})

	require.NoError(t, err)
	assert.Equal(t, "admin", result.Username)
	assert.Equal(t, "access-admin", result.AccessToken)
	assert.Equal(t, "refresh-admin", result.RefreshToken)
	assert.Equal(t, int64(900), result.ExpiresIn)
}

func TestLoginUseCase_Execute_WrongPassword(t *testing.T) {
	jwtSvc := &stubJWTService{}
	hasher := &stubHasher{verifyErr: fmt.Errorf("password verification failed")}
	uc := NewLoginUseCase(testAuthConfig(), hasher, jwtSvc, testLogger())

	result, err := uc.Execute(context.Background(), LoginCommand{Username: "admin", Password: "wrong"})

	assert.Nil(t, result)
	require.Error(t, err)
	assert.True(t, errors.GetAppError(err).Type == errors.ErrorTypeUnauthorized)

	// A rejected login must not mint any tokens.
	assert.Zero(t, jwtSvc.generated)
}

func TestLoginUseCase_Execute_WrongUsername(t *testing.T) {
	uc := NewLoginUseCase(testAuthConfig(), &stubHasher{}, &stubJWTService{}, testLogger())

	result, err := uc.Execute(context.Background(), LoginCommand{Username: "root", Password: "correct horse"})

	assert.Nil(t, result)
	require.Error(t, err)
	appErr := errors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrorTypeUnauthorized, appErr.Type)
	// Same message as the wrong-password path.
	assert.Equal(t, "invalid username or password", appErr.Message)
}

func TestLoginUseCase_Execute_MissingCredentials(t *testing.T) {
	uc := NewLoginUseCase(testAuthConfig(), &stubHasher{}, &stubJWTService{}, testLogger())

	for _, cmd := range []LoginCommand{{}, {Username: "admin"}, {Password: "pw"}} {
		_, err := uc.Execute(context.Background(), cmd)
		require.Error(t, err)
		assert.True(t, errors.IsValidationError(err))
	}
}

func TestRefreshSessionUseCase_Execute(t *testing.T) {
	uc := NewRefreshSessionUseCase(&stubJWTService{}, testLogger())

	tokens, err := uc.Execute(context.Background(), RefreshSessionCommand{RefreshToken: "refresh-admin"})

	require.NoError(t, err)
	assert.Equal(t, "rotated-access", tokens.AccessToken)
}

func TestRefreshSessionUseCase_Execute_InvalidToken(t *testing.T) {
	uc := NewRefreshSessionUseCase(&stubJWTService{refreshErr: fmt.Errorf("expired")}, testLogger())

	tokens, err := uc.Execute(context.Background(), RefreshSessionCommand{RefreshToken: "stale"})

	assert.Nil(t, tokens)
	require.Error(t, err)
	assert.Equal(t, errors.ErrorTypeUnauthorized, errors.GetAppError(err).Type)
}

func TestRefreshSessionUseCase_Execute_EmptyToken(t *testing.T) {
	uc := NewRefreshSessionUseCase(&stubJWTService{}, testLogger())

	_, err := uc.Execute(context.Background(), RefreshSessionCommand{})
	require.Error(t, err)
	assert.Equal(t, errors.ErrorTypeUnauthorized, errors.GetAppError(err).Type)
}
