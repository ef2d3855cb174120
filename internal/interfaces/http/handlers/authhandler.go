package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"warrantydesk/internal/application/auth/usecases"
	"warrantydesk/internal/shared/config"
	"warrantydesk/internal/shared/logger"
	"warrantydesk/internal/shared/utils"
)

type AuthHandler struct {
	loginUC      usecases.LoginExecutor
	refreshUC    usecases.RefreshSessionExecutor
	authConfig   config.AuthConfig
	cookieConfig config.CookieConfig
	logger       logger.Interface
}

func NewAuthHandler(
	loginUC usecases.LoginExecutor,
	refreshUC usecases.RefreshSessionExecutor,
	authConfig config.AuthConfig,
) *AuthHandler {
	return &AuthHandler{
		loginUC:      loginUC,
		refreshUC:    refreshUC,
		authConfig:   authConfig,
		cookieConfig: authConfig.Cookie,
		logger:       logger.NewLogger(),
	}
}

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for login", "error", err)
		utils.ErrorResponseWithError(c, utils.NewBindingError(err))
		return
	}

	result, err := h.loginUC.Execute(c.Request.Context(), usecases.LoginCommand{
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	h.setSessionCookies(c, result.AccessToken, result.RefreshToken)

	utils.SuccessResponse(c, http.StatusOK, "Logged in", gin.H{
		"username":   result.Username,
		"expires_in": result.ExpiresIn,
	})
}

func (h *AuthHandler) Logout(c *gin.Context) {
	utils.ClearAuthCookies(c, h.cookieConfig)
	utils.SuccessResponse(c, http.StatusOK, "Logged out", nil)
}

// Session reports whether the caller holds a valid admin session. The auth
// middleware has already verified the token by the time this runs.
func (h *AuthHandler) Session(c *gin.Context) {
	utils.SuccessResponse(c, http.StatusOK, "", gin.H{
		"username": c.GetString("username"),
		"role":     c.GetString("user_role"),
	})
}

// Refresh rotates the session token pair from the refresh cookie.
func (h *AuthHandler) Refresh(c *gin.Context) {
	refreshToken := utils.GetTokenFromCookie(c, utils.RefreshTokenCookie)

	tokens, err := h.refreshUC.Execute(c.Request.Context(), usecases.RefreshSessionCommand{
		RefreshToken: refreshToken,
	})
	if err != nil {
		utils.ClearAuthCookies(c, h.cookieConfig)
		utils.ErrorResponseWithError(c, err)
		return
	}

	h.setSessionCookies(c, tokens.AccessToken, tokens.RefreshToken)

	utils.SuccessResponse(c, http.StatusOK, "Session refreshed", gin.H{
		"expires_in": tokens.ExpiresIn,
	})
}

func (h *AuthHandler) setSessionCookies(c *gin.Context, accessToken, refreshToken string) {
	accessMaxAge := h.authConfig.JWT.AccessExpMinutes * 60
	refreshMaxAge := h.authConfig.JWT.RefreshExpDays * 24 * 60 * 60
	utils.SetAuthCookies(c, h.cookieConfig, accessToken, refreshToken, accessMaxAge, refreshMaxAge)
}
