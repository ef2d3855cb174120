package routes

import (
	"github.com/gin-gonic/gin"

	"warrantydesk/internal/interfaces/http/handlers"
	"warrantydesk/internal/interfaces/http/middleware"
)

type AuthRouteConfig struct {
	AuthHandler    *handlers.AuthHandler
	AuthMiddleware *middleware.AuthMiddleware
}

func SetupAuthRoutes(engine *gin.Engine, config *AuthRouteConfig) {
	auth := engine.Group("/api/auth")
	{
		auth.POST("/login", config.AuthHandler.Login)
		auth.POST("/logout", config.AuthHandler.Logout)
		auth.POST("/refresh", config.AuthHandler.Refresh)
		auth.GET("/session",
			config.AuthMiddleware.RequireAuth(),
			config.AuthHandler.Session)
	}
}
