package routes

import (
	"github.com/gin-gonic/gin"

	"warrantydesk/internal/interfaces/http/handlers"
	"warrantydesk/internal/interfaces/http/middleware"
	"warrantydesk/internal/shared/authorization"
)

type ProductRouteConfig struct {
	ProductHandler *handlers.ProductHandler
	AuthMiddleware *middleware.AuthMiddleware
}

func SetupProductRoutes(engine *gin.Engine, config *ProductRouteConfig) {
	products := engine.Group("/api/products")
	products.Use(config.AuthMiddleware.RequireAuth(), authorization.RequireAdmin())
	{
		products.POST("", config.ProductHandler.RegisterProduct)
		products.GET("", config.ProductHandler.ListProducts)

		products.GET("/:id", config.ProductHandler.GetProduct)
		products.GET("/:id/tickets", config.ProductHandler.ListProductTickets)
		products.DELETE("/:id", config.ProductHandler.DeleteProduct)
	}
}
