package routes

import (
	"github.com/gin-gonic/gin"

	"warrantydesk/internal/interfaces/http/handlers"
)

type WarrantyRouteConfig struct {
	WarrantyHandler *handlers.WarrantyHandler
}

// SetupWarrantyRoutes registers the public warranty lookup. No session is
// required; customers use this from the shop counter page.
func SetupWarrantyRoutes(engine *gin.Engine, config *WarrantyRouteConfig) {
	warranty := engine.Group("/api/warranty")
	{
		warranty.POST("/check", config.WarrantyHandler.CheckWarranty)
	}
}
