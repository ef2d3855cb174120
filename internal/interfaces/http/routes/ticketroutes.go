package routes

import (
	"github.com/gin-gonic/gin"

	"warrantydesk/internal/interfaces/http/handlers"
	"warrantydesk/internal/interfaces/http/middleware"
	"warrantydesk/internal/shared/authorization"
)

type TicketRouteConfig struct {
	TicketHandler  *handlers.TicketHandler
	AuthMiddleware *middleware.AuthMiddleware
}

func SetupTicketRoutes(engine *gin.Engine, config *TicketRouteConfig) {
	tickets := engine.Group("/api/tickets")
	tickets.Use(config.AuthMiddleware.RequireAuth(), authorization.RequireAdmin())
	{
		// Specific paths are registered before parameterized ones so
		// /export is never captured by /:id.
		tickets.POST("", config.TicketHandler.CreateTicket)
		tickets.GET("", config.TicketHandler.ListTickets)
		tickets.GET("/export", config.TicketHandler.ExportTickets)

		tickets.PATCH("/:id/status", config.TicketHandler.ChangeStatus)
		tickets.POST("/:id/notes", config.TicketHandler.AddNote)

		tickets.GET("/:id", config.TicketHandler.GetTicket)
		tickets.PUT("/:id", config.TicketHandler.UpdateTicket)
		tickets.DELETE("/:id", config.TicketHandler.DeleteTicket)
	}
}
