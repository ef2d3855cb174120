package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	authusecases "warrantydesk/internal/application/auth/usecases"
	productusecases "warrantydesk/internal/application/product/usecases"
	ticketusecases "warrantydesk/internal/application/ticket/usecases"
	"warrantydesk/internal/infrastructure/auth"
	"warrantydesk/internal/infrastructure/config"
	"warrantydesk/internal/infrastructure/repository"
	"warrantydesk/internal/interfaces/http/handlers"
	"warrantydesk/internal/interfaces/http/middleware"
	"warrantydesk/internal/interfaces/http/routes"
	"warrantydesk/internal/shared/authorization"
	shareddb "warrantydesk/internal/shared/db"
	"warrantydesk/internal/shared/logger"
	"warrantydesk/internal/shared/utils"
)

// Router wires repositories, use cases and handlers onto a gin engine.
type Router struct {
	engine          *gin.Engine
	warrantyHandler *handlers.WarrantyHandler
	productHandler  *handlers.ProductHandler
	ticketHandler   *handlers.TicketHandler
	authHandler     *handlers.AuthHandler
	authMiddleware  *middleware.AuthMiddleware
}

// jwtServiceAdapter bridges the infrastructure token service into the
// application-layer interface.
type jwtServiceAdapter struct {
	*auth.JWTService
}

func (a *jwtServiceAdapter) Generate(username string, role authorization.UserRole) (*authusecases.TokenPair, error) {
	pair, err := a.JWTService.Generate(username, role)
	if err != nil {
		return nil, err
	}
	return convertTokenPair(pair), nil
}

func (a *jwtServiceAdapter) Refresh(refreshToken string) (*authusecases.TokenPair, error) {
	pair, err := a.JWTService.Refresh(refreshToken)
	if err != nil {
		return nil, err
	}
	return convertTokenPair(pair), nil
}

func convertTokenPair(pair *auth.TokenPair) *authusecases.TokenPair {
	return &authusecases.TokenPair{
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
		ExpiresIn:    pair.ExpiresIn,
	}
}

// NewRouter creates a new HTTP router with all dependencies
func NewRouter(db *gorm.DB, cfg *config.Config, log logger.Interface) *Router {
	engine := gin.New()

	productRepo := repository.NewProductRepository(db)
	ticketRepo := repository.NewTicketRepository(db)
	txManager := shareddb.NewTransactionManager(db)

	jwtService := auth.NewJWTService(
		cfg.Auth.JWT.Secret,
		cfg.Auth.JWT.AccessExpMinutes,
		cfg.Auth.JWT.RefreshExpDays,
	)
	hasher := auth.NewBcryptPasswordHasher(cfg.Auth.BcryptCost)
	jwtAdapter := &jwtServiceAdapter{jwtService}

	warrantyHandler := handlers.NewWarrantyHandler(
		productusecases.NewCheckWarrantyUseCase(productRepo, ticketRepo, log),
	)

	productHandler := handlers.NewProductHandler(
		productusecases.NewRegisterProductUseCase(productRepo, log),
		productusecases.NewGetProductUseCase(productRepo, log),
		productusecases.NewListProductsUseCase(productRepo, log),
		productusecases.NewDeleteProductUseCase(productRepo, log),
		ticketusecases.NewListProductTicketsUseCase(ticketRepo, productRepo, log),
	)

	ticketHandler := handlers.NewTicketHandler(
		ticketusecases.NewCreateTicketUseCase(ticketRepo, productRepo, log),
		ticketusecases.NewUpdateTicketUseCase(ticketRepo, productRepo, txManager, log),
		ticketusecases.NewDeleteTicketUseCase(ticketRepo, log),
		ticketusecases.NewGetTicketUseCase(ticketRepo, log),
		ticketusecases.NewListTicketsUseCase(ticketRepo, log),
		ticketusecases.NewChangeStatusUseCase(ticketRepo, txManager, log),
		ticketusecases.NewAddNoteUseCase(ticketRepo, txManager, log),
		ticketusecases.NewExportTicketsUseCase(ticketRepo, log),
	)

	authHandler := handlers.NewAuthHandler(
		authusecases.NewLoginUseCase(cfg.Auth, hasher, jwtAdapter, log),
		authusecases.NewRefreshSessionUseCase(jwtAdapter, log),
		cfg.Auth,
	)

	authMiddleware := middleware.NewAuthMiddleware(jwtService, log)

	return &Router{
		engine:          engine,
		warrantyHandler: warrantyHandler,
		productHandler:  productHandler,
		ticketHandler:   ticketHandler,
		authHandler:     authHandler,
		authMiddleware:  authMiddleware,
	}
}

// SetupRoutes registers middleware and all route groups.
func (r *Router) SetupRoutes(cfg *config.Config, log logger.Interface) {
	r.engine.Use(middleware.Recovery())
	r.engine.Use(middleware.Logger(log))
	r.engine.Use(middleware.CORS(cfg.Server.AllowedOrigins))

	r.engine.GET("/api/health", func(c *gin.Context) {
		utils.SuccessResponse(c, http.StatusOK, "", gin.H{"status": "ok"})
	})

	routes.SetupWarrantyRoutes(r.engine, &routes.WarrantyRouteConfig{
		WarrantyHandler: r.warrantyHandler,
	})

	routes.SetupAuthRoutes(r.engine, &routes.AuthRouteConfig{
		AuthHandler:    r.authHandler,
		AuthMiddleware: r.authMiddleware,
	})

	routes.SetupProductRoutes(r.engine, &routes.ProductRouteConfig{
		ProductHandler: r.productHandler,
		AuthMiddleware: r.authMiddleware,
	})

	routes.SetupTicketRoutes(r.engine, &routes.TicketRouteConfig{
		TicketHandler:  r.ticketHandler,
		AuthMiddleware: r.authMiddleware,
	})
}

// Engine exposes the underlying gin engine for the HTTP server.
func (r *Router) Engine() *gin.Engine {
	return r.engine
}
