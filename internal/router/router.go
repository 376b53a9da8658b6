package router

import (
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/pageza/mess-menu/backend/internal/api"
	"github.com/pageza/mess-menu/backend/internal/middleware"
	"github.com/pageza/mess-menu/backend/internal/service"
)

// Dependencies are the services the routes are built on
type Dependencies struct {
	Menus          service.IMenuStore
	Cart           service.ICartService
	Archive        service.IArchiveService
	Logger         *logrus.Logger
	AllowedOrigins []string
	// RateLimiter guards mutating routes; nil disables rate limiting
	RateLimiter *middleware.RateLimiter
}

// SetupRouter configures the application routes
func SetupRouter(deps Dependencies) *gin.Engine {
	router := gin.New()
	router.Use(
		middleware.RequestID(),
		middleware.RequestLogger(deps.Logger),
		middleware.Recovery(deps.Logger),
		middleware.CORS(deps.AllowedOrigins),
	)

	var write []gin.HandlerFunc
	if deps.RateLimiter != nil {
		write = append(write, deps.RateLimiter.Middleware())
	}

	router.GET("/health", api.HealthCheck)

	v1 := router.Group("/api")
	v1.GET("/health", api.HealthCheck)

	api.NewMessHandler(deps.Menus, deps.Logger).RegisterRoutes(v1, write...)
	api.NewArchiveHandler(deps.Archive, deps.Logger).RegisterRoutes(v1, write...)
	api.NewCartHandler(deps.Cart).RegisterRoutes(&router.RouterGroup, write...)

	router.NoRoute(api.NotFound)

	return router
}
