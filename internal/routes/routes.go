package routes

import (
	"log/slog"
	"net/http"

	"council-portal-api/internal/handlers"
	"council-portal-api/internal/logging"
	"council-portal-api/internal/lookup"
	"council-portal-api/internal/middleware"
	"council-portal-api/internal/realtime"

	"github.com/gin-gonic/gin"
)

// SetupRoutes builds the gin engine serving h. Admin routes require a token
// issued by d.Auth.
func SetupRoutes(d handlers.Deps) *gin.Engine {
	if d.Logger == nil {
		d.Logger = logging.Discard()
	}
	h := handlers.New(d)

	ginRouter := gin.New()
	ginRouter.Use(gin.Recovery())
	ginRouter.Use(middleware.RequestLogger(d.Logger))
	ginRouter.Use(middleware.CORS())

	// Health check endpoint
	ginRouter.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"message": "Council portal API is running",
		})
	})

	// Public routes (no authentication required)
	api := ginRouter.Group("/api")
	{
		for _, resource := range lookup.Resources {
			api.GET("/"+resource, h.ListResource(resource))
		}
		api.GET("/search", h.Search)
		api.POST("/feedback", h.SubmitFeedback)
		api.POST("/login", h.Login)
		api.GET("/live", h.LiveFeed(realtime.TopicPublic))
	}

	// Admin routes (authentication required)
	admin := api.Group("/admin")
	admin.Use(middleware.JWTAuthMiddleware(d.Auth))
	{
		admin.GET("/suggestions", h.ListSuggestions)
		admin.POST("/news", h.PublishNews)
		admin.DELETE("/cache", h.ClearCache)
		admin.GET("/live", h.LiveFeed(realtime.TopicAdmin))
	}

	return ginRouter
}

// LogRoutes writes every registered route at debug level.
func LogRoutes(r *gin.Engine, logger *slog.Logger) {
	for _, ri := range r.Routes() {
		logger.Debug("route", "method", ri.Method, "path", ri.Path)
	}
}
