package routes

import (
	"net/http"

	"smmehub_backend/internal/handlers"
	"smmehub_backend/internal/metrics"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes mounts the API under /api, the public published-site
// lookup at /site/:slug, and the operational endpoints at the root.
func RegisterRoutes(ginRouter *gin.Engine, appHandlers *handlers.AppHandlers) {
	api := ginRouter.Group("/api")
	{
		appHandlers.AuthHandler.RegisterRoutes(api)
		appHandlers.ProfileHandler.RegisterRoutes(api)
		appHandlers.VoucherHandler.RegisterRoutes(api)
		appHandlers.TenderHandler.RegisterRoutes(api)
		appHandlers.WebsiteHandler.RegisterRoutes(api)
		appHandlers.SocialHandler.RegisterRoutes(api)
		appHandlers.InvoiceHandler.RegisterRoutes(api)
		appHandlers.AnalyticsHandler.RegisterRoutes(api)
	}

	appHandlers.WebsiteHandler.RegisterPublicRoutes(ginRouter)

	ginRouter.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	ginRouter.GET("/metrics", gin.WrapH(metrics.Handler()))
}
