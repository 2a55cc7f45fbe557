package routes

import (
	"monprof_backend/internal/handlers"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes mounts the whole HTTP API under /api/v1.
func RegisterRoutes(ginRouter *gin.Engine, appHandlers *handlers.AppHandlers) {
	api := ginRouter.Group("/api/v1")
	{
		appHandlers.AuthHandler.RegisterRoutes(api)
		appHandlers.DashboardHandler.RegisterRoutes(api)
		appHandlers.TutorHandler.RegisterRoutes(api)
		appHandlers.RequestHandler.RegisterRoutes(api)
		appHandlers.BillingHandler.RegisterRoutes(api)
		appHandlers.MessagingHandler.RegisterRoutes(api)
		appHandlers.BlogHandler.RegisterRoutes(api)
		appHandlers.AdminHandler.RegisterRoutes(api)
		appHandlers.CatalogHandler.RegisterRoutes(api)
		appHandlers.FileHandler.RegisterRoutes(api)
	}
}
