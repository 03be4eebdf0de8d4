package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/Amsa221/softskills-project/internal/handlers"
)

// RegisterRoutes registers all HTTP routes under /api/v1.
func RegisterRoutes(ginRouter *gin.Engine, appHandlers *handlers.AppHandlers) {
	api := ginRouter.Group("/api/v1")
	{
		appHandlers.CategorieHandler.RegisterRoutes(api)
		appHandlers.ArticleHandler.RegisterRoutes(api)
		appHandlers.CommentaireHandler.RegisterRoutes(api)
		appHandlers.PaymentHandler.RegisterRoutes(api)
		appHandlers.AnalyticsHandler.RegisterRoutes(api)
		appHandlers.SkillHandler.RegisterRoutes(api)
		appHandlers.NewsletterHandler.RegisterRoutes(api)
	}
}
