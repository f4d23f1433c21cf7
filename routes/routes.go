package routes

import (
	"time"

	"courtcredits/handlers"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterCatalogRoutes registers location, slot grid and quote endpoints.
func RegisterCatalogRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api")
	{
		api.GET("/catalog/locations", hb.GetLocationsHandler)
		api.GET("/slots", hb.GetSlotsHandler)
		api.POST("/quote", hb.QuoteHandler)
	}
}

// RegisterActionRoutes registers the endpoints that queue session actions.
func RegisterActionRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api")
	{
		api.POST("/credits/buy", hb.BuyCreditsHandler)
		api.POST("/court/book", hb.BookCourtHandler)
		api.POST("/students/message", hb.MessageStudentHandler)
		api.POST("/calendar", hb.AddToCalendarHandler)
	}
}

// RegisterPlanRoutes registers roster and weekly plan endpoints.
func RegisterPlanRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api")
	{
		api.GET("/students", hb.GetStudentsHandler)
		api.GET("/config", hb.GetPlanHandler)
		api.POST("/config", hb.SavePlanHandler)
	}
}

// RegisterAdminRoutes sets up endpoints for admin operations.
func RegisterAdminRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	adminGroup := r.Group("/api/admin")
	{
		adminGroup.POST("/catalog/reload", hb.ReloadCatalogHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.GET("/health", hb.HealthHandler)
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "X-Request-ID"},
		ExposeHeaders:    []string{"Content-Length", "X-Request-ID"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	RegisterHealthRoute(r, hb)
	RegisterCatalogRoutes(r, hb)
	RegisterActionRoutes(r, hb)
	RegisterPlanRoutes(r, hb)
	RegisterAdminRoutes(r, hb)
}
