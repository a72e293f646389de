package controllers

import (
	"html/template"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"listing-app/middleware"
)

// NewRouter arma el router de gin con las vistas y la API
func NewRouter(pages *PageController, api *APIController, views *template.Template, logger *zap.SugaredLogger) *gin.Engine {
	router := gin.New()
	router.Use(middleware.RequestID(), middleware.RequestLogger(logger), middleware.Recovery(logger))
	router.SetHTMLTemplate(views)

	router.GET("/health", api.HealthCheck)

	// Vistas HTML
	router.GET("/", pages.Catalog)
	router.GET("/properties/:id", pages.Detail)
	router.POST("/properties/:id/booking", pages.Booking)
	router.GET("/properties/:id/summary", pages.Summary)

	// API JSON
	apiGroup := router.Group("/api")
	{
		apiGroup.GET("/properties", api.ListProperties)
		apiGroup.GET("/properties/:id", api.GetProperty)
		apiGroup.POST("/bookings/quote", api.Quote)
		apiGroup.POST("/bookings", api.CreateBooking)
	}

	return router
}
