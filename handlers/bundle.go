// File: courtcredits/handlers/bundle.go
package handlers

import (
	"github.com/gin-gonic/gin"
)

// HandlerBundle groups all endpoint handlers into one struct.
type HandlerBundle struct {
	// Catalog endpoints
	GetLocationsHandler gin.HandlerFunc
	GetSlotsHandler     gin.HandlerFunc
	QuoteHandler        gin.HandlerFunc

	// Action endpoints
	BuyCreditsHandler     gin.HandlerFunc
	BookCourtHandler      gin.HandlerFunc
	MessageStudentHandler gin.HandlerFunc
	AddToCalendarHandler  gin.HandlerFunc

	// Roster and plan endpoints
	GetStudentsHandler gin.HandlerFunc
	GetPlanHandler     gin.HandlerFunc
	SavePlanHandler    gin.HandlerFunc

	// Admin endpoints
	ReloadCatalogHandler gin.HandlerFunc

	HealthHandler gin.HandlerFunc
}
