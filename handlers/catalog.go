package handlers

import (
	"net/http"

	"courtcredits/models"
	"courtcredits/services/booking"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// CatalogReloader re-reads the catalog source.
type CatalogReloader interface {
	Reload() (uint64, error)
	Version() uint64
}

// CatalogHandler serves the slot grid and quotes.
type CatalogHandler struct {
	Quotes booking.QuoteService
	Store  CatalogReloader
}

func NewCatalogHandler(quotes booking.QuoteService, store CatalogReloader) *CatalogHandler {
	return &CatalogHandler{Quotes: quotes, Store: store}
}

// GetLocationsHandler lists the bookable locations.
func (h *CatalogHandler) GetLocationsHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"locations": h.Quotes.Locations()})
}

// GetSlotsHandler returns the slot grid of a location on a day, or the valid end
// times when start is given.
func (h *CatalogHandler) GetSlotsHandler(c *gin.Context) {
	location := c.Query("location")
	day, err := models.ParseWeekday(c.Query("day"))
	if location == "" || err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "location and a valid day are required"})
		return
	}

	resp := models.SlotsResponse{Location: location, Day: day.String()}
	if raw := c.Query("start"); raw != "" {
		start, err := models.ParseClock(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid start", "details": err.Error()})
			return
		}
		resp.Start = start.Clock()
		resp.Slots = h.Quotes.EndSlots(location, day, start)
	} else {
		resp.Slots = h.Quotes.Slots(location, day)
	}
	c.JSON(http.StatusOK, resp)
}

// QuoteHandler prices one session. Incomplete and invalid sessions are reported in the
// outcome with a 200.
func (h *CatalogHandler) QuoteHandler(c *gin.Context) {
	var in models.BookingRequestInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	q, err := h.Quotes.Quote(in)
	if err != nil {
		respondError(c, "failed to price session", err)
		return
	}
	c.JSON(http.StatusOK, q)
}

// ReloadCatalogHandler re-reads the catalog and reports the published version.
func (h *CatalogHandler) ReloadCatalogHandler(c *gin.Context) {
	logger := getLogger(c)
	version, err := h.Store.Reload()
	if err != nil {
		logger.Warn("catalog reload rejected", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "catalog reload failed",
			"details": err.Error(),
			"version": h.Store.Version(),
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "catalog reloaded", "version": version})
}
