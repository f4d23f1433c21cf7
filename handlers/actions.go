package handlers

import (
	"net/http"

	"courtcredits/models"
	"courtcredits/services/actions"

	"github.com/gin-gonic/gin"
)

// ActionHandler queues the actions an operator takes on a session.
type ActionHandler struct {
	Actions actions.ActionService
}

func NewActionHandler(svc actions.ActionService) *ActionHandler {
	return &ActionHandler{Actions: svc}
}

type buyCreditsRequest struct {
	CreditsToBuy string `json:"creditsToBuy" binding:"required"`
}

// sessionActionRequest is a session plus the week it belongs to.
type sessionActionRequest struct {
	WeekStarting string `json:"weekStarting"`
	models.BookingRequestInput
}

// BuyCreditsHandler queues a credit purchase from "{count}x ${rate}" lines.
func (h *ActionHandler) BuyCreditsHandler(c *gin.Context) {
	var req buyCreditsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	p, skipped, err := h.Actions.BuyCredits(c.Request.Context(), req.CreditsToBuy)
	if err != nil {
		respondError(c, "failed to buy credits", err)
		return
	}
	if skipped == nil {
		skipped = []string{}
	}
	c.JSON(http.StatusAccepted, gin.H{
		"requestId": p.RequestID,
		"credits":   p.Credits,
		"skipped":   skipped,
	})
}

// BookCourtHandler queues a court booking.
func (h *ActionHandler) BookCourtHandler(c *gin.Context) {
	var req sessionActionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	p, err := h.Actions.BookCourt(c.Request.Context(), req.WeekStarting, req.BookingRequestInput)
	if err != nil {
		respondError(c, "failed to book court", err)
		return
	}
	c.JSON(http.StatusAccepted, p)
}

// MessageStudentHandler queues a session notice to the student.
func (h *ActionHandler) MessageStudentHandler(c *gin.Context) {
	var in models.BookingRequestInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	p, err := h.Actions.MessageStudent(c.Request.Context(), in)
	if err != nil {
		respondError(c, "failed to message student", err)
		return
	}
	c.JSON(http.StatusAccepted, p)
}

// AddToCalendarHandler queues a calendar event for the session.
func (h *ActionHandler) AddToCalendarHandler(c *gin.Context) {
	var req sessionActionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	p, err := h.Actions.AddToCalendar(c.Request.Context(), req.WeekStarting, req.BookingRequestInput)
	if err != nil {
		respondError(c, "failed to add session to calendar", err)
		return
	}
	c.JSON(http.StatusAccepted, p)
}
