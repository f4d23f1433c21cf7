package handlers

import (
	"errors"
	"net/http"
	"time"

	planRepo "courtcredits/database/repository/plan"
	"courtcredits/models"
	"courtcredits/services/booking"
	"courtcredits/services/roster"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// PlanHandler stores the weekly session plan and serves the roster.
type PlanHandler struct {
	Repo     planRepo.WeekPlanRepository
	Quotes   booking.QuoteService
	Roster   *roster.Snapshot
	Location *time.Location
}

func NewPlanHandler(repo planRepo.WeekPlanRepository, quotes booking.QuoteService, r *roster.Snapshot, loc *time.Location) *PlanHandler {
	return &PlanHandler{Repo: repo, Quotes: quotes, Roster: r, Location: loc}
}

// GetStudentsHandler returns the roster.
func (h *PlanHandler) GetStudentsHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"students": h.Roster.All()})
}

// GetPlanHandler returns the most recently saved plan priced against the live catalog.
// An empty plan is returned before anything has been saved.
func (h *PlanHandler) GetPlanHandler(c *gin.Context) {
	var (
		plan *models.WeekPlan
		err  error
	)
	if id := c.Query("id"); id != "" {
		plan, err = h.Repo.GetByID(c.Request.Context(), id)
	} else {
		plan, err = h.Repo.Latest(c.Request.Context())
	}
	if errors.Is(err, planRepo.ErrPlanNotFound) && c.Query("id") == "" {
		c.JSON(http.StatusOK, models.WeekPlanResponse{Sessions: []models.PricedSession{}})
		return
	}
	if err != nil {
		respondError(c, "failed to load plan", err)
		return
	}
	h.respondPriced(c, http.StatusOK, *plan)
}

// SavePlanHandler stores the plan for its week.
func (h *PlanHandler) SavePlanHandler(c *gin.Context) {
	logger := getLogger(c)
	var plan models.WeekPlan
	if err := c.ShouldBindJSON(&plan); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	if _, err := booking.ParseWeekStarting(plan.WeekStarting, h.Location); err != nil {
		respondError(c, "invalid plan", err)
		return
	}

	saved, err := h.Repo.Save(c.Request.Context(), plan)
	if err != nil {
		respondError(c, "failed to save plan", err)
		return
	}
	logger.Info("week plan saved", zap.String("id", saved.ID), zap.String("weekStarting", saved.WeekStarting),
		zap.Int("sessions", len(saved.Sessions)))
	h.respondPriced(c, http.StatusOK, *saved)
}

func (h *PlanHandler) respondPriced(c *gin.Context, status int, plan models.WeekPlan) {
	resp, err := h.Quotes.PricePlan(plan)
	if err != nil {
		respondError(c, "failed to price plan", err)
		return
	}
	c.JSON(status, resp)
}
