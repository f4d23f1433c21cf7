package handlers

import (
	"errors"
	"net/http"

	planRepo "courtcredits/database/repository/plan"
	"courtcredits/services/actions"
	"courtcredits/services/booking"
	"courtcredits/services/catalog"
	"courtcredits/services/roster"
	"courtcredits/utils"

	"github.com/gin-gonic/gin"
)

// statusFor maps service errors to HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, booking.ErrNoCredits),
		errors.Is(err, booking.ErrNotMonday),
		errors.Is(err, booking.ErrInvalidDate),
		errors.Is(err, booking.ErrInvalidSession),
		errors.Is(err, actions.ErrIncompleteSession),
		errors.Is(err, actions.ErrUnpriceableSession),
		errors.Is(err, catalog.ErrInvalidCatalog):
		return http.StatusBadRequest
	case errors.Is(err, roster.ErrStudentNotFound),
		errors.Is(err, planRepo.ErrPlanNotFound):
		return http.StatusNotFound
	case errors.Is(err, actions.ErrDuplicate):
		return http.StatusConflict
	case errors.Is(err, booking.ErrMisaligned):
		return http.StatusUnprocessableEntity
	}
	return http.StatusInternalServerError
}

func respondError(c *gin.Context, message string, err error) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		getLogger(c).Sugar().Errorf("%s: %v", message, err)
		utils.JSONError(c, status, message, "")
		return
	}
	utils.JSONError(c, status, message, err.Error())
}
