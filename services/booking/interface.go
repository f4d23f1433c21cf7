package booking

import (
	"courtcredits/models"
)

// QuoteService exposes slot grids and session pricing against the live catalog.
type QuoteService interface {
	Locations() []models.LocationSummary
	Slots(location string, day models.Weekday) []models.TimePoint
	EndSlots(location string, day models.Weekday, start models.Minute) []models.TimePoint
	Quote(in models.BookingRequestInput) (models.Quote, error)
	PricePlan(plan models.WeekPlan) (models.WeekPlanResponse, error)
}
