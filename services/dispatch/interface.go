// Package dispatch is the boundary to the collaborators that act on a session outside
// this service: buying credits, booking the court, messaging the student and adding
// the session to a calendar.
package dispatch

import (
	"context"

	"courtcredits/models"
)

// Dispatcher carries out queued session actions.
type Dispatcher interface {
	PurchaseCredits(ctx context.Context, p models.CreditPurchasePayload) error
	BookCourt(ctx context.Context, p models.CourtBookingPayload) error
	MessageStudent(ctx context.Context, p models.StudentMessagePayload) error
	AddCalendarEvent(ctx context.Context, p models.CalendarEventPayload) error
}
