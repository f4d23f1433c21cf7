package dispatch

import (
	"context"

	"courtcredits/models"

	"go.uber.org/zap"
)

// LoggingDispatcher records each action without contacting an external system.
// It is used until a real collaborator is configured.
type LoggingDispatcher struct {
	Logger *zap.Logger
}

func NewLoggingDispatcher(logger *zap.Logger) *LoggingDispatcher {
	return &LoggingDispatcher{Logger: logger}
}

func (d *LoggingDispatcher) PurchaseCredits(_ context.Context, p models.CreditPurchasePayload) error {
	amounts := make([]string, len(p.Credits))
	for i, c := range p.Credits {
		amounts[i] = c.Amount.StringFixed(2)
	}
	d.Logger.Info("credit purchase requested",
		zap.String("requestId", p.RequestID), zap.Int("credits", len(p.Credits)), zap.Strings("amounts", amounts))
	return nil
}

func (d *LoggingDispatcher) BookCourt(_ context.Context, p models.CourtBookingPayload) error {
	d.Logger.Info("court booking requested",
		zap.String("requestId", p.RequestID), zap.String("week", p.StartingWeek), zap.String("day", p.DayOfWeek),
		zap.String("location", p.CourtLocation), zap.String("courtType", p.CourtType),
		zap.String("start", p.SessionStart), zap.String("end", p.SessionEnd))
	return nil
}

func (d *LoggingDispatcher) MessageStudent(_ context.Context, p models.StudentMessagePayload) error {
	d.Logger.Info("student message requested",
		zap.String("requestId", p.RequestID), zap.String("student", p.StudentName),
		zap.String("via", p.ContactPreference), zap.String("location", p.CourtLocation),
		zap.String("day", p.DayOfWeek), zap.String("start", p.StartTime), zap.String("end", p.EndTime))
	return nil
}

func (d *LoggingDispatcher) AddCalendarEvent(_ context.Context, p models.CalendarEventPayload) error {
	d.Logger.Info("calendar event requested",
		zap.String("requestId", p.RequestID), zap.String("summary", p.Summary),
		zap.String("start", p.Start), zap.String("end", p.End), zap.String("timeZone", p.TimeZone))
	return nil
}
