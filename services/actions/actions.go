// Package actions validates session actions and queues them for the dispatch worker.
package actions

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"courtcredits/models"
	"courtcredits/services/booking"
	"courtcredits/services/roster"
	"courtcredits/services/tasks"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

var (
	// ErrDuplicate is returned when the same credit purchase was submitted within the claim TTL.
	ErrDuplicate = errors.New("identical purchase already submitted")
	// ErrIncompleteSession is returned when an action needs session fields that are unset.
	ErrIncompleteSession = errors.New("session details are incomplete")
	// ErrUnpriceableSession is returned when a court booking does not validate against the catalog.
	ErrUnpriceableSession = errors.New("session cannot be priced")
)

// Claimer grants a key once per ttl.
type Claimer interface {
	Claim(ctx context.Context, key string, ttl time.Duration) (bool, error)
	Release(ctx context.Context, key string) error
}

// ActionService queues the actions an operator takes on a session.
type ActionService interface {
	BuyCredits(ctx context.Context, creditsToBuy string) (models.CreditPurchasePayload, []string, error)
	BookCourt(ctx context.Context, startingWeek string, in models.BookingRequestInput) (models.CourtBookingPayload, error)
	MessageStudent(ctx context.Context, in models.BookingRequestInput) (models.StudentMessagePayload, error)
	AddToCalendar(ctx context.Context, startingWeek string, in models.BookingRequestInput) (models.CalendarEventPayload, error)
}

// DefaultActionService implements ActionService on an asynq queue.
type DefaultActionService struct {
	Queue    tasks.Enqueuer
	Claims   Claimer
	Quotes   booking.QuoteService
	Roster   *roster.Snapshot
	Location *time.Location
	DedupTTL time.Duration
	Logger   *zap.Logger
}

// BuyCredits parses credit lines and queues one purchase. Lines that could not be parsed
// are returned alongside the payload.
func (s *DefaultActionService) BuyCredits(ctx context.Context, creditsToBuy string) (models.CreditPurchasePayload, []string, error) {
	credits, skipped := booking.ParseCreditLines(creditsToBuy)
	for _, line := range skipped {
		s.Logger.Warn("could not parse credit line", zap.String("line", line))
	}
	if len(credits) == 0 {
		return models.CreditPurchasePayload{}, skipped, booking.ErrNoCredits
	}

	claimKey := ""
	if s.Claims != nil && s.DedupTTL > 0 {
		key := normalizeCredits(creditsToBuy)
		ok, err := s.Claims.Claim(ctx, key, s.DedupTTL)
		if err != nil {
			// A cache outage should not block purchases.
			s.Logger.Warn("purchase claim unavailable", zap.Error(err))
		} else if !ok {
			return models.CreditPurchasePayload{}, skipped, ErrDuplicate
		} else {
			claimKey = key
		}
	}

	p := models.CreditPurchasePayload{RequestID: uuid.New().String(), Credits: credits}
	task, opts, err := tasks.NewCreditPurchaseTask(p)
	if err == nil {
		err = s.enqueue(task, opts)
	}
	if err != nil {
		// Nothing was queued, so a retry must not be reported as a duplicate.
		s.releaseClaim(ctx, claimKey)
		return models.CreditPurchasePayload{}, skipped, err
	}
	s.Logger.Info("queued credit purchase", zap.String("requestId", p.RequestID), zap.Int("credits", len(credits)))
	return p, skipped, nil
}

// BookCourt queues a court booking for a session that prices successfully.
func (s *DefaultActionService) BookCourt(ctx context.Context, startingWeek string, in models.BookingRequestInput) (models.CourtBookingPayload, error) {
	if _, err := booking.ParseWeekStarting(startingWeek, s.Location); err != nil {
		return models.CourtBookingPayload{}, err
	}
	q, err := s.Quotes.Quote(in)
	if err != nil {
		return models.CourtBookingPayload{}, err
	}
	switch q.Outcome {
	case models.OutcomeIncomplete:
		return models.CourtBookingPayload{}, ErrIncompleteSession
	case models.OutcomeInvalid:
		return models.CourtBookingPayload{}, fmt.Errorf("%w: %s", ErrUnpriceableSession, q.Reason)
	}

	p := models.CourtBookingPayload{
		RequestID:     uuid.New().String(),
		StartingWeek:  startingWeek,
		DayOfWeek:     in.DayOfWeek,
		CourtLocation: in.CourtLocation,
		CourtType:     in.CourtType,
		SessionStart:  in.SessionStart,
		SessionEnd:    in.SessionEnd,
	}
	task, opts, err := tasks.NewCourtBookingTask(p)
	if err != nil {
		return models.CourtBookingPayload{}, err
	}
	if err := s.enqueue(task, opts); err != nil {
		return models.CourtBookingPayload{}, err
	}
	s.Logger.Info("queued court booking", zap.String("requestId", p.RequestID), zap.String("location", p.CourtLocation))
	return p, nil
}

// MessageStudent queues a session notice to the student using their roster contact.
func (s *DefaultActionService) MessageStudent(ctx context.Context, in models.BookingRequestInput) (models.StudentMessagePayload, error) {
	if strings.TrimSpace(in.StudentName) == "" {
		return models.StudentMessagePayload{}, fmt.Errorf("%w: student name", ErrIncompleteSession)
	}
	if in.CourtLocation == "" || in.DayOfWeek == "" || in.SessionStart == "" || in.SessionEnd == "" {
		return models.StudentMessagePayload{}, ErrIncompleteSession
	}
	student, err := s.Roster.Find(in.StudentName)
	if err != nil {
		return models.StudentMessagePayload{}, err
	}

	p := models.StudentMessagePayload{
		RequestID:         uuid.New().String(),
		ContactPreference: student.ContactPreference,
		ContactInfo:       student.ContactInfo,
		StudentName:       student.Name,
		CourtLocation:     in.CourtLocation,
		DayOfWeek:         in.DayOfWeek,
		StartTime:         in.SessionStart,
		EndTime:           in.SessionEnd,
	}
	task, opts, err := tasks.NewStudentMessageTask(p)
	if err != nil {
		return models.StudentMessagePayload{}, err
	}
	if err := s.enqueue(task, opts); err != nil {
		return models.StudentMessagePayload{}, err
	}
	s.Logger.Info("queued student message", zap.String("requestId", p.RequestID), zap.String("student", p.StudentName))
	return p, nil
}

// AddToCalendar queues a calendar event for the session's date in the configured week.
func (s *DefaultActionService) AddToCalendar(ctx context.Context, startingWeek string, in models.BookingRequestInput) (models.CalendarEventPayload, error) {
	req := in.ToRequest()
	if req.Location == "" || !req.Day.Valid() || !req.HasStart || !req.HasEnd {
		return models.CalendarEventPayload{}, ErrIncompleteSession
	}
	start, end, err := booking.SessionWindow(startingWeek, req.Day, req.Start, req.End, s.Location)
	if err != nil {
		return models.CalendarEventPayload{}, err
	}

	p := models.CalendarEventPayload{
		RequestID: uuid.New().String(),
		Summary:   "Coaching Session at " + req.Location,
		Location:  req.Location,
		Start:     start.Format(time.RFC3339),
		End:       end.Format(time.RFC3339),
		TimeZone:  s.Location.String(),
	}
	task, opts, err := tasks.NewCalendarEventTask(p)
	if err != nil {
		return models.CalendarEventPayload{}, err
	}
	if err := s.enqueue(task, opts); err != nil {
		return models.CalendarEventPayload{}, err
	}
	s.Logger.Info("queued calendar event", zap.String("requestId", p.RequestID), zap.String("start", p.Start))
	return p, nil
}

func (s *DefaultActionService) releaseClaim(ctx context.Context, key string) {
	if key == "" {
		return
	}
	if err := s.Claims.Release(ctx, key); err != nil {
		s.Logger.Warn("purchase claim release failed", zap.String("key", key), zap.Error(err))
	}
}

func (s *DefaultActionService) enqueue(task *asynq.Task, opts []asynq.Option) error {
	info, err := s.Queue.Enqueue(task, opts...)
	if err != nil {
		return fmt.Errorf("enqueue %s: %w", task.Type(), err)
	}
	s.Logger.Debug("task enqueued", zap.String("type", task.Type()), zap.String("id", info.ID), zap.String("queue", info.Queue))
	return nil
}

// normalizeCredits makes the claim key independent of separators and spacing.
func normalizeCredits(text string) string {
	credits, _ := booking.ParseCreditLines(text)
	var b strings.Builder
	for _, c := range credits {
		b.WriteString(c.Amount.StringFixed(2))
		b.WriteByte(';')
	}
	return b.String()
}
