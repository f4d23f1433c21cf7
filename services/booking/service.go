package booking

import (
	"courtcredits/models"
	"courtcredits/services/catalog"

	"go.uber.org/zap"
)

// DefaultQuoteService implements QuoteService. Each call reads a single catalog
// snapshot so a concurrent reload never mixes two catalogs in one answer.
type DefaultQuoteService struct {
	Catalog *catalog.Store
	Logger  *zap.Logger
}

func NewQuoteService(store *catalog.Store, logger *zap.Logger) *DefaultQuoteService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DefaultQuoteService{Catalog: store, Logger: logger}
}

func (s *DefaultQuoteService) Locations() []models.LocationSummary {
	return s.Catalog.Current().Summaries()
}

func (s *DefaultQuoteService) Slots(location string, day models.Weekday) []models.TimePoint {
	return SlotsFor(s.Catalog.Current(), location, day)
}

func (s *DefaultQuoteService) EndSlots(location string, day models.Weekday, start models.Minute) []models.TimePoint {
	return EndSlotsAfter(SlotsFor(s.Catalog.Current(), location, day), start)
}

// Quote validates and prices a single session. Incomplete and invalid input produce an
// empty quote with the matching outcome, never an error.
func (s *DefaultQuoteService) Quote(in models.BookingRequestInput) (models.Quote, error) {
	return s.quote(s.Catalog.Current(), in)
}

// PricePlan prices every session of a plan against one snapshot.
func (s *DefaultQuoteService) PricePlan(plan models.WeekPlan) (models.WeekPlanResponse, error) {
	snap := s.Catalog.Current()
	resp := models.WeekPlanResponse{
		ID:           plan.ID,
		WeekStarting: plan.WeekStarting,
		Sessions:     make([]models.PricedSession, 0, len(plan.Sessions)),
	}
	for _, entry := range plan.Sessions {
		q, err := s.quote(snap, entry.BookingRequestInput)
		if err != nil {
			return models.WeekPlanResponse{}, err
		}
		resp.Sessions = append(resp.Sessions, models.PricedSession{SessionEntry: entry, Quote: q})
	}
	return resp, nil
}

func (s *DefaultQuoteService) quote(snap *catalog.Snapshot, in models.BookingRequestInput) (models.Quote, error) {
	req := in.ToRequest()
	outcome, reason := Validate(snap, req)
	if outcome != models.OutcomeOk {
		return emptyQuote(outcome, reason), nil
	}

	segments, err := Segment(snap, req)
	if err != nil {
		s.Logger.Error("segmentation contract violated",
			zap.String("location", req.Location), zap.Stringer("start", req.Start),
			zap.Stringer("end", req.End), zap.Error(err))
		return models.Quote{}, err
	}

	lines := FormatLines(segments)
	return models.Quote{
		Outcome:  models.OutcomeOk,
		Segments: segments,
		Lines:    lines,
		Credits:  JoinLines(lines),
		Total:    Total(segments).StringFixed(2),
	}, nil
}

func emptyQuote(outcome models.QuoteOutcome, reason string) models.Quote {
	return models.Quote{
		Outcome:  outcome,
		Reason:   reason,
		Segments: []models.BilledSegment{},
		Lines:    []string{},
		Total:    "0.00",
	}
}
