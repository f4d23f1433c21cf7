package booking

import (
	"fmt"

	"courtcredits/models"
	"courtcredits/services/catalog"
)

// Validate classifies req before it is priced. The reason is empty unless the
// outcome is models.OutcomeInvalid.
func Validate(snap *catalog.Snapshot, req models.BookingRequest) (models.QuoteOutcome, string) {
	if req.Location == "" || !req.Day.Valid() || !req.HasStart || !req.HasEnd {
		return models.OutcomeIncomplete, ""
	}

	loc, ok := snap.Location(req.Location)
	if !ok {
		return models.OutcomeInvalid, fmt.Sprintf("unknown location %q", req.Location)
	}
	if loc.CourtTypePolicy == models.CourtTypeRequired && req.CourtType == "" {
		return models.OutcomeInvalid, fmt.Sprintf("a court type is required at %s", req.Location)
	}
	if req.End <= req.Start {
		return models.OutcomeInvalid, "session end must be after session start"
	}
	if req.End > models.MinutesPerDay {
		return models.OutcomeInvalid, "session end must not be after 24:00"
	}
	if _, ok := snap.ResolveCourtType(req.Location, req.CourtType); !ok {
		return models.OutcomeInvalid, fmt.Sprintf("unrecognized court type %q at %s", req.CourtType, req.Location)
	}
	return models.OutcomeOk, ""
}
