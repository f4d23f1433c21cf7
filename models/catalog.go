package models

import "github.com/shopspring/decimal"

// OperatingWindow is the open/close range of a location on one day.
// The zero value means closed.
type OperatingWindow struct {
	Opening Minute `json:"opening"`
	Closing Minute `json:"closing"`
}

// Closed reports whether the window yields no bookable time.
func (w OperatingWindow) Closed() bool {
	return w.Opening == 0 && w.Closing == 0
}

// RateBand is a half-open [Start, End) range of the day billed at HourlyRate.
type RateBand struct {
	Start      Minute          `json:"start"`
	End        Minute          `json:"end"`
	HourlyRate decimal.Decimal `json:"hourlyRate"`
}

// CourtTypePolicy states whether a location takes a court type.
type CourtTypePolicy string

const (
	CourtTypeNone     CourtTypePolicy = "none"
	CourtTypeOptional CourtTypePolicy = "optional"
	CourtTypeRequired CourtTypePolicy = "required"
)

// AnyCourtType keys the rate table used when a location has no court-type dimension
// or when no court type was given for an optional one.
const AnyCourtType = "*"

// FallbackPolicy decides what an unrecognized court type resolves to.
type FallbackPolicy string

const (
	// FallbackDefaultCourtType bills an unrecognized court type at the location's default court type.
	FallbackDefaultCourtType FallbackPolicy = "default-court-type"
	// FallbackReject treats an unrecognized court type as invalid input.
	FallbackReject FallbackPolicy = "reject"
)

// LocationSummary is the public view of a location.
type LocationSummary struct {
	Name             string          `json:"name"`
	CourtTypePolicy  CourtTypePolicy `json:"courtTypePolicy"`
	CourtTypes       []string        `json:"courtTypes,omitempty"`
	DefaultCourtType string          `json:"defaultCourtType,omitempty"`
}
