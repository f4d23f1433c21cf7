package models

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// BookingRequestInput holds the raw session fields as submitted by the form layer.
type BookingRequestInput struct {
	StudentName   string `json:"studentName,omitempty" bson:"studentName"`
	DayOfWeek     string `json:"dayOfWeek" bson:"dayOfWeek"`
	CourtLocation string `json:"courtLocation" bson:"courtLocation"`
	CourtType     string `json:"courtType,omitempty" bson:"courtType,omitempty"`
	SessionStart  string `json:"sessionStart" bson:"sessionStart"` // "HH:MM"
	SessionEnd    string `json:"sessionEnd" bson:"sessionEnd"`     // "HH:MM"
}

// ToRequest normalizes the form fields. Values that cannot be parsed are left unset.
func (in BookingRequestInput) ToRequest() BookingRequest {
	req := BookingRequest{
		Location:  strings.TrimSpace(in.CourtLocation),
		CourtType: strings.TrimSpace(in.CourtType),
	}
	if d, err := ParseWeekday(in.DayOfWeek); err == nil {
		req.Day = d
	}
	if m, err := ParseClock(in.SessionStart); err == nil {
		req.Start, req.HasStart = m, true
	}
	if m, err := ParseClock(in.SessionEnd); err == nil {
		req.End, req.HasEnd = m, true
	}
	return req
}

// BookingRequest is a single session to be priced.
type BookingRequest struct {
	Location  string
	CourtType string
	Day       Weekday
	Start     Minute
	End       Minute
	HasStart  bool
	HasEnd    bool
}

// UnitKind is the billing unit of a segment.
type UnitKind string

const (
	UnitHour     UnitKind = "hour"
	UnitHalfHour UnitKind = "half-hour"
)

// Minutes is the duration covered by one unit.
func (k UnitKind) Minutes() int {
	if k == UnitHalfHour {
		return 30
	}
	return 60
}

// BilledSegment is a run of identically priced units within a booking.
type BilledSegment struct {
	UnitCount int             `json:"unitCount"`
	UnitRate  decimal.Decimal `json:"unitRate"`
	UnitKind  UnitKind        `json:"unitKind"`
}

// Minutes is the total duration the segment bills for.
func (s BilledSegment) Minutes() int {
	return s.UnitCount * s.UnitKind.Minutes()
}

// Amount is UnitCount * UnitRate.
func (s BilledSegment) Amount() decimal.Decimal {
	return s.UnitRate.Mul(decimal.NewFromInt(int64(s.UnitCount)))
}

// Line renders the segment as consumed by the credit purchase action, e.g. "2x $19.00".
func (s BilledSegment) Line() string {
	return fmt.Sprintf("%dx $%s", s.UnitCount, s.UnitRate.StringFixed(2))
}

// QuoteOutcome classifies a booking request.
type QuoteOutcome string

const (
	OutcomeOk         QuoteOutcome = "ok"
	OutcomeIncomplete QuoteOutcome = "incomplete"
	OutcomeInvalid    QuoteOutcome = "invalid"
)

// Quote is the priced result of a booking request.
type Quote struct {
	Outcome  QuoteOutcome    `json:"outcome"`
	Reason   string          `json:"reason,omitempty"`
	Segments []BilledSegment `json:"segments"`
	Lines    []string        `json:"lines"`
	Credits  string          `json:"credits"` // Lines joined with "\n"
	Total    string          `json:"total"`
}
