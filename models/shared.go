package models

import "github.com/shopspring/decimal"

// CreditUnit is a single credit to purchase.
type CreditUnit struct {
	Amount decimal.Decimal `json:"amount"`
}

// CreditPurchasePayload is queued for the credit purchase collaborator.
type CreditPurchasePayload struct {
	RequestID string       `json:"requestId"`
	Credits   []CreditUnit `json:"credits"`
}

// CourtBookingPayload is queued for the court booking collaborator.
type CourtBookingPayload struct {
	RequestID     string `json:"requestId"`
	StartingWeek  string `json:"startingWeek"`
	DayOfWeek     string `json:"dayOfWeek"`
	CourtLocation string `json:"courtLocation"`
	CourtType     string `json:"courtType,omitempty"`
	SessionStart  string `json:"sessionStart"`
	SessionEnd    string `json:"sessionEnd"`
}

// StudentMessagePayload is queued for the messaging collaborator.
type StudentMessagePayload struct {
	RequestID         string `json:"requestId"`
	ContactPreference string `json:"contactPreference"`
	ContactInfo       string `json:"contactInfo"`
	StudentName       string `json:"studentName"`
	CourtLocation     string `json:"courtLocation"`
	DayOfWeek         string `json:"dayOfWeek"`
	StartTime         string `json:"startTime"`
	EndTime           string `json:"endTime"`
}

// CalendarEventPayload is queued for the calendar collaborator.
type CalendarEventPayload struct {
	RequestID string `json:"requestId"`
	Summary   string `json:"summary"`
	Location  string `json:"location"`
	Start     string `json:"start"` // RFC 3339
	End       string `json:"end"`   // RFC 3339
	TimeZone  string `json:"timeZone"`
}
