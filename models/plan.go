package models

import "time"

// SessionEntry is one recurring weekly session of a plan.
type SessionEntry struct {
	BookingRequestInput `bson:",inline"`
	StatusMessaged      bool `json:"statusMessaged" bson:"statusMessaged"`
	StatusBooked        bool `json:"statusBooked" bson:"statusBooked"`
}

// WeekPlan is the operator's schedule for the week starting on WeekStarting (a Monday, "2006-01-02").
type WeekPlan struct {
	ID           string         `json:"id" bson:"id"`
	WeekStarting string         `json:"weekStarting" bson:"weekStarting"`
	Sessions     []SessionEntry `json:"sessions" bson:"sessions"`
	CreatedAt    time.Time      `json:"createdAt" bson:"createdAt"`
	UpdatedAt    time.Time      `json:"updatedAt" bson:"updatedAt"`
}

// PricedSession pairs a stored session with its current quote.
type PricedSession struct {
	SessionEntry
	Quote Quote `json:"quote"`
}

// WeekPlanResponse is a plan with every session priced against the live catalog.
type WeekPlanResponse struct {
	ID           string          `json:"id,omitempty"`
	WeekStarting string          `json:"weekStarting"`
	Sessions     []PricedSession `json:"sessions"`
}
