package models

// TimePoint is one selectable start or end time of the slot grid.
type TimePoint struct {
	Value  string `json:"value"` // "HH:MM", 24-hour
	Label  string `json:"label"` // "H:MM AM"
	Minute Minute `json:"minute"`
}

// NewTimePoint renders both representations of m.
func NewTimePoint(m Minute) TimePoint {
	return TimePoint{Value: m.Clock(), Label: m.Label(), Minute: m}
}

// SlotsResponse is returned by the slot grid endpoint.
type SlotsResponse struct {
	Location string      `json:"location"`
	Day      string      `json:"day"`
	Start    string      `json:"start,omitempty"`
	Slots    []TimePoint `json:"slots"`
}
