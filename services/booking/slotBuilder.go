package booking

import (
	"courtcredits/models"
	"courtcredits/services/catalog"
)

// BuildSlotGrid steps through w in half-hour increments. closing is always the last point,
// even when it is not on the half-hour step from opening. A closed window yields no points.
func BuildSlotGrid(w models.OperatingWindow) []models.TimePoint {
	if w.Closed() || w.Closing < w.Opening {
		return []models.TimePoint{}
	}
	slots := make([]models.TimePoint, 0, int((w.Closing-w.Opening)/models.SlotStep)+2)
	for m := w.Opening; m < w.Closing; m += models.SlotStep {
		slots = append(slots, models.NewTimePoint(m))
	}
	return append(slots, models.NewTimePoint(w.Closing))
}

// SlotsFor returns the selectable time points of location on day.
func SlotsFor(snap *catalog.Snapshot, location string, day models.Weekday) []models.TimePoint {
	return BuildSlotGrid(snap.WindowFor(location, day))
}

// EndSlotsAfter keeps the points strictly after start, compared by minute value.
func EndSlotsAfter(slots []models.TimePoint, start models.Minute) []models.TimePoint {
	out := make([]models.TimePoint, 0, len(slots))
	for _, s := range slots {
		if s.Minute > start {
			out = append(out, s)
		}
	}
	return out
}
