package booking

import (
	"testing"

	"courtcredits/models"
	"courtcredits/services/catalog"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func values(points []models.TimePoint) []string {
	out := make([]string, len(points))
	for i, p := range points {
		out[i] = p.Value
	}
	return out
}

func TestBuildSlotGridCardinality(t *testing.T) {
	slots := BuildSlotGrid(models.OperatingWindow{Opening: 9 * 60, Closing: 22 * 60})
	require.Len(t, slots, 27)
	assert.Equal(t, "09:00", slots[0].Value)
	assert.Equal(t, "9:00 AM", slots[0].Label)
	assert.Equal(t, "22:00", slots[26].Value)
	assert.Equal(t, "10:00 PM", slots[26].Label)

	for i := 1; i < len(slots); i++ {
		assert.Equal(t, models.SlotStep, slots[i].Minute-slots[i-1].Minute)
	}
}

func TestBuildSlotGridClosingOffStep(t *testing.T) {
	slots := BuildSlotGrid(models.OperatingWindow{Opening: 9 * 60, Closing: 10*60 + 15})
	assert.Equal(t, []string{"09:00", "09:30", "10:00", "10:15"}, values(slots))
}

func TestBuildSlotGridClosedWindow(t *testing.T) {
	assert.Empty(t, BuildSlotGrid(models.OperatingWindow{}))
	assert.Empty(t, BuildSlotGrid(models.OperatingWindow{Opening: 600, Closing: 540}))
	assert.Equal(t, []string{"10:00"}, values(BuildSlotGrid(models.OperatingWindow{Opening: 600, Closing: 600})))
	assert.NotNil(t, BuildSlotGrid(models.OperatingWindow{}))
}

func TestSlotsFor(t *testing.T) {
	snap := catalog.Default(models.FallbackDefaultCourtType)

	malagaMonday := SlotsFor(snap, "PBA Malaga", models.Monday)
	require.NotEmpty(t, malagaMonday)
	assert.Equal(t, "13:00", malagaMonday[0].Value)
	assert.Equal(t, "1:00 PM", malagaMonday[0].Label)
	assert.Len(t, malagaMonday, (22-13)*2+1)

	canningvaleSunday := SlotsFor(snap, "PBA Canningvale", models.Sunday)
	assert.Equal(t, "20:00", canningvaleSunday[len(canningvaleSunday)-1].Value)

	assert.Empty(t, SlotsFor(snap, "Nowhere", models.Monday))
}

func TestEndSlotsAfter(t *testing.T) {
	slots := BuildSlotGrid(models.OperatingWindow{Opening: 9 * 60, Closing: 11 * 60})

	assert.Equal(t, []string{"10:00", "10:30", "11:00"}, values(EndSlotsAfter(slots, 9*60+30)))
	assert.Equal(t, []string{"09:30", "10:00", "10:30", "11:00"}, values(EndSlotsAfter(slots, 9*60+15)))
	assert.Empty(t, EndSlotsAfter(slots, 11*60))
}

func TestEveryGridIntervalPrices(t *testing.T) {
	snap := catalog.Default(models.FallbackDefaultCourtType)
	courtTypes := map[string][]string{
		"PBA Malaga":      {""},
		"PBA Canningvale": {"Hebat Court", "Super Court"},
	}

	for location, types := range courtTypes {
		for _, day := range models.AllWeekdays {
			slots := SlotsFor(snap, location, day)
			for _, start := range slots {
				for _, end := range EndSlotsAfter(slots, start.Minute) {
					for _, courtType := range types {
						req := models.BookingRequestInput{
							DayOfWeek: day.String(), CourtLocation: location, CourtType: courtType,
							SessionStart: start.Value, SessionEnd: end.Value,
						}.ToRequest()
						segments, err := Segment(snap, req)
						require.NoError(t, err, "%s %s %s-%s", location, day, start.Value, end.Value)
						assert.Equal(t, int(end.Minute-start.Minute), BilledMinutes(segments))
					}
				}
			}
		}
	}
}
