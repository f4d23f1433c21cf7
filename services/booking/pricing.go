package booking

import (
	"fmt"
	"strings"

	"courtcredits/models"
	"courtcredits/services/catalog"

	"github.com/shopspring/decimal"
)

var two = decimal.NewFromInt(2)

// Segment splits a booking into priced segments at every rate band boundary.
// Requests that do not validate yield an empty list and no error. ErrMisaligned is
// returned when an overlap leaves a remainder other than 0 or 30 minutes.
func Segment(snap *catalog.Snapshot, req models.BookingRequest) ([]models.BilledSegment, error) {
	segments := []models.BilledSegment{}
	if outcome, _ := Validate(snap, req); outcome != models.OutcomeOk {
		return segments, nil
	}

	bands := snap.BandsFor(req.Location, req.CourtType, req.Day.DayType())
	for _, band := range bands {
		from := max(req.Start, band.Start)
		to := min(req.End, band.End)
		if from >= to {
			continue
		}

		d := int(to - from)
		hours, rest := d/60, d%60
		if rest != 0 && rest != 30 {
			return nil, fmt.Errorf("%w: %s-%s leaves %d minutes in band %s-%s",
				ErrMisaligned, req.Start, req.End, rest, band.Start, band.End)
		}
		if hours > 0 {
			segments = append(segments, models.BilledSegment{
				UnitCount: hours,
				UnitRate:  band.HourlyRate,
				UnitKind:  models.UnitHour,
			})
		}
		if rest == 30 {
			segments = append(segments, models.BilledSegment{
				UnitCount: 1,
				UnitRate:  band.HourlyRate.Div(two),
				UnitKind:  models.UnitHalfHour,
			})
		}
	}
	return segments, nil
}

// FormatLines renders each segment as "{count}x ${rate}".
func FormatLines(segments []models.BilledSegment) []string {
	lines := make([]string, len(segments))
	for i, s := range segments {
		lines[i] = s.Line()
	}
	return lines
}

// JoinLines joins credit lines with the line separator expected by the purchase action.
func JoinLines(lines []string) string {
	return strings.Join(lines, "\n")
}

// Total sums the price of every unit.
func Total(segments []models.BilledSegment) decimal.Decimal {
	total := decimal.Zero
	for _, s := range segments {
		total = total.Add(s.Amount())
	}
	return total
}

// BilledMinutes is the duration covered by segments.
func BilledMinutes(segments []models.BilledSegment) int {
	n := 0
	for _, s := range segments {
		n += s.Minutes()
	}
	return n
}
