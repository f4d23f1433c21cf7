package catalog

import (
	"errors"
	"fmt"

	"courtcredits/models"

	"go.uber.org/multierr"
)

// ErrInvalidCatalog wraps every catalog validation failure.
var ErrInvalidCatalog = errors.New("invalid catalog")

var dayTypes = []models.DayType{models.DayTypeWeekday, models.DayTypeWeekend}

// validate checks every invariant of the catalog and reports all violations at once.
func validate(specs []LocationSpec, fallback models.FallbackPolicy) error {
	var errs error
	if fallback != models.FallbackDefaultCourtType && fallback != models.FallbackReject {
		errs = multierr.Append(errs, fmt.Errorf("unknown court type fallback %q", fallback))
	}

	seen := make(map[string]bool, len(specs))
	for i := range specs {
		l := &specs[i]
		if l.Name == "" {
			errs = multierr.Append(errs, fmt.Errorf("location #%d has no name", i))
			continue
		}
		if seen[l.Name] {
			errs = multierr.Append(errs, fmt.Errorf("%s: duplicate location", l.Name))
		}
		seen[l.Name] = true
		errs = multierr.Append(errs, validateLocation(l))
	}

	if errs != nil {
		return fmt.Errorf("%w: %w", ErrInvalidCatalog, errs)
	}
	return nil
}

func validateLocation(l *LocationSpec) error {
	var errs error
	for day, w := range l.Schedule {
		if !day.Valid() {
			errs = multierr.Append(errs, fmt.Errorf("%s: invalid day %d in schedule", l.Name, day))
			continue
		}
		if w.Opening < 0 || w.Opening > w.Closing || w.Closing > models.MinutesPerDay {
			errs = multierr.Append(errs, fmt.Errorf("%s %s: opening %d and closing %d are out of order", l.Name, day, w.Opening, w.Closing))
		}
		if !onStep(w.Opening) || !onStep(w.Closing) {
			errs = multierr.Append(errs, fmt.Errorf("%s %s: opening %s and closing %s must be on the %d minute slot step",
				l.Name, day, w.Opening, w.Closing, models.SlotStep))
		}
	}

	var tables []string
	switch l.CourtTypePolicy {
	case models.CourtTypeNone:
		if len(l.CourtTypes) > 0 {
			errs = multierr.Append(errs, fmt.Errorf("%s: court types declared but policy is %q", l.Name, l.CourtTypePolicy))
		}
		tables = []string{models.AnyCourtType}
	case models.CourtTypeOptional:
		tables = append([]string{models.AnyCourtType}, l.CourtTypes...)
	case models.CourtTypeRequired:
		if len(l.CourtTypes) == 0 {
			errs = multierr.Append(errs, fmt.Errorf("%s: court type required but none declared", l.Name))
		}
		if l.DefaultCourtType == "" {
			errs = multierr.Append(errs, fmt.Errorf("%s: court type required but no default court type", l.Name))
		}
		tables = l.CourtTypes
	default:
		errs = multierr.Append(errs, fmt.Errorf("%s: unknown court type policy %q", l.Name, l.CourtTypePolicy))
	}

	if l.DefaultCourtType != "" && !l.recognizes(l.DefaultCourtType) {
		errs = multierr.Append(errs, fmt.Errorf("%s: default court type %q is not declared", l.Name, l.DefaultCourtType))
	}

	for _, key := range tables {
		byDay, ok := l.Rates[key]
		if !ok {
			errs = multierr.Append(errs, fmt.Errorf("%s: no rates for court type %q", l.Name, key))
			continue
		}
		for _, dt := range dayTypes {
			if err := validateBands(byDay[dt]); err != nil {
				errs = multierr.Append(errs, fmt.Errorf("%s %q %s: %w", l.Name, key, dt, err))
			}
		}
	}
	for key := range l.Rates {
		if key != models.AnyCourtType && !l.recognizes(key) {
			errs = multierr.Append(errs, fmt.Errorf("%s: rates for undeclared court type %q", l.Name, key))
		}
	}

	return errs
}

// validateBands checks the bands are ordered and partition the whole day.
func validateBands(bands []models.RateBand) error {
	if len(bands) == 0 {
		return errors.New("rate table is empty")
	}
	next := models.Minute(0)
	for _, b := range bands {
		if b.Start != next {
			return fmt.Errorf("band %s-%s does not start at %s", b.Start, b.End, next)
		}
		if b.End <= b.Start {
			return fmt.Errorf("band %s-%s is empty", b.Start, b.End)
		}
		if !onStep(b.Start) || !onStep(b.End) {
			return fmt.Errorf("band %s-%s is not on the %d minute slot step", b.Start, b.End, models.SlotStep)
		}
		if b.HourlyRate.IsNegative() {
			return fmt.Errorf("band %s-%s has negative rate %s", b.Start, b.End, b.HourlyRate)
		}
		next = b.End
	}
	if next != models.MinutesPerDay {
		return fmt.Errorf("rate table ends at %s instead of 24:00", next)
	}
	return nil
}

// onStep reports whether m lies on the slot grid. Every grid point then splits
// every band into whole hours and at most one half hour.
func onStep(m models.Minute) bool {
	return m%models.SlotStep == 0
}
