// Package catalog holds the read-only operating hours and rate tables of every location.
package catalog

import (
	"slices"
	"sort"

	"courtcredits/models"
)

// LocationSpec is the full configuration of one location.
type LocationSpec struct {
	Name             string
	CourtTypePolicy  models.CourtTypePolicy
	CourtTypes       []string
	DefaultCourtType string
	Schedule         map[models.Weekday]models.OperatingWindow
	// Rates is keyed by court type, or models.AnyCourtType, then by day type.
	Rates map[string]map[models.DayType][]models.RateBand
}

func (l *LocationSpec) recognizes(courtType string) bool {
	return slices.Contains(l.CourtTypes, courtType)
}

// Snapshot is an immutable view of the catalog. It must not be modified after construction.
type Snapshot struct {
	locations map[string]*LocationSpec
	fallback  models.FallbackPolicy
}

// NewSnapshot validates specs and builds a snapshot from them.
func NewSnapshot(specs []LocationSpec, fallback models.FallbackPolicy) (*Snapshot, error) {
	if fallback == "" {
		fallback = models.FallbackDefaultCourtType
	}
	if err := validate(specs, fallback); err != nil {
		return nil, err
	}
	s := &Snapshot{
		locations: make(map[string]*LocationSpec, len(specs)),
		fallback:  fallback,
	}
	for i := range specs {
		spec := specs[i]
		s.locations[spec.Name] = &spec
	}
	return s, nil
}

// FallbackPolicy reports how unrecognized court types are resolved.
func (s *Snapshot) FallbackPolicy() models.FallbackPolicy { return s.fallback }

// Location returns the spec of a location, if known.
func (s *Snapshot) Location(name string) (*LocationSpec, bool) {
	l, ok := s.locations[name]
	return l, ok
}

// Locations returns every location name in sorted order.
func (s *Snapshot) Locations() []string {
	names := make([]string, 0, len(s.locations))
	for name := range s.locations {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Summaries describes every location for selection menus.
func (s *Snapshot) Summaries() []models.LocationSummary {
	out := make([]models.LocationSummary, 0, len(s.locations))
	for _, name := range s.Locations() {
		l := s.locations[name]
		out = append(out, models.LocationSummary{
			Name:             l.Name,
			CourtTypePolicy:  l.CourtTypePolicy,
			CourtTypes:       slices.Clone(l.CourtTypes),
			DefaultCourtType: l.DefaultCourtType,
		})
	}
	return out
}

// RequiresCourtType reports whether bookings at location must name a court type.
func (s *Snapshot) RequiresCourtType(location string) bool {
	l, ok := s.locations[location]
	return ok && l.CourtTypePolicy == models.CourtTypeRequired
}

// WindowFor returns the operating window of location on day.
// Unknown locations and days resolve to the closed window.
func (s *Snapshot) WindowFor(location string, day models.Weekday) models.OperatingWindow {
	l, ok := s.locations[location]
	if !ok {
		return models.OperatingWindow{}
	}
	return l.Schedule[day]
}

// ResolveCourtType maps the requested court type to the rate table key that bills it.
// ok is false when no table applies: unknown location, a missing mandatory court type,
// or an unrecognized court type under FallbackReject.
func (s *Snapshot) ResolveCourtType(location, courtType string) (key string, ok bool) {
	l, found := s.locations[location]
	if !found {
		return "", false
	}
	switch {
	case l.CourtTypePolicy == models.CourtTypeNone:
		return models.AnyCourtType, true
	case courtType == "":
		if l.CourtTypePolicy == models.CourtTypeRequired {
			return "", false
		}
		return models.AnyCourtType, true
	case l.recognizes(courtType):
		return courtType, true
	case s.fallback == models.FallbackDefaultCourtType && l.DefaultCourtType != "":
		return l.DefaultCourtType, true
	case s.fallback == models.FallbackDefaultCourtType && l.CourtTypePolicy == models.CourtTypeOptional:
		return models.AnyCourtType, true
	}
	return "", false
}

// BandsFor returns the ordered rate bands for a location, court type and day type.
// Configuration gaps resolve to nil.
func (s *Snapshot) BandsFor(location, courtType string, dayType models.DayType) []models.RateBand {
	key, ok := s.ResolveCourtType(location, courtType)
	if !ok {
		return nil
	}
	return slices.Clone(s.locations[location].Rates[key][dayType])
}
