package catalog

import (
	"fmt"
	"math"
	"os"
	"path/filepath"

	"courtcredits/models"

	"github.com/shopspring/decimal"
	"go.uber.org/multierr"
	"gopkg.in/yaml.v3"
)

// Schedule units accepted in catalog files.
const (
	UnitHours   = "hours"
	UnitMinutes = "minutes"
)

// File is the on-disk catalog document. JSON documents decode as YAML.
type File struct {
	ScheduleUnit      string                  `yaml:"scheduleUnit"`
	CourtTypeFallback string                  `yaml:"courtTypeFallback"`
	Locations         map[string]FileLocation `yaml:"locations"`
}

// FileLocation is one location entry of a catalog file.
type FileLocation struct {
	CourtTypePolicy  string                           `yaml:"courtTypePolicy"`
	CourtTypes       []string                         `yaml:"courtTypes"`
	DefaultCourtType string                           `yaml:"defaultCourtType"`
	Schedule         map[string]FileWindow            `yaml:"schedule"`
	Rates            map[string]map[string][]FileBand `yaml:"rates"`
}

// FileWindow holds opening and closing as hours (fractional allowed) or minutes.
type FileWindow struct {
	Opening float64 `yaml:"opening"`
	Closing float64 `yaml:"closing"`
}

// FileBand is a rate band with "HH:MM" bounds and a decimal hourly rate.
type FileBand struct {
	Start      string `yaml:"start"`
	End        string `yaml:"end"`
	HourlyRate string `yaml:"hourlyRate"`
}

// Load reads and validates the catalog file at path.
// fallback applies when the file does not set courtTypeFallback.
func Load(path string, fallback models.FallbackPolicy) (*Snapshot, error) {
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("read catalog %s: %w", path, err)
	}
	snap, err := Parse(data, fallback)
	if err != nil {
		return nil, fmt.Errorf("load catalog %s: %w", path, err)
	}
	return snap, nil
}

// Parse decodes and validates a catalog document.
func Parse(data []byte, fallback models.FallbackPolicy) (*Snapshot, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}
	if f.CourtTypeFallback != "" {
		fallback = models.FallbackPolicy(f.CourtTypeFallback)
	}
	specs, err := f.specs()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidCatalog, err)
	}
	return NewSnapshot(specs, fallback)
}

func (f *File) specs() ([]LocationSpec, error) {
	unit := f.ScheduleUnit
	if unit == "" {
		unit = UnitHours
	}
	if unit != UnitHours && unit != UnitMinutes {
		return nil, fmt.Errorf("unknown schedule unit %q", f.ScheduleUnit)
	}

	var errs error
	specs := make([]LocationSpec, 0, len(f.Locations))
	for name, fl := range f.Locations {
		spec := LocationSpec{
			Name:             name,
			CourtTypePolicy:  models.CourtTypePolicy(fl.CourtTypePolicy),
			CourtTypes:       fl.CourtTypes,
			DefaultCourtType: fl.DefaultCourtType,
			Schedule:         make(map[models.Weekday]models.OperatingWindow, len(fl.Schedule)),
			Rates:            make(map[string]map[models.DayType][]models.RateBand, len(fl.Rates)),
		}
		if spec.CourtTypePolicy == "" {
			spec.CourtTypePolicy = models.CourtTypeNone
		}

		for dayName, w := range fl.Schedule {
			day, err := models.ParseWeekday(dayName)
			if err != nil {
				errs = multierr.Append(errs, fmt.Errorf("%s: %w", name, err))
				continue
			}
			spec.Schedule[day] = models.OperatingWindow{
				Opening: toMinute(w.Opening, unit),
				Closing: toMinute(w.Closing, unit),
			}
		}

		for courtType, byDay := range fl.Rates {
			spec.Rates[courtType] = make(map[models.DayType][]models.RateBand, len(byDay))
			for dt, bands := range byDay {
				dayType := models.DayType(dt)
				if dayType != models.DayTypeWeekday && dayType != models.DayTypeWeekend {
					errs = multierr.Append(errs, fmt.Errorf("%s %q: unknown day type %q", name, courtType, dt))
					continue
				}
				parsed, err := parseBands(bands)
				if err != nil {
					errs = multierr.Append(errs, fmt.Errorf("%s %q %s: %w", name, courtType, dt, err))
					continue
				}
				spec.Rates[courtType][dayType] = parsed
			}
		}
		specs = append(specs, spec)
	}
	return specs, errs
}

func toMinute(v float64, unit string) models.Minute {
	if unit == UnitMinutes {
		return models.Minute(math.Round(v))
	}
	return models.MinuteFromHours(v)
}

func parseBands(bands []FileBand) ([]models.RateBand, error) {
	out := make([]models.RateBand, 0, len(bands))
	for _, b := range bands {
		start, err := models.ParseClock(b.Start)
		if err != nil {
			return nil, err
		}
		end, err := models.ParseClock(b.End)
		if err != nil {
			return nil, err
		}
		rate, err := decimal.NewFromString(b.HourlyRate)
		if err != nil {
			return nil, fmt.Errorf("invalid hourly rate %q: %w", b.HourlyRate, err)
		}
		out = append(out, models.RateBand{Start: start, End: end, HourlyRate: rate})
	}
	return out, nil
}
