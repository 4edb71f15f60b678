package schedule

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Calendar reports whether a date is a public holiday. Implementations
// must be total over the queried range: an unknown date is not a holiday.
type Calendar interface {
	IsHoliday(date time.Time) bool
}

// DateSet is an in-memory Calendar backed by a set of dates.
type DateSet map[string]struct{}

// NewDateSet builds a DateSet from the given holiday dates.
func NewDateSet(dates ...time.Time) DateSet {
	s := make(DateSet, len(dates))
	for _, d := range dates {
		s[d.Format("2006-01-02")] = struct{}{}
	}
	return s
}

// IsHoliday reports whether the date is in the set.
func (s DateSet) IsHoliday(date time.Time) bool {
	_, ok := s[date.Format("2006-01-02")]
	return ok
}

// calendarFile is the YAML shape of a holiday data file:
//
//	holidays:
//	  - 2026-01-01
//	  - 2026-01-12
type calendarFile struct {
	Holidays []string `yaml:"holidays"`
}

// Load reads a holiday calendar from a YAML file.
func Load(path string) (DateSet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("schedule: reading holiday file %s: %w", path, err)
	}

	var file calendarFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("schedule: parsing holiday file %s: %w", path, err)
	}

	set := make(DateSet, len(file.Holidays))
	for _, raw := range file.Holidays {
		if _, err := time.Parse("2006-01-02", raw); err != nil {
			return nil, fmt.Errorf("schedule: invalid holiday date %q in %s: %w", raw, path, err)
		}
		set[raw] = struct{}{}
	}
	return set, nil
}
