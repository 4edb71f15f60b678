package schedule

import (
	"sort"
	"time"

	"github.com/tsawler/menugrid/model"
)

// Weekday numbering follows ISO 8601: Monday is 1, Sunday is 7.
const (
	Monday   = 1
	Thursday = 4
)

// FlagSpec names one recurring operation and the weekday it nominally
// runs on.
type FlagSpec struct {
	Name    string
	Weekday int
}

// DefaultFlags returns the four operation flags computed for every month.
// The flags are independent columns: three of them share Thursday and all
// three may be true on the same date.
func DefaultFlags() []FlagSpec {
	return []FlagSpec{
		{Name: "update_this_week", Weekday: Monday},
		{Name: "update_next_week", Weekday: Thursday},
		{Name: "notice_check_lunch", Weekday: Thursday},
		{Name: "report_next_week", Weekday: Thursday},
	}
}

// isoWeekday returns the ISO weekday of t (Monday=1 .. Sunday=7).
func isoWeekday(t time.Time) int {
	wd := int(t.Weekday())
	if wd == 0 {
		return 7
	}
	return wd
}

// weekStart returns the Monday of t's ISO week, as a date.
func weekStart(t time.Time) time.Time {
	return model.Date(t.Year(), t.Month(), t.Day()).AddDate(0, 0, 1-isoWeekday(t))
}

// Resolve computes, for each date, whether it is the effective date of an
// operation nominally scheduled on targetWeekday (Monday=1 .. Sunday=7).
//
// Each ISO week present in dates is resolved independently: starting from
// targetWeekday, the candidate weekday is decremented until a non-holiday
// date of that week is found, stopping at Monday. The first such date is
// marked true and every other date of the week false. A missing candidate
// date (not part of dates) is treated like a holiday: the search keeps
// rolling back. When no candidate qualifies the whole week stays false.
//
// Dates are expected to be date-valued (midnight) as produced by
// model.Date; duplicate dates resolve to a single entry.
func Resolve(dates []time.Time, targetWeekday int, cal Calendar) map[time.Time]bool {
	result := make(map[time.Time]bool, len(dates))
	weeks := make(map[time.Time][]time.Time)

	for _, d := range dates {
		result[d] = false
		weeks[weekStart(d)] = append(weeks[weekStart(d)], d)
	}

	for _, week := range weeks {
		for candidate := targetWeekday; candidate >= Monday; candidate-- {
			date, ok := dateWithWeekday(week, candidate)
			if !ok || cal.IsHoliday(date) {
				continue
			}
			result[date] = true
			break
		}
	}

	return result
}

// dateWithWeekday finds the date in week with the given ISO weekday.
func dateWithWeekday(week []time.Time, weekday int) (time.Time, bool) {
	for _, d := range week {
		if isoWeekday(d) == weekday {
			return d, true
		}
	}
	return time.Time{}, false
}

// ResolveFlags resolves every flag over the same date range and returns the
// flat flag rows, ordered by date and then by flag declaration order.
func ResolveFlags(dates []time.Time, flags []FlagSpec, cal Calendar) []model.ScheduleFlag {
	resolved := make([]map[time.Time]bool, len(flags))
	for i, flag := range flags {
		resolved[i] = Resolve(dates, flag.Weekday, cal)
	}

	unique := make([]time.Time, 0, len(dates))
	seen := make(map[time.Time]bool, len(dates))
	for _, d := range dates {
		if !seen[d] {
			seen[d] = true
			unique = append(unique, d)
		}
	}
	sort.Slice(unique, func(i, j int) bool { return unique[i].Before(unique[j]) })

	rows := make([]model.ScheduleFlag, 0, len(unique)*len(flags))
	for _, d := range unique {
		for i, flag := range flags {
			rows = append(rows, model.ScheduleFlag{Date: d, Name: flag.Name, Value: resolved[i][d]})
		}
	}
	return rows
}
