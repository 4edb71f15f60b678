package model

import "time"

// Date constructs a calendar date as a time.Time at midnight UTC.
// All dates flowing through the pipeline use this representation so they
// compare equal when they name the same day.
func Date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// MenuRow represents one extracted menu line: a date, an item name, and an
// optional price. A row is materialized for every line slot of a day that
// has any menu at all, even when the individual slot is blank, so the table
// keeps its fixed per-day width for spreadsheet layout compatibility.
type MenuRow struct {
	Date     time.Time
	Name     string
	Price    int16
	HasPrice bool // false when the price slot was blank or unparseable
}

// MenuTable is the ordered collection of menu rows for one month,
// produced by a single extraction pass. Rows appear in grid order:
// week by week, weekday by weekday, line slot by line slot.
type MenuTable struct {
	Rows []MenuRow
}

// Dates returns the distinct dates present in the table, in row order.
func (t *MenuTable) Dates() []time.Time {
	var dates []time.Time
	seen := make(map[time.Time]bool)
	for _, row := range t.Rows {
		if !seen[row.Date] {
			seen[row.Date] = true
			dates = append(dates, row.Date)
		}
	}
	return dates
}

// RowsFor returns the rows for one date, in slot order.
func (t *MenuTable) RowsFor(date time.Time) []MenuRow {
	var rows []MenuRow
	for _, row := range t.Rows {
		if row.Date.Equal(date) {
			rows = append(rows, row)
		}
	}
	return rows
}

// ScheduleFlag is one (date, flag) cell of the resolved operation schedule.
// For each ISO week and flag name, at most one date carries Value=true.
type ScheduleFlag struct {
	Date  time.Time
	Name  string
	Value bool
}
