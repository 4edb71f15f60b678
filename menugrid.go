// Package menugrid extracts a month's lunch-menu table from OCR output of
// a fixed-layout flyer and resolves the holiday-aware weekly schedule that
// drives the ordering workflow.
//
// Basic usage:
//
//	table, priceErrs, err := menugrid.ExtractMonth(tokens, time.Now())
//	if err != nil {
//	    // handle error
//	}
//	for _, pe := range priceErrs {
//	    log.Println("unreadable price:", pe)
//	}
//
//	flags := menugrid.ResolveSchedule(table.Dates(), menugrid.Thursday, holidays)
//
// The lower-level packages (menu, layout, schedule, ocr) are available for
// finer control, such as extracting with a non-default layout template.
package menugrid

import (
	"time"

	"github.com/tsawler/menugrid/layout"
	"github.com/tsawler/menugrid/menu"
	"github.com/tsawler/menugrid/model"
	"github.com/tsawler/menugrid/schedule"
)

// Weekday constants for ResolveSchedule, ISO numbering (Monday is 1).
const (
	Monday   = schedule.Monday
	Thursday = schedule.Thursday
)

// ExtractMonth builds the menu table for the month named in the flyer's
// header. Tokens must be in the OCR engine's reading order; reference
// supplies the year (the flyer describes the month after reference).
//
// Price errors are non-fatal: the affected rows come back with no price
// and each failure is reported so it can be corrected by hand. The error
// is non-nil only when the header date cannot be read, which leaves no
// way to anchor the grid.
func ExtractMonth(tokens []model.Token, reference time.Time) (*model.MenuTable, []*menu.PriceError, error) {
	return menu.BuildMonth(model.NewTokenStore(tokens), layout.Default(), reference)
}

// ResolveSchedule marks, for each ISO week covered by dates, the day an
// action targeting targetWeekday should run: the target weekday itself,
// or the nearest earlier non-holiday weekday of the same week. A week
// whose candidates are all holidays gets no marked day.
func ResolveSchedule(dates []time.Time, targetWeekday int, cal schedule.Calendar) map[time.Time]bool {
	return schedule.Resolve(dates, targetWeekday, cal)
}
