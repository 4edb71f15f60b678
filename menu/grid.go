package menu

import (
	"strconv"
	"time"

	"github.com/tsawler/menugrid/layout"
	"github.com/tsawler/menugrid/model"
	"github.com/tsawler/menugrid/text"
)

// GridExtractor walks the flyer's fixed grid and assembles dated menu rows.
type GridExtractor struct {
	Template layout.Template
}

// NewGridExtractor creates a grid extractor for the given template.
func NewGridExtractor(tpl layout.Template) *GridExtractor {
	return &GridExtractor{Template: tpl}
}

// ExtractMonth extracts the full month's menu table starting at startDate,
// which must be the date of week 1 / column 1 (the header date). Price
// slots that hold text but fail integer parsing are reported as
// [PriceError] values; the pass itself never fails.
//
// The function is pure: it reads only the store and writes only its result,
// so cells could be processed in any order.
func (g *GridExtractor) ExtractMonth(store *model.TokenStore, startDate time.Time) (*model.MenuTable, []*PriceError) {
	ex := text.NewExtractor(store)

	table := &model.MenuTable{}
	var priceErrs []*PriceError

	for week := 0; week < layout.Weeks; week++ {
		weekStart := startDate.AddDate(0, 0, 7*week)
		for day := 0; day < layout.Weekdays; day++ {
			date := weekStart.AddDate(0, 0, day)
			rows, errs := g.extractDay(ex, week, day, date)
			table.Rows = append(table.Rows, rows...)
			priceErrs = append(priceErrs, errs...)
		}
	}

	return table, priceErrs
}

// extractDay extracts one day's rows. A day whose top line probes empty has
// no menu (closed or holiday) and contributes zero rows; any other day
// contributes exactly one row per line slot.
func (g *GridExtractor) extractDay(ex *text.Extractor, week, day int, date time.Time) ([]model.MenuRow, []*PriceError) {
	if ex.Region(g.Template.ProbeRegion(week, day)) == "" {
		return nil, nil
	}

	rows := make([]model.MenuRow, 0, layout.Lines)
	var priceErrs []*PriceError

	for line := 0; line < layout.Lines; line++ {
		row := model.MenuRow{
			Date: date,
			Name: cleanCell(ex.Region(g.Template.NameRegion(week, day, line))),
		}

		priceText := cleanCell(ex.Region(g.Template.PriceRegion(week, day, line)))
		if priceText != "" {
			price, err := strconv.ParseInt(priceText, 10, 16)
			if err != nil {
				priceErrs = append(priceErrs, &PriceError{Date: date, Slot: line, Text: priceText})
			} else {
				row.Price = int16(price)
				row.HasPrice = true
			}
		}

		rows = append(rows, row)
	}

	return rows, priceErrs
}
