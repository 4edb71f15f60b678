// Package export renders the extracted menu table, joined with its
// schedule flags, to the tabular formats the rest of the workflow
// consumes: CSV for the spreadsheet upload and XLSX for local archives.
package export

import (
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/gocarina/gocsv"

	"github.com/tsawler/menugrid/model"
	"github.com/tsawler/menugrid/schedule"
)

// Row is one output line of the menu table. Booleans are rendered as
// "TRUE"/"FALSE" to match how the spreadsheet layer round-trips them.
type Row struct {
	Date             string `csv:"date"`
	Name             string `csv:"name"`
	Price            string `csv:"price"`
	Weekday          int    `csv:"weekday"`
	IsHoliday        string `csv:"is_holiday"`
	UpdateThisWeek   string `csv:"update_this_week"`
	UpdateNextWeek   string `csv:"update_next_week"`
	NoticeCheckLunch string `csv:"notice_check_lunch"`
	ReportNextWeek   string `csv:"report_next_week"`
}

// headers lists the column order for the XLSX writer; gocsv derives the
// same order from the struct tags.
var headers = []string{
	"date", "name", "price", "weekday", "is_holiday",
	"update_this_week", "update_next_week", "notice_check_lunch", "report_next_week",
}

// BuildRows joins schedule flags onto the menu table by date and renders
// the combined rows. The join is a left join from the table's dates: flag
// dates without menu rows contribute nothing. Flags with names outside the
// four known columns are ignored.
func BuildRows(table *model.MenuTable, flags []model.ScheduleFlag, cal schedule.Calendar) []Row {
	type dayFlags struct {
		updateThisWeek   bool
		updateNextWeek   bool
		noticeCheckLunch bool
		reportNextWeek   bool
	}

	byDate := make(map[time.Time]dayFlags)
	for _, f := range flags {
		df := byDate[f.Date]
		switch f.Name {
		case "update_this_week":
			df.updateThisWeek = f.Value
		case "update_next_week":
			df.updateNextWeek = f.Value
		case "notice_check_lunch":
			df.noticeCheckLunch = f.Value
		case "report_next_week":
			df.reportNextWeek = f.Value
		}
		byDate[f.Date] = df
	}

	rows := make([]Row, 0, len(table.Rows))
	for _, mr := range table.Rows {
		price := ""
		if mr.HasPrice {
			price = strconv.Itoa(int(mr.Price))
		}
		df := byDate[mr.Date]
		rows = append(rows, Row{
			Date:             mr.Date.Format("2006-01-02"),
			Name:             mr.Name,
			Price:            price,
			Weekday:          isoWeekday(mr.Date),
			IsHoliday:        formatBool(cal.IsHoliday(mr.Date)),
			UpdateThisWeek:   formatBool(df.updateThisWeek),
			UpdateNextWeek:   formatBool(df.updateNextWeek),
			NoticeCheckLunch: formatBool(df.noticeCheckLunch),
			ReportNextWeek:   formatBool(df.reportNextWeek),
		})
	}
	return rows
}

// FileName returns the artifact name for a month whose flyer starts at
// startDate: the year and month of the week after the start date, so a
// flyer beginning in the last days of the previous month is still named
// for the month it covers.
func FileName(startDate time.Time) string {
	target := startDate.AddDate(0, 0, 7)
	return fmt.Sprintf("%04d%02d", target.Year(), int(target.Month()))
}

// WriteCSV writes the rows as CSV with a header line.
func WriteCSV(w io.Writer, rows []Row) error {
	if err := gocsv.Marshal(&rows, w); err != nil {
		return fmt.Errorf("export: writing csv: %w", err)
	}
	return nil
}

// ReadCSV parses rows previously written by WriteCSV.
func ReadCSV(r io.Reader) ([]Row, error) {
	var rows []Row
	if err := gocsv.Unmarshal(r, &rows); err != nil {
		return nil, fmt.Errorf("export: reading csv: %w", err)
	}
	return rows, nil
}

func formatBool(b bool) string {
	if b {
		return "TRUE"
	}
	return "FALSE"
}

func isoWeekday(t time.Time) int {
	wd := int(t.Weekday())
	if wd == 0 {
		return 7
	}
	return wd
}
