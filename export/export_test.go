package export

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/tsawler/menugrid/model"
	"github.com/tsawler/menugrid/schedule"
)

func sampleTable() *model.MenuTable {
	monday := model.Date(2026, time.March, 2)
	return &model.MenuTable{Rows: []model.MenuRow{
		{Date: monday, Name: "唐揚げ弁当", Price: 450, HasPrice: true},
		{Date: monday, Name: "焼き鮭弁当", Price: 500, HasPrice: true},
		{Date: monday, Name: ""},
		{Date: monday.AddDate(0, 0, 3), Name: "のり弁当", Price: 400, HasPrice: true},
	}}
}

func sampleFlags() []model.ScheduleFlag {
	monday := model.Date(2026, time.March, 2)
	thursday := monday.AddDate(0, 0, 3)
	return []model.ScheduleFlag{
		{Date: monday, Name: "update_this_week", Value: true},
		{Date: monday, Name: "update_next_week", Value: false},
		{Date: thursday, Name: "update_next_week", Value: true},
		{Date: thursday, Name: "notice_check_lunch", Value: true},
		{Date: thursday, Name: "report_next_week", Value: true},
	}
}

func TestBuildRows(t *testing.T) {
	rows := BuildRows(sampleTable(), sampleFlags(), schedule.NewDateSet())

	require.Len(t, rows, 4)

	assert.Equal(t, "2026-03-02", rows[0].Date)
	assert.Equal(t, "唐揚げ弁当", rows[0].Name)
	assert.Equal(t, "450", rows[0].Price)
	assert.Equal(t, 1, rows[0].Weekday)
	assert.Equal(t, "FALSE", rows[0].IsHoliday)
	assert.Equal(t, "TRUE", rows[0].UpdateThisWeek)
	assert.Equal(t, "FALSE", rows[0].UpdateNextWeek)

	// Blank slot keeps its row with an empty price, never a zero.
	assert.Equal(t, "", rows[2].Price)

	assert.Equal(t, 4, rows[3].Weekday)
	assert.Equal(t, "TRUE", rows[3].UpdateNextWeek)
	assert.Equal(t, "TRUE", rows[3].NoticeCheckLunch)
	assert.Equal(t, "TRUE", rows[3].ReportNextWeek)
	assert.Equal(t, "FALSE", rows[3].UpdateThisWeek)
}

func TestBuildRowsLeftJoin(t *testing.T) {
	// A flag for a date with no menu rows contributes nothing.
	flags := append(sampleFlags(), model.ScheduleFlag{
		Date: model.Date(2026, time.March, 10), Name: "update_this_week", Value: true,
	})

	rows := BuildRows(sampleTable(), flags, schedule.NewDateSet())
	assert.Len(t, rows, 4)
}

func TestBuildRowsHolidayColumn(t *testing.T) {
	monday := model.Date(2026, time.March, 2)
	rows := BuildRows(sampleTable(), sampleFlags(), schedule.NewDateSet(monday))

	assert.Equal(t, "TRUE", rows[0].IsHoliday)
	assert.Equal(t, "FALSE", rows[3].IsHoliday)
}

func TestFileName(t *testing.T) {
	// A flyer starting in the tail of February is named for March.
	assert.Equal(t, "202603", FileName(model.Date(2026, time.February, 28)))
	assert.Equal(t, "202603", FileName(model.Date(2026, time.March, 2)))
	// December tail rolls into January of the next year.
	assert.Equal(t, "202701", FileName(model.Date(2026, time.December, 28)))
}

func TestCSVRoundTrip(t *testing.T) {
	rows := BuildRows(sampleTable(), sampleFlags(), schedule.NewDateSet())

	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, rows))

	got, err := ReadCSV(&buf)
	require.NoError(t, err)
	assert.Equal(t, rows, got)
}

func TestWriteXLSX(t *testing.T) {
	rows := BuildRows(sampleTable(), sampleFlags(), schedule.NewDateSet())

	var buf bytes.Buffer
	require.NoError(t, WriteXLSX(&buf, rows))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	cells, err := f.GetRows("menu")
	require.NoError(t, err)
	require.Len(t, cells, 5) // header + 4 rows

	assert.Equal(t, headers, cells[0])
	assert.Equal(t, "2026-03-02", cells[1][0])
	assert.Equal(t, "唐揚げ弁当", cells[1][1])
	assert.Equal(t, "450", cells[1][2])
}
