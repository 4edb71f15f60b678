package export

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"
)

// sheetName is the single worksheet the menu table is written to.
const sheetName = "menu"

// WriteXLSX writes the rows as a single-sheet workbook.
func WriteXLSX(w io.Writer, rows []Row) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return fmt.Errorf("export: naming sheet: %w", err)
	}

	header := make([]interface{}, len(headers))
	for i, h := range headers {
		header[i] = h
	}
	if err := f.SetSheetRow(sheetName, "A1", &header); err != nil {
		return fmt.Errorf("export: writing header row: %w", err)
	}

	for i, row := range rows {
		cells := []interface{}{
			row.Date, row.Name, row.Price, row.Weekday, row.IsHoliday,
			row.UpdateThisWeek, row.UpdateNextWeek, row.NoticeCheckLunch, row.ReportNextWeek,
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return fmt.Errorf("export: computing cell name: %w", err)
		}
		if err := f.SetSheetRow(sheetName, cell, &cells); err != nil {
			return fmt.Errorf("export: writing row %d: %w", i+1, err)
		}
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("export: writing workbook: %w", err)
	}
	return nil
}
