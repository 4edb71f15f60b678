package gdrive

import (
	"context"
	"fmt"

	"google.golang.org/api/sheets/v4"
)

// Sheets wraps the Sheets API client.
type Sheets struct {
	svc *sheets.Service
}

// NewSheets creates a Sheets client using application default credentials.
func NewSheets(ctx context.Context) (*Sheets, error) {
	svc, err := sheets.NewService(ctx)
	if err != nil {
		return nil, fmt.Errorf("gdrive: creating sheets service: %w", err)
	}
	return &Sheets{svc: svc}, nil
}

// Read returns the cell values of one range as strings. Ranges use the
// usual "Sheet!A1:D10" notation.
func (s *Sheets) Read(ctx context.Context, spreadsheetID, readRange string) ([][]string, error) {
	resp, err := s.svc.Spreadsheets.Values.BatchGet(spreadsheetID).
		Ranges(readRange).
		Context(ctx).
		Do()
	if err != nil {
		return nil, fmt.Errorf("gdrive: reading range %s: %w", readRange, err)
	}
	if len(resp.ValueRanges) == 0 {
		return nil, nil
	}

	var rows [][]string
	for _, raw := range resp.ValueRanges[0].Values {
		row := make([]string, 0, len(raw))
		for _, cell := range raw {
			row = append(row, fmt.Sprint(cell))
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// Write clears the range and writes the rows into it.
func (s *Sheets) Write(ctx context.Context, spreadsheetID, writeRange string, rows [][]string) error {
	if err := s.Clear(ctx, spreadsheetID, writeRange); err != nil {
		return err
	}

	values := make([][]interface{}, len(rows))
	for i, row := range rows {
		values[i] = make([]interface{}, len(row))
		for j, cell := range row {
			values[i][j] = cell
		}
	}

	_, err := s.svc.Spreadsheets.Values.BatchUpdate(spreadsheetID, &sheets.BatchUpdateValuesRequest{
		ValueInputOption: "USER_ENTERED",
		Data: []*sheets.ValueRange{{
			Range:          writeRange,
			MajorDimension: "ROWS",
			Values:         values,
		}},
	}).Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("gdrive: writing range %s: %w", writeRange, err)
	}
	return nil
}

// Clear removes the values in the given range.
func (s *Sheets) Clear(ctx context.Context, spreadsheetID, clearRange string) error {
	_, err := s.svc.Spreadsheets.Values.Clear(spreadsheetID, clearRange, &sheets.ClearValuesRequest{}).
		Context(ctx).
		Do()
	if err != nil {
		return fmt.Errorf("gdrive: clearing range %s: %w", clearRange, err)
	}
	return nil
}
