package runner

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/tsawler/menugrid/export"
	"github.com/tsawler/menugrid/menu"
	"github.com/tsawler/menugrid/model"
	"github.com/tsawler/menugrid/ocr"
	"github.com/tsawler/menugrid/schedule"
)

// Create builds next month's menu table from the newest OCR output and
// publishes it: the table and its schedule flags are saved locally and the
// joined rows are uploaded as a new spreadsheet.
//
// The OCR engine runs upstream and drops its JSON response into the Vision
// folder; Create consumes that response. When no new response exists for
// today the operation is a no-op.
func (r *Runner) Create(ctx context.Context, today time.Time) error {
	files, err := r.deps.Files.Search(ctx, r.cfg.Drive.VisionFolderID, ".json", today)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		r.log.Info("no new OCR output, nothing to create")
		return nil
	}
	newest := files[0]

	var raw bytes.Buffer
	if err := r.deps.Files.Download(ctx, newest.ID, &raw); err != nil {
		return err
	}

	tokens, err := ocr.DecodeVision(&raw)
	if err != nil {
		return fmt.Errorf("runner: decoding OCR output %s: %w", newest.Name, err)
	}

	table, priceErrs, err := menu.BuildMonth(model.NewTokenStore(tokens), r.template, today)
	if err != nil {
		return fmt.Errorf("runner: extracting menu from %s: %w", newest.Name, err)
	}
	// Misread prices stay visible for manual correction in the sheet.
	for _, pe := range priceErrs {
		r.log.Warn("price did not parse, left blank",
			"date", pe.Date.Format("2006-01-02"), "slot", pe.Slot, "text", pe.Text)
	}

	dates := table.Dates()
	if len(dates) == 0 {
		r.log.Warn("extraction produced an empty table", "file", newest.Name)
		return nil
	}

	flags := schedule.ResolveFlags(dates, schedule.DefaultFlags(), r.deps.Calendar)
	if err := r.deps.Store.SaveMonth(table, flags); err != nil {
		return err
	}

	rows := export.BuildRows(table, flags, r.deps.Calendar)
	var csv bytes.Buffer
	if err := export.WriteCSV(&csv, rows); err != nil {
		return err
	}

	name := export.FileName(dates[0])
	id, err := r.deps.Files.UploadAsSpreadsheet(ctx, r.cfg.Drive.SheetFolderID, name, &csv)
	if err != nil {
		return err
	}

	r.log.Info("menu table published",
		"file", name, "spreadsheet_id", id, "rows", len(rows), "price_errors", len(priceErrs))
	return nil
}
