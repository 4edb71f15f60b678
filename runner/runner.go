// Package runner orchestrates the scheduled menu operations.
//
// It connects the extraction core to the external collaborators (Drive,
// Sheets, Slack, the local store) through narrow interfaces, so every
// operation is testable with in-memory fakes. The core packages never
// touch these interfaces; data flows one way, from extraction out.
package runner

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/tsawler/menugrid/config"
	"github.com/tsawler/menugrid/gdrive"
	"github.com/tsawler/menugrid/layout"
	"github.com/tsawler/menugrid/model"
	"github.com/tsawler/menugrid/notify"
	"github.com/tsawler/menugrid/schedule"
)

// Operation names. All but OpCreate are gated by their schedule flag.
const (
	OpCreate           = "create"
	OpUpdateThisWeek   = "update_this_week"
	OpUpdateNextWeek   = "update_next_week"
	OpNoticeCheckLunch = "notice_check_lunch"
	OpReportNextWeek   = "report_next_week"
)

// GatedOperations lists the operations that only run on their flagged date.
func GatedOperations() []string {
	return []string{OpUpdateThisWeek, OpUpdateNextWeek, OpNoticeCheckLunch, OpReportNextWeek}
}

// FileStore is the Drive capability the runner consumes.
type FileStore interface {
	Search(ctx context.Context, folderID, nameContains string, since time.Time) ([]gdrive.File, error)
	Download(ctx context.Context, fileID string, w io.Writer) error
	UploadAsSpreadsheet(ctx context.Context, folderID, name string, csv io.Reader) (string, error)
}

// SheetStore is the Sheets capability the runner consumes.
type SheetStore interface {
	Read(ctx context.Context, spreadsheetID, readRange string) ([][]string, error)
	Write(ctx context.Context, spreadsheetID, writeRange string, rows [][]string) error
}

// Notifier delivers workflow messages.
type Notifier interface {
	PostMessage(ctx context.Context, channelID string, blocks []notify.Block) error
}

// MenuStore is the local persistence the runner consumes.
type MenuStore interface {
	SaveMonth(table *model.MenuTable, flags []model.ScheduleFlag) error
	ShouldRun(operation string, date time.Time) (bool, error)
	MenuBetween(from, to time.Time) ([]model.MenuRow, error)
}

// Deps holds the injectable collaborators.
type Deps struct {
	Files    FileStore
	Sheets   SheetStore
	Notifier Notifier
	Store    MenuStore
	Calendar schedule.Calendar
	Logger   *slog.Logger
}

// Runner executes the menu operations.
type Runner struct {
	cfg      config.Config
	template layout.Template
	deps     Deps
	log      *slog.Logger
}

// New creates a Runner.
func New(cfg config.Config, tpl layout.Template, deps Deps) *Runner {
	log := deps.Logger
	if log == nil {
		log = slog.Default()
	}
	return &Runner{cfg: cfg, template: tpl, deps: deps, log: log}
}

// Run executes one named operation for the given date. Gated operations
// first consult the stored schedule; off-schedule invocations are a no-op.
func (r *Runner) Run(ctx context.Context, operation string, today time.Time) error {
	if operation != OpCreate {
		ok, err := r.deps.Store.ShouldRun(operation, today)
		if err != nil {
			return err
		}
		if !ok {
			r.log.Info("operation not scheduled today", "operation", operation, "date", today.Format("2006-01-02"))
			return nil
		}
	}

	switch operation {
	case OpCreate:
		return r.Create(ctx, today)
	case OpUpdateNextWeek:
		return r.UpdateNextWeek(ctx, today)
	case OpUpdateThisWeek:
		return r.UpdateThisWeek(ctx)
	case OpNoticeCheckLunch:
		return r.NoticeCheckLunch(ctx)
	case OpReportNextWeek:
		return r.ReportNextWeek(ctx)
	default:
		return fmt.Errorf("runner: unknown operation %q", operation)
	}
}
