package runner

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"time"

	"github.com/tsawler/menugrid/layout"
	"github.com/tsawler/menugrid/model"
	"github.com/tsawler/menugrid/notify"
)

// rowsPerUser is the fixed number of order lines each user gets in the
// sheet: one per line slot of every weekday.
const rowsPerUser = layout.Weekdays * layout.Lines

var nextWeekHeader = []string{"date", "name", "price", "check", "Email"}

// UpdateNextWeek fills the order sheet's next_week range with the coming
// week's menu, one block of rows per registered user, each with an empty
// check cell for the user to tick.
func (r *Runner) UpdateNextWeek(ctx context.Context, today time.Time) error {
	users, err := r.readUsers(ctx)
	if err != nil {
		return err
	}
	if len(users) == 0 {
		r.log.Warn("no registered users, skipping next week update")
		return nil
	}

	nextMonday := weekStart(today).AddDate(0, 0, 7)
	menuRows, err := r.deps.Store.MenuBetween(nextMonday, nextMonday.AddDate(0, 0, 7))
	if err != nil {
		return err
	}

	rows := [][]string{nextWeekHeader}
	for _, user := range users {
		for _, mr := range menuRows {
			if r.deps.Calendar.IsHoliday(mr.Date) {
				continue
			}
			price := ""
			if mr.HasPrice {
				price = "¥" + strconv.Itoa(int(mr.Price))
			}
			rows = append(rows, []string{mr.Date.Format("2006-01-02"), mr.Name, price, "", user})
		}
	}

	writeRange := fmt.Sprintf("next_week!A1:E%d", len(users)*rowsPerUser+1)
	if err := r.deps.Sheets.Write(ctx, r.cfg.Drive.SpreadsheetID, writeRange, rows); err != nil {
		return err
	}

	r.log.Info("next week's menu updated", "users", len(users), "rows", len(rows)-1)
	return nil
}

// UpdateThisWeek copies the checked orders from the next_week range into
// the this_week range, dropping the check column.
func (r *Runner) UpdateThisWeek(ctx context.Context) error {
	users, err := r.readUsers(ctx)
	if err != nil {
		return err
	}

	orders, err := r.readCheckedOrders(ctx, len(users))
	if err != nil {
		return err
	}

	rows := [][]string{{"date", "name", "price", "Email"}}
	for _, o := range orders {
		rows = append(rows, []string{o.date, o.name, o.price, o.email})
	}

	writeRange := fmt.Sprintf("this_week!A1:D%d", len(users)*rowsPerUser+1)
	if err := r.deps.Sheets.Write(ctx, r.cfg.Drive.SpreadsheetID, writeRange, rows); err != nil {
		return err
	}

	r.log.Info("this week's orders updated", "orders", len(orders))
	return nil
}

// NoticeCheckLunch asks the channel to tick next week's orders.
func (r *Runner) NoticeCheckLunch(ctx context.Context) error {
	blocks := []notify.Block{
		notify.HeaderBlock("来週のお弁当のチェックをお願いします:white_check_mark:"),
		notify.SectionBlock(":iphone: " + r.cfg.Slack.AppURL),
	}
	return r.deps.Notifier.PostMessage(ctx, r.cfg.Slack.ChannelID, blocks)
}

// ReportNextWeek aggregates the checked orders per menu line and posts the
// summary to the channel.
func (r *Runner) ReportNextWeek(ctx context.Context) error {
	users, err := r.readUsers(ctx)
	if err != nil {
		return err
	}

	orders, err := r.readCheckedOrders(ctx, len(users))
	if err != nil {
		return err
	}

	type key struct{ date, name, price string }
	counts := make(map[key]int)
	for _, o := range orders {
		counts[key{o.date, o.name, o.price}]++
	}

	summary := make([]notify.Order, 0, len(counts))
	for k, n := range counts {
		date, err := time.Parse("2006-01-02", k.date)
		if err != nil {
			return fmt.Errorf("runner: order date %q: %w", k.date, err)
		}
		summary = append(summary, notify.Order{Date: date, Name: k.name, Price: k.price, Count: n})
	}
	sort.Slice(summary, func(i, j int) bool {
		if !summary[i].Date.Equal(summary[j].Date) {
			return summary[i].Date.Before(summary[j].Date)
		}
		return summary[i].Name < summary[j].Name
	})

	blocks := notify.OrderSummaryBlocks("来週のお弁当は下記の通りです:point_down:", summary)
	return r.deps.Notifier.PostMessage(ctx, r.cfg.Slack.ChannelID, blocks)
}

// readUsers returns the registered user emails from the logins range.
// The first row is the column header.
func (r *Runner) readUsers(ctx context.Context) ([]string, error) {
	rows, err := r.deps.Sheets.Read(ctx, r.cfg.Drive.SpreadsheetID, r.cfg.Drive.UserRange)
	if err != nil {
		return nil, err
	}

	var users []string
	for i, row := range rows {
		if i == 0 || len(row) == 0 || row[0] == "" {
			continue
		}
		users = append(users, row[0])
	}
	return users, nil
}

type order struct {
	date, name, price, email string
}

// readCheckedOrders reads the next_week range and keeps the rows whose
// check cell was ticked.
func (r *Runner) readCheckedOrders(ctx context.Context, userCount int) ([]order, error) {
	readRange := fmt.Sprintf("next_week!A1:E%d", userCount*rowsPerUser+1)
	rows, err := r.deps.Sheets.Read(ctx, r.cfg.Drive.SpreadsheetID, readRange)
	if err != nil {
		return nil, err
	}

	var orders []order
	for i, row := range rows {
		if i == 0 || len(row) < 5 {
			continue
		}
		if row[3] != "TRUE" {
			continue
		}
		orders = append(orders, order{date: row[0], name: row[1], price: row[2], email: row[4]})
	}
	return orders, nil
}

// weekStart returns the Monday of t's ISO week, as a date.
func weekStart(t time.Time) time.Time {
	wd := int(t.Weekday())
	if wd == 0 {
		wd = 7
	}
	return model.Date(t.Year(), t.Month(), t.Day()).AddDate(0, 0, 1-wd)
}
