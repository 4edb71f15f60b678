package menugrid

import (
	"testing"
	"time"

	"github.com/tsawler/menugrid/layout"
	"github.com/tsawler/menugrid/model"
	"github.com/tsawler/menugrid/schedule"
)

func TestExtractMonth(t *testing.T) {
	tokens := []model.Token{
		{Text: "3月2日", X: 0.08, Y: 0.15, Height: 0.01},
		{Text: "からあげ弁当", X: 0.03, Y: 0.17, Height: 0.01},
		{Text: "450", X: 0.195, Y: 0.17, Height: 0.01},
	}

	table, priceErrs, err := ExtractMonth(tokens, time.Date(2026, time.February, 10, 9, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatalf("ExtractMonth() error = %v", err)
	}
	if len(priceErrs) != 0 {
		t.Errorf("ExtractMonth() price errors = %v, want none", priceErrs)
	}

	dates := table.Dates()
	if len(dates) != 1 {
		t.Fatalf("Dates() = %v, want exactly one date", dates)
	}
	if want := model.Date(2026, time.March, 2); !dates[0].Equal(want) {
		t.Errorf("Dates()[0] = %v, want %v", dates[0], want)
	}

	rows := table.RowsFor(dates[0])
	if len(rows) != layout.Lines {
		t.Fatalf("RowsFor() returned %d rows, want %d", len(rows), layout.Lines)
	}
	if rows[0].Name != "からあげ弁当" {
		t.Errorf("rows[0].Name = %q, want %q", rows[0].Name, "からあげ弁当")
	}
	if !rows[0].HasPrice || rows[0].Price != 450 {
		t.Errorf("rows[0] price = (%v, %d), want (true, 450)", rows[0].HasPrice, rows[0].Price)
	}
}

func TestExtractMonthHeaderError(t *testing.T) {
	_, _, err := ExtractMonth(nil, time.Date(2026, time.February, 10, 0, 0, 0, 0, time.UTC))
	if err == nil {
		t.Error("ExtractMonth() with no tokens should fail on the header")
	}
}

func TestResolveSchedule(t *testing.T) {
	week := []time.Time{
		model.Date(2026, time.March, 2),
		model.Date(2026, time.March, 3),
		model.Date(2026, time.March, 4),
		model.Date(2026, time.March, 5),
		model.Date(2026, time.March, 6),
	}
	holidays := schedule.NewDateSet(model.Date(2026, time.March, 5))

	got := ResolveSchedule(week, Thursday, holidays)
	for _, d := range week {
		want := d.Equal(model.Date(2026, time.March, 4))
		if got[d] != want {
			t.Errorf("ResolveSchedule()[%v] = %v, want %v", d.Format("2006-01-02"), got[d], want)
		}
	}
}
