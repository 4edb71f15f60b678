package schedule

import (
	"testing"
	"time"

	"github.com/tsawler/menugrid/model"
)

// week of Monday 2026-03-02 through Friday 2026-03-06.
func workWeek(monday time.Time) []time.Time {
	dates := make([]time.Time, 5)
	for i := range dates {
		dates[i] = monday.AddDate(0, 0, i)
	}
	return dates
}

var monday = model.Date(2026, time.March, 2)

func trueDates(result map[time.Time]bool) []time.Time {
	var out []time.Time
	for d, v := range result {
		if v {
			out = append(out, d)
		}
	}
	return out
}

func TestResolveNoHolidays(t *testing.T) {
	dates := workWeek(monday)
	result := Resolve(dates, Thursday, NewDateSet())

	thursday := monday.AddDate(0, 0, 3)
	for _, d := range dates {
		want := d.Equal(thursday)
		if result[d] != want {
			t.Errorf("result[%v] = %v, want %v", d.Format("2006-01-02"), result[d], want)
		}
	}
}

func TestResolveRollsBackOverHoliday(t *testing.T) {
	dates := workWeek(monday)
	thursday := monday.AddDate(0, 0, 3)
	wednesday := monday.AddDate(0, 0, 2)

	result := Resolve(dates, Thursday, NewDateSet(thursday))

	if !result[wednesday] {
		t.Error("Wednesday should be flagged when Thursday is a holiday")
	}
	for _, d := range dates {
		if !d.Equal(wednesday) && result[d] {
			t.Errorf("%v should not be flagged", d.Format("2006-01-02"))
		}
	}
}

func TestResolveRollsBackTwice(t *testing.T) {
	dates := workWeek(monday)
	tuesday := monday.AddDate(0, 0, 1)
	wednesday := monday.AddDate(0, 0, 2)
	thursday := monday.AddDate(0, 0, 3)

	result := Resolve(dates, Thursday, NewDateSet(thursday, wednesday))

	if !result[tuesday] {
		t.Error("Tuesday should be flagged when Wednesday and Thursday are holidays")
	}
	if got := trueDates(result); len(got) != 1 {
		t.Errorf("exactly one date per week should be flagged, got %v", got)
	}
}

func TestResolveNeverRollsBelowMonday(t *testing.T) {
	dates := workWeek(monday)
	result := Resolve(dates, Monday, NewDateSet(monday))

	if got := trueDates(result); len(got) != 0 {
		t.Errorf("no date should be flagged when Monday itself is a holiday, got %v", got)
	}
}

func TestResolveAllCandidatesHolidays(t *testing.T) {
	dates := workWeek(monday)
	holidays := NewDateSet(
		monday,
		monday.AddDate(0, 0, 1),
		monday.AddDate(0, 0, 2),
		monday.AddDate(0, 0, 3),
	)

	result := Resolve(dates, Thursday, holidays)
	if got := trueDates(result); len(got) != 0 {
		t.Errorf("week with Monday..Thursday all holidays should stay false, got %v", got)
	}
	// Friday is after the nominal day and never a rollback target.
	if result[monday.AddDate(0, 0, 4)] {
		t.Error("Friday must not be flagged for a Thursday target")
	}
}

func TestResolveMissingCandidateDate(t *testing.T) {
	// The range holds Monday..Wednesday only; Thursday is absent. The
	// rollback treats the missing date like a holiday and lands on
	// Wednesday.
	dates := workWeek(monday)[:3]
	result := Resolve(dates, Thursday, NewDateSet())

	if !result[monday.AddDate(0, 0, 2)] {
		t.Error("Wednesday should be flagged when Thursday is outside the range")
	}
}

func TestResolveWeeksIndependent(t *testing.T) {
	week1 := workWeek(monday)
	week2 := workWeek(monday.AddDate(0, 0, 7))
	dates := append(append([]time.Time{}, week1...), week2...)

	// Only week 1's Thursday is a holiday.
	result := Resolve(dates, Thursday, NewDateSet(monday.AddDate(0, 0, 3)))

	if !result[monday.AddDate(0, 0, 2)] {
		t.Error("week 1 should roll back to Wednesday")
	}
	if !result[monday.AddDate(0, 0, 10)] {
		t.Error("week 2 should keep its Thursday")
	}
	if got := trueDates(result); len(got) != 2 {
		t.Errorf("one flagged date per week, got %v", got)
	}
}

func TestResolveSundayStartConvention(t *testing.T) {
	// A Sunday belongs to the week of the preceding Monday.
	sunday := monday.AddDate(0, 0, 6)
	if isoWeekday(sunday) != 7 {
		t.Fatalf("isoWeekday(Sunday) = %d, want 7", isoWeekday(sunday))
	}
	if !weekStart(sunday).Equal(monday) {
		t.Errorf("weekStart(Sunday) = %v, want %v", weekStart(sunday), monday)
	}
}

func TestResolveFlags(t *testing.T) {
	dates := workWeek(monday)
	thursday := monday.AddDate(0, 0, 3)

	rows := ResolveFlags(dates, DefaultFlags(), NewDateSet())

	if len(rows) != len(dates)*len(DefaultFlags()) {
		t.Fatalf("got %d rows, want %d", len(rows), len(dates)*len(DefaultFlags()))
	}

	byDateName := make(map[string]bool)
	for _, row := range rows {
		byDateName[row.Date.Format("2006-01-02")+"/"+row.Name] = row.Value
	}

	if !byDateName[monday.Format("2006-01-02")+"/update_this_week"] {
		t.Error("update_this_week should be true on Monday")
	}
	// The three Thursday flags are independent columns on the same date.
	for _, name := range []string{"update_next_week", "notice_check_lunch", "report_next_week"} {
		if !byDateName[thursday.Format("2006-01-02")+"/"+name] {
			t.Errorf("%s should be true on Thursday", name)
		}
	}
	if byDateName[thursday.Format("2006-01-02")+"/update_this_week"] {
		t.Error("update_this_week should be false on Thursday")
	}
}

func TestResolveFlagsOrdering(t *testing.T) {
	// Dates supplied out of order come back sorted.
	d1 := monday
	d2 := monday.AddDate(0, 0, 1)
	rows := ResolveFlags([]time.Time{d2, d1}, DefaultFlags(), NewDateSet())

	if !rows[0].Date.Equal(d1) {
		t.Errorf("first row date = %v, want %v", rows[0].Date, d1)
	}
	if rows[0].Name != "update_this_week" {
		t.Errorf("first row flag = %q, want declaration order", rows[0].Name)
	}
}
