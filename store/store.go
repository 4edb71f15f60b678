// Package store provides SQLite-backed persistence for extracted menu
// tables and their schedule flags.
//
// The store is what lets the scheduled operations decide whether to run:
// the create operation saves each month's table and flags, and the other
// operations ask whether their flag is set for today's date.
package store

import (
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	"github.com/tsawler/menugrid/model"
)

// Store provides SQLite-backed persistence for menu rows and schedule flags.
type Store struct {
	db *sql.DB
}

const createTablesSQL = `
CREATE TABLE IF NOT EXISTS menu_rows (
	date TEXT NOT NULL,
	slot INTEGER NOT NULL,
	name TEXT NOT NULL,
	price INTEGER,
	PRIMARY KEY (date, slot)
);

CREATE TABLE IF NOT EXISTS schedule_flags (
	date TEXT NOT NULL,
	flag TEXT NOT NULL,
	value INTEGER NOT NULL,
	PRIMARY KEY (date, flag)
);
`

// Open opens the SQLite database at dbPath, creates tables if they don't
// exist, and returns a Store.
func Open(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("store: open database: %w", err)
	}

	// Enable WAL mode for better concurrent read performance.
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("store: set WAL mode: %w", err)
	}

	if _, err := db.Exec(createTablesSQL); err != nil {
		db.Close()
		return nil, fmt.Errorf("store: create tables: %w", err)
	}

	return &Store{db: db}, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// SaveMonth stores a month's menu table and schedule flags in one
// transaction, replacing any previously stored rows for the same dates.
func (s *Store) SaveMonth(table *model.MenuTable, flags []model.ScheduleFlag) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("store: begin transaction: %w", err)
	}
	defer tx.Rollback()

	slots := make(map[time.Time]int)
	for _, row := range table.Rows {
		slot := slots[row.Date]
		slots[row.Date] = slot + 1

		var price interface{}
		if row.HasPrice {
			price = int64(row.Price)
		}
		_, err := tx.Exec(
			`INSERT OR REPLACE INTO menu_rows (date, slot, name, price) VALUES (?, ?, ?, ?)`,
			dateKey(row.Date), slot, row.Name, price,
		)
		if err != nil {
			return fmt.Errorf("store: save menu row for %s: %w", dateKey(row.Date), err)
		}
	}

	for _, flag := range flags {
		_, err := tx.Exec(
			`INSERT OR REPLACE INTO schedule_flags (date, flag, value) VALUES (?, ?, ?)`,
			dateKey(flag.Date), flag.Name, flag.Value,
		)
		if err != nil {
			return fmt.Errorf("store: save flag %s for %s: %w", flag.Name, dateKey(flag.Date), err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("store: commit: %w", err)
	}
	return nil
}

// ShouldRun reports whether the named operation's flag is set for the given
// date. An unknown date or flag simply yields false.
func (s *Store) ShouldRun(operation string, date time.Time) (bool, error) {
	var value bool
	err := s.db.QueryRow(
		`SELECT value FROM schedule_flags WHERE date = ? AND flag = ?`,
		dateKey(date), operation,
	).Scan(&value)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("store: check %s on %s: %w", operation, dateKey(date), err)
	}
	return value, nil
}

// MenuBetween returns the stored menu rows with from <= date < to,
// ordered by date and slot.
func (s *Store) MenuBetween(from, to time.Time) ([]model.MenuRow, error) {
	rows, err := s.db.Query(
		`SELECT date, name, price FROM menu_rows WHERE date >= ? AND date < ? ORDER BY date, slot`,
		dateKey(from), dateKey(to),
	)
	if err != nil {
		return nil, fmt.Errorf("store: query menu rows: %w", err)
	}
	defer rows.Close()

	var out []model.MenuRow
	for rows.Next() {
		var (
			rawDate string
			name    string
			price   sql.NullInt64
		)
		if err := rows.Scan(&rawDate, &name, &price); err != nil {
			return nil, fmt.Errorf("store: scan menu row: %w", err)
		}
		date, err := time.Parse("2006-01-02", rawDate)
		if err != nil {
			return nil, fmt.Errorf("store: stored date %q: %w", rawDate, err)
		}
		mr := model.MenuRow{Date: date, Name: name}
		if price.Valid {
			mr.Price = int16(price.Int64)
			mr.HasPrice = true
		}
		out = append(out, mr)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("store: iterate menu rows: %w", err)
	}
	return out, nil
}

func dateKey(t time.Time) string {
	return t.Format("2006-01-02")
}
