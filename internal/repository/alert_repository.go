// Package repository provides data access implementations
package repository

import (
	"database/sql"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/abelzeko/metro-bot/internal/entities"
	_ "github.com/mattn/go-sqlite3"
)

// AlertRepository defines the interface for alert log persistence operations
type AlertRepository interface {
	SaveAlerts(alerts []entities.AlertRecord, seenAt time.Time) error
	GetAlertsSince(cutoff time.Time) ([]entities.AlertRecord, error)
	GetLastUpdateTime() (time.Time, error)
	Close() error
}

// SQLiteAlertRepository implements AlertRepository using SQLite
type SQLiteAlertRepository struct {
	db     *sql.DB
	DBPath string
}

// NewSQLiteAlertRepository creates and initializes a new SQLite repository
func NewSQLiteAlertRepository(dbPath string) (*SQLiteAlertRepository, error) {
	if dbPath == "" {
		dbPath = filepath.Join("data", "alerts.db")
	}
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %v", err)
	}

	log.Printf("Opening database at %s", dbPath)
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %v", err)
	}

	createTableSQL := `
	CREATE TABLE IF NOT EXISTS alert_log (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		kind TEXT NOT NULL,
		external_id TEXT NOT NULL,
		station_code TEXT,
		title TEXT,
		description TEXT,
		lines TEXT,
		first_seen INTEGER NOT NULL,
		last_seen INTEGER NOT NULL,
		UNIQUE(kind, external_id)
	);
	CREATE INDEX IF NOT EXISTS idx_alert_last_seen ON alert_log(last_seen);`

	_, err = db.Exec(createTableSQL)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create tables: %v", err)
	}

	return &SQLiteAlertRepository{
		db:     db,
		DBPath: dbPath,
	}, nil
}

// Close closes the database connection
func (r *SQLiteAlertRepository) Close() error {
	if r.db != nil {
		return r.db.Close()
	}
	return nil
}

// SaveAlerts upserts alert records. A record already in the log keeps its
// first_seen time and gets last_seen and its text refreshed.
func (r *SQLiteAlertRepository) SaveAlerts(alerts []entities.AlertRecord, seenAt time.Time) error {
	tx, err := r.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %v", err)
	}

	stmt, err := tx.Prepare(`
		INSERT INTO alert_log(kind, external_id, station_code, title, description, lines, first_seen, last_seen)
		VALUES(?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(kind, external_id) DO UPDATE SET
		station_code=excluded.station_code,
		title=excluded.title,
		description=excluded.description,
		lines=excluded.lines,
		last_seen=excluded.last_seen
	`)
	if err != nil {
		tx.Rollback()
		return fmt.Errorf("failed to prepare statement: %v", err)
	}
	defer stmt.Close()

	ts := seenAt.Unix()
	for _, a := range alerts {
		_, err := stmt.Exec(a.Kind, a.ExternalID, a.StationCode, a.Title, a.Description, a.Lines, ts, ts)
		if err != nil {
			tx.Rollback()
			return fmt.Errorf("failed to insert %s alert %s: %v", a.Kind, a.ExternalID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %v", err)
	}

	log.Printf("Successfully saved %d alert records", len(alerts))
	return nil
}

// GetAlertsSince returns alerts seen at or after cutoff, most recently seen first
func (r *SQLiteAlertRepository) GetAlertsSince(cutoff time.Time) ([]entities.AlertRecord, error) {
	query := `
		SELECT id, kind, external_id, station_code, title, description, lines, first_seen, last_seen
		FROM alert_log
		WHERE last_seen >= ?
		ORDER BY last_seen DESC, id DESC`

	rows, err := r.db.Query(query, cutoff.Unix())
	if err != nil {
		return nil, fmt.Errorf("failed to query alert log: %v", err)
	}
	defer rows.Close()

	var result []entities.AlertRecord
	for rows.Next() {
		var a entities.AlertRecord
		var stationCode, title, description, lines sql.NullString
		var firstSeen, lastSeen int64
		if err := rows.Scan(
			&a.ID,
			&a.Kind,
			&a.ExternalID,
			&stationCode,
			&title,
			&description,
			&lines,
			&firstSeen,
			&lastSeen,
		); err != nil {
			return nil, fmt.Errorf("failed to scan row: %v", err)
		}
		a.StationCode = stationCode.String
		a.Title = title.String
		a.Description = description.String
		a.Lines = lines.String
		a.FirstSeen = time.Unix(firstSeen, 0)
		a.LastSeen = time.Unix(lastSeen, 0)
		result = append(result, a)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error during row iteration: %v", err)
	}

	return result, nil
}

// GetLastUpdateTime returns the most recent last_seen time in the log,
// or the zero time when the log is empty
func (r *SQLiteAlertRepository) GetLastUpdateTime() (time.Time, error) {
	var lastSeen sql.NullInt64
	err := r.db.QueryRow("SELECT MAX(last_seen) FROM alert_log").Scan(&lastSeen)
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to get last update time: %v", err)
	}
	if !lastSeen.Valid {
		return time.Time{}, nil
	}
	return time.Unix(lastSeen.Int64, 0), nil
}
