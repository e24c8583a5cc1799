package storage

import (
	"database/sql"
	"fmt"

	_ "github.com/go-sql-driver/mysql"
	"stv/internal/config"
	"stv/internal/domain"
)

// History persists run summaries across sessions so regressions in the
// target page can be spotted over time.
type History interface {
	Record(meta domain.ReportMeta) error
	Recent(limit int) ([]domain.ReportMeta, error)
}

// MySQLHistory stores one row per finalized run in a MySQL database
// configured through the environment.
type MySQLHistory struct {
	cfg *config.Config
}

// NewMySQLHistory creates a new MySQLHistory.
func NewMySQLHistory(cfg *config.Config) *MySQLHistory {
	return &MySQLHistory{cfg: cfg}
}

func (h *MySQLHistory) open() (*sql.DB, error) {
	db, err := sql.Open("mysql", h.cfg.DatabaseDSN())
	if err != nil {
		return nil, fmt.Errorf("connect to history database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping history database: %w", err)
	}
	return db, nil
}

func (h *MySQLHistory) ensureTable(db *sql.DB) error {
	_, err := db.Exec(`CREATE TABLE IF NOT EXISTS runs (
		id INT AUTO_INCREMENT PRIMARY KEY,
		target VARCHAR(255) NOT NULL,
		total_cases INT NOT NULL,
		passed_cases INT NOT NULL,
		failed_cases INT NOT NULL,
		pass_rate DOUBLE NOT NULL,
		duration_seconds DOUBLE NOT NULL,
		created_at VARCHAR(64) NOT NULL
	)`)
	if err != nil {
		return fmt.Errorf("create runs table: %w", err)
	}
	return nil
}

// Record inserts one run summary row.
func (h *MySQLHistory) Record(meta domain.ReportMeta) error {
	db, err := h.open()
	if err != nil {
		return err
	}
	defer db.Close()

	if err := h.ensureTable(db); err != nil {
		return err
	}
	_, err = db.Exec(
		"INSERT INTO runs (target, total_cases, passed_cases, failed_cases, pass_rate, duration_seconds, created_at) VALUES (?, ?, ?, ?, ?, ?, ?)",
		meta.Target, meta.TotalCases, meta.PassedCases, meta.FailedCases, meta.PassRate, meta.DurationSeconds, meta.Timestamp,
	)
	if err != nil {
		return fmt.Errorf("record run: %w", err)
	}
	return nil
}

// Recent returns up to limit run summaries, newest first.
func (h *MySQLHistory) Recent(limit int) ([]domain.ReportMeta, error) {
	db, err := h.open()
	if err != nil {
		return nil, err
	}
	defer db.Close()

	if err := h.ensureTable(db); err != nil {
		return nil, err
	}
	rows, err := db.Query(
		"SELECT target, total_cases, passed_cases, failed_cases, pass_rate, duration_seconds, created_at FROM runs ORDER BY id DESC LIMIT ?",
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("query runs: %w", err)
	}
	defer rows.Close()

	var metas []domain.ReportMeta
	for rows.Next() {
		var m domain.ReportMeta
		if err := rows.Scan(&m.Target, &m.TotalCases, &m.PassedCases, &m.FailedCases, &m.PassRate, &m.DurationSeconds, &m.Timestamp); err != nil {
			return nil, fmt.Errorf("scan run row: %w", err)
		}
		metas = append(metas, m)
	}
	return metas, rows.Err()
}
