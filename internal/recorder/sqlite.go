package recorder

import (
	"database/sql"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
	_ "modernc.org/sqlite"
)

// SQLiteRecorder persists run history to a SQLite database.
type SQLiteRecorder struct {
	db *sql.DB
	mu sync.Mutex
}

// NewSQLiteRecorder opens (or creates) the SQLite database and runs
// migrations.
func NewSQLiteRecorder(dbPath string) (*SQLiteRecorder, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("set WAL mode: %w", err)
	}

	r := &SQLiteRecorder{db: db}
	if err := r.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	log.Info().Str("path", dbPath).Msg("sqlite recorder opened")
	return r, nil
}

func (r *SQLiteRecorder) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS runs (
			id              INTEGER PRIMARY KEY AUTOINCREMENT,
			timestamp       INTEGER NOT NULL,
			tickers         TEXT,
			start_date      TEXT,
			end_date        TEXT,
			aligned_rows    INTEGER,
			top_first       TEXT,
			top_second      TEXT,
			top_correlation REAL,
			chart_path      TEXT,
			heatmap_path    TEXT,
			csv_path        TEXT
		)`,
		`CREATE INDEX IF NOT EXISTS idx_runs_ts ON runs(timestamp)`,
	}
	for _, s := range stmts {
		if _, err := r.db.Exec(s); err != nil {
			return fmt.Errorf("exec %q: %w", s[:40], err)
		}
	}
	return nil
}

func (r *SQLiteRecorder) RecordRun(rec *RunRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	end := ""
	if !rec.End.IsZero() {
		end = rec.End.Format("2006-01-02")
	}
	_, err := r.db.Exec(`INSERT INTO runs
		(timestamp, tickers, start_date, end_date, aligned_rows,
		 top_first, top_second, top_correlation,
		 chart_path, heatmap_path, csv_path)
		VALUES (?,?,?,?,?,?,?,?,?,?,?)`,
		time.Now().Unix(), strings.Join(rec.Tickers, ","),
		rec.Start.Format("2006-01-02"), end, rec.AlignedRows,
		rec.TopFirst, rec.TopSecond, rec.TopCorrelation,
		rec.ChartPath, rec.HeatmapPath, rec.CSVPath,
	)
	return err
}

func (r *SQLiteRecorder) Close() error {
	log.Debug().Msg("closing sqlite recorder")
	return r.db.Close()
}
