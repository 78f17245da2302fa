// Package record persists per-trial bin counts into a SQLite database so
// simulation runs can be compared after the fact.
package record

import (
	"database/sql"
	"fmt"
	"os"

	"GaltonBoardController/internal/model"

	// SQLite driver registration.
	_ "github.com/mattn/go-sqlite3"
	"github.com/rs/xid"
	"github.com/tebeka/atexit"
)

// Recorder buffers trial rows and writes them in one transaction per Flush.
// Every Recorder gets its own run id so several runs can share a database.
type Recorder struct {
	db      *sql.DB
	runID   string
	pending []row
}

type row struct {
	trial int
	bin   int
	count int
}

// Open creates or reuses the database at path. An empty path generates a
// fresh file named after the run id.
func Open(path string) (*Recorder, error) {
	runID := xid.New().String()
	if path == "" {
		path = "galton_trials_" + runID + ".sqlite3"
	}
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("record: open %s: %w", path, err)
	}
	_, err = db.Exec(`CREATE TABLE IF NOT EXISTS trials (
		run   TEXT    NOT NULL,
		trial INTEGER NOT NULL,
		bin   INTEGER NOT NULL,
		count INTEGER NOT NULL
	)`)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("record: create table: %w", err)
	}

	r := &Recorder{db: db, runID: runID}
	atexit.Register(func() {
		if err := r.Flush(); err != nil {
			fmt.Fprintf(os.Stderr, "record: flush at exit: %v\n", err)
		}
	})
	return r, nil
}

// NewWithDB wraps an already open database (tests).
func NewWithDB(db *sql.DB) (*Recorder, error) {
	r := &Recorder{db: db, runID: xid.New().String()}
	_, err := db.Exec(`CREATE TABLE IF NOT EXISTS trials (
		run   TEXT    NOT NULL,
		trial INTEGER NOT NULL,
		bin   INTEGER NOT NULL,
		count INTEGER NOT NULL
	)`)
	if err != nil {
		return nil, fmt.Errorf("record: create table: %w", err)
	}
	return r, nil
}

func (r *Recorder) RunID() string { return r.runID }

// RecordTrial buffers every bin count of one trial.
func (r *Recorder) RecordTrial(trial int, tr model.TrialResult) {
	for bin, count := range tr {
		r.pending = append(r.pending, row{trial: trial, bin: bin, count: count})
	}
}

// Flush writes all buffered rows in one transaction.
func (r *Recorder) Flush() error {
	if len(r.pending) == 0 {
		return nil
	}
	tx, err := r.db.Begin()
	if err != nil {
		return fmt.Errorf("record: begin: %w", err)
	}
	stmt, err := tx.Prepare("INSERT INTO trials (run, trial, bin, count) VALUES (?, ?, ?, ?)")
	if err != nil {
		tx.Rollback()
		return fmt.Errorf("record: prepare: %w", err)
	}
	defer stmt.Close()
	for _, w := range r.pending {
		if _, err := stmt.Exec(r.runID, w.trial, w.bin, w.count); err != nil {
			tx.Rollback()
			return fmt.Errorf("record: insert: %w", err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("record: commit: %w", err)
	}
	r.pending = r.pending[:0]
	return nil
}

// Close flushes and releases the database.
func (r *Recorder) Close() error {
	if err := r.Flush(); err != nil {
		r.db.Close()
		return err
	}
	return r.db.Close()
}
