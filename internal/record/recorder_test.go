package record_test

import (
	"database/sql"
	"testing"

	"GaltonBoardController/internal/model"
	"GaltonBoardController/internal/record"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupRecorder(t *testing.T) (*record.Recorder, *sql.DB) {
	t.Helper()
	db, err := sql.Open("sqlite3", ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	rec, err := record.NewWithDB(db)
	require.NoError(t, err)
	return rec, db
}

func TestRecordAndFlush(t *testing.T) {
	rec, db := setupRecorder(t)

	rec.RecordTrial(1, model.TrialResult{3, 4, 3})
	rec.RecordTrial(2, model.TrialResult{5, 0, 5})
	require.NoError(t, rec.Flush())

	var rows, balls int
	require.NoError(t, db.QueryRow("SELECT COUNT(*), SUM(count) FROM trials").Scan(&rows, &balls))
	assert.Equal(t, 6, rows)
	assert.Equal(t, 20, balls)

	var run string
	require.NoError(t, db.QueryRow("SELECT DISTINCT run FROM trials").Scan(&run))
	assert.Equal(t, rec.RunID(), run)
}

func TestFlushIsIdempotent(t *testing.T) {
	rec, db := setupRecorder(t)

	rec.RecordTrial(1, model.TrialResult{7})
	require.NoError(t, rec.Flush())
	require.NoError(t, rec.Flush())

	var rows int
	require.NoError(t, db.QueryRow("SELECT COUNT(*) FROM trials").Scan(&rows))
	assert.Equal(t, 1, rows, "a second flush must not duplicate rows")
}

func TestOpenGeneratesDatabaseFile(t *testing.T) {
	path := t.TempDir() + "/trials.sqlite3"
	rec, err := record.Open(path)
	require.NoError(t, err)

	rec.RecordTrial(1, model.TrialResult{1, 2})
	require.NoError(t, rec.Close())

	db, err := sql.Open("sqlite3", path)
	require.NoError(t, err)
	defer db.Close()
	var rows int
	require.NoError(t, db.QueryRow("SELECT COUNT(*) FROM trials").Scan(&rows))
	assert.Equal(t, 2, rows)
}
