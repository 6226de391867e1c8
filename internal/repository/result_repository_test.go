package repository

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cpu-scheduling-simulator/internal/experiments"
)

func newTestRepository(t *testing.T) *ResultRepository {
	t.Helper()
	db, err := OpenDB(filepath.Join(t.TempDir(), "results", "results.db"))
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })
	return NewResultRepository(db)
}

func TestSaveAndListRun(t *testing.T) {
	repo := newTestRepository(t)
	rows := []experiments.Row{
		{Scenario: "batch_jobs", Algorithm: "FCFS", AvgWaiting: 8.5, AvgTurnaround: 16, AvgResponse: 8.5},
		{Scenario: "batch_jobs", Algorithm: "SJF", AvgWaiting: 4.5, AvgTurnaround: 12, AvgResponse: 4.5},
		{Scenario: "interactive_like", Algorithm: "FCFS", AvgWaiting: 5, AvgTurnaround: 8.5, AvgResponse: 5},
	}
	require.NoError(t, repo.SaveRun("run-1", rows))
	require.NoError(t, repo.SaveRun("run-2", rows[:1]))
	require.NoError(t, repo.SaveRun("run-3", nil))

	count, err := repo.Count()
	require.NoError(t, err)
	assert.EqualValues(t, 4, count)

	stored, err := repo.ListByRun("run-1")
	require.NoError(t, err)
	assert.Equal(t, rows, ToRows(stored))

	byScenario, err := repo.ListByScenario("batch_jobs")
	require.NoError(t, err)
	assert.Len(t, byScenario, 3)

	missing, err := repo.ListByRun("nope")
	require.NoError(t, err)
	assert.Empty(t, missing)
}
