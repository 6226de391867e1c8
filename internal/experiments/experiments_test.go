package experiments

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cpu-scheduling-simulator/internal/core"
	"cpu-scheduling-simulator/internal/scenarios"
	"cpu-scheduling-simulator/internal/schedulers"
)

func TestAlgorithmsNames(t *testing.T) {
	algos := Algorithms[int](2, []int{2, 4})
	names := make([]string, len(algos))
	for i, a := range algos {
		names[i] = a.Name
	}
	assert.Equal(t, []string{"FCFS", "SJF", "SRTF", "RR_q2", "MLFQ"}, names)
}

func TestRunAllShape(t *testing.T) {
	all := scenarios.All()
	algos := Algorithms[int](2, []int{2, 4})

	rows, err := RunAll(all, algos, 4)
	require.NoError(t, err)
	require.Len(t, rows, len(all)*len(algos))

	for i, r := range rows {
		assert.Equal(t, all[i/len(algos)].Name, r.Scenario)
		assert.Equal(t, algos[i%len(algos)].Name, r.Algorithm)
		assert.GreaterOrEqual(t, r.AvgWaiting, 0.0)
		assert.GreaterOrEqual(t, r.AvgResponse, 0.0)
		assert.Greater(t, r.AvgTurnaround, 0.0)
	}

	again, err := RunAll(all, algos, 1)
	require.NoError(t, err)
	assert.Equal(t, rows, again)
}

func TestRunAllMatchesDirectRuns(t *testing.T) {
	s := scenarios.StaggeredArrivals()
	rows, err := RunAll([]scenarios.Scenario{s}, Algorithms[int](3, []int{1}), 3)
	require.NoError(t, err)

	direct, err := schedulers.ScheduleRoundRobin(s.Processes, 3)
	require.NoError(t, err)
	assert.Equal(t, "RR_q3", rows[3].Algorithm)
	assert.InDelta(t, direct.AvgWaiting, rows[3].AvgWaiting, 1e-12)
}

func TestRunAllPropagatesErrors(t *testing.T) {
	boom := errors.New("boom")
	algos := []Algorithm[int]{{
		Name: "broken",
		Run: func([]core.Process[int]) (schedulers.Result[int], error) {
			return schedulers.Result[int]{}, boom
		},
	}}
	rows, err := RunAll(scenarios.All(), algos, 2)
	assert.ErrorIs(t, err, boom)
	assert.Nil(t, rows)

	_, err = RunAll(scenarios.All(), Algorithms[int](0, []int{2}), 0)
	assert.ErrorIs(t, err, core.ErrInvalidQuantum)
}

func TestGroupByScenario(t *testing.T) {
	rows := []Row{
		{Scenario: "b", Algorithm: "FCFS"},
		{Scenario: "a", Algorithm: "FCFS"},
		{Scenario: "b", Algorithm: "SJF"},
	}
	order, grouped := GroupByScenario(rows)
	assert.Equal(t, []string{"b", "a"}, order)
	assert.Len(t, grouped["b"], 2)
	assert.Len(t, grouped["a"], 1)
}

func TestCSVRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "results", "summary.csv")
	rows := []Row{
		{Scenario: "demo", Algorithm: "FCFS", AvgWaiting: 7.0 / 3, AvgTurnaround: 16.0 / 3, AvgResponse: 7.0 / 3},
		{Scenario: "demo", Algorithm: "SJF", AvgWaiting: 5.0 / 3, AvgTurnaround: 14.0 / 3, AvgResponse: 5.0 / 3},
	}
	require.NoError(t, SaveCSV(path, rows))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(raw), "scenario,algorithm,avg_waiting,avg_turnaround,avg_response\n")

	loaded, err := LoadCSV(path)
	require.NoError(t, err)
	assert.Equal(t, rows, loaded)
}

func TestLoadCSVRejectsWrongHeader(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.csv")
	require.NoError(t, os.WriteFile(path, []byte("a,b\n"), 0o644))
	_, err := LoadCSV(path)
	assert.Error(t, err)
}
