package metrics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cpu-scheduling-simulator/internal/core"
)

func finished(id, arrival, burst, start, completion int) *core.Task[int] {
	t := core.NewTasks([]core.Process[int]{{ID: id, Arrival: arrival, Burst: burst}})[0]
	t.Remaining = 0
	t.StartTime = start
	t.CompletionTime = completion
	return t
}

func TestCompute(t *testing.T) {
	tasks := []*core.Task[int]{
		finished(1, 0, 5, 0, 5),
		finished(2, 2, 3, 5, 8),
		finished(3, 4, 1, 8, 9),
	}

	summary, err := Compute(tasks)
	require.NoError(t, err)
	require.Len(t, summary.Processes, 3)

	p2, ok := summary.Find(2)
	require.True(t, ok)
	assert.Equal(t, 3, p2.Waiting)
	assert.Equal(t, 6, p2.Turnaround)
	assert.Equal(t, 3, p2.Response)

	assert.InDelta(t, 7.0/3, summary.AvgWaiting, 1e-9)
	assert.InDelta(t, 16.0/3, summary.AvgTurnaround, 1e-9)
	assert.InDelta(t, 7.0/3, summary.AvgResponse, 1e-9)

	_, ok = summary.Find(42)
	assert.False(t, ok)
}

func TestComputeRejectsEmptySet(t *testing.T) {
	_, err := Compute[int](nil)
	assert.ErrorIs(t, err, core.ErrEmptyProcessSet)
}

func TestComputeRejectsIncompleteRun(t *testing.T) {
	tasks := core.NewTasks([]core.Process[int]{{ID: 1, Burst: 2}})
	_, err := Compute(tasks)
	assert.ErrorIs(t, err, core.ErrIncompleteProcess)

	tasks[0].StartTime = 0
	_, err = Compute(tasks)
	assert.ErrorIs(t, err, core.ErrIncompleteProcess)
}

func TestComputeRejectsImpossibleTimestamps(t *testing.T) {
	_, err := Compute([]*core.Task[int]{finished(1, 3, 4, 3, 5)})
	assert.ErrorIs(t, err, ErrScheduleInvariant)

	_, err = Compute([]*core.Task[int]{finished(1, 3, 1, 2, 4)})
	assert.ErrorIs(t, err, ErrScheduleInvariant)
}
