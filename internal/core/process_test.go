package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name      string
		processes []Process[int]
		wantErr   error
	}{
		{"empty", nil, ErrEmptyProcessSet},
		{"zero burst", []Process[int]{{ID: 1, Arrival: 0, Burst: 0}}, ErrInvalidBurst},
		{"negative burst", []Process[int]{{ID: 1, Arrival: 0, Burst: -3}}, ErrInvalidBurst},
		{"negative arrival", []Process[int]{{ID: 1, Arrival: -1, Burst: 2}}, ErrNegativeArrival},
		{"duplicate id", []Process[int]{{ID: 1, Burst: 2}, {ID: 1, Arrival: 3, Burst: 1}}, ErrDuplicateProcess},
		{"valid", []Process[int]{{ID: 1, Burst: 2}, {ID: 2, Arrival: 3, Burst: 1}}, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.processes)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestNewTasksCopiesInput(t *testing.T) {
	processes := []Process[string]{{ID: "b", Arrival: 2, Burst: 3}, {ID: "a", Arrival: 2, Burst: 1}}
	tasks := NewTasks(processes)
	require.Len(t, tasks, 2)

	tasks[0].Remaining = 0
	tasks[0].Burst = 99
	assert.Equal(t, 3, processes[0].Burst)
	assert.Equal(t, Unset, tasks[1].StartTime)
	assert.Equal(t, Unset, tasks[1].CompletionTime)
	assert.Equal(t, 1, tasks[1].Remaining)

	sorted := SortByArrival(tasks)
	assert.Equal(t, "a", sorted[0].ID)
	assert.Equal(t, "b", tasks[0].ID, "sorting must not reorder the input slice")
}

func TestProcessQueueIsFIFO(t *testing.T) {
	q := NewProcessQueue[int]()
	_, ok := q.RemoveFromTop()
	assert.False(t, ok)

	for i := 0; i < 10; i++ {
		q.AddToEnd(i)
	}
	for i := 0; i < 6; i++ {
		v, ok := q.RemoveFromTop()
		require.True(t, ok)
		assert.Equal(t, i, v)
	}
	q.AddToEnd(10)
	assert.Equal(t, 5, q.Len())
	for want := 6; want <= 10; want++ {
		v, _ := q.RemoveFromTop()
		assert.Equal(t, want, v)
	}
	assert.Equal(t, 0, q.Len())
}
