package charts

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cpu-scheduling-simulator/internal/experiments"
)

func TestRenderAll(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "plots")
	rows := []experiments.Row{
		{Scenario: "demo", Algorithm: "SJF", AvgWaiting: 1.67, AvgTurnaround: 4.67, AvgResponse: 1.67},
		{Scenario: "demo", Algorithm: "FCFS", AvgWaiting: 2.33, AvgTurnaround: 5.33, AvgResponse: 2.33},
		{Scenario: "other", Algorithm: "FCFS", AvgWaiting: 0, AvgTurnaround: 1, AvgResponse: 0},
	}

	paths, err := RenderAll(dir, rows)
	require.NoError(t, err)
	assert.Equal(t, []string{
		filepath.Join(dir, "demo_avg_waiting.png"),
		filepath.Join(dir, "demo_avg_turnaround.png"),
		filepath.Join(dir, "demo_avg_response.png"),
		filepath.Join(dir, "other_avg_waiting.png"),
		filepath.Join(dir, "other_avg_turnaround.png"),
		filepath.Join(dir, "other_avg_response.png"),
	}, paths)

	for _, p := range paths {
		info, err := os.Stat(p)
		require.NoError(t, err)
		assert.Greater(t, info.Size(), int64(0))
	}
}

func TestRenderAllWithoutRows(t *testing.T) {
	paths, err := RenderAll(t.TempDir(), nil)
	require.NoError(t, err)
	assert.Empty(t, paths)
}
