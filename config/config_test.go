package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(body), 0o644))
	return dir
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, 9095, cfg.Port)
	assert.Equal(t, 2, cfg.RoundRobinTimeQuantum)
	assert.Equal(t, []int{2, 4}, cfg.MultilevelFeedbackQueueLevelsTimeQuantum)
	assert.Equal(t, "data/results", cfg.ExperimentsOutputDir)
	assert.Equal(t, 4, cfg.ExperimentsWorkers)
}

func TestLoadFile(t *testing.T) {
	dir := writeConfig(t, `
port: 8081
scheduler:
  round_robin:
    time_quantum: 3
  multilevel_feedback_queue:
    levels_time_quantum: [1, 2, 8]
experiments:
  workers: 2
`)
	cfg, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, 8081, cfg.Port)
	assert.Equal(t, 3, cfg.RoundRobinTimeQuantum)
	assert.Equal(t, []int{1, 2, 8}, cfg.MultilevelFeedbackQueueLevelsTimeQuantum)
	assert.Equal(t, 2, cfg.ExperimentsWorkers)
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("SCHEDULER_PORT", "7000")
	t.Setenv("SCHEDULER_SCHEDULER_ROUND_ROBIN_TIME_QUANTUM", "5")
	cfg, err := Load(writeConfig(t, "port: 8081\n"))
	require.NoError(t, err)
	assert.Equal(t, 7000, cfg.Port)
	assert.Equal(t, 5, cfg.RoundRobinTimeQuantum)
}

func TestLoadRejectsInvalidQuantum(t *testing.T) {
	_, err := Load(writeConfig(t, "scheduler:\n  round_robin:\n    time_quantum: 0\n"))
	assert.Error(t, err)
}

func TestLoadRejectsMalformedFile(t *testing.T) {
	_, err := Load(writeConfig(t, "port: [unclosed\n"))
	assert.Error(t, err)
}
