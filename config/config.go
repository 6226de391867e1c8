package config

import (
	"errors"
	"fmt"
	"log"
	"strings"
	"sync"

	"github.com/spf13/viper"
)

type SchedulerConfig struct {
	Port                                     int
	RoundRobinTimeQuantum                    int
	MultilevelFeedbackQueueLevelsTimeQuantum []int
	ExperimentsOutputDir                     string
	ExperimentsDatabase                      string
	ExperimentsWorkers                       int
}

var once sync.Once
var config *SchedulerConfig

// GetSchedulerConfig loads config.yaml from the working directory once and
// exits on error.
func GetSchedulerConfig() *SchedulerConfig {
	once.Do(func() {
		var err error
		config, err = Load("./")
		if err != nil {
			log.Fatalln(err)
		}
	})

	return config
}

// Load reads config.yaml from the given directories. A missing file leaves
// the defaults in place; SCHEDULER_* environment variables override both.
func Load(paths ...string) (*SchedulerConfig, error) {
	v := viper.New()
	v.SetDefault("port", 9095)
	v.SetDefault("scheduler.round_robin.time_quantum", 2)
	v.SetDefault("scheduler.multilevel_feedback_queue.levels_time_quantum", []int{2, 4})
	v.SetDefault("experiments.output_dir", "data/results")
	v.SetDefault("experiments.database", "data/results/results.db")
	v.SetDefault("experiments.workers", 4)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	for _, p := range paths {
		v.AddConfigPath(p)
	}
	v.SetEnvPrefix("scheduler")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	cfg := &SchedulerConfig{
		Port:                                     v.GetInt("port"),
		RoundRobinTimeQuantum:                    v.GetInt("scheduler.round_robin.time_quantum"),
		MultilevelFeedbackQueueLevelsTimeQuantum: v.GetIntSlice("scheduler.multilevel_feedback_queue.levels_time_quantum"),
		ExperimentsOutputDir:                     v.GetString("experiments.output_dir"),
		ExperimentsDatabase:                      v.GetString("experiments.database"),
		ExperimentsWorkers:                       v.GetInt("experiments.workers"),
	}
	if cfg.RoundRobinTimeQuantum <= 0 {
		return nil, fmt.Errorf("scheduler.round_robin.time_quantum must be positive, got %d", cfg.RoundRobinTimeQuantum)
	}
	if len(cfg.MultilevelFeedbackQueueLevelsTimeQuantum) == 0 {
		return nil, errors.New("scheduler.multilevel_feedback_queue.levels_time_quantum must not be empty")
	}
	return cfg, nil
}
