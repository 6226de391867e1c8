package main

import (
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"cpu-scheduling-simulator/api"
	"cpu-scheduling-simulator/config"
	"cpu-scheduling-simulator/internal/charts"
	"cpu-scheduling-simulator/internal/core"
	"cpu-scheduling-simulator/internal/experiments"
	"cpu-scheduling-simulator/internal/report"
	"cpu-scheduling-simulator/internal/repository"
	"cpu-scheduling-simulator/internal/scenarios"
)

var ErrInvalidArgs = errors.New("invalid args")

const usage = `usage:
  cpu-scheduling-simulator [serve]
  cpu-scheduling-simulator experiments
  cpu-scheduling-simulator run <processes.csv|scenarios.yaml> [time_quantum]`

func main() {
	cfg := config.GetSchedulerConfig()

	command := "serve"
	if len(os.Args) > 1 {
		command = os.Args[1]
	}

	var err error
	switch command {
	case "serve":
		app := api.NewApp(cfg)
		err = app.Listen(fmt.Sprintf(":%d", cfg.Port))
	case "experiments":
		err = runExperiments(cfg)
	case "run":
		err = runFile(cfg, os.Args[2:])
	default:
		err = fmt.Errorf("%w: unknown command %q\n%s", ErrInvalidArgs, command, usage)
	}
	if err != nil {
		log.Fatalln(err)
	}
}

func runExperiments(cfg *config.SchedulerConfig) error {
	algorithms := experiments.Algorithms[int](cfg.RoundRobinTimeQuantum, cfg.MultilevelFeedbackQueueLevelsTimeQuantum)
	rows, err := experiments.RunAll(scenarios.All(), algorithms, cfg.ExperimentsWorkers)
	if err != nil {
		return err
	}
	report.WriteSummary(os.Stdout, rows)

	summaryPath := filepath.Join(cfg.ExperimentsOutputDir, "summary.csv")
	if err := experiments.SaveCSV(summaryPath, rows); err != nil {
		return err
	}
	log.Println("results saved to", summaryPath)

	db, err := repository.OpenDB(cfg.ExperimentsDatabase)
	if err != nil {
		return err
	}
	runID := time.Now().UTC().Format("20060102T150405Z")
	if err := repository.NewResultRepository(db).SaveRun(runID, rows); err != nil {
		return err
	}
	log.Println("results stored as run", runID)

	plots, err := charts.RenderAll(filepath.Join(cfg.ExperimentsOutputDir, "plots"), rows)
	if err != nil {
		return err
	}
	log.Println("saved", len(plots), "charts")
	return nil
}

func runFile(cfg *config.SchedulerConfig, args []string) error {
	if len(args) < 1 || len(args) > 2 {
		return fmt.Errorf("%w: must give a scheduling file to process\n%s", ErrInvalidArgs, usage)
	}
	quantum := cfg.RoundRobinTimeQuantum
	if len(args) == 2 {
		q, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("%w: time quantum %q", ErrInvalidArgs, args[1])
		}
		quantum = q
	}

	f, err := os.Open(args[0])
	if err != nil {
		return fmt.Errorf("%v: error opening scheduling file", err)
	}
	defer f.Close()

	var sets []scenarios.Scenario
	switch strings.ToLower(filepath.Ext(args[0])) {
	case ".yaml", ".yml":
		sets, err = scenarios.LoadYAML(f)
	default:
		var processes []core.Process[int]
		processes, err = scenarios.LoadCSV(f)
		sets = []scenarios.Scenario{{Name: filepath.Base(args[0]), Processes: processes}}
	}
	if err != nil {
		return err
	}

	algorithms := experiments.Algorithms[int](quantum, cfg.MultilevelFeedbackQueueLevelsTimeQuantum)
	for _, s := range sets {
		fmt.Printf("\n=== %s ===\n\n", s.Name)
		for _, a := range algorithms {
			result, err := a.Run(s.Processes)
			if err != nil {
				return err
			}
			report.Print(os.Stdout, result)
			fmt.Println()
		}
	}
	return nil
}
