// Package experiments compares every algorithm on every scenario and exports
// the averaged results.
package experiments

import (
	"fmt"
	"log"
	"sync"

	"cpu-scheduling-simulator/internal/scenarios"
)

// Row is the averaged outcome of one algorithm on one scenario.
type Row struct {
	Scenario      string
	Algorithm     string
	AvgWaiting    float64
	AvgTurnaround float64
	AvgResponse   float64
}

type job struct {
	index     int
	scenario  scenarios.Scenario
	algorithm Algorithm[int]
}

// RunAll simulates every scenario with every algorithm on a pool of workers.
// Rows come back in scenario order, then algorithm order. The first failing
// run aborts the whole batch.
func RunAll(scenarioList []scenarios.Scenario, algorithms []Algorithm[int], workers int) ([]Row, error) {
	if workers <= 0 {
		workers = 1
	}
	rows := make([]Row, len(scenarioList)*len(algorithms))
	jobs := make(chan job)

	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		firstErr error
	)
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func(waitGroup *sync.WaitGroup) {
			defer waitGroup.Done()
			for j := range jobs {
				result, err := j.algorithm.Run(j.scenario.Processes)
				if err != nil {
					mu.Lock()
					if firstErr == nil {
						firstErr = fmt.Errorf("scenario %s, algorithm %s: %w", j.scenario.Name, j.algorithm.Name, err)
					}
					mu.Unlock()
					continue
				}
				rows[j.index] = Row{
					Scenario:      j.scenario.Name,
					Algorithm:     j.algorithm.Name,
					AvgWaiting:    result.AvgWaiting,
					AvgTurnaround: result.AvgTurnaround,
					AvgResponse:   result.AvgResponse,
				}
			}
		}(&wg)
	}

	index := 0
	for _, s := range scenarioList {
		for _, a := range algorithms {
			jobs <- job{index: index, scenario: s, algorithm: a}
			index++
		}
	}
	close(jobs)
	wg.Wait()

	if firstErr != nil {
		return nil, firstErr
	}
	log.Println("experiments finished:", len(rows), "rows")
	return rows, nil
}

// GroupByScenario splits rows per scenario, keeping first-seen scenario order.
func GroupByScenario(rows []Row) ([]string, map[string][]Row) {
	order := make([]string, 0)
	grouped := make(map[string][]Row)
	for _, r := range rows {
		if _, ok := grouped[r.Scenario]; !ok {
			order = append(order, r.Scenario)
		}
		grouped[r.Scenario] = append(grouped[r.Scenario], r)
	}
	return order, grouped
}
