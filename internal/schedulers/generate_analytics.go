package schedulers

import (
	"cmp"
	"fmt"

	"cpu-scheduling-simulator/internal/core"
	"cpu-scheduling-simulator/internal/metrics"
)

// Result is everything a single simulation run produces.
type Result[ID cmp.Ordered] struct {
	Algorithm string
	Timeline  core.Timeline[ID]
	metrics.Summary[ID]
	Cpu            core.CpuMetric
	CpuUtilization float64
	CpuThroughput  float64
}

// generateResult computes metrics for tasks, reported in (arrival, id) order.
func generateResult[ID cmp.Ordered](algorithm string, cpu *core.Cpu[ID], tasks []*core.Task[ID]) (Result[ID], error) {
	summary, err := metrics.Compute(core.SortByArrival(tasks))
	if err != nil {
		return Result[ID]{}, fmt.Errorf("%s: %w", algorithm, err)
	}
	cpuMetric := cpu.Metric()
	return Result[ID]{
		Algorithm:      algorithm,
		Timeline:       cpu.Timeline(),
		Summary:        summary,
		Cpu:            cpuMetric,
		CpuUtilization: cpuMetric.Utilization(),
		CpuThroughput:  cpuMetric.Throughput(len(tasks)),
	}, nil
}

// pickReady returns the arrived, unfinished task minimizing (key, arrival, id),
// or nil when nothing is ready at now.
func pickReady[ID cmp.Ordered](tasks []*core.Task[ID], now int, key func(*core.Task[ID]) int) *core.Task[ID] {
	var best *core.Task[ID]
	for _, t := range tasks {
		if !t.ArrivedBy(now) {
			continue
		}
		if best == nil || cmp.Or(cmp.Compare(key(t), key(best)), core.CompareArrival(t, best)) < 0 {
			best = t
		}
	}
	return best
}

// earliestPending is the smallest arrival among unfinished tasks.
func earliestPending[ID cmp.Ordered](tasks []*core.Task[ID]) (int, bool) {
	earliest, found := 0, false
	for _, t := range tasks {
		if t.Done() {
			continue
		}
		if !found || t.Arrival < earliest {
			earliest, found = t.Arrival, true
		}
	}
	return earliest, found
}

func burstOf[ID cmp.Ordered](t *core.Task[ID]) int     { return t.Burst }
func remainingOf[ID cmp.Ordered](t *core.Task[ID]) int { return t.Remaining }
