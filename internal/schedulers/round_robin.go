package schedulers

import (
	"cmp"
	"fmt"
	"log"

	"cpu-scheduling-simulator/internal/core"
)

func RoundRobinName(timeQuantum int) string {
	return fmt.Sprintf("Round Robin (q=%d)", timeQuantum)
}

// ScheduleRoundRobin gives each ready process at most timeQuantum units per
// dispatch. Processes that arrive during a slice are queued ahead of the
// process that was just preempted.
func ScheduleRoundRobin[ID cmp.Ordered](processes []core.Process[ID], timeQuantum int) (Result[ID], error) {
	log.Println("running roundRobin algorithm with timeQuantum = ", timeQuantum)
	if timeQuantum <= 0 {
		return Result[ID]{}, fmt.Errorf("%w: %d", core.ErrInvalidQuantum, timeQuantum)
	}
	if err := core.Validate(processes); err != nil {
		return Result[ID]{}, err
	}

	tasks := core.SortByArrival(core.NewTasks(processes))
	cpu := core.NewCpu[ID]()
	roundRobinQueue := core.NewProcessQueue[*core.Task[ID]]()
	cursor := 0
	admitArrivals := func() {
		for cursor < len(tasks) && tasks[cursor].Arrival <= cpu.Now() {
			roundRobinQueue.AddToEnd(tasks[cursor])
			cursor++
		}
	}

	for completed := 0; completed < len(tasks); {
		admitArrivals()
		task, ok := roundRobinQueue.RemoveFromTop()
		if !ok {
			cpu.WaitFor(tasks[cursor].Arrival)
			continue
		}

		if err := cpu.Execute(task, min(timeQuantum, task.Remaining)); err != nil {
			return Result[ID]{}, err
		}

		admitArrivals()
		if task.Done() {
			completed++
		} else {
			roundRobinQueue.AddToEnd(task)
		}
	}

	return generateResult(RoundRobinName(timeQuantum), cpu, tasks)
}
