package schedulers

import (
	"cmp"
	"log"

	"cpu-scheduling-simulator/internal/core"
)

const ShortestRemainingTimeFirstName = "SRTF"

// ScheduleShortestRemainingTimeFirst is the preemptive variant of SJF. The
// ready process with the smallest (remaining, arrival, id) is re-selected at
// every arrival and completion; time jumps straight to the next such event.
func ScheduleShortestRemainingTimeFirst[ID cmp.Ordered](processes []core.Process[ID]) (Result[ID], error) {
	log.Println("running srtf algorithm ...")
	if err := core.Validate(processes); err != nil {
		return Result[ID]{}, err
	}

	tasks := core.NewTasks(processes)
	byArrival := core.SortByArrival(tasks)
	cpu := core.NewCpu[ID]()
	cursor := 0
	for completed := 0; completed < len(tasks); {
		for cursor < len(byArrival) && byArrival[cursor].Arrival <= cpu.Now() {
			cursor++
		}

		current := pickReady(tasks, cpu.Now(), remainingOf[ID])
		if current == nil {
			cpu.WaitFor(byArrival[cursor].Arrival)
			continue
		}

		// run until completion or the next arrival, whichever is sooner
		slice := current.Remaining
		if cursor < len(byArrival) {
			slice = min(slice, byArrival[cursor].Arrival-cpu.Now())
		}
		if err := cpu.Continue(current, slice); err != nil {
			return Result[ID]{}, err
		}
		if current.Done() {
			completed++
		}
	}

	return generateResult(ShortestRemainingTimeFirstName, cpu, tasks)
}
