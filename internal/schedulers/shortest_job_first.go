package schedulers

import (
	"cmp"
	"log"

	"cpu-scheduling-simulator/internal/core"
)

const ShortestJobFirstName = "SJF (non-preemptive)"

// ScheduleShortestJobFirst dispatches, whenever the processor frees up, the
// ready process with the smallest (burst, arrival, id) and runs it to
// completion.
func ScheduleShortestJobFirst[ID cmp.Ordered](processes []core.Process[ID]) (Result[ID], error) {
	log.Println("running sjf algorithm ...")
	if err := core.Validate(processes); err != nil {
		return Result[ID]{}, err
	}

	tasks := core.NewTasks(processes)
	cpu := core.NewCpu[ID]()
	for completed := 0; completed < len(tasks); {
		shortestJob := pickReady(tasks, cpu.Now(), burstOf[ID])
		if shortestJob == nil {
			next, _ := earliestPending(tasks)
			cpu.WaitFor(next)
			continue
		}
		if err := cpu.Execute(shortestJob, shortestJob.Remaining); err != nil {
			return Result[ID]{}, err
		}
		completed++
	}

	return generateResult(ShortestJobFirstName, cpu, tasks)
}
