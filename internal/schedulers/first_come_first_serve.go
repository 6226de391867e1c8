package schedulers

import (
	"cmp"
	"log"

	"cpu-scheduling-simulator/internal/core"
)

const FirstComeFirstServeName = "FCFS"

// ScheduleFirstComeFirstServe runs processes to completion in (arrival, id)
// order, idling the processor until the next arrival when needed.
func ScheduleFirstComeFirstServe[ID cmp.Ordered](processes []core.Process[ID]) (Result[ID], error) {
	log.Println("running fcfs algorithm ...")
	if err := core.Validate(processes); err != nil {
		return Result[ID]{}, err
	}

	tasks := core.SortByArrival(core.NewTasks(processes))
	cpu := core.NewCpu[ID]()
	for _, task := range tasks {
		cpu.WaitFor(task.Arrival)
		if err := cpu.Execute(task, task.Remaining); err != nil {
			return Result[ID]{}, err
		}
	}

	return generateResult(FirstComeFirstServeName, cpu, tasks)
}
