package experiments

import (
	"cmp"
	"fmt"

	"cpu-scheduling-simulator/internal/core"
	"cpu-scheduling-simulator/internal/schedulers"
)

// Algorithm is a named simulation entry point with its configuration bound.
type Algorithm[ID cmp.Ordered] struct {
	Name string
	Run  func([]core.Process[ID]) (schedulers.Result[ID], error)
}

// Algorithms lists the algorithms compared on every scenario.
func Algorithms[ID cmp.Ordered](timeQuantum int, levelsTimeQuantum []int) []Algorithm[ID] {
	return []Algorithm[ID]{
		{Name: "FCFS", Run: schedulers.ScheduleFirstComeFirstServe[ID]},
		{Name: "SJF", Run: schedulers.ScheduleShortestJobFirst[ID]},
		{Name: "SRTF", Run: schedulers.ScheduleShortestRemainingTimeFirst[ID]},
		{
			Name: fmt.Sprintf("RR_q%d", timeQuantum),
			Run: func(processes []core.Process[ID]) (schedulers.Result[ID], error) {
				return schedulers.ScheduleRoundRobin(processes, timeQuantum)
			},
		},
		{
			Name: "MLFQ",
			Run: func(processes []core.Process[ID]) (schedulers.Result[ID], error) {
				return schedulers.ScheduleMultilevelFeedbackQueue(processes, levelsTimeQuantum)
			},
		},
	}
}
