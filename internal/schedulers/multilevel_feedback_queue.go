package schedulers

import (
	"cmp"
	"fmt"
	"log"
	"strconv"
	"strings"

	"cpu-scheduling-simulator/internal/core"
)

func MultilevelFeedbackQueueName(timeQuantumList []int) string {
	quanta := make([]string, len(timeQuantumList))
	for i, q := range timeQuantumList {
		quanta[i] = strconv.Itoa(q)
	}
	return fmt.Sprintf("MLFQ (q=%s)", strings.Join(quanta, ","))
}

// ScheduleMultilevelFeedbackQueue runs one round-robin level per entry of
// timeQuantumList plus a final fcfs level. Arrivals enter the first level; a
// process that uses up its quantum moves one level down. The highest
// non-empty level is always served and slices are never cut short.
func ScheduleMultilevelFeedbackQueue[ID cmp.Ordered](processes []core.Process[ID], timeQuantumList []int) (Result[ID], error) {
	log.Println("mlfq algorithm with timeQuantum = ", timeQuantumList)
	if len(timeQuantumList) == 0 {
		return Result[ID]{}, fmt.Errorf("%w: no levels", core.ErrInvalidLevels)
	}
	for i, q := range timeQuantumList {
		if q <= 0 {
			return Result[ID]{}, fmt.Errorf("%w: level %d has quantum %d", core.ErrInvalidLevels, i, q)
		}
	}
	if err := core.Validate(processes); err != nil {
		return Result[ID]{}, err
	}

	tasks := core.SortByArrival(core.NewTasks(processes))
	cpu := core.NewCpu[ID]()
	fcfsLevel := len(timeQuantumList)
	levels := make([]*core.ProcessQueue[*core.Task[ID]], fcfsLevel+1)
	for i := range levels {
		levels[i] = core.NewProcessQueue[*core.Task[ID]]()
	}
	cursor := 0
	admitArrivals := func() {
		for cursor < len(tasks) && tasks[cursor].Arrival <= cpu.Now() {
			levels[0].AddToEnd(tasks[cursor])
			cursor++
		}
	}

	for completed := 0; completed < len(tasks); {
		admitArrivals()
		level := -1
		for i, q := range levels {
			if q.Len() > 0 {
				level = i
				break
			}
		}
		if level < 0 {
			cpu.WaitFor(tasks[cursor].Arrival)
			continue
		}

		task, _ := levels[level].RemoveFromTop()
		slice := task.Remaining
		if level < fcfsLevel {
			slice = min(slice, timeQuantumList[level])
		}
		if err := cpu.Execute(task, slice); err != nil {
			return Result[ID]{}, err
		}

		admitArrivals()
		if task.Done() {
			completed++
		} else {
			levels[min(level+1, fcfsLevel)].AddToEnd(task)
		}
	}

	return generateResult(MultilevelFeedbackQueueName(timeQuantumList), cpu, tasks)
}
