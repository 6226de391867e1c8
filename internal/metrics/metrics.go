// Package metrics turns the timestamps of a finished simulation into
// waiting, turnaround and response times.
package metrics

import (
	"cmp"
	"errors"
	"fmt"

	"cpu-scheduling-simulator/internal/core"
)

// ErrScheduleInvariant means an algorithm produced timestamps no correct
// schedule can have.
var ErrScheduleInvariant = errors.New("schedule invariant violated")

// Record holds the derived times of one process.
type Record[ID cmp.Ordered] struct {
	ID         ID
	Arrival    int
	Burst      int
	Priority   int
	Start      int
	Completion int
	Waiting    int
	Turnaround int
	Response   int
}

type Summary[ID cmp.Ordered] struct {
	Processes     []Record[ID]
	AvgWaiting    float64
	AvgTurnaround float64
	AvgResponse   float64
}

// Compute derives per-process metrics and their unweighted means. Every task
// must have a start and completion time.
func Compute[ID cmp.Ordered](tasks []*core.Task[ID]) (Summary[ID], error) {
	if len(tasks) == 0 {
		return Summary[ID]{}, core.ErrEmptyProcessSet
	}

	records := make([]Record[ID], 0, len(tasks))
	var waitingSum, turnaroundSum, responseSum int
	for _, t := range tasks {
		if t.StartTime == core.Unset || t.CompletionTime == core.Unset {
			return Summary[ID]{}, fmt.Errorf("%w: process %v start=%d completion=%d",
				core.ErrIncompleteProcess, t.ID, t.StartTime, t.CompletionTime)
		}
		turnaround := t.CompletionTime - t.Arrival
		waiting := turnaround - t.Burst
		response := t.StartTime - t.Arrival
		if waiting < 0 || response < 0 {
			return Summary[ID]{}, fmt.Errorf("%w: process %v waiting=%d response=%d",
				ErrScheduleInvariant, t.ID, waiting, response)
		}

		waitingSum += waiting
		turnaroundSum += turnaround
		responseSum += response
		records = append(records, Record[ID]{
			ID:         t.ID,
			Arrival:    t.Arrival,
			Burst:      t.Burst,
			Priority:   t.Priority,
			Start:      t.StartTime,
			Completion: t.CompletionTime,
			Waiting:    waiting,
			Turnaround: turnaround,
			Response:   response,
		})
	}

	n := float64(len(tasks))
	return Summary[ID]{
		Processes:     records,
		AvgWaiting:    float64(waitingSum) / n,
		AvgTurnaround: float64(turnaroundSum) / n,
		AvgResponse:   float64(responseSum) / n,
	}, nil
}

// Find returns the record of id.
func (s Summary[ID]) Find(id ID) (Record[ID], bool) {
	for _, r := range s.Processes {
		if r.ID == id {
			return r, true
		}
	}
	return Record[ID]{}, false
}
